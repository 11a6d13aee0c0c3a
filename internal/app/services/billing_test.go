package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/amit20042003/Liberary/internal/app/models"
	"github.com/amit20042003/Liberary/internal/pkg/apperrors"
)

func TestRecordPaymentSingleMonth(t *testing.T) {
	s := activeStudent("S001", models.AdmissionFullTime, nil, 20)
	s.NextDueDate = date(2025, time.July, 1)

	out, err := RecordPayment(s, PaymentInput{Amount: 1200, Method: "CASH"}, 1, date(2025, time.July, 3))

	require.NoError(t, err)
	require.Len(t, out.PaymentHistory, 1)
	entry := out.PaymentHistory[0]
	assert.NotEmpty(t, entry.ReceiptID)
	assert.Equal(t, date(2025, time.July, 3), entry.Date)
	assert.Equal(t, int64(1200), entry.Amount)
	assert.Equal(t, "CASH", entry.Method)
	assert.Equal(t, date(2025, time.August, 1), out.NextDueDate)
}

func TestRecordPaymentMultipleMonths(t *testing.T) {
	s := activeStudent("S001", models.AdmissionFullTime, nil, 20)
	s.NextDueDate = date(2025, time.July, 1)

	out, err := RecordPayment(s, PaymentInput{Amount: 1200, Method: "UPI"}, 3, date(2025, time.July, 3))

	require.NoError(t, err)
	require.Len(t, out.PaymentHistory, 3)
	assert.Equal(t, date(2025, time.October, 1), out.NextDueDate)

	// Each covered month gets its own receipt
	seen := make(map[string]bool, 3)
	for _, entry := range out.PaymentHistory {
		assert.False(t, seen[entry.ReceiptID])
		seen[entry.ReceiptID] = true
		assert.Equal(t, date(2025, time.July, 3), entry.Date)
	}
}

func TestRecordPaymentClampsMonthEnds(t *testing.T) {
	s := activeStudent("S001", models.AdmissionFullTime, nil, 20)
	s.NextDueDate = date(2025, time.January, 31)

	out, err := RecordPayment(s, PaymentInput{Amount: 1200, Method: "CASH"}, 1, date(2025, time.January, 20))

	require.NoError(t, err)
	assert.Equal(t, date(2025, time.February, 28), out.NextDueDate)
}

func TestRecordPaymentRejectsNonPositiveMonths(t *testing.T) {
	s := activeStudent("S001", models.AdmissionFullTime, nil, 20)

	_, err := RecordPayment(s, PaymentInput{Amount: 1200, Method: "CASH"}, 0, date(2025, time.July, 3))
	assert.ErrorIs(t, err, apperrors.ErrInvalidPaymentMonths)

	_, err = RecordPayment(s, PaymentInput{Amount: 1200, Method: "CASH"}, -2, date(2025, time.July, 3))
	assert.ErrorIs(t, err, apperrors.ErrInvalidPaymentMonths)
}

func TestRecordPaymentDoesNotMutateInput(t *testing.T) {
	s := activeStudent("S001", models.AdmissionFullTime, nil, 20)
	s.NextDueDate = date(2025, time.July, 1)

	_, err := RecordPayment(s, PaymentInput{Amount: 1200, Method: "CASH"}, 2, date(2025, time.July, 3))

	require.NoError(t, err)
	assert.Empty(t, s.PaymentHistory)
	assert.Equal(t, date(2025, time.July, 1), s.NextDueDate)
}

func TestIsDueStrictBoundary(t *testing.T) {
	s := activeStudent("S001", models.AdmissionFullTime, nil, 20)
	s.NextDueDate = date(2025, time.July, 15)

	assert.False(t, IsDue(s, date(2025, time.July, 14)))
	assert.False(t, IsDue(s, date(2025, time.July, 15)))
	assert.True(t, IsDue(s, date(2025, time.July, 16)))

	// Late in the day on the due date is still not due
	assert.False(t, IsDue(s, time.Date(2025, time.July, 15, 23, 59, 0, 0, time.UTC)))
}

func TestMarkAsDue(t *testing.T) {
	s := activeStudent("S001", models.AdmissionFullTime, nil, 20)
	s.NextDueDate = date(2025, time.December, 1)
	today := date(2025, time.July, 10)

	out := MarkAsDue(s, today)

	assert.Equal(t, date(2025, time.July, 9), out.NextDueDate)
	assert.True(t, IsDue(out, today))
	assert.Empty(t, out.PaymentHistory)

	// Input untouched
	assert.Equal(t, date(2025, time.December, 1), s.NextDueDate)
}

func TestCloneStudentIsDeep(t *testing.T) {
	s := activeStudent("S001", models.AdmissionHalfTime, shiftPtr(models.ShiftMorning), 7)
	s.PaymentHistory = []models.Payment{{ReceiptID: "r1", Amount: 600, Method: "CASH", Date: date(2025, time.June, 1)}}
	reason := "moved"
	s.DepartureReason = &reason

	out := cloneStudent(s)
	out.PaymentHistory[0].Amount = 999
	*out.Shift = models.ShiftEvening
	*out.DepartureReason = "changed"

	assert.Equal(t, int64(600), s.PaymentHistory[0].Amount)
	assert.Equal(t, models.ShiftMorning, *s.Shift)
	assert.Equal(t, "moved", *s.DepartureReason)
}
