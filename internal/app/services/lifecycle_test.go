package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/amit20042003/Liberary/internal/app/models"
	"github.com/amit20042003/Liberary/internal/pkg/apperrors"
)

func TestDepartWithoutTransfer(t *testing.T) {
	s := activeStudent("S001", models.AdmissionFullTime, nil, 20)
	reason := "relocated"

	result, err := Depart(s, nil, &reason, date(2025, time.June, 21))

	require.NoError(t, err)
	assert.Nil(t, result.Credited)
	departed := result.Departed
	assert.Equal(t, models.StatusDeparted, departed.Status)
	require.NotNil(t, departed.DepartureDate)
	assert.Equal(t, date(2025, time.June, 21), *departed.DepartureDate)
	require.NotNil(t, departed.DepartureReason)
	assert.Equal(t, "relocated", *departed.DepartureReason)
	assert.Nil(t, departed.TransferLog)

	// The input record is untouched
	assert.Equal(t, models.StatusActive, s.Status)
}

func TestDepartTransfersRemainingDays(t *testing.T) {
	s := activeStudent("S001", models.AdmissionFullTime, nil, 20)
	s.NextDueDate = date(2025, time.July, 1)
	target := activeStudent("S002", models.AdmissionFullTime, nil, 21)
	target.NextDueDate = date(2025, time.July, 15)

	result, err := Depart(s, target, nil, date(2025, time.June, 21))

	require.NoError(t, err)
	departed := result.Departed
	require.NotNil(t, departed.TransferLog)
	assert.Equal(t, "S002", departed.TransferLog.ToStudentID)
	assert.Equal(t, "Student S002", departed.TransferLog.ToName)
	assert.Equal(t, 10, departed.TransferLog.DaysTransferred)

	credited := result.Credited
	require.NotNil(t, credited)
	assert.Equal(t, date(2025, time.July, 25), credited.NextDueDate)
	require.Len(t, credited.ReceivedCreditLog, 1)
	entry := credited.ReceivedCreditLog[0]
	assert.Equal(t, "S001", entry.FromStudentID)
	assert.Equal(t, 10, entry.DaysReceived)
	assert.Equal(t, date(2025, time.June, 21), entry.Date)

	// The target input is untouched
	assert.Equal(t, date(2025, time.July, 15), target.NextDueDate)
	assert.Empty(t, target.ReceivedCreditLog)
}

func TestDepartOverdueStudentTransfersNothing(t *testing.T) {
	s := activeStudent("S001", models.AdmissionFullTime, nil, 20)
	s.NextDueDate = date(2025, time.June, 10)
	target := activeStudent("S002", models.AdmissionFullTime, nil, 21)

	result, err := Depart(s, target, nil, date(2025, time.June, 21))

	require.NoError(t, err)
	// The transfer choice is still logged, with zero days
	require.NotNil(t, result.Departed.TransferLog)
	assert.Equal(t, 0, result.Departed.TransferLog.DaysTransferred)
	// Nothing to credit, no second write needed
	assert.Nil(t, result.Credited)
}

func TestDepartZeroDayBoundary(t *testing.T) {
	s := activeStudent("S001", models.AdmissionFullTime, nil, 20)
	s.NextDueDate = date(2025, time.June, 21)
	target := activeStudent("S002", models.AdmissionFullTime, nil, 21)

	result, err := Depart(s, target, nil, date(2025, time.June, 21))

	require.NoError(t, err)
	assert.Equal(t, 0, result.Departed.TransferLog.DaysTransferred)
	assert.Nil(t, result.Credited)
}

func TestDepartRejectsSelfTransfer(t *testing.T) {
	s := activeStudent("S001", models.AdmissionFullTime, nil, 20)

	_, err := Depart(s, s, nil, date(2025, time.June, 21))

	assert.ErrorIs(t, err, apperrors.ErrInvalidTransferTarget)
}

func TestDepartRejectsDepartedTarget(t *testing.T) {
	s := activeStudent("S001", models.AdmissionFullTime, nil, 20)
	target := activeStudent("S002", models.AdmissionFullTime, nil, 21)
	target.Status = models.StatusDeparted

	_, err := Depart(s, target, nil, date(2025, time.June, 21))

	assert.ErrorIs(t, err, apperrors.ErrInvalidTransferTarget)
}

func TestDepartRejectsAlreadyDeparted(t *testing.T) {
	s := activeStudent("S001", models.AdmissionFullTime, nil, 20)
	s.Status = models.StatusDeparted

	_, err := Depart(s, nil, nil, date(2025, time.June, 21))

	assert.ErrorIs(t, err, apperrors.ErrAlreadyDeparted)
}

func TestReactivateOnFreeSeat(t *testing.T) {
	s := activeStudent("S001", models.AdmissionFullTime, nil, 20)
	s.Status = models.StatusDeparted
	departureDate := date(2025, time.May, 1)
	s.DepartureDate = &departureDate
	s.TransferLog = &models.TransferLog{ToStudentID: "S002", ToName: "Priya", DaysTransferred: 5}
	s.NextDueDate = date(2025, time.April, 1)

	seats, _ := ComputeOccupancy(testLayout, nil)
	out, err := Reactivate(s, 30, seats)

	require.NoError(t, err)
	assert.Equal(t, models.StatusActive, out.Status)
	assert.Equal(t, 30, out.SeatNumber)
	assert.Nil(t, out.DepartureDate)
	assert.Nil(t, out.DepartureReason)
	assert.Nil(t, out.TransferLog)

	// The ledger is left alone, so the student is immediately fee due
	assert.Equal(t, date(2025, time.April, 1), out.NextDueDate)
	assert.True(t, IsDue(out, date(2025, time.July, 1)))
}

func TestReactivateRequiresFullyFreeSeat(t *testing.T) {
	s := activeStudent("S001", models.AdmissionHalfTime, shiftPtr(models.ShiftEvening), 20)
	s.Status = models.StatusDeparted

	// Seat 30 has only its morning slot taken; still not eligible, the
	// reactivation seat must be fully free whatever the student's plan
	others := []*models.Student{
		activeStudent("S002", models.AdmissionHalfTime, shiftPtr(models.ShiftMorning), 30),
	}
	seats, _ := ComputeOccupancy(testLayout, others)

	_, err := Reactivate(s, 30, seats)

	assert.ErrorIs(t, err, apperrors.ErrSeatNotAvailableForReactivation)
}

func TestReactivateRejectsUnknownSeat(t *testing.T) {
	s := activeStudent("S001", models.AdmissionFullTime, nil, 20)
	s.Status = models.StatusDeparted

	seats, _ := ComputeOccupancy(testLayout, nil)
	_, err := Reactivate(s, 99, seats)

	assert.ErrorIs(t, err, apperrors.ErrSeatNotAvailableForReactivation)
}

func TestReactivateRejectsActiveStudent(t *testing.T) {
	s := activeStudent("S001", models.AdmissionFullTime, nil, 20)

	seats, _ := ComputeOccupancy(testLayout, nil)
	_, err := Reactivate(s, 30, seats)

	assert.ErrorIs(t, err, apperrors.ErrConflict)
}
