package dto

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/amit20042003/Liberary/internal/app/models"
	"github.com/amit20042003/Liberary/internal/pkg/apperrors"
)

func TestGenderFromTitle(t *testing.T) {
	tests := []struct {
		title string
		want  models.GenderCategory
	}{
		{"Mr.", models.CategoryBoy},
		{"Mr", models.CategoryBoy},
		{"Ms.", models.CategoryGirl},
		{"Ms", models.CategoryGirl},
		{"Mrs.", models.CategoryGirl},
		{" Mrs. ", models.CategoryGirl},
	}

	for _, tt := range tests {
		t.Run(tt.title, func(t *testing.T) {
			got, err := GenderFromTitle(tt.title)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestGenderFromTitleRejectsUnknown(t *testing.T) {
	for _, title := range []string{"", "Dr.", "mr.", "MRS"} {
		_, err := GenderFromTitle(title)
		assert.ErrorIs(t, err, apperrors.ErrValidationFailed, "title %q", title)
	}
}

func TestNewStudentResponse(t *testing.T) {
	shift := models.ShiftMorning
	s := &models.Student{
		StudentID:     "S014",
		Title:         "Ms.",
		Name:          "Priya Sharma",
		Mobile:        "9876543210",
		AdmissionType: models.AdmissionHalfTime,
		Shift:         &shift,
		SeatNumber:    7,
		AdmissionDate: time.Date(2025, time.June, 1, 0, 0, 0, 0, time.UTC),
		FeeAmount:     600,
		NextDueDate:   time.Date(2025, time.July, 1, 0, 0, 0, 0, time.UTC),
		PaymentHistory: []models.Payment{
			{ReceiptID: "r1", Date: time.Date(2025, time.June, 1, 0, 0, 0, 0, time.UTC), Amount: 600, Method: "UPI"},
		},
		ReceivedCreditLog: []models.CreditEntry{},
		Status:            models.StatusActive,
	}

	resp := NewStudentResponse(s, models.CategoryGirl, true)

	assert.Equal(t, "S014", resp.StudentID)
	assert.Equal(t, "GIRL", resp.Gender)
	assert.Equal(t, "HALF_TIME", resp.AdmissionType)
	require.NotNil(t, resp.Shift)
	assert.Equal(t, "MORNING", *resp.Shift)
	assert.True(t, resp.FeeDue)
	require.Len(t, resp.PaymentHistory, 1)
	assert.Equal(t, "r1", resp.PaymentHistory[0].ReceiptID)
	assert.NotNil(t, resp.ReceivedCreditLog)
	assert.Nil(t, resp.TransferLog)
	assert.Nil(t, resp.DepartureDate)
}

func TestNewStudentResponseDeparted(t *testing.T) {
	departureDate := time.Date(2025, time.June, 21, 0, 0, 0, 0, time.UTC)
	reason := "relocated"
	s := &models.Student{
		StudentID:         "S001",
		Title:             "Mr.",
		Name:              "Rahul Sharma",
		AdmissionType:     models.AdmissionFullTime,
		SeatNumber:        20,
		Status:            models.StatusDeparted,
		PaymentHistory:    []models.Payment{},
		ReceivedCreditLog: []models.CreditEntry{},
		DepartureDate:     &departureDate,
		DepartureReason:   &reason,
		TransferLog:       &models.TransferLog{ToStudentID: "S002", ToName: "Priya Sharma", DaysTransferred: 10},
	}

	resp := NewStudentResponse(s, models.CategoryBoy, false)

	assert.Equal(t, "DEPARTED", resp.Status)
	require.NotNil(t, resp.DepartureDate)
	assert.Equal(t, departureDate, *resp.DepartureDate)
	require.NotNil(t, resp.TransferLog)
	assert.Equal(t, "S002", resp.TransferLog.ToStudentID)
	assert.Equal(t, 10, resp.TransferLog.DaysTransferred)
}
