package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/amit20042003/Liberary/internal/app/models"
	"github.com/amit20042003/Liberary/internal/pkg/apperrors"
)

var testFees = models.FeeStructure{FullTime: 1200, HalfTime: 600}

func validAdmissionInput() AdmissionInput {
	return AdmissionInput{
		Title:         "Mr.",
		Name:          "Rahul Sharma",
		FatherName:    "Suresh Sharma",
		Mobile:        "9876543210",
		PhotoURL:      "http://localhost:8080/uploads/students/abc.jpg",
		Gender:        models.CategoryBoy,
		AdmissionType: models.AdmissionFullTime,
		SeatNumber:    20,
		AdmissionDate: date(2025, time.July, 1),
	}
}

func emptySeats() []models.Seat {
	seats, _ := ComputeOccupancy(testLayout, nil)
	return seats
}

func TestNewAdmissionFullTime(t *testing.T) {
	student, err := NewAdmission(validAdmissionInput(), emptySeats(), testFees, 13)

	require.NoError(t, err)
	assert.Equal(t, "S014", student.StudentID)
	assert.Equal(t, "Rahul Sharma", student.Name)
	assert.Equal(t, models.AdmissionFullTime, student.AdmissionType)
	assert.Nil(t, student.Shift)
	assert.Equal(t, 20, student.SeatNumber)
	assert.Equal(t, int64(1200), student.FeeAmount)
	assert.Equal(t, models.StatusActive, student.Status)
	assert.Empty(t, student.PaymentHistory)
	assert.Empty(t, student.ReceivedCreditLog)

	// First month is covered at admission
	assert.Equal(t, date(2025, time.August, 1), student.NextDueDate)
}

func TestNewAdmissionHalfTimeCapturesRate(t *testing.T) {
	in := validAdmissionInput()
	in.AdmissionType = models.AdmissionHalfTime
	in.Shift = shiftPtr(models.ShiftEvening)

	student, err := NewAdmission(in, emptySeats(), testFees, 0)

	require.NoError(t, err)
	assert.Equal(t, "S001", student.StudentID)
	assert.Equal(t, int64(600), student.FeeAmount)
	require.NotNil(t, student.Shift)
	assert.Equal(t, models.ShiftEvening, *student.Shift)
}

func TestNewAdmissionDueDateClampsShortMonth(t *testing.T) {
	in := validAdmissionInput()
	in.AdmissionDate = date(2025, time.January, 31)

	student, err := NewAdmission(in, emptySeats(), testFees, 0)

	require.NoError(t, err)
	assert.Equal(t, date(2025, time.February, 28), student.NextDueDate)
}

func TestNewAdmissionMissingFields(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*AdmissionInput)
	}{
		{"name", func(in *AdmissionInput) { in.Name = "  " }},
		{"mobile", func(in *AdmissionInput) { in.Mobile = "" }},
		{"admission date", func(in *AdmissionInput) { in.AdmissionDate = time.Time{} }},
		{"photo", func(in *AdmissionInput) { in.PhotoURL = "" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := validAdmissionInput()
			tt.mutate(&in)

			_, err := NewAdmission(in, emptySeats(), testFees, 0)

			assert.ErrorIs(t, err, apperrors.ErrMissingRequiredField)
		})
	}
}

func TestNewAdmissionInvalidPlanShiftCombinations(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*AdmissionInput)
	}{
		{"unknown admission type", func(in *AdmissionInput) { in.AdmissionType = "WEEKEND" }},
		{"full time with shift", func(in *AdmissionInput) { in.Shift = shiftPtr(models.ShiftMorning) }},
		{"half time without shift", func(in *AdmissionInput) {
			in.AdmissionType = models.AdmissionHalfTime
			in.Shift = nil
		}},
		{"half time with unknown shift", func(in *AdmissionInput) {
			in.AdmissionType = models.AdmissionHalfTime
			in.Shift = shiftPtr("NIGHT")
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := validAdmissionInput()
			tt.mutate(&in)

			_, err := NewAdmission(in, emptySeats(), testFees, 0)

			assert.ErrorIs(t, err, apperrors.ErrInvalidAdmissionType)
		})
	}
}

func TestNewAdmissionSeatNotAvailable(t *testing.T) {
	taken := []*models.Student{
		activeStudent("S001", models.AdmissionFullTime, nil, 20),
	}
	seats, _ := ComputeOccupancy(testLayout, taken)

	_, err := NewAdmission(validAdmissionInput(), seats, testFees, 1)

	assert.ErrorIs(t, err, apperrors.ErrNoSeatAvailable)
}

func TestNewAdmissionWrongGenderSection(t *testing.T) {
	in := validAdmissionInput()
	in.SeatNumber = 5 // girls' section

	_, err := NewAdmission(in, emptySeats(), testFees, 0)

	assert.ErrorIs(t, err, apperrors.ErrNoSeatAvailable)
}

func TestNewAdmissionHalfTimeOnMixedSeat(t *testing.T) {
	taken := []*models.Student{
		activeStudent("S001", models.AdmissionHalfTime, shiftPtr(models.ShiftMorning), 20),
	}
	seats, _ := ComputeOccupancy(testLayout, taken)

	in := validAdmissionInput()
	in.AdmissionType = models.AdmissionHalfTime
	in.Shift = shiftPtr(models.ShiftEvening)

	student, err := NewAdmission(in, seats, testFees, 1)

	require.NoError(t, err)
	assert.Equal(t, "S002", student.StudentID)
	assert.Equal(t, 20, student.SeatNumber)
}

func TestNewAdmissionTrimsWhitespace(t *testing.T) {
	in := validAdmissionInput()
	in.Name = "  Rahul Sharma  "
	in.FatherName = " Suresh Sharma "

	student, err := NewAdmission(in, emptySeats(), testFees, 0)

	require.NoError(t, err)
	assert.Equal(t, "Rahul Sharma", student.Name)
	assert.Equal(t, "Suresh Sharma", student.FatherName)
}
