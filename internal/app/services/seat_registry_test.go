package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/amit20042003/Liberary/internal/app/models"
)

var testLayout = models.SeatLayout{Count: 50, GirlSeatsThrough: 15}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func shiftPtr(s models.Shift) *models.Shift { return &s }

func activeStudent(id string, admissionType models.AdmissionType, shift *models.Shift, seat int) *models.Student {
	title := "Mr."
	if seat <= testLayout.GirlSeatsThrough {
		title = "Ms."
	}
	return &models.Student{
		StudentID:         id,
		Title:             title,
		Name:              "Student " + id,
		Mobile:            "9876543210",
		AdmissionType:     admissionType,
		Shift:             shift,
		SeatNumber:        seat,
		AdmissionDate:     date(2025, time.June, 1),
		FeeAmount:         1200,
		NextDueDate:       date(2025, time.July, 1),
		PaymentHistory:    []models.Payment{},
		ReceivedCreditLog: []models.CreditEntry{},
		Status:            models.StatusActive,
	}
}

func TestComputeOccupancyEmpty(t *testing.T) {
	seats, conflicts := ComputeOccupancy(testLayout, nil)

	require.Len(t, seats, 50)
	assert.Empty(t, conflicts)
	for i, seat := range seats {
		assert.Equal(t, i+1, seat.Number)
		assert.True(t, seat.IsFree())
	}
	assert.Equal(t, models.CategoryGirl, seats[0].Gender)
	assert.Equal(t, models.CategoryGirl, seats[14].Gender)
	assert.Equal(t, models.CategoryBoy, seats[15].Gender)
	assert.Equal(t, models.CategoryBoy, seats[49].Gender)
}

func TestComputeOccupancyFullTimeTakesBothSlots(t *testing.T) {
	students := []*models.Student{
		activeStudent("S001", models.AdmissionFullTime, nil, 20),
	}

	seats, conflicts := ComputeOccupancy(testLayout, students)

	assert.Empty(t, conflicts)
	seat := seats[19]
	require.NotNil(t, seat.Occupancy.Morning)
	require.NotNil(t, seat.Occupancy.Evening)
	assert.Equal(t, "S001", *seat.Occupancy.Morning)
	assert.Equal(t, "S001", *seat.Occupancy.Evening)
	assert.False(t, seat.IsFree())
}

func TestComputeOccupancyHalfTimeSharesSeat(t *testing.T) {
	students := []*models.Student{
		activeStudent("S001", models.AdmissionHalfTime, shiftPtr(models.ShiftMorning), 7),
		activeStudent("S002", models.AdmissionHalfTime, shiftPtr(models.ShiftEvening), 7),
	}

	seats, conflicts := ComputeOccupancy(testLayout, students)

	assert.Empty(t, conflicts)
	seat := seats[6]
	require.NotNil(t, seat.Occupancy.Morning)
	require.NotNil(t, seat.Occupancy.Evening)
	assert.Equal(t, "S001", *seat.Occupancy.Morning)
	assert.Equal(t, "S002", *seat.Occupancy.Evening)
}

func TestComputeOccupancyIgnoresDepartedStudents(t *testing.T) {
	departed := activeStudent("S001", models.AdmissionFullTime, nil, 20)
	departed.Status = models.StatusDeparted

	seats, conflicts := ComputeOccupancy(testLayout, []*models.Student{departed})

	assert.Empty(t, conflicts)
	assert.True(t, seats[19].IsFree())
}

func TestComputeOccupancyOrderIndependent(t *testing.T) {
	a := activeStudent("S001", models.AdmissionHalfTime, shiftPtr(models.ShiftMorning), 30)
	b := activeStudent("S002", models.AdmissionFullTime, nil, 31)
	c := activeStudent("S003", models.AdmissionHalfTime, shiftPtr(models.ShiftEvening), 30)

	first, _ := ComputeOccupancy(testLayout, []*models.Student{a, b, c})
	second, _ := ComputeOccupancy(testLayout, []*models.Student{c, a, b})

	assert.Equal(t, first, second)
}

func TestComputeOccupancyReportsSlotConflict(t *testing.T) {
	students := []*models.Student{
		activeStudent("S001", models.AdmissionFullTime, nil, 25),
		activeStudent("S002", models.AdmissionHalfTime, shiftPtr(models.ShiftMorning), 25),
	}

	seats, conflicts := ComputeOccupancy(testLayout, students)

	require.Len(t, conflicts, 1)
	assert.Equal(t, 25, conflicts[0].SeatNumber)
	assert.Equal(t, models.ShiftMorning, conflicts[0].Shift)
	assert.Equal(t, "S001", conflicts[0].HolderID)
	assert.Equal(t, "S002", conflicts[0].ClaimantID)

	// Lower public ID wins the slot, the rest of the map still builds
	require.NotNil(t, seats[24].Occupancy.Morning)
	assert.Equal(t, "S001", *seats[24].Occupancy.Morning)
}

func TestComputeOccupancyReportsOutOfLayoutSeat(t *testing.T) {
	students := []*models.Student{
		activeStudent("S001", models.AdmissionFullTime, nil, 99),
	}

	_, conflicts := ComputeOccupancy(testLayout, students)

	require.Len(t, conflicts, 1)
	assert.Equal(t, 99, conflicts[0].SeatNumber)
	assert.Equal(t, "S001", conflicts[0].ClaimantID)
	assert.Empty(t, conflicts[0].HolderID)
}

func TestFindAvailableSeatsFullTime(t *testing.T) {
	students := []*models.Student{
		activeStudent("S001", models.AdmissionHalfTime, shiftPtr(models.ShiftMorning), 20),
		activeStudent("S002", models.AdmissionFullTime, nil, 21),
	}
	seats, _ := ComputeOccupancy(testLayout, students)

	available := FindAvailableSeats(seats, models.CategoryBoy, models.AdmissionFullTime, nil)

	// Half-occupied seat 20 and fully occupied 21 are both out
	numbers := make(map[int]bool, len(available))
	for _, seat := range available {
		numbers[seat.Number] = true
	}
	assert.False(t, numbers[20])
	assert.False(t, numbers[21])
	assert.True(t, numbers[22])
	assert.Len(t, available, 33)
}

func TestFindAvailableSeatsHalfTimeSharesMixedSeat(t *testing.T) {
	students := []*models.Student{
		activeStudent("S001", models.AdmissionHalfTime, shiftPtr(models.ShiftMorning), 20),
	}
	seats, _ := ComputeOccupancy(testLayout, students)

	evening := FindAvailableSeats(seats, models.CategoryBoy, models.AdmissionHalfTime, shiftPtr(models.ShiftEvening))
	morning := FindAvailableSeats(seats, models.CategoryBoy, models.AdmissionHalfTime, shiftPtr(models.ShiftMorning))

	assert.True(t, seatAvailable(evening, 20))
	assert.False(t, seatAvailable(morning, 20))
}

func TestFindAvailableSeatsFiltersGenderSection(t *testing.T) {
	seats, _ := ComputeOccupancy(testLayout, nil)

	girls := FindAvailableSeats(seats, models.CategoryGirl, models.AdmissionFullTime, nil)
	boys := FindAvailableSeats(seats, models.CategoryBoy, models.AdmissionFullTime, nil)

	assert.Len(t, girls, 15)
	assert.Len(t, boys, 35)
	for _, seat := range girls {
		assert.LessOrEqual(t, seat.Number, 15)
	}
	for _, seat := range boys {
		assert.Greater(t, seat.Number, 15)
	}
}

func TestFindAvailableSeatsHalfTimeWithoutShift(t *testing.T) {
	seats, _ := ComputeOccupancy(testLayout, nil)

	available := FindAvailableSeats(seats, models.CategoryBoy, models.AdmissionHalfTime, nil)

	assert.Empty(t, available)
}
