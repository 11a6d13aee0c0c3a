package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatStudentID(t *testing.T) {
	assert.Equal(t, "S001", FormatStudentID(1))
	assert.Equal(t, "S014", FormatStudentID(14))
	assert.Equal(t, "S100", FormatStudentID(100))
	// The width grows past three digits instead of wrapping
	assert.Equal(t, "S1234", FormatStudentID(1234))
}

func TestNumericID(t *testing.T) {
	assert.Equal(t, 14, (&Student{StudentID: "S014"}).NumericID())
	assert.Equal(t, 1234, (&Student{StudentID: "S1234"}).NumericID())
	assert.Equal(t, 0, (&Student{StudentID: "garbage"}).NumericID())
}

func TestSeatLayout(t *testing.T) {
	layout := SeatLayout{Count: 50, GirlSeatsThrough: 15}

	assert.Equal(t, CategoryGirl, layout.GenderFor(1))
	assert.Equal(t, CategoryGirl, layout.GenderFor(15))
	assert.Equal(t, CategoryBoy, layout.GenderFor(16))
	assert.Equal(t, CategoryBoy, layout.GenderFor(50))

	assert.True(t, layout.Contains(1))
	assert.True(t, layout.Contains(50))
	assert.False(t, layout.Contains(0))
	assert.False(t, layout.Contains(51))
}

func TestSeatSlotHelpers(t *testing.T) {
	id := "S001"
	seat := Seat{Number: 7, Gender: CategoryGirl, Occupancy: SeatOccupancy{Morning: &id}}

	assert.False(t, seat.IsFree())
	assert.False(t, seat.SlotFree(ShiftMorning))
	assert.True(t, seat.SlotFree(ShiftEvening))

	assert.True(t, Seat{Number: 8}.IsFree())
}
