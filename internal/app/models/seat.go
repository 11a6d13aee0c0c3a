package models

// SeatOccupancy holds the two independent half-day slots of a seat.
// A slot carries the public ID of the occupying student, or nil when free.
// A full-time student occupies both slots with the same ID.
type SeatOccupancy struct {
	Morning *string `json:"morning" example:"S001"`
	Evening *string `json:"evening"`
}

// Seat is one numbered seat of the library's fixed pool. Occupancy is always
// derived from the active-student set, never stored.
type Seat struct {
	Number    int            `json:"number" example:"12"`
	Gender    GenderCategory `json:"gender" example:"GIRL"`
	Occupancy SeatOccupancy  `json:"occupancy"`
}

// IsFree reports whether both half-day slots are unoccupied
func (s Seat) IsFree() bool {
	return s.Occupancy.Morning == nil && s.Occupancy.Evening == nil
}

// SlotFree reports whether the given shift slot is unoccupied
func (s Seat) SlotFree(shift Shift) bool {
	if shift == ShiftMorning {
		return s.Occupancy.Morning == nil
	}
	return s.Occupancy.Evening == nil
}

// SeatLayout describes the fixed seat pool of a library: Count numbered
// seats, of which 1..GirlSeatsThrough are reserved for the GIRL category.
type SeatLayout struct {
	Count            int
	GirlSeatsThrough int
}

// GenderFor returns the category a seat number belongs to
func (l SeatLayout) GenderFor(number int) GenderCategory {
	if number >= 1 && number <= l.GirlSeatsThrough {
		return CategoryGirl
	}
	return CategoryBoy
}

// Contains reports whether the seat number exists in this layout
func (l SeatLayout) Contains(number int) bool {
	return number >= 1 && number <= l.Count
}
