package models

// AdmissionType defines the billing plan for a student
type AdmissionType string

const (
	AdmissionFullTime AdmissionType = "FULL_TIME"
	AdmissionHalfTime AdmissionType = "HALF_TIME"
)

// Valid reports whether the admission type is a known plan
func (t AdmissionType) Valid() bool {
	return t == AdmissionFullTime || t == AdmissionHalfTime
}

// Shift is the half-day slot attended by a half-time student
type Shift string

const (
	ShiftMorning Shift = "MORNING"
	ShiftEvening Shift = "EVENING"
)

// Valid reports whether the shift is a known half-day slot
func (s Shift) Valid() bool {
	return s == ShiftMorning || s == ShiftEvening
}

// GenderCategory is the seat category a student is admitted against
type GenderCategory string

const (
	CategoryGirl GenderCategory = "GIRL"
	CategoryBoy  GenderCategory = "BOY"
)

// StudentStatus defines the lifecycle state of a student record
type StudentStatus string

const (
	StatusActive   StudentStatus = "ACTIVE"
	StatusDeparted StudentStatus = "DEPARTED"
)
