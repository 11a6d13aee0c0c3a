package dto

import "github.com/amit20042003/Liberary/internal/app/models"

// SeatResponse represents one seat and its derived occupancy
type SeatResponse struct {
	Number  int     `json:"number" example:"12"`
	Gender  string  `json:"gender" example:"BOY"`
	Morning *string `json:"morning,omitempty" example:"S014"`
	Evening *string `json:"evening,omitempty" example:"S021"`
	IsFree  bool    `json:"isFree"`
}

// SlotConflictResponse flags a seat slot claimed by more than one active
// student. Conflicts indicate corrupted data, not a normal state.
type SlotConflictResponse struct {
	SeatNumber int    `json:"seatNumber"`
	Shift      string `json:"shift"`
	HolderID   string `json:"holderId"`
	ClaimantID string `json:"claimantId"`
}

// SeatMapResponse represents the full seat map
type SeatMapResponse struct {
	Seats     []SeatResponse         `json:"seats"`
	Conflicts []SlotConflictResponse `json:"conflicts,omitempty"`
}

// AvailableSeatsResponse lists the seat numbers open to a prospective
// admission
type AvailableSeatsResponse struct {
	SeatNumbers []int `json:"seatNumbers"`
}

// NewSeatResponse maps a seat model to its response form
func NewSeatResponse(seat models.Seat) SeatResponse {
	return SeatResponse{
		Number:  seat.Number,
		Gender:  string(seat.Gender),
		Morning: seat.Occupancy.Morning,
		Evening: seat.Occupancy.Evening,
		IsFree:  seat.IsFree(),
	}
}
