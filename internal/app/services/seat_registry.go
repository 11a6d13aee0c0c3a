package services

import (
	"sort"

	"github.com/amit20042003/Liberary/internal/app/models"
)

// SlotConflict flags a half-day slot claimed by more than one active student,
// or an active student recorded against a seat outside the layout. Conflicts
// are data-integrity findings: the registry reports them and keeps building
// the rest of the seat map.
type SlotConflict struct {
	SeatNumber int          `json:"seatNumber"`
	Shift      models.Shift `json:"shift,omitempty"`
	HolderID   string       `json:"holderId,omitempty"` // Student already placed in the slot
	ClaimantID string       `json:"claimantId"`         // Student whose claim could not be placed
}

// ComputeOccupancy derives the full seat map from the active-student set.
// Full-time students occupy both slots of their seat, half-time students only
// the slot matching their shift. The input order is irrelevant: students are
// placed in public-ID order, so two calls over the same set always produce
// identical seat arrays.
func ComputeOccupancy(layout models.SeatLayout, students []*models.Student) ([]models.Seat, []SlotConflict) {
	seats := make([]models.Seat, layout.Count)
	for i := range seats {
		seats[i] = models.Seat{Number: i + 1, Gender: layout.GenderFor(i + 1)}
	}

	active := make([]*models.Student, 0, len(students))
	for _, s := range students {
		if s != nil && s.IsActive() {
			active = append(active, s)
		}
	}
	sort.Slice(active, func(i, j int) bool { return active[i].StudentID < active[j].StudentID })

	var conflicts []SlotConflict
	for _, s := range active {
		if !layout.Contains(s.SeatNumber) {
			conflicts = append(conflicts, SlotConflict{SeatNumber: s.SeatNumber, ClaimantID: s.StudentID})
			continue
		}
		seat := &seats[s.SeatNumber-1]
		if s.AdmissionType == models.AdmissionFullTime {
			conflicts = claimSlot(seat, models.ShiftMorning, s.StudentID, conflicts)
			conflicts = claimSlot(seat, models.ShiftEvening, s.StudentID, conflicts)
			continue
		}
		if s.Shift != nil {
			conflicts = claimSlot(seat, *s.Shift, s.StudentID, conflicts)
		}
	}
	return seats, conflicts
}

// claimSlot places a student ID into one half-day slot, recording a conflict
// instead of overwriting an existing claim
func claimSlot(seat *models.Seat, shift models.Shift, studentID string, conflicts []SlotConflict) []SlotConflict {
	slot := &seat.Occupancy.Morning
	if shift == models.ShiftEvening {
		slot = &seat.Occupancy.Evening
	}
	if *slot != nil {
		return append(conflicts, SlotConflict{
			SeatNumber: seat.Number,
			Shift:      shift,
			HolderID:   **slot,
			ClaimantID: studentID,
		})
	}
	id := studentID
	*slot = &id
	return conflicts
}

// FindAvailableSeats filters seats by gender category and by the slots the
// requested plan needs: full-time requires both slots free, half-time only
// the requested shift. A returned seat may well have its other half-day slot
// occupied; mixed occupancy is how half-time seats are meant to be shared.
func FindAvailableSeats(seats []models.Seat, gender models.GenderCategory, admissionType models.AdmissionType, shift *models.Shift) []models.Seat {
	var available []models.Seat
	for _, seat := range seats {
		if seat.Gender != gender {
			continue
		}
		switch admissionType {
		case models.AdmissionFullTime:
			if seat.IsFree() {
				available = append(available, seat)
			}
		case models.AdmissionHalfTime:
			if shift != nil && seat.SlotFree(*shift) {
				available = append(available, seat)
			}
		}
	}
	return available
}

func seatAvailable(available []models.Seat, number int) bool {
	for _, seat := range available {
		if seat.Number == number {
			return true
		}
	}
	return false
}
