package services

import (
	"time"

	"github.com/amit20042003/Liberary/internal/app/models"
	"github.com/amit20042003/Liberary/internal/pkg/apperrors"
	"github.com/amit20042003/Liberary/internal/pkg/helpers"
)

// DepartureResult holds both records touched by a departure so the caller can
// persist them as a pair. Credited is nil when no transfer target was chosen
// or when zero days remained, in which case the target record is unchanged
// and needs no write.
type DepartureResult struct {
	Departed *models.Student
	Credited *models.Student
}

// Depart closes out an active student as of the given day and, when a
// transfer target was chosen, moves the remaining prepaid days to that
// student. The transfer log is written on the departing record even when
// zero days remained; the credit itself only applies when days > 0. Credit
// advances the target's due date by plain day count, not calendar months,
// because transferred credit is a day-granular quantity.
func Depart(s, target *models.Student, reason *string, asOf time.Time) (*DepartureResult, error) {
	if !s.IsActive() {
		return nil, apperrors.ErrAlreadyDeparted
	}
	if target != nil && (target.StudentID == s.StudentID || !target.IsActive()) {
		return nil, apperrors.ErrInvalidTransferTarget
	}

	day := helpers.Midnight(asOf)
	remaining := helpers.DaysBetween(day, s.NextDueDate)
	if remaining < 0 {
		remaining = 0
	}

	departed := cloneStudent(s)
	departed.Status = models.StatusDeparted
	departed.DepartureDate = &day
	departed.DepartureReason = reason
	if target != nil {
		departed.TransferLog = &models.TransferLog{
			ToStudentID:     target.StudentID,
			ToName:          target.Name,
			DaysTransferred: remaining,
		}
	}

	var credited *models.Student
	if target != nil && remaining > 0 {
		credited = cloneStudent(target)
		credited.NextDueDate = helpers.Midnight(credited.NextDueDate).AddDate(0, 0, remaining)
		credited.ReceivedCreditLog = append(credited.ReceivedCreditLog, models.CreditEntry{
			FromStudentID: s.StudentID,
			FromName:      s.Name,
			DaysReceived:  remaining,
			Date:          day,
		})
	}

	return &DepartureResult{Departed: departed, Credited: credited}, nil
}

// Reactivate returns a departed student to the active set on a new seat.
// The seat must be fully free, both slots, whatever the student's plan:
// reactivation always re-validates against current occupancy. Ledger fields
// are left alone, so a long-departed student will show as fee-due until the
// next payment; no grace period is granted.
func Reactivate(s *models.Student, newSeatNumber int, seats []models.Seat) (*models.Student, error) {
	if s.Status != models.StatusDeparted {
		return nil, apperrors.NewConflictError("only a departed student can be reactivated")
	}

	var seat *models.Seat
	for i := range seats {
		if seats[i].Number == newSeatNumber {
			seat = &seats[i]
			break
		}
	}
	if seat == nil || !seat.IsFree() {
		return nil, apperrors.ErrSeatNotAvailableForReactivation
	}

	out := cloneStudent(s)
	out.Status = models.StatusActive
	out.SeatNumber = newSeatNumber
	out.DepartureDate = nil
	out.DepartureReason = nil
	out.TransferLog = nil
	return out, nil
}
