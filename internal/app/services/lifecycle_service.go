package services

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/amit20042003/Liberary/internal/app/models"
	"github.com/amit20042003/Liberary/internal/app/repositories"
	"github.com/amit20042003/Liberary/internal/pkg/apperrors"
)

// LifecycleService handles departures and reactivations
type LifecycleService struct {
	studentRepo *repositories.StudentRepository
	layout      models.SeatLayout
	logger      zerolog.Logger
	now         func() time.Time
}

// NewLifecycleService creates a new LifecycleService
func NewLifecycleService(studentRepo *repositories.StudentRepository, layout models.SeatLayout, logger zerolog.Logger) *LifecycleService {
	return &LifecycleService{
		studentRepo: studentRepo,
		layout:      layout,
		logger:      logger,
		now:         time.Now,
	}
}

// Depart closes out a student and, when a transfer target is named, moves the
// remaining prepaid days to that student. Both records are written in one
// transaction when a credit applies.
func (s *LifecycleService) Depart(ctx context.Context, accountID int64, studentID string, reason, transferToStudentID *string) (*DepartureResult, error) {
	student, err := s.studentRepo.GetByStudentID(ctx, accountID, studentID)
	if err != nil {
		return nil, err
	}

	var target *models.Student
	if transferToStudentID != nil && *transferToStudentID != "" {
		target, err = s.studentRepo.GetByStudentID(ctx, accountID, *transferToStudentID)
		if err != nil {
			if apperrors.Is(err, apperrors.ErrStudentNotFound) {
				return nil, apperrors.ErrInvalidTransferTarget
			}
			return nil, err
		}
	}

	result, err := Depart(student, target, reason, s.now())
	if err != nil {
		return nil, err
	}

	if result.Credited != nil {
		err = s.studentRepo.UpdatePair(ctx, result.Departed, result.Credited)
	} else {
		err = s.studentRepo.Update(ctx, result.Departed)
	}
	if err != nil {
		return nil, err
	}

	event := s.logger.Info().Int64("accountId", accountID).Str("studentId", studentID)
	if result.Departed.TransferLog != nil {
		event = event.Str("transferTo", result.Departed.TransferLog.ToStudentID).
			Int("daysTransferred", result.Departed.TransferLog.DaysTransferred)
	}
	event.Msg("Student departed")
	return result, nil
}

// Reactivate returns a departed student to the active set on a fully free
// seat. The ledger is untouched, so stale due dates surface immediately.
func (s *LifecycleService) Reactivate(ctx context.Context, accountID int64, studentID string, newSeatNumber int) (*models.Student, error) {
	student, err := s.studentRepo.GetByStudentID(ctx, accountID, studentID)
	if err != nil {
		return nil, err
	}

	active, err := s.studentRepo.ListByStatus(ctx, accountID, models.StatusActive)
	if err != nil {
		return nil, err
	}
	seats, _ := ComputeOccupancy(s.layout, active)

	updated, err := Reactivate(student, newSeatNumber, seats)
	if err != nil {
		return nil, err
	}

	if err := s.studentRepo.Update(ctx, updated); err != nil {
		return nil, err
	}

	s.logger.Info().Int64("accountId", accountID).Str("studentId", studentID).
		Int("seat", newSeatNumber).Msg("Student reactivated")
	return updated, nil
}
