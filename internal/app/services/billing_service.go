package services

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/amit20042003/Liberary/internal/app/models"
	"github.com/amit20042003/Liberary/internal/app/repositories"
)

// BillingService handles fee payments and due tracking
type BillingService struct {
	studentRepo *repositories.StudentRepository
	logger      zerolog.Logger
	now         func() time.Time
}

// NewBillingService creates a new BillingService
func NewBillingService(studentRepo *repositories.StudentRepository, logger zerolog.Logger) *BillingService {
	return &BillingService{
		studentRepo: studentRepo,
		logger:      logger,
		now:         time.Now,
	}
}

// Pay records a payment covering the given number of months and advances the
// student's due date accordingly
func (s *BillingService) Pay(ctx context.Context, accountID int64, studentID string, p PaymentInput, months int) (*models.Student, error) {
	student, err := s.studentRepo.GetByStudentID(ctx, accountID, studentID)
	if err != nil {
		return nil, err
	}

	updated, err := RecordPayment(student, p, months, s.now())
	if err != nil {
		return nil, err
	}

	if err := s.studentRepo.Update(ctx, updated); err != nil {
		return nil, err
	}

	s.logger.Info().Int64("accountId", accountID).Str("studentId", studentID).
		Int("months", months).Int64("amount", p.Amount*int64(months)).Msg("Fee payment recorded")
	return updated, nil
}

// MarkDue forces a student into the fee-due state without touching the ledger
func (s *BillingService) MarkDue(ctx context.Context, accountID int64, studentID string) (*models.Student, error) {
	student, err := s.studentRepo.GetByStudentID(ctx, accountID, studentID)
	if err != nil {
		return nil, err
	}

	updated := MarkAsDue(student, s.now())
	if err := s.studentRepo.Update(ctx, updated); err != nil {
		return nil, err
	}

	s.logger.Info().Int64("accountId", accountID).Str("studentId", studentID).Msg("Student marked as fee due")
	return updated, nil
}

// DueStudents lists the active students whose fee is unpaid as of now
func (s *BillingService) DueStudents(ctx context.Context, accountID int64) ([]*models.Student, error) {
	students, err := s.studentRepo.ListByStatus(ctx, accountID, models.StatusActive)
	if err != nil {
		return nil, err
	}

	now := s.now()
	due := make([]*models.Student, 0)
	for _, student := range students {
		if IsDue(student, now) {
			due = append(due, student)
		}
	}
	return due, nil
}

// IsDueNow reports whether a single student is fee due at this moment
func (s *BillingService) IsDueNow(student *models.Student) bool {
	return IsDue(student, s.now())
}
