package services

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/amit20042003/Liberary/internal/app/repositories"
	"github.com/amit20042003/Liberary/internal/pkg/email"
)

// ReminderService mails owners a digest of students whose fee is overdue.
// Triggered on demand from the API; there is no background scheduler.
type ReminderService struct {
	billingService *BillingService
	ownerRepo      *repositories.OwnerRepository
	emailService   email.EmailService
	logger         zerolog.Logger
}

// NewReminderService creates a new ReminderService
func NewReminderService(
	billingService *BillingService,
	ownerRepo *repositories.OwnerRepository,
	emailService email.EmailService,
	logger zerolog.Logger,
) *ReminderService {
	return &ReminderService{
		billingService: billingService,
		ownerRepo:      ownerRepo,
		emailService:   emailService,
		logger:         logger,
	}
}

// SendFeeDueDigest collects the account's overdue students and mails the
// digest to the owner. Returns the number of students included.
func (s *ReminderService) SendFeeDueDigest(ctx context.Context, accountID int64) (int, error) {
	owner, err := s.ownerRepo.GetByID(ctx, accountID)
	if err != nil {
		return 0, err
	}

	due, err := s.billingService.DueStudents(ctx, accountID)
	if err != nil {
		return 0, err
	}
	if len(due) == 0 {
		return 0, nil
	}

	items := make([]email.DueStudent, 0, len(due))
	for _, student := range due {
		items = append(items, email.DueStudent{
			StudentID:  student.StudentID,
			Name:       student.Name,
			SeatNumber: student.SeatNumber,
			DueDate:    student.NextDueDate,
			FeeAmount:  student.FeeAmount,
		})
	}

	if err := s.emailService.SendFeeDueDigest(owner.Email, owner.LibraryName, items); err != nil {
		return 0, err
	}

	s.logger.Info().Int64("accountId", accountID).Int("dueCount", len(items)).Msg("Fee due digest sent")
	return len(items), nil
}
