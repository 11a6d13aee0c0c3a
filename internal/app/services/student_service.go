package services

import (
	"context"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/amit20042003/Liberary/internal/app/models"
	"github.com/amit20042003/Liberary/internal/app/models/dto"
	"github.com/amit20042003/Liberary/internal/app/repositories"
)

// StudentService handles seat allocation, admissions and student records for
// one library account per call
type StudentService struct {
	studentRepo *repositories.StudentRepository
	feeRepo     *repositories.FeeStructureRepository
	layout      models.SeatLayout
	logger      zerolog.Logger
	now         func() time.Time
}

// NewStudentService creates a new StudentService
func NewStudentService(
	studentRepo *repositories.StudentRepository,
	feeRepo *repositories.FeeStructureRepository,
	layout models.SeatLayout,
	logger zerolog.Logger,
) *StudentService {
	return &StudentService{
		studentRepo: studentRepo,
		feeRepo:     feeRepo,
		layout:      layout,
		logger:      logger,
		now:         time.Now,
	}
}

// SeatMap derives the current seat map from the account's active students
func (s *StudentService) SeatMap(ctx context.Context, accountID int64) ([]models.Seat, []SlotConflict, error) {
	students, err := s.studentRepo.ListByStatus(ctx, accountID, models.StatusActive)
	if err != nil {
		return nil, nil, err
	}
	seats, conflicts := ComputeOccupancy(s.layout, students)
	if len(conflicts) > 0 {
		s.logger.Warn().Int64("accountId", accountID).Int("conflicts", len(conflicts)).
			Msg("Seat map contains conflicting occupancy claims")
	}
	return seats, conflicts, nil
}

// AvailableSeats lists the seat numbers open to a prospective admission of
// the given category and plan
func (s *StudentService) AvailableSeats(ctx context.Context, accountID int64, gender models.GenderCategory, admissionType models.AdmissionType, shift *models.Shift) ([]int, error) {
	seats, _, err := s.SeatMap(ctx, accountID)
	if err != nil {
		return nil, err
	}
	available := FindAvailableSeats(seats, gender, admissionType, shift)
	numbers := make([]int, 0, len(available))
	for _, seat := range available {
		numbers = append(numbers, seat.Number)
	}
	return numbers, nil
}

// Admit validates an admission against the current seat map and fee structure,
// assigns the next sequential public ID and persists the new student
func (s *StudentService) Admit(ctx context.Context, accountID int64, in AdmissionInput) (*models.Student, error) {
	seats, _, err := s.SeatMap(ctx, accountID)
	if err != nil {
		return nil, err
	}

	fees, err := s.feeRepo.GetByAccount(ctx, accountID)
	if err != nil {
		return nil, err
	}

	maxID, err := s.studentRepo.MaxNumericID(ctx, accountID)
	if err != nil {
		return nil, err
	}

	student, err := NewAdmission(in, seats, *fees, maxID)
	if err != nil {
		return nil, err
	}

	student.AccountID = accountID
	if err := s.studentRepo.Create(ctx, student); err != nil {
		return nil, err
	}

	s.logger.Info().Int64("accountId", accountID).Str("studentId", student.StudentID).
		Int("seat", student.SeatNumber).Msg("Student admitted")
	return student, nil
}

// Get retrieves a student by public ID
func (s *StudentService) Get(ctx context.Context, accountID int64, studentID string) (*models.Student, error) {
	return s.studentRepo.GetByStudentID(ctx, accountID, studentID)
}

// List retrieves the account's students, optionally filtered by status
func (s *StudentService) List(ctx context.Context, accountID int64, status *models.StudentStatus) ([]*models.Student, error) {
	if status != nil {
		return s.studentRepo.ListByStatus(ctx, accountID, *status)
	}
	return s.studentRepo.ListByAccount(ctx, accountID)
}

// Search finds students by name, mobile or public ID fragment
func (s *StudentService) Search(ctx context.Context, accountID int64, term string) ([]*models.Student, error) {
	return s.studentRepo.Search(ctx, accountID, strings.TrimSpace(term))
}

// UpdateDetails edits a student's contact fields. Seat, plan and ledger are
// out of scope here and change only through their dedicated operations.
func (s *StudentService) UpdateDetails(ctx context.Context, accountID int64, studentID string, req *dto.UpdateStudentRequest) (*models.Student, error) {
	if _, err := dto.GenderFromTitle(req.Title); err != nil {
		return nil, err
	}

	student, err := s.studentRepo.GetByStudentID(ctx, accountID, studentID)
	if err != nil {
		return nil, err
	}

	student.Title = req.Title
	student.Name = strings.TrimSpace(req.Name)
	student.FatherName = strings.TrimSpace(req.FatherName)
	student.Mobile = strings.TrimSpace(req.Mobile)

	if err := s.studentRepo.Update(ctx, student); err != nil {
		return nil, err
	}
	return student, nil
}

// SetPhoto stores the URL of a freshly uploaded student photo
func (s *StudentService) SetPhoto(ctx context.Context, accountID int64, studentID, photoURL string) (*models.Student, error) {
	student, err := s.studentRepo.GetByStudentID(ctx, accountID, studentID)
	if err != nil {
		return nil, err
	}
	student.PhotoURL = photoURL
	if err := s.studentRepo.Update(ctx, student); err != nil {
		return nil, err
	}
	return student, nil
}

// Delete removes a student record permanently, freeing the seat
func (s *StudentService) Delete(ctx context.Context, accountID int64, studentID string) error {
	if err := s.studentRepo.Delete(ctx, accountID, studentID); err != nil {
		return err
	}
	s.logger.Info().Int64("accountId", accountID).Str("studentId", studentID).Msg("Student record deleted")
	return nil
}

// Dashboard aggregates the owner's at-a-glance numbers from the full student
// set. Seat counts come from derived occupancy; collections sum the payment
// entries dated in the current calendar month.
func (s *StudentService) Dashboard(ctx context.Context, accountID int64) (*dto.DashboardResponse, error) {
	students, err := s.studentRepo.ListByAccount(ctx, accountID)
	if err != nil {
		return nil, err
	}

	now := s.now()
	seats, _ := ComputeOccupancy(s.layout, students)

	resp := &dto.DashboardResponse{TotalSeats: s.layout.Count}
	for _, seat := range seats {
		switch {
		case seat.Occupancy.Morning != nil && seat.Occupancy.Evening != nil:
			resp.FullyOccupied++
		case seat.Occupancy.Morning != nil || seat.Occupancy.Evening != nil:
			resp.PartiallyOccupied++
		default:
			resp.FreeSeats++
		}
	}

	for _, student := range students {
		if student.IsActive() {
			resp.ActiveStudents++
			if IsDue(student, now) {
				resp.FeeDueCount++
			}
		} else {
			resp.DepartedStudents++
		}
		for _, p := range student.PaymentHistory {
			if p.Date.Year() == now.Year() && p.Date.Month() == now.Month() {
				resp.CollectedThisMonth += p.Amount
			}
		}
	}

	return resp, nil
}

// Layout exposes the configured seat layout
func (s *StudentService) Layout() models.SeatLayout {
	return s.layout
}
