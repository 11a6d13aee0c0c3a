package services

import (
	"strings"
	"time"

	"github.com/amit20042003/Liberary/internal/app/models"
	"github.com/amit20042003/Liberary/internal/pkg/apperrors"
	"github.com/amit20042003/Liberary/internal/pkg/helpers"
)

// AdmissionInput carries everything the allocator needs to create a student.
// Gender is already derived from the title by the caller; the allocator only
// consumes the resulting category.
type AdmissionInput struct {
	Title         string
	Name          string
	FatherName    string
	Mobile        string
	PhotoURL      string
	Gender        models.GenderCategory
	AdmissionType models.AdmissionType
	Shift         *models.Shift
	SeatNumber    int
	AdmissionDate time.Time
}

// NewAdmission validates an admission request against the current seat map
// and fee structure and builds the new active student record. The first fee
// period is treated as covered at admission: the next due date is seeded one
// calendar month after the admission date.
func NewAdmission(in AdmissionInput, seats []models.Seat, fees models.FeeStructure, maxNumericID int) (*models.Student, error) {
	if strings.TrimSpace(in.Name) == "" {
		return nil, apperrors.NewMissingFieldError("name")
	}
	if strings.TrimSpace(in.Mobile) == "" {
		return nil, apperrors.NewMissingFieldError("mobile")
	}
	if in.AdmissionDate.IsZero() {
		return nil, apperrors.NewMissingFieldError("admissionDate")
	}
	if strings.TrimSpace(in.PhotoURL) == "" {
		return nil, apperrors.NewMissingFieldError("photo")
	}

	if !in.AdmissionType.Valid() {
		return nil, apperrors.NewCustomError(apperrors.ErrInvalidAdmissionType, "admission type must be FULL_TIME or HALF_TIME")
	}
	if in.AdmissionType == models.AdmissionFullTime && in.Shift != nil {
		return nil, apperrors.NewCustomError(apperrors.ErrInvalidAdmissionType, "full-time admission must not carry a shift")
	}
	if in.AdmissionType == models.AdmissionHalfTime && (in.Shift == nil || !in.Shift.Valid()) {
		return nil, apperrors.NewCustomError(apperrors.ErrInvalidAdmissionType, "half-time admission requires a MORNING or EVENING shift")
	}

	available := FindAvailableSeats(seats, in.Gender, in.AdmissionType, in.Shift)
	if !seatAvailable(available, in.SeatNumber) {
		return nil, apperrors.ErrNoSeatAvailable
	}

	amount, ok := fees.AmountFor(in.AdmissionType)
	if !ok {
		return nil, apperrors.ErrInvalidAdmissionType
	}

	admissionDate := helpers.Midnight(in.AdmissionDate)
	student := &models.Student{
		StudentID:         models.FormatStudentID(maxNumericID + 1),
		Title:             in.Title,
		Name:              strings.TrimSpace(in.Name),
		FatherName:        strings.TrimSpace(in.FatherName),
		Mobile:            strings.TrimSpace(in.Mobile),
		PhotoURL:          in.PhotoURL,
		AdmissionType:     in.AdmissionType,
		Shift:             in.Shift,
		SeatNumber:        in.SeatNumber,
		AdmissionDate:     admissionDate,
		FeeAmount:         amount,
		NextDueDate:       helpers.AddCalendarMonths(admissionDate, 1),
		PaymentHistory:    []models.Payment{},
		ReceivedCreditLog: []models.CreditEntry{},
		Status:            models.StatusActive,
	}
	return student, nil
}
