package dto

import (
	"strings"
	"time"

	"github.com/amit20042003/Liberary/internal/app/models"
	"github.com/amit20042003/Liberary/internal/pkg/apperrors"
)

// DateFormat is the wire format for date-only fields
const DateFormat = "2006-01-02"

// AdmissionRequest represents a new student admission. The title doubles as
// the gender signal: Mr. admits to the boys' section, Ms. and Mrs. to the
// girls' section. Dates travel as YYYY-MM-DD strings.
type AdmissionRequest struct {
	Title         string  `json:"title" form:"title" binding:"required" example:"Mr."`
	Name          string  `json:"name" form:"name" binding:"required" example:"Rahul Sharma"`
	FatherName    string  `json:"fatherName" form:"fatherName" example:"Suresh Sharma"`
	Mobile        string  `json:"mobile" form:"mobile" binding:"required,mobile" example:"9876543210"`
	AdmissionType string  `json:"admissionType" form:"admissionType" binding:"required" example:"FULL_TIME"`
	Shift         *string `json:"shift,omitempty" form:"shift" example:"MORNING"`
	SeatNumber    int     `json:"seatNumber" form:"seatNumber" binding:"required,min=1" example:"12"`
	AdmissionDate string  `json:"admissionDate" form:"admissionDate" binding:"required" example:"2025-07-01"`
}

// UpdateStudentRequest represents editable contact details of a student.
// Seat, plan and ledger fields change only through their dedicated operations.
type UpdateStudentRequest struct {
	Title      string `json:"title" binding:"required" example:"Mr."`
	Name       string `json:"name" binding:"required" example:"Rahul Sharma"`
	FatherName string `json:"fatherName" example:"Suresh Sharma"`
	Mobile     string `json:"mobile" binding:"required,mobile" example:"9876543210"`
}

// PaymentRequest represents a fee payment covering one or more months
type PaymentRequest struct {
	Amount int64  `json:"amount" binding:"required,min=1" example:"1200"`
	Method string `json:"method" binding:"required" example:"CASH"`
	Months int    `json:"months" binding:"required,min=1" example:"1"`
}

// DepartureRequest represents closing out a student, optionally transferring
// the remaining prepaid days to another active student
type DepartureRequest struct {
	Reason              *string `json:"reason,omitempty" example:"Relocated to another city"`
	TransferToStudentID *string `json:"transferToStudentId,omitempty" example:"S007"`
}

// ReactivationRequest represents returning a departed student to a seat
type ReactivationRequest struct {
	SeatNumber int `json:"seatNumber" binding:"required,min=1" example:"23"`
}

// PaymentResponse represents one ledger entry
type PaymentResponse struct {
	ReceiptID string    `json:"receiptId"`
	Date      time.Time `json:"date"`
	Amount    int64     `json:"amount"`
	Method    string    `json:"method"`
}

// CreditEntryResponse represents credit received from a departing student
type CreditEntryResponse struct {
	FromStudentID string    `json:"fromStudentId"`
	FromName      string    `json:"fromName"`
	DaysReceived  int       `json:"daysReceived"`
	Date          time.Time `json:"date"`
}

// TransferLogResponse represents where a departing student's days went
type TransferLogResponse struct {
	ToStudentID     string `json:"toStudentId"`
	ToName          string `json:"toName"`
	DaysTransferred int    `json:"daysTransferred"`
}

// StudentResponse represents full student information
type StudentResponse struct {
	StudentID         string                `json:"studentId" example:"S014"`
	Title             string                `json:"title" example:"Mr."`
	Name              string                `json:"name"`
	FatherName        string                `json:"fatherName,omitempty"`
	Mobile            string                `json:"mobile"`
	PhotoURL          string                `json:"photoUrl,omitempty"`
	Gender            string                `json:"gender" example:"BOY"`
	AdmissionType     string                `json:"admissionType" example:"FULL_TIME"`
	Shift             *string               `json:"shift,omitempty" example:"MORNING"`
	SeatNumber        int                   `json:"seatNumber" example:"12"`
	AdmissionDate     time.Time             `json:"admissionDate"`
	FeeAmount         int64                 `json:"feeAmount" example:"1200"`
	NextDueDate       time.Time             `json:"nextDueDate"`
	FeeDue            bool                  `json:"feeDue"`
	Status            string                `json:"status" example:"ACTIVE"`
	PaymentHistory    []PaymentResponse     `json:"paymentHistory"`
	ReceivedCreditLog []CreditEntryResponse `json:"receivedCreditLog"`
	DepartureDate     *time.Time            `json:"departureDate,omitempty"`
	DepartureReason   *string               `json:"departureReason,omitempty"`
	TransferLog       *TransferLogResponse  `json:"transferLog,omitempty"`
}

// StudentListResponse represents a list of students
type StudentListResponse struct {
	Students []StudentResponse `json:"students"`
	Total    int               `json:"total"`
}

// GenderFromTitle maps a salutation to the seating category. The title is the
// only gender signal on the wire; the stored model carries the category.
func GenderFromTitle(title string) (models.GenderCategory, error) {
	switch strings.TrimSuffix(strings.TrimSpace(title), ".") {
	case "Mr":
		return models.CategoryBoy, nil
	case "Ms", "Mrs":
		return models.CategoryGirl, nil
	default:
		return "", apperrors.NewCustomError(apperrors.ErrValidationFailed, "title must be Mr., Ms. or Mrs.")
	}
}

// NewStudentResponse maps a student model to its response form. feeDue is
// computed by the caller against the current date.
func NewStudentResponse(s *models.Student, gender models.GenderCategory, feeDue bool) StudentResponse {
	resp := StudentResponse{
		StudentID:         s.StudentID,
		Title:             s.Title,
		Name:              s.Name,
		FatherName:        s.FatherName,
		Mobile:            s.Mobile,
		PhotoURL:          s.PhotoURL,
		Gender:            string(gender),
		AdmissionType:     string(s.AdmissionType),
		SeatNumber:        s.SeatNumber,
		AdmissionDate:     s.AdmissionDate,
		FeeAmount:         s.FeeAmount,
		NextDueDate:       s.NextDueDate,
		FeeDue:            feeDue,
		Status:            string(s.Status),
		PaymentHistory:    make([]PaymentResponse, 0, len(s.PaymentHistory)),
		ReceivedCreditLog: make([]CreditEntryResponse, 0, len(s.ReceivedCreditLog)),
		DepartureDate:     s.DepartureDate,
		DepartureReason:   s.DepartureReason,
	}
	if s.Shift != nil {
		shift := string(*s.Shift)
		resp.Shift = &shift
	}
	for _, p := range s.PaymentHistory {
		resp.PaymentHistory = append(resp.PaymentHistory, PaymentResponse{
			ReceiptID: p.ReceiptID,
			Date:      p.Date,
			Amount:    p.Amount,
			Method:    p.Method,
		})
	}
	for _, c := range s.ReceivedCreditLog {
		resp.ReceivedCreditLog = append(resp.ReceivedCreditLog, CreditEntryResponse{
			FromStudentID: c.FromStudentID,
			FromName:      c.FromName,
			DaysReceived:  c.DaysReceived,
			Date:          c.Date,
		})
	}
	if s.TransferLog != nil {
		resp.TransferLog = &TransferLogResponse{
			ToStudentID:     s.TransferLog.ToStudentID,
			ToName:          s.TransferLog.ToName,
			DaysTransferred: s.TransferLog.DaysTransferred,
		}
	}
	return resp
}
