package models

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Payment is a single entry in a student's immutable payment history
type Payment struct {
	ReceiptID string    `json:"receiptId" example:"6f1c2a7e-0b84-4a15-b9d3-2f6c1f1f2a11"` // Receipt number issued for this payment
	Date      time.Time `json:"date" example:"2024-01-15T00:00:00Z"`
	Amount    int64     `json:"amount" example:"1200"`
	Method    string    `json:"method" example:"UPI"`
}

// CreditEntry records prepaid days received from a departing student
type CreditEntry struct {
	FromStudentID string    `json:"fromStudentId" example:"S004"`
	FromName      string    `json:"fromName" example:"Ravi Kumar"`
	DaysReceived  int       `json:"daysReceived" example:"10"`
	Date          time.Time `json:"date" example:"2024-03-02T00:00:00Z"`
}

// TransferLog records where a departing student's unused days went.
// It is written even when zero days were transferable, so the explicit
// transfer choice stays auditable.
type TransferLog struct {
	ToStudentID     string `json:"toStudentId" example:"S002"`
	ToName          string `json:"toName" example:"Priya Sharma"`
	DaysTransferred int    `json:"daysTransferred" example:"10"`
}

// Student defines a student record based on the 'students' table.
// FeeAmount is captured from the fee structure at admission time and never
// changes afterwards; NextDueDate only moves forward except through the
// explicit mark-as-due override.
type Student struct {
	ID        int64  `json:"-" db:"id"`
	AccountID int64  `json:"-" db:"account_id"`
	StudentID string `json:"studentId" db:"student_id" example:"S001"` // Sequential public ID, scoped to the owning account

	Title      string `json:"title" db:"title" example:"Ms."`
	Name       string `json:"name" db:"name" example:"Priya Sharma"`
	FatherName string `json:"fatherName,omitempty" db:"father_name" example:"Rajesh Sharma"`
	Mobile     string `json:"mobile" db:"mobile" example:"9876543210"`
	PhotoURL   string `json:"photoUrl" db:"photo_url"`

	AdmissionType AdmissionType `json:"admissionType" db:"admission_type" example:"HALF_TIME"`
	Shift         *Shift        `json:"shift,omitempty" db:"shift" example:"EVENING"` // Set iff AdmissionType is HALF_TIME
	SeatNumber    int           `json:"seatNumber" db:"seat_number" example:"12"`

	AdmissionDate time.Time `json:"admissionDate" db:"admission_date"`
	FeeAmount     int64     `json:"feeAmount" db:"fee_amount" example:"600"`
	NextDueDate   time.Time `json:"nextDueDate" db:"next_due_date"`

	PaymentHistory    []Payment     `json:"paymentHistory" db:"payment_history"`
	ReceivedCreditLog []CreditEntry `json:"receivedCreditLog" db:"received_credit_log"`

	Status          StudentStatus `json:"status" db:"status" example:"ACTIVE"`
	DepartureDate   *time.Time    `json:"departureDate,omitempty" db:"departure_date"`
	DepartureReason *string       `json:"departureReason,omitempty" db:"departure_reason"`
	TransferLog     *TransferLog  `json:"transferLog,omitempty" db:"transfer_log"`
}

// IsActive reports whether the student currently holds a seat
func (s *Student) IsActive() bool {
	return s.Status == StatusActive
}

// NumericID extracts the numeric part of the public student ID ("S014" -> 14).
// Returns 0 for malformed IDs.
func (s *Student) NumericID() int {
	n, err := strconv.Atoi(strings.TrimPrefix(s.StudentID, "S"))
	if err != nil {
		return 0
	}
	return n
}

// FormatStudentID builds the public ID for a numeric sequence value
func FormatStudentID(n int) string {
	return fmt.Sprintf("S%03d", n)
}
