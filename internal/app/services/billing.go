package services

import (
	"time"

	"github.com/google/uuid"

	"github.com/amit20042003/Liberary/internal/app/models"
	"github.com/amit20042003/Liberary/internal/pkg/apperrors"
	"github.com/amit20042003/Liberary/internal/pkg/helpers"
)

// PaymentInput is one month's worth of payment as reported by the caller.
// The ledger records the supplied amount as-is; advance or partial payments
// at historic rates stay representable.
type PaymentInput struct {
	Amount int64
	Method string
}

// RecordPayment appends one payment entry per covered month and advances the
// next due date by exactly one calendar month each time, clamping the day to
// the target month's length. The input student is not mutated.
func RecordPayment(s *models.Student, p PaymentInput, months int, today time.Time) (*models.Student, error) {
	if months < 1 {
		return nil, apperrors.ErrInvalidPaymentMonths
	}

	out := cloneStudent(s)
	day := helpers.Midnight(today)
	for i := 0; i < months; i++ {
		out.PaymentHistory = append(out.PaymentHistory, models.Payment{
			ReceiptID: uuid.New().String(),
			Date:      day,
			Amount:    p.Amount,
			Method:    p.Method,
		})
		out.NextDueDate = helpers.AddCalendarMonths(out.NextDueDate, 1)
	}
	return out, nil
}

// IsDue reports whether the fee is unpaid as of the given day. The check is
// strict: a student whose due date is today is not yet due, the alert fires
// the day after. Both dates are compared at day granularity.
func IsDue(s *models.Student, asOf time.Time) bool {
	return helpers.Midnight(s.NextDueDate).Before(helpers.Midnight(asOf))
}

// MarkAsDue is the administrative override that forces a student into the due
// state by setting the next due date to yesterday. No payment entry is
// written and the seat is untouched.
func MarkAsDue(s *models.Student, today time.Time) *models.Student {
	out := cloneStudent(s)
	out.NextDueDate = helpers.Midnight(today).AddDate(0, 0, -1)
	return out
}

// cloneStudent deep-copies a student so ledger and lifecycle operations can
// return new states without mutating their inputs
func cloneStudent(s *models.Student) *models.Student {
	out := *s
	out.PaymentHistory = append([]models.Payment(nil), s.PaymentHistory...)
	out.ReceivedCreditLog = append([]models.CreditEntry(nil), s.ReceivedCreditLog...)
	if s.Shift != nil {
		shift := *s.Shift
		out.Shift = &shift
	}
	if s.DepartureDate != nil {
		d := *s.DepartureDate
		out.DepartureDate = &d
	}
	if s.DepartureReason != nil {
		r := *s.DepartureReason
		out.DepartureReason = &r
	}
	if s.TransferLog != nil {
		t := *s.TransferLog
		out.TransferLog = &t
	}
	return &out
}
