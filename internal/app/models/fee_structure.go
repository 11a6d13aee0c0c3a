package models

import "time"

// FeeStructure maps admission types to the current monthly price for one
// account. Edits only affect future admissions; admitted students keep the
// fee captured on their record.
type FeeStructure struct {
	AccountID int64     `json:"-" db:"account_id"`
	FullTime  int64     `json:"fullTime" db:"full_time" example:"1200"`
	HalfTime  int64     `json:"halfTime" db:"half_time" example:"600"`
	UpdatedAt time.Time `json:"updatedAt" db:"updated_at"`
}

// Default monthly prices applied when an account is created
const (
	DefaultFullTimeFee int64 = 1200
	DefaultHalfTimeFee int64 = 600
)

// AmountFor returns the monthly price for an admission type
func (f FeeStructure) AmountFor(t AdmissionType) (int64, bool) {
	switch t {
	case AdmissionFullTime:
		return f.FullTime, true
	case AdmissionHalfTime:
		return f.HalfTime, true
	}
	return 0, false
}
