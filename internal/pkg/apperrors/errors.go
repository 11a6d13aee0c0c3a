package apperrors

import "errors"

// Common errors
var (
	// Resource errors
	ErrResourceNotFound      = errors.New("resource not found")
	ErrResourceAlreadyExists = errors.New("resource already exists")
	ErrConflict              = errors.New("conflict")

	// Authentication errors
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrTokenExpired       = errors.New("token expired")
	ErrTokenInvalid       = errors.New("invalid token")
	ErrInvalidFormat      = errors.New("invalid token format")

	// Validation errors
	ErrValidationFailed = errors.New("validation failed")
	ErrBadRequest       = errors.New("bad request")

	// Owner account errors
	ErrOwnerNotFound      = errors.New("owner account not found")
	ErrEmailAlreadyExists = errors.New("email already exists")
)

// Admission errors
var (
	ErrNoSeatAvailable      = errors.New("seat not available for the requested category and plan")
	ErrInvalidAdmissionType = errors.New("invalid admission type")
	ErrMissingRequiredField = errors.New("missing required field")
)

// Billing and lifecycle errors
var (
	ErrStudentNotFound                 = errors.New("student not found")
	ErrInvalidTransferTarget           = errors.New("transfer target must be a different active student")
	ErrAlreadyDeparted                 = errors.New("student has already departed")
	ErrSeatNotAvailableForReactivation = errors.New("seat is not fully free for reactivation")
	ErrDataIntegrityConflict           = errors.New("conflicting seat occupancy detected")
	ErrInvalidPaymentMonths            = errors.New("payment must cover at least one month")
)

// NewResourceNotFoundError creates a new custom error for resource not found with a message
func NewResourceNotFoundError(message string) error {
	return &CustomError{
		Err:     ErrResourceNotFound,
		Message: message,
	}
}

// NewConflictError creates a new custom error for conflict situations with a message
func NewConflictError(message string) error {
	return &CustomError{
		Err:     ErrConflict,
		Message: message,
	}
}

// NewBadRequestError creates a new custom error for bad request with a message
func NewBadRequestError(message string) error {
	return &CustomError{
		Err:     ErrBadRequest,
		Message: message,
	}
}

// NewMissingFieldError reports a missing admission precondition by field name
func NewMissingFieldError(field string) error {
	return &CustomError{
		Err:     ErrMissingRequiredField,
		Message: field + " is required",
	}
}

// Is returns whether target matches any of the errors in errList
func Is(err, target error, errList ...error) bool {
	if errors.Is(err, target) {
		return true
	}

	for _, e := range errList {
		if errors.Is(err, e) {
			return true
		}
	}

	return false
}

// CustomError represents application-specific errors with additional context
type CustomError struct {
	Err     error
	Message string
	Details map[string]interface{}
}

// Error implements error interface
func (e *CustomError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return "unknown error"
}

// Unwrap implements errors.Unwrap interface
func (e *CustomError) Unwrap() error {
	return e.Err
}

// NewCustomError creates a CustomError with underlying error
func NewCustomError(err error, message string) *CustomError {
	return &CustomError{
		Err:     err,
		Message: message,
	}
}

// WithDetails adds context details to the error
func (e *CustomError) WithDetails(details map[string]interface{}) *CustomError {
	e.Details = details
	return e
}
