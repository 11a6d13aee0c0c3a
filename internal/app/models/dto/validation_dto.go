package dto

import (
	"errors"

	"github.com/go-playground/validator/v10"
)

// HandleValidationError converts binding and validation failures into a
// structured error detail
func HandleValidationError(err error) *ErrorDetail {
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		detail := NewErrorDetail(ErrorCodeValidationFailed, "Validation failed")
		fields := make(map[string]string, len(validationErrs))
		for _, fe := range validationErrs {
			fields[fe.Field()] = validationMessage(fe)
		}
		return detail.WithDetails(fields)
	}

	return NewErrorDetail(ErrorCodeInvalidRequest, "Invalid request format").WithDetails(err.Error())
}

func validationMessage(e validator.FieldError) string {
	switch e.Tag() {
	case "required":
		return "is required"
	case "min":
		return "must be at least " + e.Param()
	case "max":
		return "must be at most " + e.Param()
	case "email":
		return "must be a valid email address"
	case "oneof":
		return "must be one of: " + e.Param()
	case "mobile":
		return "must be a valid mobile number"
	default:
		return "failed validation: " + e.Tag()
	}
}
