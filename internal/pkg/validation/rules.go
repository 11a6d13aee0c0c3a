package validation

import (
	"regexp"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// Validation rule patterns
var (
	// Mobile number pattern - 10 digits, optional country code prefix
	MobilePattern = `^(\+\d{1,3})?\d{10}$`

	// Public student identifier pattern - S followed by at least three digits
	StudentIDPattern = `^S\d{3,}$`
)

// CompiledPatterns caches compiled regex patterns for better performance
var CompiledPatterns = struct {
	Mobile    *regexp.Regexp
	StudentID *regexp.Regexp
}{
	Mobile:    regexp.MustCompile(MobilePattern),
	StudentID: regexp.MustCompile(StudentIDPattern),
}

// IsValidStudentID reports whether s looks like a public student identifier
func IsValidStudentID(s string) bool {
	return CompiledPatterns.StudentID.MatchString(s)
}

// RegisterCustomValidations registers the custom binding tags with gin's
// validator engine. Call once during startup.
func RegisterCustomValidations() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return nil
	}
	return v.RegisterValidation("mobile", func(fl validator.FieldLevel) bool {
		return CompiledPatterns.Mobile.MatchString(fl.Field().String())
	})
}
