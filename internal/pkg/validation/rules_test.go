package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMobilePattern(t *testing.T) {
	valid := []string{"9876543210", "+919876543210", "+19876543210"}
	for _, number := range valid {
		assert.True(t, CompiledPatterns.Mobile.MatchString(number), number)
	}

	invalid := []string{"", "12345", "98765432101", "abcdefghij", "98765 43210"}
	for _, number := range invalid {
		assert.False(t, CompiledPatterns.Mobile.MatchString(number), number)
	}
}

func TestIsValidStudentID(t *testing.T) {
	valid := []string{"S001", "S014", "S1234"}
	for _, id := range valid {
		assert.True(t, IsValidStudentID(id), id)
	}

	invalid := []string{"", "S1", "s001", "001", "S01a", "X001"}
	for _, id := range invalid {
		assert.False(t, IsValidStudentID(id), id)
	}
}
