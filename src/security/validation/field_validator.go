// backend/src/security/validation/field_validator.go
package validation

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// ErrValidationFailed is wrapped by every validator in this package.
var ErrValidationFailed = fmt.Errorf("validation failed")

// Constants for lengths
const (
	DefaultMaxStringLength = 255
	MaxClientNameLength    = 120
	MaxDescriptionLength   = 200
	MaxNotesLength         = 500
)

// ValidateStringNotEmpty checks if a string is not empty after trimming.
func ValidateStringNotEmpty(s, fieldName string) error {
	if strings.TrimSpace(s) == "" {
		return fmt.Errorf("%w: %s cannot be empty", ErrValidationFailed, fieldName)
	}
	return nil
}

// ValidateStringMaxLength checks if a string's UTF-8 character count is within max bounds.
func ValidateStringMaxLength(s string, maxLength int, fieldName string) error {
	if utf8.RuneCountInString(s) > maxLength {
		return fmt.Errorf("%w: %s exceeds maximum length of %d characters", ErrValidationFailed, fieldName, maxLength)
	}
	return nil
}

// ValidateOneOf checks that a value is one of the allowed options.
func ValidateOneOf(s string, options []string, fieldName string) error {
	for _, option := range options {
		if s == option {
			return nil
		}
	}
	return fmt.Errorf("%w: %s must be one of: %s", ErrValidationFailed, fieldName, strings.Join(options, ", "))
}

// ValidateNonNegativeAmount checks a monetary value is not negative.
func ValidateNonNegativeAmount(val float64, fieldName string) error {
	if val < 0 {
		return fmt.Errorf("%w: %s cannot be negative", ErrValidationFailed, fieldName)
	}
	return nil
}

// ValidatePositiveAmount checks a monetary value is strictly positive.
func ValidatePositiveAmount(val float64, fieldName string) error {
	if val <= 0 {
		return fmt.Errorf("%w: %s must be greater than 0", ErrValidationFailed, fieldName)
	}
	return nil
}
