package types

import "fmt"

// ValidationStatus represents the outcome of structural validation
type ValidationStatus string

const (
	ValidationPassed   ValidationStatus = "passed"
	ValidationWarnings ValidationStatus = "warnings"
	ValidationFailed   ValidationStatus = "failed"
)

// AllValidationStatuses returns all valid validation statuses
func AllValidationStatuses() []ValidationStatus {
	return []ValidationStatus{
		ValidationPassed,
		ValidationWarnings,
		ValidationFailed,
	}
}

// IsValid checks if the validation status is valid
func (s ValidationStatus) IsValid() bool {
	switch s {
	case ValidationPassed, ValidationWarnings, ValidationFailed:
		return true
	default:
		return false
	}
}

// String returns the string representation of the validation status
func (s ValidationStatus) String() string {
	return string(s)
}

// ParseValidationStatus parses a string into a ValidationStatus
func ParseValidationStatus(s string) (ValidationStatus, error) {
	status := ValidationStatus(s)
	if !status.IsValid() {
		return "", fmt.Errorf("invalid validation status: %s", s)
	}
	return status, nil
}
