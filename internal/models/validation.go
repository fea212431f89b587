package models

import "fmt"

// ValidationError represents a settings validation error
type ValidationError struct {
	Setting string
	Value   interface{}
	Reason  string
}

// NewValidationError creates a new validation error
func NewValidationError(setting string, value interface{}, reason string) *ValidationError {
	return &ValidationError{
		Setting: setting,
		Value:   value,
		Reason:  reason,
	}
}

// Error returns the error message
func (ve *ValidationError) Error() string {
	return fmt.Sprintf("validation failed for setting '%s' with value '%v': %s",
		ve.Setting, ve.Value, ve.Reason)
}
