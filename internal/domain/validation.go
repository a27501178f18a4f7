package domain

import (
	"fmt"
	"strings"
)

// ValidationError represents a validation error
type ValidationError struct {
	message string
}

func (e *ValidationError) Error() string {
	return e.message
}

func NewValidationError(message string) error {
	return &ValidationError{message: message}
}

// FieldError is a validation failure attributed to one request field.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidationErrors collects per-field validation failures.
type ValidationErrors []*FieldError

func (v ValidationErrors) Error() string {
	msgs := make([]string, 0, len(v))
	for _, e := range v {
		msgs = append(msgs, e.Error())
	}
	return strings.Join(msgs, "; ")
}

// HasErrors reports whether any field failed validation.
func (v ValidationErrors) HasErrors() bool {
	return len(v) > 0
}

func NewMissingFieldError(field string) *FieldError {
	return &FieldError{Field: field, Message: "is required"}
}

func NewOutOfRangeError(field string, value, min, max int) *FieldError {
	return &FieldError{Field: field, Message: fmt.Sprintf("value %d is out of range [%d, %d]", value, min, max)}
}
