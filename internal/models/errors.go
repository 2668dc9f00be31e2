package models

import (
	"errors"
	"fmt"
)

// ErrInvalidInput is matched by every InvalidInputError
var ErrInvalidInput = errors.New("invalid input")

// InvalidInputError reports a missing or malformed request field
type InvalidInputError struct {
	Field  string
	Reason string
}

func NewInvalidInput(field, reason string) *InvalidInputError {
	return &InvalidInputError{Field: field, Reason: reason}
}

func (e *InvalidInputError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

func (e *InvalidInputError) Is(target error) bool {
	return target == ErrInvalidInput
}
