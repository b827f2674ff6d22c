package domain

import (
	"errors"
	"fmt"
)

var (
	ErrLandlordRequired = errors.New("landlord is required")
	ErrPropertyRequired = errors.New("property is required")
	ErrInvalidName      = errors.New("must be between 2 and 50 characters")
	ErrInvalidEmail     = errors.New("invalid email format")
	ErrInvalidPhone     = errors.New("invalid phone number format, must include country code")
	ErrInvalidAmount    = errors.New("must be between 0 and 1000000")
	ErrDateInPast       = errors.New("must be today or in the future")
	ErrInviteNotPending = errors.New("invite is no longer pending")
)

// FieldError ties a validation failure to the input field that caused it.
type FieldError struct {
	Field string
	Err   error
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("%s: %v", e.Field, e.Err)
}

func (e *FieldError) Unwrap() error {
	return e.Err
}

func fieldError(field string, err error) error {
	return &FieldError{Field: field, Err: err}
}
