package domain

import "errors"

var (
	ErrOwnerRequired       = errors.New("owner is required")
	ErrPropertyRequired    = errors.New("property is required")
	ErrDescriptionRequired = errors.New("description is required")
	ErrDescriptionTooLong  = errors.New("description must be at most 1000 characters")
	ErrInvalidPriority     = errors.New("invalid priority")
	ErrInvalidStatus       = errors.New("invalid status")
	ErrInvalidCost         = errors.New("cost must be between 0 and 1000000")
	ErrInvalidTransition   = errors.New("request status cannot change this way")
)
