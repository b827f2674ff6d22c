package utils

import (
	"fmt"
	"time"
)

// ValidateTimezone validates that the given timezone string is a valid IANA timezone name
func ValidateTimezone(timezone string) error {
	if timezone == "" {
		return fmt.Errorf("timezone cannot be empty")
	}

	_, err := time.LoadLocation(timezone)
	if err != nil {
		return fmt.Errorf("invalid timezone '%s': %w", timezone, err)
	}

	return nil
}

// MustLoadLocation falls back to UTC when the name cannot be loaded.
func MustLoadLocation(timezone string) *time.Location {
	loc, err := time.LoadLocation(timezone)
	if err != nil || timezone == "" {
		return time.UTC
	}
	return loc
}
