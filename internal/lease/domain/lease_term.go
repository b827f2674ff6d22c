package domain

import (
	"errors"

	"easyrent-server/internal/infra/utils"
)

var (
	ErrTermDatesRequired = errors.New("start and end dates are required")
	ErrEndNotAfterStart  = errors.New("end must be after start")
	ErrTermTooShort      = errors.New("lease must last at least 1 month")
)

// LeaseTerm is the period a lease covers. A term ends strictly after it
// starts and spans at least one calendar month, so a lease starting on
// Jan 31 may end on Feb 28.
type LeaseTerm struct {
	Start utils.Date
	End   utils.Date
}

func NewLeaseTerm(start, end utils.Date) (LeaseTerm, error) {
	term := LeaseTerm{Start: start, End: end}
	if err := term.Validate(); err != nil {
		return LeaseTerm{}, err
	}
	return term, nil
}

func (t LeaseTerm) Validate() error {
	if t.Start.IsZero() || t.End.IsZero() {
		return ErrTermDatesRequired
	}
	if !t.End.After(t.Start.Time) {
		return ErrEndNotAfterStart
	}
	if t.End.Before(t.Start.AddMonths(1).Time) {
		return ErrTermTooShort
	}
	return nil
}

// Contains reports whether day falls inside the term, both ends included.
func (t LeaseTerm) Contains(day utils.Date) bool {
	return !day.Before(t.Start.Time) && !day.After(t.End.Time)
}
