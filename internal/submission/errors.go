package submission

import (
	"errors"
	"fmt"
)

var (
	ErrFileTooLarge       = errors.New("file exceeds the 10MB limit")
	ErrUnsupportedType    = errors.New("file type not allowed")
	ErrEmptyFile          = errors.New("file is empty")
	ErrMissingPrimary     = errors.New("plan has no primary insert")
	ErrJournalNotFound    = errors.New("journal not found")
	ErrUnknownRecordTable = errors.New("unknown record table")
)

type Phase string

const (
	PhasePrecheck   Phase = "precheck"
	PhaseUpload     Phase = "upload"
	PhaseInsert     Phase = "insert"
	PhaseDependents Phase = "dependents"
	PhaseStatus     Phase = "status"
)

// Error tags the first failure of a submission with the phase and the
// sub-operation that produced it.
type Error struct {
	Phase Phase
	Op    string
	Err   error
}

func (e *Error) Error() string {
	if e.Op == "" {
		return fmt.Sprintf("%s: %v", e.Phase, e.Err)
	}
	return fmt.Sprintf("%s %s: %v", e.Phase, e.Op, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

func (e *Error) SubmissionPhase() string {
	return string(e.Phase)
}

func (e *Error) SubmissionOp() string {
	return e.Op
}

// PhaseOf returns the phase of a submission error, or "" for other errors.
func PhaseOf(err error) Phase {
	var submissionErr *Error
	if errors.As(err, &submissionErr) {
		return submissionErr.Phase
	}
	return ""
}
