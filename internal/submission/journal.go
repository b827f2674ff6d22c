package submission

import (
	"context"
	"time"
)

//go:generate mockgen -source=journal.go -destination=../../test/unit/doubles/submission/journal_mock.go -package=submission -mock_names=JournalRepository=MockJournalRepository,RecordDeleter=MockRecordDeleter

type JournalStatus string

const (
	JournalRunning     JournalStatus = "running"
	JournalCompleted   JournalStatus = "completed"
	JournalFailed      JournalStatus = "failed"
	JournalCompensated JournalStatus = "compensated"
)

type StepKind string

const (
	StepObject StepKind = "object"
	StepRecord StepKind = "record"
)

// Step is a completed side effect that compensation may have to undo.
// Objects use Container as bucket and Ref as path; records use Container
// as table and Ref as id.
type Step struct {
	Kind      StepKind  `json:"kind"`
	Op        string    `json:"op"`
	Container string    `json:"container"`
	Ref       string    `json:"ref"`
	At        time.Time `json:"at"`
}

type Journal struct {
	ID          string
	Kind        string
	OwnerID     string
	Status      JournalStatus
	Steps       []Step
	FailedPhase Phase
	FailedOp    string
	Error       string
	Attempts    int
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (j Journal) IsCompensable() bool {
	return j.Status == JournalFailed || j.Status == JournalRunning
}

type JournalRepository interface {
	Save(ctx context.Context, journal Journal) error
	Get(ctx context.Context, id string) (Journal, error)
	// FindCompensable returns failed journals, and running ones abandoned
	// by a crashed process, last updated before the cutoff.
	FindCompensable(ctx context.Context, updatedBefore time.Time, limit int) ([]Journal, error)
}

type RecordDeleter interface {
	DeleteRecord(ctx context.Context, table, id string) error
}
