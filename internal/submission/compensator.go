package submission

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"easyrent-server/internal/infra/storage"
)

const (
	DefaultGracePeriod = 10 * time.Minute
	_sweepBatchSize    = 50
)

// Compensator undoes the completed steps of failed submissions, newest
// first, out of band from the request that failed.
type Compensator struct {
	journals JournalRepository
	objects  storage.ObjectStorage
	records  RecordDeleter
	grace    time.Duration
	now      func() time.Time
}

func NewCompensator(journals JournalRepository, objects storage.ObjectStorage, records RecordDeleter, grace time.Duration) *Compensator {
	if grace <= 0 {
		grace = DefaultGracePeriod
	}
	return &Compensator{
		journals: journals,
		objects:  objects,
		records:  records,
		grace:    grace,
		now:      time.Now,
	}
}

// Sweep compensates every eligible journal and reports how many were
// fully compensated.
func (c *Compensator) Sweep(ctx context.Context) (int, error) {
	journals, err := c.journals.FindCompensable(ctx, c.now().Add(-c.grace), _sweepBatchSize)
	if err != nil {
		return 0, fmt.Errorf("finding compensable journals: %w", err)
	}

	compensated := 0
	var errs []error
	for _, journal := range journals {
		if err := ctx.Err(); err != nil {
			return compensated, err
		}
		if err := c.Compensate(ctx, journal); err != nil {
			errs = append(errs, err)
			continue
		}
		compensated++
	}

	return compensated, errors.Join(errs...)
}

func (c *Compensator) Compensate(ctx context.Context, journal Journal) error {
	if !journal.IsCompensable() {
		return nil
	}

	remaining := make([]Step, 0, len(journal.Steps))
	var firstErr error
	for i := len(journal.Steps) - 1; i >= 0; i-- {
		step := journal.Steps[i]
		if err := c.undo(ctx, step); err != nil {
			slog.Error("undoing submission step",
				slog.String("journal_id", journal.ID),
				slog.String("op", step.Op),
				slog.String("error", err.Error()))
			if firstErr == nil {
				firstErr = err
			}
			remaining = append([]Step{step}, remaining...)
		}
	}

	journal.Steps = remaining
	journal.Attempts++
	journal.UpdatedAt = c.now()
	if firstErr == nil {
		journal.Status = JournalCompensated
	} else {
		journal.Status = JournalFailed
	}

	if err := c.journals.Save(ctx, journal); err != nil {
		return fmt.Errorf("saving journal %s: %w", journal.ID, err)
	}

	if firstErr != nil {
		return fmt.Errorf("compensating journal %s: %w", journal.ID, firstErr)
	}

	slog.Info("submission compensated", slog.String("journal_id", journal.ID), slog.String("kind", journal.Kind))
	return nil
}

func (c *Compensator) undo(ctx context.Context, step Step) error {
	switch step.Kind {
	case StepObject:
		err := c.objects.Delete(ctx, step.Container, step.Ref)
		if err != nil && !errors.Is(err, storage.ErrObjectNotFound) {
			return err
		}
		return nil
	case StepRecord:
		return c.records.DeleteRecord(ctx, step.Container, step.Ref)
	default:
		return fmt.Errorf("unknown step kind %q", step.Kind)
	}
}

// SweepJob adapts the compensator to the cron worker.
type SweepJob struct {
	compensator *Compensator
}

func NewSweepJob(compensator *Compensator) *SweepJob {
	return &SweepJob{compensator: compensator}
}

func (j *SweepJob) Name() string {
	return "journal_sweep"
}

func (j *SweepJob) Execute(ctx context.Context) error {
	n, err := j.compensator.Sweep(ctx)
	if n > 0 {
		slog.Info("journal sweep", slog.Int("compensated", n))
	}
	return err
}
