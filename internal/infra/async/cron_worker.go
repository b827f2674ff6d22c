package async

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/robfig/cron/v3"
)

// Job is a unit of periodic work run by a CronWorker.
type Job interface {
	Name() string
	Execute(ctx context.Context) error
}

var _ Worker = (*CronWorker)(nil)

// CronWorker checks its schedule on every tick and runs the job whenever the
// next scheduled time has passed.
type CronWorker struct {
	ticker   *time.Ticker
	job      Job
	schedule cron.Schedule
	now      func() time.Time

	mu      sync.Mutex
	nextRun time.Time
	stop    chan struct{}
	once    sync.Once
}

func NewCronWorker(ticker *time.Ticker, spec string, job Job) (*CronWorker, error) {
	parser := cron.NewParser(cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow | cron.Descriptor)
	schedule, err := parser.Parse(spec)
	if err != nil {
		return nil, fmt.Errorf("parsing cron schedule %q: %w", spec, err)
	}

	w := &CronWorker{
		ticker:   ticker,
		job:      job,
		schedule: schedule,
		now:      time.Now,
		stop:     make(chan struct{}),
	}
	w.nextRun = schedule.Next(w.now())
	return w, nil
}

func (w *CronWorker) Run(ctx context.Context, done func()) {
	slog.Info("cron worker started", slog.String("job", w.job.Name()))
	defer done()

	for {
		select {
		case <-ctx.Done():
			slog.Info("cron worker cancelled", slog.String("job", w.job.Name()))
			return
		case <-w.stop:
			slog.Info("cron worker stopped", slog.String("job", w.job.Name()))
			return
		case <-w.ticker.C:
			w.Tick(ctx)
		}
	}
}

// Tick runs the job if it is due and reports whether it ran.
func (w *CronWorker) Tick(ctx context.Context) bool {
	now := w.now()

	w.mu.Lock()
	if now.Before(w.nextRun) {
		w.mu.Unlock()
		return false
	}
	w.nextRun = w.schedule.Next(now)
	w.mu.Unlock()

	start := time.Now()
	if err := w.job.Execute(ctx); err != nil {
		slog.Error("running scheduled job",
			slog.String("job", w.job.Name()),
			slog.String("error", err.Error()))
		return true
	}

	slog.Debug("scheduled job completed",
		slog.String("job", w.job.Name()),
		slog.Duration("elapsed", time.Since(start)))
	return true
}

func (w *CronWorker) Shutdown() {
	w.once.Do(func() {
		w.ticker.Stop()
		close(w.stop)
	})
}
