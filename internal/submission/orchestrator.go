package submission

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"slices"
	"sync"
	"time"

	"easyrent-server/internal/infra/storage"
	"easyrent-server/internal/infra/utils"
	"easyrent-server/internal/wizard"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/sync/errgroup"
)

//go:generate mockgen -source=orchestrator.go -destination=../../test/unit/doubles/submission/orchestrator_mock.go -package=submission -mock_names=Orchestrator=MockOrchestrator

type Result struct {
	JournalID string
	PrimaryID string
	URLs      map[string]string
	Created   map[string][]string
}

func (r Result) WizardResult() wizard.Result {
	return wizard.Result{
		PrimaryID: r.PrimaryID,
		Created:   r.Created,
		JournalID: r.JournalID,
	}
}

type Orchestrator interface {
	Execute(ctx context.Context, plan Plan) (Result, error)
}

func NewOrchestrator(objects storage.ObjectStorage, journals JournalRepository) *SimpleOrchestrator {
	return &SimpleOrchestrator{
		objects:  objects,
		journals: journals,
		now:      time.Now,
	}
}

var _ Orchestrator = (*SimpleOrchestrator)(nil)

// SimpleOrchestrator runs the phases of a plan in order: uploads, primary
// insert, dependent inserts and the status transition. It stops at the
// first failure and leaves completed work in place; the journal records
// that work for the compensator.
type SimpleOrchestrator struct {
	objects  storage.ObjectStorage
	journals JournalRepository
	now      func() time.Time
}

type run struct {
	mu       sync.Mutex
	journal  Journal
	journals JournalRepository
	now      func() time.Time
}

func (o *SimpleOrchestrator) Execute(ctx context.Context, plan Plan) (Result, error) {
	if plan.Primary.Run == nil {
		return Result{}, &Error{Phase: PhaseInsert, Err: ErrMissingPrimary}
	}

	ctx, span := otel.Tracer("easyrent-server").Start(ctx, "submission.execute",
		trace.WithAttributes(
			attribute.String("submission.kind", plan.Kind),
			attribute.Int("submission.uploads", len(plan.Uploads)),
		))
	defer span.End()

	now := o.now()
	r := &run{
		journals: o.journals,
		now:      o.now,
		journal: Journal{
			ID:        utils.GenerateUUID(),
			Kind:      plan.Kind,
			OwnerID:   plan.OwnerID,
			Status:    JournalRunning,
			CreatedAt: now,
			UpdatedAt: now,
		},
	}
	r.save(ctx)

	state := newState()

	err := o.execute(ctx, plan, state, r)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		r.fail(ctx, err)
		return Result{}, err
	}

	r.complete(ctx)

	slog.Info("submission completed",
		slog.String("kind", plan.Kind),
		slog.String("journal_id", r.journal.ID),
		slog.String("primary_id", state.PrimaryID))

	return Result{
		JournalID: r.journal.ID,
		PrimaryID: state.PrimaryID,
		URLs:      state.URLs,
		Created:   state.Created,
	}, nil
}

func (o *SimpleOrchestrator) execute(ctx context.Context, plan Plan, state *State, r *run) error {
	if err := o.uploadAll(ctx, plan.Uploads, state, r); err != nil {
		return err
	}

	if err := o.insert(ctx, PhaseInsert, plan.Primary, state, r); err != nil {
		return err
	}

	for _, dependent := range plan.Dependents {
		if err := o.insert(ctx, PhaseDependents, dependent, state, r); err != nil {
			return err
		}
	}

	if plan.Transition != nil {
		ctx, span := startPhase(ctx, PhaseStatus)
		defer span.End()

		if err := plan.Transition.Run(ctx, state); err != nil {
			return &Error{Phase: PhaseStatus, Op: plan.Transition.Op, Err: err}
		}
	}

	return nil
}

// uploadAll checks every file locally before any network call, then
// uploads them concurrently. Every upload is attempted even after one
// fails; the first failure is reported.
func (o *SimpleOrchestrator) uploadAll(ctx context.Context, uploads []Upload, state *State, r *run) error {
	if len(uploads) == 0 {
		return nil
	}

	ctx, span := startPhase(ctx, PhaseUpload)
	defer span.End()

	for _, upload := range uploads {
		if err := upload.Check(); err != nil {
			return &Error{Phase: PhaseUpload, Op: upload.Key, Err: err}
		}
	}

	var (
		mu    sync.Mutex
		group errgroup.Group
	)
	for _, upload := range uploads {
		group.Go(func() error {
			url, err := o.upload(ctx, upload)
			if err != nil {
				return &Error{Phase: PhaseUpload, Op: upload.Key, Err: err}
			}

			r.record(ctx, Step{Kind: StepObject, Op: upload.Key, Container: upload.Bucket, Ref: upload.Path})

			mu.Lock()
			state.URLs[upload.Key] = url
			mu.Unlock()
			return nil
		})
	}

	return group.Wait()
}

func (o *SimpleOrchestrator) upload(ctx context.Context, upload Upload) (string, error) {
	data, err := upload.Load(ctx)
	if err != nil {
		return "", fmt.Errorf("loading file: %w", err)
	}
	if len(data) == 0 {
		return "", ErrEmptyFile
	}
	if len(data) > MaxFileSize {
		return "", ErrFileTooLarge
	}

	// The declared type comes from the draft; trust the bytes.
	contentType := http.DetectContentType(data)
	if !slices.Contains(allowedTypes[upload.Kind], contentType) {
		return "", fmt.Errorf("%w: %s", ErrUnsupportedType, contentType)
	}

	storedPath, err := o.objects.Upload(ctx, upload.Bucket, upload.Path, contentType, data)
	if err != nil {
		return "", err
	}

	return o.objects.PublicURL(upload.Bucket, storedPath), nil
}

func (o *SimpleOrchestrator) insert(ctx context.Context, phase Phase, insert Insert, state *State, r *run) error {
	ctx, span := startPhase(ctx, phase)
	defer span.End()
	span.SetAttributes(attribute.String("submission.op", insert.Op))

	id, err := insert.Run(ctx, state)
	if err != nil {
		return &Error{Phase: phase, Op: insert.Op, Err: err}
	}

	if phase == PhaseInsert {
		state.PrimaryID = id
	}
	if id != "" {
		state.Created[insert.Table] = append(state.Created[insert.Table], id)
		r.record(ctx, Step{Kind: StepRecord, Op: insert.Op, Container: insert.Table, Ref: id})
	}
	return nil
}

func startPhase(ctx context.Context, phase Phase) (context.Context, trace.Span) {
	return otel.Tracer("easyrent-server").Start(ctx, "submission."+string(phase))
}

func (r *run) record(ctx context.Context, step Step) {
	r.mu.Lock()
	defer r.mu.Unlock()

	step.At = r.now()
	r.journal.Steps = append(r.journal.Steps, step)
	r.saveLocked(ctx)
}

func (r *run) fail(ctx context.Context, err error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.journal.Status = JournalFailed
	r.journal.Error = err.Error()
	if submissionErr, ok := err.(*Error); ok {
		r.journal.FailedPhase = submissionErr.Phase
		r.journal.FailedOp = submissionErr.Op
	}
	r.saveLocked(ctx)
}

func (r *run) complete(ctx context.Context) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.journal.Status = JournalCompleted
	r.saveLocked(ctx)
}

func (r *run) save(ctx context.Context) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.saveLocked(ctx)
}

// saveLocked never fails the submission; a lost journal write only costs
// the compensator its record.
func (r *run) saveLocked(ctx context.Context) {
	if r.journals == nil {
		return
	}

	r.journal.UpdatedAt = r.now()
	snapshot := r.journal
	snapshot.Steps = append([]Step(nil), r.journal.Steps...)

	if err := r.journals.Save(context.WithoutCancel(ctx), snapshot); err != nil {
		slog.Error("saving submission journal",
			slog.String("journal_id", r.journal.ID),
			slog.String("error", err.Error()))
	}
}
