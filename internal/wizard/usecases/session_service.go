package usecases

//go:generate mockgen -source=session_service.go -destination=../../../test/unit/doubles/wizard/usecases/session_service_mock.go -package=usecases -mock_names=SessionService=MockSessionService

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"slices"
	"sync"
	"time"

	"easyrent-server/internal/infra/utils"
	shareddomain "easyrent-server/internal/shared_kernel/domain"
	"easyrent-server/internal/submission"
	"easyrent-server/internal/wizard"
)

type FileUpload struct {
	Field string
	Name  string
	Data  []byte
}

type SessionService interface {
	Start(ctx context.Context, kind wizard.Kind, request StartRequest) (View, error)
	Get(ctx context.Context, principal shareddomain.Principal, id string) (View, error)
	UpdateDraft(ctx context.Context, principal shareddomain.Principal, id string, partial map[string]any) (View, error)
	Next(ctx context.Context, principal shareddomain.Principal, id string) (View, error)
	Back(ctx context.Context, principal shareddomain.Principal, id string) (View, error)
	Jump(ctx context.Context, principal shareddomain.Principal, id string, step int) (View, error)
	AttachFile(ctx context.Context, principal shareddomain.Principal, id string, upload FileUpload) (View, wizard.FileRef, error)
	RemoveFile(ctx context.Context, principal shareddomain.Principal, id, field, fileID string) (View, error)
	Submit(ctx context.Context, principal shareddomain.Principal, id string) (View, error)
	Cancel(ctx context.Context, principal shareddomain.Principal, id string) error
}

func NewSessionService(repository SessionRepository, files FileStage, flows ...Flow) *SimpleSessionService {
	byKind := make(map[wizard.Kind]Flow, len(flows))
	for _, flow := range flows {
		byKind[flow.Definition().Kind] = flow
	}

	return &SimpleSessionService{
		repository: repository,
		files:      files,
		flows:      byKind,
		locks:      &keyedMutex{locks: map[string]*lockEntry{}},
		staleAfter: submission.DefaultGracePeriod,
		now:        time.Now,
	}
}

// WithStaleAfter sets how long a session may stay submitting before it is
// considered abandoned and unfrozen.
func (s *SimpleSessionService) WithStaleAfter(d time.Duration) *SimpleSessionService {
	if d > 0 {
		s.staleAfter = d
	}
	return s
}

var _ SessionService = (*SimpleSessionService)(nil)

type SimpleSessionService struct {
	repository SessionRepository
	files      FileStage
	flows      map[wizard.Kind]Flow
	locks      *keyedMutex
	staleAfter time.Duration
	now        func() time.Time
}

func (s *SimpleSessionService) Start(ctx context.Context, kind wizard.Kind, request StartRequest) (View, error) {
	flow, ok := s.flows[kind]
	if !ok {
		return View{}, wizard.ErrUnknownKind
	}

	start, err := flow.Start(ctx, request)
	if err != nil {
		return View{}, err
	}

	controller := wizard.NewController(flow.Definition(), wizard.NewDraft(start.Seed))
	now := s.now()
	session := Session{
		ID:        utils.GenerateUUID(),
		Kind:      kind,
		OwnerID:   start.OwnerID,
		SubjectID: start.SubjectID,
		CreatedAt: now,
	}

	if err := s.save(ctx, &session, controller); err != nil {
		return View{}, err
	}

	slog.Info("wizard session started",
		slog.String("session_id", session.ID),
		slog.String("kind", string(kind)))

	return newView(session, controller), nil
}

func (s *SimpleSessionService) Get(ctx context.Context, principal shareddomain.Principal, id string) (View, error) {
	session, _, controller, err := s.load(ctx, principal, id)
	if err != nil {
		return View{}, err
	}
	return newView(session, controller), nil
}

func (s *SimpleSessionService) UpdateDraft(ctx context.Context, principal shareddomain.Principal, id string, partial map[string]any) (View, error) {
	return s.mutateSession(ctx, principal, id, func(session *Session, c *wizard.Controller) error {
		next := c.Draft().Merge(partial)
		if ref, foreign := session.foreignFile(next); foreign {
			return fmt.Errorf("%w: %s", ErrForeignFile, ref.ID)
		}
		if err := c.Update(partial); err != nil {
			return err
		}
		for _, fileID := range session.releaseDropped(c.Draft()) {
			s.discard(ctx, fileID)
		}
		return nil
	})
}

func (s *SimpleSessionService) Next(ctx context.Context, principal shareddomain.Principal, id string) (View, error) {
	return s.mutate(ctx, principal, id, func(c *wizard.Controller) error {
		return c.Advance()
	})
}

func (s *SimpleSessionService) Back(ctx context.Context, principal shareddomain.Principal, id string) (View, error) {
	return s.mutate(ctx, principal, id, func(c *wizard.Controller) error {
		return c.Retreat()
	})
}

func (s *SimpleSessionService) Jump(ctx context.Context, principal shareddomain.Principal, id string, step int) (View, error) {
	return s.mutate(ctx, principal, id, func(c *wizard.Controller) error {
		return c.JumpTo(step)
	})
}

// AttachFile checks the file locally, stages its bytes and appends a
// pending handle to the array at the upload's field.
func (s *SimpleSessionService) AttachFile(ctx context.Context, principal shareddomain.Principal, id string, upload FileUpload) (View, wizard.FileRef, error) {
	var ref wizard.FileRef

	view, err := s.mutateSession(ctx, principal, id, func(session *Session, c *wizard.Controller) error {
		switch c.Status() {
		case wizard.StatusSubmitting:
			return wizard.ErrSubmissionInProgress
		case wizard.StatusSubmitted:
			return wizard.ErrAlreadySubmitted
		}

		kind, ok := s.flowFor(c).FileFields()[upload.Field]
		if !ok {
			return fmt.Errorf("%w: %s", ErrUnknownFileField, upload.Field)
		}

		staged, err := s.stage(ctx, kind, upload)
		if err != nil {
			return err
		}
		ref = staged

		if err := c.Replace(c.Draft().AppendFile(upload.Field, ref)); err != nil {
			return err
		}
		session.track(upload.Field, ref)
		return nil
	})
	if err != nil {
		return view, wizard.FileRef{}, err
	}

	return view, ref, nil
}

func (s *SimpleSessionService) RemoveFile(ctx context.Context, principal shareddomain.Principal, id, field, fileID string) (View, error) {
	return s.mutateSession(ctx, principal, id, func(session *Session, c *wizard.Controller) error {
		draft, removed := c.Draft().RemoveFile(field, fileID)
		if !removed {
			return ErrFileNotFound
		}
		if err := c.Replace(draft); err != nil {
			return err
		}
		session.untrack(fileID)
		s.discard(ctx, fileID)
		return nil
	})
}

// Submit freezes the draft, hands it to the flow's submitter and records
// the outcome. The session is stored between the two halves so concurrent
// requests observe the submission in progress.
func (s *SimpleSessionService) Submit(ctx context.Context, principal shareddomain.Principal, id string) (View, error) {
	unlock := s.locks.Lock(id)
	defer unlock()

	session, flow, controller, err := s.load(ctx, principal, id)
	if err != nil {
		return View{}, err
	}

	if err := controller.BeginSubmit(); err != nil {
		var validation *wizard.ValidationError
		if errors.As(err, &validation) {
			if saveErr := s.save(ctx, &session, controller); saveErr != nil {
				return View{}, saveErr
			}
		}
		return newView(session, controller), err
	}

	if err := s.save(ctx, &session, controller); err != nil {
		return View{}, err
	}

	pending := controller.Draft().PendingFiles()

	submitter, err := flow.Submitter(ctx, session)
	var result wizard.Result
	if err == nil {
		result, err = submitter.Submit(ctx, controller.Draft())
	}
	controller.CompleteSubmit(result, err)
	if err == nil {
		session.Files = nil
	}

	if saveErr := s.save(context.WithoutCancel(ctx), &session, controller); saveErr != nil {
		slog.Error("saving submitted wizard session",
			slog.String("session_id", session.ID),
			slog.String("error", saveErr.Error()))
	}

	if err != nil {
		slog.Warn("wizard submission failed",
			slog.String("session_id", session.ID),
			slog.String("kind", string(session.Kind)),
			slog.String("error", err.Error()))
		return newView(session, controller), err
	}

	for _, refs := range pending {
		for _, ref := range refs {
			s.discard(ctx, ref.ID)
		}
	}

	return newView(session, controller), nil
}

// Cancel discards the draft and every file staged for it.
func (s *SimpleSessionService) Cancel(ctx context.Context, principal shareddomain.Principal, id string) error {
	unlock := s.locks.Lock(id)
	defer unlock()

	session, _, controller, err := s.load(ctx, principal, id)
	if err != nil {
		return err
	}
	if controller.Status() == wizard.StatusSubmitting {
		return wizard.ErrSubmissionInProgress
	}

	if controller.Status() == wizard.StatusEditing {
		for fileID := range session.Files {
			s.discard(ctx, fileID)
		}
		for _, refs := range controller.Draft().PendingFiles() {
			for _, ref := range refs {
				if _, tracked := session.Files[ref.ID]; !tracked {
					s.discard(ctx, ref.ID)
				}
			}
		}
	}

	if err := s.repository.Delete(ctx, session.ID); err != nil {
		slog.Error("deleting wizard session", slog.String("error", err.Error()))
		return fmt.Errorf("deleting wizard session: %w", err)
	}
	return nil
}

// mutate applies fn to a loaded controller and stores the result. Failed
// validations are stored too since they change the error map.
func (s *SimpleSessionService) mutate(ctx context.Context, principal shareddomain.Principal, id string, fn func(c *wizard.Controller) error) (View, error) {
	return s.mutateSession(ctx, principal, id, func(_ *Session, c *wizard.Controller) error {
		return fn(c)
	})
}

func (s *SimpleSessionService) mutateSession(ctx context.Context, principal shareddomain.Principal, id string, fn func(session *Session, c *wizard.Controller) error) (View, error) {
	unlock := s.locks.Lock(id)
	defer unlock()

	session, _, controller, err := s.load(ctx, principal, id)
	if err != nil {
		return View{}, err
	}

	opErr := fn(&session, controller)
	var validation *wizard.ValidationError
	if opErr != nil && !errors.As(opErr, &validation) {
		return newView(session, controller), opErr
	}

	if err := s.save(ctx, &session, controller); err != nil {
		return View{}, err
	}
	return newView(session, controller), opErr
}

func (s *SimpleSessionService) load(ctx context.Context, principal shareddomain.Principal, id string) (Session, Flow, *wizard.Controller, error) {
	session, err := s.repository.Get(ctx, id)
	if err != nil {
		return Session{}, nil, nil, err
	}
	if !session.AllowedFor(principal) {
		return Session{}, nil, nil, ErrSessionNotFound
	}

	flow, ok := s.flows[session.Kind]
	if !ok {
		return Session{}, nil, nil, wizard.ErrUnknownKind
	}

	controller, err := wizard.Restore(flow.Definition(), session.State)
	if err != nil {
		return Session{}, nil, nil, fmt.Errorf("restoring wizard session: %w", err)
	}

	// A submission outliving the journal grace period belongs to a process
	// that died; the sweeper undoes its partial work.
	if controller.Status() == wizard.StatusSubmitting && s.now().Sub(session.UpdatedAt) > s.staleAfter {
		controller.Abandon()
		slog.Warn("unfreezing abandoned wizard submission",
			slog.String("session_id", session.ID),
			slog.Time("submitting_since", session.UpdatedAt))
	}
	return session, flow, controller, nil
}

func (s *SimpleSessionService) save(ctx context.Context, session *Session, controller *wizard.Controller) error {
	session.State = controller.Snapshot()
	session.UpdatedAt = s.now()

	if err := s.repository.Save(ctx, *session); err != nil {
		slog.Error("saving wizard session",
			slog.String("session_id", session.ID),
			slog.String("error", err.Error()))
		return fmt.Errorf("saving wizard session: %w", err)
	}
	return nil
}

func (s *SimpleSessionService) flowFor(c *wizard.Controller) Flow {
	return s.flows[c.Definition().Kind]
}

func (s *SimpleSessionService) stage(ctx context.Context, kind submission.FileKind, upload FileUpload) (wizard.FileRef, error) {
	switch {
	case len(upload.Data) == 0:
		return wizard.FileRef{}, submission.ErrEmptyFile
	case len(upload.Data) > submission.MaxFileSize:
		return wizard.FileRef{}, submission.ErrFileTooLarge
	}

	contentType := http.DetectContentType(upload.Data)
	if !slices.Contains(submission.AllowedTypes(kind), contentType) {
		return wizard.FileRef{}, fmt.Errorf("%w: %s", submission.ErrUnsupportedType, contentType)
	}

	ref := wizard.FileRef{
		ID:          utils.GenerateUUID(),
		Name:        upload.Name,
		ContentType: contentType,
		Size:        int64(len(upload.Data)),
	}
	if err := s.files.Put(ctx, ref.ID, upload.Data); err != nil {
		return wizard.FileRef{}, fmt.Errorf("staging file: %w", err)
	}
	return ref, nil
}

func (s *SimpleSessionService) discard(ctx context.Context, fileID string) {
	if err := s.files.Delete(ctx, fileID); err != nil && !errors.Is(err, ErrFileNotFound) {
		slog.Warn("discarding staged file",
			slog.String("file_id", fileID),
			slog.String("error", err.Error()))
	}
}

type keyedMutex struct {
	mu    sync.Mutex
	locks map[string]*lockEntry
}

type lockEntry struct {
	mu   sync.Mutex
	refs int
}

// Lock serialises requests on one session within the process.
func (k *keyedMutex) Lock(key string) func() {
	k.mu.Lock()
	entry, ok := k.locks[key]
	if !ok {
		entry = &lockEntry{}
		k.locks[key] = entry
	}
	entry.refs++
	k.mu.Unlock()

	entry.mu.Lock()
	return func() {
		entry.mu.Unlock()

		k.mu.Lock()
		entry.refs--
		if entry.refs == 0 {
			delete(k.locks, key)
		}
		k.mu.Unlock()
	}
}
