package usecases

import (
	"time"

	shareddomain "easyrent-server/internal/shared_kernel/domain"
	"easyrent-server/internal/wizard"
)

// Session is a stored wizard. SubjectID names what the wizard is about,
// for instance the invite an onboarding completes. Sessions without an
// owner are bound to a verified token instead of a principal.
type Session struct {
	ID        string                `msgpack:"id"`
	Kind      wizard.Kind           `msgpack:"kind"`
	OwnerID   shareddomain.ID       `msgpack:"owner_id"`
	SubjectID string                `msgpack:"subject_id"`
	State     wizard.Snapshot       `msgpack:"state"`
	Files     map[string]StagedFile `msgpack:"files,omitempty"`
	CreatedAt time.Time             `msgpack:"created_at"`
	UpdatedAt time.Time             `msgpack:"updated_at"`
}

// StagedFile is a handle this session issued, keyed by file id in
// Session.Files. Drafts may only carry handles found there.
type StagedFile struct {
	Field string         `msgpack:"field"`
	Ref   wizard.FileRef `msgpack:"ref"`
}

func (s Session) AllowedFor(principal shareddomain.Principal) bool {
	return s.OwnerID == "" || s.OwnerID == principal.UserID
}

func (s *Session) track(field string, ref wizard.FileRef) {
	if s.Files == nil {
		s.Files = map[string]StagedFile{}
	}
	s.Files[ref.ID] = StagedFile{Field: field, Ref: ref}
}

func (s *Session) untrack(fileID string) {
	delete(s.Files, fileID)
}

// foreignFile reports the first handle in draft that was not staged for
// this session at that field, or whose metadata was edited since.
func (s Session) foreignFile(draft wizard.Draft) (wizard.FileRef, bool) {
	for field, refs := range draft.PendingFiles() {
		for _, ref := range refs {
			staged, ok := s.Files[ref.ID]
			if !ok || staged.Field != field || staged.Ref != ref {
				return ref, true
			}
		}
	}
	return wizard.FileRef{}, false
}

// releaseDropped untracks the handles draft no longer holds and returns
// their ids.
func (s *Session) releaseDropped(draft wizard.Draft) []string {
	held := map[string]bool{}
	for _, refs := range draft.PendingFiles() {
		for _, ref := range refs {
			held[ref.ID] = true
		}
	}

	var dropped []string
	for id := range s.Files {
		if !held[id] {
			dropped = append(dropped, id)
			delete(s.Files, id)
		}
	}
	return dropped
}

type View struct {
	ID        string
	Kind      wizard.Kind
	SubjectID string
	Step      int
	StepID    string
	Steps     []string
	IsLast    bool
	Draft     map[string]any
	Errors    map[string]map[string]string
	Status    wizard.Status
	Failure   *wizard.Failure
	Result    *wizard.Result
}

func newView(session Session, controller *wizard.Controller) View {
	definition := controller.Definition()
	steps := make([]string, len(definition.Steps))
	for i, step := range definition.Steps {
		steps[i] = step.ID
	}

	return View{
		ID:        session.ID,
		Kind:      session.Kind,
		SubjectID: session.SubjectID,
		Step:      controller.CurrentIndex(),
		StepID:    controller.Current().ID,
		Steps:     steps,
		IsLast:    controller.IsLast(),
		Draft:     controller.Draft().Map(),
		Errors:    controller.AllErrors(),
		Status:    controller.Status(),
		Failure:   controller.Failure(),
		Result:    controller.Result(),
	}
}
