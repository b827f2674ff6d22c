package usecases

//go:generate mockgen -source=flow.go -destination=../../../test/unit/doubles/wizard/usecases/flow_mock.go -package=usecases -mock_names=Flow=MockFlow

import (
	"context"

	"easyrent-server/internal/submission"
	shareddomain "easyrent-server/internal/shared_kernel/domain"
	"easyrent-server/internal/wizard"
)

type StartRequest struct {
	Principal shareddomain.Principal
	Params    map[string]string
	Seed      map[string]any
}

// Start is what a flow decides when a session opens: who may drive it,
// what it is about and the initial draft.
type Start struct {
	OwnerID   shareddomain.ID
	SubjectID string
	Seed      map[string]any
}

// Flow plugs one kind of wizard into the session service.
type Flow interface {
	Definition() wizard.Definition
	FileFields() map[string]submission.FileKind
	Start(ctx context.Context, request StartRequest) (Start, error)
	Submitter(ctx context.Context, session Session) (wizard.Submitter, error)
}
