package usecases

import (
	"context"
	"time"

	shareddomain "easyrent-server/internal/shared_kernel/domain"
	"easyrent-server/internal/submission"
	"easyrent-server/internal/wizard"
	wizardUsecases "easyrent-server/internal/wizard/usecases"
)

const DefaultPhotosBucket = "property_photos"

func NewWizardFlow(
	service PropertyService,
	orchestrator submission.Orchestrator,
	files submission.FileSource,
	photosBucket string,
) *WizardFlow {
	if photosBucket == "" {
		photosBucket = DefaultPhotosBucket
	}
	return &WizardFlow{
		service:      service,
		orchestrator: orchestrator,
		files:        files,
		photosBucket: photosBucket,
		definition:   WizardDefinition(),
		now:          time.Now,
	}
}

var _ wizardUsecases.Flow = (*WizardFlow)(nil)

// WizardFlow creates properties through the wizard. Sessions belong to the
// landlord who opened them.
type WizardFlow struct {
	service      PropertyService
	orchestrator submission.Orchestrator
	files        submission.FileSource
	photosBucket string
	definition   wizard.Definition
	now          func() time.Time
}

func (f *WizardFlow) Definition() wizard.Definition {
	return f.definition
}

func (f *WizardFlow) FileFields() map[string]submission.FileKind {
	return map[string]submission.FileKind{"photos": submission.FileKindPhoto}
}

func (f *WizardFlow) Start(_ context.Context, request wizardUsecases.StartRequest) (wizardUsecases.Start, error) {
	if request.Principal.IsZero() {
		return wizardUsecases.Start{}, shareddomain.ErrUnauthenticated
	}
	return wizardUsecases.Start{
		OwnerID: request.Principal.UserID,
		Seed:    request.Seed,
	}, nil
}

func (f *WizardFlow) Submitter(_ context.Context, session wizardUsecases.Session) (wizard.Submitter, error) {
	return wizard.SubmitterFunc(func(ctx context.Context, draft wizard.Draft) (wizard.Result, error) {
		return f.submit(ctx, session.OwnerID, draft)
	}), nil
}

// submit uploads the photos under the owner's folder and inserts the
// property as a single record.
func (f *WizardFlow) submit(ctx context.Context, ownerID shareddomain.ID, draft wizard.Draft) (wizard.Result, error) {
	property, err := PropertyFromDraft(draft, ownerID, nil)
	if err != nil {
		return wizard.Result{}, &submission.Error{Phase: submission.PhasePrecheck, Op: "build_property", Err: err}
	}

	plan := submission.Plan{
		Kind:    string(WizardKind),
		OwnerID: ownerID.String(),
		Uploads: submission.PendingUploads(draft, f.files, f.now(), submission.Target{
			Field:  "photos",
			Kind:   submission.FileKindPhoto,
			Bucket: f.photosBucket,
			Prefix: ownerID.String(),
		}),
		Primary: submission.Insert{
			Op:    "insert_property",
			Table: "properties",
			Run: func(ctx context.Context, state *submission.State) (string, error) {
				property.Photos = submission.ResolveFiles(draft, "photos", state)
				if err := f.service.CreateProperty(ctx, property); err != nil {
					return "", err
				}
				return property.ID.String(), nil
			},
		},
	}

	result, err := f.orchestrator.Execute(ctx, plan)
	if err != nil {
		return wizard.Result{}, err
	}
	return result.WizardResult(), nil
}
