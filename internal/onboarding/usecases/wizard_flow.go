package usecases

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	onboardingDomain "easyrent-server/internal/onboarding/domain"
	shareddomain "easyrent-server/internal/shared_kernel/domain"
	"easyrent-server/internal/submission"
	"easyrent-server/internal/wizard"
	wizardUsecases "easyrent-server/internal/wizard/usecases"
)

const DefaultDocumentsBucket = "tenant_documents"

func NewWizardFlow(
	invites InviteService,
	inviteRepository InviteRepository,
	profiles ProfileRepository,
	publisher CompletionPublisher,
	orchestrator submission.Orchestrator,
	files submission.FileSource,
	documentsBucket string,
) *WizardFlow {
	if documentsBucket == "" {
		documentsBucket = DefaultDocumentsBucket
	}
	return &WizardFlow{
		invites:          invites,
		inviteRepository: inviteRepository,
		profiles:         profiles,
		publisher:        publisher,
		orchestrator:     orchestrator,
		files:            files,
		documentsBucket:  documentsBucket,
		definition:       WizardDefinition(),
		now:              time.Now,
	}
}

var _ wizardUsecases.Flow = (*WizardFlow)(nil)

// WizardFlow drives tenant onboarding. Sessions have no owner: opening one
// requires the email and token of a pending invite, and the session is
// bound to that invite.
type WizardFlow struct {
	invites          InviteService
	inviteRepository InviteRepository
	profiles         ProfileRepository
	publisher        CompletionPublisher
	orchestrator     submission.Orchestrator
	files            submission.FileSource
	documentsBucket  string
	definition       wizard.Definition
	now              func() time.Time
}

func (f *WizardFlow) Definition() wizard.Definition {
	return f.definition
}

func (f *WizardFlow) FileFields() map[string]submission.FileKind {
	return fileFields()
}

func (f *WizardFlow) Start(ctx context.Context, request wizardUsecases.StartRequest) (wizardUsecases.Start, error) {
	invite, err := f.invites.VerifyInvite(ctx, request.Params["email"], request.Params["token"])
	if err != nil {
		return wizardUsecases.Start{}, fmt.Errorf("%w: %w", wizardUsecases.ErrStartRejected, err)
	}

	return wizardUsecases.Start{
		SubjectID: invite.ID.String(),
		Seed:      request.Seed,
	}, nil
}

func (f *WizardFlow) Submitter(_ context.Context, session wizardUsecases.Session) (wizard.Submitter, error) {
	inviteID := shareddomain.ID(session.SubjectID)
	return wizard.SubmitterFunc(func(ctx context.Context, draft wizard.Draft) (wizard.Result, error) {
		return f.submit(ctx, inviteID, draft)
	}), nil
}

func (f *WizardFlow) pendingInvite(ctx context.Context, id shareddomain.ID) (onboardingDomain.Invite, error) {
	invite, err := f.inviteRepository.GetByID(ctx, id)
	if err != nil {
		return onboardingDomain.Invite{}, err
	}
	if invite.Status != onboardingDomain.InvitePending {
		return onboardingDomain.Invite{}, onboardingDomain.ErrInviteNotPending
	}
	if invite.IsExpiredAt(f.now()) {
		return onboardingDomain.Invite{}, ErrInviteExpired
	}
	return invite, nil
}

// submit uploads the documents, then writes the profile, its documents and
// the optional guarantor in that order before completing the invite.
func (f *WizardFlow) submit(ctx context.Context, inviteID shareddomain.ID, draft wizard.Draft) (wizard.Result, error) {
	invite, err := f.pendingInvite(ctx, inviteID)
	if err != nil {
		return wizard.Result{}, &submission.Error{Phase: submission.PhasePrecheck, Op: "load_invite", Err: err}
	}

	profile, err := ProfileFromDraft(draft, invite.ID, nil)
	if err != nil {
		return wizard.Result{}, &submission.Error{Phase: submission.PhasePrecheck, Op: "build_profile", Err: err}
	}

	now := f.now()
	targets := make([]submission.Target, 0, len(documentFields))
	for _, field := range documentFields {
		targets = append(targets, submission.Target{
			Field:  field.path,
			Kind:   submission.FileKindDocument,
			Bucket: f.documentsBucket,
			Prefix: field.folder,
		})
	}

	plan := submission.Plan{
		Kind:    string(WizardKind),
		OwnerID: invite.LandlordID.String(),
		Uploads: submission.PendingUploads(draft, f.files, now, targets...),
		Primary: submission.Insert{
			Op:    "insert_tenant_profile",
			Table: "tenant_profiles",
			Run: func(ctx context.Context, state *submission.State) (string, error) {
				profile.IncomeProof = resolve(draft, "financial_info.income_proof", state)
				if err := f.profiles.CreateProfile(ctx, profile); err != nil {
					return "", err
				}
				return profile.ID.String(), nil
			},
		},
		Dependents: []submission.Insert{{
			Op:    "insert_tenant_documents",
			Table: "tenant_documents",
			Run: func(ctx context.Context, state *submission.State) (string, error) {
				documents := DocumentsFromDraft(draft, profile.ID, state)
				if err := f.profiles.CreateDocuments(ctx, documents); err != nil {
					return "", err
				}
				return documents.ID.String(), nil
			},
		}},
		Transition: &submission.Transition{
			Op: "complete_invite",
			Run: func(ctx context.Context, _ *submission.State) error {
				if err := invite.Complete(); err != nil {
					return err
				}
				return f.inviteRepository.Update(ctx, invite)
			},
		},
	}

	var guarantorID *shareddomain.ID
	if HasGuarantor(draft) {
		plan.Dependents = append(plan.Dependents, submission.Insert{
			Op:    "insert_tenant_guarantor",
			Table: "tenant_guarantors",
			Run: func(ctx context.Context, state *submission.State) (string, error) {
				guarantor := GuarantorFromDraft(draft, profile.ID, state)
				if err := f.profiles.CreateGuarantor(ctx, guarantor); err != nil {
					return "", err
				}
				guarantorID = &guarantor.ID
				return guarantor.ID.String(), nil
			},
		})
	}

	result, err := f.orchestrator.Execute(ctx, plan)
	if err != nil {
		return wizard.Result{}, err
	}

	event := OnboardingCompleted{
		InviteID:    invite.ID,
		ProfileID:   profile.ID,
		LandlordID:  invite.LandlordID,
		PropertyID:  invite.PropertyID,
		TenantEmail: invite.Email,
		TenantName:  invite.FullName(),
		GuarantorID: guarantorID,
		CompletedAt: f.now(),
	}
	if err := f.publisher.PublishCompleted(ctx, event); err != nil {
		slog.Error("publishing onboarding completed",
			slog.String("invite_id", invite.ID.String()),
			slog.String("error", err.Error()))
	}

	return result.WizardResult(), nil
}
