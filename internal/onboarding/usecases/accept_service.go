package usecases

//go:generate mockgen -source=./accept_service.go -destination=../../../test/unit/doubles/onboarding/usecases/accept_service_mock.go -package=usecases -mock_names=AcceptService=MockAcceptService

import (
	"context"
	"log/slog"

	leaseDomain "easyrent-server/internal/lease/domain"
	leaseUsecases "easyrent-server/internal/lease/usecases"
	onboardingDomain "easyrent-server/internal/onboarding/domain"
	shareddomain "easyrent-server/internal/shared_kernel/domain"
	"easyrent-server/internal/submission"
)

const AcceptKind = "invite_accept"

type AcceptRequest struct {
	Email     string
	Token     string
	FirstName string
	LastName  string
	Phone     string
}

type Acceptance struct {
	InviteID  shareddomain.ID
	TenantID  shareddomain.ID
	LeaseID   shareddomain.ID
	JournalID string
}

type AcceptService interface {
	AcceptInvite(ctx context.Context, request AcceptRequest) (Acceptance, error)
}

func NewAcceptService(
	invites InviteService,
	inviteRepository InviteRepository,
	tenants TenantRepository,
	leases leaseUsecases.LeaseService,
	orchestrator submission.Orchestrator,
) *SimpleAcceptService {
	return &SimpleAcceptService{
		invites:          invites,
		inviteRepository: inviteRepository,
		tenants:          tenants,
		leases:           leases,
		orchestrator:     orchestrator,
	}
}

var _ AcceptService = (*SimpleAcceptService)(nil)

// SimpleAcceptService turns a verified invite into a tenant with an active
// lease on the invited property.
type SimpleAcceptService struct {
	invites          InviteService
	inviteRepository InviteRepository
	tenants          TenantRepository
	leases           leaseUsecases.LeaseService
	orchestrator     submission.Orchestrator
}

func (s *SimpleAcceptService) AcceptInvite(ctx context.Context, request AcceptRequest) (Acceptance, error) {
	invite, err := s.invites.VerifyInvite(ctx, request.Email, request.Token)
	if err != nil {
		return Acceptance{}, err
	}

	tenant, err := onboardingDomain.NewTenantFromInvite(invite, request.FirstName, request.LastName, request.Phone)
	if err != nil {
		return Acceptance{}, err
	}

	lease, err := leaseDomain.NewLeaseBuilder().
		WithOwnerID(invite.LandlordID).
		WithTenantID(tenant.ID).
		WithPropertyID(invite.PropertyID).
		WithTerm(invite.Term).
		WithRentAmount(invite.RentAmount).
		WithDepositAmount(invite.DepositAmount).
		WithStatus(string(leaseDomain.StatusActive)).
		Build()
	if err != nil {
		return Acceptance{}, err
	}

	plan := submission.Plan{
		Kind:    AcceptKind,
		OwnerID: invite.LandlordID.String(),
		Primary: submission.Insert{
			Op:    "insert_tenant",
			Table: "tenants",
			Run: func(ctx context.Context, _ *submission.State) (string, error) {
				if err := s.tenants.Create(ctx, tenant); err != nil {
					return "", err
				}
				return tenant.ID.String(), nil
			},
		},
		Dependents: []submission.Insert{{
			Op:    "insert_lease",
			Table: "leases",
			Run: func(ctx context.Context, _ *submission.State) (string, error) {
				if err := s.leases.CreateLease(ctx, lease); err != nil {
					return "", err
				}
				return lease.ID.String(), nil
			},
		}},
		Transition: &submission.Transition{
			Op: "complete_invite",
			Run: func(ctx context.Context, _ *submission.State) error {
				if err := invite.Complete(); err != nil {
					return err
				}
				return s.inviteRepository.Update(ctx, invite)
			},
		},
	}

	result, err := s.orchestrator.Execute(ctx, plan)
	if err != nil {
		return Acceptance{}, err
	}

	slog.Info("invite accepted",
		slog.String("invite_id", invite.ID.String()),
		slog.String("tenant_id", tenant.ID.String()),
		slog.String("lease_id", lease.ID.String()))

	return Acceptance{
		InviteID:  invite.ID,
		TenantID:  tenant.ID,
		LeaseID:   lease.ID,
		JournalID: result.JournalID,
	}, nil
}
