package usecases

//go:generate mockgen -source=./invite_service.go -destination=../../../test/unit/doubles/onboarding/usecases/invite_service_mock.go -package=usecases -mock_names=InviteService=MockInviteService

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	onboardingDomain "easyrent-server/internal/onboarding/domain"
	propertyUsecases "easyrent-server/internal/property/usecases"
	shareddomain "easyrent-server/internal/shared_kernel/domain"
)

type InviteService interface {
	CreateInvite(ctx context.Context, invite onboardingDomain.Invite) (onboardingDomain.Invite, error)
	GetInvite(ctx context.Context, landlordID, id shareddomain.ID) (onboardingDomain.Invite, error)
	ListInvites(ctx context.Context, landlordID shareddomain.ID, pagination Pagination) ([]onboardingDomain.Invite, int, error)
	VerifyInvite(ctx context.Context, email, token string) (onboardingDomain.Invite, error)
	ExpireInvites(ctx context.Context) (int, error)
}

func NewInviteService(
	repository InviteRepository,
	properties propertyUsecases.PropertyService,
	mailer *Mailer,
) *SimpleInviteService {
	return &SimpleInviteService{
		repository: repository,
		properties: properties,
		mailer:     mailer,
		now:        time.Now,
	}
}

var _ InviteService = (*SimpleInviteService)(nil)

type SimpleInviteService struct {
	repository InviteRepository
	properties propertyUsecases.PropertyService
	mailer     *Mailer
	now        func() time.Time
}

// CreateInvite stores the invite and emails the tenant. A failed email is
// reported through EmailSent; the invite is kept either way.
func (s *SimpleInviteService) CreateInvite(ctx context.Context, invite onboardingDomain.Invite) (onboardingDomain.Invite, error) {
	property, err := s.properties.GetAvailableProperty(ctx, invite.LandlordID, invite.PropertyID)
	if err != nil {
		return onboardingDomain.Invite{}, err
	}

	invite.EmailSent = false
	if err := s.repository.Create(ctx, invite); err != nil {
		slog.Error("creating invite", slog.String("error", err.Error()))
		return onboardingDomain.Invite{}, fmt.Errorf("creating invite: %w", err)
	}

	if err := s.mailer.SendInvite(ctx, invite, property); err != nil {
		slog.Warn("invite email not sent",
			slog.String("invite_id", invite.ID.String()),
			slog.String("error", err.Error()))
		return invite, nil
	}

	invite.EmailSent = true
	if err := s.repository.Update(ctx, invite); err != nil {
		slog.Error("flagging invite email as sent",
			slog.String("invite_id", invite.ID.String()),
			slog.String("error", err.Error()))
	}

	slog.Info("invite created successfully",
		slog.String("invite_id", invite.ID.String()),
		slog.String("property_id", invite.PropertyID.String()))

	return invite, nil
}

func (s *SimpleInviteService) GetInvite(ctx context.Context, landlordID, id shareddomain.ID) (onboardingDomain.Invite, error) {
	invite, err := s.repository.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, ErrInviteNotFound) {
			return onboardingDomain.Invite{}, ErrInviteNotFound
		}
		slog.Error("getting invite", slog.String("error", err.Error()))
		return onboardingDomain.Invite{}, fmt.Errorf("getting invite: %w", err)
	}

	if invite.LandlordID != landlordID {
		return onboardingDomain.Invite{}, ErrInviteNotFound
	}

	return invite, nil
}

func (s *SimpleInviteService) ListInvites(
	ctx context.Context,
	landlordID shareddomain.ID,
	pagination Pagination,
) ([]onboardingDomain.Invite, int, error) {
	invites, total, err := s.repository.FindAllByLandlord(ctx, landlordID, pagination)
	if err != nil {
		slog.Error("listing invites", slog.String("error", err.Error()))
		return nil, 0, fmt.Errorf("listing invites: %w", err)
	}
	return invites, total, nil
}

// VerifyInvite finds the pending invite behind an emailed link.
func (s *SimpleInviteService) VerifyInvite(ctx context.Context, email, token string) (onboardingDomain.Invite, error) {
	if email == "" || token == "" {
		return onboardingDomain.Invite{}, ErrInviteNotFound
	}

	invite, err := s.repository.FindPendingByEmailAndToken(ctx, email, token)
	if err != nil {
		if errors.Is(err, ErrInviteNotFound) {
			return onboardingDomain.Invite{}, ErrInviteNotFound
		}
		slog.Error("verifying invite", slog.String("error", err.Error()))
		return onboardingDomain.Invite{}, fmt.Errorf("verifying invite: %w", err)
	}

	if invite.IsExpiredAt(s.now()) {
		return onboardingDomain.Invite{}, ErrInviteExpired
	}

	return invite, nil
}

// ExpireInvites closes every pending invite past its deadline and returns
// how many were closed.
func (s *SimpleInviteService) ExpireInvites(ctx context.Context) (int, error) {
	now := s.now()

	invites, err := s.repository.FindAllPendingExpiredBefore(ctx, now)
	if err != nil {
		slog.Error("finding expired invites", slog.String("error", err.Error()))
		return 0, fmt.Errorf("finding expired invites: %w", err)
	}

	expired := 0
	for _, invite := range invites {
		if !invite.Expire(now) {
			continue
		}
		if err := s.repository.Update(ctx, invite); err != nil {
			slog.Error("expiring invite",
				slog.String("invite_id", invite.ID.String()),
				slog.String("error", err.Error()))
			continue
		}
		expired++
	}

	if expired > 0 {
		slog.Info("invites expired", slog.Int("count", expired))
	}
	return expired, nil
}

// ExpiryJob runs ExpireInvites on the worker schedule.
type ExpiryJob struct {
	service InviteService
}

func NewExpiryJob(service InviteService) *ExpiryJob {
	return &ExpiryJob{service: service}
}

func (j *ExpiryJob) Name() string {
	return "invite_expiry"
}

func (j *ExpiryJob) Execute(ctx context.Context) error {
	_, err := j.service.ExpireInvites(ctx)
	return err
}
