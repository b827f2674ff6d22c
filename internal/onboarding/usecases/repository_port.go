package usecases

//go:generate mockgen -source=repository_port.go -destination=../../../test/unit/doubles/onboarding/usecases/repository_port_mock.go -package=usecases -mock_names=InviteRepository=MockInviteRepository,TenantRepository=MockTenantRepository,ProfileRepository=MockProfileRepository,CompletionPublisher=MockCompletionPublisher

import (
	"context"
	"errors"
	"time"

	onboardingDomain "easyrent-server/internal/onboarding/domain"
	shareddomain "easyrent-server/internal/shared_kernel/domain"
)

var (
	ErrInviteNotFound = errors.New("invite not found")
	ErrInviteExpired  = errors.New("invite has expired")
)

type Pagination struct {
	Limit  int
	Offset int
}

type InviteRepository interface {
	Create(ctx context.Context, invite onboardingDomain.Invite) error
	GetByID(ctx context.Context, id shareddomain.ID) (onboardingDomain.Invite, error)
	FindPendingByEmailAndToken(ctx context.Context, email, token string) (onboardingDomain.Invite, error)
	FindAllByLandlord(ctx context.Context, landlordID shareddomain.ID, pagination Pagination) ([]onboardingDomain.Invite, int, error)
	FindAllPendingExpiredBefore(ctx context.Context, now time.Time) ([]onboardingDomain.Invite, error)
	Update(ctx context.Context, invite onboardingDomain.Invite) error
}

type TenantRepository interface {
	Create(ctx context.Context, tenant onboardingDomain.Tenant) error
	FindAllByLandlord(ctx context.Context, landlordID shareddomain.ID, pagination Pagination) ([]onboardingDomain.Tenant, int, error)
}

type ProfileRepository interface {
	CreateProfile(ctx context.Context, profile onboardingDomain.TenantProfile) error
	CreateDocuments(ctx context.Context, documents onboardingDomain.TenantDocuments) error
	CreateGuarantor(ctx context.Context, guarantor onboardingDomain.Guarantor) error
}

// CompletionPublisher announces finished onboardings.
type CompletionPublisher interface {
	PublishCompleted(ctx context.Context, event OnboardingCompleted) error
}

type OnboardingCompleted struct {
	InviteID    shareddomain.ID
	ProfileID   shareddomain.ID
	LandlordID  shareddomain.ID
	PropertyID  shareddomain.ID
	TenantEmail string
	TenantName  string
	GuarantorID *shareddomain.ID
	CompletedAt time.Time
}
