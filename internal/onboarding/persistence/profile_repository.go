package persistence

import (
	"context"
	"fmt"

	"easyrent-server/internal/infra/sql"
	onboardingDomain "easyrent-server/internal/onboarding/domain"
	"easyrent-server/internal/onboarding/persistence/internal"
	"easyrent-server/internal/onboarding/usecases"
)

func NewProfileRepository(orm sql.ORM) (*SimpleProfileRepository, error) {
	err := orm.AutoMigrate(&internal.TenantProfile{}, &internal.TenantDocuments{}, &internal.Guarantor{})
	if err != nil {
		return nil, fmt.Errorf("auto migrating: %w", err)
	}

	return &SimpleProfileRepository{orm: orm}, nil
}

var _ usecases.ProfileRepository = (*SimpleProfileRepository)(nil)

// SimpleProfileRepository writes what the onboarding wizard collects. Rows
// are only ever inserted; a failed submission leaves them to the journal
// sweeper.
type SimpleProfileRepository struct {
	orm sql.ORM
}

func (r *SimpleProfileRepository) CreateProfile(ctx context.Context, profile onboardingDomain.TenantProfile) error {
	entity := internal.FromTenantProfile(profile)

	err := r.orm.WithContext(ctx).Create(&entity).Error()
	if err != nil {
		return fmt.Errorf("creating tenant profile in database: %w", err)
	}
	return nil
}

func (r *SimpleProfileRepository) CreateDocuments(ctx context.Context, documents onboardingDomain.TenantDocuments) error {
	entity := internal.FromTenantDocuments(documents)

	err := r.orm.WithContext(ctx).Create(&entity).Error()
	if err != nil {
		return fmt.Errorf("creating tenant documents in database: %w", err)
	}
	return nil
}

func (r *SimpleProfileRepository) CreateGuarantor(ctx context.Context, guarantor onboardingDomain.Guarantor) error {
	entity := internal.FromGuarantor(guarantor)

	err := r.orm.WithContext(ctx).Create(&entity).Error()
	if err != nil {
		return fmt.Errorf("creating guarantor in database: %w", err)
	}
	return nil
}
