package persistence

import (
	"context"
	"fmt"

	"easyrent-server/internal/infra/sql"
	onboardingDomain "easyrent-server/internal/onboarding/domain"
	"easyrent-server/internal/onboarding/persistence/internal"
	"easyrent-server/internal/onboarding/usecases"
	shareddomain "easyrent-server/internal/shared_kernel/domain"
)

func NewTenantRepository(orm sql.ORM) (*SimpleTenantRepository, error) {
	err := orm.AutoMigrate(&internal.Tenant{})
	if err != nil {
		return nil, fmt.Errorf("auto migrating: %w", err)
	}

	return &SimpleTenantRepository{orm: orm}, nil
}

var _ usecases.TenantRepository = (*SimpleTenantRepository)(nil)

type SimpleTenantRepository struct {
	orm sql.ORM
}

func (r *SimpleTenantRepository) Create(ctx context.Context, tenant onboardingDomain.Tenant) error {
	entity := internal.FromTenant(tenant)

	err := r.orm.WithContext(ctx).Create(&entity).Error()
	if err != nil {
		return fmt.Errorf("creating tenant in database: %w", err)
	}
	return nil
}

func (r *SimpleTenantRepository) FindAllByLandlord(
	ctx context.Context,
	landlordID shareddomain.ID,
	pagination usecases.Pagination,
) ([]onboardingDomain.Tenant, int, error) {
	var total int64
	err := r.orm.
		WithContext(ctx).
		Model(&internal.Tenant{}).
		Where("user_id = ?", landlordID.String()).
		Count(&total).
		Error()
	if err != nil {
		return nil, 0, fmt.Errorf("count query: %w", err)
	}

	var entities []internal.Tenant
	err = r.orm.
		WithContext(ctx).
		Where("user_id = ?", landlordID.String()).
		Order("last_name ASC, first_name ASC").
		Limit(pagination.Limit).
		Offset(pagination.Offset).
		Find(&entities).
		Error()
	if err != nil {
		return nil, 0, fmt.Errorf("database query: %w", err)
	}

	tenants := make([]onboardingDomain.Tenant, len(entities))
	for i, entity := range entities {
		tenants[i] = entity.ToDomain()
	}
	return tenants, int(total), nil
}
