package usecases

//go:generate mockgen -source=./tenant_service.go -destination=../../../test/unit/doubles/onboarding/usecases/tenant_service_mock.go -package=usecases -mock_names=TenantService=MockTenantService

import (
	"context"
	"fmt"
	"log/slog"

	onboardingDomain "easyrent-server/internal/onboarding/domain"
	shareddomain "easyrent-server/internal/shared_kernel/domain"
)

type TenantService interface {
	ListTenants(ctx context.Context, landlordID shareddomain.ID, pagination Pagination) ([]onboardingDomain.Tenant, int, error)
}

func NewTenantService(repository TenantRepository) *SimpleTenantService {
	return &SimpleTenantService{repository: repository}
}

var _ TenantService = (*SimpleTenantService)(nil)

type SimpleTenantService struct {
	repository TenantRepository
}

func (s *SimpleTenantService) ListTenants(
	ctx context.Context,
	landlordID shareddomain.ID,
	pagination Pagination,
) ([]onboardingDomain.Tenant, int, error) {
	tenants, total, err := s.repository.FindAllByLandlord(ctx, landlordID, pagination)
	if err != nil {
		slog.Error("listing tenants", slog.String("error", err.Error()))
		return nil, 0, fmt.Errorf("listing tenants: %w", err)
	}
	return tenants, total, nil
}
