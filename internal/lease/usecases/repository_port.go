package usecases

//go:generate mockgen -source=repository_port.go -destination=../../../test/unit/doubles/lease/usecases/repository_port_mock.go -package=usecases -mock_names=LeaseRepository=MockLeaseRepository

import (
	"context"
	"errors"

	leaseDomain "easyrent-server/internal/lease/domain"
	shareddomain "easyrent-server/internal/shared_kernel/domain"
)

var (
	ErrLeaseNotFound  = errors.New("lease not found")
	ErrPropertyLeased = errors.New("property already has an active lease")
)

type Pagination struct {
	Limit  int
	Offset int
}

type LeaseRepository interface {
	Create(ctx context.Context, lease leaseDomain.Lease) error
	GetByID(ctx context.Context, id shareddomain.ID) (leaseDomain.Lease, error)
	FindAllByOwner(ctx context.Context, ownerID shareddomain.ID, pagination Pagination) ([]leaseDomain.Lease, int, error)
	LeasedPropertyIDs(ctx context.Context, ownerID shareddomain.ID) ([]shareddomain.ID, error)
	Update(ctx context.Context, lease leaseDomain.Lease) error
	Delete(ctx context.Context, id shareddomain.ID) error
}
