package usecases

//go:generate mockgen -source=repository_port.go -destination=../../../test/unit/doubles/property/usecases/repository_port_mock.go -package=usecases -mock_names=PropertyRepository=MockPropertyRepository,LeaseIndex=MockLeaseIndex

import (
	"context"
	"errors"

	propertyDomain "easyrent-server/internal/property/domain"
	shareddomain "easyrent-server/internal/shared_kernel/domain"
)

var (
	ErrPropertyNotFound    = errors.New("property not found")
	ErrPropertyUnavailable = errors.New("property is not available")
)

type Pagination struct {
	Limit  int
	Offset int
}

type PropertyRepository interface {
	Create(ctx context.Context, property propertyDomain.Property) error
	GetByID(ctx context.Context, id shareddomain.ID) (propertyDomain.Property, error)
	FindAllByOwner(ctx context.Context, ownerID shareddomain.ID, pagination Pagination) ([]propertyDomain.Property, int, error)
	FindAllLeasableByOwner(ctx context.Context, ownerID shareddomain.ID) ([]propertyDomain.Property, error)
	Update(ctx context.Context, property propertyDomain.Property) error
	Delete(ctx context.Context, id shareddomain.ID) error
}

// LeaseIndex tells which properties of an owner are under an active lease.
type LeaseIndex interface {
	LeasedPropertyIDs(ctx context.Context, ownerID shareddomain.ID) ([]shareddomain.ID, error)
}
