package usecases

//go:generate mockgen -source=repository_port.go -destination=../../../test/unit/doubles/maintenance/usecases/repository_port_mock.go -package=usecases -mock_names=RequestRepository=MockRequestRepository

import (
	"context"
	"errors"

	maintenanceDomain "easyrent-server/internal/maintenance/domain"
	shareddomain "easyrent-server/internal/shared_kernel/domain"
)

var ErrRequestNotFound = errors.New("maintenance request not found")

type Pagination struct {
	Limit  int
	Offset int
}

type RequestRepository interface {
	Create(ctx context.Context, request maintenanceDomain.Request) error
	GetByID(ctx context.Context, id shareddomain.ID) (maintenanceDomain.Request, error)
	FindAllByOwner(ctx context.Context, ownerID shareddomain.ID, pagination Pagination) ([]maintenanceDomain.Request, int, error)
	FindAllByProperty(ctx context.Context, propertyID shareddomain.ID, pagination Pagination) ([]maintenanceDomain.Request, int, error)
	Update(ctx context.Context, request maintenanceDomain.Request) error
	Delete(ctx context.Context, id shareddomain.ID) error
}
