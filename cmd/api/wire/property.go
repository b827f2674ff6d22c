//go:build wireinject
// +build wireinject

package wire

import (
	leaseHTTPAPI "easyrent-server/internal/lease/httpapi"
	leaseUsecases "easyrent-server/internal/lease/usecases"
	maintenanceHTTPAPI "easyrent-server/internal/maintenance/httpapi"
	maintenancePersistence "easyrent-server/internal/maintenance/persistence"
	maintenanceUsecases "easyrent-server/internal/maintenance/usecases"
	propertyHTTPAPI "easyrent-server/internal/property/httpapi"

	"github.com/google/wire"
)

func InitializePropertyController() (*propertyHTTPAPI.PropertyController, error) {
	wire.Build(
		InfraSet,
		PropertyServiceSet,
		propertyHTTPAPI.NewPropertyController,
	)
	return nil, nil
}

func InitializeLeaseController() (*leaseHTTPAPI.LeaseController, error) {
	wire.Build(
		InfraSet,
		PropertyServiceSet,
		leaseUsecases.NewLeaseService,
		wire.Bind(new(leaseUsecases.LeaseService), new(*leaseUsecases.SimpleLeaseService)),
		leaseHTTPAPI.NewLeaseController,
	)
	return nil, nil
}

func InitializeMaintenanceRequestController() (*maintenanceHTTPAPI.RequestController, error) {
	wire.Build(
		InfraSet,
		PropertyServiceSet,
		maintenancePersistence.NewRequestRepository,
		wire.Bind(new(maintenanceUsecases.RequestRepository), new(*maintenancePersistence.SimpleRequestRepository)),
		maintenanceUsecases.NewRequestService,
		wire.Bind(new(maintenanceUsecases.RequestService), new(*maintenanceUsecases.SimpleRequestService)),
		maintenanceHTTPAPI.NewRequestController,
	)
	return nil, nil
}
