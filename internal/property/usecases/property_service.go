package usecases

//go:generate mockgen -source=./property_service.go -destination=../../../test/unit/doubles/property/usecases/property_service_mock.go -package=usecases -mock_names=PropertyService=MockPropertyService

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"

	propertyDomain "easyrent-server/internal/property/domain"
	shareddomain "easyrent-server/internal/shared_kernel/domain"
)

type PropertyService interface {
	CreateProperty(ctx context.Context, property propertyDomain.Property) error
	GetProperty(ctx context.Context, ownerID, id shareddomain.ID) (propertyDomain.Property, error)
	ListProperties(ctx context.Context, ownerID shareddomain.ID, pagination Pagination) ([]propertyDomain.Property, int, error)
	ListAvailableProperties(ctx context.Context, ownerID shareddomain.ID) ([]propertyDomain.Property, error)
	GetAvailableProperty(ctx context.Context, ownerID, id shareddomain.ID) (propertyDomain.Property, error)
	DeleteProperty(ctx context.Context, ownerID, id shareddomain.ID) error
}

func NewPropertyService(repository PropertyRepository, leases LeaseIndex) *SimplePropertyService {
	return &SimplePropertyService{
		repository: repository,
		leases:     leases,
	}
}

var _ PropertyService = (*SimplePropertyService)(nil)

type SimplePropertyService struct {
	repository PropertyRepository
	leases     LeaseIndex
}

func (s *SimplePropertyService) CreateProperty(ctx context.Context, property propertyDomain.Property) error {
	err := s.repository.Create(ctx, property)
	if err != nil {
		slog.Error("creating property", slog.String("error", err.Error()))
		return fmt.Errorf("creating property: %w", err)
	}

	slog.Info("property created successfully",
		slog.String("property_id", property.ID.String()),
		slog.String("owner_id", property.OwnerID.String()),
		slog.String("type", string(property.Type)))

	return nil
}

// GetProperty hides properties of other owners behind ErrPropertyNotFound.
func (s *SimplePropertyService) GetProperty(ctx context.Context, ownerID, id shareddomain.ID) (propertyDomain.Property, error) {
	property, err := s.repository.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, ErrPropertyNotFound) {
			return propertyDomain.Property{}, ErrPropertyNotFound
		}
		slog.Error("getting property", slog.String("error", err.Error()))
		return propertyDomain.Property{}, fmt.Errorf("getting property: %w", err)
	}

	if property.OwnerID != ownerID || property.IsDeleted() {
		return propertyDomain.Property{}, ErrPropertyNotFound
	}

	return property, nil
}

func (s *SimplePropertyService) ListProperties(
	ctx context.Context,
	ownerID shareddomain.ID,
	pagination Pagination,
) ([]propertyDomain.Property, int, error) {
	properties, total, err := s.repository.FindAllByOwner(ctx, ownerID, pagination)
	if err != nil {
		slog.Error("listing properties", slog.String("error", err.Error()))
		return nil, 0, fmt.Errorf("listing properties: %w", err)
	}

	return properties, total, nil
}

// ListAvailableProperties returns the leasable properties that have no
// active lease.
func (s *SimplePropertyService) ListAvailableProperties(ctx context.Context, ownerID shareddomain.ID) ([]propertyDomain.Property, error) {
	properties, err := s.repository.FindAllLeasableByOwner(ctx, ownerID)
	if err != nil {
		slog.Error("listing leasable properties", slog.String("error", err.Error()))
		return nil, fmt.Errorf("listing leasable properties: %w", err)
	}

	leased, err := s.leases.LeasedPropertyIDs(ctx, ownerID)
	if err != nil {
		slog.Error("listing leased properties", slog.String("error", err.Error()))
		return nil, fmt.Errorf("listing leased properties: %w", err)
	}

	return slices.DeleteFunc(properties, func(p propertyDomain.Property) bool {
		return !p.Leasable() || slices.Contains(leased, p.ID)
	}), nil
}

func (s *SimplePropertyService) GetAvailableProperty(ctx context.Context, ownerID, id shareddomain.ID) (propertyDomain.Property, error) {
	property, err := s.GetProperty(ctx, ownerID, id)
	if err != nil {
		return propertyDomain.Property{}, err
	}

	if !property.Leasable() {
		return propertyDomain.Property{}, ErrPropertyUnavailable
	}

	leased, err := s.leases.LeasedPropertyIDs(ctx, ownerID)
	if err != nil {
		return propertyDomain.Property{}, fmt.Errorf("listing leased properties: %w", err)
	}
	if slices.Contains(leased, property.ID) {
		return propertyDomain.Property{}, ErrPropertyUnavailable
	}

	return property, nil
}

func (s *SimplePropertyService) DeleteProperty(ctx context.Context, ownerID, id shareddomain.ID) error {
	if _, err := s.GetProperty(ctx, ownerID, id); err != nil {
		return err
	}

	err := s.repository.Delete(ctx, id)
	if err != nil {
		slog.Error("deleting property", slog.String("error", err.Error()))
		return fmt.Errorf("deleting property: %w", err)
	}

	slog.Info("property deleted", slog.String("property_id", id.String()))
	return nil
}
