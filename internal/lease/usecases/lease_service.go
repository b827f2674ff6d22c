package usecases

//go:generate mockgen -source=./lease_service.go -destination=../../../test/unit/doubles/lease/usecases/lease_service_mock.go -package=usecases -mock_names=LeaseService=MockLeaseService

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	leaseDomain "easyrent-server/internal/lease/domain"
	propertyUsecases "easyrent-server/internal/property/usecases"
	shareddomain "easyrent-server/internal/shared_kernel/domain"
)

type LeaseService interface {
	CreateLease(ctx context.Context, lease leaseDomain.Lease) error
	GetLease(ctx context.Context, ownerID, id shareddomain.ID) (leaseDomain.Lease, error)
	ListLeases(ctx context.Context, ownerID shareddomain.ID, pagination Pagination) ([]leaseDomain.Lease, int, error)
	UpdateLease(ctx context.Context, lease leaseDomain.Lease) error
	TerminateLease(ctx context.Context, ownerID, id shareddomain.ID) (leaseDomain.Lease, error)
	DeleteLease(ctx context.Context, ownerID, id shareddomain.ID) error
}

func NewLeaseService(repository LeaseRepository, properties propertyUsecases.PropertyService) *SimpleLeaseService {
	return &SimpleLeaseService{
		repository: repository,
		properties: properties,
	}
}

var _ LeaseService = (*SimpleLeaseService)(nil)

type SimpleLeaseService struct {
	repository LeaseRepository
	properties propertyUsecases.PropertyService
}

// CreateLease requires the property to belong to the lease owner. An active
// lease also needs the property to be free.
func (s *SimpleLeaseService) CreateLease(ctx context.Context, lease leaseDomain.Lease) error {
	if err := lease.Validate(); err != nil {
		return err
	}

	if err := s.checkProperty(ctx, lease); err != nil {
		return err
	}

	err := s.repository.Create(ctx, lease)
	if err != nil {
		slog.Error("creating lease", slog.String("error", err.Error()))
		return fmt.Errorf("creating lease: %w", err)
	}

	slog.Info("lease created successfully",
		slog.String("lease_id", lease.ID.String()),
		slog.String("property_id", lease.PropertyID.String()),
		slog.String("status", string(lease.Status)))

	return nil
}

func (s *SimpleLeaseService) checkProperty(ctx context.Context, lease leaseDomain.Lease) error {
	var err error
	if lease.Status == leaseDomain.StatusActive {
		_, err = s.properties.GetAvailableProperty(ctx, lease.OwnerID, lease.PropertyID)
	} else {
		_, err = s.properties.GetProperty(ctx, lease.OwnerID, lease.PropertyID)
	}

	switch {
	case errors.Is(err, propertyUsecases.ErrPropertyUnavailable):
		return ErrPropertyLeased
	case err != nil:
		return err
	}
	return nil
}

func (s *SimpleLeaseService) GetLease(ctx context.Context, ownerID, id shareddomain.ID) (leaseDomain.Lease, error) {
	lease, err := s.repository.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, ErrLeaseNotFound) {
			return leaseDomain.Lease{}, ErrLeaseNotFound
		}
		slog.Error("getting lease", slog.String("error", err.Error()))
		return leaseDomain.Lease{}, fmt.Errorf("getting lease: %w", err)
	}

	if lease.OwnerID != ownerID || lease.IsDeleted() {
		return leaseDomain.Lease{}, ErrLeaseNotFound
	}

	return lease, nil
}

func (s *SimpleLeaseService) ListLeases(
	ctx context.Context,
	ownerID shareddomain.ID,
	pagination Pagination,
) ([]leaseDomain.Lease, int, error) {
	leases, total, err := s.repository.FindAllByOwner(ctx, ownerID, pagination)
	if err != nil {
		slog.Error("listing leases", slog.String("error", err.Error()))
		return nil, 0, fmt.Errorf("listing leases: %w", err)
	}

	return leases, total, nil
}

// UpdateLease replaces the editable fields of an existing lease. Moving a
// lease to active checks the property again.
func (s *SimpleLeaseService) UpdateLease(ctx context.Context, lease leaseDomain.Lease) error {
	existing, err := s.GetLease(ctx, lease.OwnerID, lease.ID)
	if err != nil {
		return err
	}

	if err := lease.Validate(); err != nil {
		return err
	}

	if lease.Status == leaseDomain.StatusActive &&
		(existing.Status != leaseDomain.StatusActive || existing.PropertyID != lease.PropertyID) {
		if err := s.checkProperty(ctx, lease); err != nil {
			return err
		}
	}

	lease.Version = existing.Version + 1
	lease.CreatedAt = existing.CreatedAt

	err = s.repository.Update(ctx, lease)
	if err != nil {
		slog.Error("updating lease", slog.String("error", err.Error()))
		return fmt.Errorf("updating lease: %w", err)
	}

	return nil
}

func (s *SimpleLeaseService) TerminateLease(ctx context.Context, ownerID, id shareddomain.ID) (leaseDomain.Lease, error) {
	lease, err := s.GetLease(ctx, ownerID, id)
	if err != nil {
		return leaseDomain.Lease{}, err
	}

	if err := lease.Terminate(); err != nil {
		return leaseDomain.Lease{}, err
	}

	if err := s.repository.Update(ctx, lease); err != nil {
		slog.Error("terminating lease", slog.String("error", err.Error()))
		return leaseDomain.Lease{}, fmt.Errorf("terminating lease: %w", err)
	}

	slog.Info("lease terminated", slog.String("lease_id", id.String()))
	return lease, nil
}

func (s *SimpleLeaseService) DeleteLease(ctx context.Context, ownerID, id shareddomain.ID) error {
	if _, err := s.GetLease(ctx, ownerID, id); err != nil {
		return err
	}

	err := s.repository.Delete(ctx, id)
	if err != nil {
		slog.Error("deleting lease", slog.String("error", err.Error()))
		return fmt.Errorf("deleting lease: %w", err)
	}

	return nil
}
