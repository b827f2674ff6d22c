package usecases

//go:generate mockgen -source=./request_service.go -destination=../../../test/unit/doubles/maintenance/usecases/request_service_mock.go -package=usecases -mock_names=RequestService=MockRequestService

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"easyrent-server/internal/infra/utils"
	maintenanceDomain "easyrent-server/internal/maintenance/domain"
	propertyUsecases "easyrent-server/internal/property/usecases"
	shareddomain "easyrent-server/internal/shared_kernel/domain"
)

type RequestService interface {
	CreateRequest(ctx context.Context, request maintenanceDomain.Request) error
	GetRequest(ctx context.Context, ownerID, id shareddomain.ID) (maintenanceDomain.Request, error)
	ListRequests(ctx context.Context, ownerID shareddomain.ID, pagination Pagination) ([]maintenanceDomain.Request, int, error)
	ListPropertyRequests(ctx context.Context, ownerID, propertyID shareddomain.ID, pagination Pagination) ([]maintenanceDomain.Request, int, error)
	UpdateRequest(ctx context.Context, request maintenanceDomain.Request) error
	CompleteRequest(ctx context.Context, ownerID, id shareddomain.ID, actualCost *float64) (maintenanceDomain.Request, error)
	DeleteRequest(ctx context.Context, ownerID, id shareddomain.ID) error
}

func NewRequestService(repository RequestRepository, properties propertyUsecases.PropertyService) *SimpleRequestService {
	return &SimpleRequestService{
		repository: repository,
		properties: properties,
		now:        time.Now,
	}
}

var _ RequestService = (*SimpleRequestService)(nil)

type SimpleRequestService struct {
	repository RequestRepository
	properties propertyUsecases.PropertyService
	now        func() time.Time
}

// CreateRequest files a request against one of the owner's properties.
func (s *SimpleRequestService) CreateRequest(ctx context.Context, request maintenanceDomain.Request) error {
	if err := request.Validate(); err != nil {
		return err
	}

	if _, err := s.properties.GetProperty(ctx, request.OwnerID, request.PropertyID); err != nil {
		return err
	}

	err := s.repository.Create(ctx, request)
	if err != nil {
		slog.Error("creating maintenance request", slog.String("error", err.Error()))
		return fmt.Errorf("creating maintenance request: %w", err)
	}

	slog.Info("maintenance request created",
		slog.String("request_id", request.ID.String()),
		slog.String("property_id", request.PropertyID.String()),
		slog.String("priority", string(request.Priority)))

	return nil
}

func (s *SimpleRequestService) GetRequest(ctx context.Context, ownerID, id shareddomain.ID) (maintenanceDomain.Request, error) {
	request, err := s.repository.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, ErrRequestNotFound) {
			return maintenanceDomain.Request{}, ErrRequestNotFound
		}
		slog.Error("getting maintenance request", slog.String("error", err.Error()))
		return maintenanceDomain.Request{}, fmt.Errorf("getting maintenance request: %w", err)
	}

	if request.OwnerID != ownerID || request.IsDeleted() {
		return maintenanceDomain.Request{}, ErrRequestNotFound
	}

	return request, nil
}

func (s *SimpleRequestService) ListRequests(
	ctx context.Context,
	ownerID shareddomain.ID,
	pagination Pagination,
) ([]maintenanceDomain.Request, int, error) {
	requests, total, err := s.repository.FindAllByOwner(ctx, ownerID, pagination)
	if err != nil {
		slog.Error("listing maintenance requests", slog.String("error", err.Error()))
		return nil, 0, fmt.Errorf("listing maintenance requests: %w", err)
	}

	return requests, total, nil
}

func (s *SimpleRequestService) ListPropertyRequests(
	ctx context.Context,
	ownerID, propertyID shareddomain.ID,
	pagination Pagination,
) ([]maintenanceDomain.Request, int, error) {
	if _, err := s.properties.GetProperty(ctx, ownerID, propertyID); err != nil {
		return nil, 0, err
	}

	requests, total, err := s.repository.FindAllByProperty(ctx, propertyID, pagination)
	if err != nil {
		slog.Error("listing property maintenance requests", slog.String("error", err.Error()))
		return nil, 0, fmt.Errorf("listing maintenance requests: %w", err)
	}

	return requests, total, nil
}

// UpdateRequest replaces the editable fields. Reopening a closed request
// drops its completion date; closing it through an update stamps one.
func (s *SimpleRequestService) UpdateRequest(ctx context.Context, request maintenanceDomain.Request) error {
	existing, err := s.GetRequest(ctx, request.OwnerID, request.ID)
	if err != nil {
		return err
	}

	if err := request.Validate(); err != nil {
		return err
	}

	if existing.PropertyID != request.PropertyID {
		if _, err := s.properties.GetProperty(ctx, request.OwnerID, request.PropertyID); err != nil {
			return err
		}
	}

	switch {
	case request.Status != maintenanceDomain.StatusCompleted:
		request.CompletionDate = nil
	case existing.Status == maintenanceDomain.StatusCompleted:
		request.CompletionDate = existing.CompletionDate
	default:
		completed := utils.Time{Time: s.now()}
		request.CompletionDate = &completed
	}

	request.Version = existing.Version + 1
	request.CreatedAt = existing.CreatedAt
	request.UpdatedAt = utils.Time{Time: s.now()}

	err = s.repository.Update(ctx, request)
	if err != nil {
		slog.Error("updating maintenance request", slog.String("error", err.Error()))
		return fmt.Errorf("updating maintenance request: %w", err)
	}

	return nil
}

func (s *SimpleRequestService) CompleteRequest(
	ctx context.Context,
	ownerID, id shareddomain.ID,
	actualCost *float64,
) (maintenanceDomain.Request, error) {
	request, err := s.GetRequest(ctx, ownerID, id)
	if err != nil {
		return maintenanceDomain.Request{}, err
	}

	if err := request.Complete(actualCost, s.now()); err != nil {
		return maintenanceDomain.Request{}, err
	}

	if err := s.repository.Update(ctx, request); err != nil {
		slog.Error("completing maintenance request", slog.String("error", err.Error()))
		return maintenanceDomain.Request{}, fmt.Errorf("completing maintenance request: %w", err)
	}

	slog.Info("maintenance request completed", slog.String("request_id", id.String()))
	return request, nil
}

func (s *SimpleRequestService) DeleteRequest(ctx context.Context, ownerID, id shareddomain.ID) error {
	if _, err := s.GetRequest(ctx, ownerID, id); err != nil {
		return err
	}

	err := s.repository.Delete(ctx, id)
	if err != nil {
		slog.Error("deleting maintenance request", slog.String("error", err.Error()))
		return fmt.Errorf("deleting maintenance request: %w", err)
	}

	return nil
}
