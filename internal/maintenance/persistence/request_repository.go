package persistence

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"easyrent-server/internal/infra/pubsub"
	"easyrent-server/internal/infra/sql"
	maintenanceDomain "easyrent-server/internal/maintenance/domain"
	"easyrent-server/internal/maintenance/persistence/internal"
	"easyrent-server/internal/maintenance/usecases"
	"easyrent-server/internal/shared_kernel/avro"
	shareddomain "easyrent-server/internal/shared_kernel/domain"
)

const _maintenanceRequestsTopic = "maintenance_requests"

func NewRequestRepository(
	publisherFactory pubsub.PublisherFactory,
	orm sql.ORM,
) (*SimpleRequestRepository, error) {
	publisher, err := publisherFactory.New(_maintenanceRequestsTopic, &avro.AvroMaintenanceRequest{})
	if err != nil {
		return nil, fmt.Errorf("creating publisher: %w", err)
	}

	err = orm.AutoMigrate(&internal.MaintenanceRequest{})
	if err != nil {
		return nil, fmt.Errorf("auto migrating: %w", err)
	}

	return &SimpleRequestRepository{
		publisher: publisher,
		orm:       orm,
	}, nil
}

var _ usecases.RequestRepository = (*SimpleRequestRepository)(nil)

type SimpleRequestRepository struct {
	publisher pubsub.Publisher
	orm       sql.ORM
}

func (r *SimpleRequestRepository) Create(ctx context.Context, request maintenanceDomain.Request) error {
	entity := internal.FromRequest(request)

	err := r.orm.WithContext(ctx).Create(&entity).Error()
	if err != nil {
		return fmt.Errorf("creating maintenance request in database: %w", err)
	}

	r.publish(ctx, request)
	return nil
}

func (r *SimpleRequestRepository) GetByID(ctx context.Context, id shareddomain.ID) (maintenanceDomain.Request, error) {
	var entity internal.MaintenanceRequest
	err := r.orm.
		WithContext(ctx).
		First(&entity, "id = ?", id.String()).
		Error()

	if errors.Is(err, sql.ErrRecordNotFound) {
		return maintenanceDomain.Request{}, usecases.ErrRequestNotFound
	}

	if err != nil {
		return maintenanceDomain.Request{}, fmt.Errorf("database query: %w", err)
	}

	return entity.ToDomain(), nil
}

func (r *SimpleRequestRepository) FindAllByOwner(
	ctx context.Context,
	ownerID shareddomain.ID,
	pagination usecases.Pagination,
) ([]maintenanceDomain.Request, int, error) {
	return r.findAll(ctx, "user_id = ? AND deleted_at IS NULL", ownerID.String(), pagination)
}

func (r *SimpleRequestRepository) FindAllByProperty(
	ctx context.Context,
	propertyID shareddomain.ID,
	pagination usecases.Pagination,
) ([]maintenanceDomain.Request, int, error) {
	return r.findAll(ctx, "property_id = ? AND deleted_at IS NULL", propertyID.String(), pagination)
}

func (r *SimpleRequestRepository) findAll(
	ctx context.Context,
	query string,
	arg string,
	pagination usecases.Pagination,
) ([]maintenanceDomain.Request, int, error) {
	var total int64
	err := r.orm.
		WithContext(ctx).
		Model(&internal.MaintenanceRequest{}).
		Where(query, arg).
		Count(&total).
		Error()
	if err != nil {
		return nil, 0, fmt.Errorf("count query: %w", err)
	}

	var entities []internal.MaintenanceRequest
	err = r.orm.
		WithContext(ctx).
		Where(query, arg).
		Order("created_at DESC").
		Limit(pagination.Limit).
		Offset(pagination.Offset).
		Find(&entities).
		Error()
	if err != nil {
		return nil, 0, fmt.Errorf("database query: %w", err)
	}

	requests := make([]maintenanceDomain.Request, len(entities))
	for i, entity := range entities {
		requests[i] = entity.ToDomain()
	}
	return requests, int(total), nil
}

func (r *SimpleRequestRepository) Update(ctx context.Context, request maintenanceDomain.Request) error {
	entity := internal.FromRequest(request)

	err := r.orm.WithContext(ctx).Save(&entity).Error()
	if err != nil {
		return fmt.Errorf("updating maintenance request in database: %w", err)
	}

	r.publish(ctx, request)
	return nil
}

func (r *SimpleRequestRepository) Delete(ctx context.Context, id shareddomain.ID) error {
	request, err := r.GetByID(ctx, id)
	if err != nil {
		return err
	}

	request.SoftDelete()
	return r.Update(ctx, request)
}

func (r *SimpleRequestRepository) publish(ctx context.Context, request maintenanceDomain.Request) {
	err := r.publisher.Publish(ctx, pubsub.Key(request.ID), convertToAvroMaintenanceRequest(request))
	if err != nil {
		slog.Error("publishing maintenance request",
			slog.String("request_id", request.ID.String()),
			slog.String("error", err.Error()))
	}
}

func convertToAvroMaintenanceRequest(request maintenanceDomain.Request) *avro.AvroMaintenanceRequest {
	result := &avro.AvroMaintenanceRequest{
		ID:            request.ID.String(),
		Version:       int(request.Version),
		OwnerID:       request.OwnerID.String(),
		PropertyID:    request.PropertyID.String(),
		Description:   request.Description,
		Priority:      string(request.Priority),
		Status:        string(request.Status),
		EstimatedCost: request.EstimatedCost,
		ActualCost:    request.ActualCost,
		CreatedAt:     request.CreatedAt.Time,
		UpdatedAt:     request.UpdatedAt.Time,
	}

	if request.AssignedTo != "" {
		assignedTo := request.AssignedTo
		result.AssignedTo = &assignedTo
	}

	if request.CompletionDate != nil {
		completed := request.CompletionDate.Time
		result.CompletionDate = &completed
	}

	return result
}
