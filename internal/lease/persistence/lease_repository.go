package persistence

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"easyrent-server/internal/infra/pubsub"
	"easyrent-server/internal/infra/sql"
	leaseDomain "easyrent-server/internal/lease/domain"
	"easyrent-server/internal/lease/persistence/internal"
	"easyrent-server/internal/lease/usecases"
	propertyUsecases "easyrent-server/internal/property/usecases"
	"easyrent-server/internal/shared_kernel/avro"
	shareddomain "easyrent-server/internal/shared_kernel/domain"
)

const _leasesTopic = "leases"

func NewLeaseRepository(
	publisherFactory pubsub.PublisherFactory,
	orm sql.ORM,
) (*SimpleLeaseRepository, error) {
	publisher, err := publisherFactory.New(_leasesTopic, &avro.AvroLease{})
	if err != nil {
		return nil, fmt.Errorf("creating publisher: %w", err)
	}

	err = orm.AutoMigrate(&internal.Lease{})
	if err != nil {
		return nil, fmt.Errorf("auto migrating: %w", err)
	}

	return &SimpleLeaseRepository{
		publisher: publisher,
		orm:       orm,
	}, nil
}

var (
	_ usecases.LeaseRepository    = (*SimpleLeaseRepository)(nil)
	_ propertyUsecases.LeaseIndex = (*SimpleLeaseRepository)(nil)
)

type SimpleLeaseRepository struct {
	publisher pubsub.Publisher
	orm       sql.ORM
}

func (r *SimpleLeaseRepository) Create(ctx context.Context, lease leaseDomain.Lease) error {
	entity := internal.FromLease(lease)

	err := r.orm.WithContext(ctx).Create(&entity).Error()
	if err != nil {
		return fmt.Errorf("creating lease in database: %w", err)
	}

	r.publish(ctx, lease)
	return nil
}

func (r *SimpleLeaseRepository) GetByID(ctx context.Context, id shareddomain.ID) (leaseDomain.Lease, error) {
	var entity internal.Lease
	err := r.orm.
		WithContext(ctx).
		First(&entity, "id = ?", id.String()).
		Error()

	if errors.Is(err, sql.ErrRecordNotFound) {
		return leaseDomain.Lease{}, usecases.ErrLeaseNotFound
	}

	if err != nil {
		return leaseDomain.Lease{}, fmt.Errorf("database query: %w", err)
	}

	return entity.ToDomain(), nil
}

func (r *SimpleLeaseRepository) FindAllByOwner(
	ctx context.Context,
	ownerID shareddomain.ID,
	pagination usecases.Pagination,
) ([]leaseDomain.Lease, int, error) {
	var total int64
	err := r.orm.
		WithContext(ctx).
		Model(&internal.Lease{}).
		Where("user_id = ? AND deleted_at IS NULL", ownerID.String()).
		Count(&total).
		Error()
	if err != nil {
		return nil, 0, fmt.Errorf("count query: %w", err)
	}

	var entities []internal.Lease
	err = r.orm.
		WithContext(ctx).
		Where("user_id = ? AND deleted_at IS NULL", ownerID.String()).
		Order("start_date DESC").
		Limit(pagination.Limit).
		Offset(pagination.Offset).
		Find(&entities).
		Error()
	if err != nil {
		return nil, 0, fmt.Errorf("database query: %w", err)
	}

	leases := make([]leaseDomain.Lease, len(entities))
	for i, entity := range entities {
		leases[i] = entity.ToDomain()
	}
	return leases, int(total), nil
}

// LeasedPropertyIDs lists the properties of an owner under an active lease.
func (r *SimpleLeaseRepository) LeasedPropertyIDs(ctx context.Context, ownerID shareddomain.ID) ([]shareddomain.ID, error) {
	var entities []internal.Lease
	err := r.orm.
		WithContext(ctx).
		Where("user_id = ? AND status = ? AND deleted_at IS NULL", ownerID.String(), string(leaseDomain.StatusActive)).
		Find(&entities).
		Error()
	if err != nil {
		return nil, fmt.Errorf("database query: %w", err)
	}

	ids := make([]shareddomain.ID, 0, len(entities))
	for _, entity := range entities {
		ids = append(ids, shareddomain.ID(entity.PropertyID))
	}
	return ids, nil
}

func (r *SimpleLeaseRepository) Update(ctx context.Context, lease leaseDomain.Lease) error {
	entity := internal.FromLease(lease)

	err := r.orm.WithContext(ctx).Save(&entity).Error()
	if err != nil {
		return fmt.Errorf("updating lease in database: %w", err)
	}

	r.publish(ctx, lease)
	return nil
}

func (r *SimpleLeaseRepository) Delete(ctx context.Context, id shareddomain.ID) error {
	lease, err := r.GetByID(ctx, id)
	if err != nil {
		return err
	}

	lease.SoftDelete()
	return r.Update(ctx, lease)
}

func (r *SimpleLeaseRepository) publish(ctx context.Context, lease leaseDomain.Lease) {
	err := r.publisher.Publish(ctx, pubsub.Key(lease.ID), convertToAvroLease(lease))
	if err != nil {
		slog.Error("publishing lease",
			slog.String("lease_id", lease.ID.String()),
			slog.String("error", err.Error()))
	}
}

func convertToAvroLease(lease leaseDomain.Lease) *avro.AvroLease {
	return &avro.AvroLease{
		ID:            lease.ID.String(),
		Version:       int(lease.Version),
		OwnerID:       lease.OwnerID.String(),
		TenantID:      lease.TenantID.String(),
		PropertyID:    lease.PropertyID.String(),
		StartDate:     lease.Term.Start.String(),
		EndDate:       lease.Term.End.String(),
		RentAmount:    lease.RentAmount,
		DepositAmount: lease.DepositAmount,
		PaymentDueDay: lease.PaymentDueDay,
		Status:        string(lease.Status),
		CreatedAt:     lease.CreatedAt.Time,
		UpdatedAt:     lease.UpdatedAt.Time,
	}
}
