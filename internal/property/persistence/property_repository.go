package persistence

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"easyrent-server/internal/infra/pubsub"
	"easyrent-server/internal/infra/sql"
	propertyDomain "easyrent-server/internal/property/domain"
	"easyrent-server/internal/property/persistence/internal"
	"easyrent-server/internal/property/usecases"
	"easyrent-server/internal/shared_kernel/avro"
	shareddomain "easyrent-server/internal/shared_kernel/domain"
)

const _propertiesTopic = "properties"

func NewPropertyRepository(
	publisherFactory pubsub.PublisherFactory,
	orm sql.ORM,
) (*SimplePropertyRepository, error) {
	publisher, err := publisherFactory.New(_propertiesTopic, &avro.AvroProperty{})
	if err != nil {
		return nil, fmt.Errorf("creating publisher: %w", err)
	}

	err = orm.AutoMigrate(&internal.Property{})
	if err != nil {
		return nil, fmt.Errorf("auto migrating: %w", err)
	}

	return &SimplePropertyRepository{
		publisher: publisher,
		orm:       orm,
	}, nil
}

var _ usecases.PropertyRepository = (*SimplePropertyRepository)(nil)

type SimplePropertyRepository struct {
	publisher pubsub.Publisher
	orm       sql.ORM
}

func (r *SimplePropertyRepository) Create(ctx context.Context, property propertyDomain.Property) error {
	entity := internal.FromProperty(property)

	err := r.orm.WithContext(ctx).Create(&entity).Error()
	if err != nil {
		return fmt.Errorf("creating property in database: %w", err)
	}

	r.publish(ctx, property)
	return nil
}

func (r *SimplePropertyRepository) GetByID(ctx context.Context, id shareddomain.ID) (propertyDomain.Property, error) {
	var entity internal.Property
	err := r.orm.
		WithContext(ctx).
		First(&entity, "id = ?", id.String()).
		Error()

	if errors.Is(err, sql.ErrRecordNotFound) {
		return propertyDomain.Property{}, usecases.ErrPropertyNotFound
	}

	if err != nil {
		return propertyDomain.Property{}, fmt.Errorf("database query: %w", err)
	}

	return entity.ToDomain()
}

func (r *SimplePropertyRepository) FindAllByOwner(
	ctx context.Context,
	ownerID shareddomain.ID,
	pagination usecases.Pagination,
) ([]propertyDomain.Property, int, error) {
	var total int64
	err := r.orm.
		WithContext(ctx).
		Model(&internal.Property{}).
		Where("user_id = ? AND deleted_at IS NULL", ownerID.String()).
		Count(&total).
		Error()
	if err != nil {
		return nil, 0, fmt.Errorf("count query: %w", err)
	}

	var entities []internal.Property
	err = r.orm.
		WithContext(ctx).
		Where("user_id = ? AND deleted_at IS NULL", ownerID.String()).
		Order("created_at DESC").
		Limit(pagination.Limit).
		Offset(pagination.Offset).
		Find(&entities).
		Error()
	if err != nil {
		return nil, 0, fmt.Errorf("database query: %w", err)
	}

	result, err := toDomain(entities)
	if err != nil {
		return nil, 0, err
	}
	return result, int(total), nil
}

func (r *SimplePropertyRepository) FindAllLeasableByOwner(ctx context.Context, ownerID shareddomain.ID) ([]propertyDomain.Property, error) {
	var entities []internal.Property
	err := r.orm.
		WithContext(ctx).
		Where("user_id = ? AND deleted_at IS NULL AND property_type <> ?", ownerID.String(), string(propertyDomain.TypeLand)).
		Order("title ASC").
		Find(&entities).
		Error()
	if err != nil {
		return nil, fmt.Errorf("database query: %w", err)
	}

	return toDomain(entities)
}

func (r *SimplePropertyRepository) Update(ctx context.Context, property propertyDomain.Property) error {
	entity := internal.FromProperty(property)

	err := r.orm.WithContext(ctx).Save(&entity).Error()
	if err != nil {
		return fmt.Errorf("updating property in database: %w", err)
	}

	r.publish(ctx, property)
	return nil
}

func (r *SimplePropertyRepository) Delete(ctx context.Context, id shareddomain.ID) error {
	property, err := r.GetByID(ctx, id)
	if err != nil {
		return err
	}

	property.SoftDelete()
	return r.Update(ctx, property)
}

// publish only logs failures; the row is already written.
func (r *SimplePropertyRepository) publish(ctx context.Context, property propertyDomain.Property) {
	err := r.publisher.Publish(ctx, pubsub.Key(property.ID), convertToAvroProperty(property))
	if err != nil {
		slog.Error("publishing property",
			slog.String("property_id", property.ID.String()),
			slog.String("error", err.Error()))
	}
}

func toDomain(entities []internal.Property) ([]propertyDomain.Property, error) {
	result := make([]propertyDomain.Property, 0, len(entities))
	for _, entity := range entities {
		property, err := entity.ToDomain()
		if err != nil {
			return nil, fmt.Errorf("reading property %s: %w", entity.ID, err)
		}
		result = append(result, property)
	}
	return result, nil
}

func convertToAvroProperty(property propertyDomain.Property) *avro.AvroProperty {
	message := &avro.AvroProperty{
		ID:           property.ID.String(),
		Version:      int(property.Version),
		OwnerID:      property.OwnerID.String(),
		PropertyType: string(property.Type),
		Title:        property.Title,
		City:         property.Address.City,
		Country:      property.Address.Country,
		TotalArea:    property.TotalArea,
		RentAmount:   property.RentAmount,
		PhotoCount:   len(property.Photos),
		CreatedAt:    property.CreatedAt.Time,
		UpdatedAt:    property.UpdatedAt.Time,
	}
	if property.DeletedAt != nil {
		deletedAt := property.DeletedAt.Time
		message.DeletedAt = &deletedAt
	}
	return message
}
