package domain

import (
	"errors"
	"time"

	"easyrent-server/internal/infra/utils"
	shareddomain "easyrent-server/internal/shared_kernel/domain"
)

var (
	ErrOwnerRequired      = errors.New("owner is required")
	ErrAttributesRequired = errors.New("type specific attributes are required")
)

type Address struct {
	Street     string
	PostalCode string
	City       string
	Country    string
}

type Property struct {
	ID          shareddomain.ID
	Version     shareddomain.Version
	OwnerID     shareddomain.ID
	Type        Type
	Title       string
	Address     Address
	TotalArea   float64
	RentAmount  float64
	Description string
	Photos      []string
	Attributes  Attributes
	CreatedAt   utils.Time
	UpdatedAt   utils.Time
	DeletedAt   *utils.Time
}

func (p *Property) IsDeleted() bool {
	return p.DeletedAt != nil
}

func (p *Property) SoftDelete() {
	now := utils.Time{Time: time.Now()}
	p.DeletedAt = &now
	p.UpdatedAt = now
	p.Version++
}

// Leasable reports whether the property can be offered to a tenant.
// Land is never leased through an invite.
func (p *Property) Leasable() bool {
	return !p.IsDeleted() && p.Type != TypeLand
}

func NewPropertyBuilder() *propertyBuilder {
	return &propertyBuilder{}
}

type propertyBuilder struct {
	actions []propertyHandler
}

type propertyHandler func(v *Property) error

func (b *propertyBuilder) WithID(value shareddomain.ID) *propertyBuilder {
	b.actions = append(b.actions, func(d *Property) error {
		d.ID = value
		return nil
	})
	return b
}

func (b *propertyBuilder) WithOwnerID(value shareddomain.ID) *propertyBuilder {
	b.actions = append(b.actions, func(d *Property) error {
		d.OwnerID = value
		return nil
	})
	return b
}

func (b *propertyBuilder) WithTitle(value string) *propertyBuilder {
	b.actions = append(b.actions, func(d *Property) error {
		d.Title = value
		return nil
	})
	return b
}

func (b *propertyBuilder) WithAddress(value Address) *propertyBuilder {
	b.actions = append(b.actions, func(d *Property) error {
		d.Address = value
		return nil
	})
	return b
}

func (b *propertyBuilder) WithTotalArea(value float64) *propertyBuilder {
	b.actions = append(b.actions, func(d *Property) error {
		d.TotalArea = value
		return nil
	})
	return b
}

func (b *propertyBuilder) WithRentAmount(value float64) *propertyBuilder {
	b.actions = append(b.actions, func(d *Property) error {
		d.RentAmount = utils.RoundTo(value, 2)
		return nil
	})
	return b
}

func (b *propertyBuilder) WithDescription(value string) *propertyBuilder {
	b.actions = append(b.actions, func(d *Property) error {
		d.Description = value
		return nil
	})
	return b
}

func (b *propertyBuilder) WithPhotos(value []string) *propertyBuilder {
	b.actions = append(b.actions, func(d *Property) error {
		d.Photos = append([]string(nil), value...)
		return nil
	})
	return b
}

// WithAttributes also sets the type, which always follows the variant.
func (b *propertyBuilder) WithAttributes(value Attributes) *propertyBuilder {
	b.actions = append(b.actions, func(d *Property) error {
		if value == nil {
			return ErrAttributesRequired
		}
		d.Attributes = value
		d.Type = value.PropertyType()
		return nil
	})
	return b
}

func (b *propertyBuilder) Build() (Property, error) {
	now := utils.Time{Time: time.Now()}
	result := Property{
		ID:        shareddomain.ID(utils.GenerateUUID()),
		Version:   1,
		Photos:    []string{},
		CreatedAt: now,
		UpdatedAt: now,
	}

	for _, a := range b.actions {
		if err := a(&result); err != nil {
			return Property{}, err
		}
	}

	if result.OwnerID == "" {
		return Property{}, ErrOwnerRequired
	}
	if result.Attributes == nil {
		return Property{}, ErrAttributesRequired
	}

	return result, nil
}
