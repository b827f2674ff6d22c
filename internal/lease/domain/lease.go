package domain

import (
	"errors"
	"fmt"
	"time"

	"easyrent-server/internal/infra/utils"
	shareddomain "easyrent-server/internal/shared_kernel/domain"
)

const (
	MaxAmount            = 1_000_000
	DefaultPaymentDueDay = 1
)

var (
	ErrOwnerRequired        = errors.New("owner is required")
	ErrTenantRequired       = errors.New("tenant is required")
	ErrPropertyRequired     = errors.New("property is required")
	ErrInvalidAmount        = errors.New("amount must be between 0 and 1000000")
	ErrInvalidPaymentDueDay = errors.New("payment due day must be between 1 and 31")
	ErrInvalidStatus        = errors.New("invalid lease status")
	ErrInvalidTransition    = errors.New("lease status cannot change this way")
)

type Status string

const (
	StatusDraft      Status = "draft"
	StatusActive     Status = "active"
	StatusTerminated Status = "terminated"
	StatusExpired    Status = "expired"
)

func ParseStatus(value string) (Status, error) {
	switch s := Status(value); s {
	case StatusDraft, StatusActive, StatusTerminated, StatusExpired:
		return s, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidStatus, value)
	}
}

type Lease struct {
	ID            shareddomain.ID
	Version       shareddomain.Version
	OwnerID       shareddomain.ID
	TenantID      shareddomain.ID
	PropertyID    shareddomain.ID
	Term          LeaseTerm
	RentAmount    float64
	DepositAmount float64
	PaymentDueDay int
	Status        Status
	CreatedAt     utils.Time
	UpdatedAt     utils.Time
	DeletedAt     *utils.Time
}

func (l *Lease) IsDeleted() bool {
	return l.DeletedAt != nil
}

func (l *Lease) IsActive() bool {
	return !l.IsDeleted() && l.Status == StatusActive
}

func (l *Lease) SoftDelete() {
	now := utils.Time{Time: time.Now()}
	l.DeletedAt = &now
	l.UpdatedAt = now
	l.Version++
}

// Terminate ends an active or draft lease early.
func (l *Lease) Terminate() error {
	if l.Status != StatusActive && l.Status != StatusDraft {
		return ErrInvalidTransition
	}
	l.touch(StatusTerminated)
	return nil
}

// Expire closes an active lease whose term is over.
func (l *Lease) Expire(today utils.Date) bool {
	if l.Status != StatusActive || !today.After(l.Term.End.Time) {
		return false
	}
	l.touch(StatusExpired)
	return true
}

func (l *Lease) touch(status Status) {
	l.Status = status
	l.UpdatedAt = utils.Time{Time: time.Now()}
	l.Version++
}

// Validate checks the invariants every stored lease keeps.
func (l Lease) Validate() error {
	if l.OwnerID == "" {
		return ErrOwnerRequired
	}
	if l.TenantID == "" {
		return ErrTenantRequired
	}
	if l.PropertyID == "" {
		return ErrPropertyRequired
	}
	if err := l.Term.Validate(); err != nil {
		return err
	}
	if !validAmount(l.RentAmount) || !validAmount(l.DepositAmount) {
		return ErrInvalidAmount
	}
	if l.PaymentDueDay < 1 || l.PaymentDueDay > 31 {
		return ErrInvalidPaymentDueDay
	}
	if _, err := ParseStatus(string(l.Status)); err != nil {
		return err
	}
	return nil
}

func validAmount(v float64) bool {
	return v >= 0 && v <= MaxAmount
}

func NewLeaseBuilder() *leaseBuilder {
	return &leaseBuilder{}
}

type leaseBuilder struct {
	actions []leaseHandler
}

type leaseHandler func(v *Lease) error

func (b *leaseBuilder) WithID(value shareddomain.ID) *leaseBuilder {
	b.actions = append(b.actions, func(d *Lease) error {
		d.ID = value
		return nil
	})
	return b
}

func (b *leaseBuilder) WithOwnerID(value shareddomain.ID) *leaseBuilder {
	b.actions = append(b.actions, func(d *Lease) error {
		d.OwnerID = value
		return nil
	})
	return b
}

func (b *leaseBuilder) WithTenantID(value shareddomain.ID) *leaseBuilder {
	b.actions = append(b.actions, func(d *Lease) error {
		d.TenantID = value
		return nil
	})
	return b
}

func (b *leaseBuilder) WithPropertyID(value shareddomain.ID) *leaseBuilder {
	b.actions = append(b.actions, func(d *Lease) error {
		d.PropertyID = value
		return nil
	})
	return b
}

func (b *leaseBuilder) WithTerm(value LeaseTerm) *leaseBuilder {
	b.actions = append(b.actions, func(d *Lease) error {
		d.Term = value
		return nil
	})
	return b
}

func (b *leaseBuilder) WithRentAmount(value float64) *leaseBuilder {
	b.actions = append(b.actions, func(d *Lease) error {
		d.RentAmount = utils.RoundTo(value, 2)
		return nil
	})
	return b
}

func (b *leaseBuilder) WithDepositAmount(value float64) *leaseBuilder {
	b.actions = append(b.actions, func(d *Lease) error {
		d.DepositAmount = utils.RoundTo(value, 2)
		return nil
	})
	return b
}

func (b *leaseBuilder) WithPaymentDueDay(value int) *leaseBuilder {
	b.actions = append(b.actions, func(d *Lease) error {
		d.PaymentDueDay = value
		return nil
	})
	return b
}

func (b *leaseBuilder) WithStatus(value string) *leaseBuilder {
	b.actions = append(b.actions, func(d *Lease) error {
		status, err := ParseStatus(value)
		if err != nil {
			return err
		}
		d.Status = status
		return nil
	})
	return b
}

func (b *leaseBuilder) Build() (Lease, error) {
	now := utils.Time{Time: time.Now()}
	result := Lease{
		ID:            shareddomain.ID(utils.GenerateUUID()),
		Version:       1,
		PaymentDueDay: DefaultPaymentDueDay,
		Status:        StatusDraft,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	for _, a := range b.actions {
		if err := a(&result); err != nil {
			return Lease{}, err
		}
	}

	if err := result.Validate(); err != nil {
		return Lease{}, err
	}

	return result, nil
}
