package domain

import (
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"easyrent-server/internal/infra/utils"
	shareddomain "easyrent-server/internal/shared_kernel/domain"
)

const (
	MaxCost              = 1_000_000
	MaxDescriptionLength = 1000
)

type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
	PriorityUrgent Priority = "urgent"
)

func ParsePriority(value string) (Priority, error) {
	switch p := Priority(value); p {
	case PriorityLow, PriorityMedium, PriorityHigh, PriorityUrgent:
		return p, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidPriority, value)
	}
}

type Status string

const (
	StatusOpen       Status = "open"
	StatusInProgress Status = "in_progress"
	StatusCompleted  Status = "completed"
	StatusCancelled  Status = "cancelled"
)

func ParseStatus(value string) (Status, error) {
	switch s := Status(value); s {
	case StatusOpen, StatusInProgress, StatusCompleted, StatusCancelled:
		return s, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidStatus, value)
	}
}

// IsClosed reports whether no more work is expected on a request.
func (s Status) IsClosed() bool {
	return s == StatusCompleted || s == StatusCancelled
}

type Request struct {
	ID             shareddomain.ID
	Version        shareddomain.Version
	OwnerID        shareddomain.ID
	PropertyID     shareddomain.ID
	Description    string
	Priority       Priority
	Status         Status
	AssignedTo     string
	EstimatedCost  *float64
	ActualCost     *float64
	CompletionDate *utils.Time
	CreatedAt      utils.Time
	UpdatedAt      utils.Time
	DeletedAt      *utils.Time
}

func (r *Request) IsDeleted() bool {
	return r.DeletedAt != nil
}

func (r *Request) SoftDelete() {
	now := utils.Time{Time: time.Now()}
	r.DeletedAt = &now
	r.UpdatedAt = now
	r.Version++
}

// Complete closes the request and stamps the completion date. A nil cost
// keeps whatever actual cost was recorded before.
func (r *Request) Complete(actualCost *float64, now time.Time) error {
	if r.Status.IsClosed() {
		return ErrInvalidTransition
	}
	if actualCost != nil {
		if !validCost(*actualCost) {
			return ErrInvalidCost
		}
		rounded := utils.RoundTo(*actualCost, 2)
		r.ActualCost = &rounded
	}

	completed := utils.Time{Time: now}
	r.CompletionDate = &completed
	r.Status = StatusCompleted
	r.UpdatedAt = completed
	r.Version++
	return nil
}

// Validate checks the invariants every stored request keeps.
func (r Request) Validate() error {
	if r.OwnerID == "" {
		return ErrOwnerRequired
	}
	if r.PropertyID == "" {
		return ErrPropertyRequired
	}
	if strings.TrimSpace(r.Description) == "" {
		return ErrDescriptionRequired
	}
	if utf8.RuneCountInString(r.Description) > MaxDescriptionLength {
		return ErrDescriptionTooLong
	}
	if _, err := ParsePriority(string(r.Priority)); err != nil {
		return err
	}
	if _, err := ParseStatus(string(r.Status)); err != nil {
		return err
	}
	if r.EstimatedCost != nil && !validCost(*r.EstimatedCost) {
		return ErrInvalidCost
	}
	if r.ActualCost != nil && !validCost(*r.ActualCost) {
		return ErrInvalidCost
	}
	return nil
}

func validCost(v float64) bool {
	return v >= 0 && v <= MaxCost
}

func roundedCost(v *float64) *float64 {
	if v == nil {
		return nil
	}
	rounded := utils.RoundTo(*v, 2)
	return &rounded
}

func NewRequestBuilder() *requestBuilder {
	return &requestBuilder{}
}

type requestBuilder struct {
	actions []requestHandler
}

type requestHandler func(v *Request) error

func (b *requestBuilder) WithID(value shareddomain.ID) *requestBuilder {
	b.actions = append(b.actions, func(d *Request) error {
		d.ID = value
		return nil
	})
	return b
}

func (b *requestBuilder) WithOwnerID(value shareddomain.ID) *requestBuilder {
	b.actions = append(b.actions, func(d *Request) error {
		d.OwnerID = value
		return nil
	})
	return b
}

func (b *requestBuilder) WithPropertyID(value shareddomain.ID) *requestBuilder {
	b.actions = append(b.actions, func(d *Request) error {
		d.PropertyID = value
		return nil
	})
	return b
}

func (b *requestBuilder) WithDescription(value string) *requestBuilder {
	b.actions = append(b.actions, func(d *Request) error {
		d.Description = strings.TrimSpace(value)
		return nil
	})
	return b
}

func (b *requestBuilder) WithPriority(value string) *requestBuilder {
	b.actions = append(b.actions, func(d *Request) error {
		priority, err := ParsePriority(value)
		if err != nil {
			return err
		}
		d.Priority = priority
		return nil
	})
	return b
}

func (b *requestBuilder) WithStatus(value string) *requestBuilder {
	b.actions = append(b.actions, func(d *Request) error {
		status, err := ParseStatus(value)
		if err != nil {
			return err
		}
		d.Status = status
		return nil
	})
	return b
}

func (b *requestBuilder) WithAssignedTo(value string) *requestBuilder {
	b.actions = append(b.actions, func(d *Request) error {
		d.AssignedTo = strings.TrimSpace(value)
		return nil
	})
	return b
}

func (b *requestBuilder) WithEstimatedCost(value *float64) *requestBuilder {
	b.actions = append(b.actions, func(d *Request) error {
		d.EstimatedCost = roundedCost(value)
		return nil
	})
	return b
}

func (b *requestBuilder) WithActualCost(value *float64) *requestBuilder {
	b.actions = append(b.actions, func(d *Request) error {
		d.ActualCost = roundedCost(value)
		return nil
	})
	return b
}

func (b *requestBuilder) Build() (Request, error) {
	now := utils.Time{Time: time.Now()}
	result := Request{
		ID:        shareddomain.ID(utils.GenerateUUID()),
		Version:   1,
		Priority:  PriorityMedium,
		Status:    StatusOpen,
		CreatedAt: now,
		UpdatedAt: now,
	}

	for _, a := range b.actions {
		if err := a(&result); err != nil {
			return Request{}, err
		}
	}

	// a request built straight into completed still gets its date
	if result.Status == StatusCompleted && result.CompletionDate == nil {
		result.CompletionDate = &now
	}

	if err := result.Validate(); err != nil {
		return Request{}, err
	}

	return result, nil
}
