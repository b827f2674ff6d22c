package domain

import (
	"strings"
	"time"
	"unicode/utf8"

	"easyrent-server/internal/infra/utils"
	leaseDomain "easyrent-server/internal/lease/domain"
	shareddomain "easyrent-server/internal/shared_kernel/domain"
)

const (
	InviteTTL = 7 * 24 * time.Hour
	MaxAmount = 1_000_000
)

type InviteStatus string

const (
	InvitePending   InviteStatus = "pending"
	InviteCompleted InviteStatus = "completed"
	InviteExpired   InviteStatus = "expired"
)

// Invite is a tenant invitation sent by a landlord for one property. The
// token in the emailed link is what lets the tenant in.
type Invite struct {
	ID            shareddomain.ID
	LandlordID    shareddomain.ID
	LandlordEmail string
	LandlordName  string
	PropertyID    shareddomain.ID
	Email         string
	FirstName     string
	LastName      string
	Phone         string
	Term          leaseDomain.LeaseTerm
	RentAmount    float64
	DepositAmount float64
	Status        InviteStatus
	Token         string
	ExpiresAt     utils.Time
	EmailSent     bool
	CreatedAt     utils.Time
	UpdatedAt     utils.Time
}

func (i *Invite) FullName() string {
	return strings.TrimSpace(i.FirstName + " " + i.LastName)
}

func (i *Invite) IsExpiredAt(now time.Time) bool {
	return !now.Before(i.ExpiresAt.Time)
}

// Complete marks a pending invite as used.
func (i *Invite) Complete() error {
	if i.Status != InvitePending {
		return ErrInviteNotPending
	}
	i.Status = InviteCompleted
	i.UpdatedAt = utils.Time{Time: time.Now()}
	return nil
}

// Expire closes a pending invite past its expiry and reports whether it
// changed.
func (i *Invite) Expire(now time.Time) bool {
	if i.Status != InvitePending || !i.IsExpiredAt(now) {
		return false
	}
	i.Status = InviteExpired
	i.UpdatedAt = utils.Time{Time: now}
	return true
}

func NewInviteBuilder() *inviteBuilder {
	return &inviteBuilder{}
}

type inviteBuilder struct {
	actions []inviteHandler
	now     time.Time
	today   utils.Date
}

type inviteHandler func(v *Invite) error

func (b *inviteBuilder) WithLandlord(principal shareddomain.Principal) *inviteBuilder {
	b.actions = append(b.actions, func(d *Invite) error {
		d.LandlordID = principal.UserID
		d.LandlordEmail = principal.Email
		d.LandlordName = principal.Name
		return nil
	})
	return b
}

func (b *inviteBuilder) WithPropertyID(value shareddomain.ID) *inviteBuilder {
	b.actions = append(b.actions, func(d *Invite) error {
		d.PropertyID = value
		return nil
	})
	return b
}

func (b *inviteBuilder) WithTenant(firstName, lastName, email, phone string) *inviteBuilder {
	b.actions = append(b.actions, func(d *Invite) error {
		d.FirstName = strings.TrimSpace(firstName)
		d.LastName = strings.TrimSpace(lastName)
		d.Email = strings.ToLower(strings.TrimSpace(email))
		d.Phone = strings.TrimSpace(phone)
		return nil
	})
	return b
}

func (b *inviteBuilder) WithTerm(value leaseDomain.LeaseTerm) *inviteBuilder {
	b.actions = append(b.actions, func(d *Invite) error {
		d.Term = value
		return nil
	})
	return b
}

func (b *inviteBuilder) WithRentAmount(value float64) *inviteBuilder {
	b.actions = append(b.actions, func(d *Invite) error {
		d.RentAmount = utils.RoundTo(value, 2)
		return nil
	})
	return b
}

func (b *inviteBuilder) WithDepositAmount(value float64) *inviteBuilder {
	b.actions = append(b.actions, func(d *Invite) error {
		d.DepositAmount = utils.RoundTo(value, 2)
		return nil
	})
	return b
}

// WithClock fixes the creation instant and the calendar day lease dates
// are checked against.
func (b *inviteBuilder) WithClock(now time.Time, today utils.Date) *inviteBuilder {
	b.now = now
	b.today = today
	return b
}

func (b *inviteBuilder) Build() (Invite, error) {
	now := b.now
	if now.IsZero() {
		now = time.Now()
	}
	today := b.today
	if today.IsZero() {
		today = utils.Today(time.UTC)
	}

	result := Invite{
		ID:        shareddomain.ID(utils.GenerateUUID()),
		Status:    InvitePending,
		Token:     utils.GenerateUUID(),
		ExpiresAt: utils.Time{Time: now.Add(InviteTTL)},
		CreatedAt: utils.Time{Time: now},
		UpdatedAt: utils.Time{Time: now},
	}

	for _, a := range b.actions {
		if err := a(&result); err != nil {
			return Invite{}, err
		}
	}

	if err := result.validate(today); err != nil {
		return Invite{}, err
	}

	return result, nil
}

func (i Invite) validate(today utils.Date) error {
	if i.LandlordID == "" {
		return ErrLandlordRequired
	}
	if i.PropertyID == "" {
		return fieldError("propertyId", ErrPropertyRequired)
	}
	if !validName(i.FirstName) {
		return fieldError("firstName", ErrInvalidName)
	}
	if !validName(i.LastName) {
		return fieldError("lastName", ErrInvalidName)
	}
	if !utils.IsValidEmail(i.Email) {
		return fieldError("email", ErrInvalidEmail)
	}
	if !utils.IsValidPhone(i.Phone) {
		return fieldError("phone", ErrInvalidPhone)
	}
	if i.RentAmount < 0 || i.RentAmount > MaxAmount {
		return fieldError("rentAmount", ErrInvalidAmount)
	}
	if i.DepositAmount < 0 || i.DepositAmount > MaxAmount {
		return fieldError("deposit", ErrInvalidAmount)
	}
	if !i.Term.Start.IsZero() && i.Term.Start.Before(today.Time) {
		return fieldError("leaseStartDate", ErrDateInPast)
	}
	if !i.Term.End.IsZero() && i.Term.End.Before(today.Time) {
		return fieldError("leaseEndDate", ErrDateInPast)
	}
	if err := i.Term.Validate(); err != nil {
		return fieldError("leaseEndDate", err)
	}
	return nil
}

func validName(name string) bool {
	n := utf8.RuneCountInString(name)
	return n >= 2 && n <= 50
}
