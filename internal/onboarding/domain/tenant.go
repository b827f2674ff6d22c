package domain

import (
	"time"

	"easyrent-server/internal/infra/utils"
	shareddomain "easyrent-server/internal/shared_kernel/domain"
)

const TenantActive = "active"

// Tenant is a landlord's tenant, created when an invite is accepted.
type Tenant struct {
	ID         shareddomain.ID
	LandlordID shareddomain.ID
	InviteID   shareddomain.ID
	FirstName  string
	LastName   string
	Email      string
	Phone      string
	Status     string
	CreatedAt  utils.Time
	UpdatedAt  utils.Time
}

// NewTenantFromInvite takes the identity the landlord entered, overridden
// by whatever the tenant corrected when accepting.
func NewTenantFromInvite(invite Invite, firstName, lastName, phone string) (Tenant, error) {
	if firstName == "" {
		firstName = invite.FirstName
	}
	if lastName == "" {
		lastName = invite.LastName
	}
	if phone == "" {
		phone = invite.Phone
	}

	if !validName(firstName) {
		return Tenant{}, fieldError("firstName", ErrInvalidName)
	}
	if !validName(lastName) {
		return Tenant{}, fieldError("lastName", ErrInvalidName)
	}
	if !utils.IsValidPhone(phone) {
		return Tenant{}, fieldError("phone", ErrInvalidPhone)
	}

	now := utils.Time{Time: time.Now()}
	return Tenant{
		ID:         shareddomain.ID(utils.GenerateUUID()),
		LandlordID: invite.LandlordID,
		InviteID:   invite.ID,
		FirstName:  firstName,
		LastName:   lastName,
		Email:      invite.Email,
		Phone:      phone,
		Status:     TenantActive,
		CreatedAt:  now,
		UpdatedAt:  now,
	}, nil
}
