package internal

import (
	"easyrent-server/internal/infra/utils"
	onboardingDomain "easyrent-server/internal/onboarding/domain"
	shareddomain "easyrent-server/internal/shared_kernel/domain"
)

type Tenant struct {
	ID           string     `json:"id" gorm:"primaryKey"`
	UserID       string     `json:"user_id" gorm:"index;not null"`
	TempTenantID string     `json:"temp_tenant_id" gorm:"index"`
	FirstName    string     `json:"first_name"`
	LastName     string     `json:"last_name"`
	Email        string     `json:"email"`
	Phone        string     `json:"phone"`
	Status       string     `json:"status"`
	CreatedAt    utils.Time `json:"created_at"`
	UpdatedAt    utils.Time `json:"updated_at"`
}

func (Tenant) TableName() string {
	return "tenants"
}

func FromTenant(value onboardingDomain.Tenant) Tenant {
	return Tenant{
		ID:           value.ID.String(),
		UserID:       value.LandlordID.String(),
		TempTenantID: value.InviteID.String(),
		FirstName:    value.FirstName,
		LastName:     value.LastName,
		Email:        value.Email,
		Phone:        value.Phone,
		Status:       value.Status,
		CreatedAt:    value.CreatedAt,
		UpdatedAt:    value.UpdatedAt,
	}
}

func (m Tenant) ToDomain() onboardingDomain.Tenant {
	return onboardingDomain.Tenant{
		ID:         shareddomain.ID(m.ID),
		LandlordID: shareddomain.ID(m.UserID),
		InviteID:   shareddomain.ID(m.TempTenantID),
		FirstName:  m.FirstName,
		LastName:   m.LastName,
		Email:      m.Email,
		Phone:      m.Phone,
		Status:     m.Status,
		CreatedAt:  m.CreatedAt,
		UpdatedAt:  m.UpdatedAt,
	}
}
