package internal

import (
	"easyrent-server/internal/infra/utils"
	onboardingDomain "easyrent-server/internal/onboarding/domain"
)

type TenantResponse struct {
	ID        string     `json:"id"`
	InviteID  string     `json:"inviteId,omitempty"`
	FirstName string     `json:"firstName"`
	LastName  string     `json:"lastName"`
	Email     string     `json:"email"`
	Phone     string     `json:"phone"`
	Status    string     `json:"status"`
	CreatedAt utils.Time `json:"createdAt"`
}

func ToTenantResponses(tenants []onboardingDomain.Tenant) []TenantResponse {
	result := make([]TenantResponse, len(tenants))
	for i, tenant := range tenants {
		result[i] = TenantResponse{
			ID:        tenant.ID.String(),
			InviteID:  tenant.InviteID.String(),
			FirstName: tenant.FirstName,
			LastName:  tenant.LastName,
			Email:     tenant.Email,
			Phone:     tenant.Phone,
			Status:    tenant.Status,
			CreatedAt: tenant.CreatedAt,
		}
	}
	return result
}
