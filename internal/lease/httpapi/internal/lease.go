package internal

import (
	"easyrent-server/internal/infra/utils"
	leaseDomain "easyrent-server/internal/lease/domain"
)

type LeaseRequest struct {
	TenantID      string     `json:"tenant_id"`
	PropertyID    string     `json:"property_id"`
	StartDate     utils.Date `json:"start_date"`
	EndDate       utils.Date `json:"end_date"`
	RentAmount    float64    `json:"rent_amount"`
	DepositAmount float64    `json:"deposit_amount"`
	PaymentDueDay int        `json:"payment_due_day"`
	Status        string     `json:"status"`
}

type LeaseResponse struct {
	ID            string     `json:"id"`
	Version       int        `json:"version"`
	TenantID      string     `json:"tenant_id"`
	PropertyID    string     `json:"property_id"`
	StartDate     utils.Date `json:"start_date"`
	EndDate       utils.Date `json:"end_date"`
	RentAmount    float64    `json:"rent_amount"`
	DepositAmount float64    `json:"deposit_amount"`
	PaymentDueDay int        `json:"payment_due_day"`
	Status        string     `json:"status"`
	CreatedAt     utils.Time `json:"created_at"`
	UpdatedAt     utils.Time `json:"updated_at"`
}

func ToLeaseResponse(lease leaseDomain.Lease) LeaseResponse {
	return LeaseResponse{
		ID:            lease.ID.String(),
		Version:       int(lease.Version),
		TenantID:      lease.TenantID.String(),
		PropertyID:    lease.PropertyID.String(),
		StartDate:     lease.Term.Start,
		EndDate:       lease.Term.End,
		RentAmount:    lease.RentAmount,
		DepositAmount: lease.DepositAmount,
		PaymentDueDay: lease.PaymentDueDay,
		Status:        string(lease.Status),
		CreatedAt:     lease.CreatedAt,
		UpdatedAt:     lease.UpdatedAt,
	}
}

func ToLeaseResponses(leases []leaseDomain.Lease) []LeaseResponse {
	result := make([]LeaseResponse, len(leases))
	for i, lease := range leases {
		result[i] = ToLeaseResponse(lease)
	}
	return result
}
