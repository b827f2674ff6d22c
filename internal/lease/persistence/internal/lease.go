package internal

import (
	"easyrent-server/internal/infra/utils"
	leaseDomain "easyrent-server/internal/lease/domain"
	shareddomain "easyrent-server/internal/shared_kernel/domain"
)

type Lease struct {
	ID            string      `json:"id" gorm:"primaryKey"`
	Version       int         `json:"version"`
	UserID        string      `json:"user_id" gorm:"index;not null"`
	TenantID      string      `json:"tenant_id" gorm:"index;not null"`
	PropertyID    string      `json:"property_id" gorm:"index;not null"`
	StartDate     utils.Date  `json:"start_date" gorm:"type:date;not null"`
	EndDate       utils.Date  `json:"end_date" gorm:"type:date;not null"`
	RentAmount    float64     `json:"rent_amount"`
	DepositAmount float64     `json:"deposit_amount"`
	PaymentDueDay int         `json:"payment_due_day"`
	Status        string      `json:"status" gorm:"index"`
	CreatedAt     utils.Time  `json:"created_at"`
	UpdatedAt     utils.Time  `json:"updated_at"`
	DeletedAt     *utils.Time `json:"deleted_at,omitempty" gorm:"index"`
}

func (Lease) TableName() string {
	return "leases"
}

func FromLease(value leaseDomain.Lease) Lease {
	return Lease{
		ID:            value.ID.String(),
		Version:       int(value.Version),
		UserID:        value.OwnerID.String(),
		TenantID:      value.TenantID.String(),
		PropertyID:    value.PropertyID.String(),
		StartDate:     value.Term.Start,
		EndDate:       value.Term.End,
		RentAmount:    value.RentAmount,
		DepositAmount: value.DepositAmount,
		PaymentDueDay: value.PaymentDueDay,
		Status:        string(value.Status),
		CreatedAt:     value.CreatedAt,
		UpdatedAt:     value.UpdatedAt,
		DeletedAt:     value.DeletedAt,
	}
}

func (m Lease) ToDomain() leaseDomain.Lease {
	return leaseDomain.Lease{
		ID:         shareddomain.ID(m.ID),
		Version:    shareddomain.Version(m.Version),
		OwnerID:    shareddomain.ID(m.UserID),
		TenantID:   shareddomain.ID(m.TenantID),
		PropertyID: shareddomain.ID(m.PropertyID),
		Term: leaseDomain.LeaseTerm{
			Start: m.StartDate,
			End:   m.EndDate,
		},
		RentAmount:    m.RentAmount,
		DepositAmount: m.DepositAmount,
		PaymentDueDay: m.PaymentDueDay,
		Status:        leaseDomain.Status(m.Status),
		CreatedAt:     m.CreatedAt,
		UpdatedAt:     m.UpdatedAt,
		DeletedAt:     m.DeletedAt,
	}
}
