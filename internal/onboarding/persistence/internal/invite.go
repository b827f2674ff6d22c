package internal

import (
	"easyrent-server/internal/infra/utils"
	leaseDomain "easyrent-server/internal/lease/domain"
	onboardingDomain "easyrent-server/internal/onboarding/domain"
	shareddomain "easyrent-server/internal/shared_kernel/domain"
)

// Invite is stored as a temporary tenant until onboarding completes.
type Invite struct {
	ID             string     `json:"id" gorm:"primaryKey"`
	UserID         string     `json:"user_id" gorm:"index;not null"`
	LandlordEmail  string     `json:"landlord_email"`
	LandlordName   string     `json:"landlord_name"`
	PropertyID     string     `json:"property_id" gorm:"index;not null"`
	Email          string     `json:"email" gorm:"index;not null"`
	FirstName      string     `json:"first_name"`
	LastName       string     `json:"last_name"`
	Phone          string     `json:"phone"`
	LeaseStartDate utils.Date `json:"lease_start_date" gorm:"type:date;not null"`
	LeaseEndDate   utils.Date `json:"lease_end_date" gorm:"type:date;not null"`
	RentAmount     float64    `json:"rent_amount"`
	Deposit        float64    `json:"deposit"`
	Status         string     `json:"status" gorm:"index"`
	InviteToken    string     `json:"invite_token" gorm:"uniqueIndex;not null"`
	ExpiresAt      utils.Time `json:"expires_at" gorm:"index"`
	EmailSent      bool       `json:"email_sent"`
	CreatedAt      utils.Time `json:"created_at"`
	UpdatedAt      utils.Time `json:"updated_at"`
}

func (Invite) TableName() string {
	return "temp_tenants"
}

func FromInvite(value onboardingDomain.Invite) Invite {
	return Invite{
		ID:             value.ID.String(),
		UserID:         value.LandlordID.String(),
		LandlordEmail:  value.LandlordEmail,
		LandlordName:   value.LandlordName,
		PropertyID:     value.PropertyID.String(),
		Email:          value.Email,
		FirstName:      value.FirstName,
		LastName:       value.LastName,
		Phone:          value.Phone,
		LeaseStartDate: value.Term.Start,
		LeaseEndDate:   value.Term.End,
		RentAmount:     value.RentAmount,
		Deposit:        value.DepositAmount,
		Status:         string(value.Status),
		InviteToken:    value.Token,
		ExpiresAt:      value.ExpiresAt,
		EmailSent:      value.EmailSent,
		CreatedAt:      value.CreatedAt,
		UpdatedAt:      value.UpdatedAt,
	}
}

func (m Invite) ToDomain() onboardingDomain.Invite {
	return onboardingDomain.Invite{
		ID:            shareddomain.ID(m.ID),
		LandlordID:    shareddomain.ID(m.UserID),
		LandlordEmail: m.LandlordEmail,
		LandlordName:  m.LandlordName,
		PropertyID:    shareddomain.ID(m.PropertyID),
		Email:         m.Email,
		FirstName:     m.FirstName,
		LastName:      m.LastName,
		Phone:         m.Phone,
		Term: leaseDomain.LeaseTerm{
			Start: m.LeaseStartDate,
			End:   m.LeaseEndDate,
		},
		RentAmount:    m.RentAmount,
		DepositAmount: m.Deposit,
		Status:        onboardingDomain.InviteStatus(m.Status),
		Token:         m.InviteToken,
		ExpiresAt:     m.ExpiresAt,
		EmailSent:     m.EmailSent,
		CreatedAt:     m.CreatedAt,
		UpdatedAt:     m.UpdatedAt,
	}
}
