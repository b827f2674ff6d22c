package domain

import (
	"easyrent-server/internal/infra/utils"
	shareddomain "easyrent-server/internal/shared_kernel/domain"
)

type EmergencyContact struct {
	Name  string `json:"name"`
	Phone string `json:"phone"`
	Email string `json:"email"`
}

// TenantProfile is what a tenant fills in through the onboarding wizard.
type TenantProfile struct {
	ID               shareddomain.ID
	InviteID         shareddomain.ID
	DateOfBirth      utils.Date
	Occupation       string
	EmergencyContact EmergencyContact
	IncomeProof      []string
	CreatedAt        utils.Time
}

type TenantDocuments struct {
	ID               shareddomain.ID
	ProfileID        shareddomain.ID
	IDDocument       []string
	ProofOfIncome    []string
	ProofOfResidence []string
	CreatedAt        utils.Time
}

type Guarantor struct {
	ID               shareddomain.ID
	ProfileID        shareddomain.ID
	Name             string
	Email            string
	Phone            string
	Occupation       string
	ProofOfIncome    []string
	ProofOfResidence []string
	CreatedAt        utils.Time
}
