package internal

import (
	"easyrent-server/internal/infra/sql"
	"easyrent-server/internal/infra/utils"
	onboardingDomain "easyrent-server/internal/onboarding/domain"
)

type TenantProfile struct {
	ID               string                                      `json:"id" gorm:"primaryKey"`
	TempTenantID     string                                      `json:"temp_tenant_id" gorm:"index;not null"`
	DateOfBirth      utils.Date                                  `json:"date_of_birth" gorm:"type:date"`
	Occupation       string                                      `json:"occupation"`
	EmergencyContact sql.JSON[onboardingDomain.EmergencyContact] `json:"emergency_contact" gorm:"type:text"`
	IncomeProof      sql.JSON[[]string]                          `json:"income_proof" gorm:"type:text"`
	CreatedAt        utils.Time                                  `json:"created_at"`
}

func (TenantProfile) TableName() string {
	return "tenant_profiles"
}

func FromTenantProfile(value onboardingDomain.TenantProfile) TenantProfile {
	return TenantProfile{
		ID:               value.ID.String(),
		TempTenantID:     value.InviteID.String(),
		DateOfBirth:      value.DateOfBirth,
		Occupation:       value.Occupation,
		EmergencyContact: sql.NewJSON(value.EmergencyContact),
		IncomeProof:      sql.NewJSON(value.IncomeProof),
		CreatedAt:        value.CreatedAt,
	}
}

type TenantDocuments struct {
	ID               string             `json:"id" gorm:"primaryKey"`
	TenantProfileID  string             `json:"tenant_profile_id" gorm:"index;not null"`
	IDDocument       sql.JSON[[]string] `json:"id_document" gorm:"type:text"`
	ProofOfIncome    sql.JSON[[]string] `json:"proof_of_income" gorm:"type:text"`
	ProofOfResidence sql.JSON[[]string] `json:"proof_of_residence" gorm:"type:text"`
	CreatedAt        utils.Time         `json:"created_at"`
}

func (TenantDocuments) TableName() string {
	return "tenant_documents"
}

func FromTenantDocuments(value onboardingDomain.TenantDocuments) TenantDocuments {
	return TenantDocuments{
		ID:               value.ID.String(),
		TenantProfileID:  value.ProfileID.String(),
		IDDocument:       sql.NewJSON(value.IDDocument),
		ProofOfIncome:    sql.NewJSON(value.ProofOfIncome),
		ProofOfResidence: sql.NewJSON(value.ProofOfResidence),
		CreatedAt:        value.CreatedAt,
	}
}

type Guarantor struct {
	ID               string             `json:"id" gorm:"primaryKey"`
	TenantProfileID  string             `json:"tenant_profile_id" gorm:"index;not null"`
	Name             string             `json:"name"`
	Email            string             `json:"email"`
	Phone            string             `json:"phone"`
	Occupation       string             `json:"occupation"`
	ProofOfIncome    sql.JSON[[]string] `json:"proof_of_income" gorm:"type:text"`
	ProofOfResidence sql.JSON[[]string] `json:"proof_of_residence" gorm:"type:text"`
	CreatedAt        utils.Time         `json:"created_at"`
}

func (Guarantor) TableName() string {
	return "tenant_guarantors"
}

func FromGuarantor(value onboardingDomain.Guarantor) Guarantor {
	return Guarantor{
		ID:               value.ID.String(),
		TenantProfileID:  value.ProfileID.String(),
		Name:             value.Name,
		Email:            value.Email,
		Phone:            value.Phone,
		Occupation:       value.Occupation,
		ProofOfIncome:    sql.NewJSON(value.ProofOfIncome),
		ProofOfResidence: sql.NewJSON(value.ProofOfResidence),
		CreatedAt:        value.CreatedAt,
	}
}
