package internal

import (
	"easyrent-server/internal/infra/utils"
	onboardingDomain "easyrent-server/internal/onboarding/domain"
)

type InviteRequest struct {
	PropertyID     string     `json:"propertyId"`
	FirstName      string     `json:"firstName"`
	LastName       string     `json:"lastName"`
	Email          string     `json:"email"`
	Phone          string     `json:"phone"`
	LeaseStartDate utils.Date `json:"leaseStartDate"`
	LeaseEndDate   utils.Date `json:"leaseEndDate"`
	RentAmount     float64    `json:"rentAmount"`
	Deposit        float64    `json:"deposit"`
}

type VerifyRequest struct {
	Email string `json:"email"`
	Token string `json:"token"`
}

type AcceptRequest struct {
	Email     string `json:"email"`
	Token     string `json:"token"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Phone     string `json:"phone"`
}

type InviteResponse struct {
	ID             string     `json:"id"`
	PropertyID     string     `json:"propertyId"`
	FirstName      string     `json:"firstName"`
	LastName       string     `json:"lastName"`
	Email          string     `json:"email"`
	Phone          string     `json:"phone"`
	LeaseStartDate utils.Date `json:"leaseStartDate"`
	LeaseEndDate   utils.Date `json:"leaseEndDate"`
	RentAmount     float64    `json:"rentAmount"`
	Deposit        float64    `json:"deposit"`
	Status         string     `json:"status"`
	EmailSent      bool       `json:"emailSent"`
	ExpiresAt      utils.Time `json:"expiresAt"`
	CreatedAt      utils.Time `json:"createdAt"`
}

// VerifiedInviteResponse is what the tenant sees before onboarding; it
// leaves out the token and landlord bookkeeping.
type VerifiedInviteResponse struct {
	ID             string     `json:"id"`
	PropertyID     string     `json:"propertyId"`
	FirstName      string     `json:"firstName"`
	LastName       string     `json:"lastName"`
	Email          string     `json:"email"`
	Phone          string     `json:"phone"`
	LeaseStartDate utils.Date `json:"leaseStartDate"`
	LeaseEndDate   utils.Date `json:"leaseEndDate"`
	RentAmount     float64    `json:"rentAmount"`
	Deposit        float64    `json:"deposit"`
	ExpiresAt      utils.Time `json:"expiresAt"`
}

type AcceptResponse struct {
	InviteID string `json:"inviteId"`
	TenantID string `json:"tenantId"`
	LeaseID  string `json:"leaseId"`
}

func ToInviteResponse(invite onboardingDomain.Invite) InviteResponse {
	return InviteResponse{
		ID:             invite.ID.String(),
		PropertyID:     invite.PropertyID.String(),
		FirstName:      invite.FirstName,
		LastName:       invite.LastName,
		Email:          invite.Email,
		Phone:          invite.Phone,
		LeaseStartDate: invite.Term.Start,
		LeaseEndDate:   invite.Term.End,
		RentAmount:     invite.RentAmount,
		Deposit:        invite.DepositAmount,
		Status:         string(invite.Status),
		EmailSent:      invite.EmailSent,
		ExpiresAt:      invite.ExpiresAt,
		CreatedAt:      invite.CreatedAt,
	}
}

func ToInviteResponses(invites []onboardingDomain.Invite) []InviteResponse {
	result := make([]InviteResponse, len(invites))
	for i, invite := range invites {
		result[i] = ToInviteResponse(invite)
	}
	return result
}

func ToVerifiedInviteResponse(invite onboardingDomain.Invite) VerifiedInviteResponse {
	return VerifiedInviteResponse{
		ID:             invite.ID.String(),
		PropertyID:     invite.PropertyID.String(),
		FirstName:      invite.FirstName,
		LastName:       invite.LastName,
		Email:          invite.Email,
		Phone:          invite.Phone,
		LeaseStartDate: invite.Term.Start,
		LeaseEndDate:   invite.Term.End,
		RentAmount:     invite.RentAmount,
		Deposit:        invite.DepositAmount,
		ExpiresAt:      invite.ExpiresAt,
	}
}
