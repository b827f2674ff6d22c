package usecases

import (
	"strings"
	"time"

	"easyrent-server/internal/infra/utils"
	onboardingDomain "easyrent-server/internal/onboarding/domain"
	shareddomain "easyrent-server/internal/shared_kernel/domain"
	"easyrent-server/internal/submission"
	"easyrent-server/internal/wizard"
)

// ProfileFromDraft reads the personal and financial sections. File arrays
// are resolved against the uploads of the running submission.
func ProfileFromDraft(draft wizard.Draft, inviteID shareddomain.ID, state *submission.State) (onboardingDomain.TenantProfile, error) {
	dateOfBirth, ok := wizard.ParseDateValue(valueAt(draft, "personal_info.date_of_birth"))
	if !ok {
		return onboardingDomain.TenantProfile{}, &wizard.ValidationError{Section: "personal_info", Issues: wizard.Issues{{
			Path:    "personal_info.date_of_birth",
			Code:    wizard.CodeInvalidDate,
			Message: "must be a valid date",
		}}}
	}

	return onboardingDomain.TenantProfile{
		ID:          shareddomain.ID(utils.GenerateUUID()),
		InviteID:    inviteID,
		DateOfBirth: dateOfBirth,
		Occupation:  text(draft, "personal_info.occupation"),
		EmergencyContact: onboardingDomain.EmergencyContact{
			Name:  text(draft, "personal_info.emergency_contact.name"),
			Phone: text(draft, "personal_info.emergency_contact.phone"),
			Email: strings.ToLower(text(draft, "personal_info.emergency_contact.email")),
		},
		IncomeProof: resolve(draft, "financial_info.income_proof", state),
		CreatedAt:   utils.Time{Time: time.Now()},
	}, nil
}

func DocumentsFromDraft(draft wizard.Draft, profileID shareddomain.ID, state *submission.State) onboardingDomain.TenantDocuments {
	return onboardingDomain.TenantDocuments{
		ID:               shareddomain.ID(utils.GenerateUUID()),
		ProfileID:        profileID,
		IDDocument:       resolve(draft, "documents.id_document", state),
		ProofOfIncome:    resolve(draft, "documents.proof_of_income", state),
		ProofOfResidence: resolve(draft, "documents.proof_of_residence", state),
		CreatedAt:        utils.Time{Time: time.Now()},
	}
}

// HasGuarantor reports whether the tenant filled in the optional guarantor
// section at all.
func HasGuarantor(draft wizard.Draft) bool {
	return len(draft.Section("guarantor")) > 0
}

func GuarantorFromDraft(draft wizard.Draft, profileID shareddomain.ID, state *submission.State) onboardingDomain.Guarantor {
	return onboardingDomain.Guarantor{
		ID:               shareddomain.ID(utils.GenerateUUID()),
		ProfileID:        profileID,
		Name:             text(draft, "guarantor.name"),
		Email:            strings.ToLower(text(draft, "guarantor.email")),
		Phone:            text(draft, "guarantor.phone"),
		Occupation:       text(draft, "guarantor.occupation"),
		ProofOfIncome:    resolve(draft, "guarantor.documents.proof_of_income", state),
		ProofOfResidence: resolve(draft, "guarantor.documents.proof_of_residence", state),
		CreatedAt:        utils.Time{Time: time.Now()},
	}
}

func text(draft wizard.Draft, path string) string {
	return strings.TrimSpace(draft.String(path))
}

func valueAt(draft wizard.Draft, path string) any {
	value, _ := draft.Get(path)
	return value
}

func resolve(draft wizard.Draft, path string, state *submission.State) []string {
	if state == nil {
		state = &submission.State{}
	}
	return submission.ResolveFiles(draft, path, state)
}
