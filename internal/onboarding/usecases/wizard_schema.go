package usecases

import (
	"easyrent-server/internal/submission"
	"easyrent-server/internal/wizard"

	g "github.com/reoring/goskema/dsl"
)

const WizardKind wizard.Kind = "onboarding"

// Draft paths of the files a tenant uploads, with the folder each one is
// stored under.
var documentFields = []struct {
	path   string
	folder string
}{
	{path: "financial_info.income_proof", folder: "income_proof"},
	{path: "documents.id_document", folder: "id_document"},
	{path: "documents.proof_of_income", folder: "proof_of_income"},
	{path: "documents.proof_of_residence", folder: "proof_of_residence"},
	{path: "guarantor.documents.proof_of_income", folder: "guarantor_proof_of_income"},
	{path: "guarantor.documents.proof_of_residence", folder: "guarantor_proof_of_residence"},
}

func personalInfoSchema() wizard.Schema {
	return wizard.NewSchema(g.Object().
		Field("personal_info.date_of_birth", wizard.Value(wizard.Date())).Required().
		Field("personal_info.occupation", wizard.Value(wizard.Text(1, 100))).Required().
		Field("personal_info.emergency_contact.name", wizard.Value(wizard.Text(1, 100))).Required().
		Field("personal_info.emergency_contact.phone", wizard.Value(wizard.Phone())).Required().
		Field("personal_info.emergency_contact.email", wizard.Value(wizard.Email())).Required().
		UnknownStrip().
		MustBuild())
}

func financialInfoSchema() wizard.Schema {
	return wizard.NewSchema(g.Object().
		Field("financial_info.income_proof", wizard.Value(wizard.Items(1, 0))).Required().
		UnknownStrip().
		MustBuild())
}

func documentsSchema() wizard.Schema {
	return wizard.NewSchema(g.Object().
		Field("documents.id_document", wizard.Value(wizard.Items(1, 0))).Required().
		Field("documents.proof_of_income", wizard.OptionalValue(wizard.Items(0, 0))).
		Field("documents.proof_of_residence", wizard.OptionalValue(wizard.Items(0, 0))).
		UnknownStrip().
		MustBuild())
}

func guarantorSchema() wizard.Schema {
	return wizard.WhenPresent("guarantor", wizard.NewSchema(g.Object().
		Field("guarantor.name", wizard.Value(wizard.Text(1, 100))).Required().
		Field("guarantor.email", wizard.Value(wizard.Email())).Required().
		Field("guarantor.phone", wizard.Value(wizard.Phone())).Required().
		Field("guarantor.occupation", wizard.Value(wizard.Text(1, 100))).Required().
		Field("guarantor.documents.proof_of_income", wizard.Value(wizard.Items(1, 0))).Required().
		Field("guarantor.documents.proof_of_residence", wizard.Value(wizard.Items(1, 0))).Required().
		UnknownStrip().
		MustBuild()))
}

// OnboardingSchema covers the whole tenant draft.
func OnboardingSchema() wizard.Schema {
	return personalInfoSchema().
		Extend(financialInfoSchema()).
		Extend(documentsSchema()).
		Extend(guarantorSchema())
}

// WizardDefinition is the tenant onboarding wizard. The guarantor step is
// last, so submitting it checks the entire draft; the controller files any
// issue of an earlier section under that section.
func WizardDefinition() wizard.Definition {
	return wizard.Definition{
		Kind: WizardKind,
		Steps: []wizard.Step{
			{ID: "personal_info", Section: "personal_info", Schema: personalInfoSchema(), Renderer: "onboarding_personal_info"},
			{ID: "financial_info", Section: "financial_info", Schema: financialInfoSchema(), Renderer: "onboarding_financial_info"},
			{ID: "documents", Section: "documents", Schema: documentsSchema(), Renderer: "onboarding_documents"},
			{ID: "guarantor", Section: "guarantor", Schema: OnboardingSchema(), Renderer: "onboarding_guarantor"},
		},
	}
}

func fileFields() map[string]submission.FileKind {
	fields := make(map[string]submission.FileKind, len(documentFields))
	for _, f := range documentFields {
		fields[f.path] = submission.FileKindDocument
	}
	return fields
}
