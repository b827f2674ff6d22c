//go:build wireinject
// +build wireinject

package wire

import (
	onboardingPersistence "easyrent-server/internal/onboarding/persistence"
	onboardingUsecases "easyrent-server/internal/onboarding/usecases"
	"easyrent-server/internal/submission"
	submissionPersistence "easyrent-server/internal/submission/persistence"
	wizardHTTPAPI "easyrent-server/internal/wizard/httpapi"
	wizardUsecases "easyrent-server/internal/wizard/usecases"

	"github.com/google/wire"
)

func InitializeWizardController() (*wizardHTTPAPI.WizardController, error) {
	wire.Build(
		InfraSet,
		PropertyServiceSet,
		SubmissionSet,
		InviteServiceSet,
		WizardFilesSet,
		onboardingPersistence.NewProfileRepository,
		wire.Bind(new(onboardingUsecases.ProfileRepository), new(*onboardingPersistence.SimpleProfileRepository)),
		onboardingPersistence.NewCompletionPublisher,
		wire.Bind(new(onboardingUsecases.CompletionPublisher), new(*onboardingPersistence.SimpleCompletionPublisher)),
		providePropertyWizardFlow,
		provideOnboardingWizardFlow,
		provideSessionService,
		wire.Bind(new(wizardUsecases.SessionService), new(*wizardUsecases.SimpleSessionService)),
		wizardHTTPAPI.NewWizardController,
	)
	return nil, nil
}

func InitializeJournalSweepJob() (*submission.SweepJob, error) {
	wire.Build(
		InfraSet,
		SubmissionSet,
		provideRecordDeleter,
		wire.Bind(new(submission.RecordDeleter), new(*submissionPersistence.SQLRecordDeleter)),
		provideCompensator,
		submission.NewSweepJob,
	)
	return nil, nil
}
