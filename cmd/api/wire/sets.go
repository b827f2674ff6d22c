//go:build wireinject
// +build wireinject

package wire

import (
	leasePersistence "easyrent-server/internal/lease/persistence"
	leaseUsecases "easyrent-server/internal/lease/usecases"
	onboardingPersistence "easyrent-server/internal/onboarding/persistence"
	onboardingUsecases "easyrent-server/internal/onboarding/usecases"
	propertyPersistence "easyrent-server/internal/property/persistence"
	propertyUsecases "easyrent-server/internal/property/usecases"
	"easyrent-server/internal/submission"
	submissionPersistence "easyrent-server/internal/submission/persistence"
	wizardPersistence "easyrent-server/internal/wizard/persistence"
	wizardUsecases "easyrent-server/internal/wizard/usecases"

	"github.com/google/wire"
)

var InfraSet = wire.NewSet(
	provideAppConfig,
	provideDatabase,
	providePubSubFactory,
	providePublisherFactory,
	provideObjectStorage,
)

var PropertyServiceSet = wire.NewSet(
	propertyPersistence.NewPropertyRepository,
	wire.Bind(new(propertyUsecases.PropertyRepository), new(*propertyPersistence.SimplePropertyRepository)),
	leasePersistence.NewLeaseRepository,
	wire.Bind(new(propertyUsecases.LeaseIndex), new(*leasePersistence.SimpleLeaseRepository)),
	wire.Bind(new(leaseUsecases.LeaseRepository), new(*leasePersistence.SimpleLeaseRepository)),
	propertyUsecases.NewPropertyService,
	wire.Bind(new(propertyUsecases.PropertyService), new(*propertyUsecases.SimplePropertyService)),
)

var SubmissionSet = wire.NewSet(
	submissionPersistence.NewJournalRepository,
	wire.Bind(new(submission.JournalRepository), new(*submissionPersistence.SimpleJournalRepository)),
	provideOrchestrator,
	wire.Bind(new(submission.Orchestrator), new(*submission.SimpleOrchestrator)),
)

var InviteServiceSet = wire.NewSet(
	onboardingPersistence.NewInviteRepository,
	wire.Bind(new(onboardingUsecases.InviteRepository), new(*onboardingPersistence.SimpleInviteRepository)),
	provideNotificationClient,
	provideMailer,
	onboardingUsecases.NewInviteService,
	wire.Bind(new(onboardingUsecases.InviteService), new(*onboardingUsecases.SimpleInviteService)),
)

var WizardFilesSet = wire.NewSet(
	provideCache,
	provideFileStage,
	wire.Bind(new(submission.FileSource), new(*wizardPersistence.CacheFileStage)),
	wire.Bind(new(wizardUsecases.FileStage), new(*wizardPersistence.CacheFileStage)),
	provideSessionRepository,
	wire.Bind(new(wizardUsecases.SessionRepository), new(*wizardPersistence.CacheSessionRepository)),
)
