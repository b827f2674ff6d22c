//go:build wireinject
// +build wireinject

package wire

import (
	"easyrent-server/internal/infra/subscription"
	leaseUsecases "easyrent-server/internal/lease/usecases"
	"easyrent-server/internal/onboarding/consumers"
	onboardingHTTPAPI "easyrent-server/internal/onboarding/httpapi"
	onboardingPersistence "easyrent-server/internal/onboarding/persistence"
	onboardingUsecases "easyrent-server/internal/onboarding/usecases"

	"github.com/google/wire"
)

func InitializeInviteController() (*onboardingHTTPAPI.InviteController, error) {
	wire.Build(
		InfraSet,
		PropertyServiceSet,
		SubmissionSet,
		InviteServiceSet,
		onboardingPersistence.NewTenantRepository,
		wire.Bind(new(onboardingUsecases.TenantRepository), new(*onboardingPersistence.SimpleTenantRepository)),
		leaseUsecases.NewLeaseService,
		wire.Bind(new(leaseUsecases.LeaseService), new(*leaseUsecases.SimpleLeaseService)),
		onboardingUsecases.NewAcceptService,
		wire.Bind(new(onboardingUsecases.AcceptService), new(*onboardingUsecases.SimpleAcceptService)),
		onboardingUsecases.NewTenantService,
		wire.Bind(new(onboardingUsecases.TenantService), new(*onboardingUsecases.SimpleTenantService)),
		onboardingHTTPAPI.NewInviteController,
	)
	return nil, nil
}

func InitializeInviteExpiryJob() (*onboardingUsecases.ExpiryJob, error) {
	wire.Build(
		InfraSet,
		PropertyServiceSet,
		InviteServiceSet,
		onboardingUsecases.NewExpiryJob,
	)
	return nil, nil
}

func InitializeSubscriber() (*subscription.Subscriber, error) {
	wire.Build(
		provideAppConfig,
		providePubSubFactory,
		provideConsumerFactory,
		subscription.NewSubscriber,
	)
	return nil, nil
}

func InitializeCompletionNotifier() (*consumers.CompletionNotifier, error) {
	wire.Build(
		provideAppConfig,
		provideDatabase,
		providePubSubFactory,
		providePublisherFactory,
		onboardingPersistence.NewInviteRepository,
		wire.Bind(new(onboardingUsecases.InviteRepository), new(*onboardingPersistence.SimpleInviteRepository)),
		provideNotificationClient,
		provideMailer,
		consumers.NewCompletionNotifier,
	)
	return nil, nil
}
