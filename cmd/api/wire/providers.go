package wire

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"sync"

	"easyrent-server/cmd/config"
	"easyrent-server/internal/infra/cache"
	"easyrent-server/internal/infra/notification"
	"easyrent-server/internal/infra/pubsub"
	"easyrent-server/internal/infra/sql"
	"easyrent-server/internal/infra/storage"
	onboardingUsecases "easyrent-server/internal/onboarding/usecases"
	propertyUsecases "easyrent-server/internal/property/usecases"
	"easyrent-server/internal/submission"
	submissionPersistence "easyrent-server/internal/submission/persistence"
	wizardPersistence "easyrent-server/internal/wizard/persistence"
	wizardUsecases "easyrent-server/internal/wizard/usecases"
)

const (
	_localEnvironment = "local"
	_migrationsPath   = "migrations"
)

// compensableTables are the tables a failed submission may leave rows in.
var compensableTables = []string{
	"properties",
	"tenant_profiles",
	"tenant_documents",
	"tenant_guarantors",
	"tenants",
	"leases",
}

var (
	ormOnce     sync.Once
	ormInstance sql.ORM
	ormErr      error

	pubsubOnce     sync.Once
	pubsubInstance *pubsub.Factory

	cacheOnce     sync.Once
	cacheInstance cache.Cache
	cacheErr      error

	storageOnce     sync.Once
	storageInstance storage.ObjectStorage
	storageErr      error
)

func environment() string {
	env, ok := os.LookupEnv("ENV")
	if !ok {
		return "production"
	}
	return env
}

func provideAppConfig() config.AppConfig {
	return config.LoadConfig()
}

func provideDatabase(cfg config.AppConfig) (sql.ORM, error) {
	ormOnce.Do(func() {
		if environment() == _localEnvironment {
			ormInstance, ormErr = sql.NewMemoryORM(_migrationsPath, cfg.Postgresql.MigrationReplacements)
			return
		}

		if cfg.Postgresql.URL != "" {
			database := sql.NewPosgreDatabase(cfg.Postgresql.URL)
			if err := database.Open(); err != nil {
				ormErr = fmt.Errorf("opening database: %w", err)
				return
			}
			defer database.Close()
			if err := database.Up(_migrationsPath, cfg.Postgresql.MigrationReplacements); err != nil {
				ormErr = fmt.Errorf("running migrations: %w", err)
				return
			}
		}

		ormInstance, ormErr = sql.NewPosgreORM(cfg.Postgresql.DSN)
	})

	return ormInstance, ormErr
}

func providePubSubFactory(cfg config.AppConfig) *pubsub.Factory {
	pubsubOnce.Do(func() {
		pubsubInstance = pubsub.NewFactory(pubsub.FactoryOptions{
			Environment:       environment(),
			KafkaBrokers:      cfg.Kafka.Brokers,
			ConsumerGroup:     cfg.Kafka.Group,
			SchemaRegistryURL: cfg.Kafka.SchemaRegistry,
		})
	})
	return pubsubInstance
}

func providePublisherFactory(factory *pubsub.Factory) pubsub.PublisherFactory {
	return factory.GetPublisherFactory()
}

func provideConsumerFactory(factory *pubsub.Factory) pubsub.ConsumerFactory {
	return factory.GetConsumerFactory()
}

// provideCache shares wizard sessions across instances through redis. A
// local run keeps everything in process.
func provideCache(cfg config.AppConfig) (cache.Cache, error) {
	cacheOnce.Do(func() {
		if environment() == _localEnvironment || cfg.Redis.Addr == "" {
			cacheInstance, cacheErr = cache.New(nil)
			return
		}

		redisConfig := cache.DefaultRedisConfig()
		redisConfig.Addr = cfg.Redis.Addr
		redisConfig.Password = cfg.Redis.Password
		redisConfig.DB = cfg.Redis.DB
		cacheInstance, cacheErr = cache.NewRedisCache(redisConfig)
	})
	return cacheInstance, cacheErr
}

func provideObjectStorage(cfg config.AppConfig) (storage.ObjectStorage, error) {
	storageOnce.Do(func() {
		provider := cfg.Storage.Provider
		if environment() == _localEnvironment {
			provider = "memory"
		}

		storageInstance, storageErr = storage.New(context.Background(), storage.Config{
			Provider:        provider,
			Project:         cfg.Storage.Project,
			CredentialsFile: cfg.Storage.CredentialsFile,
			Endpoint:        cfg.Storage.Endpoint,
			PublicBaseURL:   cfg.Storage.PublicBaseURL,
		})
	})
	return storageInstance, storageErr
}

func provideNotificationClient(cfg config.AppConfig) notification.NotificationClient {
	if environment() == _localEnvironment || cfg.MailerSend.APIKey == "" {
		slog.Warn("mailersend is not configured, emails are only logged")
		return notification.NewLogClient()
	}

	return notification.NewMailerSendClient(notification.MailerSendConfig{
		APIKey:    cfg.MailerSend.APIKey,
		FromEmail: cfg.MailerSend.FromEmail,
		FromName:  cfg.MailerSend.FromName,
	})
}

func provideMailer(cfg config.AppConfig, client notification.NotificationClient) *onboardingUsecases.Mailer {
	return onboardingUsecases.NewMailer(client, cfg.General.PublicBaseURL)
}

func provideFileStage(cfg config.AppConfig, c cache.Cache) *wizardPersistence.CacheFileStage {
	return wizardPersistence.NewCacheFileStage(c, cfg.Wizard.FileTTL)
}

func provideSessionRepository(cfg config.AppConfig, c cache.Cache) (*wizardPersistence.CacheSessionRepository, error) {
	repositoryConfig := wizardPersistence.DefaultCacheSessionRepositoryConfig()
	repositoryConfig.Cache = c
	if cfg.Wizard.SessionTTL > 0 {
		repositoryConfig.TTL = cfg.Wizard.SessionTTL
	}
	return wizardPersistence.NewCacheSessionRepository(repositoryConfig)
}

func provideOrchestrator(objects storage.ObjectStorage, journals submission.JournalRepository) *submission.SimpleOrchestrator {
	return submission.NewOrchestrator(objects, journals)
}

func provideRecordDeleter(orm sql.ORM) *submissionPersistence.SQLRecordDeleter {
	return submissionPersistence.NewRecordDeleter(orm, compensableTables...)
}

func provideCompensator(
	cfg config.AppConfig,
	journals submission.JournalRepository,
	objects storage.ObjectStorage,
	records submission.RecordDeleter,
) *submission.Compensator {
	return submission.NewCompensator(journals, objects, records, cfg.Workers.JournalGracePeriod)
}

func providePropertyWizardFlow(
	cfg config.AppConfig,
	service propertyUsecases.PropertyService,
	orchestrator submission.Orchestrator,
	files submission.FileSource,
) *propertyUsecases.WizardFlow {
	return propertyUsecases.NewWizardFlow(service, orchestrator, files, cfg.Storage.PhotosBucket)
}

func provideOnboardingWizardFlow(
	cfg config.AppConfig,
	invites onboardingUsecases.InviteService,
	inviteRepository onboardingUsecases.InviteRepository,
	profiles onboardingUsecases.ProfileRepository,
	publisher onboardingUsecases.CompletionPublisher,
	orchestrator submission.Orchestrator,
	files submission.FileSource,
) *onboardingUsecases.WizardFlow {
	return onboardingUsecases.NewWizardFlow(invites, inviteRepository, profiles, publisher, orchestrator, files, cfg.Storage.DocumentsBucket)
}

func provideSessionService(
	cfg config.AppConfig,
	repository wizardUsecases.SessionRepository,
	files wizardUsecases.FileStage,
	propertyFlow *propertyUsecases.WizardFlow,
	onboardingFlow *onboardingUsecases.WizardFlow,
) *wizardUsecases.SimpleSessionService {
	return wizardUsecases.NewSessionService(repository, files, propertyFlow, onboardingFlow).
		WithStaleAfter(cfg.Workers.JournalGracePeriod)
}
