package config

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"easyrent-server/internal/submission"

	"github.com/spf13/viper"
)

var loadConfigOnce sync.Once
var configInstance AppConfig

func LoadConfig() AppConfig {
	loadConfigOnce.Do(func() {
		viper.SetEnvPrefix("easyrent_server")
		viper.AutomaticEnv()
		viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
		viper.SetConfigName("server")
		viper.AddConfigPath("config")
		viper.AddConfigPath("/config")
		setDefaults()
		if err := viper.ReadInConfig(); err != nil {
			panic(fmt.Errorf("fatal error config file: %w", err))
		}
		configInstance = readConfig()
	})

	return configInstance
}

func setDefaults() {
	viper.SetDefault("general.log_level", "info")
	viper.SetDefault("general.timezone", "UTC")
	viper.SetDefault("http.addr", ":3000")
	viper.SetDefault("storage.provider", "memory")
	viper.SetDefault("storage.photos_bucket", "property_photos")
	viper.SetDefault("storage.documents_bucket", "tenant_documents")
	viper.SetDefault("wizard.session_ttl", "24h")
	viper.SetDefault("wizard.file_ttl", "2h")
	viper.SetDefault("workers.journal_sweep_schedule", "*/5 * * * *")
	viper.SetDefault("workers.invite_expiry_schedule", "@hourly")
	viper.SetDefault("workers.journal_grace_period", submission.DefaultGracePeriod)
}

func readConfig() AppConfig {
	return AppConfig{
		General: GeneralConfig{
			LogLevel:      viper.GetString("general.log_level"),
			Timezone:      viper.GetString("general.timezone"),
			PublicBaseURL: viper.GetString("general.public_base_url"),
		},
		HTTP: HTTPConfig{
			Addr:           viper.GetString("http.addr"),
			AllowedOrigins: viper.GetStringSlice("http.allowed_origins"),
		},
		Postgresql: PostgresqlConfig{
			URL:                   viper.GetString("database.url"),
			DSN:                   viper.GetString("database.dsn"),
			MigrationReplacements: viper.GetStringMapString("database.migration_replacements"),
		},
		Kafka: KafkaConfig{
			Brokers:        viper.GetStringSlice("kafka.brokers"),
			Group:          viper.GetString("kafka.group"),
			SchemaRegistry: viper.GetString("kafka.schema_registry"),
		},
		Redis: RedisConfig{
			Addr:     viper.GetString("redis.addr"),
			Password: viper.GetString("redis.password"),
			DB:       viper.GetInt("redis.db"),
		},
		Storage: StorageConfig{
			Provider:        viper.GetString("storage.provider"),
			Project:         viper.GetString("storage.project"),
			CredentialsFile: viper.GetString("storage.credentials_file"),
			Endpoint:        viper.GetString("storage.endpoint"),
			PublicBaseURL:   viper.GetString("storage.public_base_url"),
			PhotosBucket:    viper.GetString("storage.photos_bucket"),
			DocumentsBucket: viper.GetString("storage.documents_bucket"),
		},
		MailerSend: MailerSendConfig{
			APIKey:    viper.GetString("mailersend.api_key"),
			FromEmail: viper.GetString("mailersend.from_email"),
			FromName:  viper.GetString("mailersend.from_name"),
		},
		Wizard: WizardConfig{
			SessionTTL: viper.GetDuration("wizard.session_ttl"),
			FileTTL:    viper.GetDuration("wizard.file_ttl"),
		},
		Workers: WorkersConfig{
			JournalSweepSchedule: viper.GetString("workers.journal_sweep_schedule"),
			InviteExpirySchedule: viper.GetString("workers.invite_expiry_schedule"),
			JournalGracePeriod:   viper.GetDuration("workers.journal_grace_period"),
		},
	}
}

type AppConfig struct {
	General    GeneralConfig
	HTTP       HTTPConfig
	Kafka      KafkaConfig
	Postgresql PostgresqlConfig
	Redis      RedisConfig
	Storage    StorageConfig
	MailerSend MailerSendConfig
	Wizard     WizardConfig
	Workers    WorkersConfig
}

type GeneralConfig struct {
	LogLevel      string
	Timezone      string
	PublicBaseURL string
}

type HTTPConfig struct {
	Addr           string
	AllowedOrigins []string
}

type KafkaConfig struct {
	Brokers        []string
	Group          string
	SchemaRegistry string
}

type PostgresqlConfig struct {
	URL                   string
	DSN                   string
	MigrationReplacements map[string]string
}

type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

type StorageConfig struct {
	Provider        string
	Project         string
	CredentialsFile string
	Endpoint        string
	PublicBaseURL   string
	PhotosBucket    string
	DocumentsBucket string
}

type MailerSendConfig struct {
	APIKey    string
	FromEmail string
	FromName  string
}

type WizardConfig struct {
	SessionTTL time.Duration
	FileTTL    time.Duration
}

type WorkersConfig struct {
	JournalSweepSchedule string
	InviteExpirySchedule string
	JournalGracePeriod   time.Duration
}
