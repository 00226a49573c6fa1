package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

type (
	Tasks struct {
		ParcelStatsInterval time.Duration `env:"BACKGROUND_PARCEL_STATS_INTERVAL" envDefault:"30s"`
	}

	HTTPServer struct {
		Port             string        `env:"PORT"`
		RequestTimeout   time.Duration `env:"MIDDLEWARE_REQUEST_TIMEOUT" envDefault:"5s"`
		RateLimiterQPS   int           `env:"MIDDLEWARE_RATE_LIMIT_QPS" envDefault:"10"`   // пополнение в секунду
		RateLimiterBurst int           `env:"MIDDLEWARE_RATE_LIMIT_BURST" envDefault:"20"` // емкость bucket на клиента
		PprofEnabled     bool          `env:"PPROF_ENABLED"`
		PprofPort        string        `env:"PPROF_PORT"`
	}

	Log struct {
		Level string `env:"LOG_LEVEL" envDefault:"info"`
	}

	Database struct {
		Host              string `env:"POSTGRES_HOST"`
		Port              string `env:"POSTGRES_PORT"`
		User              string `env:"POSTGRES_USER"`
		Password          string `env:"POSTGRES_PASSWORD"`
		DBName            string `env:"POSTGRES_DB"`
		SSLMode           string `env:"POSTGRES_SSLMODE" envDefault:"disable"`
		MigrationsEnabled bool   `env:"POSTGRES_MIGRATIONS_ENABLED" envDefault:"true"`
	}

	Redis struct {
		Addr     string `env:"REDIS_ADDR"`
		Password string `env:"REDIS_PASSWORD"`
		DB       int    `env:"REDIS_DB"`
	}

	Auth struct {
		JWTSecret  string        `env:"AUTH_JWT_SECRET"`
		JWTIssuer  string        `env:"AUTH_JWT_ISSUER" envDefault:"pathport"`
		TokenTTL   time.Duration `env:"AUTH_TOKEN_TTL" envDefault:"24h"`
		BcryptCost int           `env:"AUTH_BCRYPT_COST" envDefault:"10"`
	}

	// Admin - начальный администратор, создается при старте если задан email
	Admin struct {
		Email    string `env:"ADMIN_EMAIL"`
		Password string `env:"ADMIN_PASSWORD"`
		Name     string `env:"ADMIN_NAME" envDefault:"Administrator"`
	}

	Parcels struct {
		OrderIDAttempts     int   `env:"PARCEL_ORDER_ID_ATTEMPTS" envDefault:"5"`
		DefaultRewardPoints int64 `env:"PARCEL_DEFAULT_REWARD_POINTS" envDefault:"10"`
	}

	Kafka struct {
		PortHealthcheck string `env:"KAFKA_HTTP_HEALTHCHECK_PORT"`
		Brokers         string `env:"KAFKA_BROKERS"`
		Topic           string `env:"KAFKA_TOPIC"`
		ConsumerGroup   string `env:"KAFKA_CONSUMER_GROUP"`
		Sarama          Sarama
		Handlers        KafkaHandlers
	}

	Sarama struct {
		Version                   string `env:"KAFKA_SARAMA_VERSION"`
		ConsumerOffsetsAutocommit bool   `env:"KAFKA_SARAMA_OFFSETS_AUTOCOMMIT"`
	}

	KafkaHandlers struct {
		ActivityRecorded ActivityRecorded
	}

	ActivityRecorded struct {
		ProcessTimeout time.Duration `env:"KAFKA_HANDLER_ACTIVITY_RECORDED_PROCESS_TIMEOUT" envDefault:"5s"`
	}

	Config struct {
		Tasks    Tasks
		Server   HTTPServer
		Log      Log
		Database Database
		Redis    Redis
		Auth     Auth
		Admin    Admin
		Parcels  Parcels
		Kafka    Kafka
	}
)

func Load() (*Config, error) {
	cfg, err := loadFromEnv()
	if err != nil {
		return nil, fmt.Errorf("environment loading: %w", err)
	}

	if err := validateConfig(cfg); err != nil {
		return nil, fmt.Errorf("validation: %w", err)
	}
	return cfg, nil
}

// LoadWorker - конфиг kafka воркера, HTTP/auth часть ему не нужна
func LoadWorker() (*Config, error) {
	cfg, err := loadFromEnv()
	if err != nil {
		return nil, fmt.Errorf("environment loading: %w", err)
	}

	if err := validateDatabase(&cfg.Database); err != nil {
		return nil, fmt.Errorf("validation: %w", err)
	}
	if err := validateKafka(&cfg.Kafka, true); err != nil {
		return nil, fmt.Errorf("validation: %w", err)
	}
	return cfg, nil
}

func loadFromEnv() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	return cfg, nil
}

func validateConfig(cfg *Config) error {
	if cfg.Server.Port == "" {
		return errors.New("server port is required (set via PORT env variable)")
	}
	if cfg.Server.RequestTimeout <= 0 {
		return errors.New("MIDDLEWARE_REQUEST_TIMEOUT must be positive")
	}
	if cfg.Server.RateLimiterQPS <= 0 {
		return errors.New("MIDDLEWARE_RATE_LIMIT_QPS must be positive")
	}
	if cfg.Server.RateLimiterBurst <= 0 {
		return errors.New("MIDDLEWARE_RATE_LIMIT_BURST must be positive")
	}
	if cfg.Server.PprofPort == "" && cfg.Server.PprofEnabled {
		return errors.New("PprofPort is required (set via PPROF_PORT env variable)")
	}

	if err := validateDatabase(&cfg.Database); err != nil {
		return err
	}

	if cfg.Redis.Addr == "" {
		return errors.New("REDIS_ADDR is required")
	}

	if cfg.Auth.JWTSecret == "" {
		return errors.New("AUTH_JWT_SECRET is required")
	}
	if len(cfg.Auth.JWTSecret) < 32 {
		return errors.New("AUTH_JWT_SECRET must be at least 32 bytes")
	}
	if cfg.Auth.TokenTTL <= 0 {
		return errors.New("AUTH_TOKEN_TTL must be positive")
	}
	if cfg.Auth.BcryptCost < 4 || cfg.Auth.BcryptCost > 31 {
		return errors.New("AUTH_BCRYPT_COST must be between 4 and 31")
	}

	if cfg.Admin.Email != "" && len(cfg.Admin.Password) < 8 {
		return errors.New("ADMIN_PASSWORD must be at least 8 characters when ADMIN_EMAIL is set")
	}

	if cfg.Parcels.OrderIDAttempts < 1 {
		return errors.New("PARCEL_ORDER_ID_ATTEMPTS must be at least 1")
	}
	if cfg.Parcels.DefaultRewardPoints < 0 || cfg.Parcels.DefaultRewardPoints > 10000 {
		return errors.New("PARCEL_DEFAULT_REWARD_POINTS must be between 0 and 10000")
	}

	if cfg.Tasks.ParcelStatsInterval <= 0 {
		return errors.New("BACKGROUND_PARCEL_STATS_INTERVAL must be positive")
	}

	return validateKafka(&cfg.Kafka, false)
}

func validateDatabase(cfg *Database) error {
	if cfg.Host == "" {
		return errors.New("POSTGRES_HOST is required")
	}
	if cfg.Port == "" {
		return errors.New("POSTGRES_PORT is required")
	}
	if cfg.User == "" {
		return errors.New("POSTGRES_USER is required")
	}
	if cfg.Password == "" {
		return errors.New("POSTGRES_PASSWORD is required")
	}
	if cfg.DBName == "" {
		return errors.New("POSTGRES_DB is required")
	}
	if cfg.SSLMode == "" {
		return errors.New("POSTGRES_SSLMODE is required")
	}
	return nil
}

func validateKafka(cfg *Kafka, consumer bool) error {
	if cfg.Brokers == "" {
		return errors.New("KAFKA_BROKERS is required")
	}
	if cfg.Topic == "" {
		return errors.New("KAFKA_TOPIC is required")
	}
	if cfg.Sarama.Version == "" {
		return errors.New("KAFKA_SARAMA_VERSION is required")
	}

	if !consumer {
		return nil
	}

	if cfg.ConsumerGroup == "" {
		return errors.New("KAFKA_CONSUMER_GROUP is required")
	}
	if cfg.PortHealthcheck == "" {
		return errors.New("KAFKA_HTTP_HEALTHCHECK_PORT is required")
	}
	if cfg.Handlers.ActivityRecorded.ProcessTimeout <= 0 {
		return errors.New("KAFKA_HANDLER_ACTIVITY_RECORDED_PROCESS_TIMEOUT must be positive")
	}
	return nil
}
