package cfg

import (
	"errors"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type RedisConfig struct {
	Addr     string
	Password string
}

type ProviderConfig struct {
	BaseURL   string
	AccessKey string
	Limit     int
}

type DatabaseConfig struct {
	URL           string
	MigrationsDir string
}

type PaymentConfig struct {
	StripeSecretKey string
}

type AuthConfig struct {
	JWTSecret string
}

type KafkaConfig struct {
	Brokers      []string
	BookingTopic string
}

type TelemetryConfig struct {
	OTLPEndpoint string
}

// Config is the explicit configuration injected into every facade. Each
// absent credential selects that facade's mock/degraded path; no service
// reads the environment on its own.
type Config struct {
	AppEnv          string
	AppPort         string
	Redis           RedisConfig
	Provider        ProviderConfig
	Database        DatabaseConfig
	Payment         PaymentConfig
	Auth            AuthConfig
	Kafka           KafkaConfig
	Telemetry       TelemetryConfig
	CacheTTLMinutes int
	SnowflakeNodeID int64
}

func Load() (*Config, error) {
	// A missing .env file is fine in production, where env vars are set
	// by the runtime.
	_ = godotenv.Load()

	var errs []error

	appEnv := optEnv("APP_ENV", "development")
	appPort := optEnv("APP_PORT", "8080")

	cacheTTL, err := strconv.Atoi(optEnv("CACHE_TTL_MINUTES", "5"))
	if err != nil {
		errs = append(errs, errors.New("conversion failed env: CACHE_TTL_MINUTES"))
	}

	providerLimit, err := strconv.Atoi(optEnv("PROVIDER_RESULT_LIMIT", "10"))
	if err != nil {
		errs = append(errs, errors.New("conversion failed env: PROVIDER_RESULT_LIMIT"))
	}

	nodeID, err := strconv.ParseInt(optEnv("SNOWFLAKE_NODE_ID", "1"), 10, 64)
	if err != nil {
		errs = append(errs, errors.New("conversion failed env: SNOWFLAKE_NODE_ID"))
	}

	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}

	var brokers []string
	if raw := os.Getenv("KAFKA_BROKERS"); raw != "" {
		brokers = strings.Split(raw, ",")
	}

	return &Config{
		AppEnv:  appEnv,
		AppPort: appPort,
		Redis: RedisConfig{
			Addr:     os.Getenv("REDIS_ADDR"),
			Password: os.Getenv("REDIS_PASSWORD"),
		},
		Provider: ProviderConfig{
			BaseURL:   optEnv("PROVIDER_BASE_URL", "https://api.aviationstack.com/v1"),
			AccessKey: os.Getenv("PROVIDER_ACCESS_KEY"),
			Limit:     providerLimit,
		},
		Database: DatabaseConfig{
			URL:           os.Getenv("DATABASE_URL"),
			MigrationsDir: optEnv("MIGRATIONS_DIR", "migrations"),
		},
		Payment: PaymentConfig{
			StripeSecretKey: os.Getenv("STRIPE_SECRET_KEY"),
		},
		Auth: AuthConfig{
			JWTSecret: os.Getenv("JWT_SECRET"),
		},
		Kafka: KafkaConfig{
			Brokers:      brokers,
			BookingTopic: optEnv("KAFKA_BOOKING_TOPIC", "bookings"),
		},
		Telemetry: TelemetryConfig{
			OTLPEndpoint: os.Getenv("OTLP_ENDPOINT"),
		},
		CacheTTLMinutes: cacheTTL,
		SnowflakeNodeID: nodeID,
	}, nil
}

func optEnv(key, fallback string) string {
	value, exists := os.LookupEnv(key)
	if !exists || value == "" {
		return fallback
	}
	return value
}
