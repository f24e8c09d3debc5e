package config

import "time"

type HTTPConfig struct {
	Host            string        `env:"HOST" envDefault:"0.0.0.0"`
	Port            int           `env:"PORT" envDefault:"8080"`
	ReadTimeout     time.Duration `env:"READ_TIMEOUT" envDefault:"15s"`
	WriteTimeout    time.Duration `env:"WRITE_TIMEOUT" envDefault:"15s"`
	IdleTimeout     time.Duration `env:"IDLE_TIMEOUT" envDefault:"60s"`
	RequestTimeout  time.Duration `env:"REQUEST_TIMEOUT" envDefault:"60s"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"15s"`
	// Applies to every request body, including /echo.
	MaxBodyBytes int64 `env:"MAX_BODY_BYTES" envDefault:"262144"`
	// Tighter cap for JSON bodies (POST /user).
	MaxJSONBodyBytes int64 `env:"MAX_JSON_BODY_BYTES" envDefault:"32768"`
}

// DatabaseConfig describes the connection pool. Defaults mirror a small
// pool: ten connections, thirty seconds to connect or to wait for a lease.
type DatabaseConfig struct {
	URL             string        `env:"DATABASE_URL,required"`
	MaxOpenConns    int           `env:"DB_MAX_OPEN" envDefault:"10"`
	MaxIdleConns    int           `env:"DB_MAX_IDLE" envDefault:"10"`
	ConnMaxLifetime time.Duration `env:"DB_MAX_LIFETIME" envDefault:"30m"`
	ConnMaxIdleTime time.Duration `env:"DB_MAX_IDLE_TIME" envDefault:"10m"`
	ConnectTimeout  time.Duration `env:"DB_CONNECT_TIMEOUT" envDefault:"30s"`
	LeaseTimeout    time.Duration `env:"DB_LEASE_TIMEOUT" envDefault:"30s"`
}

type KafkaConfig struct {
	Enabled         bool     `env:"ENABLED" envDefault:"false"`
	Brokers         []string `env:"BROKERS" envDefault:"localhost:9092" envSeparator:","`
	ClientID        string   `env:"CLIENT_ID" envDefault:"userapi"`
	GroupID         string   `env:"GROUP_ID" envDefault:"userapi"`
	TopicPrefix     string   `env:"TOPIC_PREFIX"`
	ConsumerEnabled bool     `env:"CONSUMER_ENABLED" envDefault:"false"`
}

// ObservabilityConfig Observability / telemetry configuration
type ObservabilityConfig struct {
	Enabled     bool   `env:"ENABLED" envDefault:"false"`
	ServiceName string `env:"SERVICE_NAME" envDefault:"userapi"`
	ServiceEnv  string `env:"SERVICE_ENV" envDefault:"Development"`
	// e.g. "otel-collector:4317"
	OtelEndpoint string `env:"ENDPOINT"`
}

type LogConfig struct {
	Level string `env:"LEVEL" envDefault:"info"`
	// Empty means stdout only.
	File       string `env:"FILE"`
	MaxSizeMB  int    `env:"MAX_SIZE_MB" envDefault:"100"`
	MaxBackups int    `env:"MAX_BACKUPS" envDefault:"3"`
	MaxAgeDays int    `env:"MAX_AGE_DAYS" envDefault:"28"`
}

type Config struct {
	Environment string `env:"APP_ENV" envDefault:"Development"`

	HTTP          HTTPConfig          `envPrefix:"HTTP_"`
	Database      DatabaseConfig
	Kafka         KafkaConfig         `envPrefix:"KAFKA_"`
	Observability ObservabilityConfig `envPrefix:"OTEL_"`
	Log           LogConfig           `envPrefix:"LOG_"`
}
