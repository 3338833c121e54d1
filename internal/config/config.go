package config

import (
	"log"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

type key string

const (
	KeyUUID    = key("uuid")
	KeyLogger  = key("logger")
	KeyMetrics = key("metrics")
)

type Config struct {
	Service   Service
	Platform  Platform
	Postgres  Postgres
	Kafka     Kafka
	Logger    Logger
	Metrics   Metrics
	Calendar  Calendar
	Members   Members
	Space     Space
	Broadcast Broadcast
}

type Service struct {
	Name string `env:"STREAM_SERVICE_NAME" env-default:"stream-service"`
	Port string `env:"STREAM_SERVICE_PORT" env-default:"8080"`
}

type Platform struct {
	Env string `env:"ENV" env-default:"dev"`
}

type Postgres struct {
	User     string `env:"STREAM_SERVICE_POSTGRES_USER"`
	Password string `env:"STREAM_SERVICE_POSTGRES_PASSWORD"`
	Database string `env:"STREAM_SERVICE_POSTGRES_DB"`
	Host     string `env:"STREAM_SERVICE_POSTGRES_HOST"`
	Port     string `env:"STREAM_SERVICE_POSTGRES_PORT"`
}

type Kafka struct {
	Host                   string `env:"KAFKA_HOST"`
	Port                   string `env:"KAFKA_PORT"`
	CalendarSyncTopic      string `env:"KAFKA_CALENDAR_SYNC_TOPIC" env-default:"stream.calendar.sync"`
	VisibilityChangedTopic string `env:"KAFKA_VISIBILITY_CHANGED_TOPIC" env-default:"stream.visibility.changed"`
}

type Logger struct {
	Host string `env:"LOGGER_SERVICE_HOST"`
	Port string `env:"LOGGER_SERVICE_PORT"`
}

type Metrics struct {
	Host string `env:"GRAFANA_HOST"`
	Port int    `env:"GRAFANA_PORT"`
}

type Calendar struct {
	BaseURL string        `env:"CALENDAR_GATEWAY_BASE_URL"`
	APIKey  string        `env:"CALENDAR_GATEWAY_API_KEY"`
	Timeout time.Duration `env:"CALENDAR_GATEWAY_TIMEOUT" env-default:"10s"`
}

type Members struct {
	BaseURL string        `env:"MEMBER_SERVICE_BASE_URL"`
	Timeout time.Duration `env:"MEMBER_SERVICE_TIMEOUT" env-default:"5s"`
}

type Space struct {
	BaseURL string        `env:"SPACE_SERVICE_BASE_URL"`
	Timeout time.Duration `env:"SPACE_SERVICE_TIMEOUT" env-default:"5s"`
}

type Broadcast struct {
	JWTSecret string `env:"BROADCAST_JWT_SECRET"`
}

func MustLoad() *Config {
	cfg := &Config{}

	if err := cleanenv.ReadEnv(cfg); err != nil {
		log.Fatalf("failed to read env config: %v", err)
	}

	return cfg
}
