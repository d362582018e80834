package config

import (
	"fmt"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config is centralized process configuration.
// Keep infra values here and pass typed config into builders.
type Config struct {
	ServiceName string `env:"SERVICE_NAME" env-default:"starcast"`
	HTTPPort    string `env:"HTTP_PORT" env-default:"8080"`
	PostgresDSN string `env:"POSTGRES_DSN" env-default:""`

	OutboxPollInterval time.Duration `env:"OUTBOX_POLL_INTERVAL" env-default:"5s"`
	OutboxBatchSize    int           `env:"OUTBOX_BATCH_SIZE" env-default:"100"`
	IdempotencyTTL     time.Duration `env:"IDEMPOTENCY_TTL" env-default:"168h"`

	EnableOutboxRelay bool `env:"ENABLE_OUTBOX_RELAY" env-default:"true"`
}

func Load() (Config, error) {
	var cfg Config
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return Config{}, fmt.Errorf("read environment config: %w", err)
	}
	return cfg, nil
}
