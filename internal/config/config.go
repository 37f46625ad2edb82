package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v6"
)

type Config struct {
	IsTestMode bool `env:"TEST_MODE" envDefault:"false"`
	Port       int  `env:"PORT" envDefault:"8080"`

	PostgresqlURL  string `env:"POSTGRESQL_URL,required"`
	MigrationsPath string `env:"MIGRATIONS_PATH" envDefault:"./internal/db/migrations"`
	RedisURL       string `env:"REDIS_URL,required"`
	RabbitmqURL    string `env:"RABBITMQ_URL,required"`

	RabbitmqCommandQueue string `env:"RABBITMQ_COMMAND_QUEUE" envDefault:"ltapp.worker.commands"`
	RabbitmqEventQueue   string `env:"RABBITMQ_EVENT_QUEUE" envDefault:"ltapp.worker.events"`

	AllowedOrigins []string `env:"ALLOWED_ORIGINS" envSeparator:"," envDefault:"*"`
	EventStream    string   `env:"EVENT_STREAM" envDefault:"notifications"`

	StaticOriginURL    string        `env:"STATIC_ORIGIN_URL,required"`
	StaticManifestPath string        `env:"STATIC_MANIFEST_PATH" envDefault:"/manifest.json"`
	StaticShellPath    string        `env:"STATIC_SHELL_PATH" envDefault:"/index.html"`
	StaticBaseAssets   []string      `env:"STATIC_BASE_ASSETS" envSeparator:"," envDefault:"/,/index.html"`
	StaticFetchTimeout time.Duration `env:"STATIC_FETCH_TIMEOUT" envDefault:"10s"`
	CacheAutoActivate  bool          `env:"CACHE_AUTO_ACTIVATE" envDefault:"true"`
}

func Load() (*Config, error) {
	config := &Config{}
	if err := env.Parse(config); err != nil {
		return nil, fmt.Errorf("could not load config: %w", err)
	}
	return config, nil
}
