package config

import (
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	App struct {
		Env       string `env:"APP_ENV" env-default:"development"`
		Port      int    `env:"APP_PORT" env-default:"8080"`
		SentryUrl string `env:"SENTRY_URL"`
		Timezone  string `env:"APP_TIMEZONE" env-default:"UTC"`
	}
	Postgres struct {
		Port    int    `env:"POSTGRES_PORT" env-default:"5432"`
		Host    string `env:"POSTGRES_HOST"`
		User    string `env:"POSTGRES_USER"`
		Pass    string `env:"POSTGRES_PASS"`
		Name    string `env:"POSTGRES_NAME"`
		SslMode string `env:"POSTGRES_SSL_MODE" env-default:"disable"`
	}
	OpenAI struct {
		ApiKey  string        `env:"OPENAI_API_KEY"`
		BaseURL string        `env:"OPENAI_BASE_URL" env-default:"https://api.openai.com/v1"`
		Timeout time.Duration `env:"OPENAI_TIMEOUT" env-default:"10s"`
	}
	Storage struct {
		AccessKey string `env:"STORAGE_ACCESS_KEY"`
		SecretKey string `env:"STORAGE_SECRET_KEY"`
		Bucket    string `env:"STORAGE_BUCKET"`
		Region    string `env:"STORAGE_REGION" env-default:"us-east-1"`
		Endpoint  string `env:"STORAGE_ENDPOINT"`
		CDNURL    string `env:"STORAGE_CDN_URL"`
	}
	Redis struct {
		URL      string        `env:"REDIS_URL"`
		CacheTTL time.Duration `env:"REDIS_CACHE_TTL" env-default:"1h"`
	}
	Telegram struct {
		User    int64  `env:"TELEGRAM_USER"`
		Token   string `env:"TELEGRAM_TOKEN"`
		Channel string `env:"TELEGRAM_CHANNEL"`
	}
	Reaper struct {
		Cron    string        `env:"REAPER_CRON" env-default:"0 * * * *"`
		Timeout time.Duration `env:"REAPER_TIMEOUT" env-default:"5m"`
	}
	RateLimit struct {
		Requests int           `env:"RATE_LIMIT_REQUESTS" env-default:"5"`
		Per      time.Duration `env:"RATE_LIMIT_PER" env-default:"1m"`
		Burst    int           `env:"RATE_LIMIT_BURST" env-default:"3"`
	}
}

var (
	once sync.Once
	cfg  *Config
)

func New() (*Config, error) {
	once.Do(func() {
		cfg = &Config{}
		if err := cleanenv.ReadEnv(cfg); err != nil {
			help, _ := cleanenv.GetDescription(cfg, nil)
			log.Fatalf("Failed to read configuration: %v\n%v", err, help)
		}
	})
	return cfg, nil
}

// GetDSN returns the postgres connection string in URL form.
func (c *Config) GetDSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		c.Postgres.User,
		c.Postgres.Pass,
		c.Postgres.Host,
		c.Postgres.Port,
		c.Postgres.Name,
		c.Postgres.SslMode,
	)
}

// StoreConfigured reports whether the store-admin credential is present.
func (c *Config) StoreConfigured() bool {
	return c.Postgres.Host != "" && c.Postgres.User != "" && c.Postgres.Name != ""
}

// ModerationConfigured reports whether the classification credential is present.
func (c *Config) ModerationConfigured() bool {
	return c.OpenAI.ApiKey != ""
}

// StorageConfigured reports whether media uploads can be attempted at all.
func (c *Config) StorageConfigured() bool {
	return c.Storage.Bucket != "" && c.Storage.AccessKey != "" && c.Storage.SecretKey != ""
}
