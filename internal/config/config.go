package config

import (
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/caarlos0/env/v6"
	"github.com/joho/godotenv"
)

// DotEnvFile is loaded before environment is parsed if it exists
const DotEnvFile = ".env"

type HTTPCfg struct {
	Port            int           `env:"HTTP_PORT" envDefault:"3001"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"10s"`
	SecureCookie    bool          `env:"SESSION_COOKIE_SECURE" envDefault:"false"`
}

type APICfg struct {
	URL           string        `env:"CRM_API_URL" envDefault:"http://localhost:3000"`
	Timeout       time.Duration `env:"CRM_API_TIMEOUT" envDefault:"0s"`
	PageSize      int           `env:"CRM_PAGE_SIZE" envDefault:"5"`
	RedirectDelay time.Duration `env:"CRM_REDIRECT_DELAY" envDefault:"1500ms"`
}

// RedisCfg is config of view state storage, empty Addr means state is kept in memory
type RedisCfg struct {
	Addr     string `env:"REDIS_ADDR" envDefault:""`
	Password string `env:"REDIS_PASSWORD" envDefault:""`
	DB       int    `env:"REDIS_DB" envDefault:"0"`
}

type Config struct {
	HTTPCfg      HTTPCfg
	APICfg       APICfg
	RedisCfg     RedisCfg
	ViewStateTTL time.Duration `env:"VIEW_STATE_TTL" envDefault:"30m"`
	LogLevel     string        `env:"LOG_LEVEL" envDefault:"info"`
}

func Build() (Config, error) {
	var cfg Config

	if err := godotenv.Load(DotEnvFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return cfg, fmt.Errorf("failed to load %s file - %w", DotEnvFile, err)
	}

	opts := env.Options{RequiredIfNoDef: true}
	if err := env.Parse(&cfg, opts); err != nil {
		return cfg, fmt.Errorf("failed to parse environment variables - %w", err)
	}

	if cfg.APICfg.PageSize <= 0 {
		return cfg, fmt.Errorf("CRM_PAGE_SIZE must be positive, got %d", cfg.APICfg.PageSize)
	}
	return cfg, nil
}
