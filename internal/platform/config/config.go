// Package config loads process configuration from environment variables.
package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config holds every setting used by cmd/server and cmd/chartinput.
type Config struct {
	HTTPAddr string `env:"HTTP_ADDR" envDefault:":8080"`

	LogLevel  string `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat string `env:"LOG_FORMAT" envDefault:"json"` // "json" or "text"

	DBDriver         string        `env:"DB_DRIVER" envDefault:"sqlite"` // "sqlite" or "postgres"
	DBDSN            string        `env:"DB_DSN" envDefault:"file:symbols.db"`
	DBConnectTimeout time.Duration `env:"DB_CONNECT_TIMEOUT" envDefault:"60s"`
	RunMigrations    bool          `env:"RUN_MIGRATIONS" envDefault:"false"`

	RedisAddr      string        `env:"REDIS_ADDR"` // empty disables the cache
	RedisPassword  string        `env:"REDIS_PASSWORD"`
	SymbolCacheTTL time.Duration `env:"SYMBOL_CACHE_TTL" envDefault:"5m"`

	JWTSecret string `env:"JWT_SECRET"`

	RequireKnownSymbol bool `env:"REQUIRE_KNOWN_SYMBOL" envDefault:"false"`

	// RateLimitPerMinute is the per-client budget for /chart-queries; 0 disables limiting.
	RateLimitPerMinute int `env:"RATE_LIMIT_PER_MINUTE" envDefault:"120"`
}

// Load reads an optional .env file and parses the environment into a Config.
// Variables already set in the environment take precedence over .env.
func Load() (Config, error) {
	// .env は存在しなくてもよい
	_ = godotenv.Load()
	return Parse()
}

// Parse parses the current environment without reading .env.
func Parse() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) validate() error {
	switch c.DBDriver {
	case "sqlite", "postgres":
	default:
		return fmt.Errorf("config: unsupported DB_DRIVER %q", c.DBDriver)
	}
	if c.RateLimitPerMinute < 0 {
		return fmt.Errorf("config: RATE_LIMIT_PER_MINUTE must not be negative, got %d", c.RateLimitPerMinute)
	}
	switch c.LogFormat {
	case "json", "text":
	default:
		return fmt.Errorf("config: unsupported LOG_FORMAT %q", c.LogFormat)
	}
	return nil
}
