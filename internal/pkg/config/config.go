package config

import (
	"context"
	"fmt"
	"time"

	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Port      string        `env:"PORT,           default=8080"`
	Env       string        `env:"ENV,            default=development"`
	LogLevel  string        `env:"LOG_LEVEL,      default=info"`
	JWTSecret string        `env:"JWT_SECRET"`
	JWTExpiry time.Duration `env:"JWT_EXPIRES_IN, default=24h"`

	Postgres  PostgresConfig
	Redis     RedisConfig
	ClickUp   ClickUpConfig
	RateLimit RateLimitConfig
}

type PostgresConfig struct {
	URL string `env:"DATABASE_URL, default=postgres://localhost:5432/clickup_gateway?sslmode=disable"`
}

type RedisConfig struct {
	Addr string `env:"REDIS_ADDR, default=localhost:6379"`
	DB   int    `env:"REDIS_DB,   default=0"`
}

type ClickUpConfig struct {
	BaseURL  string `env:"CLICKUP_API_BASE_URL, default=https://api.clickup.com/api/v2"`
	APIToken string `env:"CLICKUP_API_TOKEN"`
}

// RateLimitConfig holds the three fixed-window tiers enforced per client:
// a short burst window, a medium window, and a long window with
// independent request caps.
type RateLimitConfig struct {
	ShortWindow  time.Duration `env:"RATE_SHORT_WINDOW,  default=1m"`
	ShortLimit   int           `env:"RATE_SHORT_LIMIT,   default=10"`
	MediumWindow time.Duration `env:"RATE_MEDIUM_WINDOW, default=10m"`
	MediumLimit  int           `env:"RATE_MEDIUM_LIMIT,  default=100"`
	LongWindow   time.Duration `env:"RATE_LONG_WINDOW,   default=1h"`
	LongLimit    int           `env:"RATE_LONG_LIMIT,    default=1000"`
}

// Load reads configuration from environment variables using go-envconfig.
func Load() *Config {
	var cfg Config
	if err := envconfig.Process(context.Background(), &cfg); err != nil {
		panic(fmt.Sprintf("config: failed to load configuration: %v", err))
	}
	return &cfg
}
