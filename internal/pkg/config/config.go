package config

import (
	"context"
	"fmt"

	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Port     string `env:"PORT,      default=8080"`
	Env      string `env:"ENV,       default=development"`
	LogLevel string `env:"LOG_LEVEL, default=info"`

	Upstream UpstreamConfig
	Login    LoginConfig
}

// UpstreamConfig points the gateway at the Fix4Home API it fronts.
type UpstreamConfig struct {
	BaseURL string `env:"API_BASE_URL, default=http://localhost:8100/api/v1"`
}

// LoginConfig tunes the per-IP rate limit applied to POST /login.
type LoginConfig struct {
	RateRPS   int `env:"LOGIN_RATE_RPS,   default=5"`
	RateBurst int `env:"LOGIN_RATE_BURST, default=10"`
}

// Load reads configuration from environment variables using go-envconfig.
func Load() *Config {
	var cfg Config
	if err := envconfig.Process(context.Background(), &cfg); err != nil {
		panic(fmt.Sprintf("config: failed to load configuration: %v", err))
	}
	return &cfg
}
