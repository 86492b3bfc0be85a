package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"

	"github.com/GriffinCanCode/WebDesk/backend/internal/shared/types"
)

// Config holds all application configuration.
type Config struct {
	Server    ServerConfig
	Desktop   DesktopConfig
	Logging   LogConfig
	RateLimit RateLimitConfig
	CORS      CORSConfig
}

// ServerConfig holds HTTP server configuration.
type ServerConfig struct {
	Port string `envconfig:"PORT" default:"8000"`
	Host string `envconfig:"HOST" default:"0.0.0.0"`
}

// DesktopConfig holds the desktop surface and catalog configuration.
type DesktopConfig struct {
	Width         int           `envconfig:"DESKTOP_WIDTH" default:"1280"`
	Height        int           `envconfig:"DESKTOP_HEIGHT" default:"692"`
	OriginX       int           `envconfig:"DESKTOP_ORIGIN_X" default:"0"`
	OriginY       int           `envconfig:"DESKTOP_ORIGIN_Y" default:"28"`
	Catalog       string        `envconfig:"DESKTOP_CATALOG"`
	ClockInterval time.Duration `envconfig:"DESKTOP_CLOCK_INTERVAL" default:"1m"`
}

// Bounds returns the desktop surface rectangle.
func (d DesktopConfig) Bounds() types.Rect {
	return types.Rect{X: d.OriginX, Y: d.OriginY, Width: d.Width, Height: d.Height}
}

// LogConfig holds logging configuration.
type LogConfig struct {
	Level       string `envconfig:"LOG_LEVEL" default:"info"`
	Development bool   `envconfig:"LOG_DEV" default:"false"`
}

// RateLimitConfig holds rate limiting configuration.
type RateLimitConfig struct {
	RequestsPerSecond int  `envconfig:"RATE_LIMIT_RPS" default:"100"`
	Burst             int  `envconfig:"RATE_LIMIT_BURST" default:"200"`
	Enabled           bool `envconfig:"RATE_LIMIT_ENABLED" default:"true"`
}

// CORSConfig holds allowed browser origins.
type CORSConfig struct {
	Origins []string `envconfig:"CORS_ORIGINS" default:"http://localhost:5173,http://localhost:3000"`
}

// Load loads configuration from environment variables.
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// LoadOrDefault loads configuration from environment or returns default.
func LoadOrDefault() *Config {
	cfg, err := Load()
	if err != nil {
		return Default()
	}
	return cfg
}

// Validate rejects configurations the desktop cannot run with.
func (c *Config) Validate() error {
	if c.Desktop.Width <= 0 || c.Desktop.Height <= 0 {
		return fmt.Errorf("invalid desktop size %dx%d", c.Desktop.Width, c.Desktop.Height)
	}
	if c.Desktop.ClockInterval <= 0 {
		return fmt.Errorf("invalid clock interval %s", c.Desktop.ClockInterval)
	}
	if c.RateLimit.Enabled && c.RateLimit.RequestsPerSecond <= 0 {
		return fmt.Errorf("invalid rate limit %d rps", c.RateLimit.RequestsPerSecond)
	}
	return nil
}

// Default returns default configuration.
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			Port: "8000",
			Host: "0.0.0.0",
		},
		Desktop: DesktopConfig{
			Width:         1280,
			Height:        692,
			OriginY:       28,
			ClockInterval: time.Minute,
		},
		Logging: LogConfig{
			Level:       "info",
			Development: false,
		},
		RateLimit: RateLimitConfig{
			RequestsPerSecond: 100,
			Burst:             200,
			Enabled:           true,
		},
		CORS: CORSConfig{
			Origins: []string{"http://localhost:5173", "http://localhost:3000"},
		},
	}
}
