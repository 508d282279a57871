// Package config provides application configuration.
package config

import (
	"fmt"
	"os"
	"strings"
	"time"
)

// Config holds all application configuration.
type Config struct {
	Port        string
	FrontendURL string

	// DBPath is the SQLite database location. Empty means run on the
	// in-memory store (records vanish on restart).
	DBPath string

	// SeedDemoData controls whether sample providers are inserted on boot.
	SeedDemoData bool

	// AssistReplyDelay is the base simulated typing delay for the chat
	// assistant; AssistReplyJitter is the random extra added per reply.
	AssistReplyDelay  time.Duration
	AssistReplyJitter time.Duration
}

// Load reads configuration from environment variables.
func Load() (*Config, error) {
	cfg := &Config{
		Port:              getEnv("PORT", "8080"),
		FrontendURL:       getEnv("FRONTEND_URL", ""),
		DBPath:            getEnv("DB_PATH", "./data/pickhealth.db"),
		SeedDemoData:      getEnvBool("SEED_DEMO_DATA", true),
		AssistReplyDelay:  getEnvDuration("ASSIST_REPLY_DELAY", time.Second),
		AssistReplyJitter: getEnvDuration("ASSIST_REPLY_JITTER", time.Second),
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

// Validate checks that all required configuration fields are set.
func (c *Config) Validate() error {
	if c.Port == "" {
		return fmt.Errorf("PORT cannot be empty")
	}
	if c.AssistReplyDelay < 0 {
		return fmt.Errorf("ASSIST_REPLY_DELAY cannot be negative")
	}
	if c.AssistReplyJitter < 0 {
		return fmt.Errorf("ASSIST_REPLY_JITTER cannot be negative")
	}
	return nil
}

// IsDevelopment returns true if running in development mode.
func (c *Config) IsDevelopment() bool {
	return c.FrontendURL == "" ||
		strings.Contains(c.FrontendURL, "localhost") ||
		strings.Contains(c.FrontendURL, "127.0.0.1")
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	value, ok := os.LookupEnv(key)
	if !ok {
		return fallback
	}
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "1", "true", "yes", "on":
		return true
	case "0", "false", "no", "off":
		return false
	default:
		return fallback
	}
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	value, ok := os.LookupEnv(key)
	if !ok {
		return fallback
	}
	d, err := time.ParseDuration(strings.TrimSpace(value))
	if err != nil {
		return fallback
	}
	return d
}
