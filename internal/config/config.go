// Package config holds runtime settings for the badgergram client.
package config

import (
	"time"

	"github.com/caarlos0/env/v11"
)

// Config holds runtime settings.
//
// Fields:
//   - BaseURL: scheme://host[:port] of the backend, no trailing slash.
//   - RequestTimeout: per-request transport timeout.
//   - TokenDBPath: sqlite file holding the persisted session token.
//   - LogLevel: debug|info|warn|error.
type Config struct {
	BaseURL        string        `env:"BADGERGRAM_BASE_URL" yaml:"base_url"`
	RequestTimeout time.Duration `env:"BADGERGRAM_REQUEST_TIMEOUT" yaml:"request_timeout"`
	TokenDBPath    string        `env:"BADGERGRAM_TOKEN_DB" yaml:"token_db_path"`
	LogLevel       string        `env:"BADGERGRAM_LOG_LEVEL" yaml:"log_level"`
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.BaseURL = "http://localhost:3000"
	c.RequestTimeout = 30 * time.Second
	c.TokenDBPath = "badgergram.db"
	c.LogLevel = "info"
}

// LoadConfig constructs a Config, applies defaults, then overlays values
// from a YAML file (if BADGERGRAM_CONFIG points at one) and environment
// variables. Later sources take precedence over earlier ones.
func LoadConfig() (*Config, error) {
	cfg := &Config{}
	cfg.LoadDefaults()
	if err := parseYaml(cfg); err != nil {
		return nil, err
	}
	if err := env.Parse(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}
