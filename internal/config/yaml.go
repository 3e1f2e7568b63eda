package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// configFileEnv names the environment variable holding the YAML file path.
const configFileEnv = "BADGERGRAM_CONFIG"

// duration lets YAML express intervals as strings like "15s" or as
// integer nanoseconds. Parsed values are copied into the runtime Config,
// which uses plain time.Duration.
type duration struct {
	time.Duration
}

func (d *duration) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err == nil {
		parsed, perr := time.ParseDuration(s)
		if perr != nil {
			return fmt.Errorf("invalid duration %q: %w", s, perr)
		}
		d.Duration = parsed
		return nil
	}
	var n int64
	if err := value.Decode(&n); err != nil {
		return err
	}
	d.Duration = time.Duration(n)
	return nil
}

// yamlConfig is a DTO used exclusively for YAML unmarshalling. Pointer
// fields distinguish "absent" from zero so only keys present in the file
// overlay the defaults.
type yamlConfig struct {
	BaseURL        *string   `yaml:"base_url"`
	RequestTimeout *duration `yaml:"request_timeout"`
	TokenDBPath    *string   `yaml:"token_db_path"`
	LogLevel       *string   `yaml:"log_level"`
}

// parseYaml overlays cfg with values from the YAML file named by
// BADGERGRAM_CONFIG. A missing variable means no file is loaded; a
// present but unreadable or malformed file is an error.
func parseYaml(cfg *Config) error {
	path := os.Getenv(configFileEnv)
	if path == "" {
		return nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read config file: %w", err)
	}

	var yc yamlConfig
	if err := yaml.Unmarshal(data, &yc); err != nil {
		return fmt.Errorf("failed to parse config file: %w", err)
	}

	if yc.BaseURL != nil {
		cfg.BaseURL = *yc.BaseURL
	}
	if yc.RequestTimeout != nil {
		cfg.RequestTimeout = yc.RequestTimeout.Duration
	}
	if yc.TokenDBPath != nil {
		cfg.TokenDBPath = *yc.TokenDBPath
	}
	if yc.LogLevel != nil {
		cfg.LogLevel = *yc.LogLevel
	}
	return nil
}
