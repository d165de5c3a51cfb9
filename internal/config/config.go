package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config represents the finsight.yaml client configuration.
type Config struct {
	// BaseURL is the FinSight backend API root.
	BaseURL string `yaml:"base_url"`
	// TimeoutSeconds bounds a single API request. The AI endpoints can be
	// slow, so the default is generous.
	TimeoutSeconds int `yaml:"timeout_seconds"`
	// Currency is the ISO code used when formatting amounts.
	Currency string `yaml:"currency"`
}

// Timeout returns the request timeout as a duration.
func (c *Config) Timeout() time.Duration {
	return time.Duration(c.TimeoutSeconds) * time.Second
}

// Default returns a Config with sensible defaults.
func Default() *Config {
	return &Config{
		BaseURL:        "http://localhost:8000",
		TimeoutSeconds: 60,
		Currency:       "IDR",
	}
}

// Dir returns the finsight config directory.
func Dir() (string, error) {
	base, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("resolving config dir: %w", err)
	}
	return filepath.Join(base, "finsight"), nil
}

// Load builds the effective configuration: defaults, then the YAML file at
// path (a missing file is fine), then .env, then FINSIGHT_* environment
// variables.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil && !os.IsNotExist(err) {
			return nil, fmt.Errorf("reading config: %w", err)
		}
		if err == nil {
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("parsing config: %w", err)
			}
		}
	}

	// .env in the working directory, if present.
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("loading .env: %w", err)
	}

	cfg.applyEnv()
	return cfg, nil
}

// Save writes the Config to a YAML file.
func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating config dir: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}

func (c *Config) applyEnv() {
	if v := os.Getenv("FINSIGHT_BASE_URL"); v != "" {
		c.BaseURL = v
	}
	if v := os.Getenv("FINSIGHT_TIMEOUT_SECONDS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			c.TimeoutSeconds = n
		}
	}
	if v := os.Getenv("FINSIGHT_CURRENCY"); v != "" {
		c.Currency = v
	}
}
