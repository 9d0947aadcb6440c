package app

import (
	"fmt"
	"net/http"
	"net/url"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

// Environment overrides.
const (
	EnvAPIURL       = "SOLARENROLL_API_URL"
	EnvTimeout      = "SOLARENROLL_TIMEOUT"
	EnvRequireEmail = "SOLARENROLL_REQUIRE_EMAIL"
)

// Config holds runtime wiring options for building the app.
type Config struct {
	API     APIConfig     `yaml:"api"`
	Wizard  WizardConfig  `yaml:"wizard"`
	Logging LoggingConfig `yaml:"logging"`

	HTTP *http.Client `yaml:"-"` // optional; built from API.Timeout when nil
}

// APIConfig locates the enrollment backend.
type APIConfig struct {
	BaseURL string `yaml:"base_url"` // e.g. http://localhost:8000
	Timeout string `yaml:"timeout"`  // Go duration; applied to the HTTP client
}

// WizardConfig tunes the enrollment wizard.
type WizardConfig struct {
	RequireEmail bool `yaml:"require_email"`
}

// LoggingConfig configures zap.
type LoggingConfig struct {
	Level  string `yaml:"level"`  // debug, info, warn, error
	Format string `yaml:"format"` // console, json
	File   string `yaml:"file"`   // optional; the interactive wizard only logs when set
}

// DefaultConfig returns the built-in defaults.
func DefaultConfig() Config {
	return Config{
		API: APIConfig{
			BaseURL: "http://localhost:8000",
			Timeout: "10s",
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
	}
}

// LoadConfig reads the YAML file at path over the defaults, then applies
// environment overrides. A missing file is not an error.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case os.IsNotExist(err):
		case err != nil:
			return Config{}, fmt.Errorf("read config: %w", err)
		default:
			if err := yaml.Unmarshal(data, &cfg); err != nil {
				return Config{}, fmt.Errorf("parse config %s: %w", path, err)
			}
		}
	}
	if err := cfg.applyEnvOverrides(); err != nil {
		return Config{}, err
	}
	return cfg, cfg.Validate()
}

func (c *Config) applyEnvOverrides() error {
	if v := os.Getenv(EnvAPIURL); v != "" {
		c.API.BaseURL = v
	}
	if v := os.Getenv(EnvTimeout); v != "" {
		c.API.Timeout = v
	}
	if v := os.Getenv(EnvRequireEmail); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvRequireEmail, err)
		}
		c.Wizard.RequireEmail = b
	}
	return nil
}

// Validate checks the base URL and timeout.
func (c Config) Validate() error {
	u, err := url.Parse(c.API.BaseURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("invalid api base_url %q", c.API.BaseURL)
	}
	if _, err := c.API.TimeoutDuration(); err != nil {
		return err
	}
	return nil
}

// TimeoutDuration parses Timeout. An empty value means no timeout.
func (a APIConfig) TimeoutDuration() (time.Duration, error) {
	if a.Timeout == "" {
		return 0, nil
	}
	d, err := time.ParseDuration(a.Timeout)
	if err != nil || d < 0 {
		return 0, fmt.Errorf("invalid api timeout %q", a.Timeout)
	}
	return d, nil
}
