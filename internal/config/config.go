package config

import (
	"errors"
	"fmt"
	"net/url"
	"slices"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config holds all configuration for the application
type Config struct {
	Revive     ReviveConfig     `yaml:"revive"`
	Transport  TransportConfig  `yaml:"transport"`
	Resilience ResilienceConfig `yaml:"resilience"`
	Server     ServerConfig     `yaml:"server"`
	Log        LogConfig        `yaml:"log"`
}

// ReviveConfig holds the ad server endpoint and account
type ReviveConfig struct {
	URL        string        `yaml:"api_url" env:"REVIVE_API_URL"`
	Username   string        `yaml:"username" env:"REVIVE_API_USERNAME"`
	Password   string        `yaml:"-" env:"REVIVE_API_PASSWORD"` // Loaded from secrets.yaml
	AgencyID   int           `yaml:"agency_id" env:"REVIVE_AGENCY_ID"`
	SessionTTL time.Duration `yaml:"session_ttl" env:"REVIVE_SESSION_TTL"`
}

// TransportConfig holds HTTP settings for XML-RPC calls
type TransportConfig struct {
	Timeout   time.Duration `yaml:"timeout" env:"REVIVE_TIMEOUT"`
	UserAgent string        `yaml:"user_agent" env:"REVIVE_USER_AGENT"`
}

// ResilienceConfig holds the guards around each round trip
type ResilienceConfig struct {
	CircuitBreaker   bool          `yaml:"circuit_breaker" env:"REVIVE_CIRCUIT_BREAKER"`
	FailureThreshold int           `yaml:"failure_threshold" env:"REVIVE_FAILURE_THRESHOLD"`
	OpenTimeout      time.Duration `yaml:"open_timeout" env:"REVIVE_OPEN_TIMEOUT"`
	Bulkhead         bool          `yaml:"bulkhead" env:"REVIVE_BULKHEAD"`
	MaxConcurrent    int           `yaml:"max_concurrent" env:"REVIVE_MAX_CONCURRENT"`
	RatePerSecond    int           `yaml:"rate_per_second" env:"REVIVE_RATE_PER_SECOND"`
}

// ServerConfig holds MCP server settings
type ServerConfig struct {
	HTTPAddr string `yaml:"http_addr" env:"REVIVE_MCP_HTTP_ADDR"`
}

// LogConfig holds logging settings
type LogConfig struct {
	Level  string `yaml:"level" env:"LOG_LEVEL"`
	Format string `yaml:"format" env:"LOG_FORMAT"` // text, json
	// File additionally receives JSON logs when set
	File string `yaml:"file,omitempty" env:"LOG_FILE"`
}

var (
	logLevels  = []string{"debug", "info", "warn", "error"}
	logFormats = []string{"text", "json"}
)

// Default returns sensible defaults. The endpoint and account have none.
func Default() *Config {
	return &Config{
		Revive: ReviveConfig{
			AgencyID:   1,
			SessionTTL: 24 * time.Hour,
		},
		Transport: TransportConfig{
			Timeout:   30 * time.Second,
			UserAgent: "revive-mcp/1.0",
		},
		Resilience: ResilienceConfig{
			CircuitBreaker:   true,
			FailureThreshold: 5,
			OpenTimeout:      30 * time.Second,
			Bulkhead:         true,
			MaxConcurrent:    4,
		},
		Server: ServerConfig{
			HTTPAddr: "127.0.0.1:8765",
		},
		Log: LogConfig{
			Level:  "info",
			Format: "text",
		},
	}
}

// applyEnv overlays environment variables on cfg. Unset variables leave
// the current value in place.
func applyEnv(cfg *Config) error {
	if err := env.Parse(cfg); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// Validate checks that the configuration can reach an ad server
func (c *Config) Validate() error {
	var errs []error

	if c.Revive.URL == "" {
		errs = append(errs, errors.New("revive.api_url (REVIVE_API_URL) is required"))
	} else if u, err := url.Parse(c.Revive.URL); err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		errs = append(errs, fmt.Errorf("revive.api_url %q must be an absolute http(s) URL", c.Revive.URL))
	}
	if c.Revive.Username == "" {
		errs = append(errs, errors.New("revive.username (REVIVE_API_USERNAME) is required"))
	}
	if c.Revive.Password == "" {
		errs = append(errs, errors.New("password (REVIVE_API_PASSWORD or secrets.yaml) is required"))
	}
	if c.Revive.AgencyID <= 0 {
		errs = append(errs, fmt.Errorf("revive.agency_id must be positive, got %d", c.Revive.AgencyID))
	}
	if c.Revive.SessionTTL < 0 {
		errs = append(errs, fmt.Errorf("revive.session_ttl must not be negative, got %s", c.Revive.SessionTTL))
	}
	if c.Transport.Timeout <= 0 {
		errs = append(errs, fmt.Errorf("transport.timeout must be positive, got %s", c.Transport.Timeout))
	}
	if c.Resilience.RatePerSecond < 0 {
		errs = append(errs, fmt.Errorf("resilience.rate_per_second must not be negative, got %d", c.Resilience.RatePerSecond))
	}
	if !slices.Contains(logLevels, c.Log.Level) {
		errs = append(errs, fmt.Errorf("log.level %q must be one of %v", c.Log.Level, logLevels))
	}
	if !slices.Contains(logFormats, c.Log.Format) {
		errs = append(errs, fmt.Errorf("log.format %q must be one of %v", c.Log.Format, logFormats))
	}

	return errors.Join(errs...)
}
