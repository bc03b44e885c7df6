package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// PathEnv names the variable that overrides the config file location
const PathEnv = "REVIVE_MCP_CONFIG"

// SecretsConfig holds the password loaded from secrets.yaml
type SecretsConfig struct {
	Revive struct {
		Password string `yaml:"password"`
	} `yaml:"revive"`
}

// Dir returns the path to ~/.revive-mcp
func Dir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("get home dir: %w", err)
	}
	return filepath.Join(home, ".revive-mcp"), nil
}

// DefaultPath returns the config file used when none is given. The
// REVIVE_MCP_CONFIG variable takes precedence over ~/.revive-mcp/config.yaml.
func DefaultPath() (string, error) {
	if p := os.Getenv(PathEnv); p != "" {
		return p, nil
	}
	dir, err := Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.yaml"), nil
}

// Load builds the configuration: defaults, then the yaml file at path (if
// it exists), then secrets.yaml next to it, then environment variables.
// An empty path selects DefaultPath.
func Load(path string) (*Config, error) {
	if path == "" {
		p, err := DefaultPath()
		if err != nil {
			return nil, err
		}
		path = p
	}

	cfg := Default()

	data, err := os.ReadFile(path)
	switch {
	case os.IsNotExist(err):
		// Defaults and environment only
	case err != nil:
		return nil, fmt.Errorf("read config: %w", err)
	default:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	}

	if err := loadSecrets(filepath.Dir(path), cfg); err != nil {
		return nil, fmt.Errorf("load secrets: %w", err)
	}

	if err := applyEnv(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// loadSecrets loads the password from secrets.yaml
func loadSecrets(dir string, cfg *Config) error {
	secretsPath := filepath.Join(dir, "secrets.yaml")

	data, err := os.ReadFile(secretsPath)
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("read secrets: %w", err)
	}

	var secrets SecretsConfig
	if err := yaml.Unmarshal(data, &secrets); err != nil {
		return fmt.Errorf("parse secrets: %w", err)
	}

	if secrets.Revive.Password != "" {
		cfg.Revive.Password = secrets.Revive.Password
	}

	return nil
}

// Save writes cfg to path, creating its directory. The password is never
// written here; see SaveSecrets.
func Save(path string, cfg *Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write config: %w", err)
	}

	return nil
}

// SaveSecrets writes the password to secrets.yaml in dir
func SaveSecrets(dir, password string) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}

	var secrets SecretsConfig
	secrets.Revive.Password = password

	data, err := yaml.Marshal(secrets)
	if err != nil {
		return fmt.Errorf("marshal secrets: %w", err)
	}

	// Write with restricted permissions (owner read/write only)
	if err := os.WriteFile(filepath.Join(dir, "secrets.yaml"), data, 0600); err != nil {
		return fmt.Errorf("write secrets: %w", err)
	}

	return nil
}
