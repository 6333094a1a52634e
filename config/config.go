package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/chinmay1088/dogechain/api"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

const (
	dirName   = ".dogechain"
	fileName  = "config.yaml"
	envPrefix = "DOGECHAIN"
)

// Config holds the CLI settings loaded from defaults, the config file,
// .env, DOGECHAIN_* environment variables and flags.
type Config struct {
	BaseURL        string        `mapstructure:"base_url" yaml:"base_url"`
	Chain          string        `mapstructure:"chain" yaml:"chain"`
	TimeoutSeconds int64         `mapstructure:"timeout" yaml:"timeout"`
	Timeout        time.Duration `mapstructure:"-" yaml:"-"`
	LogLevel       string        `mapstructure:"log_level" yaml:"log_level"`
	LogJSON        bool          `mapstructure:"log_json" yaml:"log_json"`
}

// Dir returns the per-user config directory.
func Dir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(home, dirName), nil
}

// NewViper returns a viper instance with defaults and environment binding.
// Callers bind flags before calling Load.
func NewViper() *viper.Viper {
	_ = godotenv.Load()

	v := viper.New()
	v.SetDefault("base_url", api.DefaultBaseURL)
	v.SetDefault("chain", api.DefaultChain)
	v.SetDefault("timeout", 30) // seconds, 0 disables
	v.SetDefault("log_level", "warn")
	v.SetDefault("log_json", false)

	v.SetEnvPrefix(envPrefix)
	v.AutomaticEnv()

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	if dir, err := Dir(); err == nil {
		v.AddConfigPath(dir)
	}
	return v
}

// Load reads the config file, if any, and validates the result. An explicit
// path must exist; the default location may be absent.
func Load(v *viper.Viper, path string) (*Config, error) {
	if path != "" {
		v.SetConfigFile(path)
	}
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	if cfg.BaseURL == "" {
		return nil, fmt.Errorf("invalid base_url (must not be empty)")
	}
	if cfg.Chain == "" {
		return nil, fmt.Errorf("invalid chain (must not be empty)")
	}
	if cfg.TimeoutSeconds < 0 {
		return nil, fmt.Errorf("invalid timeout (must be zero or positive seconds)")
	}
	cfg.Timeout = time.Duration(cfg.TimeoutSeconds) * time.Second

	return &cfg, nil
}

// YAML renders the effective configuration.
func (c *Config) YAML() (string, error) {
	out, err := yaml.Marshal(c)
	if err != nil {
		return "", fmt.Errorf("marshal config: %w", err)
	}
	return string(out), nil
}

// Save writes key=value into the config file under dir, keeping any other
// keys already there.
func Save(dir, key string, value any) (string, error) {
	if err := os.MkdirAll(dir, 0700); err != nil {
		return "", fmt.Errorf("failed to create directory: %w", err)
	}

	path := filepath.Join(dir, fileName)
	settings := map[string]any{}
	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, &settings); err != nil {
			return "", fmt.Errorf("parse %s: %w", path, err)
		}
		if settings == nil {
			settings = map[string]any{}
		}
	case !errors.Is(err, os.ErrNotExist):
		return "", fmt.Errorf("read %s: %w", path, err)
	}

	settings[key] = value
	out, err := yaml.Marshal(settings)
	if err != nil {
		return "", fmt.Errorf("marshal config: %w", err)
	}
	if err := os.WriteFile(path, out, 0600); err != nil {
		return "", fmt.Errorf("failed to write config file: %w", err)
	}
	return path, nil
}
