// Package config loads plazactl configuration from file and environment.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all plazactl configuration.
type Config struct {
	API     APIConfig     `mapstructure:"api"`
	Session SessionConfig `mapstructure:"session"`
	Log     LogConfig     `mapstructure:"log"`
}

// APIConfig holds backend connection settings.
type APIConfig struct {
	BaseURL string        `mapstructure:"base_url"`
	Timeout time.Duration `mapstructure:"timeout"`
}

// SessionConfig holds local session persistence settings.
type SessionConfig struct {
	Path string `mapstructure:"path"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// DefaultDir returns the plazactl configuration directory,
// $HOME/.plazactl unless PLAZACTL_HOME overrides it.
func DefaultDir() string {
	if dir := os.Getenv("PLAZACTL_HOME"); dir != "" {
		return dir
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ".plazactl"
	}
	return filepath.Join(home, ".plazactl")
}

// Load reads configuration from $PLAZACTL_HOME/config.yaml (optional)
// with PLAZACTL_* environment variables taking precedence.
func Load() (*Config, error) {
	return LoadFrom(DefaultDir())
}

// LoadFrom reads configuration rooted at the given directory.
func LoadFrom(dir string) (*Config, error) {
	v := viper.New()

	v.SetDefault("api.base_url", "http://localhost:8080")
	v.SetDefault("api.timeout", 30*time.Second)
	v.SetDefault("session.path", filepath.Join(dir, "session.json"))
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "console")

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(dir)

	v.SetEnvPrefix("PLAZACTL")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		// A missing config file is fine, everything has defaults.
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if cfg.API.BaseURL == "" {
		return nil, fmt.Errorf("api.base_url cannot be empty")
	}
	cfg.API.BaseURL = strings.TrimRight(cfg.API.BaseURL, "/")

	return &cfg, nil
}
