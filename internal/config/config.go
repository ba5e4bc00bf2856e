// Package config provides configuration loading and validation for the CLI
// and server.
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

const envPrefix = "CV_TAILOR"

// Config represents the application configuration. Values come from a YAML
// file, environment variables prefixed with CV_TAILOR_, or defaults, in
// that order of precedence. Missing values use defaults or must be provided
// via CLI flags.
type Config struct {
	// Generation
	APIKey    string `mapstructure:"api-key"`
	Model     string `mapstructure:"model"`
	ModelTier string `mapstructure:"model-tier" validate:"omitempty,oneof=lite standard advanced"`

	// Job posting input; file and URL are mutually exclusive
	Job    string `mapstructure:"job"`
	JobURL string `mapstructure:"job-url" validate:"omitempty,url"`

	// Posting cache
	CachePath string        `mapstructure:"cache-path"`
	CacheTTL  time.Duration `mapstructure:"cache-ttl" validate:"min=0"`

	// Scoring
	Profile string `mapstructure:"profile"`

	// Server
	Server ServerConfig `mapstructure:"server"`

	// Logging
	Debug   bool `mapstructure:"debug"`
	JSONLog bool `mapstructure:"json-log"`
}

// ServerConfig holds the HTTP server settings.
type ServerConfig struct {
	Addr            string        `mapstructure:"addr" validate:"required,hostname_port"`
	ReadTimeout     time.Duration `mapstructure:"read-timeout" validate:"min=0"`
	WriteTimeout    time.Duration `mapstructure:"write-timeout" validate:"min=0"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown-timeout" validate:"min=0"`
}

// setDefaults registers the default values on a viper instance. Every key
// gets a default, even a zero one, so AutomaticEnv can populate it during
// Unmarshal.
func setDefaults(v *viper.Viper) {
	v.SetDefault("api-key", "")
	v.SetDefault("model", "")
	v.SetDefault("job", "")
	v.SetDefault("job-url", "")
	v.SetDefault("debug", false)
	v.SetDefault("json-log", false)
	v.SetDefault("model-tier", "standard")
	v.SetDefault("cache-path", "cv-tailor-cache.db")
	v.SetDefault("cache-ttl", 7*24*time.Hour)
	v.SetDefault("profile", "bullet")
	v.SetDefault("server.addr", "localhost:8080")
	v.SetDefault("server.read-timeout", 15*time.Second)
	v.SetDefault("server.write-timeout", 30*time.Second)
	v.SetDefault("server.shutdown-timeout", 10*time.Second)
}

// Load reads configuration from the given file (optional; when empty, a
// cv-tailor.yaml in the current directory is used if present) and the
// environment, then validates the result.
func Load(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("reading config file %s: %w", path, err)
		}
	} else {
		v.AddConfigPath(".")
		v.SetConfigName("cv-tailor")
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			// A missing default config file is fine; defaults and
			// environment still apply.
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return nil, fmt.Errorf("reading config file: %w", err)
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks field constraints and cross-field rules.
func (c *Config) Validate() error {
	if c.Job != "" && c.JobURL != "" {
		return fmt.Errorf("config error: 'job' and 'job-url' are mutually exclusive")
	}
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("config error: %w", err)
	}
	return nil
}
