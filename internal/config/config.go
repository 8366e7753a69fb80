// Package config loads CLI configuration from the environment and optional
// config files.
package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"

	traceline "github.com/traceline/traceline-go"
)

// Config holds CLI configuration.
type Config struct {
	// Output is the default output format: "text" or "json".
	Output string
	// HeaderName is the propagation header name emitted by create --header
	// and accepted by inspect.
	HeaderName string
	// Log holds logging configuration.
	Log LogConfig
}

// LogConfig holds logging configuration.
type LogConfig struct {
	Level  string
	Format string
}

// Load loads configuration from environment variables and config files.
// Environment variables use the TRACELINE_ prefix (TRACELINE_OUTPUT,
// TRACELINE_LOG_LEVEL, ...).
func Load() (*Config, error) {
	v := viper.New()

	setDefaults(v)

	v.SetEnvPrefix("traceline")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetConfigName("traceline")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("/etc/traceline")

	// Ignore error if config file not found
	_ = v.ReadInConfig()

	var cfg Config
	cfg.Output = v.GetString("output")
	cfg.HeaderName = v.GetString("header_name")
	cfg.Log.Level = v.GetString("log_level")
	cfg.Log.Format = v.GetString("log_format")

	if err := validate(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("output", "text")
	v.SetDefault("header_name", traceline.TraceHeaderName)
	v.SetDefault("log_level", "info")
	v.SetDefault("log_format", "console")
}

func validate(cfg *Config) error {
	switch cfg.Output {
	case "text", "json":
	default:
		return fmt.Errorf("unsupported output format %q", cfg.Output)
	}
	if cfg.HeaderName == "" {
		return fmt.Errorf("header name must not be empty")
	}
	return nil
}
