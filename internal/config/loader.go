// Package config provides configuration management using the Singleton pattern.
package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/viper"
)

const (
	defaultConfigName = "config"
	defaultConfigType = "yaml"
	envPrefix         = "CARDIAG"

	// EnvAPIKey is the primary environment variable for the Gemini key.
	// It takes priority over file configuration so the key never needs to
	// live on disk.
	EnvAPIKey = "GEMINI_API_KEY"
)

// loadConfig loads configuration with the following priority, highest first:
//  1. GEMINI_API_KEY env var (key only)
//  2. Environment variables prefixed with CARDIAG_
//  3. config.yaml
//  4. Defaults
func loadConfig(configPath string) (*Configuration, error) {
	v := viper.New()

	setDefaults(v)

	v.SetConfigName(defaultConfigName)
	v.SetConfigType(defaultConfigType)

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.AddConfigPath(".")
		v.AddConfigPath("./configs")
		v.AddConfigPath("/etc/cardiagnosis")
		v.AddConfigPath("$HOME/.cardiagnosis")
	}

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, &ConfigError{
				Op:  "read",
				Err: fmt.Errorf("failed to read config file: %w", err),
			}
		}
		// No config file is fine, env vars cover everything.
	}

	var cfg Configuration
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, &ConfigError{
			Op:  "unmarshal",
			Err: fmt.Errorf("failed to unmarshal config: %w", err),
		}
	}

	// The API key from the primary env var beats any file value.
	if envKey := strings.TrimSpace(os.Getenv(EnvAPIKey)); envKey != "" {
		cfg.Gemini.APIKey = envKey
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// setDefaults sets default configuration values.
func setDefaults(v *viper.Viper) {
	// Server defaults
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.read_timeout_seconds", 120)
	v.SetDefault("server.write_timeout_seconds", 120)
	v.SetDefault("server.shutdown_timeout_seconds", 15)

	// Gemini defaults
	v.SetDefault("gemini.model", "gemini-1.5-flash")
	v.SetDefault("gemini.base_url", "https://generativelanguage.googleapis.com/v1beta")
	v.SetDefault("gemini.timeout_seconds", 60)

	// Upload caps
	v.SetDefault("limits.max_image_bytes", 8<<20)
	v.SetDefault("limits.max_video_bytes", 20<<20)
	v.SetDefault("limits.max_sound_bytes", 10<<20)

	// Cache defaults
	v.SetDefault("cache.enabled", true)
	v.SetDefault("cache.ttl_seconds", 300)

	// Currency defaults: INR conversion for the primary deployment.
	v.SetDefault("currency.code", "INR")
	v.SetDefault("currency.per_usd", 83.0)

	// Logging defaults
	v.SetDefault("logging.level", "info")
}
