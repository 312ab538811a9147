// Package config provides configuration management using the Singleton
// pattern. It loads configuration from environment variables and config.yaml
// using Viper.
package config

import (
	"fmt"
	"sync"

	"github.com/SaranSelva18/CarDiagnosis/internal/diagnose"
	"github.com/SaranSelva18/CarDiagnosis/internal/media"
)

// Configuration holds all application configuration values.
type Configuration struct {
	// Server configuration
	Server ServerConfig `json:"server" mapstructure:"server"`

	// Gemini API configuration
	Gemini GeminiConfig `json:"gemini" mapstructure:"gemini"`

	// Limits caps uploaded media sizes per kind.
	Limits media.Limits `json:"limits" mapstructure:"limits"`

	// Cache configuration
	Cache CacheConfig `json:"cache" mapstructure:"cache"`

	// Currency is the secondary-currency conversion applied to estimates.
	Currency diagnose.Rate `json:"currency" mapstructure:"currency"`

	// Logging configuration
	Logging LoggingConfig `json:"logging" mapstructure:"logging"`
}

// ServerConfig holds server-specific configuration.
type ServerConfig struct {
	// Host is the server bind address.
	Host string `json:"host" mapstructure:"host"`

	// Port is the server port number.
	Port int `json:"port" mapstructure:"port"`

	// ReadTimeoutSeconds is the maximum duration for reading a request.
	// Media uploads take a while, so this is larger than usual.
	ReadTimeoutSeconds int `json:"read_timeout_seconds" mapstructure:"read_timeout_seconds"`

	// WriteTimeoutSeconds is the maximum duration for writing a response.
	WriteTimeoutSeconds int `json:"write_timeout_seconds" mapstructure:"write_timeout_seconds"`

	// ShutdownTimeoutSeconds is how long to wait for in-flight requests
	// during graceful shutdown.
	ShutdownTimeoutSeconds int `json:"shutdown_timeout_seconds" mapstructure:"shutdown_timeout_seconds"`
}

// GeminiConfig holds the generative-language API settings.
type GeminiConfig struct {
	// APIKey authenticates against the API. Loaded from the
	// GEMINI_API_KEY environment variable in preference to any file.
	APIKey string `json:"-" mapstructure:"api_key"`

	// Model is the model identifier, e.g. gemini-1.5-flash.
	Model string `json:"model" mapstructure:"model"`

	// BaseURL overrides the API endpoint, primarily for tests.
	BaseURL string `json:"base_url" mapstructure:"base_url"`

	// TimeoutSeconds bounds one generateContent round trip.
	TimeoutSeconds int `json:"timeout_seconds" mapstructure:"timeout_seconds"`
}

// CacheConfig holds the diagnosis response cache settings.
type CacheConfig struct {
	// Enabled toggles the cache.
	Enabled bool `json:"enabled" mapstructure:"enabled"`

	// TTLSeconds is how long a cached diagnosis stays valid.
	TTLSeconds int `json:"ttl_seconds" mapstructure:"ttl_seconds"`
}

// LoggingConfig holds logging configuration.
type LoggingConfig struct {
	// Level is the minimum log level (debug, info, warn, error).
	Level string `json:"level" mapstructure:"level"`
}

// configInstance holds the singleton configuration instance.
var (
	configInstance *Configuration
	configOnce     sync.Once
	configErr      error
)

// GetConfig returns the singleton Configuration instance, loading it on
// first call from the default search paths.
func GetConfig() (*Configuration, error) {
	configOnce.Do(func() {
		configInstance, configErr = loadConfig("")
	})
	return configInstance, configErr
}

// GetConfigWithPath is GetConfig with an explicit config file path.
func GetConfigWithPath(configPath string) (*Configuration, error) {
	configOnce.Do(func() {
		configInstance, configErr = loadConfig(configPath)
	})
	return configInstance, configErr
}

// ResetConfig resets the singleton instance. Testing only.
func ResetConfig() {
	configOnce = sync.Once{}
	configInstance = nil
	configErr = nil
}

// Validate returns an error if required fields are missing or out of range.
func (c *Configuration) Validate() error {
	var validationErrors []string

	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		validationErrors = append(validationErrors, "server.port must be between 1 and 65535")
	}

	if c.Gemini.APIKey == "" {
		validationErrors = append(validationErrors, "gemini.api_key is required, set the GEMINI_API_KEY environment variable")
	}
	if c.Gemini.Model == "" {
		validationErrors = append(validationErrors, "gemini.model is required")
	}
	if c.Gemini.TimeoutSeconds <= 0 {
		validationErrors = append(validationErrors, "gemini.timeout_seconds must be positive")
	}

	if c.Limits.MaxImageBytes <= 0 || c.Limits.MaxVideoBytes <= 0 || c.Limits.MaxSoundBytes <= 0 {
		validationErrors = append(validationErrors, "limits must be positive byte counts")
	}

	if c.Cache.Enabled && c.Cache.TTLSeconds <= 0 {
		validationErrors = append(validationErrors, "cache.ttl_seconds must be positive when the cache is enabled")
	}

	if c.Currency.PerUSD < 0 {
		validationErrors = append(validationErrors, "currency.per_usd cannot be negative")
	}
	if c.Currency.PerUSD > 0 && c.Currency.Code == "" {
		validationErrors = append(validationErrors, "currency.code is required when currency.per_usd is set")
	}

	if c.Logging.Level != "" && !isValidLogLevel(c.Logging.Level) {
		validationErrors = append(validationErrors, fmt.Sprintf(
			"logging.level '%s' is invalid, must be one of: debug, info, warn, error",
			c.Logging.Level,
		))
	}

	if len(validationErrors) > 0 {
		return &ValidationError{Errors: validationErrors}
	}

	return nil
}

// isValidLogLevel checks if the log level is valid.
func isValidLogLevel(level string) bool {
	switch level {
	case "debug", "info", "warn", "error":
		return true
	default:
		return false
	}
}
