package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the application
type Config struct {
	// Server settings
	Port string `json:"port"`
	Host string `json:"host"`

	// AI gateway settings
	GatewayAPIKey  string `json:"-"` // Don't expose in JSON
	GatewayModel   string `json:"gateway_model"`
	GatewayBaseURL string `json:"gateway_base_url"`

	// Outbound request timeout for the gateway call
	GatewayTimeout time.Duration `json:"gateway_timeout"`
}

// Load reads configuration from environment variables and .env file
func Load() (*Config, error) {
	// Load .env file if exists
	_ = godotenv.Load()

	config := &Config{
		Port:           getEnvOrDefault("PORT", "8080"),
		Host:           getEnvOrDefault("HOST", "0.0.0.0"),
		GatewayAPIKey:  getEnvOrDefault("GATEWAY_API_KEY", ""),
		GatewayModel:   getEnvOrDefault("GATEWAY_MODEL", "google/gemini-2.5-flash"),
		GatewayBaseURL: getEnvOrDefault("GATEWAY_BASE_URL", "https://ai.gateway.lovable.dev/v1"),
		GatewayTimeout: time.Duration(getEnvOrDefaultInt("GATEWAY_TIMEOUT_SECONDS", 60)) * time.Second,
	}

	return config, config.validate()
}

// validate checks if required configuration values are present
func (c *Config) validate() error {
	if c.GatewayAPIKey == "" {
		return &ConfigError{Field: "GATEWAY_API_KEY", Message: "AI gateway API key is required"}
	}
	return nil
}

// getEnvOrDefault returns environment variable value or default if not set
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvOrDefaultInt returns environment variable value as int or default if not set
func getEnvOrDefaultInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

// ConfigError represents a configuration error
type ConfigError struct {
	Field   string
	Message string
}

func (e *ConfigError) Error() string {
	return e.Field + ": " + e.Message
}
