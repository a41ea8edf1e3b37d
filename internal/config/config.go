// Package config loads the process-wide configuration from environment
// variables once at startup. The resulting struct is immutable and handed
// to every component that needs it through fx.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

type Config struct {
	DatabaseURL     string
	JWTSecret       string
	JWTAlgorithm    string
	TokenTTLMinutes int
	AppName         string
	Debug           bool
	Port            string
}

// TokenTTL returns the access token lifetime as a duration.
func (c *Config) TokenTTL() time.Duration {
	return time.Duration(c.TokenTTLMinutes) * time.Minute
}

func getRequiredEnv(key string, errs *[]string) string {
	value, exists := os.LookupEnv(key)
	if !exists {
		*errs = append(*errs, fmt.Sprintf("missing required environment variable: %s", key))
		return ""
	}
	return value
}

func getOptionalEnv(key string, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getOptionalEnvInt(key string, defaultValue int, errs *[]string) int {
	valueStr, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue
	}
	valueInt, err := strconv.Atoi(valueStr)
	if err != nil {
		*errs = append(*errs, fmt.Sprintf("invalid value for %s: expected integer, got '%s'", key, valueStr))
		return defaultValue
	}
	return valueInt
}

func getOptionalEnvBool(key string, defaultValue bool, errs *[]string) bool {
	valueStr, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue
	}
	valueBool, err := strconv.ParseBool(valueStr)
	if err != nil {
		*errs = append(*errs, fmt.Sprintf("invalid value for %s: expected boolean, got '%s'", key, valueStr))
		return defaultValue
	}
	return valueBool
}

// LoadConfig reads and validates all configuration from the environment.
// Errors are collected and reported together so a misconfigured deployment
// fails fast with the full list of problems.
func LoadConfig() (*Config, error) {
	var errs []string

	cfg := &Config{
		DatabaseURL:     getRequiredEnv("DATABASE_URL", &errs),
		JWTSecret:       getRequiredEnv("JWT_SECRET", &errs),
		JWTAlgorithm:    getOptionalEnv("JWT_ALGORITHM", "HS256"),
		TokenTTLMinutes: getOptionalEnvInt("ACCESS_TOKEN_EXPIRE_MINUTES", 30, &errs),
		AppName:         getOptionalEnv("APP_NAME", "Feedback Collector API"),
		Debug:           getOptionalEnvBool("DEBUG", false, &errs),
		Port:            getOptionalEnv("PORT", "8080"),
	}

	if cfg.TokenTTLMinutes <= 0 {
		errs = append(errs, "ACCESS_TOKEN_EXPIRE_MINUTES must be positive")
	}

	if len(errs) > 0 {
		return nil, fmt.Errorf("configuration errors:\n- %s", strings.Join(errs, "\n- "))
	}

	return cfg, nil
}
