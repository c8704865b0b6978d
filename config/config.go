package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Helper function to get environment variable with fallback default value
func GetEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

// Helper function to get environment variable as integer with fallback
func GetEnvAsInt(key string, fallback int) int {
	valueStr := GetEnv(key, "")
	if value, err := strconv.Atoi(valueStr); err == nil {
		return value
	}
	return fallback
}

func GetEnvAsDuration(key string, fallback time.Duration) time.Duration {
	valueStr := GetEnv(key, "")
	if value, err := time.ParseDuration(valueStr); err == nil {
		return value
	}
	return fallback
}

// Validate checks every section before the server starts.
func Validate() error {
	if err := ValidateDatabaseConfig(); err != nil {
		return fmt.Errorf("database configuration: %w", err)
	}
	if err := ValidateJWTConfig(); err != nil {
		return fmt.Errorf("jwt configuration: %w", err)
	}
	if err := ValidateStorageConfig(); err != nil {
		return fmt.Errorf("storage configuration: %w", err)
	}
	return nil
}

func missingEnv(keys ...string) error {
	var missing []string
	for _, key := range keys {
		if strings.TrimSpace(os.Getenv(key)) == "" {
			missing = append(missing, key)
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("missing required environment variables: %s", strings.Join(missing, ", "))
	}
	return nil
}

func ValidateDatabaseConfig() error {
	if err := missingEnv("DB_HOST", "DB_PORT", "DB_USER", "DB_NAME"); err != nil {
		return err
	}
	if port, err := strconv.Atoi(os.Getenv("DB_PORT")); err != nil || port <= 0 {
		return fmt.Errorf("DB_PORT must be a positive integer")
	}
	return nil
}

func ValidateJWTConfig() error {
	if err := missingEnv("JWT_SECRET"); err != nil {
		return err
	}
	if ttl := strings.TrimSpace(os.Getenv("JWT_TTL")); ttl != "" {
		if _, err := time.ParseDuration(ttl); err != nil {
			return fmt.Errorf("invalid JWT_TTL value %q: %w", ttl, err)
		}
	}
	return nil
}

func ValidateStorageConfig() error {
	switch driver := GetEnv("STORAGE_DRIVER", StorageLocal); driver {
	case StorageLocal:
		return nil
	case StorageS3:
		return missingEnv("AWS_REGION", "AWS_S3_BUCKET")
	default:
		return fmt.Errorf("unknown STORAGE_DRIVER %q", driver)
	}
}
