// Package config builds the process-wide configuration from environment
// variables. The Config struct is constructed once at process entry and
// passed into components explicitly, so handlers stay testable without
// ambient global state.
package config

import (
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"

	"bucketlister/internal/utils"
)

// Config holds all application configuration.
type Config struct {
	// Core settings
	ServiceName string
	Environment string
	LogLevel    string

	// Platform selects the runtime adapter: "lambda" or "http"
	Platform string

	// BucketName is the bucket whose contents are listed. Absence is not a
	// startup failure; the handler answers 500 until it is configured.
	BucketName string

	// HandlerTimeout bounds a single request, 0 disables the bound
	HandlerTimeout time.Duration

	HTTP HTTPConfig
	AWS  AWSConfig
}

// HTTPConfig holds the local HTTP server configuration.
type HTTPConfig struct {
	Addr            string
	ReadTimeout     time.Duration
	ShutdownTimeout time.Duration
}

// AWSConfig holds AWS client configuration. Endpoint and static credentials
// are only used for local development against localstack or minio.
type AWSConfig struct {
	Region          string
	AccessKeyID     string
	SecretAccessKey string
	Endpoint        string
}

// Load reads configuration from .env files and the environment.
func Load() (*Config, error) {
	loadEnvFiles()

	cfg := parse()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return cfg, nil
}

// loadEnvFiles loads .env files for local development. Missing files are
// fine; on Lambda everything comes from real environment variables.
func loadEnvFiles() {
	_ = godotenv.Load(".env")

	if envFile := os.Getenv("ENV_FILE"); envFile != "" {
		_ = godotenv.Overload(envFile)
	}
}

// parse reads configuration from environment variables.
func parse() *Config {
	return &Config{
		ServiceName: utils.GetEnv("SERVICE_NAME", "bucketlister"),
		Environment: utils.GetEnv("ENVIRONMENT", "local"),
		LogLevel:    utils.GetEnv("LOG_LEVEL", "info"),

		Platform:   utils.GetEnv("PLATFORM", "lambda"),
		BucketName: utils.GetEnv("BUCKET_NAME", ""),

		HandlerTimeout: utils.GetEnvDuration("HANDLER_TIMEOUT", "30s"),

		HTTP: HTTPConfig{
			Addr:            utils.GetEnv("HTTP_ADDR", ":8080"),
			ReadTimeout:     utils.GetEnvDuration("HTTP_READ_TIMEOUT", "10s"),
			ShutdownTimeout: utils.GetEnvDuration("HTTP_SHUTDOWN_TIMEOUT", "15s"),
		},

		AWS: AWSConfig{
			Region:          utils.GetEnv("AWS_REGION", "us-east-1"),
			AccessKeyID:     utils.GetEnv("AWS_ACCESS_KEY_ID", ""),
			SecretAccessKey: utils.GetEnv("AWS_SECRET_ACCESS_KEY", ""),
			Endpoint:        utils.GetEnv("S3_ENDPOINT", ""),
		},
	}
}

// Validate checks configuration consistency.
func (c *Config) Validate() error {
	switch c.Platform {
	case "lambda", "http":
	default:
		return fmt.Errorf("unknown platform %q, expected lambda or http", c.Platform)
	}

	if c.Platform == "http" && c.HTTP.Addr == "" {
		return fmt.Errorf("HTTP_ADDR is required in http mode")
	}

	return nil
}
