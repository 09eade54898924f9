// Package config provides application configuration through environment variables.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/allisson/go-env"
	"github.com/joho/godotenv"
)

// Config holds all application configuration.
type Config struct {
	// ServerHost is the host address the server will bind to.
	ServerHost string
	// ServerPort is the port number the server will listen on.
	ServerPort int

	// ProjectID is the cloud project that owns the KMS keyring.
	ProjectID string
	// Chest is the chest name, which doubles as the crypto key name.
	// When empty it defaults to ProjectID.
	Chest string
	// Bucket is the object store bucket that holds the encrypted secrets.
	Bucket string
	// Location is the KMS location for the keyring.
	Location string
	// Keyring is the KMS keyring that holds the chest keys.
	Keyring string

	// KMSScheme selects the key management driver (e.g., "gcpkms", "awskms",
	// "azurekeyvault", "hashivault", "base64key").
	KMSScheme string
	// StorageScheme selects the object store driver (e.g., "gs", "s3",
	// "azblob", "file", "mem").
	StorageScheme string

	// LogLevel is the logging level (e.g., "debug", "info", "warn", "error").
	LogLevel string

	// RateLimitEnabled indicates whether IP-based rate limiting is enabled.
	RateLimitEnabled bool
	// RateLimitRequestsPerSec is the number of requests allowed per second per client.
	RateLimitRequestsPerSec float64
	// RateLimitBurst is the burst size for rate limiting.
	RateLimitBurst int

	// CORSEnabled indicates whether CORS is enabled.
	CORSEnabled bool
	// CORSAllowOrigins is a comma-separated list of allowed origins for CORS.
	CORSAllowOrigins string

	// MetricsEnabled indicates whether metrics collection is enabled.
	MetricsEnabled bool
	// MetricsNamespace is the namespace for the application metrics.
	MetricsNamespace string
	// MetricsPort is the port number for the metrics server.
	MetricsPort int
}

// Load loads configuration from environment variables and .env file.
func Load() *Config {
	// Try to load .env file recursively
	loadDotEnv()

	return &Config{
		// Server configuration
		ServerHost: env.GetString("SERVER_HOST", "0.0.0.0"),
		ServerPort: env.GetInt("SERVER_PORT", 8080),

		// Chest identity
		ProjectID: env.GetString("ALETHEIA_PROJECT_ID", ""),
		Chest:     env.GetString("ALETHEIA_CHEST", ""),
		Bucket:    env.GetString("ALETHEIA_BUCKET", ""),
		Location:  env.GetString("ALETHEIA_LOCATION", "global"),
		Keyring:   env.GetString("ALETHEIA_KEYRING", "aletheia"),

		// Driver selection
		KMSScheme:     env.GetString("ALETHEIA_KMS_SCHEME", "gcpkms"),
		StorageScheme: env.GetString("ALETHEIA_STORAGE_SCHEME", "gs"),

		// Logging
		LogLevel: env.GetString("LOG_LEVEL", "info"),

		// Rate Limiting (IP-based)
		RateLimitEnabled:        env.GetBool("RATE_LIMIT_ENABLED", true),
		RateLimitRequestsPerSec: env.GetFloat64("RATE_LIMIT_REQUESTS_PER_SEC", 10.0),
		RateLimitBurst:          env.GetInt("RATE_LIMIT_BURST", 20),

		// CORS
		CORSEnabled:      env.GetBool("CORS_ENABLED", false),
		CORSAllowOrigins: env.GetString("CORS_ALLOW_ORIGINS", ""),

		// Metrics
		MetricsEnabled:   env.GetBool("METRICS_ENABLED", true),
		MetricsNamespace: env.GetString("METRICS_NAMESPACE", "aletheia"),
		MetricsPort:      env.GetInt("METRICS_PORT", 8081),
	}
}

// ChestName returns the configured chest name, falling back to the project id.
func (c *Config) ChestName() string {
	if c.Chest != "" {
		return c.Chest
	}
	return c.ProjectID
}

// BucketURL returns the gocloud.dev URL for the configured bucket.
func (c *Config) BucketURL() string {
	return fmt.Sprintf("%s://%s", c.StorageScheme, c.Bucket)
}

// GetGinMode returns the appropriate Gin mode based on log level.
func (c *Config) GetGinMode() string {
	switch c.LogLevel {
	case "debug":
		return "debug"
	case "info", "warn", "error":
		return "release"
	default:
		return "release"
	}
}

// loadDotEnv searches for a .env file recursively from the current directory
// up to the root directory and loads it if found.
func loadDotEnv() {
	// Get current working directory
	cwd, err := os.Getwd()
	if err != nil {
		return
	}

	// Search for .env file recursively up the directory tree
	dir := cwd
	for {
		envPath := filepath.Join(dir, ".env")
		if _, err := os.Stat(envPath); err == nil {
			// .env file found, load it
			_ = godotenv.Load(envPath)
			return
		}

		// Move to parent directory
		parent := filepath.Dir(dir)
		if parent == dir {
			// Reached root directory
			break
		}
		dir = parent
	}
}
