package app

import (
	"errors"
	"os"
	"strconv"
	"time"
)

// ErrMissingJWTSecret aborts startup when no signing secret is configured.
// Tokens signed with a guessable default would make every account public.
var ErrMissingJWTSecret = errors.New("AUTH_JWT_SECRET is required")

type Config struct {
	JWTSecret string // Required: HS256 signing secret for session tokens
	Issuer    string // Optional: issuer claim for tokens (default: covercell-auth)

	DatabaseFile string // Optional: path to SQLite database file (default: ./covercell.db)

	BlobDriver string // Optional: attachment storage driver (disk, s3) (default: disk)
	UploadDir  string // Optional: root directory for the disk driver (default: ./uploads)

	S3Region       string // Required with s3 driver
	S3Bucket       string // Required with s3 driver
	S3AccessKey    string // Required with s3 driver
	S3SecretKey    string // Required with s3 driver
	S3BaseEndpoint string // Optional: custom endpoint for S3-compatible stores (MinIO)

	SeedAdminPassword    string // Optional: seed password for admin@covercell.com
	SeedOwnerPassword    string // Optional: seed password for shop@covercell.com
	SeedEmployeePassword string // Optional: seed password for employee@covercell.com

	Env                 string        // Environment (dev, staging, prod) (default: dev)
	LogLevel            string        // Log level (debug, info, warn, error) (default: info)
	LogFormat           string        // Log format (json, text) (default: json)
	Port                int           // HTTP server port (default: 8080)
	ShutdownGracePeriod time.Duration // Graceful shutdown timeout (default: 10s)
}

func LoadConfig() (Config, error) {
	cfg := Config{
		JWTSecret:    os.Getenv("AUTH_JWT_SECRET"),
		Issuer:       getEnvOrDefault("AUTH_ISSUER", "covercell-auth"),
		DatabaseFile: getEnvOrDefault("AUTH_DATABASE_FILE", "covercell.db"),

		BlobDriver: getEnvOrDefault("AUTH_BLOB_DRIVER", "disk"),
		UploadDir:  getEnvOrDefault("AUTH_UPLOAD_DIR", "uploads"),

		S3Region:       os.Getenv("AUTH_S3_REGION"),
		S3Bucket:       os.Getenv("AUTH_S3_BUCKET"),
		S3AccessKey:    os.Getenv("AUTH_S3_ACCESS_KEY"),
		S3SecretKey:    os.Getenv("AUTH_S3_SECRET_KEY"),
		S3BaseEndpoint: os.Getenv("AUTH_S3_ENDPOINT"),

		SeedAdminPassword:    os.Getenv("SEED_ADMIN_PASSWORD"),
		SeedOwnerPassword:    os.Getenv("SEED_OWNER_PASSWORD"),
		SeedEmployeePassword: os.Getenv("SEED_EMPLOYEE_PASSWORD"),

		Env:                 getEnvOrDefault("ENV", "dev"),
		LogLevel:            getEnvOrDefault("LOG_LEVEL", "info"),
		LogFormat:           getEnvOrDefault("LOG_FORMAT", "json"),
		Port:                getEnvIntOrDefault("PORT", 8080),
		ShutdownGracePeriod: getEnvDurationOrDefault("SHUTDOWN_GRACE_PERIOD", 10*time.Second),
	}

	if cfg.JWTSecret == "" {
		return Config{}, ErrMissingJWTSecret
	}

	return cfg, nil
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvIntOrDefault(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	if intValue, err := strconv.Atoi(value); err == nil {
		return intValue
	}

	return defaultValue
}

func getEnvDurationOrDefault(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	if duration, err := time.ParseDuration(value); err == nil {
		return duration
	}

	// Bare integers are read as seconds.
	if seconds, err := strconv.Atoi(value); err == nil {
		return time.Duration(seconds) * time.Second
	}

	return defaultValue
}
