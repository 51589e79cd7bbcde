// Package config loads and validates application configuration from environment variables.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/pkordes/startrek-travel/internal/gateway"
	"github.com/pkordes/startrek-travel/internal/storage"
)

// Config holds all configuration values for the site.
// Values are populated by Load from environment variables.
type Config struct {
	// Port is the TCP port the HTTP server listens on. Defaults to "8080".
	Port string

	// LogLevel controls the minimum log level. Defaults to "info".
	// Valid values: debug, info, warn, error.
	LogLevel string

	// LogFormat is "json" (default) or "text" for colourised local output.
	LogFormat string

	// CORSOrigins is the list of origins allowed to call /api.
	// Defaults to ["http://localhost:8080"].
	CORSOrigins []string

	// Gateway holds the hosted store and bucket settings. Leaving either
	// half empty runs the site in demo mode.
	Gateway gateway.Settings

	// AdminUser and AdminPassword protect /admin with basic auth when
	// AdminPassword is set. AdminUser defaults to "admin".
	AdminUser     string
	AdminPassword string

	// MaxUploadBytes caps request bodies on the admin upload route.
	// Defaults to 10 MiB.
	MaxUploadBytes int64
}

// Load reads configuration from environment variables and returns a Config.
// Missing store or storage settings are not an error; malformed values are.
func Load() (Config, error) {
	cfg := Config{
		Port:        getEnv("PORT", "8080"),
		LogLevel:    getEnv("LOG_LEVEL", "info"),
		LogFormat:   getEnv("LOG_FORMAT", "json"),
		CORSOrigins: splitCSV(getEnv("CORS_ORIGINS", "http://localhost:8080")),
		Gateway: gateway.Settings{
			DatabaseURL: os.Getenv("DATABASE_URL"),
			Storage: storage.Settings{
				Endpoint:        os.Getenv("STORAGE_ENDPOINT"),
				Region:          getEnv("STORAGE_REGION", "us-east-1"),
				AccessKeyID:     os.Getenv("STORAGE_ACCESS_KEY_ID"),
				SecretAccessKey: os.Getenv("STORAGE_SECRET_ACCESS_KEY"),
				Bucket:          getEnv("STORAGE_BUCKET", storage.DefaultBucket),
				PublicBaseURL:   os.Getenv("STORAGE_PUBLIC_URL"),
			},
		},
		AdminUser:     getEnv("ADMIN_USER", "admin"),
		AdminPassword: os.Getenv("ADMIN_PASSWORD"),
	}

	var problems []string

	maxUpload, err := strconv.ParseInt(getEnv("MAX_UPLOAD_BYTES", "10485760"), 10, 64)
	if err != nil || maxUpload <= 0 {
		problems = append(problems, "MAX_UPLOAD_BYTES must be a positive integer")
	}
	cfg.MaxUploadBytes = maxUpload

	switch cfg.LogFormat {
	case "json", "text":
	default:
		problems = append(problems, "LOG_FORMAT must be json or text")
	}

	st := cfg.Gateway.Storage
	if (st.AccessKeyID == "") != (st.SecretAccessKey == "") {
		problems = append(problems, "STORAGE_ACCESS_KEY_ID and STORAGE_SECRET_ACCESS_KEY must be set together")
	}

	if len(problems) > 0 {
		return Config{}, fmt.Errorf("invalid configuration: %s", strings.Join(problems, "; "))
	}

	return cfg, nil
}

// getEnv returns the value of the environment variable named by key,
// or fallback if the variable is not set or is empty.
func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// splitCSV splits a comma-separated string into a trimmed slice, ignoring empty entries.
func splitCSV(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if t := strings.TrimSpace(part); t != "" {
			out = append(out, t)
		}
	}
	return out
}
