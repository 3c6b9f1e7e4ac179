package server

import (
	"os"
	"strconv"
)

// Config holds the HTTP shell configuration, loaded from environment
// variables with sensible defaults for local use.
type Config struct {
	// ListenAddr is the address the HTTP server binds to.
	ListenAddr string

	// UploadDir holds uploaded PDFs while their jobs run.
	UploadDir string

	// Workers is the number of concurrent document workers. Each
	// document is processed end to end by one worker.
	Workers int

	// BodyLimitMB caps upload size in megabytes.
	BodyLimitMB int

	// Preview enables per-sheet overlay rendering.
	Preview bool

	// PreviewWidth bounds the preview image width in pixels.
	PreviewWidth int
}

// LoadConfig reads configuration from the environment.
func LoadConfig() *Config {
	return &Config{
		ListenAddr:   getEnv("LISTEN_ADDR", ":8000"),
		UploadDir:    getEnv("UPLOAD_DIR", "temp_uploads"),
		Workers:      getEnvAsInt("WORKERS", 2),
		BodyLimitMB:  getEnvAsInt("BODY_LIMIT_MB", 200),
		Preview:      getEnvAsBool("PREVIEW", true),
		PreviewWidth: getEnvAsInt("PREVIEW_WIDTH", 1200),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolVal, err := strconv.ParseBool(value); err == nil {
			return boolVal
		}
	}
	return defaultValue
}
