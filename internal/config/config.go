// Package config carries the report sink settings for a run. Values come
// from the environment (with an optional .env file); command flags override
// them at the call site.
package config

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/pterm/pterm"
)

// Config holds the report destination settings.
type Config struct {
	// Local CSV output path.
	ReportPath string

	// Blob endpoint settings for HTTP PUT uploads.
	BlobURL   string
	BlobToken string

	// S3 upload settings.
	S3Bucket string
	S3Key    string
	S3Region string
}

// Load reads configuration from environment variables and an optional .env
// file in the working directory.
func Load() *Config {
	if err := godotenv.Load(); err != nil {
		pterm.Debug.Printfln("No .env file loaded: %v", err)
	}

	return &Config{
		ReportPath: os.Getenv("EXTINV_REPORT_PATH"),
		BlobURL:    os.Getenv("EXTINV_BLOB_URL"),
		BlobToken:  os.Getenv("EXTINV_BLOB_TOKEN"),
		S3Bucket:   os.Getenv("EXTINV_S3_BUCKET"),
		S3Key:      getEnvOrDefault("EXTINV_S3_KEY", "extension-inventory.csv"),
		S3Region:   os.Getenv("EXTINV_S3_REGION"),
	}
}

func getEnvOrDefault(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}
