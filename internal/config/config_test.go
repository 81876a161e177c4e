package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("EXTINV_REPORT_PATH", "")
	t.Setenv("EXTINV_BLOB_URL", "")
	t.Setenv("EXTINV_S3_BUCKET", "")
	t.Setenv("EXTINV_S3_KEY", "")

	cfg := Load()
	assert.Empty(t, cfg.ReportPath)
	assert.Empty(t, cfg.BlobURL)
	assert.Empty(t, cfg.S3Bucket)
	assert.Equal(t, "extension-inventory.csv", cfg.S3Key)
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("EXTINV_REPORT_PATH", "/tmp/report.csv")
	t.Setenv("EXTINV_BLOB_URL", "https://example.blob.core.windows.net/reports/a.csv?sig=x")
	t.Setenv("EXTINV_BLOB_TOKEN", "tok")
	t.Setenv("EXTINV_S3_BUCKET", "inventory-bucket")
	t.Setenv("EXTINV_S3_KEY", "custom.csv")
	t.Setenv("EXTINV_S3_REGION", "eu-north-1")

	cfg := Load()
	assert.Equal(t, "/tmp/report.csv", cfg.ReportPath)
	assert.Equal(t, "https://example.blob.core.windows.net/reports/a.csv?sig=x", cfg.BlobURL)
	assert.Equal(t, "tok", cfg.BlobToken)
	assert.Equal(t, "inventory-bucket", cfg.S3Bucket)
	assert.Equal(t, "custom.csv", cfg.S3Key)
	assert.Equal(t, "eu-north-1", cfg.S3Region)
}
