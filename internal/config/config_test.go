package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoad_Defaults(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("NOTION_TOKEN", "")
	t.Setenv("NOTION_DATABASE_ID", "")
	t.Setenv("APP_ENV", "")
	t.Setenv("NOTION_RPS", "")
	t.Setenv("NOTION_TIMEOUT", "")

	cfg := Load()

	assert.Equal(t, "development", cfg.AppEnv)
	assert.True(t, cfg.IsDevelopment())
	assert.Equal(t, "https://api.notion.com", cfg.NotionAPIURL)
	assert.Equal(t, 3.0, cfg.NotionRPS)
	assert.Zero(t, cfg.NotionTimeout)
	assert.Empty(t, cfg.NotionToken)
}

func TestLoad_FromEnvironment(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("APP_ENV", "production")
	t.Setenv("NOTION_TOKEN", "secret_abc")
	t.Setenv("NOTION_DATABASE_ID", "db")
	t.Setenv("NOTION_RPS", "1.5")
	t.Setenv("NOTION_TIMEOUT", "20s")
	t.Setenv("RATE_LIMIT_REQUESTS", "10")

	cfg := Load()

	assert.True(t, cfg.IsProduction())
	assert.Equal(t, "secret_abc", cfg.NotionToken)
	assert.Equal(t, 1.5, cfg.NotionRPS)
	assert.Equal(t, 20*time.Second, cfg.NotionTimeout)
	assert.Equal(t, 10, cfg.RateLimitRequests)
}

func TestSanitized_DropsSecrets(t *testing.T) {
	cfg := &Config{
		AppName:          "Blog",
		NotionToken:      "secret",
		NotionDatabaseID: "db",
		SentryDSN:        "https://key@sentry.io/1",
	}

	safe := cfg.Sanitized()

	assert.Equal(t, "Blog", safe.AppName)
	assert.Empty(t, safe.NotionToken)
	assert.Empty(t, safe.NotionDatabaseID)
	assert.Empty(t, safe.SentryDSN)
}
