package config

import (
	"log/slog"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	// Application
	AppName     string
	AppEnv      string
	AppURL      string
	Port        string
	AppTagline  string
	ContentPath string

	// Notion
	NotionToken      string
	NotionDatabaseID string
	NotionAPIURL     string
	NotionVersion    string
	NotionRPS        float64       // Requests per second towards the Notion API
	NotionTimeout    time.Duration // Per request timeout, 0 disables

	// Rate limiting of page requests (each page view hits Notion)
	RateLimitRequests int
	RateLimitWindow   time.Duration

	// Observability (optional)
	SentryDSN string
}

func Load() *Config {
	loaded := loadDotEnv()
	if len(loaded) == 0 {
		slog.Info("no .env file found, using environment variables")
	}

	cfg := &Config{
		// Application
		AppName:     envString("APP_NAME", "Notion Blog"),
		AppEnv:      envString("APP_ENV", "development"),
		AppURL:      envString("APP_URL", "http://localhost:8090"),
		Port:        envString("PORT", "8090"),
		AppTagline:  envString("APP_TAGLINE", "개발과 일상을 기록합니다"),
		ContentPath: envString("CONTENT_PATH", "content"),

		// Notion (checked per request, see repository.ConfigurationError)
		NotionToken:      envString("NOTION_TOKEN", ""),
		NotionDatabaseID: envString("NOTION_DATABASE_ID", ""),
		NotionAPIURL:     envString("NOTION_API_URL", "https://api.notion.com"),
		NotionVersion:    envString("NOTION_VERSION", "2022-06-28"),
		NotionRPS:        envFloat("NOTION_RPS", 3),
		NotionTimeout:    envDuration("NOTION_TIMEOUT", 0),

		// Rate limiting
		RateLimitRequests: envInt("RATE_LIMIT_REQUESTS", 60),
		RateLimitWindow:   envDuration("RATE_LIMIT_WINDOW", time.Minute),

		// Observability
		SentryDSN: envString("SENTRY_DSN", ""),
	}

	if cfg.NotionToken == "" || cfg.NotionDatabaseID == "" {
		slog.Warn("notion is not configured, post lists will render empty",
			"has_token", cfg.NotionToken != "",
			"has_database_id", cfg.NotionDatabaseID != "",
		)
	}

	return cfg
}

// loadDotEnv loads .env.local then .env. godotenv never overrides variables
// that are already set, so the OS environment wins, then .env.local.
func loadDotEnv() []string {
	var loaded []string
	for _, f := range []string{".env.local", ".env"} {
		_, err := os.Stat(f)
		if err == nil {
			loaded = append(loaded, f)
		}
	}
	if len(loaded) > 0 {
		err := godotenv.Load(loaded...)
		if err != nil {
			slog.Warn("failed to load env files", "files", loaded, "error", err)
		}
	}
	return loaded
}

func envString(key, def string) string {
	value := os.Getenv(key)
	if value == "" {
		value = def
	}
	return value
}

func envInt(key string, def int) int {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		return def
	}
	i, err := strconv.Atoi(v)
	if err != nil {
		slog.Warn("config invalid int, using default", "key", key, "value", v, "default", def)
		return def
	}
	return i
}

func envFloat(key string, def float64) float64 {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		return def
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		slog.Warn("config invalid float, using default", "key", key, "value", v, "default", def)
		return def
	}
	return f
}

func envDuration(key string, def time.Duration) time.Duration {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		return def
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		slog.Warn("config invalid duration, using default", "key", key, "value", v, "default", def)
		return def
	}
	return d
}

func (c *Config) IsDevelopment() bool {
	return c.AppEnv == "development"
}

func (c *Config) IsProduction() bool {
	return c.AppEnv == "production"
}

// Sanitized returns a copy of the config with only public/safe fields.
// Safe to expose in ctx, templates and client-facing contexts.
func (c *Config) Sanitized() *Config {
	return &Config{
		AppName:    c.AppName,
		AppEnv:     c.AppEnv,
		AppURL:     c.AppURL,
		Port:       c.Port,
		AppTagline: c.AppTagline,
	}
}
