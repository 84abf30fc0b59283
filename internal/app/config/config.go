package config

import (
	"log/slog"
	"os"

	"github.com/joho/godotenv"

	"quotedesk/go_backend/internal/domain/settings"
)

type Config struct {
	HTTPAddr        string
	LocalDBPath     string
	DatabaseURL     string
	InternalToken   string
	CORSAllowOrigin string
	LogLevel        string
	Issuer          string

	// Seed settings, used only until settings are saved locally.
	WebhookURL  string
	SupabaseURL string
	SupabaseKey string
}

// MustLoad reads .env when present, then the process environment.
func MustLoad() Config {
	if err := godotenv.Load(); err != nil {
		slog.Debug("no .env file, using process environment")
	}
	return Config{
		HTTPAddr:        env("HTTP_ADDR", ":8080"),
		LocalDBPath:     env("LOCAL_DB_PATH", "quoting.db"),
		DatabaseURL:     env("DATABASE_URL", ""),
		InternalToken:   env("INTERNAL_TOKEN", ""),
		CORSAllowOrigin: env("CORS_ALLOW_ORIGIN", "*"),
		LogLevel:        env("LOG_LEVEL", "INFO"),
		Issuer:          env("QUOTE_ISSUER", ""),
		WebhookURL:      env("WEBHOOK_URL", ""),
		SupabaseURL:     env("SUPABASE_URL", ""),
		SupabaseKey:     env("SUPABASE_KEY", ""),
	}
}

// SeedSettings returns the settings used when none are stored.
func (c Config) SeedSettings() settings.Settings {
	return settings.Settings{
		WebhookURL: c.WebhookURL,
		RemoteURL:  c.SupabaseURL,
		RemoteKey:  c.SupabaseKey,
	}.Normalize()
}

func env(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
