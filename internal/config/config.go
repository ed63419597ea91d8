package config

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/joho/godotenv"
)

// Config holds all process configuration, read once at startup.
type Config struct {
	Port         string
	DatabasePath string
	SecretKey    string
	CookieSecure bool

	SMTPHost    string
	SMTPPort    string
	MailAddress string
	MailAppPW   string
}

// Load reads configuration from the environment, after loading a .env file
// when one is present. SECRET_KEY is required and must be long enough for
// HMAC-SHA256.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		slog.Info(".env file not found, using environment")
	}

	cfg := &Config{
		Port:         envOrDefault("PORT", "8080"),
		DatabasePath: envOrDefault("DATABASE_PATH", "blogify.db"),
		SecretKey:    os.Getenv("SECRET_KEY"),
		// Default to secure cookies; disable only for local development.
		CookieSecure: os.Getenv("COOKIE_SECURE") != "false",
		SMTPHost:     envOrDefault("SMTP_HOST", "smtp.gmail.com"),
		SMTPPort:     envOrDefault("SMTP_PORT", "587"),
		MailAddress:  os.Getenv("MAIL_ADDRESS"),
		MailAppPW:    os.Getenv("MAIL_APP_PASSWORD"),
	}

	if cfg.SecretKey == "" {
		return nil, fmt.Errorf("SECRET_KEY environment variable is required")
	}
	if len(cfg.SecretKey) < 32 {
		return nil, fmt.Errorf("SECRET_KEY must be at least 32 characters")
	}

	return cfg, nil
}

func envOrDefault(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}
