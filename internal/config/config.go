package config

import (
	"fmt"
	"os"

	"wordswap/internal/domain"

	"github.com/joho/godotenv"
)

// Dictionary sources
const (
	SourceBuiltin  = "builtin"
	SourcePostgres = "postgres"
)

// Config holds all application configuration
type Config struct {
	HTTPAddr          string
	CORSAllowedOrigin string
	BotToken          string
	DefaultLangPair   domain.LanguagePair
	ReorderMode       domain.ReorderMode
	DictionarySource  string
	Database          DatabaseConfig
}

// DatabaseConfig holds database connection settings
type DatabaseConfig struct {
	Host     string
	Port     string
	Name     string
	User     string
	Password string
}

// Load reads configuration from environment variables
func Load() (*Config, error) {
	// Try to load .env file (ignore error if not exists)
	_ = godotenv.Load()

	cfg := &Config{
		HTTPAddr:          getEnv("HTTP_ADDR", ":5000"),
		CORSAllowedOrigin: getEnv("CORS_ALLOWED_ORIGIN", "*"),
		BotToken:          os.Getenv("BOT_TOKEN"),
		DefaultLangPair:   domain.LanguagePair(getEnv("DEFAULT_LANG_PAIR", string(domain.PairEnglishTamil))),
		ReorderMode:       domain.ReorderMode(getEnv("REORDER_MODE", string(domain.ReorderLiteral))),
		DictionarySource:  getEnv("DICTIONARY_SOURCE", SourceBuiltin),
		Database: DatabaseConfig{
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnv("DB_PORT", "5432"),
			Name:     getEnv("DB_NAME", "wordswap"),
			User:     getEnv("DB_USER", "wordswap"),
			Password: os.Getenv("DB_PASSWORD"),
		},
	}

	// Validate
	if cfg.ReorderMode != domain.ReorderLiteral && cfg.ReorderMode != domain.ReorderTagged {
		return nil, fmt.Errorf("REORDER_MODE must be %q or %q, got %q", domain.ReorderLiteral, domain.ReorderTagged, cfg.ReorderMode)
	}
	if cfg.DictionarySource != SourceBuiltin && cfg.DictionarySource != SourcePostgres {
		return nil, fmt.Errorf("DICTIONARY_SOURCE must be %q or %q, got %q", SourceBuiltin, SourcePostgres, cfg.DictionarySource)
	}
	if cfg.NeedsDatabase() && cfg.Database.Password == "" {
		return nil, fmt.Errorf("DB_PASSWORD is required when the bot or the postgres dictionary source is enabled")
	}

	return cfg, nil
}

// BotEnabled reports whether the Telegram bot should run
func (c *Config) BotEnabled() bool {
	return c.BotToken != ""
}

// NeedsDatabase reports whether any enabled component stores data in PostgreSQL
func (c *Config) NeedsDatabase() bool {
	return c.BotEnabled() || c.DictionarySource == SourcePostgres
}

// DSN returns PostgreSQL connection string
func (c *Config) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		c.Database.Host,
		c.Database.Port,
		c.Database.User,
		c.Database.Password,
		c.Database.Name,
	)
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
