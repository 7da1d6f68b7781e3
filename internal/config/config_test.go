package config

import (
	"os"
	"testing"

	"wordswap/internal/domain"

	"github.com/stretchr/testify/assert"
)

var envKeys = []string{
	"HTTP_ADDR", "CORS_ALLOWED_ORIGIN", "BOT_TOKEN", "DEFAULT_LANG_PAIR",
	"REORDER_MODE", "DICTIONARY_SOURCE",
	"DB_HOST", "DB_PORT", "DB_NAME", "DB_USER", "DB_PASSWORD",
}

// clearEnv unsets every config variable and restores the originals after the test
func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range envKeys {
		original, ok := os.LookupEnv(key)
		os.Unsetenv(key)
		key := key
		t.Cleanup(func() {
			if ok {
				os.Setenv(key, original)
			} else {
				os.Unsetenv(key)
			}
		})
	}
}

func TestGetEnv(t *testing.T) {
	tests := []struct {
		name         string
		key          string
		defaultValue string
		setEnv       bool
		envValue     string
		expected     string
	}{
		{
			name:         "env variable set",
			key:          "TEST_KEY",
			defaultValue: "default",
			setEnv:       true,
			envValue:     "custom",
			expected:     "custom",
		},
		{
			name:         "env variable not set",
			key:          "TEST_KEY_NOT_SET",
			defaultValue: "default",
			setEnv:       false,
			expected:     "default",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.setEnv {
				os.Setenv(tt.key, tt.envValue)
				defer os.Unsetenv(tt.key)
			}

			result := getEnv(tt.key, tt.defaultValue)
			assert.Equal(t, tt.expected, result)
		})
	}
}

func TestConfig_DSN(t *testing.T) {
	cfg := &Config{
		Database: DatabaseConfig{
			Host:     "localhost",
			Port:     "5432",
			User:     "testuser",
			Password: "testpass",
			Name:     "testdb",
		},
	}

	dsn := cfg.DSN()
	expected := "host=localhost port=5432 user=testuser password=testpass dbname=testdb sslmode=disable"
	assert.Equal(t, expected, dsn)
}

func TestLoad_WithDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load()
	assert.NoError(t, err)
	assert.NotNil(t, cfg)
	assert.Equal(t, ":5000", cfg.HTTPAddr)
	assert.Equal(t, "*", cfg.CORSAllowedOrigin)
	assert.Equal(t, domain.PairEnglishTamil, cfg.DefaultLangPair)
	assert.Equal(t, domain.ReorderLiteral, cfg.ReorderMode)
	assert.Equal(t, SourceBuiltin, cfg.DictionarySource)
	assert.Equal(t, "localhost", cfg.Database.Host)
	assert.Equal(t, "5432", cfg.Database.Port)
	assert.Equal(t, "wordswap", cfg.Database.Name)
	assert.Equal(t, "wordswap", cfg.Database.User)
	assert.False(t, cfg.BotEnabled())
	assert.False(t, cfg.NeedsDatabase())
}

func TestLoad_CustomValues(t *testing.T) {
	clearEnv(t)

	os.Setenv("HTTP_ADDR", ":8080")
	os.Setenv("DEFAULT_LANG_PAIR", "en_hi")
	os.Setenv("REORDER_MODE", "tagged")
	os.Setenv("DICTIONARY_SOURCE", "postgres")
	os.Setenv("BOT_TOKEN", "test_token")
	os.Setenv("DB_PASSWORD", "test_db_password")

	cfg, err := Load()
	assert.NoError(t, err)
	assert.Equal(t, ":8080", cfg.HTTPAddr)
	assert.Equal(t, domain.PairEnglishHindi, cfg.DefaultLangPair)
	assert.Equal(t, domain.ReorderTagged, cfg.ReorderMode)
	assert.Equal(t, SourcePostgres, cfg.DictionarySource)
	assert.True(t, cfg.BotEnabled())
	assert.True(t, cfg.NeedsDatabase())
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name        string
		env         map[string]string
		errContains string
	}{
		{
			name:        "unknown reorder mode",
			env:         map[string]string{"REORDER_MODE": "greedy"},
			errContains: "REORDER_MODE",
		},
		{
			name:        "unknown dictionary source",
			env:         map[string]string{"DICTIONARY_SOURCE": "redis"},
			errContains: "DICTIONARY_SOURCE",
		},
		{
			name:        "bot without database password",
			env:         map[string]string{"BOT_TOKEN": "test_token"},
			errContains: "DB_PASSWORD",
		},
		{
			name:        "postgres source without database password",
			env:         map[string]string{"DICTIONARY_SOURCE": "postgres"},
			errContains: "DB_PASSWORD",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			for k, v := range tt.env {
				os.Setenv(k, v)
			}

			cfg, err := Load()
			assert.Error(t, err)
			assert.Nil(t, cfg)
			assert.Contains(t, err.Error(), tt.errContains)
		})
	}
}
