package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("GROQ_API", " gsk-test ")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("DATABASE_URL", "postgres://bot@localhost/bot")
	t.Setenv("AUTO_MIGRATE", "yes")
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.GroqAPIKey != "gsk-test" {
		t.Fatalf("unexpected key: %q", cfg.GroqAPIKey)
	}
	if cfg.HTTPAddr != ":5000" || cfg.LogLevel != "debug" || !cfg.AutoMigrate {
		t.Fatalf("unexpected config: %+v", cfg)
	}
	if cfg.DatabaseURL != "postgres://bot@localhost/bot" {
		t.Fatalf("unexpected DATABASE_URL: %q", cfg.DatabaseURL)
	}
}

func TestLoadRequiresKey(t *testing.T) {
	t.Setenv("GROQ_API", "")
	t.Setenv("GROQ_API_FILE", filepath.Join(t.TempDir(), "missing"))
	t.Setenv("LOG_LEVEL", "warn")
	t.Setenv("DATABASE_URL", "postgres://bot@localhost/bot")
	cfg, err := Load()
	if !errors.Is(err, ErrMissingAPIKey) {
		t.Fatalf("expected ErrMissingAPIKey, got %v", err)
	}
	if cfg.LogLevel != "warn" || cfg.DatabaseURL == "" || cfg.HTTPAddr != Addr {
		t.Fatalf("config should be filled even without a key: %+v", cfg)
	}
}

func TestLoadKeyFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "key.txt")
	if err := os.WriteFile(path, []byte("gsk-from-file\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	t.Setenv("GROQ_API", "")
	t.Setenv("GROQ_API_FILE", path)
	t.Setenv("LOG_LEVEL", "")
	t.Setenv("AUTO_MIGRATE", "")
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.GroqAPIKey != "gsk-from-file" {
		t.Fatalf("unexpected key: %q", cfg.GroqAPIKey)
	}
	if cfg.LogLevel != "info" || cfg.AutoMigrate {
		t.Fatalf("unexpected defaults: %+v", cfg)
	}
}
