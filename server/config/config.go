package config

import (
	"errors"
	"os"
	"strings"
)

// ErrMissingAPIKey is returned by Load when no Groq key is configured. The
// returned Config is still complete, so callers that do not talk to Groq
// (such as --migrate) can carry on.
var ErrMissingAPIKey = errors.New("missing required env var GROQ_API; put it in .env (dev) or set it on the host (prod)")

// Addr is fixed; the poker engine is configured to call the bot on this port.
const Addr = ":5000"

type Config struct {
	HTTPAddr    string
	GroqAPIKey  string
	LogLevel    string
	DatabaseURL string // empty disables the decision journal
	AutoMigrate bool
}

// Load reads the process environment. Call godotenv.Load first to pick up a
// local .env file.
func Load() (Config, error) {
	loadAPIKeyFromSecret()
	cfg := Config{
		HTTPAddr:    Addr,
		GroqAPIKey:  strings.TrimSpace(os.Getenv("GROQ_API")),
		LogLevel:    getenv("LOG_LEVEL", "info"),
		DatabaseURL: strings.TrimSpace(os.Getenv("DATABASE_URL")),
		AutoMigrate: asBool(os.Getenv("AUTO_MIGRATE")),
	}
	if cfg.GroqAPIKey == "" {
		return cfg, ErrMissingAPIKey
	}
	return cfg, nil
}

// Tries GROQ_API_FILE, then ./secrets/groq_api_key.txt and /run/secrets/groq_api_key.
func loadAPIKeyFromSecret() {
	if os.Getenv("GROQ_API") != "" {
		return
	}
	var candidates []string
	if p := os.Getenv("GROQ_API_FILE"); strings.TrimSpace(p) != "" {
		candidates = append(candidates, p)
	}
	candidates = append(candidates,
		"./secrets/groq_api_key.txt",
		"/run/secrets/groq_api_key",
	)
	for _, path := range candidates {
		if b, err := os.ReadFile(path); err == nil {
			key := strings.TrimSpace(string(b))
			if key != "" {
				os.Setenv("GROQ_API", key)
				return
			}
		}
	}
}

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

func asBool(s string) bool {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "1", "true", "yes", "y", "on":
		return true
	default:
		return false
	}
}
