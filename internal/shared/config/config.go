package config

import (
	"os"
	"strings"
)

// Config holds application configuration.
type Config struct {
	Port             string
	CORSAllowOrigins []string
	CatalogPath      string
	Env              string
}

// Load reads configuration from environment variables with sensible defaults.
func Load() Config {
	// Best-effort load of local env files for dev convenience.
	loadEnvFiles(".env", "cmd/.env")

	return Config{
		Port:             getEnv("PORT", "8080"),
		CORSAllowOrigins: splitAndTrim(getEnv("CORS_ALLOW_ORIGINS", "http://localhost:5173")),
		CatalogPath:      os.Getenv("CATALOG_PATH"),
		Env:              normalizeEnv(getEnv("ENV", "dev")),
	}
}

func getEnv(key, def string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return def
}

func splitAndTrim(raw string) []string {
	parts := strings.Split(raw, ",")
	var out []string
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

func normalizeEnv(raw string) string {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "production", "prod":
		return "production"
	case "staging":
		return "staging"
	case "local":
		return "local"
	default:
		return "dev"
	}
}
