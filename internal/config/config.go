package config

import (
	"os"
	"strings"

	"github.com/joho/godotenv"

	"github.com/hyerinam29-hash/my-face-landing/internal/apperr"
)

// Config is built once in main and handed to every constructor that
// talks to the outside world. Nothing reads os.Getenv after startup.
type Config struct {
	Port string

	// Remote data store (REST interface)
	SupabaseURL string
	SupabaseKey string

	// Payment processor
	TossSecretKey string

	// CRM / chat logging
	NotionAPIKey     string
	NotionDatabaseID string

	// Chat model + web search
	GeminiAPIKey string
	GeminiModel  string
	TavilyAPIKey string

	// Session verification
	JWTSecret string

	Debug bool
}

// firstNonEmpty returns the first env var in names with a non-empty
// value, trimmed of whitespace and trailing commas (deploy dashboards
// tend to leave those behind).
func firstNonEmpty(names ...string) string {
	for _, n := range names {
		v := strings.TrimRight(strings.TrimSpace(os.Getenv(n)), ",")
		if v != "" {
			return v
		}
	}
	return ""
}

// Load reads .env if present, assembles the config and fails fast on
// anything the payment flow cannot run without.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		Port:             os.Getenv("PORT"),
		SupabaseURL:      firstNonEmpty("SUPABASE_URL", "NEXT_PUBLIC_SUPABASE_URL"),
		SupabaseKey:      firstNonEmpty("SUPABASE_ANON_KEY", "NEXT_PUBLIC_SUPABASE_ANON_KEY", "SUPABASE_SERVICE_ROLE_KEY"),
		TossSecretKey:    os.Getenv("TOSS_SECRET_KEY"),
		NotionAPIKey:     os.Getenv("NOTION_API_KEY"),
		NotionDatabaseID: os.Getenv("NOTION_DATABASE_ID"),
		GeminiAPIKey:     os.Getenv("GEMINI_API_KEY"),
		GeminiModel:      os.Getenv("GEMINI_MODEL"),
		TavilyAPIKey:     os.Getenv("TAVILY_API_KEY"),
		JWTSecret:        os.Getenv("JWT_SECRET"),
		Debug:            os.Getenv("DEBUG_LOGGING") == "true",
	}

	if cfg.Port == "" {
		cfg.Port = "8080"
	}
	if cfg.GeminiModel == "" {
		cfg.GeminiModel = "gemini-2.5-flash"
	}
	if cfg.JWTSecret == "" {
		cfg.JWTSecret = "dev-secret-please-change"
	}

	if cfg.SupabaseURL == "" {
		return nil, &apperr.ConfigurationError{Key: "SUPABASE_URL (또는 NEXT_PUBLIC_SUPABASE_URL)"}
	}
	if cfg.SupabaseKey == "" {
		return nil, &apperr.ConfigurationError{Key: "SUPABASE_ANON_KEY (또는 SERVICE_ROLE_KEY)"}
	}
	if cfg.TossSecretKey == "" {
		return nil, &apperr.ConfigurationError{Key: "TOSS_SECRET_KEY"}
	}

	return cfg, nil
}
