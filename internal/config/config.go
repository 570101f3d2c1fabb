package config

import (
	"errors"
	"os"
	"strconv"
	"strings"
	"time"
)

var (
	ErrMissingDatabaseDSN = errors.New("DATABASE_DSN is required")
	ErrMissingJWTSecret   = errors.New("JWT_SECRET is required")
)

type AIConfig struct {
	Provider string // gemini|chat
	APIKey   string
	BaseURL  string // chat provider only
	Model    string
	Timeout  time.Duration
}

type RateLimitConfig struct {
	Capacity int
	Window   time.Duration
}

type Config struct {
	Env      string
	LogLevel string
	HTTPAddr string

	DatabaseDSN string

	JWTSecret    string
	CookieDomain string
	// CookieSecure is off only for plain-HTTP local runs.
	CookieSecure bool

	CORSOrigins []string

	AI        AIConfig
	RateLimit RateLimitConfig

	ShuffleWorkers int
}

// OnLambda reports whether the process runs inside the Lambda runtime.
func (c *Config) OnLambda() bool {
	return os.Getenv("AWS_LAMBDA_FUNCTION_NAME") != ""
}

func Load() (*Config, error) {
	provider := envOr("AI_PROVIDER", "gemini")
	defModel := "gemini-2.0-flash"
	if provider == "chat" {
		defModel = "gpt-4o-mini"
	}

	cfg := &Config{
		Env:          envOr("ENV", "dev"),
		LogLevel:     envOr("LOG_LEVEL", "info"),
		HTTPAddr:     envOr("HTTP_ADDR", ":8080"),
		DatabaseDSN:  os.Getenv("DATABASE_DSN"),
		JWTSecret:    os.Getenv("JWT_SECRET"),
		CookieDomain: os.Getenv("COOKIE_DOMAIN"),
		CookieSecure: envBool("COOKIE_SECURE", true),
		CORSOrigins:  csvOr("CORS_ORIGINS", "*"),
		AI: AIConfig{
			Provider: provider,
			APIKey:   os.Getenv("AI_API_KEY"),
			BaseURL:  strings.TrimSuffix(envOr("AI_BASE_URL", "https://api.openai.com/v1"), "/"),
			Model:    envOr("AI_MODEL", defModel),
			Timeout:  envDuration("AI_TIMEOUT", 60*time.Second),
		},
		RateLimit: RateLimitConfig{
			Capacity: envInt("AI_RATE_LIMIT_CAPACITY", 20),
			Window:   envDuration("AI_RATE_LIMIT_WINDOW", time.Hour),
		},
		ShuffleWorkers: envInt("SHUFFLE_WORKERS", 1),
	}

	if cfg.DatabaseDSN == "" {
		return nil, ErrMissingDatabaseDSN
	}
	if cfg.JWTSecret == "" {
		return nil, ErrMissingJWTSecret
	}
	if cfg.ShuffleWorkers < 1 {
		cfg.ShuffleWorkers = 1
	}
	if cfg.RateLimit.Capacity < 1 {
		cfg.RateLimit.Capacity = 1
	}
	return cfg, nil
}

func envOr(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

func envInt(k string, def int) int {
	v, err := strconv.Atoi(os.Getenv(k))
	if err != nil {
		return def
	}
	return v
}

func envBool(k string, def bool) bool {
	v, err := strconv.ParseBool(os.Getenv(k))
	if err != nil {
		return def
	}
	return v
}

func envDuration(k string, def time.Duration) time.Duration {
	v, err := time.ParseDuration(os.Getenv(k))
	if err != nil || v <= 0 {
		return def
	}
	return v
}

func csvOr(k, def string) []string {
	parts := strings.Split(envOr(k, def), ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if s := strings.TrimSpace(p); s != "" {
			out = append(out, s)
		}
	}
	return out
}
