package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

// Config holds all environment-driven settings.
type Config struct {
	DatabaseURL    string
	JWTSecret      string
	AccessTokenTTL time.Duration

	LLMProvider string // "groq", "openai" or "vertex_anthropic"
	LLMModel    string
	LLMBaseURL  string
	LLMAPIKey   string

	Port string
}

// Load reads configuration from the environment, after loading a .env
// file if one is present.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Warn().Msg(".env file not found")
	}

	cfg := &Config{
		DatabaseURL:    os.Getenv("DB_URL"),
		JWTSecret:      os.Getenv("JWT_SECRET"),
		AccessTokenTTL: time.Duration(getenvInt("ACCESS_TOKEN_TTL_MINUTES", 30)) * time.Minute,
		LLMProvider:    getenv("LLM_PROVIDER", "groq"),
		LLMModel:       getenv("GROQ_MODEL_NAME", "llama-3.1-8b-instant"),
		LLMBaseURL:     os.Getenv("GROQ_BASE_URL"),
		LLMAPIKey:      os.Getenv("GROQ_API_KEY"),
		Port:           getenv("PORT", "3000"),
	}

	if cfg.DatabaseURL == "" {
		return nil, fmt.Errorf("DB_URL is required")
	}
	if cfg.JWTSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET is required")
	}

	return cfg, nil
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getenvInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		log.Warn().Str("key", key).Str("value", v).Msg("invalid integer in environment, using default")
		return fallback
	}
	return n
}
