package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

// Listing sources
const (
	SourceFile     = "file"
	SourcePostgres = "postgres"
)

// Config holds all configuration for the application
type Config struct {
	AppEnv   string
	Listings ListingsConfig
	Server   ServerConfig
	Logging  LoggingConfig
	LLM      LLMConfig
}

// ListingsConfig describes where the listing collection is loaded from at startup
type ListingsConfig struct {
	Source     string // "file" or "postgres"
	File       string
	DSN        string
	Table      string
	SampleSize int    // listings embedded in the prompt as a schema sample
	Currency   string // price prefix used by the renderers
}

// ServerConfig holds server configuration
type ServerConfig struct {
	Port           int
	Host           string
	GinMode        string
	AllowedOrigins string
}

// LoggingConfig holds logging configuration
type LoggingConfig struct {
	Level string
}

// LLMConfig holds the chat-completion provider configuration.
// Any OpenAI-compatible endpoint works; Groq is the default.
type LLMConfig struct {
	APIKey      string
	APIBase     string
	ChatModel   string
	Temperature float64
	MaxTokens   int
	Timeout     int // seconds
	RateLimit   float64
	Enabled     bool
}

// Load reads configuration from environment variables
func Load() (*Config, error) {
	// Try to load .env file (optional)
	_ = godotenv.Load()

	apiKey := getEnv("GROQ_API_KEY", getEnv("LLM_API_KEY", ""))

	cfg := &Config{
		AppEnv: getEnv("APP_ENV", "prod"),
		Listings: ListingsConfig{
			Source:     getEnv("LISTINGS_SOURCE", SourceFile),
			File:       getEnv("LISTINGS_FILE", "data/listings.json"),
			DSN:        getEnv("DATABASE_URL", ""),
			Table:      getEnv("LISTINGS_TABLE", "listings"),
			SampleSize: getEnvAsInt("SCHEMA_SAMPLE_SIZE", 3),
			Currency:   getEnv("CURRENCY_SYMBOL", "₹"),
		},
		Server: ServerConfig{
			Port:           getEnvAsInt("SERVER_PORT", 8080),
			Host:           getEnv("SERVER_HOST", "0.0.0.0"),
			GinMode:        getEnv("GIN_MODE", "release"),
			AllowedOrigins: getEnv("CORS_ALLOWED_ORIGINS", "*"),
		},
		Logging: LoggingConfig{
			Level: getEnv("LOG_LEVEL", "info"),
		},
		LLM: LLMConfig{
			APIKey:      apiKey,
			APIBase:     getEnv("LLM_API_BASE", "https://api.groq.com/openai/v1"),
			ChatModel:   getEnv("LLM_CHAT_MODEL", "llama3-70b-8192"),
			Temperature: getEnvAsFloat("LLM_TEMPERATURE", 0),
			MaxTokens:   getEnvAsInt("LLM_MAX_TOKENS", 512),
			Timeout:     getEnvAsInt("LLM_TIMEOUT", 30),
			RateLimit:   getEnvAsFloat("LLM_RATE_LIMIT", 5),
			Enabled:     apiKey != "",
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the values that cannot be defaulted away
func (c *Config) Validate() error {
	switch c.Listings.Source {
	case SourceFile:
		if c.Listings.File == "" {
			return fmt.Errorf("LISTINGS_FILE is required when LISTINGS_SOURCE=%s", SourceFile)
		}
	case SourcePostgres:
		if c.Listings.DSN == "" {
			return fmt.Errorf("DATABASE_URL is required when LISTINGS_SOURCE=%s", SourcePostgres)
		}
	default:
		return fmt.Errorf("unknown LISTINGS_SOURCE %q, must be %q or %q", c.Listings.Source, SourceFile, SourcePostgres)
	}
	if c.Listings.SampleSize < 0 {
		return fmt.Errorf("SCHEMA_SAMPLE_SIZE must not be negative")
	}
	return nil
}

// Address returns the host:port the HTTP server binds to
func (c *Config) Address() string {
	return fmt.Sprintf("%s:%d", c.Server.Host, c.Server.Port)
}

// Helper functions

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		log.Warn().Str("key", key).Int("default", defaultValue).Msg("invalid integer value, using default")
		return defaultValue
	}
	return value
}

func getEnvAsFloat(key string, defaultValue float64) float64 {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.ParseFloat(valueStr, 64)
	if err != nil {
		log.Warn().Str("key", key).Float64("default", defaultValue).Msg("invalid float value, using default")
		return defaultValue
	}
	return value
}
