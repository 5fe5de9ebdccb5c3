package common

import (
	"os"
	"strconv"
	"time"
)

// Config holds all application configuration
type Config struct {
	Database   DatabaseConfig
	Server     ServerConfig
	LLM        LLMConfig
	Cache      CacheConfig
	Extraction ExtractionConfig
}

// DatabaseConfig holds database-related configuration
type DatabaseConfig struct {
	DSN              string
	MaxConns         int32
	MinConns         int32
	MaxConnLifetime  time.Duration
	MaxConnIdleTime  time.Duration
	DialTimeout      time.Duration
	StatementTimeout time.Duration
}

// ServerConfig holds server-related configuration
type ServerConfig struct {
	GRPCAddr string
}

// LLMConfig holds AI-provider configuration
type LLMConfig struct {
	Model       string
	APIKey      string
	BaseURL     string
	Temperature float32
	Timeout     time.Duration
}

// CacheConfig holds extraction-cache configuration
type CacheConfig struct {
	TTL           time.Duration
	SweepInterval time.Duration
	MaxEntries    int
}

// ExtractionConfig holds pipeline-level extraction configuration
type ExtractionConfig struct {
	DefaultCurrency  string
	PromptTemplateID string
	MaxTextChars     int
}

// LoadConfig loads configuration from environment variables
func LoadConfig() *Config {
	return &Config{
		Database: DatabaseConfig{
			DSN:              getEnv("DB_URL", ""),
			MaxConns:         getEnvAsInt32("DB_MAX_CONNS", 20),
			MinConns:         getEnvAsInt32("DB_MIN_CONNS", 5),
			MaxConnLifetime:  getEnvAsDuration("DB_MAX_CONN_LIFETIME", 30*time.Minute),
			MaxConnIdleTime:  getEnvAsDuration("DB_MAX_CONN_IDLE_TIME", 5*time.Minute),
			DialTimeout:      getEnvAsDuration("DB_DIAL_TIMEOUT", 3*time.Second),
			StatementTimeout: getEnvAsDuration("DB_STATEMENT_TIMEOUT", 0),
		},
		Server: ServerConfig{
			GRPCAddr: getEnv("GRPC_ADDR", ":8080"),
		},
		LLM: LLMConfig{
			Model:       getEnv("OPENAI_MODEL", "gpt-4o-mini"),
			APIKey:      getEnv("OPENAI_API_KEY", ""),
			BaseURL:     getEnv("OPENAI_BASE_URL", ""),
			Temperature: getEnvAsFloat32("OPENAI_TEMPERATURE", 0.0),
			Timeout:     getEnvAsDuration("OPENAI_TIMEOUT", 45*time.Second),
		},
		Cache: CacheConfig{
			TTL:           getEnvAsDuration("EXTRACTION_CACHE_TTL", time.Hour),
			SweepInterval: getEnvAsDuration("EXTRACTION_CACHE_SWEEP_INTERVAL", 60*time.Second),
			MaxEntries:    getEnvAsInt("EXTRACTION_CACHE_MAX_ENTRIES", 10000),
		},
		Extraction: ExtractionConfig{
			DefaultCurrency:  getEnv("DEFAULT_CURRENCY", "USD"),
			PromptTemplateID: getEnv("PROMPT_TEMPLATE_ID", "procurement-extract-v1"),
			MaxTextChars:     getEnvAsInt("EXTRACTION_MAX_TEXT_CHARS", 6000),
		},
	}
}

// Helper functions for environment variable parsing
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getEnvAsInt32(key string, defaultValue int32) int32 {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.ParseInt(value, 10, 32); err == nil {
			return int32(intVal)
		}
	}
	return defaultValue
}

func getEnvAsFloat32(key string, defaultValue float32) float32 {
	if value := os.Getenv(key); value != "" {
		if floatVal, err := strconv.ParseFloat(value, 32); err == nil {
			return float32(floatVal)
		}
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}

// Validate validates the loaded configuration. Missing credentials are fatal
// to the enclosing request and never retried.
func (c *Config) Validate() error {
	if c.Database.DSN == "" {
		return ConfigError("DB_URL is required")
	}
	if c.LLM.APIKey == "" {
		return ConfigError("OPENAI_API_KEY is required")
	}
	if c.Server.GRPCAddr == "" {
		return ConfigError("GRPC_ADDR is required")
	}
	if ferr := CurrencyCode("DEFAULT_CURRENCY", c.Extraction.DefaultCurrency); ferr != nil {
		return ConfigError(ferr.Error())
	}
	return nil
}
