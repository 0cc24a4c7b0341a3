package configs

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Server    ServerConfig
	LLM       LLMConfig
	PeopleAPI PeopleAPIConfig
	Cache     CacheConfig
	Log       LogConfig
}

type ServerConfig struct {
	Host         string
	Port         string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	IdleTimeout  time.Duration
	TLSCertFile  string
	TLSKeyFile   string
}

type LLMConfig struct {
	// Provider selects the LLM backend: "ollama" or "none".
	Provider    string
	OllamaHost  string
	OllamaModel string
	Timeout     time.Duration
}

type PeopleAPIConfig struct {
	BaseURL string
	Timeout time.Duration
}

type CacheConfig struct {
	// Parsed queries are a pure function of the normalized text, so they
	// are safe to cache longer than suggestions.
	QueryParsingTTL time.Duration
	SuggestionsTTL  time.Duration
}

type LogConfig struct {
	Level  string
	Format string // json or text
}

func Load() (*Config, error) {
	// Load .env file if it exists
	_ = godotenv.Load()

	cfg := &Config{
		Server: ServerConfig{
			Host:         getEnv("SERVER_HOST", "0.0.0.0"),
			Port:         getEnv("SERVER_PORT", "8080"),
			ReadTimeout:  getDurationEnv("SERVER_READ_TIMEOUT", 30*time.Second),
			WriteTimeout: getDurationEnv("SERVER_WRITE_TIMEOUT", 30*time.Second),
			IdleTimeout:  getDurationEnv("SERVER_IDLE_TIMEOUT", 120*time.Second),
			TLSCertFile:  getEnv("TLS_CERT_FILE", ""),
			TLSKeyFile:   getEnv("TLS_KEY_FILE", ""),
		},
		LLM: LLMConfig{
			Provider:    strings.ToLower(getEnv("LLM_PROVIDER", "none")),
			OllamaHost:  getEnv("OLLAMA_HOST", "http://localhost:11434"),
			OllamaModel: getEnv("OLLAMA_MODEL", "llama3.1:8b"),
			Timeout:     getDurationEnv("LLM_TIMEOUT", 15*time.Second),
		},
		PeopleAPI: PeopleAPIConfig{
			BaseURL: getEnvRequired("PEOPLE_API_BASE"),
			Timeout: getDurationEnv("PEOPLE_API_TIMEOUT", 15*time.Second),
		},
		Cache: CacheConfig{
			QueryParsingTTL: getDurationEnv("QUERY_CACHE_TTL", 2*time.Hour),
			SuggestionsTTL:  getDurationEnv("SUGGESTIONS_CACHE_TTL", time.Hour),
		},
		Log: LogConfig{
			Level:  getEnv("LOG_LEVEL", "info"),
			Format: getEnv("LOG_FORMAT", "json"),
		},
	}

	if cfg.LLM.Provider != "none" && cfg.LLM.Provider != "ollama" {
		return nil, fmt.Errorf("unsupported LLM_PROVIDER %q", cfg.LLM.Provider)
	}

	return cfg, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvRequired(key string) string {
	value := os.Getenv(key)
	if value == "" {
		panic(fmt.Sprintf("Required environment variable %s is not set", key))
	}
	return value
}

func getIntEnv(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getDurationEnv(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}
