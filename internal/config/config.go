package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	App     AppConfig
	Keys    APIKeys
	Ai      AIConfig
	Visual  VisualConfig
	Tracing TracingConfig
}

type AppConfig struct {
	Port               string
	Environment        string
	LogFilePath        string
	EventLogFilePath   string
	CorsAllowedOrigins string
	NatsURL            string
	QueryEventsTopic   string
	RateLimitPerMinute int
}

type APIKeys struct {
	GoogleGemini string
	HuggingFace  string
}

type AIConfig struct {
	LLMProvider    string // "gemini", "ollama" or "huggingface"
	LLMModel       string // e.g. "gemini-pro", "llama3"
	LLMBaseURL     string // empty means provider default
	Timeout        time.Duration
	MaxTokens      int
	BreakerEnabled bool
}

type VisualConfig struct {
	Mode              string // "heuristic" or "llm"
	ComparisonPairing string // "legacy" or "paired"
}

// TracingConfig controls the OTLP exporter. Disabled unless OTEL_ENABLED=true.
type TracingConfig struct {
	Enabled  bool
	Endpoint string
}

const (
	VisualModeHeuristic = "heuristic"
	VisualModeLLM       = "llm"
)

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("Note: .env file not found, usage system environment")
	}

	return &Config{
		App: AppConfig{
			Port:               getEnv("APP_PORT", "3000"),
			Environment:        getEnv("GO_ENV", "development"),
			LogFilePath:        getEnv("LOG_FILE_PATH", "app.log"),
			EventLogFilePath:   getEnv("EVENT_LOG_FILE_PATH", "logs/query_events.log"),
			CorsAllowedOrigins: getEnv("CORS_ALLOWED_ORIGINS", "http://localhost:5173"),
			NatsURL:            getEnv("NATS_URL", ""),
			QueryEventsTopic:   getEnv("QUERY_EVENTS_TOPIC", "QUERY_PROCESSED"),
			RateLimitPerMinute: getEnvAsInt("QUERY_RATE_LIMIT_PER_MINUTE", 30),
		},
		Keys: APIKeys{
			GoogleGemini: getEnv("GOOGLE_GEMINI_API_KEY", ""),
			HuggingFace:  getEnv("HUGGINGFACE_API_KEY", ""),
		},
		Ai: AIConfig{
			LLMProvider:    getEnv("LLM_PROVIDER", "gemini"),
			LLMModel:       getEnv("LLM_MODEL", ""), // empty means the provider default
			LLMBaseURL:     getEnv("LLM_BASE_URL", ""),
			Timeout:        time.Duration(getEnvAsInt("LLM_TIMEOUT_SECONDS", 120)) * time.Second,
			MaxTokens:      getEnvAsInt("LLM_MAX_TOKENS", 1024),
			BreakerEnabled: getEnvAsBool("LLM_BREAKER_ENABLED", false),
		},
		Visual: VisualConfig{
			Mode:              getEnv("VISUAL_MODE", VisualModeHeuristic),
			ComparisonPairing: getEnv("VISUAL_COMPARISON_PAIRING", "legacy"),
		},
		Tracing: TracingConfig{
			Enabled:  getEnvAsBool("OTEL_ENABLED", false),
			Endpoint: getEnv("OTEL_EXPORTER_OTLP_ENDPOINT", "localhost:4318"),
		},
	}
}

// APIKey returns the credential for the configured LLM provider.
func (c *Config) APIKey() string {
	switch c.Ai.LLMProvider {
	case "gemini":
		return c.Keys.GoogleGemini
	case "huggingface":
		return c.Keys.HuggingFace
	default:
		return ""
	}
}

func (c *Config) IsProduction() bool {
	return c.App.Environment == "production"
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func getEnvAsInt(key string, fallback int) int {
	strValue := getEnv(key, "")
	if value, err := strconv.Atoi(strValue); err == nil {
		return value
	}
	return fallback
}

func getEnvAsBool(key string, fallback bool) bool {
	strValue := getEnv(key, "")
	if value, err := strconv.ParseBool(strValue); err == nil {
		return value
	}
	return fallback
}
