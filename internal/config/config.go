package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

const (
	ServiceName    = "ReqForge AI Service"
	ServiceVersion = "1.0.0"
)

type Config struct {
	App     AppConfig
	Keys    APIKeys
	Ai      AIConfig
	Scraper ScraperConfig
	Events  EventsConfig
	Tracing TracingConfig
}

type AppConfig struct {
	Port               string
	Environment        string
	LogFilePath        string
	CorsAllowedOrigins string
	BodyLimitMB        int
	JwtSecret          string // empty disables bearer auth on /api/ai
	TemplateDir        string
}

type APIKeys struct {
	Anthropic    string
	GoogleGemini string
}

type AIConfig struct {
	LLMProvider   string // "anthropic", "gemini" or "ollama"
	LLMModel      string // empty selects the provider default
	OllamaBaseURL string
	Timeout       time.Duration
	MaxRetries    int
	RetryDelay    time.Duration
}

type ScraperConfig struct {
	Timeout  time.Duration
	MaxBytes int64
}

type EventsConfig struct {
	NatsURL string // empty keeps events in-process
	Topic   string
	LogPath string
}

type TracingConfig struct {
	Enabled  bool
	Endpoint string
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("Note: .env file not found, usage system environment")
	}

	return &Config{
		App: AppConfig{
			Port:               getEnv("APP_PORT", "8000"),
			Environment:        getEnv("GO_ENV", "development"),
			LogFilePath:        getEnv("LOG_FILE_PATH", "logs/app.log"),
			CorsAllowedOrigins: getEnv("CORS_ALLOWED_ORIGINS", "http://localhost:3000, http://localhost:5000, http://localhost:5173"),
			BodyLimitMB:        getEnvAsInt("BODY_LIMIT_MB", 10),
			JwtSecret:          getEnv("JWT_SECRET", ""),
			TemplateDir:        getEnv("TEMPLATE_DIR", "templates"),
		},
		Keys: APIKeys{
			Anthropic:    getEnv("ANTHROPIC_API_KEY", ""),
			GoogleGemini: getEnv("GEMINI_API_KEY", ""),
		},
		Ai: AIConfig{
			LLMProvider:   getEnv("LLM_PROVIDER", "anthropic"),
			LLMModel:      getEnv("LLM_MODEL", ""),
			OllamaBaseURL: getEnv("OLLAMA_BASE_URL", "http://localhost:11434"),
			Timeout:       getEnvAsDuration("LLM_TIMEOUT", 60*time.Second),
			MaxRetries:    getEnvAsInt("LLM_MAX_RETRIES", 2),
			RetryDelay:    getEnvAsDuration("LLM_RETRY_DELAY", 500*time.Millisecond),
		},
		Scraper: ScraperConfig{
			Timeout:  getEnvAsDuration("SCRAPE_TIMEOUT", 30*time.Second),
			MaxBytes: int64(getEnvAsInt("SCRAPE_MAX_BYTES", 2*1024*1024)),
		},
		Events: EventsConfig{
			NatsURL: getEnv("NATS_URL", ""),
			Topic:   getEnv("EVENTS_TOPIC", "reqforge.activity"),
			LogPath: getEnv("EVENTS_LOG_FILE_PATH", "logs/activity.log"),
		},
		Tracing: TracingConfig{
			Enabled:  getEnv("OTEL_ENABLED", "false") == "true",
			Endpoint: getEnv("OTEL_EXPORTER_OTLP_ENDPOINT", "localhost:4318"),
		},
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

func getEnvAsDuration(key string, fallback time.Duration) time.Duration {
	strValue := getEnv(key, "")
	if value, err := time.ParseDuration(strValue); err == nil {
		return value
	}
	return fallback
}
