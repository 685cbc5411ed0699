package config

import (
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	Server Server
	Redis  Redis
	AI     AI
	App    App
}

type Server struct {
	Port string
}

type Redis struct {
	Addr     string
	Password string
	DB       int
}

type AI struct {
	APIKey        string
	BaseURL       string
	Strategy      string
	ChatModel     string
	RerankModel   string
	ClassifyModel string
	MaxTokens     int
}

type App struct {
	Environment string
	Version     string
	DatabaseDSN string
	Templates   string
	Static      string
}

func Load() (*Config, error) {
	// Load .env file if it exists (ignore error in production)
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg := &Config{
		Server: Server{
			Port: getEnv("PORT", "8080"),
		},
		Redis: Redis{
			Addr:     getEnv("REDIS_ADDR", "localhost:6379"),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       getEnvAsInt("REDIS_DB", 0),
		},
		AI: AI{
			APIKey:        os.Getenv("COHERE_API_KEY"),
			BaseURL:       getEnv("COHERE_BASE_URL", "https://api.cohere.com"),
			Strategy:      getEnv("AI_STRATEGY", "rerank"),
			ChatModel:     getEnv("AI_CHAT_MODEL", "command-r"),
			RerankModel:   getEnv("AI_RERANK_MODEL", "rerank-english-v3.0"),
			ClassifyModel: getEnv("AI_CLASSIFY_MODEL", "embed-english-v2.0"),
			MaxTokens:     getEnvAsInt("AI_MAX_TOKENS", 100),
		},
		App: App{
			Environment: getEnv("APP_ENV", "development"),
			Version:     getEnv("APP_VERSION", "1.0.0"),
			DatabaseDSN: os.Getenv("DB_DSN"),
			Templates:   getEnv("TEMPLATES_DIR", "templates/*.tmpl"),
			Static:      getEnv("STATIC_DIR", "static"),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) Validate() error {
	if c.Server.Port == "" {
		return fmt.Errorf("PORT is required")
	}

	if c.AI.APIKey == "" {
		return fmt.Errorf("COHERE_API_KEY is required")
	}

	switch c.AI.Strategy {
	case "chat", "rerank", "classify":
	default:
		return fmt.Errorf("AI_STRATEGY must be one of chat, rerank, classify (got %q)", c.AI.Strategy)
	}

	return nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.Atoi(valueStr)
	if err != nil {
		log.Printf("Warning: Invalid integer for %s, using default: %d", key, defaultValue)
		return defaultValue
	}

	return value
}
