package config

import (
	"log"
	"os"
	"strconv"
)

type Config struct {
	// Server Configuration
	ServerPort string

	// Database Configuration
	DatabasePath string

	// LLM Configuration
	LLMProvider string // "openai" or "groq"
	OpenAIKey   string
	GroqKey     string
	LLMBaseURL  string
	ChatModel   string
	MaxTokens   int
	Temperature float64
	LLMTimeout  int // seconds

	// External Data Providers
	NewsAPIKey      string
	WeatherBaseURL  string
	CryptoBaseURL   string
	NewsBaseURL     string
	ProviderTimeout int // seconds

	// Conversation History
	HistoryLimit int
}

var AppConfig *Config

func LoadConfig() *Config {
	AppConfig = &Config{
		ServerPort:      getEnv("PORT", "8080"),
		DatabasePath:    getEnv("DB_PATH", "chatbot.db"),
		LLMProvider:     getEnv("LLM_PROVIDER", "openai"),
		OpenAIKey:       os.Getenv("OPENAI_API_KEY"),
		GroqKey:         os.Getenv("GROQ_API_KEY"),
		LLMBaseURL:      getEnv("GROQ_BASE_URL", "https://api.groq.com/openai/v1"),
		ChatModel:       getEnv("CHAT_MODEL", "gpt-3.5-turbo"),
		MaxTokens:       getEnvInt("MAX_TOKENS", 500),
		Temperature:     getEnvFloat("TEMPERATURE", 0.7),
		LLMTimeout:      getEnvInt("LLM_TIMEOUT", 30),
		NewsAPIKey:      getEnv("NEWS_API_KEY", "demo"),
		WeatherBaseURL:  getEnv("WEATHER_BASE_URL", "https://wttr.in"),
		CryptoBaseURL:   getEnv("CRYPTO_BASE_URL", "https://api.coingecko.com"),
		NewsBaseURL:     getEnv("NEWS_BASE_URL", "https://api.currentsapi.services"),
		ProviderTimeout: getEnvInt("PROVIDER_TIMEOUT", 10),
		HistoryLimit:    getEnvInt("HISTORY_LIMIT", 20),
	}

	// Validate required configuration
	if AppConfig.LLMProvider == "openai" && AppConfig.OpenAIKey == "" {
		log.Fatal("OPENAI_API_KEY is required when LLM_PROVIDER is 'openai'")
	}
	if AppConfig.LLMProvider == "groq" && AppConfig.GroqKey == "" {
		log.Fatal("GROQ_API_KEY is required when LLM_PROVIDER is 'groq'")
	}

	return AppConfig
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getEnvFloat(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if floatVal, err := strconv.ParseFloat(value, 64); err == nil {
			return floatVal
		}
	}
	return defaultValue
}
