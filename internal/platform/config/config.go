package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	APIPort string
	AppName string

	OpenAIAPIKey  string
	OpenAIBaseURL string
	OpenAIModel   string

	MochiAPIKey  string
	MochiBaseURL string
	MochiDeckID  string

	FrontendDist string

	LogLevel  string
	LogFormat string

	ShutdownDrainSeconds int
}

var AppConfig *Config

func Load() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, relying on environment variables")
	}

	AppConfig = &Config{
		APIPort: getEnv("API_PORT", "8000"),
		AppName: getEnv("APP_NAME", "leetdeck backend"),

		OpenAIAPIKey:  getEnv("OPENAI_API_KEY", ""),
		OpenAIBaseURL: getEnv("OPENAI_BASE_URL", "https://api.openai.com/v1"),
		OpenAIModel:   getEnv("OPENAI_MODEL", "gpt-4o-mini"),

		// MOCHI_API_KEY may be empty: card creation is then disabled
		// while submissions are still accepted and formatted.
		MochiAPIKey:  getEnv("MOCHI_API_KEY", ""),
		MochiBaseURL: getEnv("MOCHI_BASE_URL", "https://app.mochi.cards/api"),
		MochiDeckID:  getEnv("MOCHI_DECK_ID", ""),

		FrontendDist: getEnv("FRONTEND_DIST", "web/dist"),

		LogLevel:  getEnv("LOG_LEVEL", "info"),
		LogFormat: getEnv("LOG_FORMAT", "text"),

		ShutdownDrainSeconds: getEnvAsInt("SHUTDOWN_DRAIN_SECONDS", 30),
	}
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func getEnvAsInt(key string, fallback int) int {
	valueStr := getEnv(key, "")
	if value, err := strconv.Atoi(valueStr); err == nil {
		return value
	}
	return fallback
}
