package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	DatabaseDSN string
	JWTSecret   string
	Port        string
	Environment string

	// External price APIs
	TCGAPIBaseURL  string
	TCGAPIKey      string
	RateAPIBaseURL string

	// Key for encrypting stored SMTP credentials (32 bytes, hex or raw)
	SecretsKey string
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	return &Config{
		DatabaseDSN: getEnv("DATABASE_DSN", "root:root@tcp(127.0.0.1:3306)/tcgstore?charset=utf8mb4&parseTime=True&loc=Local"),
		JWTSecret:   getEnv("JWT_SECRET", "default-secret"),
		Port:        getEnv("PORT", "8081"),
		Environment: getEnv("APP_ENV", "development"),

		TCGAPIBaseURL:  getEnv("TCG_API_BASE_URL", "https://api.pokemontcg.io/v2"),
		TCGAPIKey:      getEnv("TCG_API_KEY", ""),
		RateAPIBaseURL: getEnv("RATE_API_BASE_URL", "https://open.er-api.com/v6"),

		SecretsKey: getEnv("SECRETS_KEY", "0123456789abcdef0123456789abcdef"),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
