// File: /config/config.go
package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	Port        string
	BaseURL     string
	DatabaseURL string
	JWTSecret   string
	StoragePath string
	LogLevel    string

	RateLimitPerMinute int
	RateLimitBurst     int

	// Email Configuration
	SMTPHost     string
	SMTPPort     int
	SMTPUsername string
	SMTPPassword string
	FromEmail    string
	FromName     string
}

func Load() *Config {
	// A missing .env is fine; real environment variables still apply.
	_ = godotenv.Load()

	smtpPort, _ := strconv.Atoi(getEnv("SMTP_PORT", "2525"))
	ratePerMinute, _ := strconv.Atoi(getEnv("RATE_LIMIT_PER_MINUTE", "120"))
	rateBurst, _ := strconv.Atoi(getEnv("RATE_LIMIT_BURST", "20"))

	return &Config{
		Port:        getEnv("PORT", "8080"),
		BaseURL:     getEnv("BASE_URL", "http://localhost:8080"),
		DatabaseURL: getEnv("DATABASE_URL", "user:password@tcp(localhost:3306)/socialfeed?charset=utf8mb4&parseTime=True&loc=Local"),
		JWTSecret:   getEnv("JWT_SECRET", "your-secret-key"),
		StoragePath: getEnv("STORAGE_PATH", "./storage"),
		LogLevel:    getEnv("LOG_LEVEL", "info"),

		RateLimitPerMinute: ratePerMinute,
		RateLimitBurst:     rateBurst,

		// Email settings
		SMTPHost:     getEnv("SMTP_HOST", "sandbox.smtp.mailtrap.io"),
		SMTPPort:     smtpPort,
		SMTPUsername: getEnv("SMTP_USERNAME", ""),
		SMTPPassword: getEnv("SMTP_PASSWORD", ""),
		FromEmail:    getEnv("FROM_EMAIL", "noreply@socialfeed.app"),
		FromName:     getEnv("FROM_NAME", "SocialFeed"),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
