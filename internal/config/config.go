package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Server   ServerConfig
	Upload   UploadConfig
	Matching MatchingConfig
	Gemini   GeminiConfig
}

type ServerConfig struct {
	Port string
	Env  string
}

type UploadConfig struct {
	MaxFileSize int64
}

type MatchingConfig struct {
	Timeout                 time.Duration
	Concurrency             int
	FuzzyThreshold          float64
	ResponsibilityThreshold float64
	SimilarityBackend       string
}

type GeminiConfig struct {
	APIKey string
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found. Using default values.")
	}

	return &Config{
		Server: ServerConfig{
			Port: getEnv("PORT", "3000"),
			Env:  getEnv("ENV", "development"),
		},
		Upload: UploadConfig{
			MaxFileSize: getEnvAsInt64("MAX_FILE_SIZE", 10485760),
		},
		Matching: MatchingConfig{
			Timeout:                 getEnvAsDuration("MATCH_TIMEOUT", "60s"),
			Concurrency:             getEnvAsInt("MATCH_CONCURRENCY", 4),
			FuzzyThreshold:          getEnvAsFloat("FUZZY_THRESHOLD", 0.80),
			ResponsibilityThreshold: getEnvAsFloat("RESPONSIBILITY_THRESHOLD", 0.40),
			SimilarityBackend:       getEnv("SIMILARITY_BACKEND", "lexical"),
		},
		Gemini: GeminiConfig{
			APIKey: getEnv("GEMINI_API_KEY", ""),
		},
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr := getEnv(key, "")
	if value, err := strconv.Atoi(valueStr); err == nil {
		return value
	}
	return defaultValue
}

func getEnvAsInt64(key string, defaultValue int64) int64 {
	valueStr := getEnv(key, "")
	if value, err := strconv.ParseInt(valueStr, 10, 64); err == nil {
		return value
	}
	return defaultValue
}

func getEnvAsFloat(key string, defaultValue float64) float64 {
	valueStr := getEnv(key, "")
	if value, err := strconv.ParseFloat(valueStr, 64); err == nil {
		return value
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue string) time.Duration {
	valueStr := getEnv(key, defaultValue)
	if duration, err := time.ParseDuration(valueStr); err == nil {
		return duration
	}
	duration, _ := time.ParseDuration(defaultValue)
	return duration
}
