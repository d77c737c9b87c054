package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Server   ServerConfig
	Backend  BackendConfig
	Session  SessionConfig
	Redis    RedisConfig
	Database DatabaseConfig
}

type ServerConfig struct {
	Port string
}

type BackendConfig struct {
	BaseURL string
}

type SessionConfig struct {
	TTL        time.Duration
	CookieName string
}

type RedisConfig struct {
	Host     string
	Port     string
	Username string
	Password string
}

type DatabaseConfig struct {
	URL string
}

// Load reads configuration from the environment, with an optional .env file.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Printf("💡 Using platform environment variables (no .env file)")
	}

	cfg := &Config{}

	cfg.Server.Port = getEnvOrDefault("PORT", "3000")

	cfg.Backend.BaseURL = os.Getenv("BACKEND_BASE_URL")
	if cfg.Backend.BaseURL == "" {
		return nil, fmt.Errorf("BACKEND_BASE_URL environment variable is not set")
	}

	cfg.Session.TTL = time.Duration(getEnvInt("SESSION_TTL_SEC", 86400)) * time.Second
	cfg.Session.CookieName = getEnvOrDefault("SESSION_COOKIE_NAME", "dashboard_session")
	if cfg.Session.TTL <= 0 {
		return nil, fmt.Errorf("SESSION_TTL_SEC must be > 0")
	}

	cfg.Redis.Host = os.Getenv("REDIS_HOST")
	cfg.Redis.Port = getEnvOrDefault("REDIS_PORT", "6379")
	cfg.Redis.Username = os.Getenv("REDIS_USERNAME")
	cfg.Redis.Password = os.Getenv("REDIS_PASSWORD")

	cfg.Database.URL = os.Getenv("DATABASE_URL")

	return cfg, nil
}

func getEnvOrDefault(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func getEnvInt(key string, fallback int) int {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return fallback
	}
	return n
}
