package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	Auth     AuthConfig
}

type ServerConfig struct {
	Port        string
	CorsOrigins string
}

type DatabaseConfig struct {
	URI            string
	Name           string
	ConnectTimeout int // seconds
}

type AuthConfig struct {
	JWTSecret   string
	TokenTTLHrs int
}

// Load reads configuration from the environment, loading .env first if present.
func Load() *Config {
	// .env is optional outside local development
	_ = godotenv.Load()

	return &Config{
		Server: ServerConfig{
			Port:        getEnv("PORT", "3000"),
			CorsOrigins: getEnv("CORS_ORIGINS", "http://localhost:5173"),
		},
		Database: DatabaseConfig{
			URI:            getEnv("MONGODB_URI", "mongodb://localhost:27017"),
			Name:           getEnv("MONGODB_DATABASE", "alumni_connect"),
			ConnectTimeout: getEnvInt("MONGODB_CONNECT_TIMEOUT", 10),
		},
		Auth: AuthConfig{
			JWTSecret:   getEnv("JWT_SECRET", "fallback-secret-key"),
			TokenTTLHrs: getEnvInt("JWT_TTL_HOURS", 24),
		},
	}
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvInt(key string, def int) int {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return n
}
