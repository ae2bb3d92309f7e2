package config

import (
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cast"
)

type Config struct {
	App     *AppConfig
	API     *APIConfig
	Session *SessionConfig
}

type AppConfig struct {
	Name        string
	Version     string
	Environment string
	Port        int
	Host        string
	BaseURL     string
	Debug       bool
	LogLevel    string
	LogFormat   string
}

// APIConfig describes the upstream Sairaj Travels backend this service
// talks to. Timeout bounds every upstream call so a hung backend cannot
// hang a page render indefinitely.
type APIConfig struct {
	BaseURL string
	Timeout time.Duration
}

type SessionConfig struct {
	TokenCookie  string
	UserCookie   string
	CookieMaxAge time.Duration
	Secure       bool
}

func Load() (*Config, error) {
	_ = godotenv.Load(".env")

	config := &Config{
		App:     loadAppConfig(),
		API:     loadAPIConfig(),
		Session: loadSessionConfig(),
	}

	return config, nil
}

func loadAppConfig() *AppConfig {
	return &AppConfig{
		Name:        getEnv("APP_NAME", "SairajTravels"),
		Version:     getEnv("APP_VERSION", "1.0.0"),
		Environment: getEnv("APP_ENV", "development"),
		Port:        getEnvAsInt("APP_PORT", 3000),
		Host:        getEnv("APP_HOST", "localhost"),
		BaseURL:     getEnv("APP_BASE_URL", "http://localhost:3000"),
		Debug:       getEnvAsBool("APP_DEBUG", true),
		LogLevel:    getEnv("LOG_LEVEL", "info"),
		LogFormat:   getEnv("LOG_FORMAT", "text"),
	}
}

func loadAPIConfig() *APIConfig {
	return &APIConfig{
		BaseURL: getEnv("API_BASE_URL", "http://localhost:8080"),
		Timeout: getEnvAsDuration("API_TIMEOUT", 30*time.Second),
	}
}

func loadSessionConfig() *SessionConfig {
	return &SessionConfig{
		TokenCookie:  getEnv("SESSION_TOKEN_COOKIE", "adminToken"),
		UserCookie:   getEnv("SESSION_USER_COOKIE", "adminUser"),
		CookieMaxAge: getEnvAsDuration("SESSION_COOKIE_MAX_AGE", 24*time.Hour),
		Secure:       getEnvAsBool("SESSION_COOKIE_SECURE", false),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		return cast.ToInt(value)
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		return cast.ToBool(value)
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}

func IsProduction() bool {
	return getEnv("APP_ENV", "development") == "production"
}

func IsDevelopment() bool {
	return getEnv("APP_ENV", "development") == "development"
}
