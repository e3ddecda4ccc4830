package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type ServerConfig struct {
	Port   string
	AppEnv string
}

type APIConfig struct {
	BaseURL       string // Backend POS API, e.g. http://localhost:5000
	Timeout       time.Duration
	RetryAttempts int
}

type SessionConfig struct {
	SecretKey  []byte
	TTL        time.Duration
	CookieName string
	SweepSpec  string // cron spec for dropping idle carts
}

type LoggerConfig struct {
	Level    string
	Encoding string
}

type WebConfig struct {
	Server  ServerConfig
	API     APIConfig
	Session SessionConfig
	Logger  LoggerConfig
}

// LoadDotEnv loads a .env file from the working directory when one exists.
func LoadDotEnv() {
	_ = godotenv.Load()
}

func LoadServerConfig(defaultPort string) ServerConfig {
	port := defaultPort
	if envPort := os.Getenv("SERVER_PORT"); envPort != "" {
		port = envPort
	}
	return ServerConfig{
		Port:   ":" + port,
		AppEnv: GetEnv("APP_ENV", "development"),
	}
}

func LoadAPIConfig() APIConfig {
	attempts := GetEnvAsInt("API_RETRY_ATTEMPTS", 1)
	if attempts < 1 {
		attempts = 1
	}
	return APIConfig{
		BaseURL:       GetEnv("POS_API_URL", "http://localhost:5000"),
		Timeout:       time.Duration(GetEnvAsInt("API_TIMEOUT_SECONDS", 10)) * time.Second,
		RetryAttempts: attempts,
	}
}

func LoadSessionConfig() SessionConfig {
	secret := GetEnv("SESSION_SECRET_KEY", "")
	if secret == "" {
		// Insecure fallback for local runs only
		secret = "pos-web-client-dev-secret"
	}
	return SessionConfig{
		SecretKey:  []byte(secret),
		TTL:        time.Duration(GetEnvAsInt("SESSION_TTL_MINUTES", 480)) * time.Minute,
		CookieName: GetEnv("SESSION_COOKIE_NAME", "pos_cart_session"),
		SweepSpec:  GetEnv("CART_SWEEP_SPEC", "@every 10m"),
	}
}

func LoadLoggerConfig() LoggerConfig {
	return LoggerConfig{
		Level:    GetEnv("LOGGER_LEVEL", "info"),
		Encoding: GetEnv("LOGGER_ENCODING", "console"),
	}
}

func LoadWebConfig(defaultPort string) WebConfig {
	return WebConfig{
		Server:  LoadServerConfig(defaultPort),
		API:     LoadAPIConfig(),
		Session: LoadSessionConfig(),
		Logger:  LoadLoggerConfig(),
	}
}

// GetEnv returns the environment value for key, or fallback when unset.
func GetEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func GetEnvAsInt(key string, fallback int) int {
	strValue := GetEnv(key, "")
	if value, err := strconv.Atoi(strValue); err == nil {
		return value
	}
	return fallback
}
