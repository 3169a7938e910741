package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds every runtime parameter of the application.
type Config struct {
	ServerPort    int
	SessionSecret string

	GeminiAPIKey  string
	GeminiModel   string
	GeminiTimeout time.Duration
}

// Load reads configuration from environment variables, optionally
// seeded from a .env file for local development.
func Load() (*Config, error) {
	_ = godotenv.Load()

	portStr := os.Getenv("SERVER_PORT")
	if portStr == "" {
		portStr = "8080"
	}
	port, err := strconv.Atoi(portStr)
	if err != nil {
		return nil, fmt.Errorf("invalid SERVER_PORT environment variable: %w", err)
	}
	if port <= 0 || port > 65535 {
		return nil, fmt.Errorf("SERVER_PORT must be between 1 and 65535, got %d", port)
	}

	secret := os.Getenv("SESSION_SECRET")
	if secret == "" {
		return nil, fmt.Errorf("SESSION_SECRET environment variable is not set")
	}

	timeout := 20 * time.Second
	if t := os.Getenv("GEMINI_TIMEOUT_SECONDS"); t != "" {
		secs, err := strconv.Atoi(t)
		if err != nil || secs <= 0 {
			return nil, fmt.Errorf("invalid GEMINI_TIMEOUT_SECONDS environment variable: %q", t)
		}
		timeout = time.Duration(secs) * time.Second
	}

	return &Config{
		ServerPort:    port,
		SessionSecret: secret,
		GeminiAPIKey:  os.Getenv("GEMINI_API_KEY"),
		GeminiModel:   os.Getenv("GEMINI_MODEL"),
		GeminiTimeout: timeout,
	}, nil
}
