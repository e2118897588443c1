package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
)

// Config holds the application configuration.
type Config struct {
	LogLevel  zerolog.Level
	LogFile   string // empty disables logging; the TUI owns the terminal
	AltScreen bool
}

// LoadConfig loads the configuration from environment variables, reading a
// .env file first when one exists.
func LoadConfig() (*Config, error) {
	_ = godotenv.Load()

	level, err := zerolog.ParseLevel(getEnv("LOG_LEVEL", "info"))
	if err != nil {
		return nil, fmt.Errorf("invalid LOG_LEVEL: %w", err)
	}

	altScreen, err := strconv.ParseBool(getEnv("ALT_SCREEN", "true"))
	if err != nil {
		return nil, fmt.Errorf("invalid ALT_SCREEN: %w", err)
	}

	return &Config{
		LogLevel:  level,
		LogFile:   os.Getenv("LOG_FILE"),
		AltScreen: altScreen,
	}, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
