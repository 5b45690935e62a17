package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"github.com/arunsworld/nstimes"
)

// Config holds everything nstimes reads from the environment.
type Config struct {
	// NS API
	Token          string
	BaseURL        string
	RequestTimeout time.Duration

	// Station name -> UIC code mapping; embedded default when empty
	StationsFile string

	// Pixel clock printer
	PixelClockHost string

	// Service
	Port           int
	AllowedOrigins []string
}

// LoadDotEnv reads .env and then .env.local (which wins) from the working
// directory. Missing files are not an error.
func LoadDotEnv() {
	_ = godotenv.Load(".env")
	_ = godotenv.Overload(".env.local")
}

// Load reads configuration from environment variables with sensible defaults
func Load() *Config {
	return &Config{
		Token:          getEnv("NS_API_TOKEN", ""),
		BaseURL:        getEnv("NS_API_BASE_URL", nstimes.NSAPIBaseURL),
		RequestTimeout: time.Duration(getEnvInt("NS_TIMEOUT_SECONDS", 5)) * time.Second,

		StationsFile: getEnv("NS_STATIONS_FILE", ""),

		PixelClockHost: getEnv("PIXELCLOCK_HOST", ""),

		Port:           getEnvInt("PORT", 8000),
		AllowedOrigins: getEnvList("CORS_ALLOWED_ORIGINS", []string{"*"}),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvList(key string, defaultValue []string) []string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	result := []string{}
	for _, v := range strings.Split(value, ",") {
		if v = strings.TrimSpace(v); v != "" {
			result = append(result, v)
		}
	}
	return result
}
