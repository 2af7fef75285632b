package config

import (
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"go.uber.org/fx"
)

// Module exposes the loaded configuration to the fx graph.
var Module = fx.Provide(Load)

// Config holds application configuration.
type Config struct {
	AppName     string
	AppVersion  string
	Environment string

	HTTPAddr string

	DBType     string
	DBHost     string
	DBPort     string
	DBName     string
	DBUser     string
	DBPassword string
	DBSSLMode  string

	// Fallbacks used when the operator settings row is absent.
	DefaultBaseCurrency string
	DefaultLocale       string
	DefaultWindowDays   int

	SeedOnStartup bool
}

// Load loads configuration from environment variables and .env file.
func Load() Config {
	_ = godotenv.Load()

	return Config{
		AppName:     getenv("APP_SERVICE", "subtally"),
		AppVersion:  getenv("APP_VERSION", "0.1.0"),
		Environment: getenv("ENVIRONMENT", "development"),

		HTTPAddr: getenv("HTTP_ADDR", ":8080"),

		DBType:     getenv("DATABASE_TYPE", "sqlite"),
		DBHost:     getenv("DATABASE_HOST", "localhost"),
		DBPort:     getenv("DATABASE_PORT", "5432"),
		DBName:     getenv("DATABASE_NAME", "subtally"),
		DBUser:     getenv("DATABASE_USER", "subtally"),
		DBPassword: getenv("DATABASE_PASSWORD", ""),
		DBSSLMode:  getenv("DATABASE_SSLMODE", "disable"),

		DefaultBaseCurrency: strings.ToUpper(getenv("DEFAULT_BASE_CURRENCY", "USD")),
		DefaultLocale:       getenv("DEFAULT_LOCALE", "en-US"),
		DefaultWindowDays:   getenvInt("DEFAULT_WINDOW_DAYS", 30),

		SeedOnStartup: getenvBool("SEED_ON_STARTUP", true),
	}
}

func getenv(key, def string) string {
	if value, ok := os.LookupEnv(key); ok && strings.TrimSpace(value) != "" {
		return value
	}
	return def
}

func getenvInt(key string, def int) int {
	value, ok := os.LookupEnv(key)
	if !ok || strings.TrimSpace(value) == "" {
		return def
	}
	parsed, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil {
		log.Printf("config: invalid integer for %s: %q, using default %d", key, value, def)
		return def
	}
	return parsed
}

func getenvBool(key string, def bool) bool {
	value, ok := os.LookupEnv(key)
	if !ok || strings.TrimSpace(value) == "" {
		return def
	}
	parsed, err := strconv.ParseBool(strings.TrimSpace(value))
	if err != nil {
		log.Printf("config: invalid boolean for %s: %q, using default %v", key, value, def)
		return def
	}
	return parsed
}
