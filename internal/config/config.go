package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"

	"github.com/maouM-cmd/portfolio-dashboard/internal/tax"
)

// Config holds all configuration for the application
type Config struct {
	Server    ServerConfig
	Database  DatabaseConfig
	CORS      CORSConfig
	Quotes    QuotesConfig
	Tax       TaxConfig
	Backup    BackupConfig
	Scheduler SchedulerConfig
}

// ServerConfig holds server-specific configuration
type ServerConfig struct {
	Port string
	Host string
	Addr string // Combined host:port for convenience
}

// DatabaseConfig holds database-specific configuration
type DatabaseConfig struct {
	Path string
}

// CORSConfig holds CORS-specific configuration
type CORSConfig struct {
	AllowedOrigins []string
}

// QuotesConfig holds quote-source tuning knobs.
type QuotesConfig struct {
	// RequestsPerSecond caps outbound calls to the quote provider.
	RequestsPerSecond float64
	// CacheTTLSeconds is how long a fetched quote stays fresh.
	CacheTTLSeconds int
}

// TaxConfig holds the capital gains tax rate used by the estimator.
type TaxConfig struct {
	Rate float64
}

// BackupConfig holds backup encryption settings. An empty key means backups
// are exported as plain JSON.
type BackupConfig struct {
	FernetKey string
}

// SchedulerConfig holds the cron schedule for the periodic quote refresh
// and alert evaluation cycle. An empty schedule disables the scheduler.
type SchedulerConfig struct {
	RefreshSpec string
}

// Load reads configuration from environment variables and .env file
func Load() (*Config, error) {
	// Try to load .env file (ignore error if it doesn't exist)
	_ = godotenv.Load()

	taxRate, err := getEnvFloat("TAX_RATE", tax.DefaultRate)
	if err != nil {
		return nil, err
	}
	rps, err := getEnvFloat("QUOTE_REQUESTS_PER_SECOND", 4)
	if err != nil {
		return nil, err
	}
	cacheTTL, err := getEnvInt("QUOTE_CACHE_TTL_SECONDS", 60)
	if err != nil {
		return nil, err
	}

	config := &Config{
		Server: ServerConfig{
			Port: getEnv("SERVER_PORT", "5001"),
			Host: getEnv("SERVER_HOST", "localhost"),
		},
		Database: DatabaseConfig{
			Path: getEnv("DB_PATH", "./data/portfolio_dashboard.db"),
		},
		CORS: CORSConfig{
			AllowedOrigins: []string{
				"http://localhost:3000",
				"http://localhost",
			},
		},
		Quotes: QuotesConfig{
			RequestsPerSecond: rps,
			CacheTTLSeconds:   cacheTTL,
		},
		Tax: TaxConfig{
			Rate: taxRate,
		},
		Backup: BackupConfig{
			FernetKey: getEnv("BACKUP_KEY", ""),
		},
		Scheduler: SchedulerConfig{
			RefreshSpec: getEnv("REFRESH_SCHEDULE", "@every 5m"),
		},
	}

	// Combine host and port
	config.Server.Addr = fmt.Sprintf("%s:%s", config.Server.Host, config.Server.Port)

	return config, nil
}

// getEnv gets an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

// getEnvFloat gets a float environment variable or returns a default value
func getEnvFloat(key string, defaultValue float64) (float64, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}
	parsed, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return parsed, nil
}

// getEnvInt gets an integer environment variable or returns a default value
func getEnvInt(key string, defaultValue int) (int, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return parsed, nil
}
