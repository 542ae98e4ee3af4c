package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
)

type Config struct {
	Database DatabaseConfig
	App      AppConfig
	Engine   EngineConfig
}

type DatabaseConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	Name     string
	SSLMode  string
}

// AppConfig holds application configuration
type AppConfig struct {
	Port     int
	Env      string
	LogLevel string
}

// EngineConfig holds calculation engine settings
type EngineConfig struct {
	// RetroLookbackMonths is how many closed prior periods get recomputed
	// on every calculation.
	RetroLookbackMonths int
	// LifetimeLicenseKeywords exempt matching positions/licenses from
	// validity range checks.
	LifetimeLicenseKeywords []string
	// Default yearly quotas, applied when no quota row exists.
	DefaultVacationQuota decimal.Decimal
	DefaultPersonalQuota decimal.Decimal
	DefaultSickQuota     decimal.Decimal
}

func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	config := &Config{}

	// Database configuration
	dbPort, err := strconv.Atoi(getEnv("DB_PORT", "5432"))
	if err != nil {
		return nil, fmt.Errorf("invalid DB_PORT: %w", err)
	}

	config.Database = DatabaseConfig{
		Host:     getEnv("DB_HOST", "localhost"),
		Port:     dbPort,
		User:     getEnv("DB_USER", "postgres"),
		Password: getEnv("DB_PASSWORD", ""),
		Name:     getEnv("DB_NAME", "allowance"),
		SSLMode:  getEnv("DB_SSL_MODE", "disable"),
	}

	// Application configuration
	appPort, err := strconv.Atoi(getEnv("APP_PORT", "8080"))
	if err != nil {
		return nil, fmt.Errorf("invalid APP_PORT: %w", err)
	}

	config.App = AppConfig{
		Port:     appPort,
		Env:      getEnv("APP_ENV", "development"),
		LogLevel: getEnv("LOG_LEVEL", "info"),
	}

	// Engine configuration
	lookback, err := strconv.Atoi(getEnv("RETRO_LOOKBACK_MONTHS", "1"))
	if err != nil {
		return nil, fmt.Errorf("invalid RETRO_LOOKBACK_MONTHS: %w", err)
	}

	vacationQuota, err := decimal.NewFromString(getEnv("DEFAULT_VACATION_QUOTA", "15"))
	if err != nil {
		return nil, fmt.Errorf("invalid DEFAULT_VACATION_QUOTA: %w", err)
	}
	personalQuota, err := decimal.NewFromString(getEnv("DEFAULT_PERSONAL_QUOTA", "5"))
	if err != nil {
		return nil, fmt.Errorf("invalid DEFAULT_PERSONAL_QUOTA: %w", err)
	}
	sickQuota, err := decimal.NewFromString(getEnv("DEFAULT_SICK_QUOTA", "60"))
	if err != nil {
		return nil, fmt.Errorf("invalid DEFAULT_SICK_QUOTA: %w", err)
	}

	config.Engine = EngineConfig{
		RetroLookbackMonths:     lookback,
		LifetimeLicenseKeywords: getEnvSlice("LIFETIME_LICENSE_KEYWORDS", "lifetime,permanent"),
		DefaultVacationQuota:    vacationQuota,
		DefaultPersonalQuota:    personalQuota,
		DefaultSickQuota:        sickQuota,
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return config, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.Database.Password == "" {
		return fmt.Errorf("DB_PASSWORD is required")
	}
	if c.Engine.RetroLookbackMonths < 0 {
		return fmt.Errorf("RETRO_LOOKBACK_MONTHS must not be negative")
	}
	return nil
}

// DatabaseURL returns the PostgreSQL connection string
func (c *Config) DatabaseURL() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=%s",
		c.Database.User,
		c.Database.Password,
		c.Database.Host,
		c.Database.Port,
		c.Database.Name,
		c.Database.SSLMode,
	)
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvSlice(key, fallback string) []string {
	value := getEnv(key, fallback)
	if value == "" {
		return []string{}
	}
	parts := strings.Split(value, ",")
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	return parts
}
