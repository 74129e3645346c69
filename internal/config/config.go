package config

import (
	"fmt"
	"strings"
	"time"

	apperrors "condo-ops-backend/internal/errors"

	"github.com/spf13/viper"
)

const defaultJWTSecret = "your-secret-key-change-in-production"

// Config holds all configuration for the application
type Config struct {
	Environment string `mapstructure:"ENVIRONMENT"`
	Port        string `mapstructure:"PORT"`
	LogLevel    string `mapstructure:"LOG_LEVEL"`

	// Database configuration
	DatabaseURL      string `mapstructure:"DATABASE_URL"`
	DatabaseHost     string `mapstructure:"DB_HOST"`
	DatabasePort     string `mapstructure:"DB_PORT"`
	DatabaseUser     string `mapstructure:"DB_USER"`
	DatabasePassword string `mapstructure:"DB_PASSWORD"`
	DatabaseName     string `mapstructure:"DB_NAME"`
	DatabaseSSLMode  string `mapstructure:"DB_SSL_MODE"`

	// Document store backend: postgres or memory
	StoreDriver string `mapstructure:"STORE_DRIVER"`

	// JWT configuration
	JWTSecret string `mapstructure:"JWT_SECRET"`

	// CORS configuration
	AllowedOrigins []string `mapstructure:"ALLOWED_ORIGINS"`

	// Tenant (condominium) scope
	TenantID       string `mapstructure:"TENANT_ID"`
	TenantTimezone string `mapstructure:"TENANT_TIMEZONE"`

	// Scheduling
	CleaningWindowStart string        `mapstructure:"CLEANING_WINDOW_START"`
	CleaningWindowEnd   string        `mapstructure:"CLEANING_WINDOW_END"`
	PreparingLookahead  time.Duration `mapstructure:"PREPARING_LOOKAHEAD"`
	SchedulerEnabled    bool          `mapstructure:"SCHEDULER_ENABLED"`
	BoardJobAt          string        `mapstructure:"BOARD_JOB_AT"`
	ReconcileInterval   time.Duration `mapstructure:"RECONCILE_INTERVAL"`
}

// Load reads configuration from environment variables and config files
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	viper.AutomaticEnv()

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	if config.DatabaseURL == "" {
		config.DatabaseURL = buildDatabaseURL(&config)
	}

	if err := validate(&config); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &config, nil
}

func setDefaults() {
	viper.SetDefault("ENVIRONMENT", "development")
	viper.SetDefault("PORT", "7008")
	viper.SetDefault("LOG_LEVEL", "info")

	// Database defaults
	viper.SetDefault("DB_HOST", "localhost")
	viper.SetDefault("DB_PORT", "5432")
	viper.SetDefault("DB_USER", "postgres")
	viper.SetDefault("DB_PASSWORD", "postgres")
	viper.SetDefault("DB_NAME", "condo_ops")
	viper.SetDefault("DB_SSL_MODE", "disable")

	viper.SetDefault("STORE_DRIVER", "postgres")

	// JWT defaults
	viper.SetDefault("JWT_SECRET", defaultJWTSecret)

	// CORS defaults
	viper.SetDefault("ALLOWED_ORIGINS", []string{"http://localhost:3000", "http://localhost:5173"})

	// Tenant defaults
	viper.SetDefault("TENANT_ID", "default")
	viper.SetDefault("TENANT_TIMEZONE", "America/Sao_Paulo")

	// Scheduling defaults
	viper.SetDefault("CLEANING_WINDOW_START", "08:00")
	viper.SetDefault("CLEANING_WINDOW_END", "10:00")
	viper.SetDefault("PREPARING_LOOKAHEAD", 2*time.Hour)
	viper.SetDefault("SCHEDULER_ENABLED", true)
	viper.SetDefault("BOARD_JOB_AT", "06:00")
	viper.SetDefault("RECONCILE_INTERVAL", 15*time.Minute)
}

func buildDatabaseURL(config *Config) string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=%s",
		config.DatabaseUser,
		config.DatabasePassword,
		config.DatabaseHost,
		config.DatabasePort,
		config.DatabaseName,
		config.DatabaseSSLMode,
	)
}

func validate(config *Config) error {
	if config.Environment == "production" {
		if config.JWTSecret == defaultJWTSecret {
			return apperrors.ErrJWTSecretNotSet
		}
	}

	switch config.StoreDriver {
	case "postgres":
		if config.DatabaseName == "" {
			return fmt.Errorf("database name is required")
		}
	case "memory":
	default:
		return apperrors.ErrUnknownStoreDriver
	}

	if _, err := time.LoadLocation(config.TenantTimezone); err != nil {
		return apperrors.ErrInvalidTenantTZ
	}

	// HH:MM strings compare lexicographically
	if len(config.CleaningWindowStart) != 5 || len(config.CleaningWindowEnd) != 5 ||
		strings.Compare(config.CleaningWindowStart, config.CleaningWindowEnd) >= 0 {
		return apperrors.ErrInvalidCleaningHours
	}

	if config.PreparingLookahead < 0 {
		return fmt.Errorf("PREPARING_LOOKAHEAD must not be negative")
	}

	return nil
}

// Location returns the tenant's time zone, falling back to UTC
func (c *Config) Location() *time.Location {
	loc, err := time.LoadLocation(c.TenantTimezone)
	if err != nil {
		return time.UTC
	}
	return loc
}

// IsDevelopment returns true if the environment is development
func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}

// IsProduction returns true if the environment is production
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}
