package auth

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/viper"
)

// AuthConfig holds the token settings of the API
type AuthConfig struct {
	JWTSecret string        `yaml:"jwt_secret" json:"jwt_secret" mapstructure:"jwt_secret"`
	Issuer    string        `yaml:"issuer" json:"issuer" mapstructure:"issuer"`
	TokenTTL  time.Duration `yaml:"token_ttl" json:"token_ttl" mapstructure:"token_ttl"`
}

// LoadAuthConfig loads and validates authentication configuration.
// JWT_SECRET from the environment wins over the file.
func LoadAuthConfig(configPath string) (*AuthConfig, error) {
	v := viper.New()

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName("auth")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./config")
	}

	setAuthDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok && !os.IsNotExist(err) {
			return nil, fmt.Errorf("error reading auth config file: %w", err)
		}
	}

	v.AutomaticEnv()

	var config AuthConfig
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("error unmarshaling auth config: %w", err)
	}

	if jwtSecret := os.Getenv("JWT_SECRET"); jwtSecret != "" {
		config.JWTSecret = jwtSecret
	}

	if err := config.ValidateConfig(); err != nil {
		return nil, fmt.Errorf("auth config validation failed: %w", err)
	}
	return &config, nil
}

// ValidateConfig validates the authentication configuration
func (c *AuthConfig) ValidateConfig() error {
	if c.JWTSecret == "" {
		return fmt.Errorf("JWT secret is required")
	}
	if c.Issuer == "" {
		return fmt.Errorf("issuer is required")
	}
	if c.TokenTTL <= 0 {
		return fmt.Errorf("token TTL must be positive")
	}
	return nil
}

func setAuthDefaults(v *viper.Viper) {
	v.SetDefault("issuer", "condo-ops-backend")
	v.SetDefault("token_ttl", 12*time.Hour)
	// No default JWT secret - must be provided via environment variable or file
}
