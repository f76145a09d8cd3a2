package config

import (
	"fmt"
	"time"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
	"github.com/spf13/viper"
)

// Config holds all configuration for our application
type Config struct {
	Server    ServerConfig    `mapstructure:"server"`
	Database  DatabaseConfig  `mapstructure:"database"`
	Redis     RedisConfig     `mapstructure:"redis"`
	Scheduler SchedulerConfig `mapstructure:"scheduler"`
	Business  BusinessConfig  `mapstructure:"business"`
	Health    HealthConfig    `mapstructure:"health"`
}

type ServerConfig struct {
	Port string `mapstructure:"SERVER_PORT"`
	Host string `mapstructure:"SERVER_HOST"`
	Env  string `mapstructure:"ENV"`
}

type DatabaseConfig struct {
	URL      string `mapstructure:"DATABASE_URL"`
	Host     string `mapstructure:"DATABASE_HOST"`
	Port     string `mapstructure:"DATABASE_PORT"`
	Name     string `mapstructure:"DATABASE_NAME"`
	User     string `mapstructure:"DATABASE_USER"`
	Password string `mapstructure:"DATABASE_PASSWORD"`
}

type RedisConfig struct {
	Host     string `mapstructure:"REDIS_HOST"`
	Port     string `mapstructure:"REDIS_PORT"`
	Password string `mapstructure:"REDIS_PASSWORD"`
	DB       int    `mapstructure:"REDIS_DB"`
}

type SchedulerConfig struct {
	Timezone string `mapstructure:"SCHEDULER_TIMEZONE"`
}

type BusinessConfig struct {
	TauxInteretDefaut      string `mapstructure:"TAUX_INTERET_DEFAUT"`
	MaxReconductions       int    `mapstructure:"MAX_RECONDUCTIONS"`
	SeuilAlerteSolde       string `mapstructure:"SEUIL_ALERTE_SOLDE"`
	SeuilAlerteEmpruntable string `mapstructure:"SEUIL_ALERTE_EMPRUNTABLE"`
	SyntheseCacheTTL       string `mapstructure:"SYNTHESE_CACHE_TTL"`
}

type HealthConfig struct {
	Timeout string `mapstructure:"HEALTH_CHECK_TIMEOUT"`
}

// Load reads configuration from environment variables and files
func Load() (*Config, error) {
	// Optional .env for local development
	_ = godotenv.Load()

	// Set defaults
	viper.SetDefault("SERVER_PORT", "8080")
	viper.SetDefault("SERVER_HOST", "0.0.0.0")
	viper.SetDefault("ENV", "development")
	viper.SetDefault("TAUX_INTERET_DEFAUT", "5")
	viper.SetDefault("MAX_RECONDUCTIONS", 3)
	viper.SetDefault("SEUIL_ALERTE_SOLDE", "50000")
	viper.SetDefault("SEUIL_ALERTE_EMPRUNTABLE", "100000")
	viper.SetDefault("SYNTHESE_CACHE_TTL", "5m")
	viper.SetDefault("SCHEDULER_TIMEZONE", "Africa/Douala")
	viper.SetDefault("HEALTH_CHECK_TIMEOUT", "5s")
	viper.SetDefault("REDIS_HOST", "localhost")
	viper.SetDefault("REDIS_PORT", "6379")
	viper.SetDefault("REDIS_DB", 0)

	// Read from environment variables
	viper.AutomaticEnv()

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}

	// Validate configuration
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if c.Server.Port == "" {
		return fmt.Errorf("SERVER_PORT is required")
	}

	if c.Database.URL == "" {
		return fmt.Errorf("DATABASE_URL is required")
	}

	if c.Business.MaxReconductions <= 0 {
		return fmt.Errorf("MAX_RECONDUCTIONS must be greater than 0")
	}

	if _, err := decimal.NewFromString(c.Business.TauxInteretDefaut); err != nil {
		return fmt.Errorf("TAUX_INTERET_DEFAUT must be a valid decimal: %w", err)
	}

	if _, err := decimal.NewFromString(c.Business.SeuilAlerteSolde); err != nil {
		return fmt.Errorf("SEUIL_ALERTE_SOLDE must be a valid decimal: %w", err)
	}

	if _, err := decimal.NewFromString(c.Business.SeuilAlerteEmpruntable); err != nil {
		return fmt.Errorf("SEUIL_ALERTE_EMPRUNTABLE must be a valid decimal: %w", err)
	}

	if _, err := time.ParseDuration(c.Business.SyntheseCacheTTL); err != nil {
		return fmt.Errorf("SYNTHESE_CACHE_TTL must be a valid duration: %w", err)
	}

	if _, err := time.ParseDuration(c.Health.Timeout); err != nil {
		return fmt.Errorf("HEALTH_CHECK_TIMEOUT must be a valid duration: %w", err)
	}

	return nil
}

// IsDevelopment returns true if running in development environment
func (c *Config) IsDevelopment() bool {
	return c.Server.Env == "development" || c.Server.Env == "dev"
}

// IsProduction returns true if running in production environment
func (c *Config) IsProduction() bool {
	return c.Server.Env == "production" || c.Server.Env == "prod"
}

// GetTauxInteretDefaut returns the default interest rate (percent) as decimal
func (c *Config) GetTauxInteretDefaut() decimal.Decimal {
	taux, _ := decimal.NewFromString(c.Business.TauxInteretDefaut)
	return taux
}

// GetSeuilAlerteSolde returns the low-balance alert threshold as decimal
func (c *Config) GetSeuilAlerteSolde() decimal.Decimal {
	seuil, _ := decimal.NewFromString(c.Business.SeuilAlerteSolde)
	return seuil
}

// GetSeuilAlerteEmpruntable returns the lendable-fund alert threshold as decimal
func (c *Config) GetSeuilAlerteEmpruntable() decimal.Decimal {
	seuil, _ := decimal.NewFromString(c.Business.SeuilAlerteEmpruntable)
	return seuil
}

// GetSyntheseCacheTTL returns the synthese cache lifetime as duration
func (c *Config) GetSyntheseCacheTTL() time.Duration {
	ttl, _ := time.ParseDuration(c.Business.SyntheseCacheTTL)
	return ttl
}

// GetHealthTimeout returns the health check timeout as duration
func (c *Config) GetHealthTimeout() time.Duration {
	timeout, _ := time.ParseDuration(c.Health.Timeout)
	return timeout
}
