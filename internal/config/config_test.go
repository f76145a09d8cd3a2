package config

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func validConfig() *Config {
	return &Config{
		Server:   ServerConfig{Port: "8080", Env: "development"},
		Database: DatabaseConfig{URL: "postgres://localhost/e2d?sslmode=disable"},
		Business: BusinessConfig{
			TauxInteretDefaut:      "5",
			MaxReconductions:       3,
			SeuilAlerteSolde:       "50000",
			SeuilAlerteEmpruntable: "100000",
			SyntheseCacheTTL:       "5m",
		},
		Health: HealthConfig{Timeout: "5s"},
	}
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name        string
		mutate      func(*Config)
		expectedErr string
	}{
		{
			name:   "Valid config",
			mutate: func(*Config) {},
		},
		{
			name:        "Missing server port",
			mutate:      func(c *Config) { c.Server.Port = "" },
			expectedErr: "SERVER_PORT",
		},
		{
			name:        "Missing database url",
			mutate:      func(c *Config) { c.Database.URL = "" },
			expectedErr: "DATABASE_URL",
		},
		{
			name:        "Zero max reconductions",
			mutate:      func(c *Config) { c.Business.MaxReconductions = 0 },
			expectedErr: "MAX_RECONDUCTIONS",
		},
		{
			name:        "Non-decimal interest rate",
			mutate:      func(c *Config) { c.Business.TauxInteretDefaut = "cinq" },
			expectedErr: "TAUX_INTERET_DEFAUT",
		},
		{
			name:        "Non-decimal balance threshold",
			mutate:      func(c *Config) { c.Business.SeuilAlerteSolde = "" },
			expectedErr: "SEUIL_ALERTE_SOLDE",
		},
		{
			name:        "Invalid cache TTL",
			mutate:      func(c *Config) { c.Business.SyntheseCacheTTL = "soon" },
			expectedErr: "SYNTHESE_CACHE_TTL",
		},
		{
			name:        "Invalid health timeout",
			mutate:      func(c *Config) { c.Health.Timeout = "never" },
			expectedErr: "HEALTH_CHECK_TIMEOUT",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(cfg)

			err := cfg.Validate()

			if tt.expectedErr == "" {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
				assert.Contains(t, err.Error(), tt.expectedErr)
			}
		})
	}
}

func TestConfigGetters(t *testing.T) {
	cfg := validConfig()

	assert.True(t, cfg.GetTauxInteretDefaut().Equal(decimal.NewFromInt(5)))
	assert.True(t, cfg.GetSeuilAlerteSolde().Equal(decimal.NewFromInt(50000)))
	assert.True(t, cfg.GetSeuilAlerteEmpruntable().Equal(decimal.NewFromInt(100000)))
	assert.Equal(t, 5*time.Minute, cfg.GetSyntheseCacheTTL())
	assert.Equal(t, 5*time.Second, cfg.GetHealthTimeout())
}

func TestConfigEnvironmentFlags(t *testing.T) {
	cfg := validConfig()
	assert.True(t, cfg.IsDevelopment())
	assert.False(t, cfg.IsProduction())

	cfg.Server.Env = "production"
	assert.False(t, cfg.IsDevelopment())
	assert.True(t, cfg.IsProduction())
}
