package config

import (
	"testing"
	"time"

	"github.com/slighter12/go-lib/database/postgres"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfig_ApplyDefaults(t *testing.T) {
	cfg := &Config{}
	cfg.applyDefaults()

	assert.Equal(t, defaultMaxRequestBodySize, cfg.HTTP.MaxRequestBodySize)
	assert.Equal(t, StorageDriverPostgres, cfg.Storage.Driver)
	assert.Equal(t, defaultProvisionTimeout, cfg.Storage.ProvisionTimeout)
	assert.Equal(t, defaultFanOutLimit, cfg.Storage.FanOutLimit)
	require.NotNil(t, cfg.Auth)
	assert.Equal(t, time.Hour, cfg.Auth.TokenTTL)
	assert.Equal(t, defaultBcryptCost, cfg.Auth.BcryptCost)
	assert.Equal(t, DefaultCredentialPolicy(), cfg.CredentialPolicy)
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(cfg *Config)
		wantErr string
	}{
		{
			name:    "missing signing secret",
			mutate:  func(cfg *Config) { cfg.SecretKey.Access = "  " },
			wantErr: "secretKey.access",
		},
		{
			name:    "postgres driver without connection",
			mutate:  func(cfg *Config) { cfg.Postgres = nil },
			wantErr: "postgres connection is required",
		},
		{
			name: "memory driver without catalog",
			mutate: func(cfg *Config) {
				cfg.Storage.Driver = StorageDriverMemory
				cfg.Storage.CatalogPath = ""
			},
			wantErr: "storage.catalogPath",
		},
		{
			name:    "unknown driver",
			mutate:  func(cfg *Config) { cfg.Storage.Driver = "mongo" },
			wantErr: "unknown storage driver",
		},
		{
			name:   "valid postgres",
			mutate: func(cfg *Config) {},
		},
		{
			name: "valid memory",
			mutate: func(cfg *Config) {
				cfg.Storage.Driver = StorageDriverMemory
				cfg.Storage.CatalogPath = "config/seeds.yaml"
				cfg.Postgres = nil
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &Config{Postgres: &postgres.DBConn{}}
			cfg.SecretKey.Access = "secret"
			cfg.applyDefaults()
			tt.mutate(cfg)

			err := cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)

				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}
