package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_DefaultValues(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "5000", cfg.Port)
	assert.Equal(t, "development", cfg.Env)
	assert.Equal(t, "mongodb://localhost:27017", cfg.MongoURI)
	assert.Equal(t, "shop_db", cfg.DatabaseName)
	assert.Equal(t, "uploads", cfg.UploadDir)
	assert.Equal(t, "admin@gmail.com", cfg.AdminEmail)
	assert.Equal(t, []string{"http://localhost:5173"}, cfg.AllowedOrigins)
	assert.False(t, cfg.Production())
}

func TestLoad_EnvironmentOverrides(t *testing.T) {
	tests := []struct {
		name     string
		envVars  map[string]string
		expected func(t *testing.T, cfg *Config)
	}{
		{
			name:    "port override",
			envVars: map[string]string{"PORT": "8080"},
			expected: func(t *testing.T, cfg *Config) {
				assert.Equal(t, "8080", cfg.Port)
			},
		},
		{
			name:    "production env",
			envVars: map[string]string{"ENV": "production"},
			expected: func(t *testing.T, cfg *Config) {
				assert.True(t, cfg.Production())
			},
		},
		{
			name: "multiple origins",
			envVars: map[string]string{
				"ALLOWED_ORIGINS": "http://localhost:5173,https://shop.example.com",
			},
			expected: func(t *testing.T, cfg *Config) {
				assert.Equal(t,
					[]string{"http://localhost:5173", "https://shop.example.com"},
					cfg.AllowedOrigins)
			},
		},
		{
			name: "store and secret override",
			envVars: map[string]string{
				"MONGO_URI":  "mongodb://db:27017",
				"JWT_SECRET": "s3cret",
			},
			expected: func(t *testing.T, cfg *Config) {
				assert.Equal(t, "mongodb://db:27017", cfg.MongoURI)
				assert.Equal(t, "s3cret", cfg.JWTSecret)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for k, v := range tt.envVars {
				t.Setenv(k, v)
			}

			cfg, err := Load()
			require.NoError(t, err)
			tt.expected(t, cfg)
		})
	}
}
