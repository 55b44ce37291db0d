package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"PORT", "ENVIRONMENT", "LOG_LEVEL", "STORAGE_DRIVER", "DATA_DIR",
		"MONGODB_URI", "MONGODB_PASSWORD", "MONGODB_DATABASE", "AUTH_PROVIDER",
		"JWT_SECRET", "JWKS_URL", "TOKEN_TTL", "ADMIN_USERNAME", "ADMIN_PASSWORD",
		"SUPABASE_URL", "SUPABASE_URL_ANON_KEY", "CLOUDINARY_CLOUD_NAME",
		"CLOUDINARY_API_KEY", "CLOUDINARY_API_SECRET", "CARD_PAYMENT_DELAY",
		"UPI_PAYMENT_DELAY", "ALLOWED_ORIGINS",
	} {
		t.Setenv(key, "")
	}
}

func TestLoadConfig_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, StorageFile, cfg.StorageDriver)
	assert.Equal(t, "data", cfg.DataDir)
	assert.Equal(t, AuthStatic, cfg.AuthProvider)
	assert.Equal(t, "admin", cfg.AdminUsername)
	assert.Equal(t, 24*time.Hour, cfg.TokenTTL)
	assert.Equal(t, 3*time.Second, cfg.CardPaymentDelay)
	assert.Equal(t, 2*time.Second, cfg.UPIPaymentDelay)
	assert.Equal(t, []string{"http://localhost:3000"}, cfg.AllowedOrigins)
	assert.NotEmpty(t, cfg.JWTSecret)
	assert.True(t, cfg.IsDevelopment())
	assert.False(t, cfg.HasCloudinary())
}

func TestLoadConfig_Overrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("STORAGE_DRIVER", "Mongo")
	t.Setenv("MONGODB_URI", "mongodb+srv://app:<password>@cluster0.example.net")
	t.Setenv("MONGODB_PASSWORD", "pw")
	t.Setenv("TOKEN_TTL", "90m")
	t.Setenv("UPI_PAYMENT_DELAY", "0s")
	t.Setenv("ALLOWED_ORIGINS", "https://a.example, https://b.example ,")

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, StorageMongo, cfg.StorageDriver)
	assert.Equal(t, 90*time.Minute, cfg.TokenTTL)
	assert.Zero(t, cfg.UPIPaymentDelay)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.AllowedOrigins)
}

func TestLoadConfig_Invalid(t *testing.T) {
	tests := map[string]map[string]string{
		"unknown driver":         {"STORAGE_DRIVER": "sqlite"},
		"mongo without uri":      {"STORAGE_DRIVER": "mongo"},
		"mongo without password": {"STORAGE_DRIVER": "mongo", "MONGODB_URI": "mongodb://u:<password>@h"},
		"supabase without url":   {"AUTH_PROVIDER": "supabase"},
		"unknown provider":       {"AUTH_PROVIDER": "ldap"},
		"bad ttl":                {"TOKEN_TTL": "soon"},
		"negative delay":         {"CARD_PAYMENT_DELAY": "-1s"},
		"production secret":      {"ENVIRONMENT": "production"},
	}

	for name, env := range tests {
		t.Run(name, func(t *testing.T) {
			clearEnv(t)
			for k, v := range env {
				t.Setenv(k, v)
			}
			_, err := LoadConfig()
			assert.Error(t, err)
		})
	}
}
