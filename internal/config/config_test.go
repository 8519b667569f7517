package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	t.Run("loads defaults with API key set", func(t *testing.T) {
		t.Setenv("API_KEY", "test-key")

		cfg, err := Load()
		require.NoError(t, err)

		assert.Equal(t, 8080, cfg.Port)
		assert.Equal(t, "cardforge", cfg.ServiceName)
		assert.Equal(t, "cardforge", cfg.DBName)
		assert.Equal(t, "test-key", cfg.APIKey)
	})

	t.Run("fails without API key", func(t *testing.T) {
		t.Setenv("API_KEY", "")

		_, err := Load()
		assert.Error(t, err)
	})

	t.Run("rejects non-numeric port", func(t *testing.T) {
		t.Setenv("API_KEY", "test-key")
		t.Setenv("PORT", "not-a-port")

		_, err := Load()
		assert.Error(t, err)
	})

	t.Run("builds connection string from parts", func(t *testing.T) {
		cfg := &Config{
			DBUser:     "forge",
			DBPassword: "secret",
			DBHost:     "db",
			DBPort:     "5433",
			DBName:     "saves",
		}

		assert.Equal(t, "postgres://forge:secret@db:5433/saves?sslmode=disable", cfg.GetDBConnString())
	})
}

func TestValidateEnv(t *testing.T) {
	setAll := func(t *testing.T) {
		t.Setenv("ENV_SCHEMA_VERSION", ExpectedEnvSchemaVersion)
		t.Setenv("DB_USER", "u")
		t.Setenv("DB_PASSWORD", "p")
		t.Setenv("DB_HOST", "h")
		t.Setenv("DB_PORT", "5432")
		t.Setenv("DB_NAME", "n")
		t.Setenv("API_KEY", "k")
	}

	t.Run("passes when everything is set", func(t *testing.T) {
		setAll(t)
		assert.NoError(t, ValidateEnv())
	})

	t.Run("fails on schema version mismatch", func(t *testing.T) {
		setAll(t)
		t.Setenv("ENV_SCHEMA_VERSION", "0.9")
		assert.Error(t, ValidateEnv())
	})

	t.Run("reports missing variables", func(t *testing.T) {
		setAll(t)
		t.Setenv("API_KEY", "")
		err := ValidateEnv()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "API_KEY")
	})
}
