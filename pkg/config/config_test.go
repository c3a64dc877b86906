package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("SERVER_PORT", "")
	t.Setenv("JWT_EXPIRATION_HOURS", "")
	t.Setenv("DB_MAX_CONNS", "")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, 24*time.Hour, cfg.JWT.Expiration)
	assert.Equal(t, int32(10), cfg.Database.MaxConns)
	assert.NotEmpty(t, cfg.Seed.Categories)
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("JWT_EXPIRATION_HOURS", "2")
	t.Setenv("LOG_LEVEL", "debug")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Server.Port)
	assert.Equal(t, 2*time.Hour, cfg.JWT.Expiration)
	assert.Equal(t, "debug", cfg.Logger.Level)
}

func TestLoad_InvalidNumber(t *testing.T) {
	t.Setenv("SERVER_READ_TIMEOUT", "soon")

	_, err := Load()
	assert.ErrorContains(t, err, "SERVER_READ_TIMEOUT")
}

func TestDatabaseConfig_URL(t *testing.T) {
	c := DatabaseConfig{
		Host:     "db",
		Port:     "5432",
		User:     "app",
		Password: "p@ss word",
		DBName:   "expenses",
		SSLMode:  "disable",
	}

	assert.Equal(t, "pgx5://app:p%40ss%20word@db:5432/expenses?sslmode=disable", c.URL("pgx5"))
	assert.Contains(t, c.DSN(), "dbname=expenses")
}
