package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("APP_ENV", "test")
	t.Setenv("HTTP_ADDR", "127.0.0.1:8080")
	t.Setenv("SHUTDOWN_TIMEOUT", "1s")
	t.Setenv("LOG_LEVEL", "info")
	t.Setenv("LOG_FORMAT", "json")
	t.Setenv("DB_DRIVER", "sqlite")
	t.Setenv("DATABASE_URL", "file::memory:?cache=shared")
	t.Setenv("DB_CONN_MAX_LIFETIME", "90s")
	t.Setenv("RATE_LIMIT_RPS", "5")
	t.Setenv("RATE_LIMIT_BURST", "7")
	t.Setenv("GOMAXPROCS", "0")

	c, err := Load()
	require.NoError(t, err)
	require.Equal(t, "test", c.AppEnv)
	require.Equal(t, "sqlite", c.DBDriver)
	require.Equal(t, time.Second, c.ShutdownTimeout)
	require.Equal(t, 90*time.Second, c.DBConnMaxLifetime)
	require.Equal(t, 5.0, c.RateLimitRPS)
	require.Equal(t, 7, c.RateLimitBurst)
	require.Equal(t, 25, c.DBMaxOpenConns)
	require.True(t, c.IsDevelopment())
	require.Same(t, c, Get())
}

func TestLoadRejectsUnknownDriver(t *testing.T) {
	t.Setenv("DB_DRIVER", "mysql")
	t.Setenv("DATABASE_URL", "root@tcp(localhost:3306)/8d")

	_, err := Load()
	require.Error(t, err)
	require.Contains(t, err.Error(), "DBDriver")
}

func TestLoadRequiresDatabaseURL(t *testing.T) {
	t.Setenv("DB_DRIVER", "postgres")
	t.Setenv("DATABASE_URL", "")

	_, err := Load()
	require.Error(t, err)
}
