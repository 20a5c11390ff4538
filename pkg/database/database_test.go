package database

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestOpenSQLiteAndMigrate(t *testing.T) {
	dsn := filepath.Join(t.TempDir(), "nested", "8d.sqlite")
	db, err := Open(context.Background(), Options{Driver: "sqlite", DSN: dsn, MaxOpenConns: 1, LogSQL: true, Logger: zap.NewNop()})
	require.NoError(t, err)
	t.Cleanup(func() { _ = Close(db) })

	require.NoError(t, Migrate(db))
	require.NoError(t, Migrate(db), "migrations must be re-runnable")

	require.True(t, db.Migrator().HasTable("problems"))
	require.True(t, db.Migrator().HasTable("root_causes"))
	require.True(t, db.Migrator().HasIndex("root_causes", "idx_root_causes_flagged"))
	require.NoError(t, Ping(context.Background(), db))
}

func TestOpenRejectsUnknownDriver(t *testing.T) {
	_, err := Open(context.Background(), Options{Driver: "oracle", DSN: "x"})
	require.ErrorContains(t, err, "unsupported database driver")
}

func TestBackoffCapsDelay(t *testing.T) {
	b := backoff{maxRetries: 5, delay: 500 * time.Millisecond, maxDelay: 5 * time.Second}
	require.Equal(t, 500*time.Millisecond, b.nextDelay(0))
	require.Equal(t, 2*time.Second, b.nextDelay(2))
	require.Equal(t, 5*time.Second, b.nextDelay(4))
}
