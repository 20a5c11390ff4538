//go:build integration

package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	"gorm.io/gorm"

	"github.com/eightd-studio/engine/internal/models"
	"github.com/eightd-studio/engine/internal/testutil"
	"github.com/eightd-studio/engine/pkg/database"
	appErr "github.com/eightd-studio/engine/pkg/errors"
)

func setupPostgres(t *testing.T) *gorm.DB {
	t.Helper()
	ctx := context.Background()

	ctr, err := tcpostgres.Run(ctx, "postgres:16-alpine",
		tcpostgres.WithDatabase("eightd"),
		tcpostgres.WithUsername("eightd"),
		tcpostgres.WithPassword("eightd"),
		tcpostgres.BasicWaitStrategies(),
	)
	testcontainers.CleanupContainer(t, ctr)
	require.NoError(t, err)

	dsn, err := ctr.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	db, err := database.Open(ctx, database.Options{Driver: "postgres", DSN: dsn, MaxOpenConns: 5})
	require.NoError(t, err)
	t.Cleanup(func() { _ = database.Close(db) })
	require.NoError(t, database.Migrate(db))
	return db
}

func TestPostgresCauseLifecycle(t *testing.T) {
	db := setupPostgres(t)
	ctx := context.Background()
	problems := NewProblemRepository(db)
	causes := NewCauseRepository(db)

	p := testutil.SeedProblem(t, db, "Burr on shaft")
	root := testutil.SeedCause(t, db, p.ID, nil, 0, 0)
	child := testutil.SeedCause(t, db, p.ID, &root.ID, 0, time.Second)
	testutil.SeedCause(t, db, p.ID, &child.ID, 0, 2*time.Second)
	keep := testutil.SeedCause(t, db, p.ID, nil, 1, 3*time.Second)

	removed, err := causes.DeleteSubtree(ctx, root.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(3), removed)

	left, err := causes.ListByProblem(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, []uint{keep.ID}, ids(left))

	n, err := problems.DeleteWithCauses(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)
}

func TestPostgresForeignKeyViolationIsNotFound(t *testing.T) {
	db := setupPostgres(t)
	causes := NewCauseRepository(db)

	err := causes.Create(context.Background(), &models.Cause{ProblemID: 4242, CauseText: "orphan"})
	require.Error(t, err)
	assert.True(t, appErr.IsCode(err, appErr.CodeNotFound))
}
