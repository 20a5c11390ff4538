package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/eightd-studio/engine/internal/models"
	"github.com/eightd-studio/engine/internal/testutil"
	appErr "github.com/eightd-studio/engine/pkg/errors"
)

func ids(rows []models.Cause) []uint {
	out := make([]uint, 0, len(rows))
	for _, r := range rows {
		out = append(out, r.ID)
	}
	return out
}

func TestProblemListNewestFirst(t *testing.T) {
	db := testutil.NewDB(t)
	repo := NewProblemRepository(db)
	ctx := context.Background()

	older := models.Problem{Title: "a", Description: "a", ResponsibleTeam: "t", Status: "open", CreatedAt: testutil.Epoch}
	newer := models.Problem{Title: "b", Description: "b", ResponsibleTeam: "t", Status: "open", CreatedAt: testutil.Epoch.Add(time.Hour)}
	require.NoError(t, repo.Create(ctx, &older))
	require.NoError(t, repo.Create(ctx, &newer))

	got, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, newer.ID, got[0].ID)
	assert.Equal(t, older.ID, got[1].ID)
}

func TestProblemCRUD(t *testing.T) {
	db := testutil.NewDB(t)
	repo := NewProblemRepository(db)
	ctx := context.Background()

	p := testutil.SeedProblem(t, db, "Leaking valve")

	var loaded models.Problem
	require.NoError(t, repo.GetByID(ctx, p.ID, &loaded))
	assert.Equal(t, "Leaking valve", loaded.Title)

	loaded.Status = models.StatusClosed
	require.NoError(t, repo.Update(ctx, &loaded))

	var again models.Problem
	require.NoError(t, repo.GetByID(ctx, p.ID, &again))
	assert.Equal(t, models.StatusClosed, again.Status)

	ok, err := repo.Exists(ctx, p.ID)
	require.NoError(t, err)
	assert.True(t, ok)

	err = repo.GetByID(ctx, 9999, &again)
	require.True(t, appErr.IsCode(err, appErr.CodeNotFound))
	assert.Equal(t, "Problem not found", err.(*appErr.AppError).Message)
}

func TestProblemDeleteRemovesForest(t *testing.T) {
	db := testutil.NewDB(t)
	repo := NewProblemRepository(db)
	ctx := context.Background()

	p := testutil.SeedProblem(t, db, "owner")
	other := testutil.SeedProblem(t, db, "bystander")
	c10 := testutil.SeedCause(t, db, p.ID, nil, 0, 0)
	testutil.SeedCause(t, db, p.ID, &c10.ID, 0, time.Second)
	testutil.SeedCause(t, db, p.ID, nil, 1, 2*time.Second)
	testutil.SeedCause(t, db, other.ID, nil, 0, 0)

	removed, err := repo.DeleteWithCauses(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(3), removed)
	assert.Zero(t, testutil.CountCauses(t, db, p.ID))
	assert.Equal(t, int64(1), testutil.CountCauses(t, db, other.ID))

	ok, err := repo.Exists(ctx, p.ID)
	require.NoError(t, err)
	assert.False(t, ok)

	err = repo.Delete(ctx, p.ID)
	assert.True(t, appErr.IsCode(err, appErr.CodeNotFound))
}

func TestCauseListByProblemTreeOrder(t *testing.T) {
	db := testutil.NewDB(t)
	repo := NewCauseRepository(db)
	p := testutil.SeedProblem(t, db, "ordering")
	other := testutil.SeedProblem(t, db, "other")

	late := testutil.SeedCause(t, db, p.ID, nil, 1, 0)
	tieB := testutil.SeedCause(t, db, p.ID, nil, 0, 5*time.Second)
	tieA := testutil.SeedCause(t, db, p.ID, nil, 0, time.Second)
	// same order_index and created_at: id decides
	sameA := testutil.SeedCause(t, db, p.ID, nil, 2, time.Second)
	sameB := testutil.SeedCause(t, db, p.ID, nil, 2, time.Second)
	testutil.SeedCause(t, db, other.ID, nil, 0, 0)

	got, err := repo.ListByProblem(context.Background(), p.ID)
	require.NoError(t, err)
	assert.Equal(t, []uint{tieA.ID, tieB.ID, late.ID, sameA.ID, sameB.ID}, ids(got))
}

func TestCauseListRootCauses(t *testing.T) {
	db := testutil.NewDB(t)
	repo := NewCauseRepository(db)
	ctx := context.Background()
	p := testutil.SeedProblem(t, db, "flagged")

	plain := testutil.SeedCause(t, db, p.ID, nil, 0, 0)
	flagged := testutil.SeedCause(t, db, p.ID, &plain.ID, 0, time.Second)
	flagged.IsRootCause = true
	flagged.PermanentAction = testutil.Ptr("Add torque check")
	require.NoError(t, repo.Update(ctx, &flagged))

	got, err := repo.ListRootCauses(ctx, p.ID)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, flagged.ID, got[0].ID)
	assert.Equal(t, "Add torque check", *got[0].PermanentAction)
}

func TestCauseDeleteSubtree(t *testing.T) {
	db := testutil.NewDB(t)
	repo := NewCauseRepository(db)
	ctx := context.Background()
	p := testutil.SeedProblem(t, db, "subtree")

	// a ── b ── c
	//  └── d
	// e
	a := testutil.SeedCause(t, db, p.ID, nil, 0, 0)
	b := testutil.SeedCause(t, db, p.ID, &a.ID, 0, time.Second)
	testutil.SeedCause(t, db, p.ID, &b.ID, 0, 2*time.Second)
	testutil.SeedCause(t, db, p.ID, &a.ID, 1, 3*time.Second)
	e := testutil.SeedCause(t, db, p.ID, nil, 1, 4*time.Second)

	removed, err := repo.DeleteSubtree(ctx, a.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(4), removed)

	left, err := repo.ListByProblem(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, []uint{e.ID}, ids(left))

	_, err = repo.DeleteSubtree(ctx, a.ID)
	assert.True(t, appErr.IsCode(err, appErr.CodeNotFound))
	assert.True(t, appErr.IsCode(repo.Delete(ctx, a.ID), appErr.CodeNotFound))

	require.NoError(t, repo.Delete(ctx, e.ID))
	assert.Zero(t, testutil.CountCauses(t, db, p.ID))
}

func TestTranslate(t *testing.T) {
	assert.Nil(t, translate(nil, "Cause", "get"))

	err := translate(gorm.ErrRecordNotFound, "Cause", "get")
	assert.True(t, appErr.IsCode(err, appErr.CodeNotFound))

	fk := &pgconn.PgError{Code: pgForeignKeyViolation, Message: "violates foreign key constraint"}
	err = translate(fk, "Cause", "create")
	assert.True(t, appErr.IsCode(err, appErr.CodeNotFound))
	assert.ErrorIs(t, err, fk)

	boom := errors.New("disk I/O error")
	err = translate(boom, "Cause", "update")
	assert.True(t, appErr.IsCode(err, appErr.CodeInternal))
	assert.Equal(t, "internal: update Cause failed: disk I/O error", err.Error())
}
