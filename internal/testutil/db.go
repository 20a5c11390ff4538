// Package testutil holds fixtures shared by package tests.
package testutil

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"gorm.io/gorm"

	"github.com/eightd-studio/engine/internal/models"
	"github.com/eightd-studio/engine/pkg/database"
)

// NewDB opens a migrated SQLite database private to the test.
func NewDB(t testing.TB) *gorm.DB {
	t.Helper()
	dsn := filepath.Join(t.TempDir(), "8d.sqlite")
	db, err := database.Open(context.Background(), database.Options{Driver: "sqlite", DSN: dsn, MaxOpenConns: 1})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	t.Cleanup(func() { _ = database.Close(db) })
	if err := database.Migrate(db); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

// Epoch is a fixed base time so fixtures order deterministically.
var Epoch = time.Date(2025, 3, 1, 8, 0, 0, 0, time.UTC)

// SeedProblem inserts an open problem.
func SeedProblem(t testing.TB, db *gorm.DB, title string) models.Problem {
	t.Helper()
	p := models.Problem{
		Title:           title,
		Description:     title + " description",
		ResponsibleTeam: "Quality",
		Status:          models.StatusOpen,
	}
	if err := db.Create(&p).Error; err != nil {
		t.Fatalf("seed problem: %v", err)
	}
	return p
}

// SeedCause inserts a cause. created is an offset from Epoch and fixes the
// created_at tie-break.
func SeedCause(t testing.TB, db *gorm.DB, problemID uint, parentID *uint, order int, created time.Duration) models.Cause {
	t.Helper()
	c := models.Cause{
		ProblemID:  problemID,
		ParentID:   parentID,
		CauseText:  "why",
		OrderIndex: order,
		CreatedAt:  Epoch.Add(created),
	}
	if err := db.Create(&c).Error; err != nil {
		t.Fatalf("seed cause: %v", err)
	}
	return c
}

// CountCauses counts cause rows, optionally restricted to one problem.
func CountCauses(t testing.TB, db *gorm.DB, problemID ...uint) int64 {
	t.Helper()
	q := db.Model(&models.Cause{})
	if len(problemID) > 0 {
		q = q.Where("problem_id = ?", problemID[0])
	}
	var n int64
	if err := q.Count(&n).Error; err != nil {
		t.Fatalf("count causes: %v", err)
	}
	return n
}

// Ptr returns a pointer to v.
func Ptr[T any](v T) *T { return &v }
