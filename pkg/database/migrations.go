package database

import (
	"gorm.io/gorm"

	"github.com/eightd-studio/engine/internal/models"
)

// Models lists every table the engine owns, parents first.
func Models() []interface{} {
	return []interface{}{
		&models.Problem{},
		&models.Cause{},
	}
}

// Migrate creates or updates the schema.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(Models()...); err != nil {
		return err
	}
	return runCustomMigrations(db)
}

// runCustomMigrations handles schema changes AutoMigrate can't express.
func runCustomMigrations(db *gorm.DB) error {
	migrations := []func(*gorm.DB) error{
		addRootCauseIndex,
	}
	for _, migration := range migrations {
		if err := migration(db); err != nil {
			return err
		}
	}
	return nil
}

// addRootCauseIndex backs the per-problem root cause listing. Partial indexes
// are understood by both PostgreSQL and SQLite.
func addRootCauseIndex(db *gorm.DB) error {
	return db.Exec(`
		CREATE INDEX IF NOT EXISTS idx_root_causes_flagged
		ON root_causes(problem_id, created_at)
		WHERE is_root_cause
	`).Error
}
