package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/eightd-studio/engine/internal/causetree"
	"github.com/eightd-studio/engine/internal/models"
)

type CauseRepository interface {
	BaseRepository[models.Cause]
	// ListByProblem returns all causes of a problem in tree order:
	// order_index, then created_at, then id.
	ListByProblem(ctx context.Context, problemID uint) ([]models.Cause, error)
	ListRootCauses(ctx context.Context, problemID uint) ([]models.Cause, error)
	// DeleteSubtree removes the cause and all of its descendants atomically and
	// returns the number of removed rows.
	DeleteSubtree(ctx context.Context, id uint) (int64, error)
}

type causeRepository struct {
	BaseRepository[models.Cause]
	db *gorm.DB
}

func NewCauseRepository(db *gorm.DB) CauseRepository {
	return &causeRepository{BaseRepository: NewBaseRepository[models.Cause](db, "Cause"), db: db}
}

func treeOrder(db *gorm.DB) *gorm.DB {
	return db.Order("order_index ASC").Order("created_at ASC").Order("id ASC")
}

func (r *causeRepository) ListByProblem(ctx context.Context, problemID uint) ([]models.Cause, error) {
	out := make([]models.Cause, 0)
	q := r.db.WithContext(ctx).Where("problem_id = ?", problemID)
	if err := treeOrder(q).Find(&out).Error; err != nil {
		return nil, translate(err, "Cause", "list")
	}
	return out, nil
}

func (r *causeRepository) ListRootCauses(ctx context.Context, problemID uint) ([]models.Cause, error) {
	out := make([]models.Cause, 0)
	err := r.db.WithContext(ctx).
		Where("problem_id = ? AND is_root_cause = ?", problemID, true).
		Order("created_at ASC").Order("id ASC").
		Find(&out).Error
	if err != nil {
		return nil, translate(err, "Cause", "list")
	}
	return out, nil
}

// Delete shadows the base delete so a cause never leaves orphans behind.
func (r *causeRepository) Delete(ctx context.Context, id uint) error {
	_, err := r.DeleteSubtree(ctx, id)
	return err
}

// DeleteSubtree does not rely on ON DELETE CASCADE being enforced (SQLite
// ships with foreign keys off); it collects the subtree itself.
func (r *causeRepository) DeleteSubtree(ctx context.Context, id uint) (int64, error) {
	var removed int64
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var target models.Cause
		if err := tx.First(&target, "id = ?", id).Error; err != nil {
			return translate(err, "Cause", "get")
		}

		var rows []models.Cause
		if err := tx.Select("id", "parent_id").Where("problem_id = ?", target.ProblemID).Find(&rows).Error; err != nil {
			return translate(err, "Cause", "list")
		}
		ids := append([]uint{id}, causetree.Descendants(rows, id)...)

		res := tx.Where("id IN ?", ids).Delete(&models.Cause{})
		if res.Error != nil {
			return translate(res.Error, "Cause", "delete")
		}
		removed = res.RowsAffected
		return nil
	})
	if err != nil {
		return 0, err
	}
	return removed, nil
}
