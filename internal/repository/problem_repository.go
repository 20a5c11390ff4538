package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/eightd-studio/engine/internal/models"
)

type ProblemRepository interface {
	BaseRepository[models.Problem]
	List(ctx context.Context) ([]models.Problem, error)
	Exists(ctx context.Context, id uint) (bool, error)
	// DeleteWithCauses removes the problem and its whole cause forest in one
	// transaction and reports how many causes went with it.
	DeleteWithCauses(ctx context.Context, id uint) (int64, error)
}

type problemRepository struct {
	BaseRepository[models.Problem]
	db *gorm.DB
}

func NewProblemRepository(db *gorm.DB) ProblemRepository {
	return &problemRepository{BaseRepository: NewBaseRepository[models.Problem](db, "Problem"), db: db}
}

// List returns every problem, newest first.
func (r *problemRepository) List(ctx context.Context) ([]models.Problem, error) {
	out := make([]models.Problem, 0)
	if err := r.db.WithContext(ctx).Order("created_at DESC").Order("id DESC").Find(&out).Error; err != nil {
		return nil, translate(err, "Problem", "list")
	}
	return out, nil
}

func (r *problemRepository) Exists(ctx context.Context, id uint) (bool, error) {
	var n int64
	if err := r.db.WithContext(ctx).Model(&models.Problem{}).Where("id = ?", id).Count(&n).Error; err != nil {
		return false, translate(err, "Problem", "count")
	}
	return n > 0, nil
}

// Delete shadows the base delete so a problem never leaves causes behind.
func (r *problemRepository) Delete(ctx context.Context, id uint) error {
	_, err := r.DeleteWithCauses(ctx, id)
	return err
}

func (r *problemRepository) DeleteWithCauses(ctx context.Context, id uint) (int64, error) {
	var removed int64
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Where("problem_id = ?", id).Delete(&models.Cause{})
		if res.Error != nil {
			return translate(res.Error, "Cause", "delete")
		}
		removed = res.RowsAffected

		res = tx.Delete(&models.Problem{}, "id = ?", id)
		if res.Error != nil {
			return translate(res.Error, "Problem", "delete")
		}
		if res.RowsAffected == 0 {
			return notFound("Problem")
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return removed, nil
}
