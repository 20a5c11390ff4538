package services

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/eightd-studio/engine/internal/causetree"
	"github.com/eightd-studio/engine/internal/models"
	"github.com/eightd-studio/engine/internal/repository"
	"github.com/eightd-studio/engine/internal/validators"
	appErr "github.com/eightd-studio/engine/pkg/errors"
	"github.com/eightd-studio/engine/pkg/logger"
	"github.com/eightd-studio/engine/pkg/metrics"
)

// CauseService enforces the cause rules and assembles the per-problem tree.
type CauseService interface {
	CreateCause(ctx context.Context, input *CreateCauseInput) (*models.Cause, error)
	GetCause(ctx context.Context, id uint) (*models.Cause, error)
	UpdateCause(ctx context.Context, id uint, input *UpdateCauseInput) (*models.Cause, error)
	// DeleteCause removes the cause and its descendants and returns how many
	// rows went away.
	DeleteCause(ctx context.Context, id uint) (int64, error)
	GetTree(ctx context.Context, problemID uint) (*CauseTree, error)
	ListRootCauses(ctx context.Context, problemID uint) ([]models.Cause, error)
}

type CreateCauseInput struct {
	ProblemID       uint
	ParentID        *uint
	CauseText       string
	IsRootCause     bool
	PermanentAction *string
	OrderIndex      int
}

// UpdateCauseInput carries only the fields the client sent. ParentSet
// distinguishes "move to top level" (ParentSet, nil ParentID) from "keep".
type UpdateCauseInput struct {
	CauseText       *string
	IsRootCause     *bool
	PermanentAction *string
	OrderIndex      *int
	ParentSet       bool
	ParentID        *uint
}

// CauseTree is the nested cause forest of one problem.
type CauseTree struct {
	ProblemID uint
	Roots     []*models.CauseNode
	Stats     models.TreeStats
}

const (
	msgProblemNotFound = "Problem not found"
	msgParentNotFound  = "Parent cause not found"
	msgParentForeign   = "Parent cause must belong to the same problem"
	msgParentCycle     = "Cause cannot be moved under itself or its descendants"
)

type causeService struct {
	problems repository.ProblemRepository
	causes   repository.CauseRepository
	validate validators.Validator
}

func NewCauseService(problems repository.ProblemRepository, causes repository.CauseRepository, v validators.Validator) CauseService {
	return &causeService{problems: problems, causes: causes, validate: v}
}

var _ CauseService = (*causeService)(nil)

// normalizeAction stores blank actions as NULL.
func normalizeAction(s *string) *string {
	if s == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*s)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}

func (s *causeService) CreateCause(ctx context.Context, input *CreateCauseInput) (*models.Cause, error) {
	c := &models.Cause{
		ProblemID:       input.ProblemID,
		ParentID:        input.ParentID,
		CauseText:       strings.TrimSpace(input.CauseText),
		IsRootCause:     input.IsRootCause,
		PermanentAction: normalizeAction(input.PermanentAction),
		OrderIndex:      input.OrderIndex,
	}
	if err := s.validate.Struct(c); err != nil {
		return nil, appErr.Invalid(validators.Messages(err)...)
	}

	if err := s.requireProblem(ctx, c.ProblemID); err != nil {
		return nil, err
	}
	if c.ParentID != nil {
		if err := s.checkParent(ctx, c.ProblemID, *c.ParentID); err != nil {
			return nil, err
		}
	}

	if err := s.causes.Create(ctx, c); err != nil {
		return nil, err
	}
	logger.FromContext(ctx).Info("cause created",
		zap.Uint("cause_id", c.ID),
		zap.Uint("problem_id", c.ProblemID),
		zap.Bool("root_cause", c.IsRootCause),
	)
	return c, nil
}

func (s *causeService) GetCause(ctx context.Context, id uint) (*models.Cause, error) {
	var c models.Cause
	if err := s.causes.GetByID(ctx, id, &c); err != nil {
		return nil, err
	}
	return &c, nil
}

func (s *causeService) UpdateCause(ctx context.Context, id uint, input *UpdateCauseInput) (*models.Cause, error) {
	c, err := s.GetCause(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.CauseText != nil {
		c.CauseText = strings.TrimSpace(*input.CauseText)
	}
	if input.IsRootCause != nil {
		c.IsRootCause = *input.IsRootCause
	}
	if input.PermanentAction != nil {
		c.PermanentAction = normalizeAction(input.PermanentAction)
	}
	if input.OrderIndex != nil {
		c.OrderIndex = *input.OrderIndex
	}
	moved := input.ParentSet && !sameParent(c.ParentID, input.ParentID)
	if moved {
		c.ParentID = input.ParentID
	}

	if err := s.validate.Struct(c); err != nil {
		return nil, appErr.Invalid(validators.Messages(err)...)
	}
	if moved && c.ParentID != nil {
		if err := s.checkParent(ctx, c.ProblemID, *c.ParentID); err != nil {
			return nil, err
		}
		rows, err := s.causes.ListByProblem(ctx, c.ProblemID)
		if err != nil {
			return nil, err
		}
		if causetree.WouldCycle(rows, c.ID, c.ParentID) {
			return nil, appErr.Invalid(msgParentCycle)
		}
	}

	if err := s.causes.Update(ctx, c); err != nil {
		return nil, err
	}
	logger.FromContext(ctx).Info("cause updated",
		zap.Uint("cause_id", c.ID),
		zap.Uint("problem_id", c.ProblemID),
		zap.Bool("moved", moved),
	)
	return c, nil
}

func (s *causeService) DeleteCause(ctx context.Context, id uint) (int64, error) {
	removed, err := s.causes.DeleteSubtree(ctx, id)
	if err != nil {
		return 0, err
	}
	metrics.CausesDeleted.Add(float64(removed))
	logger.FromContext(ctx).Info("cause deleted", zap.Uint("cause_id", id), zap.Int64("rows_removed", removed))
	return removed, nil
}

func (s *causeService) GetTree(ctx context.Context, problemID uint) (*CauseTree, error) {
	if err := s.requireProblem(ctx, problemID); err != nil {
		return nil, err
	}
	rows, err := s.causes.ListByProblem(ctx, problemID)
	if err != nil {
		return nil, err
	}

	roots := causetree.Build(rows)
	tree := &CauseTree{ProblemID: problemID, Roots: roots, Stats: causetree.Summarize(roots)}
	if omitted := len(rows) - tree.Stats.Nodes; omitted > 0 {
		logger.FromContext(ctx).Warn("causes unreachable from top level omitted from tree",
			zap.Uint("problem_id", problemID),
			zap.Int("omitted", omitted),
		)
	}
	metrics.CauseTreeNodes.Observe(float64(tree.Stats.Nodes))
	return tree, nil
}

func (s *causeService) ListRootCauses(ctx context.Context, problemID uint) ([]models.Cause, error) {
	if err := s.requireProblem(ctx, problemID); err != nil {
		return nil, err
	}
	return s.causes.ListRootCauses(ctx, problemID)
}

func (s *causeService) requireProblem(ctx context.Context, problemID uint) error {
	ok, err := s.problems.Exists(ctx, problemID)
	if err != nil {
		return err
	}
	if !ok {
		return appErr.NotFound(msgProblemNotFound)
	}
	return nil
}

func (s *causeService) checkParent(ctx context.Context, problemID, parentID uint) error {
	var parent models.Cause
	if err := s.causes.GetByID(ctx, parentID, &parent); err != nil {
		if appErr.IsCode(err, appErr.CodeNotFound) {
			return appErr.NotFound(msgParentNotFound)
		}
		return err
	}
	if parent.ProblemID != problemID {
		return appErr.Invalid(msgParentForeign)
	}
	return nil
}

func sameParent(a, b *uint) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return *a == *b
}
