package services

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/eightd-studio/engine/internal/models"
	"github.com/eightd-studio/engine/internal/repository"
	"github.com/eightd-studio/engine/internal/validators"
	appErr "github.com/eightd-studio/engine/pkg/errors"
	"github.com/eightd-studio/engine/pkg/logger"
	"github.com/eightd-studio/engine/pkg/metrics"
)

// ProblemService manages the problems that own cause trees.
type ProblemService interface {
	ListProblems(ctx context.Context) ([]models.Problem, error)
	GetProblem(ctx context.Context, id uint) (*models.Problem, error)
	CreateProblem(ctx context.Context, input *CreateProblemInput) (*models.Problem, error)
	UpdateProblem(ctx context.Context, id uint, input *UpdateProblemInput) (*models.Problem, error)
	// DeleteProblem removes the problem together with all of its causes.
	DeleteProblem(ctx context.Context, id uint) error
}

type CreateProblemInput struct {
	Title           string
	Description     string
	ResponsibleTeam string
	Status          string // empty means open
}

// UpdateProblemInput carries only the fields the client sent.
type UpdateProblemInput struct {
	Title           *string
	Description     *string
	ResponsibleTeam *string
	Status          *string
}

type problemService struct {
	problems repository.ProblemRepository
	validate validators.Validator
}

func NewProblemService(problems repository.ProblemRepository, v validators.Validator) ProblemService {
	return &problemService{problems: problems, validate: v}
}

var _ ProblemService = (*problemService)(nil)

func (s *problemService) ListProblems(ctx context.Context) ([]models.Problem, error) {
	return s.problems.List(ctx)
}

func (s *problemService) GetProblem(ctx context.Context, id uint) (*models.Problem, error) {
	var p models.Problem
	if err := s.problems.GetByID(ctx, id, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

func (s *problemService) CreateProblem(ctx context.Context, input *CreateProblemInput) (*models.Problem, error) {
	p := &models.Problem{
		Title:           strings.TrimSpace(input.Title),
		Description:     strings.TrimSpace(input.Description),
		ResponsibleTeam: strings.TrimSpace(input.ResponsibleTeam),
		Status:          input.Status,
	}
	if p.Status == "" {
		p.Status = models.StatusOpen
	}
	if err := s.validate.Struct(p); err != nil {
		return nil, appErr.Invalid(validators.Messages(err)...)
	}

	if err := s.problems.Create(ctx, p); err != nil {
		return nil, err
	}
	logger.FromContext(ctx).Info("problem created", zap.Uint("problem_id", p.ID), zap.String("team", p.ResponsibleTeam))
	return p, nil
}

func (s *problemService) UpdateProblem(ctx context.Context, id uint, input *UpdateProblemInput) (*models.Problem, error) {
	p, err := s.GetProblem(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.Title != nil {
		p.Title = strings.TrimSpace(*input.Title)
	}
	if input.Description != nil {
		p.Description = strings.TrimSpace(*input.Description)
	}
	if input.ResponsibleTeam != nil {
		p.ResponsibleTeam = strings.TrimSpace(*input.ResponsibleTeam)
	}
	if input.Status != nil {
		p.Status = *input.Status
	}
	if err := s.validate.Struct(p); err != nil {
		return nil, appErr.Invalid(validators.Messages(err)...)
	}

	if err := s.problems.Update(ctx, p); err != nil {
		return nil, err
	}
	logger.FromContext(ctx).Info("problem updated", zap.Uint("problem_id", p.ID), zap.String("status", p.Status))
	return p, nil
}

func (s *problemService) DeleteProblem(ctx context.Context, id uint) error {
	removed, err := s.problems.DeleteWithCauses(ctx, id)
	if err != nil {
		return err
	}
	metrics.CausesDeleted.Add(float64(removed))
	logger.FromContext(ctx).Info("problem deleted", zap.Uint("problem_id", id), zap.Int64("causes_removed", removed))
	return nil
}
