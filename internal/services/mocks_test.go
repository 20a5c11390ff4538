package services

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/eightd-studio/engine/internal/models"
)

type mockProblemRepository struct {
	mock.Mock
}

func (m *mockProblemRepository) Create(ctx context.Context, obj *models.Problem) error {
	return m.Called(ctx, obj).Error(0)
}

func (m *mockProblemRepository) GetByID(ctx context.Context, id uint, dest *models.Problem) error {
	args := m.Called(ctx, id, dest)
	if args.Error(0) == nil && args.Get(1) != nil {
		*dest = *args.Get(1).(*models.Problem)
	}
	return args.Error(0)
}

func (m *mockProblemRepository) Update(ctx context.Context, obj *models.Problem) error {
	return m.Called(ctx, obj).Error(0)
}

func (m *mockProblemRepository) Delete(ctx context.Context, id uint) error {
	return m.Called(ctx, id).Error(0)
}

func (m *mockProblemRepository) List(ctx context.Context) ([]models.Problem, error) {
	args := m.Called(ctx)
	if v := args.Get(0); v != nil {
		return v.([]models.Problem), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockProblemRepository) Exists(ctx context.Context, id uint) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *mockProblemRepository) DeleteWithCauses(ctx context.Context, id uint) (int64, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(int64), args.Error(1)
}

type mockCauseRepository struct {
	mock.Mock
}

func (m *mockCauseRepository) Create(ctx context.Context, obj *models.Cause) error {
	return m.Called(ctx, obj).Error(0)
}

func (m *mockCauseRepository) GetByID(ctx context.Context, id uint, dest *models.Cause) error {
	args := m.Called(ctx, id, dest)
	if args.Error(0) == nil && args.Get(1) != nil {
		*dest = *args.Get(1).(*models.Cause)
	}
	return args.Error(0)
}

func (m *mockCauseRepository) Update(ctx context.Context, obj *models.Cause) error {
	return m.Called(ctx, obj).Error(0)
}

func (m *mockCauseRepository) Delete(ctx context.Context, id uint) error {
	return m.Called(ctx, id).Error(0)
}

func (m *mockCauseRepository) ListByProblem(ctx context.Context, problemID uint) ([]models.Cause, error) {
	args := m.Called(ctx, problemID)
	if v := args.Get(0); v != nil {
		return v.([]models.Cause), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockCauseRepository) ListRootCauses(ctx context.Context, problemID uint) ([]models.Cause, error) {
	args := m.Called(ctx, problemID)
	if v := args.Get(0); v != nil {
		return v.([]models.Cause), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockCauseRepository) DeleteSubtree(ctx context.Context, id uint) (int64, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(int64), args.Error(1)
}
