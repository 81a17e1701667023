package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"auditapi/internal/model"
	"auditapi/internal/repository"
)

type MockEnvironmentRepository struct {
	mock.Mock
}

var _ repository.EnvironmentRepository = (*MockEnvironmentRepository)(nil)

func (m *MockEnvironmentRepository) Create(ctx context.Context, e *model.Environment) (*model.Environment, error) {
	args := m.Called(ctx, e)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Environment), args.Error(1)
}

func (m *MockEnvironmentRepository) FindByID(ctx context.Context, id int64) (*model.Environment, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Environment), args.Error(1)
}

func (m *MockEnvironmentRepository) FindByName(ctx context.Context, name string) (*model.Environment, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Environment), args.Error(1)
}

func (m *MockEnvironmentRepository) List(ctx context.Context, envType string) ([]model.Environment, error) {
	args := m.Called(ctx, envType)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Environment), args.Error(1)
}

func (m *MockEnvironmentRepository) ListPendingDeploy(ctx context.Context) ([]model.Environment, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Environment), args.Error(1)
}

func (m *MockEnvironmentRepository) Update(ctx context.Context, e *model.Environment) (*model.Environment, error) {
	args := m.Called(ctx, e)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Environment), args.Error(1)
}
