package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"auditapi/internal/model"
	"auditapi/internal/repository"
)

type MockApiRepository struct {
	mock.Mock
}

var _ repository.ApiRepository = (*MockApiRepository)(nil)

func (m *MockApiRepository) Create(ctx context.Context, a *model.Api) (*model.Api, error) {
	args := m.Called(ctx, a)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Api), args.Error(1)
}

func (m *MockApiRepository) FindByID(ctx context.Context, id int64) (*model.Api, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Api), args.Error(1)
}

func (m *MockApiRepository) List(ctx context.Context) ([]model.Api, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Api), args.Error(1)
}

func (m *MockApiRepository) Update(ctx context.Context, a *model.Api) (*model.Api, error) {
	args := m.Called(ctx, a)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Api), args.Error(1)
}

func (m *MockApiRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
