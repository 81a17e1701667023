package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"auditapi/internal/model"
	"auditapi/internal/service"
)

type MockApiService struct {
	mock.Mock
}

var _ service.ApiService = (*MockApiService)(nil)

func (m *MockApiService) Create(ctx context.Context, in service.ApiInput) (*model.Api, error) {
	args := m.Called(ctx, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Api), args.Error(1)
}

func (m *MockApiService) Get(ctx context.Context, id int64) (*model.Api, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Api), args.Error(1)
}

func (m *MockApiService) List(ctx context.Context) ([]model.Api, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Api), args.Error(1)
}

func (m *MockApiService) Update(ctx context.Context, id int64, p service.ApiPatch) (*model.Api, error) {
	args := m.Called(ctx, id, p)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Api), args.Error(1)
}

func (m *MockApiService) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
