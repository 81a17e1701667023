package mocks

import (
	"context"
	"io"

	"github.com/stretchr/testify/mock"

	"auditapi/internal/model"
	"auditapi/internal/service"
	"auditapi/internal/storage"
)

type MockEnvironmentService struct {
	mock.Mock
}

var _ service.EnvironmentService = (*MockEnvironmentService)(nil)

func (m *MockEnvironmentService) Create(ctx context.Context, in service.EnvironmentInput) (*model.Environment, error) {
	args := m.Called(ctx, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Environment), args.Error(1)
}

func (m *MockEnvironmentService) Get(ctx context.Context, id int64) (*model.Environment, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Environment), args.Error(1)
}

func (m *MockEnvironmentService) List(ctx context.Context, envType string) ([]model.Environment, error) {
	args := m.Called(ctx, envType)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Environment), args.Error(1)
}

func (m *MockEnvironmentService) Update(ctx context.Context, id int64, p service.EnvironmentPatch) (*model.Environment, error) {
	args := m.Called(ctx, id, p)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Environment), args.Error(1)
}

func (m *MockEnvironmentService) Review(ctx context.Context, id int64, in service.ReviewInput) (*model.Environment, error) {
	args := m.Called(ctx, id, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Environment), args.Error(1)
}

func (m *MockEnvironmentService) Deploy(ctx context.Context, id int64, in service.DeployInput) (*model.Environment, error) {
	args := m.Called(ctx, id, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Environment), args.Error(1)
}

func (m *MockEnvironmentService) PendingDeploy(ctx context.Context) ([]model.Environment, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Environment), args.Error(1)
}

func (m *MockEnvironmentService) ArtifactURL(ctx context.Context, id int64) (string, error) {
	args := m.Called(ctx, id)
	return args.String(0), args.Error(1)
}

func (m *MockEnvironmentService) OpenArtifact(ctx context.Context, id int64) (io.ReadCloser, storage.ObjectInfo, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, storage.ObjectInfo{}, args.Error(2)
	}
	return args.Get(0).(io.ReadCloser), args.Get(1).(storage.ObjectInfo), args.Error(2)
}
