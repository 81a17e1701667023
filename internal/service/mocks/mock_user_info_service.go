package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"auditapi/internal/audit"
	"auditapi/internal/model"
	"auditapi/internal/service"
)

type MockUserInfoService struct {
	mock.Mock
}

var _ service.UserInfoService = (*MockUserInfoService)(nil)

func (m *MockUserInfoService) Get(ctx context.Context, userID string) (*model.UserInfo, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.UserInfo), args.Error(1)
}

func (m *MockUserInfoService) List(ctx context.Context) ([]model.UserInfo, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.UserInfo), args.Error(1)
}

func (m *MockUserInfoService) Resolve(ctx context.Context, raw string) (audit.Actor, bool) {
	args := m.Called(ctx, raw)
	return args.Get(0).(audit.Actor), args.Bool(1)
}
