package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"auditapi/internal/model"
	"auditapi/internal/repository"
)

type MockUserInfoRepository struct {
	mock.Mock
}

var _ repository.UserInfoRepository = (*MockUserInfoRepository)(nil)

func (m *MockUserInfoRepository) FindByID(ctx context.Context, userID string) (*model.UserInfo, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.UserInfo), args.Error(1)
}

func (m *MockUserInfoRepository) List(ctx context.Context) ([]model.UserInfo, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.UserInfo), args.Error(1)
}
