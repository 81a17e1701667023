package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"auditapi/internal/service"
)

type MockAuditDemoService struct {
	mock.Mock
}

var _ service.AuditDemoService = (*MockAuditDemoService)(nil)

func (m *MockAuditDemoService) UsersWithDetails(ctx context.Context) ([]service.UserAuditDetails, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]service.UserAuditDetails), args.Error(1)
}

func (m *MockAuditDemoService) CreateWithAudit(ctx context.Context, operatorID string, in service.UserInput) (*service.CreateWithAuditResult, error) {
	args := m.Called(ctx, operatorID, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.CreateWithAuditResult), args.Error(1)
}
