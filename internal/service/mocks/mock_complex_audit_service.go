package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"auditapi/internal/model"
	"auditapi/internal/service"
)

type MockComplexAuditService struct {
	mock.Mock
}

var _ service.ComplexAuditService = (*MockComplexAuditService)(nil)

func (m *MockComplexAuditService) Create(ctx context.Context, in service.ComplexAuditInput) (*model.ComplexAudit, error) {
	args := m.Called(ctx, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.ComplexAudit), args.Error(1)
}

func (m *MockComplexAuditService) Get(ctx context.Context, id int64) (*model.ComplexAudit, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.ComplexAudit), args.Error(1)
}

func (m *MockComplexAuditService) List(ctx context.Context) ([]model.ComplexAudit, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.ComplexAudit), args.Error(1)
}

func (m *MockComplexAuditService) Update(ctx context.Context, id int64, in service.ComplexAuditInput) (*model.ComplexAudit, error) {
	args := m.Called(ctx, id, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.ComplexAudit), args.Error(1)
}
