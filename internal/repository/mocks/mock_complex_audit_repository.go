package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"auditapi/internal/model"
	"auditapi/internal/repository"
)

type MockComplexAuditRepository struct {
	mock.Mock
}

var _ repository.ComplexAuditRepository = (*MockComplexAuditRepository)(nil)

func (m *MockComplexAuditRepository) Create(ctx context.Context, c *model.ComplexAudit) (*model.ComplexAudit, error) {
	args := m.Called(ctx, c)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.ComplexAudit), args.Error(1)
}

func (m *MockComplexAuditRepository) FindByID(ctx context.Context, id int64) (*model.ComplexAudit, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.ComplexAudit), args.Error(1)
}

func (m *MockComplexAuditRepository) List(ctx context.Context) ([]model.ComplexAudit, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.ComplexAudit), args.Error(1)
}

func (m *MockComplexAuditRepository) Update(ctx context.Context, c *model.ComplexAudit) (*model.ComplexAudit, error) {
	args := m.Called(ctx, c)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.ComplexAudit), args.Error(1)
}
