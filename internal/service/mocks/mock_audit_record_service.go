package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"auditapi/internal/model"
	"auditapi/internal/service"
)

type MockAuditRecordService struct {
	mock.Mock
}

var _ service.AuditRecordService = (*MockAuditRecordService)(nil)

func (m *MockAuditRecordService) Create(ctx context.Context, in service.AuditRecordInput) (*model.AuditRecord, error) {
	args := m.Called(ctx, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.AuditRecord), args.Error(1)
}

func (m *MockAuditRecordService) Get(ctx context.Context, id int64) (*model.AuditRecord, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.AuditRecord), args.Error(1)
}

func (m *MockAuditRecordService) List(ctx context.Context, limit, offset int) (*service.AuditRecordListResult, error) {
	args := m.Called(ctx, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.AuditRecordListResult), args.Error(1)
}
