package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"auditapi/internal/model"
	"auditapi/internal/repository"
)

type MockAuditRecordRepository struct {
	mock.Mock
}

var _ repository.AuditRecordRepository = (*MockAuditRecordRepository)(nil)

func (m *MockAuditRecordRepository) Create(ctx context.Context, r *model.AuditRecord) (*model.AuditRecord, error) {
	args := m.Called(ctx, r)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.AuditRecord), args.Error(1)
}

func (m *MockAuditRecordRepository) FindByID(ctx context.Context, id int64) (*model.AuditRecord, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.AuditRecord), args.Error(1)
}

func (m *MockAuditRecordRepository) List(ctx context.Context, pq repository.PageQuery) (*repository.PageResult[model.AuditRecord], error) {
	args := m.Called(ctx, pq)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*repository.PageResult[model.AuditRecord]), args.Error(1)
}
