package service

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"auditapi/internal/audit"
	"auditapi/internal/model"
	repoMocks "auditapi/internal/repository/mocks"
)

func TestCustomerService_Create(t *testing.T) {
	ctx := audit.WithActor(context.Background(), peter)
	m := new(repoMocks.MockCustomerRepository)
	m.On("Create", ctx, mock.MatchedBy(func(c *model.Customer) bool {
		return c.Name == "Acme" && c.CreatedBy == "peter" && c.ModifiedTime.Equal(fixedNow)
	})).Return(&model.Customer{ID: 7, Name: "Acme"}, nil)

	svc := NewCustomerService(m, newStamper(t), nil)
	c, err := svc.Create(ctx, CustomerInput{Name: "Acme"})
	require.NoError(t, err)
	assert.Equal(t, int64(7), c.ID)

	_, err = svc.Create(ctx, CustomerInput{})
	assert.ErrorIs(t, err, ErrInvalidInput)
	m.AssertExpectations(t)
}

func TestCustomerService_CreateBatch(t *testing.T) {
	ctx := audit.WithActor(context.Background(), peter)

	tests := []struct {
		name       string
		in         []CustomerInput
		setupMocks func(m *repoMocks.MockCustomerRepository)
		wantErr    error
		wantErrMsg string
	}{
		{
			name: "all stamped by one actor",
			in:   []CustomerInput{{Name: "A"}, {Name: "B"}},
			setupMocks: func(m *repoMocks.MockCustomerRepository) {
				m.On("CreateBatch", ctx, mock.MatchedBy(func(cs []*model.Customer) bool {
					if len(cs) != 2 {
						return false
					}
					for _, c := range cs {
						if c.CreatedBy != "peter" || !c.CreatedTime.Equal(fixedNow) || c.ModifiedBy != "peter" {
							return false
						}
					}
					return true
				})).Return([]model.Customer{{ID: 1}, {ID: 2}}, nil)
			},
		},
		{
			name:       "empty batch",
			setupMocks: func(m *repoMocks.MockCustomerRepository) {},
			wantErr:    ErrInvalidInput,
		},
		{
			name:       "invalid entry",
			in:         []CustomerInput{{Name: "A"}, {Name: ""}},
			setupMocks: func(m *repoMocks.MockCustomerRepository) {},
			wantErrMsg: "customer 1: name is required",
		},
		{
			name: "repository failure",
			in:   []CustomerInput{{Name: "A"}},
			setupMocks: func(m *repoMocks.MockCustomerRepository) {
				m.On("CreateBatch", ctx, mock.Anything).Return(nil, errors.New("tx failed"))
			},
			wantErrMsg: "tx failed",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := new(repoMocks.MockCustomerRepository)
			tt.setupMocks(m)

			res, err := NewCustomerService(m, newStamper(t), nil).CreateBatch(ctx, tt.in)
			switch {
			case tt.wantErr != nil:
				assert.ErrorIs(t, err, tt.wantErr)
			case tt.wantErrMsg != "":
				assert.ErrorContains(t, err, tt.wantErrMsg)
			default:
				require.NoError(t, err)
				assert.Len(t, res, 2)
			}
			m.AssertExpectations(t)
		})
	}
}

func TestCustomerService_ModifiedBetween(t *testing.T) {
	ctx := context.Background()
	start := fixedNow.Add(-time.Hour)
	m := new(repoMocks.MockCustomerRepository)
	m.On("ListModifiedBetween", ctx, start, fixedNow).Return([]model.Customer{{ID: 1}}, nil)
	svc := NewCustomerService(m, newStamper(t), nil)

	res, err := svc.ModifiedBetween(ctx, start, fixedNow)
	require.NoError(t, err)
	assert.Len(t, res, 1)

	_, err = svc.ModifiedBetween(ctx, fixedNow, start)
	assert.ErrorIs(t, err, ErrInvalidInput)
	m.AssertExpectations(t)
}

func TestCustomerService_Update(t *testing.T) {
	ctx := audit.WithActor(context.Background(), peter)
	existing := &model.Customer{ID: 3, Name: "Old", Email: "a@example.com"}
	existing.MarkCreated(audit.System(), fixedNow.Add(-time.Hour))

	m := new(repoMocks.MockCustomerRepository)
	m.On("FindByID", ctx, int64(3)).Return(existing, nil)
	m.On("Update", ctx, mock.MatchedBy(func(c *model.Customer) bool {
		return c.Name == "New" && c.Email == "a@example.com" && c.CreatedBy == audit.SystemUserID && c.ModifiedBy == "peter"
	})).Return(existing, nil)
	svc := NewCustomerService(m, newStamper(t), nil)

	_, err := svc.Update(ctx, 3, CustomerPatch{Name: ptr("New")})
	require.NoError(t, err)

	_, err = svc.Update(ctx, 3, CustomerPatch{Name: ptr(" ")})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestCustomerService_Delete(t *testing.T) {
	ctx := context.Background()
	m := new(repoMocks.MockCustomerRepository)
	m.On("Delete", ctx, int64(1)).Return(nil)
	m.On("Delete", ctx, int64(2)).Return(sql.ErrNoRows)
	svc := NewCustomerService(m, newStamper(t), nil)

	assert.NoError(t, svc.Delete(ctx, 1))
	assert.ErrorIs(t, svc.Delete(ctx, 2), ErrNotFound)
}
