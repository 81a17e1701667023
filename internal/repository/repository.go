// Package repository contains data access layer abstractions.
// Implementations live in subpackages (e.g., postgres) inside this directory.
package repository

import (
	"context"
	"errors"
	"time"

	"auditapi/internal/model"
)

// ErrDuplicate is returned when an insert or update violates a unique constraint.
var ErrDuplicate = errors.New("duplicate key")

// Lookups by id return sql.ErrNoRows when no row matches.

// UserRepository persists pf_user rows.
type UserRepository interface {
	Create(ctx context.Context, u *model.User) (*model.User, error)
	FindByID(ctx context.Context, id string) (*model.User, error)
	FindByUsername(ctx context.Context, username string) (*model.User, error)
	List(ctx context.Context) ([]model.User, error)
	// Update writes business and modified* columns. created* columns are never updated.
	Update(ctx context.Context, u *model.User) (*model.User, error)
}

// UserInfoRepository reads the pf_user_info directory.
type UserInfoRepository interface {
	FindByID(ctx context.Context, userID string) (*model.UserInfo, error)
	List(ctx context.Context) ([]model.UserInfo, error)
}

// CustomerRepository persists pf_customer rows.
type CustomerRepository interface {
	Create(ctx context.Context, c *model.Customer) (*model.Customer, error)
	// CreateBatch inserts all customers in one transaction.
	CreateBatch(ctx context.Context, cs []*model.Customer) ([]model.Customer, error)
	FindByID(ctx context.Context, id int64) (*model.Customer, error)
	List(ctx context.Context) ([]model.Customer, error)
	// ListModifiedBetween returns customers whose modified_time is within [start, end].
	ListModifiedBetween(ctx context.Context, start, end time.Time) ([]model.Customer, error)
	Update(ctx context.Context, c *model.Customer) (*model.Customer, error)
	// Delete removes a customer and returns sql.ErrNoRows if it did not exist.
	Delete(ctx context.Context, id int64) error
}

// ApiRepository persists pf_api rows.
type ApiRepository interface {
	Create(ctx context.Context, a *model.Api) (*model.Api, error)
	FindByID(ctx context.Context, id int64) (*model.Api, error)
	List(ctx context.Context) ([]model.Api, error)
	Update(ctx context.Context, a *model.Api) (*model.Api, error)
	// Delete removes an api by ID. It returns nil if the row was deleted or did not exist.
	Delete(ctx context.Context, id int64) error
}

// EnvironmentRepository persists pf_environment rows.
type EnvironmentRepository interface {
	Create(ctx context.Context, e *model.Environment) (*model.Environment, error)
	FindByID(ctx context.Context, id int64) (*model.Environment, error)
	FindByName(ctx context.Context, name string) (*model.Environment, error)
	// List returns all environments, or only those of envType when it is not empty.
	List(ctx context.Context, envType string) ([]model.Environment, error)
	// ListPendingDeploy returns environments that were reviewed but never deployed.
	ListPendingDeploy(ctx context.Context) ([]model.Environment, error)
	Update(ctx context.Context, e *model.Environment) (*model.Environment, error)
}

// ComplexAuditRepository persists pf_demo_complex_audit rows.
type ComplexAuditRepository interface {
	Create(ctx context.Context, c *model.ComplexAudit) (*model.ComplexAudit, error)
	FindByID(ctx context.Context, id int64) (*model.ComplexAudit, error)
	List(ctx context.Context) ([]model.ComplexAudit, error)
	Update(ctx context.Context, c *model.ComplexAudit) (*model.ComplexAudit, error)
}

// AuditRecordRepository persists pf_audit_record rows.
type AuditRecordRepository interface {
	Create(ctx context.Context, r *model.AuditRecord) (*model.AuditRecord, error)
	FindByID(ctx context.Context, id int64) (*model.AuditRecord, error)
	// List returns a page of records, newest first, and the total row count.
	List(ctx context.Context, pq PageQuery) (*PageResult[model.AuditRecord], error)
}

// PageQuery holds limit/offset pagination parameters.
type PageQuery struct {
	Limit  int
	Offset int
}

// PageResult is a generic pagination result wrapper.
// T is typically a model type.
type PageResult[T any] struct {
	Items []T
	Total int
}
