package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"auditapi/internal/model"
	"auditapi/internal/repository"
)

const customerColumns = `id, name, email, phone, address, company, ` + auditColumns

const insertCustomer = `
	INSERT INTO pf_customer (name, email, phone, address, company, ` + auditColumns + `)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)
	RETURNING ` + customerColumns

// CustomerPostgres is a PostgreSQL implementation of repository.CustomerRepository.
type CustomerPostgres struct {
	db *sql.DB
}

// NewCustomerPostgres creates a new CustomerPostgres repository.
func NewCustomerPostgres(db *sql.DB) *CustomerPostgres {
	return &CustomerPostgres{db: db}
}

var _ repository.CustomerRepository = (*CustomerPostgres)(nil)

func scanCustomer(s scanner) (*model.Customer, error) {
	var c model.Customer
	dest := append([]any{&c.ID, &c.Name, &c.Email, &c.Phone, &c.Address, &c.Company}, auditDest(&c.Metadata)...)
	if err := s.Scan(dest...); err != nil {
		return nil, err
	}
	return &c, nil
}

func customerArgs(c *model.Customer) []any {
	return append([]any{c.Name, c.Email, c.Phone, c.Address, c.Company}, auditArgs(&c.Metadata)...)
}

func (r *CustomerPostgres) query(ctx context.Context, q string, args ...any) ([]model.Customer, error) {
	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]model.Customer, 0)
	for rows.Next() {
		c, err := scanCustomer(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, *c)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

// Create inserts a new customer row and returns the stored record.
func (r *CustomerPostgres) Create(ctx context.Context, c *model.Customer) (*model.Customer, error) {
	out, err := scanCustomer(r.db.QueryRowContext(ctx, insertCustomer, customerArgs(c)...))
	if err != nil {
		return nil, mapErr(err)
	}
	return out, nil
}

// CreateBatch inserts all customers in a single transaction. Nothing is
// stored if any insert fails.
func (r *CustomerPostgres) CreateBatch(ctx context.Context, cs []*model.Customer) ([]model.Customer, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	stmt, err := tx.PrepareContext(ctx, insertCustomer)
	if err != nil {
		return nil, fmt.Errorf("prepare insert: %w", err)
	}
	defer stmt.Close()

	items := make([]model.Customer, 0, len(cs))
	for _, c := range cs {
		out, err := scanCustomer(stmt.QueryRowContext(ctx, customerArgs(c)...))
		if err != nil {
			return nil, mapErr(err)
		}
		items = append(items, *out)
	}
	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit tx: %w", err)
	}
	return items, nil
}

// FindByID fetches a single customer by its ID.
func (r *CustomerPostgres) FindByID(ctx context.Context, id int64) (*model.Customer, error) {
	const q = `SELECT ` + customerColumns + ` FROM pf_customer WHERE id = $1`
	return scanCustomer(r.db.QueryRowContext(ctx, q, id))
}

// List returns all customers ordered by ID.
func (r *CustomerPostgres) List(ctx context.Context) ([]model.Customer, error) {
	const q = `SELECT ` + customerColumns + ` FROM pf_customer ORDER BY id`
	return r.query(ctx, q)
}

// ListModifiedBetween returns customers modified within [start, end].
func (r *CustomerPostgres) ListModifiedBetween(ctx context.Context, start, end time.Time) ([]model.Customer, error) {
	const q = `
		SELECT ` + customerColumns + `
		FROM pf_customer
		WHERE modified_time >= $1 AND modified_time <= $2
		ORDER BY modified_time, id`
	return r.query(ctx, q, start, end)
}

// Update writes the business and modified columns of a customer.
func (r *CustomerPostgres) Update(ctx context.Context, c *model.Customer) (*model.Customer, error) {
	const q = `
		UPDATE pf_customer SET
			name = $2, email = $3, phone = $4, address = $5, company = $6,
			modified_by = $7, modified_time = $8, modified_company = $9,
			modified_unit = $10, modified_name = $11
		WHERE id = $1
		RETURNING ` + customerColumns
	args := append([]any{c.ID, c.Name, c.Email, c.Phone, c.Address, c.Company}, modifiedArgs(&c.Metadata)...)
	out, err := scanCustomer(r.db.QueryRowContext(ctx, q, args...))
	if err != nil {
		return nil, mapErr(err)
	}
	return out, nil
}

// Delete removes a customer by ID and returns sql.ErrNoRows if none existed.
func (r *CustomerPostgres) Delete(ctx context.Context, id int64) error {
	const q = `DELETE FROM pf_customer WHERE id = $1`
	res, err := r.db.ExecContext(ctx, q, id)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return sql.ErrNoRows
	}
	return nil
}
