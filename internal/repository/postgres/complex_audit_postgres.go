package postgres

import (
	"context"
	"database/sql"

	"auditapi/internal/model"
	"auditapi/internal/repository"
)

const selectComplexAudit = `
	SELECT c.id, c.name, c.description,
		c.created_by_id, cu.username, c.created_time,
		c.last_modified_by_id, mu.username, c.last_modified_time,
		c.version
	FROM pf_demo_complex_audit c
	JOIN pf_user cu ON cu.user_uid = c.created_by_id
	JOIN pf_user mu ON mu.user_uid = c.last_modified_by_id`

// ComplexAuditPostgres is a PostgreSQL implementation of repository.ComplexAuditRepository.
type ComplexAuditPostgres struct {
	db *sql.DB
}

// NewComplexAuditPostgres creates a new ComplexAuditPostgres repository.
func NewComplexAuditPostgres(db *sql.DB) *ComplexAuditPostgres {
	return &ComplexAuditPostgres{db: db}
}

var _ repository.ComplexAuditRepository = (*ComplexAuditPostgres)(nil)

func scanComplexAudit(s scanner) (*model.ComplexAudit, error) {
	var c model.ComplexAudit
	if err := s.Scan(
		&c.ID, &c.Name, &c.Description,
		&c.CreatedByUser.ID, &c.CreatedByUser.Username, &c.CreatedTime,
		&c.LastModifiedByUser.ID, &c.LastModifiedByUser.Username, &c.LastModifiedTime,
		&c.Version,
	); err != nil {
		return nil, err
	}
	return &c, nil
}

// Create inserts a new row. The returned record is c with its generated ID.
func (r *ComplexAuditPostgres) Create(ctx context.Context, c *model.ComplexAudit) (*model.ComplexAudit, error) {
	const q = `
		INSERT INTO pf_demo_complex_audit
			(name, description, created_by_id, created_time, last_modified_by_id, last_modified_time, version)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id`
	out := *c
	if err := r.db.QueryRowContext(ctx, q,
		c.Name, c.Description,
		c.CreatedByUser.ID, c.CreatedTime,
		c.LastModifiedByUser.ID, c.LastModifiedTime,
		c.Version,
	).Scan(&out.ID); err != nil {
		return nil, mapErr(err)
	}
	return &out, nil
}

// FindByID fetches a single row with its auditor usernames.
func (r *ComplexAuditPostgres) FindByID(ctx context.Context, id int64) (*model.ComplexAudit, error) {
	return scanComplexAudit(r.db.QueryRowContext(ctx, selectComplexAudit+` WHERE c.id = $1`, id))
}

// List returns all rows ordered by ID.
func (r *ComplexAuditPostgres) List(ctx context.Context) ([]model.ComplexAudit, error) {
	rows, err := r.db.QueryContext(ctx, selectComplexAudit+` ORDER BY c.id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]model.ComplexAudit, 0)
	for rows.Next() {
		c, err := scanComplexAudit(rows)
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

// Update writes name, description, version and the last-modified reference.
// It returns sql.ErrNoRows when the row does not exist.
func (r *ComplexAuditPostgres) Update(ctx context.Context, c *model.ComplexAudit) (*model.ComplexAudit, error) {
	const q = `
		UPDATE pf_demo_complex_audit SET
			name = $2, description = $3, last_modified_by_id = $4, last_modified_time = $5, version = $6
		WHERE id = $1`
	res, err := r.db.ExecContext(ctx, q,
		c.ID, c.Name, c.Description, c.LastModifiedByUser.ID, c.LastModifiedTime, c.Version)
	if err != nil {
		return nil, mapErr(err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return nil, err
	}
	if n == 0 {
		return nil, sql.ErrNoRows
	}
	out := *c
	return &out, nil
}
