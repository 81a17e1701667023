package postgres

import (
	"context"
	"database/sql"

	"auditapi/internal/model"
	"auditapi/internal/repository"
)

const apiColumns = `id, apiname, description, ` + auditColumns

// ApiPostgres is a PostgreSQL implementation of repository.ApiRepository.
type ApiPostgres struct {
	db *sql.DB
}

// NewApiPostgres creates a new ApiPostgres repository.
func NewApiPostgres(db *sql.DB) *ApiPostgres {
	return &ApiPostgres{db: db}
}

var _ repository.ApiRepository = (*ApiPostgres)(nil)

func scanApi(s scanner) (*model.Api, error) {
	var a model.Api
	dest := append([]any{&a.ID, &a.Apiname, &a.Description}, auditDest(&a.Metadata)...)
	if err := s.Scan(dest...); err != nil {
		return nil, err
	}
	return &a, nil
}

// Create inserts a new api row and returns the stored record.
func (r *ApiPostgres) Create(ctx context.Context, a *model.Api) (*model.Api, error) {
	const q = `
		INSERT INTO pf_api (apiname, description, ` + auditColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		RETURNING ` + apiColumns
	args := append([]any{a.Apiname, a.Description}, auditArgs(&a.Metadata)...)
	out, err := scanApi(r.db.QueryRowContext(ctx, q, args...))
	if err != nil {
		return nil, mapErr(err)
	}
	return out, nil
}

// FindByID fetches a single api by its ID.
func (r *ApiPostgres) FindByID(ctx context.Context, id int64) (*model.Api, error) {
	const q = `SELECT ` + apiColumns + ` FROM pf_api WHERE id = $1`
	return scanApi(r.db.QueryRowContext(ctx, q, id))
}

// List returns all apis ordered by ID.
func (r *ApiPostgres) List(ctx context.Context) ([]model.Api, error) {
	const q = `SELECT ` + apiColumns + ` FROM pf_api ORDER BY id`
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]model.Api, 0)
	for rows.Next() {
		a, err := scanApi(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, *a)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

// Update writes the business and modified columns of an api.
func (r *ApiPostgres) Update(ctx context.Context, a *model.Api) (*model.Api, error) {
	const q = `
		UPDATE pf_api SET
			apiname = $2, description = $3,
			modified_by = $4, modified_time = $5, modified_company = $6,
			modified_unit = $7, modified_name = $8
		WHERE id = $1
		RETURNING ` + apiColumns
	args := append([]any{a.ID, a.Apiname, a.Description}, modifiedArgs(&a.Metadata)...)
	out, err := scanApi(r.db.QueryRowContext(ctx, q, args...))
	if err != nil {
		return nil, mapErr(err)
	}
	return out, nil
}

// Delete removes an api by ID. It does not return an error if the row does not exist.
func (r *ApiPostgres) Delete(ctx context.Context, id int64) error {
	const q = `DELETE FROM pf_api WHERE id = $1`
	_, err := r.db.ExecContext(ctx, q, id)
	return err
}
