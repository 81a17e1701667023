package postgres

import (
	"context"
	"database/sql"

	"auditapi/internal/model"
	"auditapi/internal/repository"
)

const userColumns = `user_uid, username, description, password, email, cellphone,
	company_id, status_id, default_language, ` + auditColumns

// UserPostgres is a PostgreSQL implementation of repository.UserRepository.
type UserPostgres struct {
	db *sql.DB
}

// NewUserPostgres creates a new UserPostgres repository.
func NewUserPostgres(db *sql.DB) *UserPostgres {
	return &UserPostgres{db: db}
}

var _ repository.UserRepository = (*UserPostgres)(nil)

func scanUser(s scanner) (*model.User, error) {
	var u model.User
	dest := append([]any{
		&u.ID, &u.Username, &u.Description, &u.PasswordHash, &u.Email, &u.Cellphone,
		&u.CompanyID, &u.StatusID, &u.DefaultLanguage,
	}, auditDest(&u.Metadata)...)
	if err := s.Scan(dest...); err != nil {
		return nil, err
	}
	return &u, nil
}

// Create inserts a new user row and returns the stored record.
func (r *UserPostgres) Create(ctx context.Context, u *model.User) (*model.User, error) {
	const q = `
		INSERT INTO pf_user (` + userColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19)
		RETURNING ` + userColumns
	args := append([]any{
		u.ID, u.Username, u.Description, u.PasswordHash, u.Email, u.Cellphone,
		u.CompanyID, u.StatusID, u.DefaultLanguage,
	}, auditArgs(&u.Metadata)...)
	out, err := scanUser(r.db.QueryRowContext(ctx, q, args...))
	if err != nil {
		return nil, mapErr(err)
	}
	return out, nil
}

// FindByID fetches a single user by its UUID.
func (r *UserPostgres) FindByID(ctx context.Context, id string) (*model.User, error) {
	const q = `SELECT ` + userColumns + ` FROM pf_user WHERE user_uid = $1`
	return scanUser(r.db.QueryRowContext(ctx, q, id))
}

// FindByUsername fetches a single user by its unique username.
func (r *UserPostgres) FindByUsername(ctx context.Context, username string) (*model.User, error) {
	const q = `SELECT ` + userColumns + ` FROM pf_user WHERE username = $1`
	return scanUser(r.db.QueryRowContext(ctx, q, username))
}

// List returns all users ordered by creation time.
func (r *UserPostgres) List(ctx context.Context) ([]model.User, error) {
	const q = `SELECT ` + userColumns + ` FROM pf_user ORDER BY created_time, username`
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]model.User, 0)
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, *u)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

// Update writes the mutable columns of a user and returns the stored record.
func (r *UserPostgres) Update(ctx context.Context, u *model.User) (*model.User, error) {
	const q = `
		UPDATE pf_user SET
			description = $2, email = $3, cellphone = $4, company_id = $5,
			status_id = $6, default_language = $7,
			modified_by = $8, modified_time = $9, modified_company = $10,
			modified_unit = $11, modified_name = $12
		WHERE user_uid = $1
		RETURNING ` + userColumns
	args := append([]any{
		u.ID, u.Description, u.Email, u.Cellphone, u.CompanyID, u.StatusID, u.DefaultLanguage,
	}, modifiedArgs(&u.Metadata)...)
	out, err := scanUser(r.db.QueryRowContext(ctx, q, args...))
	if err != nil {
		return nil, mapErr(err)
	}
	return out, nil
}
