package postgres

import (
	"context"
	"database/sql"

	"auditapi/internal/model"
	"auditapi/internal/repository"
)

// UserInfoPostgres reads the pf_user_info directory table.
type UserInfoPostgres struct {
	db *sql.DB
}

// NewUserInfoPostgres creates a new UserInfoPostgres repository.
func NewUserInfoPostgres(db *sql.DB) *UserInfoPostgres {
	return &UserInfoPostgres{db: db}
}

var _ repository.UserInfoRepository = (*UserInfoPostgres)(nil)

// FindByID fetches a directory entry by user id.
func (r *UserInfoPostgres) FindByID(ctx context.Context, userID string) (*model.UserInfo, error) {
	const q = `SELECT user_id, company, unit, name FROM pf_user_info WHERE user_id = $1`
	var u model.UserInfo
	if err := r.db.QueryRowContext(ctx, q, userID).Scan(&u.UserID, &u.Company, &u.Unit, &u.Name); err != nil {
		return nil, err
	}
	return &u, nil
}

// List returns every directory entry ordered by user id.
func (r *UserInfoPostgres) List(ctx context.Context) ([]model.UserInfo, error) {
	const q = `SELECT user_id, company, unit, name FROM pf_user_info ORDER BY user_id`
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]model.UserInfo, 0)
	for rows.Next() {
		var u model.UserInfo
		if err := rows.Scan(&u.UserID, &u.Company, &u.Unit, &u.Name); err != nil {
			return nil, err
		}
		items = append(items, u)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}
