package postgres

import (
	"context"
	"database/sql"

	"auditapi/internal/model"
	"auditapi/internal/repository"
)

const environmentColumns = `id, name, description, type, config_value, version, status, ` + auditColumns + `,
	reviewed_by, reviewed_time, reviewed_company, reviewed_unit, reviewer_name, review_status, review_comment,
	deployed_by, deployed_time, deployed_company, deployed_unit, deployer_name, deploy_status, deploy_comment,
	artifact_path`

// EnvironmentPostgres is a PostgreSQL implementation of repository.EnvironmentRepository.
type EnvironmentPostgres struct {
	db *sql.DB
}

// NewEnvironmentPostgres creates a new EnvironmentPostgres repository.
func NewEnvironmentPostgres(db *sql.DB) *EnvironmentPostgres {
	return &EnvironmentPostgres{db: db}
}

var _ repository.EnvironmentRepository = (*EnvironmentPostgres)(nil)

func scanEnvironment(s scanner) (*model.Environment, error) {
	var e model.Environment
	dest := []any{&e.ID, &e.Name, &e.Description, &e.Type, &e.ConfigValue, &e.Version, &e.Status}
	dest = append(dest, auditDest(&e.Metadata)...)
	dest = append(dest,
		&e.ReviewedBy, &e.ReviewedTime, &e.ReviewedCompany, &e.ReviewedUnit, &e.ReviewerName, &e.ReviewStatus, &e.ReviewComment,
		&e.DeployedBy, &e.DeployedTime, &e.DeployedCompany, &e.DeployedUnit, &e.DeployerName, &e.DeployStatus, &e.DeployComment,
		&e.ArtifactPath,
	)
	if err := s.Scan(dest...); err != nil {
		return nil, err
	}
	return &e, nil
}

func (r *EnvironmentPostgres) query(ctx context.Context, q string, args ...any) ([]model.Environment, error) {
	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]model.Environment, 0)
	for rows.Next() {
		e, err := scanEnvironment(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, *e)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

// Create inserts a new environment row and returns the stored record.
func (r *EnvironmentPostgres) Create(ctx context.Context, e *model.Environment) (*model.Environment, error) {
	const q = `
		INSERT INTO pf_environment (name, description, type, config_value, version, status, ` + auditColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)
		RETURNING ` + environmentColumns
	args := append([]any{e.Name, e.Description, e.Type, e.ConfigValue, e.Version, e.Status}, auditArgs(&e.Metadata)...)
	out, err := scanEnvironment(r.db.QueryRowContext(ctx, q, args...))
	if err != nil {
		return nil, mapErr(err)
	}
	return out, nil
}

// FindByID fetches a single environment by its ID.
func (r *EnvironmentPostgres) FindByID(ctx context.Context, id int64) (*model.Environment, error) {
	const q = `SELECT ` + environmentColumns + ` FROM pf_environment WHERE id = $1`
	return scanEnvironment(r.db.QueryRowContext(ctx, q, id))
}

// FindByName fetches a single environment by its unique name.
func (r *EnvironmentPostgres) FindByName(ctx context.Context, name string) (*model.Environment, error) {
	const q = `SELECT ` + environmentColumns + ` FROM pf_environment WHERE name = $1`
	return scanEnvironment(r.db.QueryRowContext(ctx, q, name))
}

// List returns environments ordered by ID, optionally filtered by type.
func (r *EnvironmentPostgres) List(ctx context.Context, envType string) ([]model.Environment, error) {
	if envType == "" {
		const q = `SELECT ` + environmentColumns + ` FROM pf_environment ORDER BY id`
		return r.query(ctx, q)
	}
	const q = `SELECT ` + environmentColumns + ` FROM pf_environment WHERE type = $1 ORDER BY id`
	return r.query(ctx, q, envType)
}

// ListPendingDeploy returns reviewed environments that have not been deployed.
func (r *EnvironmentPostgres) ListPendingDeploy(ctx context.Context) ([]model.Environment, error) {
	const q = `
		SELECT ` + environmentColumns + `
		FROM pf_environment
		WHERE reviewed_by <> '' AND deployed_by = ''
		ORDER BY id`
	return r.query(ctx, q)
}

// Update writes every mutable column of an environment.
func (r *EnvironmentPostgres) Update(ctx context.Context, e *model.Environment) (*model.Environment, error) {
	const q = `
		UPDATE pf_environment SET
			description = $2, config_value = $3, version = $4, status = $5,
			modified_by = $6, modified_time = $7, modified_company = $8,
			modified_unit = $9, modified_name = $10,
			reviewed_by = $11, reviewed_time = $12, reviewed_company = $13, reviewed_unit = $14,
			reviewer_name = $15, review_status = $16, review_comment = $17,
			deployed_by = $18, deployed_time = $19, deployed_company = $20, deployed_unit = $21,
			deployer_name = $22, deploy_status = $23, deploy_comment = $24,
			artifact_path = $25
		WHERE id = $1
		RETURNING ` + environmentColumns
	args := []any{e.ID, e.Description, e.ConfigValue, e.Version, e.Status}
	args = append(args, modifiedArgs(&e.Metadata)...)
	args = append(args,
		e.ReviewedBy, e.ReviewedTime, e.ReviewedCompany, e.ReviewedUnit, e.ReviewerName, e.ReviewStatus, e.ReviewComment,
		e.DeployedBy, e.DeployedTime, e.DeployedCompany, e.DeployedUnit, e.DeployerName, e.DeployStatus, e.DeployComment,
		e.ArtifactPath,
	)
	out, err := scanEnvironment(r.db.QueryRowContext(ctx, q, args...))
	if err != nil {
		return nil, mapErr(err)
	}
	return out, nil
}
