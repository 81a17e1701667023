// Package postgres implements the repository interfaces on PostgreSQL using
// database/sql with parameterized queries. It contains no business logic.
package postgres

import (
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"

	"auditapi/internal/audit"
	"auditapi/internal/repository"
)

const uniqueViolation = "23505"

// auditColumns lists the value-stamped audit columns in scan order.
const auditColumns = `created_by, created_time, modified_by, modified_time,
	created_company, created_unit, created_name,
	modified_company, modified_unit, modified_name`

type scanner interface {
	Scan(dest ...any) error
}

func auditArgs(m *audit.Metadata) []any {
	return []any{
		m.CreatedBy, m.CreatedTime, m.ModifiedBy, m.ModifiedTime,
		m.CreatedCompany, m.CreatedUnit, m.CreatedName,
		m.ModifiedCompany, m.ModifiedUnit, m.ModifiedName,
	}
}

func auditDest(m *audit.Metadata) []any {
	return []any{
		&m.CreatedBy, &m.CreatedTime, &m.ModifiedBy, &m.ModifiedTime,
		&m.CreatedCompany, &m.CreatedUnit, &m.CreatedName,
		&m.ModifiedCompany, &m.ModifiedUnit, &m.ModifiedName,
	}
}

// modifiedArgs returns modified_by, modified_time, modified_company,
// modified_unit and modified_name in that order.
func modifiedArgs(m *audit.Metadata) []any {
	return []any{m.ModifiedBy, m.ModifiedTime, m.ModifiedCompany, m.ModifiedUnit, m.ModifiedName}
}

// mapErr translates driver errors into repository errors.
func mapErr(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
		return fmt.Errorf("%w: %s", repository.ErrDuplicate, pgErr.ConstraintName)
	}
	return err
}
