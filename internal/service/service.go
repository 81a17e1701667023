// Package service implements the use cases of the API. Services validate
// input, stamp audit metadata and translate persistence errors.
package service

import (
	"database/sql"
	"errors"
	"fmt"

	"auditapi/internal/repository"
)

var (
	ErrNotFound     = errors.New("not found")
	ErrInvalidInput = errors.New("invalid input")
	ErrConflict     = errors.New("conflict")
	ErrNotReviewed  = errors.New("environment has not been reviewed")
	ErrNoAuditor    = errors.New("no auditor user available")
	ErrNoArtifact   = errors.New("no artifact published")
)

// mapRepoErr translates repository errors into service errors.
func mapRepoErr(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, sql.ErrNoRows):
		return ErrNotFound
	case errors.Is(err, repository.ErrDuplicate):
		return fmt.Errorf("%w: %v", ErrConflict, err)
	default:
		return err
	}
}

func invalid(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidInput, fmt.Sprintf(format, args...))
}

// set assigns *src to dst when src is not nil.
func set[T any](dst *T, src *T) {
	if src != nil {
		*dst = *src
	}
}
