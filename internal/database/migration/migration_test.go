package migration

import (
	"context"
	"io/fs"
	"strings"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmbeddedMigrations(t *testing.T) {
	names, err := fs.Glob(embedded, "sql/*.sql")
	require.NoError(t, err)
	require.Len(t, names, 2)

	for _, name := range names {
		b, err := fs.ReadFile(embedded, name)
		require.NoError(t, err)
		assert.True(t, strings.HasPrefix(string(b), "-- +goose Up"), name)
		assert.Contains(t, string(b), "-- +goose Down", name)
	}
}

func TestSchemaCreatesAuditTables(t *testing.T) {
	b, err := fs.ReadFile(embedded, "sql/00001_schema.sql")
	require.NoError(t, err)
	for _, table := range []string{
		"pf_user_info", "pf_user", "pf_customer", "pf_api",
		"pf_environment", "pf_demo_complex_audit", "pf_audit_record",
	} {
		assert.Contains(t, string(b), "CREATE TABLE IF NOT EXISTS "+table+" (")
	}
}

func TestVersions(t *testing.T) {
	db, _, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	got, err := Versions(db)
	require.NoError(t, err)
	assert.Equal(t, []int64{1, 2}, got)
}

func TestEnsure_NilDB(t *testing.T) {
	err := Ensure(context.Background(), nil, nil, "localhost")
	assert.EqualError(t, err, "nil database")
}
