package postgres

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"auditapi/internal/audit"
	"auditapi/internal/model"
	"auditapi/internal/repository"
)

var auditCols = []string{
	"created_by", "created_time", "modified_by", "modified_time",
	"created_company", "created_unit", "created_name",
	"modified_company", "modified_unit", "modified_name",
}

func auditVals(by string, at time.Time) []driver.Value {
	return []driver.Value{by, at, by, at, "Acme", "R&D", by, "Acme", "R&D", by}
}

func cols(head ...string) []string {
	return append(head, auditCols...)
}

func vals(by string, at time.Time, head ...driver.Value) []driver.Value {
	return append(head, auditVals(by, at)...)
}

func newMock(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db, mock
}

func stamped(by string, at time.Time) audit.Metadata {
	var m audit.Metadata
	m.MarkCreated(audit.Actor{UserID: by, Name: by, Company: "Acme", Unit: "R&D"}, at)
	return m
}

func TestUserPostgres_Create(t *testing.T) {
	db, mock := newMock(t)
	repo := NewUserPostgres(db)
	now := time.Now().UTC()

	u := &model.User{
		ID:       "5b1c3a3e-7a1e-4f0c-9d35-0f9f3c1f2c11",
		Username: "alice",
		StatusID: "active",
		Metadata: stamped("kenbai", now),
	}

	userCols := cols("user_uid", "username", "description", "password", "email", "cellphone",
		"company_id", "status_id", "default_language")

	t.Run("success", func(t *testing.T) {
		rows := sqlmock.NewRows(userCols).
			AddRow(vals("kenbai", now, u.ID, "alice", "", "", "", "", "", "active", "")...)
		mock.ExpectQuery("INSERT INTO pf_user").
			WithArgs(u.ID, "alice", "", "", "", "", "", "active", "",
				"kenbai", now, "kenbai", now, "Acme", "R&D", "kenbai", "Acme", "R&D", "kenbai").
			WillReturnRows(rows)

		got, err := repo.Create(context.Background(), u)

		require.NoError(t, err)
		assert.Equal(t, u.ID, got.ID)
		assert.Equal(t, "kenbai", got.CreatedBy)
		assert.Equal(t, "R&D", got.ModifiedUnit)
	})

	t.Run("duplicate username", func(t *testing.T) {
		mock.ExpectQuery("INSERT INTO pf_user").
			WillReturnError(&pgconn.PgError{Code: "23505", ConstraintName: "pf_user_username_key"})

		got, err := repo.Create(context.Background(), u)

		assert.ErrorIs(t, err, repository.ErrDuplicate)
		assert.Nil(t, got)
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserPostgres_FindByUsername(t *testing.T) {
	db, mock := newMock(t)
	repo := NewUserPostgres(db)

	t.Run("not found", func(t *testing.T) {
		mock.ExpectQuery("FROM pf_user WHERE username =").
			WithArgs("ghost").
			WillReturnError(sql.ErrNoRows)

		u, err := repo.FindByUsername(context.Background(), "ghost")

		assert.ErrorIs(t, err, sql.ErrNoRows)
		assert.Nil(t, u)
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserPostgres_Update(t *testing.T) {
	db, mock := newMock(t)
	repo := NewUserPostgres(db)
	created := time.Now().Add(-time.Hour).UTC()
	now := time.Now().UTC()

	u := &model.User{ID: "id-1", Username: "alice", Email: "a@example.com", StatusID: "active"}
	u.MarkModified(audit.Actor{UserID: "peter", Name: "Peter", Company: "Acme", Unit: "Dev"}, now)

	rows := sqlmock.NewRows(cols("user_uid", "username", "description", "password", "email", "cellphone",
		"company_id", "status_id", "default_language")).
		AddRow("id-1", "alice", "", "", "a@example.com", "", "", "active", "",
			"system", created, "peter", now, "System", "System", "System", "Acme", "Dev", "Peter")
	mock.ExpectQuery("UPDATE pf_user SET").
		WithArgs("id-1", "", "a@example.com", "", "", "active", "",
			"peter", now, "Acme", "Dev", "Peter").
		WillReturnRows(rows)

	got, err := repo.Update(context.Background(), u)

	require.NoError(t, err)
	assert.Equal(t, "system", got.CreatedBy)
	assert.Equal(t, "peter", got.ModifiedBy)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserInfoPostgres(t *testing.T) {
	db, mock := newMock(t)
	repo := NewUserInfoPostgres(db)

	mock.ExpectQuery("SELECT user_id, company, unit, name FROM pf_user_info WHERE user_id =").
		WithArgs("kenbai").
		WillReturnRows(sqlmock.NewRows([]string{"user_id", "company", "unit", "name"}).
			AddRow("kenbai", "TPIsoftware", "研發一處", "白建鈞"))
	mock.ExpectQuery("FROM pf_user_info ORDER BY user_id").
		WillReturnRows(sqlmock.NewRows([]string{"user_id", "company", "unit", "name"}).
			AddRow("kenbai", "TPIsoftware", "研發一處", "白建鈞").
			AddRow("system", "System", "System", "System"))

	info, err := repo.FindByID(context.Background(), "kenbai")
	require.NoError(t, err)
	assert.Equal(t, "白建鈞", info.Name)

	all, err := repo.List(context.Background())
	require.NoError(t, err)
	assert.Len(t, all, 2)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func customerCols() []string {
	return cols("id", "name", "email", "phone", "address", "company")
}

func TestCustomerPostgres_CreateBatch(t *testing.T) {
	now := time.Now().UTC()
	batch := []*model.Customer{
		{Name: "A", Metadata: stamped("peter", now)},
		{Name: "B", Metadata: stamped("peter", now)},
	}

	t.Run("commits all rows", func(t *testing.T) {
		db, mock := newMock(t)
		repo := NewCustomerPostgres(db)

		mock.ExpectBegin()
		prep := mock.ExpectPrepare("INSERT INTO pf_customer")
		prep.ExpectQuery().
			WithArgs("A", "", "", "", "", "peter", now, "peter", now, "Acme", "R&D", "peter", "Acme", "R&D", "peter").
			WillReturnRows(sqlmock.NewRows(customerCols()).AddRow(vals("peter", now, int64(1), "A", "", "", "", "")...))
		prep.ExpectQuery().
			WithArgs("B", "", "", "", "", "peter", now, "peter", now, "Acme", "R&D", "peter", "Acme", "R&D", "peter").
			WillReturnRows(sqlmock.NewRows(customerCols()).AddRow(vals("peter", now, int64(2), "B", "", "", "", "")...))
		mock.ExpectCommit()

		got, err := repo.CreateBatch(context.Background(), batch)

		require.NoError(t, err)
		require.Len(t, got, 2)
		assert.Equal(t, int64(2), got[1].ID)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("rolls back on failure", func(t *testing.T) {
		db, mock := newMock(t)
		repo := NewCustomerPostgres(db)

		mock.ExpectBegin()
		prep := mock.ExpectPrepare("INSERT INTO pf_customer")
		prep.ExpectQuery().
			WillReturnRows(sqlmock.NewRows(customerCols()).AddRow(vals("peter", now, int64(1), "A", "", "", "", "")...))
		prep.ExpectQuery().WillReturnError(errors.New("boom"))
		mock.ExpectRollback()

		got, err := repo.CreateBatch(context.Background(), batch)

		assert.EqualError(t, err, "boom")
		assert.Nil(t, got)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestCustomerPostgres_ListModifiedBetween(t *testing.T) {
	db, mock := newMock(t)
	repo := NewCustomerPostgres(db)
	start := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	end := start.Add(24 * time.Hour)

	mock.ExpectQuery("FROM pf_customer WHERE modified_time >= (.+) AND modified_time <= ").
		WithArgs(start, end).
		WillReturnRows(sqlmock.NewRows(customerCols()).AddRow(vals("shawn", start.Add(time.Hour), int64(7), "C", "", "", "", "")...))

	got, err := repo.ListModifiedBetween(context.Background(), start, end)

	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "shawn", got[0].ModifiedBy)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCustomerPostgres_Delete(t *testing.T) {
	db, mock := newMock(t)
	repo := NewCustomerPostgres(db)

	mock.ExpectExec("DELETE FROM pf_customer WHERE id =").
		WithArgs(int64(1)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("DELETE FROM pf_customer WHERE id =").
		WithArgs(int64(2)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	assert.NoError(t, repo.Delete(context.Background(), 1))
	assert.ErrorIs(t, repo.Delete(context.Background(), 2), sql.ErrNoRows)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestApiPostgres(t *testing.T) {
	db, mock := newMock(t)
	repo := NewApiPostgres(db)
	now := time.Now().UTC()
	apiCols := cols("id", "apiname", "description")

	t.Run("create", func(t *testing.T) {
		a := &model.Api{Apiname: "orders", Description: "Orders API", Metadata: stamped("kenbai", now)}
		mock.ExpectQuery("INSERT INTO pf_api").
			WithArgs("orders", "Orders API", "kenbai", now, "kenbai", now, "Acme", "R&D", "kenbai", "Acme", "R&D", "kenbai").
			WillReturnRows(sqlmock.NewRows(apiCols).AddRow(vals("kenbai", now, int64(3), "orders", "Orders API")...))

		got, err := repo.Create(context.Background(), a)

		require.NoError(t, err)
		assert.Equal(t, int64(3), got.ID)
	})

	t.Run("list", func(t *testing.T) {
		mock.ExpectQuery("FROM pf_api ORDER BY id").
			WillReturnRows(sqlmock.NewRows(apiCols).
				AddRow(vals("kenbai", now, int64(3), "orders", "")...).
				AddRow(vals("peter", now, int64(4), "billing", "")...))

		got, err := repo.List(context.Background())

		require.NoError(t, err)
		assert.Len(t, got, 2)
	})

	t.Run("delete missing row is not an error", func(t *testing.T) {
		mock.ExpectExec("DELETE FROM pf_api WHERE id =").
			WithArgs(int64(99)).
			WillReturnResult(sqlmock.NewResult(0, 0))

		assert.NoError(t, repo.Delete(context.Background(), 99))
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}

func environmentCols() []string {
	c := []string{"id", "name", "description", "type", "config_value", "version", "status"}
	c = append(c, auditCols...)
	return append(c,
		"reviewed_by", "reviewed_time", "reviewed_company", "reviewed_unit", "reviewer_name", "review_status", "review_comment",
		"deployed_by", "deployed_time", "deployed_company", "deployed_unit", "deployer_name", "deploy_status", "deploy_comment",
		"artifact_path")
}

func environmentRow(id int64, name string, at time.Time, reviewedBy string, reviewedAt any) []driver.Value {
	v := []driver.Value{id, name, "", "DB", "{}", "1.0", int64(0)}
	v = append(v, auditVals("kenbai", at)...)
	return append(v,
		reviewedBy, reviewedAt, "", "", "", "", "",
		"", nil, "", "", "", "", "",
		"")
}

func TestEnvironmentPostgres_List(t *testing.T) {
	db, mock := newMock(t)
	repo := NewEnvironmentPostgres(db)
	now := time.Now().UTC()

	t.Run("by type", func(t *testing.T) {
		mock.ExpectQuery("FROM pf_environment WHERE type =").
			WithArgs("DB").
			WillReturnRows(sqlmock.NewRows(environmentCols()).AddRow(environmentRow(1, "prod-db", now, "", nil)...))

		got, err := repo.List(context.Background(), "DB")

		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Nil(t, got[0].ReviewedTime)
		assert.Nil(t, got[0].DeployedTime)
	})

	t.Run("pending deploy", func(t *testing.T) {
		mock.ExpectQuery("WHERE reviewed_by <> '' AND deployed_by = ''").
			WillReturnRows(sqlmock.NewRows(environmentCols()).AddRow(environmentRow(2, "stage-db", now, "peter", now)...))

		got, err := repo.ListPendingDeploy(context.Background())

		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, "peter", got[0].ReviewedBy)
		require.NotNil(t, got[0].ReviewedTime)
		assert.True(t, got[0].ReviewedTime.Equal(now))
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestEnvironmentPostgres_Update(t *testing.T) {
	db, mock := newMock(t)
	repo := NewEnvironmentPostgres(db)
	now := time.Now().UTC()

	e := &model.Environment{ID: 2, Name: "stage-db", Type: "DB", Version: "1.0"}
	e.MarkReviewed(audit.Actor{UserID: "peter", Name: "Peter", Company: "Acme", Unit: "Dev"}, now, "approved", "")

	mock.ExpectQuery("UPDATE pf_environment SET").
		WithArgs(int64(2), "", "", "1.0", model.EnvStatusReviewed,
			"peter", now, "Acme", "Dev", "Peter",
			"peter", e.ReviewedTime, "Acme", "Dev", "Peter", "approved", "",
			"", nil, "", "", "", "", "",
			"").
		WillReturnRows(sqlmock.NewRows(environmentCols()).AddRow(environmentRow(2, "stage-db", now, "peter", now)...))

	got, err := repo.Update(context.Background(), e)

	require.NoError(t, err)
	assert.Equal(t, "peter", got.ReviewedBy)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestComplexAuditPostgres(t *testing.T) {
	db, mock := newMock(t)
	repo := NewComplexAuditPostgres(db)
	now := time.Now().UTC()
	sys := audit.Reference{ID: "uid-system", Username: "system"}

	t.Run("create", func(t *testing.T) {
		c := &model.ComplexAudit{
			Name: "demo", CreatedByUser: sys, CreatedTime: now,
			LastModifiedByUser: sys, LastModifiedTime: now,
		}
		mock.ExpectQuery("INSERT INTO pf_demo_complex_audit").
			WithArgs("demo", "", "uid-system", now, "uid-system", now, 0).
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(5)))

		got, err := repo.Create(context.Background(), c)

		require.NoError(t, err)
		assert.Equal(t, int64(5), got.ID)
		assert.Equal(t, "system", got.CreatedByUser.Username)
	})

	t.Run("find joins usernames", func(t *testing.T) {
		mock.ExpectQuery("JOIN pf_user cu (.+) WHERE c.id =").
			WithArgs(int64(5)).
			WillReturnRows(sqlmock.NewRows([]string{
				"id", "name", "description", "created_by_id", "username", "created_time",
				"last_modified_by_id", "username", "last_modified_time", "version",
			}).AddRow(int64(5), "demo", "", "uid-system", "system", now, "uid-peter", "peter", now, 1))

		got, err := repo.FindByID(context.Background(), 5)

		require.NoError(t, err)
		assert.Equal(t, "peter", got.LastModifiedByUser.Username)
		assert.Equal(t, 1, got.Version)
	})

	t.Run("update missing row", func(t *testing.T) {
		mock.ExpectExec("UPDATE pf_demo_complex_audit SET").
			WillReturnResult(sqlmock.NewResult(0, 0))

		got, err := repo.Update(context.Background(), &model.ComplexAudit{ID: 9})

		assert.ErrorIs(t, err, sql.ErrNoRows)
		assert.Nil(t, got)
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAuditRecordPostgres_List(t *testing.T) {
	db, mock := newMock(t)
	repo := NewAuditRecordPostgres(db)
	now := time.Now().UTC()

	mock.ExpectQuery("SELECT COUNT\\(\\*\\) FROM pf_audit_record").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))
	mock.ExpectQuery("FROM pf_audit_record r (.+) ORDER BY").
		WithArgs(10, 0).
		WillReturnRows(sqlmock.NewRows([]string{
			"id", "operation", "target_type", "target_id", "details",
			"created_by_id", "username", "created_time", "modified_by_id", "username", "modified_time",
		}).AddRow(int64(1), "UPDATE", "Customer", int64(7), "renamed", "uid-system", "system", now, "uid-system", "system", now))

	res, err := repo.List(context.Background(), repository.PageQuery{Limit: 10, Offset: 0})

	require.NoError(t, err)
	assert.Equal(t, 1, res.Total)
	require.Len(t, res.Items, 1)
	assert.Equal(t, "Customer", res.Items[0].TargetType)
	assert.NoError(t, mock.ExpectationsWereMet())
}
