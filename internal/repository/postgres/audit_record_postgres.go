package postgres

import (
	"context"
	"database/sql"

	"auditapi/internal/model"
	"auditapi/internal/repository"
)

const selectAuditRecord = `
	SELECT r.id, r.operation, r.target_type, r.target_id, r.details,
		r.created_by_id, cu.username, r.created_time,
		r.modified_by_id, mu.username, r.modified_time
	FROM pf_audit_record r
	JOIN pf_user cu ON cu.user_uid = r.created_by_id
	JOIN pf_user mu ON mu.user_uid = r.modified_by_id`

// AuditRecordPostgres is a PostgreSQL implementation of repository.AuditRecordRepository.
type AuditRecordPostgres struct {
	db *sql.DB
}

// NewAuditRecordPostgres creates a new AuditRecordPostgres repository.
func NewAuditRecordPostgres(db *sql.DB) *AuditRecordPostgres {
	return &AuditRecordPostgres{db: db}
}

var _ repository.AuditRecordRepository = (*AuditRecordPostgres)(nil)

func scanAuditRecord(s scanner) (*model.AuditRecord, error) {
	var a model.AuditRecord
	if err := s.Scan(
		&a.ID, &a.Operation, &a.TargetType, &a.TargetID, &a.Details,
		&a.CreatedBy.ID, &a.CreatedBy.Username, &a.CreatedTime,
		&a.ModifiedBy.ID, &a.ModifiedBy.Username, &a.ModifiedTime,
	); err != nil {
		return nil, err
	}
	return &a, nil
}

// Create inserts a new record. The returned record is rec with its generated ID.
func (r *AuditRecordPostgres) Create(ctx context.Context, rec *model.AuditRecord) (*model.AuditRecord, error) {
	const q = `
		INSERT INTO pf_audit_record
			(operation, target_type, target_id, details, created_by_id, created_time, modified_by_id, modified_time)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id`
	out := *rec
	if err := r.db.QueryRowContext(ctx, q,
		rec.Operation, rec.TargetType, rec.TargetID, rec.Details,
		rec.CreatedBy.ID, rec.CreatedTime,
		rec.ModifiedBy.ID, rec.ModifiedTime,
	).Scan(&out.ID); err != nil {
		return nil, mapErr(err)
	}
	return &out, nil
}

// FindByID fetches a single record with its auditor usernames.
func (r *AuditRecordPostgres) FindByID(ctx context.Context, id int64) (*model.AuditRecord, error) {
	return scanAuditRecord(r.db.QueryRowContext(ctx, selectAuditRecord+` WHERE r.id = $1`, id))
}

// List returns records using LIMIT/OFFSET pagination and a total count.
func (r *AuditRecordPostgres) List(ctx context.Context, pq repository.PageQuery) (*repository.PageResult[model.AuditRecord], error) {
	const qCount = `SELECT COUNT(*) FROM pf_audit_record`
	var total int
	if err := r.db.QueryRowContext(ctx, qCount).Scan(&total); err != nil {
		return nil, err
	}

	rows, err := r.db.QueryContext(ctx, selectAuditRecord+`
		ORDER BY r.created_time DESC, r.id DESC
		LIMIT $1 OFFSET $2`, pq.Limit, pq.Offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]model.AuditRecord, 0)
	for rows.Next() {
		a, err := scanAuditRecord(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, *a)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return &repository.PageResult[model.AuditRecord]{
		Items: items,
		Total: total,
	}, nil
}
