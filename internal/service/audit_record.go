package service

import (
	"context"
	"log/slog"
	"strings"
	"unicode/utf8"

	"auditapi/internal/audit"
	"auditapi/internal/model"
	"auditapi/internal/repository"
)

// AuditRecordInput is the payload for recording an operation.
type AuditRecordInput struct {
	Operation  string `json:"operation"`
	TargetType string `json:"target_type"`
	TargetID   int64  `json:"target_id"`
	Details    string `json:"details"`
}

// AuditRecordListResult is a page of audit records.
type AuditRecordListResult struct {
	Items []model.AuditRecord `json:"data"`
	Total int                 `json:"total"`
}

// AuditRecordService stores operation records referencing their auditors.
type AuditRecordService interface {
	Create(ctx context.Context, in AuditRecordInput) (*model.AuditRecord, error)
	Get(ctx context.Context, id int64) (*model.AuditRecord, error)
	// List returns records newest first using limit/offset and a total count.
	List(ctx context.Context, limit, offset int) (*AuditRecordListResult, error)
}

type auditRecordService struct {
	repo     repository.AuditRecordRepository
	auditors auditors
	stamper  *audit.Stamper
	log      *slog.Logger
}

// NewAuditRecordService constructs an AuditRecordService.
func NewAuditRecordService(repo repository.AuditRecordRepository, users repository.UserRepository, stamper *audit.Stamper, log *slog.Logger) AuditRecordService {
	if log == nil {
		log = slog.Default()
	}
	return &auditRecordService{
		repo:     repo,
		auditors: auditors{users: users},
		stamper:  stamper,
		log:      log.With("component", "audit_record"),
	}
}

func (s *auditRecordService) Create(ctx context.Context, in AuditRecordInput) (*model.AuditRecord, error) {
	op := strings.TrimSpace(in.Operation)
	target := strings.TrimSpace(in.TargetType)
	if op == "" || target == "" {
		return nil, invalid("operation and target_type are required")
	}
	if utf8.RuneCountInString(in.Details) > model.MaxDetailsLen {
		return nil, invalid("details exceed %d characters", model.MaxDetailsLen)
	}
	s.stamper.Actor(ctx, audit.OpCreated)
	ref, err := s.auditors.lookup(ctx)
	if err != nil {
		return nil, err
	}
	now := s.stamper.Now()
	rec := &model.AuditRecord{
		Operation:    op,
		TargetType:   target,
		TargetID:     in.TargetID,
		Details:      in.Details,
		CreatedBy:    ref,
		CreatedTime:  now,
		ModifiedBy:   ref,
		ModifiedTime: now,
	}
	created, err := s.repo.Create(ctx, rec)
	if err != nil {
		return nil, mapRepoErr(err)
	}
	s.log.InfoContext(ctx, "audit record created", "id", created.ID, "operation", op, "auditor", ref.Username)
	return created, nil
}

func (s *auditRecordService) Get(ctx context.Context, id int64) (*model.AuditRecord, error) {
	rec, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, mapRepoErr(err)
	}
	return rec, nil
}

// List returns paginated records without exposing repository types.
func (s *auditRecordService) List(ctx context.Context, limit, offset int) (*AuditRecordListResult, error) {
	if limit <= 0 {
		limit = 10
	}
	if offset < 0 {
		offset = 0
	}
	res, err := s.repo.List(ctx, repository.PageQuery{Limit: limit, Offset: offset})
	if err != nil {
		return nil, err
	}
	return &AuditRecordListResult{Items: res.Items, Total: res.Total}, nil
}
