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

const maxComplexAuditName = 100

// ComplexAuditInput is the payload for creating or updating a complex
// audit record.
type ComplexAuditInput struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// ComplexAuditService manages records whose auditors are pf_user rows.
type ComplexAuditService interface {
	Create(ctx context.Context, in ComplexAuditInput) (*model.ComplexAudit, error)
	Get(ctx context.Context, id int64) (*model.ComplexAudit, error)
	List(ctx context.Context) ([]model.ComplexAudit, error)
	// Update replaces name and description and bumps the version.
	Update(ctx context.Context, id int64, in ComplexAuditInput) (*model.ComplexAudit, error)
}

type complexAuditService struct {
	repo     repository.ComplexAuditRepository
	auditors auditors
	stamper  *audit.Stamper
	log      *slog.Logger
}

// NewComplexAuditService constructs a ComplexAuditService.
func NewComplexAuditService(repo repository.ComplexAuditRepository, users repository.UserRepository, stamper *audit.Stamper, log *slog.Logger) ComplexAuditService {
	if log == nil {
		log = slog.Default()
	}
	return &complexAuditService{
		repo:     repo,
		auditors: auditors{users: users},
		stamper:  stamper,
		log:      log.With("component", "complex_audit"),
	}
}

func (in ComplexAuditInput) validate() (string, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return "", invalid("name is required")
	}
	if utf8.RuneCountInString(name) > maxComplexAuditName {
		return "", invalid("name exceeds %d characters", maxComplexAuditName)
	}
	return name, nil
}

func (s *complexAuditService) Create(ctx context.Context, in ComplexAuditInput) (*model.ComplexAudit, error) {
	name, err := in.validate()
	if err != nil {
		return nil, err
	}
	s.stamper.Actor(ctx, audit.OpCreated)
	ref, err := s.auditors.lookup(ctx)
	if err != nil {
		return nil, err
	}
	now := s.stamper.Now()
	c := &model.ComplexAudit{
		Name:               name,
		Description:        in.Description,
		CreatedByUser:      ref,
		CreatedTime:        now,
		LastModifiedByUser: ref,
		LastModifiedTime:   now,
	}
	created, err := s.repo.Create(ctx, c)
	if err != nil {
		return nil, mapRepoErr(err)
	}
	s.log.InfoContext(ctx, "complex audit created", "id", created.ID, "auditor", ref.Username)
	return created, nil
}

func (s *complexAuditService) Get(ctx context.Context, id int64) (*model.ComplexAudit, error) {
	c, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, mapRepoErr(err)
	}
	return c, nil
}

func (s *complexAuditService) List(ctx context.Context) ([]model.ComplexAudit, error) {
	return s.repo.List(ctx)
}

func (s *complexAuditService) Update(ctx context.Context, id int64, in ComplexAuditInput) (*model.ComplexAudit, error) {
	name, err := in.validate()
	if err != nil {
		return nil, err
	}
	c, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	s.stamper.Actor(ctx, audit.OpModified)
	ref, err := s.auditors.lookup(ctx)
	if err != nil {
		return nil, err
	}
	c.Name = name
	c.Description = in.Description
	c.LastModifiedByUser = ref
	c.LastModifiedTime = s.stamper.Now()
	c.Version++
	updated, err := s.repo.Update(ctx, c)
	if err != nil {
		return nil, mapRepoErr(err)
	}
	s.log.InfoContext(ctx, "complex audit updated", "id", id, "auditor", ref.Username, "version", updated.Version)
	return updated, nil
}
