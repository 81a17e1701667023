package service

import (
	"context"
	"log/slog"
	"strings"

	"auditapi/internal/audit"
	"auditapi/internal/model"
	"auditapi/internal/repository"
)

// ApiInput is the payload for creating an api.
type ApiInput struct {
	Apiname     string `json:"apiname"`
	Description string `json:"description"`
}

// ApiPatch holds the api fields that may be changed.
type ApiPatch struct {
	Apiname     *string `json:"apiname"`
	Description *string `json:"description"`
}

// ApiService manages pf_api rows. Values longer than their columns are
// truncated before they are stored.
type ApiService interface {
	Create(ctx context.Context, in ApiInput) (*model.Api, error)
	Get(ctx context.Context, id int64) (*model.Api, error)
	List(ctx context.Context) ([]model.Api, error)
	Update(ctx context.Context, id int64, p ApiPatch) (*model.Api, error)
	Delete(ctx context.Context, id int64) error
}

type apiService struct {
	repo    repository.ApiRepository
	stamper *audit.Stamper
	log     *slog.Logger
}

// NewApiService constructs an ApiService.
func NewApiService(repo repository.ApiRepository, stamper *audit.Stamper, log *slog.Logger) ApiService {
	if log == nil {
		log = slog.Default()
	}
	return &apiService{repo: repo, stamper: stamper, log: log.With("component", "api")}
}

func (s *apiService) Create(ctx context.Context, in ApiInput) (*model.Api, error) {
	name := strings.TrimSpace(in.Apiname)
	if name == "" {
		return nil, invalid("apiname is required")
	}
	a := &model.Api{Apiname: name, Description: in.Description}
	actor := s.stamper.Created(ctx, a)
	a.Clamp()
	created, err := s.repo.Create(ctx, a)
	if err != nil {
		return nil, mapRepoErr(err)
	}
	s.log.InfoContext(ctx, "api created", "api_id", created.ID, "actor", actor.UserID)
	return created, nil
}

func (s *apiService) Get(ctx context.Context, id int64) (*model.Api, error) {
	a, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, mapRepoErr(err)
	}
	return a, nil
}

func (s *apiService) List(ctx context.Context) ([]model.Api, error) {
	return s.repo.List(ctx)
}

func (s *apiService) Update(ctx context.Context, id int64, p ApiPatch) (*model.Api, error) {
	a, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if p.Apiname != nil && strings.TrimSpace(*p.Apiname) == "" {
		return nil, invalid("apiname must not be empty")
	}
	set(&a.Apiname, p.Apiname)
	set(&a.Description, p.Description)
	actor := s.stamper.Modified(ctx, a)
	a.Clamp()
	updated, err := s.repo.Update(ctx, a)
	if err != nil {
		return nil, mapRepoErr(err)
	}
	s.log.InfoContext(ctx, "api updated", "api_id", id, "actor", actor.UserID)
	return updated, nil
}

// Delete removes an api. Deleting a missing api succeeds.
func (s *apiService) Delete(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return mapRepoErr(err)
	}
	s.log.InfoContext(ctx, "api deleted", "api_id", id)
	return nil
}
