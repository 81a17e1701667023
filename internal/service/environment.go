package service

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"

	"auditapi/internal/audit"
	"auditapi/internal/model"
	"auditapi/internal/repository"
	"auditapi/internal/storage"
)

const (
	DefaultReviewStatus = "approved"
	DefaultDeployStatus = "success"

	artifactURLExpiry = 15 * time.Minute
)

// EnvironmentInput is the payload for creating an environment.
type EnvironmentInput struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Type        string `json:"type"`
	ConfigValue string `json:"config_value"`
}

// EnvironmentPatch holds the environment fields that may be changed.
type EnvironmentPatch struct {
	Description *string `json:"description"`
	ConfigValue *string `json:"config_value"`
	Status      *int    `json:"status"`
}

// ReviewInput is the optional payload of a review.
type ReviewInput struct {
	Status  string `json:"status"`
	Comment string `json:"comment"`
}

// DeployInput is the optional payload of a deploy. An empty Version bumps
// the minor version.
type DeployInput struct {
	Version string `json:"version"`
	Status  string `json:"status"`
	Comment string `json:"comment"`
}

// Artifact is the document published to object storage on deploy.
type Artifact struct {
	Name         string    `json:"name"`
	Type         string    `json:"type"`
	Version      string    `json:"version"`
	ConfigValue  string    `json:"config_value"`
	DeployedBy   string    `json:"deployed_by"`
	DeployerName string    `json:"deployer_name"`
	DeployedTime time.Time `json:"deployed_time"`
}

// EnvironmentService manages pf_environment rows and their review and
// deploy workflow.
type EnvironmentService interface {
	Create(ctx context.Context, in EnvironmentInput) (*model.Environment, error)
	Get(ctx context.Context, id int64) (*model.Environment, error)
	// List returns all environments, or those of envType when it is set.
	List(ctx context.Context, envType string) ([]model.Environment, error)
	Update(ctx context.Context, id int64, p EnvironmentPatch) (*model.Environment, error)
	Review(ctx context.Context, id int64, in ReviewInput) (*model.Environment, error)
	// Deploy requires a prior review. When object storage is configured the
	// deployed configuration is published as an artifact.
	Deploy(ctx context.Context, id int64, in DeployInput) (*model.Environment, error)
	PendingDeploy(ctx context.Context) ([]model.Environment, error)
	// ArtifactURL returns a time-limited download URL for the last artifact.
	ArtifactURL(ctx context.Context, id int64) (string, error)
	// OpenArtifact streams the last artifact. Callers close the reader.
	OpenArtifact(ctx context.Context, id int64) (io.ReadCloser, storage.ObjectInfo, error)
}

type environmentService struct {
	repo    repository.EnvironmentRepository
	store   storage.Storage
	stamper *audit.Stamper
	log     *slog.Logger
	// deployID names each published artifact so a failed deploy never
	// touches the object the row already references.
	deployID func() string
}

// NewEnvironmentService constructs an EnvironmentService. store may be nil,
// in which case deploys publish nothing.
func NewEnvironmentService(repo repository.EnvironmentRepository, store storage.Storage, stamper *audit.Stamper, log *slog.Logger) EnvironmentService {
	if log == nil {
		log = slog.Default()
	}
	return &environmentService{
		repo:     repo,
		store:    store,
		stamper:  stamper,
		log:      log.With("component", "environment"),
		deployID: uuid.NewString,
	}
}

func (s *environmentService) Create(ctx context.Context, in EnvironmentInput) (*model.Environment, error) {
	name := strings.TrimSpace(in.Name)
	envType := strings.TrimSpace(in.Type)
	if name == "" || envType == "" {
		return nil, invalid("name and type are required")
	}
	_, err := s.repo.FindByName(ctx, name)
	switch err = mapRepoErr(err); {
	case err == nil:
		return nil, fmt.Errorf("%w: environment %q already exists", ErrConflict, name)
	case !errors.Is(err, ErrNotFound):
		return nil, err
	}
	e := &model.Environment{
		Name:        name,
		Description: in.Description,
		Type:        envType,
		ConfigValue: in.ConfigValue,
		Version:     model.InitialVersion,
		Status:      model.EnvStatusDraft,
	}
	a := s.stamper.Created(ctx, e)
	created, err := s.repo.Create(ctx, e)
	if err != nil {
		return nil, mapRepoErr(err)
	}
	s.log.InfoContext(ctx, "environment created", "environment_id", created.ID, "actor", a.UserID)
	return created, nil
}

func (s *environmentService) Get(ctx context.Context, id int64) (*model.Environment, error) {
	e, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, mapRepoErr(err)
	}
	return e, nil
}

func (s *environmentService) List(ctx context.Context, envType string) ([]model.Environment, error) {
	return s.repo.List(ctx, strings.TrimSpace(envType))
}

func (s *environmentService) Update(ctx context.Context, id int64, p EnvironmentPatch) (*model.Environment, error) {
	if p.Status != nil && (*p.Status < model.EnvStatusDraft || *p.Status > model.EnvStatusDeployed) {
		return nil, invalid("status must be between %d and %d", model.EnvStatusDraft, model.EnvStatusDeployed)
	}
	e, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	set(&e.Description, p.Description)
	set(&e.ConfigValue, p.ConfigValue)
	set(&e.Status, p.Status)
	a := s.stamper.Modified(ctx, e)
	updated, err := s.repo.Update(ctx, e)
	if err != nil {
		return nil, mapRepoErr(err)
	}
	s.log.InfoContext(ctx, "environment updated", "environment_id", id, "actor", a.UserID)
	return updated, nil
}

func (s *environmentService) Review(ctx context.Context, id int64, in ReviewInput) (*model.Environment, error) {
	status := strings.TrimSpace(in.Status)
	if status == "" {
		status = DefaultReviewStatus
	}
	if err := checkStatusComment(status, in.Comment); err != nil {
		return nil, err
	}
	e, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	a := s.stamper.Actor(ctx, "reviewed")
	e.MarkReviewed(a, s.stamper.Now(), status, in.Comment)
	updated, err := s.repo.Update(ctx, e)
	if err != nil {
		return nil, mapRepoErr(err)
	}
	s.log.InfoContext(ctx, "environment reviewed", "environment_id", id, "actor", a.UserID, "status", status)
	return updated, nil
}

func (s *environmentService) Deploy(ctx context.Context, id int64, in DeployInput) (*model.Environment, error) {
	status := strings.TrimSpace(in.Status)
	if status == "" {
		status = DefaultDeployStatus
	}
	if err := checkStatusComment(status, in.Comment); err != nil {
		return nil, err
	}
	if utf8.RuneCountInString(strings.TrimSpace(in.Version)) > model.MaxStatusLen {
		return nil, invalid("version must be at most %d characters", model.MaxStatusLen)
	}
	e, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if !e.Reviewed() {
		return nil, ErrNotReviewed
	}
	a := s.stamper.Actor(ctx, "deployed")
	e.MarkDeployed(a, s.stamper.Now(), in.Version, status, in.Comment)

	key, err := s.publish(ctx, e)
	if err != nil {
		return nil, err
	}
	if key != "" {
		e.ArtifactPath = key
	}

	updated, err := s.repo.Update(ctx, e)
	if err != nil {
		if key == "" {
			return nil, mapRepoErr(err)
		}
		// Rollback: delete the published artifact
		if delErr := s.store.Delete(ctx, key); delErr != nil {
			return nil, fmt.Errorf("db save failed: %v; rollback delete failed: %v", err, delErr)
		}
		return nil, fmt.Errorf("db save failed: %w", err)
	}
	s.log.InfoContext(ctx, "environment deployed",
		"environment_id", id, "actor", a.UserID, "version", updated.Version, "artifact", key)
	return updated, nil
}

// publish uploads the deployed configuration and returns its key, or ""
// when no store is configured.
func (s *environmentService) publish(ctx context.Context, e *model.Environment) (string, error) {
	if s.store == nil {
		return "", nil
	}
	body, err := json.Marshal(Artifact{
		Name:         e.Name,
		Type:         e.Type,
		Version:      e.Version,
		ConfigValue:  e.ConfigValue,
		DeployedBy:   e.DeployedBy,
		DeployerName: e.DeployerName,
		DeployedTime: *e.DeployedTime,
	})
	if err != nil {
		return "", fmt.Errorf("encode artifact: %w", err)
	}
	key := storage.ArtifactKey(e.Name, e.Version, s.deployID())
	_, err = s.store.Put(ctx, key, bytes.NewReader(body), storage.PutObjectOptions{
		Size:        int64(len(body)),
		ContentType: storage.ArtifactContentType,
		Metadata: map[string]string{
			"environment": e.Name,
			"deployed-by": e.DeployedBy,
		},
	})
	if err != nil {
		return "", fmt.Errorf("upload to storage: %w", err)
	}
	return key, nil
}

func checkStatusComment(status, comment string) error {
	if utf8.RuneCountInString(status) > model.MaxStatusLen {
		return invalid("status must be at most %d characters", model.MaxStatusLen)
	}
	if utf8.RuneCountInString(comment) > model.MaxCommentLen {
		return invalid("comment must be at most %d characters", model.MaxCommentLen)
	}
	return nil
}

func (s *environmentService) PendingDeploy(ctx context.Context) ([]model.Environment, error) {
	return s.repo.ListPendingDeploy(ctx)
}

func (s *environmentService) artifactKey(ctx context.Context, id int64) (string, error) {
	e, err := s.Get(ctx, id)
	if err != nil {
		return "", err
	}
	if s.store == nil || e.ArtifactPath == "" {
		return "", ErrNoArtifact
	}
	return e.ArtifactPath, nil
}

func (s *environmentService) ArtifactURL(ctx context.Context, id int64) (string, error) {
	key, err := s.artifactKey(ctx, id)
	if err != nil {
		return "", err
	}
	url, err := s.store.PresignGet(ctx, key, artifactURLExpiry)
	if err != nil {
		return "", fmt.Errorf("presign artifact: %w", err)
	}
	return url, nil
}

func (s *environmentService) OpenArtifact(ctx context.Context, id int64) (io.ReadCloser, storage.ObjectInfo, error) {
	key, err := s.artifactKey(ctx, id)
	if err != nil {
		return nil, storage.ObjectInfo{}, err
	}
	rc, info, err := s.store.Get(ctx, key)
	if err != nil {
		return nil, storage.ObjectInfo{}, fmt.Errorf("get artifact: %w", err)
	}
	return rc, info, nil
}
