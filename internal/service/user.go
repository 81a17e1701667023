package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"auditapi/internal/audit"
	"auditapi/internal/model"
	"auditapi/internal/repository"
)

// DefaultUserStatus is assigned when a new user has no status.
const DefaultUserStatus = "active"

// UserInput is the payload for creating a user.
type UserInput struct {
	Username        string `json:"username"`
	Password        string `json:"password"`
	Description     string `json:"description"`
	Email           string `json:"email"`
	Cellphone       string `json:"cellphone"`
	CompanyID       string `json:"company_id"`
	StatusID        string `json:"status_id"`
	DefaultLanguage string `json:"default_language"`
}

// UserPatch holds the user fields that may be changed. Nil fields are kept.
type UserPatch struct {
	Description     *string `json:"description"`
	Email           *string `json:"email"`
	Cellphone       *string `json:"cellphone"`
	CompanyID       *string `json:"company_id"`
	StatusID        *string `json:"status_id"`
	DefaultLanguage *string `json:"default_language"`
	Password        *string `json:"password"`
}

// UserService manages pf_user accounts.
type UserService interface {
	Create(ctx context.Context, in UserInput) (*model.User, error)
	Get(ctx context.Context, id string) (*model.User, error)
	List(ctx context.Context) ([]model.User, error)
	Update(ctx context.Context, id string, p UserPatch) (*model.User, error)
}

type userService struct {
	repo    repository.UserRepository
	stamper *audit.Stamper
	log     *slog.Logger
}

// NewUserService constructs a UserService.
func NewUserService(repo repository.UserRepository, stamper *audit.Stamper, log *slog.Logger) UserService {
	if log == nil {
		log = slog.Default()
	}
	return &userService{repo: repo, stamper: stamper, log: log.With("component", "user")}
}

func (s *userService) Create(ctx context.Context, in UserInput) (*model.User, error) {
	username := strings.TrimSpace(in.Username)
	if username == "" {
		return nil, invalid("username is required")
	}
	u := &model.User{
		ID:              uuid.NewString(),
		Username:        username,
		Description:     in.Description,
		Email:           in.Email,
		Cellphone:       in.Cellphone,
		CompanyID:       in.CompanyID,
		StatusID:        in.StatusID,
		DefaultLanguage: in.DefaultLanguage,
	}
	if u.StatusID == "" {
		u.StatusID = DefaultUserStatus
	}
	if in.Password != "" {
		hash, err := hashPassword(in.Password)
		if err != nil {
			return nil, err
		}
		u.PasswordHash = hash
	}
	a := s.stamper.Created(ctx, u)
	created, err := s.repo.Create(ctx, u)
	if err != nil {
		return nil, mapRepoErr(err)
	}
	s.log.InfoContext(ctx, "user created", "user_id", created.ID, "actor", a.UserID)
	return created, nil
}

func (s *userService) Get(ctx context.Context, id string) (*model.User, error) {
	if id == "" {
		return nil, ErrNotFound
	}
	u, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, mapRepoErr(err)
	}
	return u, nil
}

func (s *userService) List(ctx context.Context) ([]model.User, error) {
	return s.repo.List(ctx)
}

func (s *userService) Update(ctx context.Context, id string, p UserPatch) (*model.User, error) {
	u, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	set(&u.Description, p.Description)
	set(&u.Email, p.Email)
	set(&u.Cellphone, p.Cellphone)
	set(&u.CompanyID, p.CompanyID)
	set(&u.StatusID, p.StatusID)
	set(&u.DefaultLanguage, p.DefaultLanguage)
	if p.Password != nil && *p.Password != "" {
		hash, err := hashPassword(*p.Password)
		if err != nil {
			return nil, err
		}
		u.PasswordHash = hash
	}
	a := s.stamper.Modified(ctx, u)
	updated, err := s.repo.Update(ctx, u)
	if err != nil {
		return nil, mapRepoErr(err)
	}
	s.log.InfoContext(ctx, "user updated", "user_id", id, "actor", a.UserID)
	return updated, nil
}

func hashPassword(pw string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(pw), bcrypt.DefaultCost)
	if errors.Is(err, bcrypt.ErrPasswordTooLong) {
		return "", invalid("password is longer than 72 bytes")
	}
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(hash), nil
}
