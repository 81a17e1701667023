package service

import (
	"context"
	"errors"
	"log/slog"

	"auditapi/internal/audit"
	"auditapi/internal/auth"
	"auditapi/internal/cache"
	"auditapi/internal/model"
	"auditapi/internal/repository"
)

// UserInfoService reads the user directory. It also resolves request tokens
// that name a directory user, so writes by users unknown to the token
// directory are still stamped with their company and unit.
type UserInfoService interface {
	auth.Resolver
	Get(ctx context.Context, userID string) (*model.UserInfo, error)
	List(ctx context.Context) ([]model.UserInfo, error)
}

type userInfoService struct {
	repo  repository.UserInfoRepository
	cache cache.UserInfoCache
	log   *slog.Logger
}

// NewUserInfoService constructs a UserInfoService. c may be nil.
func NewUserInfoService(repo repository.UserInfoRepository, c cache.UserInfoCache, log *slog.Logger) UserInfoService {
	if log == nil {
		log = slog.Default()
	}
	return &userInfoService{repo: repo, cache: c, log: log.With("component", "user_info")}
}

func (s *userInfoService) Get(ctx context.Context, userID string) (*model.UserInfo, error) {
	if userID == "" {
		return nil, ErrNotFound
	}
	if s.cache != nil {
		if info, ok := s.cache.Get(ctx, userID); ok {
			return info, nil
		}
	}
	info, err := s.repo.FindByID(ctx, userID)
	if err != nil {
		return nil, mapRepoErr(err)
	}
	if s.cache != nil {
		s.cache.Set(ctx, *info)
	}
	return info, nil
}

func (s *userInfoService) List(ctx context.Context) ([]model.UserInfo, error) {
	return s.repo.List(ctx)
}

func (s *userInfoService) Resolve(ctx context.Context, raw string) (audit.Actor, bool) {
	id := auth.StripBearer(raw)
	if id == "" {
		return audit.Actor{}, false
	}
	info, err := s.Get(ctx, id)
	if err != nil {
		if !errors.Is(err, ErrNotFound) {
			s.log.WarnContext(ctx, "user directory lookup failed", "error", err)
		}
		return audit.Actor{}, false
	}
	return info.Actor(), true
}
