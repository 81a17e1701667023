package service

import (
	"context"
	"errors"
	"log/slog"

	"auditapi/internal/audit"
	"auditapi/internal/model"
)

// UserAuditDetails is a user with the directory entries of its creator and
// last modifier. Entries are nil when the directory has no match.
type UserAuditDetails struct {
	User     model.User
	Creator  *model.UserInfo
	Modifier *model.UserInfo
}

// CreateWithAuditResult describes a user created on behalf of an operator.
type CreateWithAuditResult struct {
	User     *model.User
	Operator *model.UserInfo
}

// AuditDemoService joins users with the user directory.
type AuditDemoService interface {
	UsersWithDetails(ctx context.Context) ([]UserAuditDetails, error)
	// CreateWithAudit creates a user stamped by operatorID's directory entry.
	// Unknown operators leave the request actor in place.
	CreateWithAudit(ctx context.Context, operatorID string, in UserInput) (*CreateWithAuditResult, error)
}

type auditDemoService struct {
	users UserService
	info  UserInfoService
	log   *slog.Logger
}

// NewAuditDemoService constructs an AuditDemoService.
func NewAuditDemoService(users UserService, info UserInfoService, log *slog.Logger) AuditDemoService {
	if log == nil {
		log = slog.Default()
	}
	return &auditDemoService{users: users, info: info, log: log.With("component", "audit_demo")}
}

func (s *auditDemoService) UsersWithDetails(ctx context.Context) ([]UserAuditDetails, error) {
	users, err := s.users.List(ctx)
	if err != nil {
		return nil, err
	}
	seen := make(map[string]*model.UserInfo)
	lookup := func(id string) (*model.UserInfo, error) {
		if info, ok := seen[id]; ok {
			return info, nil
		}
		info, err := s.info.Get(ctx, id)
		if errors.Is(err, ErrNotFound) {
			err = nil
		}
		if err != nil {
			return nil, err
		}
		seen[id] = info
		return info, nil
	}

	out := make([]UserAuditDetails, 0, len(users))
	for _, u := range users {
		creator, err := lookup(u.CreatedBy)
		if err != nil {
			return nil, err
		}
		modifier, err := lookup(u.ModifiedBy)
		if err != nil {
			return nil, err
		}
		out = append(out, UserAuditDetails{User: u, Creator: creator, Modifier: modifier})
	}
	return out, nil
}

func (s *auditDemoService) CreateWithAudit(ctx context.Context, operatorID string, in UserInput) (*CreateWithAuditResult, error) {
	if operatorID == "" {
		operatorID = audit.SystemUserID
	}
	op, err := s.info.Get(ctx, operatorID)
	switch {
	case err == nil:
		ctx = audit.WithActor(ctx, op.Actor())
	case errors.Is(err, ErrNotFound):
		s.log.DebugContext(ctx, "operator not in directory", "operator", operatorID)
	default:
		return nil, err
	}
	u, err := s.users.Create(ctx, in)
	if err != nil {
		return nil, err
	}
	return &CreateWithAuditResult{User: u, Operator: op}, nil
}
