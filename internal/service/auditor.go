package service

import (
	"context"
	"errors"

	"auditapi/internal/audit"
	"auditapi/internal/auth"
	"auditapi/internal/repository"
)

// auditors maps the request actor to a pf_user row for records that
// reference their auditors instead of copying them.
type auditors struct {
	users repository.UserRepository
}

// lookup tries the resolved actor, then the raw token, then the system
// user, and returns the first matching user as a reference.
func (r auditors) lookup(ctx context.Context) (audit.Reference, error) {
	candidates := make([]string, 0, 3)
	if a, ok := audit.ActorFrom(ctx); ok {
		candidates = append(candidates, a.UserID)
	}
	if tok := auth.StripBearer(audit.TokenFrom(ctx)); tok != "" {
		candidates = append(candidates, tok)
	}
	candidates = append(candidates, audit.SystemUserID)

	tried := make(map[string]bool, len(candidates))
	for _, username := range candidates {
		if tried[username] {
			continue
		}
		tried[username] = true
		u, err := r.users.FindByUsername(ctx, username)
		if err == nil {
			return audit.Reference{ID: u.ID, Username: u.Username}, nil
		}
		if !errors.Is(mapRepoErr(err), ErrNotFound) {
			return audit.Reference{}, err
		}
	}
	return audit.Reference{}, ErrNoAuditor
}
