// Package cache provides a read-through cache for the user directory.
package cache

import (
	"context"

	"auditapi/internal/model"
)

// UserInfoCache stores directory entries by user id. Implementations treat
// backend failures as misses so callers can fall through to the database.
type UserInfoCache interface {
	Get(ctx context.Context, userID string) (*model.UserInfo, bool)
	Set(ctx context.Context, info model.UserInfo)
	Close() error
}
