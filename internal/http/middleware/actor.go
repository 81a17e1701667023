package middleware

import (
	"github.com/gofiber/fiber/v2"

	"auditapi/internal/audit"
	"auditapi/internal/auth"
)

const (
	// UserIDHeader names the caller when no Authorization header is sent.
	UserIDHeader = "X-User-Id"
	// ActorLocalKey holds the resolved actor's user id in fiber locals.
	ActorLocalKey = "actor"
)

// Actor reads the Authorization header, or X-User-Id when it is absent,
// and stores the raw token on the request context. When r resolves the
// token the actor is stored too; otherwise stamping falls back to system.
func Actor(r auth.Resolver) fiber.Handler {
	return func(c *fiber.Ctx) error {
		raw := c.Get(fiber.HeaderAuthorization)
		if raw == "" {
			raw = c.Get(UserIDHeader)
		}
		if raw == "" {
			return c.Next()
		}

		ctx := audit.WithToken(c.UserContext(), raw)
		if r != nil {
			if a, ok := r.Resolve(ctx, raw); ok {
				ctx = audit.WithActor(ctx, a)
				c.Locals(ActorLocalKey, a.UserID)
			}
		}
		c.SetUserContext(ctx)
		return c.Next()
	}
}

// RequireToken rejects requests without a non-empty Authorization header
// with 401. X-User-Id alone does not satisfy it.
func RequireToken() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if auth.StripBearer(c.Get(fiber.HeaderAuthorization)) == "" {
			return fiber.NewError(fiber.StatusUnauthorized, "authentication required")
		}
		return c.Next()
	}
}
