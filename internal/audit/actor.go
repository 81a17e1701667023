// Package audit carries the current actor through a request and stamps
// who/when metadata onto records before they are persisted.
package audit

import "context"

// SystemUserID identifies the default actor used when a request carries no
// resolvable identity.
const SystemUserID = "system"

// Actor is the identity performing a write, together with the
// organizational attributes copied onto audited records.
type Actor struct {
	UserID  string `json:"user_id"`
	Name    string `json:"name"`
	Company string `json:"company"`
	Unit    string `json:"unit"`
}

// System returns the fallback actor.
func System() Actor {
	return Actor{
		UserID:  SystemUserID,
		Name:    "System",
		Company: "System",
		Unit:    "System",
	}
}

// IsZero reports whether the actor carries no user id.
func (a Actor) IsZero() bool { return a.UserID == "" }

// Reference points at a persisted user row acting as auditor.
type Reference struct {
	ID       string `json:"id"`
	Username string `json:"username"`
}

type actorKey struct{}

type tokenKey struct{}

// WithActor returns a copy of ctx carrying a.
func WithActor(ctx context.Context, a Actor) context.Context {
	return context.WithValue(ctx, actorKey{}, a)
}

// ActorFrom returns the actor stored on ctx, if any.
func ActorFrom(ctx context.Context) (Actor, bool) {
	a, ok := ctx.Value(actorKey{}).(Actor)
	if !ok || a.IsZero() {
		return Actor{}, false
	}
	return a, true
}

// CurrentActor returns the actor stored on ctx or System when none is set.
func CurrentActor(ctx context.Context) Actor {
	if a, ok := ActorFrom(ctx); ok {
		return a
	}
	return System()
}

// WithToken returns a copy of ctx carrying the raw bearer token of the request.
func WithToken(ctx context.Context, token string) context.Context {
	return context.WithValue(ctx, tokenKey{}, token)
}

// TokenFrom returns the raw token stored on ctx, or "".
func TokenFrom(ctx context.Context) string {
	t, _ := ctx.Value(tokenKey{}).(string)
	return t
}
