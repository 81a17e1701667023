package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"auditapi/internal/audit"
)

const bearerPrefix = "Bearer "

var (
	ErrUnknownUser  = errors.New("unknown user")
	ErrInvalidToken = errors.New("invalid token")
)

// Claims is the JWT payload carrying the actor attributes.
type Claims struct {
	Name    string `json:"name"`
	Company string `json:"company"`
	Unit    string `json:"unit"`
	jwt.RegisteredClaims
}

// Resolver turns a raw request token into an actor.
type Resolver interface {
	Resolve(ctx context.Context, raw string) (audit.Actor, bool)
}

// Chain tries each resolver in order and returns the first match.
type Chain []Resolver

// Resolve implements Resolver.
func (c Chain) Resolve(ctx context.Context, raw string) (audit.Actor, bool) {
	for _, r := range c {
		if r == nil {
			continue
		}
		if a, ok := r.Resolve(ctx, raw); ok {
			return a, true
		}
	}
	return audit.Actor{}, false
}

// TokenService issues demo JWTs and resolves incoming tokens.
type TokenService struct {
	dir    *Directory
	secret []byte
	ttl    time.Duration
	issuer string
	log    *slog.Logger
	now    func() time.Time
}

var _ Resolver = (*TokenService)(nil)

// NewTokenService creates a TokenService signing with secret (HS256).
func NewTokenService(dir *Directory, secret string, ttl time.Duration, log *slog.Logger) *TokenService {
	if log == nil {
		log = slog.Default()
	}
	if ttl <= 0 {
		ttl = time.Hour
	}
	return &TokenService{
		dir:    dir,
		secret: []byte(secret),
		ttl:    ttl,
		issuer: "auditapi",
		log:    log.With("component", "auth"),
		now:    time.Now,
	}
}

// Directory returns the user directory backing the service.
func (s *TokenService) Directory() *Directory { return s.dir }

// Issue signs a token for a directory user.
func (s *TokenService) Issue(userID string) (string, time.Time, error) {
	a, ok := s.dir.Lookup(userID)
	if !ok {
		return "", time.Time{}, fmt.Errorf("%w: %s", ErrUnknownUser, userID)
	}
	now := s.now()
	expiresAt := now.Add(s.ttl)
	claims := &Claims{
		Name:    a.Name,
		Company: a.Company,
		Unit:    a.Unit,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   a.UserID,
			Issuer:    s.issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("sign token: %w", err)
	}
	return signed, expiresAt, nil
}

// Parse verifies a signed token and returns its actor.
func (s *TokenService) Parse(token string) (audit.Actor, error) {
	parsed, err := jwt.ParseWithClaims(token, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return s.secret, nil
	}, jwt.WithTimeFunc(s.now))
	if err != nil {
		return audit.Actor{}, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
	claims, ok := parsed.Claims.(*Claims)
	if !ok || !parsed.Valid || claims.Subject == "" {
		return audit.Actor{}, ErrInvalidToken
	}
	return audit.Actor{
		UserID:  claims.Subject,
		Name:    claims.Name,
		Company: claims.Company,
		Unit:    claims.Unit,
	}, nil
}

// Resolve maps a raw Authorization value to an actor. JWTs are verified
// first; anything else is treated as a directory user id.
func (s *TokenService) Resolve(ctx context.Context, raw string) (audit.Actor, bool) {
	token := StripBearer(raw)
	if token == "" {
		return audit.Actor{}, false
	}
	if strings.Count(token, ".") == 2 {
		a, err := s.Parse(token)
		if err == nil {
			return a, true
		}
		s.log.DebugContext(ctx, "jwt rejected, trying directory", "error", err)
	}
	a, ok := s.dir.Lookup(token)
	if !ok {
		s.log.DebugContext(ctx, "no directory user for token")
		return audit.Actor{}, false
	}
	return a, true
}

// StripBearer removes a leading "Bearer " and surrounding whitespace.
func StripBearer(raw string) string {
	raw = strings.TrimSpace(raw)
	if strings.EqualFold(raw, strings.TrimSpace(bearerPrefix)) {
		return ""
	}
	if len(raw) >= len(bearerPrefix) && strings.EqualFold(raw[:len(bearerPrefix)], bearerPrefix) {
		raw = raw[len(bearerPrefix):]
	}
	return strings.TrimSpace(raw)
}
