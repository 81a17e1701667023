package audit

import (
	"context"
	"log/slog"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// Operation labels of the stamps counter for plain creates and updates.
const (
	OpCreated  = "created"
	OpModified = "modified"
)

// Stamper fills audit metadata from the actor on the request context.
// A Stamper is safe for concurrent use.
type Stamper struct {
	log    *slog.Logger
	now    func() time.Time
	stamps *prometheus.CounterVec
}

// StamperOption configures a Stamper.
type StamperOption func(*Stamper)

// WithClock overrides the time source. Used by tests.
func WithClock(now func() time.Time) StamperOption {
	return func(s *Stamper) { s.now = now }
}

// NewStamper creates a Stamper and registers its counter with reg.
// A nil reg skips registration.
func NewStamper(log *slog.Logger, reg prometheus.Registerer, opts ...StamperOption) (*Stamper, error) {
	if log == nil {
		log = slog.Default()
	}
	s := &Stamper{
		log: log.With("component", "audit"),
		now: func() time.Time { return time.Now().UTC() },
		stamps: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "audit_stamps_total",
				Help: "Total number of audit stamps applied, by operation and actor source.",
			},
			[]string{"operation", "actor"},
		),
	}
	for _, o := range opts {
		o(s)
	}
	if reg != nil {
		if err := reg.Register(s.stamps); err != nil {
			return nil, err
		}
	}
	return s, nil
}

// Now returns the stamper's current time.
func (s *Stamper) Now() time.Time { return s.now() }

// Created stamps created* and modified* on e and returns the actor used.
func (s *Stamper) Created(ctx context.Context, e Auditable) Actor {
	a := s.resolve(ctx, OpCreated)
	e.AuditMetadata().MarkCreated(a, s.now())
	return a
}

// Modified stamps modified* on e and returns the actor used.
func (s *Stamper) Modified(ctx context.Context, e Auditable) Actor {
	a := s.resolve(ctx, OpModified)
	e.AuditMetadata().MarkModified(a, s.now())
	return a
}

// Actor resolves the actor for an operation that stamps custom columns
// (review, deploy) and records it like Created and Modified do.
func (s *Stamper) Actor(ctx context.Context, operation string) Actor {
	return s.resolve(ctx, operation)
}

func (s *Stamper) resolve(ctx context.Context, operation string) Actor {
	source := "resolved"
	a, ok := ActorFrom(ctx)
	if !ok {
		source = "fallback"
		a = System()
		if tok := TokenFrom(ctx); tok != "" {
			s.log.DebugContext(ctx, "unknown token, using system actor", "operation", operation)
		}
	}
	s.stamps.WithLabelValues(operation, source).Inc()
	trace.SpanFromContext(ctx).AddEvent("audit.stamp", trace.WithAttributes(
		attribute.String("audit.operation", operation),
		attribute.String("audit.actor", a.UserID),
		attribute.String("audit.actor_source", source),
	))
	return a
}
