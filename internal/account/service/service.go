// Package service implements the deletion request authority: the privileged
// orchestration that verifies the caller, destroys owned data, removes the
// identity record, and reconciles external state.
package service

import (
	"context"
	"log/slog"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/sync/singleflight"

	"github.com/kith-app/kith/internal/account/store"
	"github.com/kith-app/kith/internal/identity"
	"github.com/kith-app/kith/internal/platform/metrics"
	"github.com/kith-app/kith/pkg/domain"
	"github.com/kith-app/kith/pkg/platform/audit"
)

// IdentityDirectory is the user-level surface of the identity collaborator.
type IdentityDirectory interface {
	VerifyBearer(ctx context.Context, token string) (*identity.Identity, error)
	CredentialInfo(token string) (jti string, expiresAt time.Time, err error)
}

// IdentityAdmin is the privileged capability for destroying identity
// records. Kept as a separate dependency so nothing on the user-level path
// can reach it.
type IdentityAdmin interface {
	DeleteIdentity(ctx context.Context, id domain.UserID) error
}

// TokenRevoker invalidates session credentials by token ID.
type TokenRevoker interface {
	Revoke(ctx context.Context, jti string, ttl time.Duration) error
}

// EntitlementReconciler dissociates the external entitlement alias.
// Implementations never return errors; reconciliation is best-effort.
type EntitlementReconciler interface {
	Reconcile(ctx context.Context, alias string)
}

// Service orchestrates account deletion.
type Service struct {
	directory   IdentityDirectory
	purge       store.PurgeStore
	admin       IdentityAdmin
	revocations TokenRevoker
	reconciler  EntitlementReconciler
	auditor     audit.Publisher
	metrics     *metrics.Metrics
	logger      *slog.Logger
	tracer      trace.Tracer

	// inflight collapses concurrent deletion requests for the same
	// identity into one protocol run; late arrivals share its outcome.
	inflight singleflight.Group
}

// Option configures the Service.
type Option func(*Service)

// WithTokenRevoker enables credential revocation after identity removal.
func WithTokenRevoker(r TokenRevoker) Option {
	return func(s *Service) { s.revocations = r }
}

// WithReconciler enables server-side entitlement reconciliation.
func WithReconciler(r EntitlementReconciler) Option {
	return func(s *Service) { s.reconciler = r }
}

// WithMetrics sets the metrics collector.
func WithMetrics(m *metrics.Metrics) Option {
	return func(s *Service) { s.metrics = m }
}

// New creates the deletion authority. The admin capability is a required
// constructor argument: holding it is what makes this service privileged.
func New(directory IdentityDirectory, purge store.PurgeStore, admin IdentityAdmin, auditor audit.Publisher, logger *slog.Logger, opts ...Option) *Service {
	s := &Service{
		directory: directory,
		purge:     purge,
		admin:     admin,
		auditor:   auditor,
		logger:    logger,
		tracer:    otel.Tracer("kith/account"),
	}
	if s.auditor == nil {
		s.auditor = audit.NopPublisher{}
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}
