package entitlement

import (
	"context"
	"log/slog"
)

// Reconciler dissociates a user alias from the entitlement service and drops
// any cached snapshot. Every operation is best-effort: the surrounding
// deletion flow must never fail or stall because the entitlement service is
// down, so failures are logged and swallowed.
type Reconciler struct {
	client Client
	cache  Cache
	logger *slog.Logger
}

// NewReconciler builds a reconciler. Both client and cache may be nil when
// the corresponding collaborator is not configured.
func NewReconciler(client Client, cache Cache, logger *slog.Logger) *Reconciler {
	return &Reconciler{client: client, cache: cache, logger: logger}
}

// Reconcile logs the alias out of the entitlement service and invalidates
// the cached snapshot. It never returns an error.
func (r *Reconciler) Reconcile(ctx context.Context, alias string) {
	if r.client != nil {
		if err := r.client.LogOut(ctx, alias); err != nil {
			r.logger.WarnContext(ctx, "entitlement logout failed",
				"alias", alias,
				"error", err,
			)
		}
	}

	if r.cache != nil {
		if err := r.cache.Invalidate(ctx, alias); err != nil {
			r.logger.WarnContext(ctx, "entitlement cache invalidation failed",
				"alias", alias,
				"error", err,
			)
		}
	}
}
