// Package entitlement talks to the external subscription/entitlement service.
// Kith never stores entitlement state durably: snapshots are fetched live and
// cached briefly, and the deletion flow dissociates the user alias so the
// external mapping goes inert.
package entitlement

import (
	"context"
	"errors"
	"time"
)

// ErrCacheMiss is returned by caches when no snapshot is stored for an alias.
var ErrCacheMiss = errors.New("entitlement snapshot not cached")

// Snapshot is the externally-held entitlement state for one user alias.
// The alias equals the identity's user ID.
type Snapshot struct {
	Alias     string          `json:"alias"`
	Active    map[string]bool `json:"active"`
	FetchedAt time.Time       `json:"fetched_at"`
}

// HasEntitlement reports whether the named entitlement is active.
func (s *Snapshot) HasEntitlement(name string) bool {
	if s == nil {
		return false
	}
	return s.Active[name]
}

// AnyActive reports whether the alias holds any active entitlement.
func (s *Snapshot) AnyActive() bool {
	if s == nil {
		return false
	}
	for _, active := range s.Active {
		if active {
			return true
		}
	}
	return false
}

// Client is the consumed surface of the entitlement collaborator.
type Client interface {
	// Snapshot fetches live entitlement state for the alias.
	Snapshot(ctx context.Context, alias string) (*Snapshot, error)
	// LogOut dissociates the alias from the current session on the
	// entitlement service.
	LogOut(ctx context.Context, alias string) error
}

// Cache stores short-lived snapshots so repeated status checks do not
// hammer the external service.
type Cache interface {
	Get(ctx context.Context, alias string) (*Snapshot, error)
	Set(ctx context.Context, alias string, snap *Snapshot) error
	Invalidate(ctx context.Context, alias string) error
}
