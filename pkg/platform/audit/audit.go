// Package audit captures compliance-relevant actions. Account deletion is a
// data-subject-rights operation, so each outcome is emitted as an event that
// downstream pipelines can retain independently of request logs.
package audit

import (
	"context"
	"sync"
	"time"

	"github.com/kith-app/kith/pkg/domain"
)

// Action names a compliance event.
type Action string

const (
	ActionAccountDeleted         Action = "account_deleted"
	ActionAccountDeletionFailed  Action = "account_deletion_failed"
	ActionIdentityOrphanResolved Action = "identity_orphan_resolved"
)

// Event is emitted from domain logic to capture key actions. Keep it
// transport-agnostic so publishers can fan out.
type Event struct {
	Timestamp time.Time     `json:"timestamp"`
	UserID    domain.UserID `json:"user_id"`
	Action    Action        `json:"action"`
	Reason    string        `json:"reason,omitempty"`
	Email     string        `json:"email,omitempty"`
	RequestID string        `json:"request_id,omitempty"`
	// RowsDeleted reports the cascade's per-table row counts on success.
	RowsDeleted map[string]int64 `json:"rows_deleted,omitempty"`
}

// Publisher emits audit events. Implementations decide their own delivery
// guarantees; callers treat emission as best-effort and log failures.
type Publisher interface {
	Emit(ctx context.Context, event Event) error
}

// NopPublisher discards events. Used when no audit sink is configured.
type NopPublisher struct{}

func (NopPublisher) Emit(context.Context, Event) error { return nil }

// MemoryPublisher records events in memory for tests.
type MemoryPublisher struct {
	mu     sync.Mutex
	events []Event
}

func NewMemoryPublisher() *MemoryPublisher {
	return &MemoryPublisher{}
}

func (p *MemoryPublisher) Emit(_ context.Context, event Event) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, event)
	return nil
}

// Events returns a copy of everything emitted so far.
func (p *MemoryPublisher) Events() []Event {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]Event, len(p.events))
	copy(out, p.events)
	return out
}
