package client

import (
	"context"
	"log/slog"
	"sync"

	"github.com/kith-app/kith/internal/entitlement"
	derrors "github.com/kith-app/kith/pkg/domain-errors"
)

// State is the deletion controller's position in the confirmation flow.
// The machine only moves forward through the confirmations; InFlight can
// never return to a confirming state, and nothing short of ConfirmingFinal
// can start a request.
type State int

const (
	StateIdle State = iota
	StateConfirmingFirst
	StateConfirmingFinal
	StateInFlight
	StateResolved
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateConfirmingFirst:
		return "confirming_first"
	case StateConfirmingFinal:
		return "confirming_final"
	case StateInFlight:
		return "in_flight"
	case StateResolved:
		return "resolved"
	default:
		return "unknown"
	}
}

// Outcome is the result surfaced to the presentation layer.
type Outcome struct {
	Success bool
	Message string
}

// FirstWarning names the categories of data the deletion destroys.
const FirstWarning = "This permanently deletes your account: contacts, reminders, " +
	"scheduled messages, stored files, and usage history. This cannot be undone."

// FinalWarning is the second, distinct confirmation.
const FinalWarning = "Last chance: your account and all data will be gone forever. " +
	"Confirm again to delete."

// SubscriptionNotice is appended to the first warning when the account holds
// an active paid entitlement. Deletion removes the account, not the store
// subscription.
const SubscriptionNotice = "Note: deleting your account does not cancel an active " +
	"subscription. Manage it in your device's store settings."

// Deleter calls the deletion request authority.
type Deleter interface {
	DeleteAccount(ctx context.Context, bearer string) error
}

// Reconciler dissociates the entitlement alias after deletion, best-effort.
type Reconciler interface {
	Reconcile(ctx context.Context, alias string)
}

// Snapshotter reports externally held entitlement state for an alias.
type Snapshotter interface {
	Snapshot(ctx context.Context, alias string) (*entitlement.Snapshot, error)
}

// Controller gates the destructive action behind two confirmations and an
// in-flight guard, then orchestrates the client side of the protocol.
type Controller struct {
	api        Deleter
	session    Session
	reconciler Reconciler
	snapshots  Snapshotter
	logger     *slog.Logger

	mu    sync.Mutex
	state State
	last  Outcome
}

// Option configures the Controller.
type Option func(*Controller)

// WithEntitlementStatus enables the entitlement check behind the first
// warning so an active subscription is called out before the user confirms.
func WithEntitlementStatus(s Snapshotter) Option {
	return func(c *Controller) { c.snapshots = s }
}

// NewController builds a controller in StateIdle. reconciler may be nil.
func NewController(api Deleter, session Session, reconciler Reconciler, logger *slog.Logger, opts ...Option) *Controller {
	c := &Controller{
		api:        api,
		session:    session,
		reconciler: reconciler,
		logger:     logger,
		state:      StateIdle,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// State reports the current machine state.
func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Begin presents the first warning. Only valid from StateIdle. When an
// entitlement snapshotter is configured and reports an active subscription,
// the warning carries the subscription notice; an unreachable entitlement
// service just drops the notice, it never blocks the flow.
func (c *Controller) Begin(ctx context.Context) (string, error) {
	// The fetch happens before the state transition so the lock is never
	// held across a network call.
	warning := FirstWarning
	if c.snapshots != nil {
		snap, err := c.snapshots.Snapshot(ctx, c.session.UserID())
		switch {
		case err != nil:
			c.logger.WarnContext(ctx, "entitlement status check failed", "error", err)
		case snap.AnyActive():
			warning += "\n" + SubscriptionNotice
		}
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if c.state != StateIdle {
		return "", derrors.New(derrors.CodeConflict, "deletion already in progress")
	}
	c.state = StateConfirmingFirst
	return warning, nil
}

// AcceptFirst records the first affirmative and presents the final warning.
func (c *Controller) AcceptFirst() (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.state != StateConfirmingFirst {
		return "", derrors.New(derrors.CodeConflict, "first confirmation not pending")
	}
	c.state = StateConfirmingFinal
	return FinalWarning, nil
}

// Cancel abandons the flow from either confirming state. An in-flight
// request cannot be cancelled: a partially applied deletion is the one
// state this design exists to avoid.
func (c *Controller) Cancel() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	switch c.state {
	case StateConfirmingFirst, StateConfirmingFinal:
		c.state = StateIdle
		return nil
	default:
		return derrors.New(derrors.CodeConflict, "nothing to cancel")
	}
}

// RequestDeletion is the deliberate second affirmative. It requires both
// prior confirmations, rejects re-entrant calls while a request is
// outstanding, and runs the deletion synchronously.
//
// On success: best-effort entitlement reconciliation, then local session
// teardown, then StateResolved. On failure: the session credential is left
// untouched and the machine returns to StateConfirmingFinal so the user
// can retry.
func (c *Controller) RequestDeletion(ctx context.Context) Outcome {
	c.mu.Lock()
	if c.state == StateInFlight {
		c.mu.Unlock()
		return Outcome{Success: false, Message: "a deletion request is already in flight"}
	}
	if c.state != StateConfirmingFinal {
		c.mu.Unlock()
		return Outcome{Success: false, Message: "deletion requires both confirmations"}
	}

	token, ok := c.session.Token()
	if !ok {
		c.state = StateIdle
		c.mu.Unlock()
		return Outcome{Success: false, Message: "no active session"}
	}

	c.state = StateInFlight
	c.mu.Unlock()

	// The blocking remote call happens outside the lock so state queries
	// (and rejected duplicate taps) stay responsive.
	err := c.api.DeleteAccount(ctx, token)

	c.mu.Lock()
	defer c.mu.Unlock()

	if err != nil {
		c.logger.WarnContext(ctx, "account deletion failed", "error", err)
		c.state = StateConfirmingFinal
		c.last = Outcome{Success: false, Message: derrors.MessageOf(err)}
		return c.last
	}

	// Server-side deletion is committed. Everything after this point is
	// local cleanup and must not turn the outcome into a failure.
	if c.reconciler != nil {
		c.reconciler.Reconcile(ctx, c.session.UserID())
	}

	if err := c.session.Teardown(ctx); err != nil {
		c.logger.WarnContext(ctx, "local sign-out failed after deletion", "error", err)
	}

	c.state = StateResolved
	c.last = Outcome{Success: true, Message: "account deleted"}
	return c.last
}

// LastOutcome returns the most recent resolution.
func (c *Controller) LastOutcome() Outcome {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.last
}
