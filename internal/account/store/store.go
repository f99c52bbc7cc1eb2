// Package store implements the cascading delete procedure: atomic removal of
// every record a user owns, child tables first, profile row last.
package store

import (
	"context"

	"github.com/kith-app/kith/pkg/domain"
)

// OwnedTables lists every table holding owned child records, in deletion
// order. Children go before the profile row so the procedure never depends
// on a storage engine's cascade configuration.
var OwnedTables = []string{
	"analytics_events",
	"stored_files",
	"scheduled_messages",
	"reminders",
	"contacts",
}

// ProfileTable holds the 1:1 profile row deleted last.
const ProfileTable = "user_profiles"

// PurgeResult reports rows removed per table for auditability.
type PurgeResult struct {
	RowsDeleted map[string]int64
}

// Total sums deleted rows across all tables.
func (r PurgeResult) Total() int64 {
	var total int64
	for _, n := range r.RowsDeleted {
		total += n
	}
	return total
}

// PurgeStore runs the cascading delete procedure.
//
// Contract: all targeted rows across all tables are removed in one atomic
// transaction, or none are. Unknown user IDs succeed with zero rows
// affected, which makes the procedure idempotent: re-running it after a
// partial protocol failure is a no-op.
type PurgeStore interface {
	PurgeUserData(ctx context.Context, userID domain.UserID) (PurgeResult, error)
}
