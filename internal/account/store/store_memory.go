package store

import (
	"context"
	"sync"

	"github.com/kith-app/kith/pkg/domain"
)

// MemoryStore mirrors the purge semantics in memory for tests and local
// development. Rows are opaque; only ownership matters here.
type MemoryStore struct {
	mu sync.Mutex
	// rows[table][userID] = number of rows owned by that user
	rows map[string]map[domain.UserID]int64
	// profiles tracks user_profiles rows separately since the table is 1:1
	profiles map[domain.UserID]bool

	// failWith, when set, makes the next purge fail without mutating state.
	// Mirrors a transaction-layer failure for protocol tests.
	failWith error
}

func NewMemoryStore() *MemoryStore {
	m := &MemoryStore{
		rows:     make(map[string]map[domain.UserID]int64),
		profiles: make(map[domain.UserID]bool),
	}
	for _, table := range OwnedTables {
		m.rows[table] = make(map[domain.UserID]int64)
	}
	return m
}

// SeedProfile creates the profile row for a user.
func (m *MemoryStore) SeedProfile(userID domain.UserID) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.profiles[userID] = true
}

// SeedRows records n owned rows for a user in the given table.
func (m *MemoryStore) SeedRows(table string, userID domain.UserID, n int64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.rows[table][userID] += n
}

// FailNextPurge makes the next PurgeUserData call return err, leaving all
// rows untouched. Atomicity means a failed purge mutates nothing.
func (m *MemoryStore) FailNextPurge(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.failWith = err
}

// CountFor reports rows owned by a user across all tables, profile included.
func (m *MemoryStore) CountFor(userID domain.UserID) int64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	var total int64
	for _, byUser := range m.rows {
		total += byUser[userID]
	}
	if m.profiles[userID] {
		total++
	}
	return total
}

func (m *MemoryStore) PurgeUserData(_ context.Context, userID domain.UserID) (PurgeResult, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.failWith != nil {
		err := m.failWith
		m.failWith = nil
		return PurgeResult{}, err
	}

	result := PurgeResult{RowsDeleted: make(map[string]int64, len(OwnedTables)+1)}
	for _, table := range OwnedTables {
		result.RowsDeleted[table] = m.rows[table][userID]
		delete(m.rows[table], userID)
	}
	if m.profiles[userID] {
		result.RowsDeleted[ProfileTable] = 1
		delete(m.profiles, userID)
	} else {
		result.RowsDeleted[ProfileTable] = 0
	}
	return result, nil
}
