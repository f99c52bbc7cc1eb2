package store

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kith-app/kith/pkg/domain"
)

func TestPurgeUserData_NoOwnedRows(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()
	userID := domain.NewUserID()
	s.SeedProfile(userID)

	result, err := s.PurgeUserData(ctx, userID)
	require.NoError(t, err)

	for _, table := range OwnedTables {
		assert.Zero(t, result.RowsDeleted[table], table)
	}
	assert.EqualValues(t, 1, result.RowsDeleted[ProfileTable])
	assert.Zero(t, s.CountFor(userID))
}

func TestPurgeUserData_RemovesEveryOwnedRow(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()
	userID := domain.NewUserID()
	other := domain.NewUserID()

	s.SeedProfile(userID)
	s.SeedProfile(other)
	for i, table := range OwnedTables {
		s.SeedRows(table, userID, int64(i+1))
		s.SeedRows(table, other, 2)
	}

	result, err := s.PurgeUserData(ctx, userID)
	require.NoError(t, err)

	for i, table := range OwnedTables {
		assert.EqualValues(t, i+1, result.RowsDeleted[table], table)
	}
	assert.Zero(t, s.CountFor(userID))

	// Other users' rows are untouched.
	assert.EqualValues(t, int64(2*len(OwnedTables))+1, s.CountFor(other))
}

func TestPurgeUserData_UnknownUserIsSuccess(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()

	result, err := s.PurgeUserData(ctx, domain.NewUserID())
	require.NoError(t, err)
	assert.Zero(t, result.Total())
}

func TestPurgeUserData_Idempotent(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()
	userID := domain.NewUserID()
	s.SeedProfile(userID)
	s.SeedRows("contacts", userID, 4)

	first, err := s.PurgeUserData(ctx, userID)
	require.NoError(t, err)
	assert.EqualValues(t, 5, first.Total())

	second, err := s.PurgeUserData(ctx, userID)
	require.NoError(t, err)
	assert.Zero(t, second.Total(), "a second purge deletes nothing and still succeeds")
}

func TestPurgeUserData_FailureLeavesRowsIntact(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()
	userID := domain.NewUserID()
	s.SeedProfile(userID)
	s.SeedRows("reminders", userID, 3)
	before := s.CountFor(userID)

	s.FailNextPurge(errors.New("connection reset"))

	_, err := s.PurgeUserData(ctx, userID)
	require.Error(t, err)
	assert.Equal(t, before, s.CountFor(userID), "a failed purge is atomic")

	// The failure is one-shot; the retry completes.
	result, err := s.PurgeUserData(ctx, userID)
	require.NoError(t, err)
	assert.EqualValues(t, before, result.Total())
}
