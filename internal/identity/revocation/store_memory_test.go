package revocation

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryTRL_RevokeAndCheck(t *testing.T) {
	ctx := context.Background()
	trl := NewMemoryTRL()

	revoked, err := trl.IsRevoked(ctx, "jti-1")
	require.NoError(t, err)
	assert.False(t, revoked)

	require.NoError(t, trl.Revoke(ctx, "jti-1", time.Hour))

	revoked, err = trl.IsRevoked(ctx, "jti-1")
	require.NoError(t, err)
	assert.True(t, revoked)
}

func TestMemoryTRL_ExpiredEntryNotRevoked(t *testing.T) {
	ctx := context.Background()
	trl := NewMemoryTRL()

	require.NoError(t, trl.Revoke(ctx, "jti-1", time.Nanosecond))
	time.Sleep(5 * time.Millisecond)

	revoked, err := trl.IsRevoked(ctx, "jti-1")
	require.NoError(t, err)
	assert.False(t, revoked, "an entry past the token lifetime no longer matters")
}

func TestMemoryTRL_EmptyOrNonPositiveInputs(t *testing.T) {
	ctx := context.Background()
	trl := NewMemoryTRL()

	require.NoError(t, trl.Revoke(ctx, "", time.Hour))
	require.NoError(t, trl.Revoke(ctx, "jti-1", 0))

	revoked, err := trl.IsRevoked(ctx, "jti-1")
	require.NoError(t, err)
	assert.False(t, revoked)

	revoked, err = trl.IsRevoked(ctx, "")
	require.NoError(t, err)
	assert.False(t, revoked)
}
