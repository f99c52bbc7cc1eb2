package entitlement

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// scriptedClient records calls and returns configured errors.
type scriptedClient struct {
	mu          sync.Mutex
	snapErr     error
	logoutErr   error
	snap        *Snapshot
	loggedOut   []string
	snapshotted []string
}

func (c *scriptedClient) Snapshot(_ context.Context, alias string) (*Snapshot, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.snapshotted = append(c.snapshotted, alias)
	if c.snapErr != nil {
		return nil, c.snapErr
	}
	return c.snap, nil
}

func (c *scriptedClient) LogOut(_ context.Context, alias string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.loggedOut = append(c.loggedOut, alias)
	return c.logoutErr
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil))
}

func TestReconcile_LogsOutAndInvalidates(t *testing.T) {
	ctx := context.Background()
	client := &scriptedClient{}
	cache := NewMemoryCache()
	require.NoError(t, cache.Set(ctx, "user-1", &Snapshot{Alias: "user-1", Active: map[string]bool{"pro": true}}))

	NewReconciler(client, cache, testLogger()).Reconcile(ctx, "user-1")

	assert.Equal(t, []string{"user-1"}, client.loggedOut)
	_, err := cache.Get(ctx, "user-1")
	assert.ErrorIs(t, err, ErrCacheMiss)
}

func TestReconcile_SwallowsClientFailure(t *testing.T) {
	ctx := context.Background()
	client := &scriptedClient{logoutErr: errors.New("service unavailable")}
	cache := NewMemoryCache()
	require.NoError(t, cache.Set(ctx, "user-1", &Snapshot{Alias: "user-1"}))

	// Must not panic or surface the failure; the cache is still cleared.
	NewReconciler(client, cache, testLogger()).Reconcile(ctx, "user-1")

	_, err := cache.Get(ctx, "user-1")
	assert.ErrorIs(t, err, ErrCacheMiss)
}

// failingCache errors on every operation.
type failingCache struct{ err error }

func (c failingCache) Get(context.Context, string) (*Snapshot, error) { return nil, c.err }
func (c failingCache) Set(context.Context, string, *Snapshot) error   { return c.err }
func (c failingCache) Invalidate(context.Context, string) error       { return c.err }

func TestReconcile_SwallowsCacheFailure(t *testing.T) {
	client := &scriptedClient{}
	r := NewReconciler(client, failingCache{err: errors.New("redis down")}, testLogger())

	r.Reconcile(context.Background(), "user-1")

	assert.Equal(t, []string{"user-1"}, client.loggedOut)
}

func TestReconcile_NilCollaborators(t *testing.T) {
	r := NewReconciler(nil, nil, testLogger())
	r.Reconcile(context.Background(), "user-1")
}

func TestCachedClient_MissFetchesAndBackfills(t *testing.T) {
	ctx := context.Background()
	client := &scriptedClient{snap: &Snapshot{Alias: "user-1", Active: map[string]bool{"pro": true}}}
	cache := NewMemoryCache()
	cc := NewCachedClient(client, cache)

	snap, err := cc.Snapshot(ctx, "user-1")
	require.NoError(t, err)
	assert.True(t, snap.HasEntitlement("pro"))
	assert.Len(t, client.snapshotted, 1)

	// Second read is served from the cache.
	snap, err = cc.Snapshot(ctx, "user-1")
	require.NoError(t, err)
	assert.True(t, snap.HasEntitlement("pro"))
	assert.Len(t, client.snapshotted, 1)
}

func TestSnapshot_AnyActive(t *testing.T) {
	assert.False(t, (*Snapshot)(nil).AnyActive())
	assert.False(t, (&Snapshot{}).AnyActive())
	assert.False(t, (&Snapshot{Active: map[string]bool{"pro": false}}).AnyActive())
	assert.True(t, (&Snapshot{Active: map[string]bool{"pro": false, "legacy": true}}).AnyActive())
}

func TestCachedClient_CacheWriteFailureDegradesToLive(t *testing.T) {
	ctx := context.Background()
	client := &scriptedClient{snap: &Snapshot{Alias: "user-1"}}
	cc := NewCachedClient(client, failingCache{err: errors.New("redis down")})

	_, err := cc.Snapshot(ctx, "user-1")
	require.NoError(t, err)

	_, err = cc.Snapshot(ctx, "user-1")
	require.NoError(t, err)
	assert.Len(t, client.snapshotted, 2, "every read goes live when the cache is down")
}
