//go:build integration

package entitlement_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kith-app/kith/internal/entitlement"
	"github.com/kith-app/kith/pkg/testutil/containers"
)

func TestRedisCache_RoundTrip(t *testing.T) {
	rc := containers.NewRedisContainer(t)
	ctx := context.Background()
	cache := entitlement.NewRedisCache(rc.Client)

	_, err := cache.Get(ctx, "user-1")
	assert.ErrorIs(t, err, entitlement.ErrCacheMiss)

	snap := &entitlement.Snapshot{
		Alias:  "user-1",
		Active: map[string]bool{"pro": true},
	}
	require.NoError(t, cache.Set(ctx, "user-1", snap))

	got, err := cache.Get(ctx, "user-1")
	require.NoError(t, err)
	assert.Equal(t, "user-1", got.Alias)
	assert.True(t, got.HasEntitlement("pro"))

	require.NoError(t, cache.Invalidate(ctx, "user-1"))

	_, err = cache.Get(ctx, "user-1")
	assert.ErrorIs(t, err, entitlement.ErrCacheMiss)
}

func TestRedisCache_InvalidateUnknownAlias(t *testing.T) {
	rc := containers.NewRedisContainer(t)
	cache := entitlement.NewRedisCache(rc.Client)

	require.NoError(t, cache.Invalidate(context.Background(), "never-cached"))
}
