//go:build integration

package identity_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kith-app/kith/internal/identity"
	"github.com/kith-app/kith/pkg/domain"
	"github.com/kith-app/kith/pkg/testutil/containers"
)

func TestPostgresStore_Lifecycle(t *testing.T) {
	pg := containers.NewPostgresContainer(t)
	ctx := context.Background()
	store := identity.NewPostgres(pg.DB)

	userID := domain.NewUserID()
	now := time.Now().UTC().Truncate(time.Millisecond)
	ident := &identity.Identity{
		ID:           userID,
		Email:        "user@example.com",
		PasswordHash: "hash",
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	require.NoError(t, store.Save(ctx, ident))

	found, err := store.FindByID(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, userID, found.ID)
	assert.Equal(t, "user@example.com", found.Email)

	// Save is an upsert.
	ident.Email = "renamed@example.com"
	ident.UpdatedAt = now.Add(time.Minute)
	require.NoError(t, store.Save(ctx, ident))
	found, err = store.FindByID(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, "renamed@example.com", found.Email)

	require.NoError(t, store.Delete(ctx, userID))

	_, err = store.FindByID(ctx, userID)
	assert.ErrorIs(t, err, identity.ErrNotFound)

	assert.ErrorIs(t, store.Delete(ctx, userID), identity.ErrNotFound)
}

func TestPostgresStore_FindUnknown(t *testing.T) {
	pg := containers.NewPostgresContainer(t)
	store := identity.NewPostgres(pg.DB)

	_, err := store.FindByID(context.Background(), domain.NewUserID())
	assert.ErrorIs(t, err, identity.ErrNotFound)
}
