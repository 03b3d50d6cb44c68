package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cheaguirre/nexuscards/internal/common"
)

func TestWipeAll_RequiresAdministrator(t *testing.T) {
	db := setupDB(t)
	sessions := setupSessions(t, db)
	svc := NewAdminService(db, sessions)

	err := svc.WipeAll(context.Background())
	assert.True(t, errors.Is(err, common.ErrNotAuthenticated))

	asCollector(t, sessions, "ash")
	err = svc.WipeAll(context.Background())
	assert.True(t, errors.Is(err, common.ErrNotAuthenticated), "collectors cannot wipe")
}

func TestWipeAll(t *testing.T) {
	ctx := context.Background()
	db := setupDB(t)
	sessions := setupSessions(t, db)
	cfg := testConfig(t)
	accounts := NewAccountService(db, sessions, cfg)
	collectionSvc := NewCollectionService(db, sessions)
	admin := NewAdminService(db, sessions)

	registerCollector(t, accounts, "ash", "Secret.1")
	require.NoError(t, collectionSvc.SetCount(ctx, 25, 2))
	_, err := collectionSvc.ToggleWishlist(ctx, 6)
	require.NoError(t, err)

	require.NoError(t, accounts.LoginAdministrator(ctx, "admin", "Admin.123"))
	require.NoError(t, admin.WipeAll(ctx))

	for _, table := range []string{"users", "collection", "wishlist"} {
		var n int
		require.NoError(t, db.QueryRow(`SELECT COUNT(*) FROM `+table).Scan(&n))
		assert.Equal(t, 0, n, "table %s must be empty", table)
	}

	assert.Equal(t, "", sessions.Role(), "session is cleared")
}
