package wishlist

import (
	"context"

	"github.com/cheaguirre/nexuscards/internal/models"
)

// Repository describes persistence operations for wishlist entries.
// Membership is binary: an entry either exists for (user, item) or not.
type Repository interface {
	// Get returns the entry for the composite key, or nil if absent.
	Get(ctx context.Context, key string) (*models.WishlistEntry, error)

	// Put upserts an entry by its composite key.
	Put(ctx context.Context, entry *models.WishlistEntry) error

	// Delete removes the entry for the composite key. Deleting a missing
	// key is not an error.
	Delete(ctx context.Context, key string) error

	// GetAllByUser returns every entry belonging to the given user.
	GetAllByUser(ctx context.Context, username string) ([]models.WishlistEntry, error)

	// DeleteAllByUser removes every entry belonging to the given user.
	DeleteAllByUser(ctx context.Context, username string) error

	// DeleteAll removes every entry. Used by the administrator wipe.
	DeleteAll(ctx context.Context) error
}
