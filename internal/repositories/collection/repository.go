package collection

import (
	"context"

	"github.com/cheaguirre/nexuscards/internal/models"
)

// Repository describes persistence operations for collection entries.
// Entries are keyed by the synthetic composite "username#itemId"; the
// username column acts as a secondary index for per-user scans.
type Repository interface {
	// Get returns the entry for the composite key, or nil if absent.
	Get(ctx context.Context, key string) (*models.CollectionEntry, error)

	// Put upserts an entry by its composite key.
	Put(ctx context.Context, entry *models.CollectionEntry) error

	// Delete removes the entry for the composite key. Deleting a missing
	// key is not an error.
	Delete(ctx context.Context, key string) error

	// GetAllByUser returns every entry belonging to the given user.
	GetAllByUser(ctx context.Context, username string) ([]models.CollectionEntry, error)

	// DeleteAllByUser removes every entry belonging to the given user.
	DeleteAllByUser(ctx context.Context, username string) error

	// DeleteAll removes every entry. Used by the administrator wipe.
	DeleteAll(ctx context.Context) error
}
