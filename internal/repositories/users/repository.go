package users

import (
	"context"

	"github.com/cheaguirre/nexuscards/internal/models"
)

// Repository describes persistence operations for local user records.
// Implementations are backed by the local SQLite database.
type Repository interface {
	// GetByUsername returns the record for the given (already normalized)
	// username, or common.ErrUserNotFound if it does not exist.
	GetByUsername(ctx context.Context, username string) (*models.User, error)

	// Save inserts a new user record or overwrites an existing one.
	Save(ctx context.Context, user *models.User) error

	// DeleteAll removes every user record. Used by the administrator wipe.
	DeleteAll(ctx context.Context) error
}
