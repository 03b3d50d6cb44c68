// Package sessionstore persists the single process-wide session record
// under a well-known key, the local analogue of a browser's localStorage
// slot.
package sessionstore

import "context"

// SessionKey is the well-known key the session record lives under.
const SessionKey = "session"

// Repository stores and retrieves the serialized session record.
type Repository interface {
	// Get returns the persisted record, or "" if none is stored.
	Get(ctx context.Context) (string, error)

	// Set overwrites the persisted record.
	Set(ctx context.Context, value string) error

	// Delete removes the persisted record. Deleting a missing record is
	// not an error.
	Delete(ctx context.Context) error
}
