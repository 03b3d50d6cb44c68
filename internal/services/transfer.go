package services

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/cheaguirre/nexuscards/internal/common"
	"github.com/cheaguirre/nexuscards/internal/models"
	"github.com/cheaguirre/nexuscards/internal/repositories/collection"
	"github.com/cheaguirre/nexuscards/internal/repositories/users"
	"github.com/cheaguirre/nexuscards/internal/repositories/wishlist"
	"github.com/cheaguirre/nexuscards/internal/session"
)

// FormatVersion is the transfer document version this build writes and
// accepts. Documents carrying any other version are rejected instead of
// silently accepted.
const FormatVersion = 1

// TransferDocument is the portable snapshot of one user's local state:
// credentials (salts and hashes as stored), collection, and wishlist.
type TransferDocument struct {
	FormatVersion int                      `json:"formatVersion"`
	ExportedAt    string                   `json:"exportedAt"`
	User          models.User              `json:"user"`
	Collection    []models.CollectionEntry `json:"collection"`
	Wishlist      []models.WishlistEntry   `json:"wishlist"`
}

// ParseDocument decodes a transfer document from JSON.
func ParseDocument(data []byte) (*TransferDocument, error) {
	var doc TransferDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrInvalidDocument, err)
	}
	return &doc, nil
}

// TransferService exports the current collector's full local state to a
// portable document and restores such documents, overwriting local state.
type TransferService struct {
	db       *sql.DB
	sessions *session.Manager
}

// NewTransferService constructs a TransferService bound to the given DB and
// session manager.
func NewTransferService(db *sql.DB, sessions *session.Manager) *TransferService {
	return &TransferService{db: db, sessions: sessions}
}

// ExportUser assembles the transfer document for the current collector.
// Fails with common.ErrNotAuthenticated without an active collector session.
func (s *TransferService) ExportUser(ctx context.Context) (*TransferDocument, error) {
	username, ok := s.sessions.CurrentUser()
	if !ok {
		return nil, common.ErrNotAuthenticated
	}

	user, err := users.NewSQLiteRepository(s.db).GetByUsername(ctx, username)
	if err != nil {
		return nil, err
	}

	coll, err := collection.NewSQLiteRepository(s.db).GetAllByUser(ctx, username)
	if err != nil {
		return nil, err
	}
	wish, err := wishlist.NewSQLiteRepository(s.db).GetAllByUser(ctx, username)
	if err != nil {
		return nil, err
	}

	return &TransferDocument{
		FormatVersion: FormatVersion,
		ExportedAt:    time.Now().UTC().Format(time.RFC3339),
		User:          *user,
		Collection:    coll,
		Wishlist:      wish,
	}, nil
}

// ImportUser restores a transfer document: it overwrites the user record
// (credentials included), switches the active session to that user, and
// replaces all of the user's local collection and wishlist entries with the
// document's. Entry keys are re-derived from the imported username and item
// id; the embedded key field is never trusted, and collection entries with
// a non-positive count are dropped.
//
// The operation is destructive and not transactional end-to-end: if a write
// fails midway the store is left partially overwritten and the import
// should be retried. Callers must obtain explicit confirmation first.
func (s *TransferService) ImportUser(ctx context.Context, doc *TransferDocument) error {
	if doc == nil || doc.User.Username == "" {
		return common.ErrInvalidDocument
	}
	if doc.FormatVersion != 0 && doc.FormatVersion != FormatVersion {
		return fmt.Errorf("%w: unsupported format version %d", common.ErrInvalidDocument, doc.FormatVersion)
	}

	username := doc.User.Username

	if err := users.NewSQLiteRepository(s.db).Save(ctx, &doc.User); err != nil {
		return err
	}

	if err := s.sessions.Establish(ctx, models.RoleCollector, username); err != nil {
		return err
	}

	// Deletes must complete before the inserts start, otherwise stale
	// composite keys could survive alongside the imported ones.
	collRepo := collection.NewSQLiteRepository(s.db)
	if err := collRepo.DeleteAllByUser(ctx, username); err != nil {
		return err
	}
	for _, e := range doc.Collection {
		// an entry never carries a non-positive count, so documents with
		// one (hand-edited or from a buggy exporter) lose those entries
		if e.Count <= 0 {
			continue
		}
		addedAt := e.AddedAt
		if addedAt == 0 {
			addedAt = models.NowUnixMilli()
		}
		entry := &models.CollectionEntry{
			Key:      models.EntryKey(username, e.ItemID),
			Username: username,
			ItemID:   e.ItemID,
			Count:    e.Count,
			AddedAt:  addedAt,
		}
		if err := collRepo.Put(ctx, entry); err != nil {
			return err
		}
	}

	wishRepo := wishlist.NewSQLiteRepository(s.db)
	if err := wishRepo.DeleteAllByUser(ctx, username); err != nil {
		return err
	}
	for _, e := range doc.Wishlist {
		addedAt := e.AddedAt
		if addedAt == 0 {
			addedAt = models.NowUnixMilli()
		}
		entry := &models.WishlistEntry{
			Key:      models.EntryKey(username, e.ItemID),
			Username: username,
			ItemID:   e.ItemID,
			AddedAt:  addedAt,
		}
		if err := wishRepo.Put(ctx, entry); err != nil {
			return err
		}
	}

	return nil
}
