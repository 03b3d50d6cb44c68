package services

import (
	"context"
	"database/sql"

	"github.com/cheaguirre/nexuscards/internal/dbx"
	"github.com/cheaguirre/nexuscards/internal/models"
	"github.com/cheaguirre/nexuscards/internal/repositories/collection"
	"github.com/cheaguirre/nexuscards/internal/repositories/wishlist"
	"github.com/cheaguirre/nexuscards/internal/session"
)

// CollectionService tracks owned-copy counts and wishlist membership for
// the collector of the current session. Every operation is scoped to that
// user; without an active collector session mutations are no-ops and reads
// return empty results.
type CollectionService struct {
	db       *sql.DB
	sessions *session.Manager
}

// NewCollectionService constructs a CollectionService bound to the given DB
// and session manager.
func NewCollectionService(db *sql.DB, sessions *session.Manager) *CollectionService {
	return &CollectionService{db: db, sessions: sessions}
}

// SetCount records that the current collector owns count copies of the
// item. A count of zero or less removes the entry entirely; an entry is
// never stored with a non-positive count.
func (s *CollectionService) SetCount(ctx context.Context, itemID int64, count int) error {
	user, ok := s.sessions.CurrentUser()
	if !ok {
		return nil
	}

	repo := collection.NewSQLiteRepository(s.db)
	key := models.EntryKey(user, itemID)

	if count <= 0 {
		return repo.Delete(ctx, key)
	}

	// the upsert keeps the original added_at when the entry already exists
	return repo.Put(ctx, &models.CollectionEntry{
		Key:      key,
		Username: user,
		ItemID:   itemID,
		Count:    count,
		AddedAt:  models.NowUnixMilli(),
	})
}

// GetCollection returns every collection entry of the current collector,
// or an empty list when no collector session is active.
func (s *CollectionService) GetCollection(ctx context.Context) ([]models.CollectionEntry, error) {
	user, ok := s.sessions.CurrentUser()
	if !ok {
		return []models.CollectionEntry{}, nil
	}
	return collection.NewSQLiteRepository(s.db).GetAllByUser(ctx, user)
}

// GetCount returns how many copies of the item the current collector owns.
// Absence of an entry means zero.
func (s *CollectionService) GetCount(ctx context.Context, itemID int64) (int, error) {
	user, ok := s.sessions.CurrentUser()
	if !ok {
		return 0, nil
	}
	e, err := collection.NewSQLiteRepository(s.db).Get(ctx, models.EntryKey(user, itemID))
	if err != nil {
		return 0, err
	}
	if e == nil {
		return 0, nil
	}
	return e.Count, nil
}

// ToggleWishlist flips wishlist membership for the item and reports the new
// state: true when the item was added, false when it was removed. The
// read-then-act pair runs inside one transaction so the call is atomic with
// respect to itself.
func (s *CollectionService) ToggleWishlist(ctx context.Context, itemID int64) (bool, error) {
	user, ok := s.sessions.CurrentUser()
	if !ok {
		return false, nil
	}

	key := models.EntryKey(user, itemID)
	var added bool

	err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := wishlist.NewSQLiteRepository(tx)

		existing, err := repo.Get(ctx, key)
		if err != nil {
			return err
		}
		if existing != nil {
			added = false
			return repo.Delete(ctx, key)
		}

		added = true
		return repo.Put(ctx, &models.WishlistEntry{
			Key:      key,
			Username: user,
			ItemID:   itemID,
			AddedAt:  models.NowUnixMilli(),
		})
	})
	if err != nil {
		return false, err
	}
	return added, nil
}

// IsInWishlist reports whether the item is on the current collector's
// wishlist. Always false without an active collector session.
func (s *CollectionService) IsInWishlist(ctx context.Context, itemID int64) (bool, error) {
	user, ok := s.sessions.CurrentUser()
	if !ok {
		return false, nil
	}
	e, err := wishlist.NewSQLiteRepository(s.db).Get(ctx, models.EntryKey(user, itemID))
	if err != nil {
		return false, err
	}
	return e != nil, nil
}

// GetWishlist returns every wishlist entry of the current collector, or an
// empty list when no collector session is active.
func (s *CollectionService) GetWishlist(ctx context.Context) ([]models.WishlistEntry, error) {
	user, ok := s.sessions.CurrentUser()
	if !ok {
		return []models.WishlistEntry{}, nil
	}
	return wishlist.NewSQLiteRepository(s.db).GetAllByUser(ctx, user)
}
