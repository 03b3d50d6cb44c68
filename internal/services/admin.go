package services

import (
	"context"
	"database/sql"

	"github.com/cheaguirre/nexuscards/internal/common"
	"github.com/cheaguirre/nexuscards/internal/dbx"
	"github.com/cheaguirre/nexuscards/internal/repositories/collection"
	"github.com/cheaguirre/nexuscards/internal/repositories/users"
	"github.com/cheaguirre/nexuscards/internal/repositories/wishlist"
	"github.com/cheaguirre/nexuscards/internal/session"
)

// AdminService holds the maintenance operations available to the
// administrator role.
type AdminService struct {
	db       *sql.DB
	sessions *session.Manager
}

// NewAdminService constructs an AdminService bound to the given DB and
// session manager.
func NewAdminService(db *sql.DB, sessions *session.Manager) *AdminService {
	return &AdminService{db: db, sessions: sessions}
}

// WipeAll erases every local account, collection, and wishlist entry, and
// clears the active session. Fails with common.ErrNotAuthenticated unless
// the administrator is signed in. The table clears run in one transaction;
// callers must obtain explicit confirmation before invoking.
func (s *AdminService) WipeAll(ctx context.Context) error {
	if !s.sessions.IsAdministrator() {
		return common.ErrNotAuthenticated
	}

	err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		if err := users.NewSQLiteRepository(tx).DeleteAll(ctx); err != nil {
			return err
		}
		if err := collection.NewSQLiteRepository(tx).DeleteAll(ctx); err != nil {
			return err
		}
		return wishlist.NewSQLiteRepository(tx).DeleteAll(ctx)
	})
	if err != nil {
		return err
	}

	return s.sessions.Clear(ctx)
}
