package wishlist

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/cheaguirre/nexuscards/internal/dbx"
	"github.com/cheaguirre/nexuscards/internal/models"
)

// SQLiteRepository implements Repository using a DBTX (either *sql.DB or *sql.Tx).
type SQLiteRepository struct {
	db dbx.DBTX
}

// NewSQLiteRepository returns a new SQLiteRepository bound to the given DBTX.
func NewSQLiteRepository(db dbx.DBTX) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

func (r *SQLiteRepository) Get(ctx context.Context, key string) (*models.WishlistEntry, error) {
	query := `SELECT key, username, item_id, added_at FROM wishlist WHERE key = ?`
	row := r.db.QueryRowContext(ctx, query, key)

	e := &models.WishlistEntry{}
	err := row.Scan(&e.Key, &e.Username, &e.ItemID, &e.AddedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to select wishlist entry: %w", err)
	}
	return e, nil
}

func (r *SQLiteRepository) Put(ctx context.Context, e *models.WishlistEntry) error {
	query := `INSERT INTO wishlist (key, username, item_id, added_at)
		VALUES (?, ?, ?, ?)
		ON CONFLICT(key) DO NOTHING`
	_, err := r.db.ExecContext(ctx, query, e.Key, e.Username, e.ItemID, e.AddedAt)
	if err != nil {
		return fmt.Errorf("failed to upsert wishlist entry: %w", err)
	}
	return nil
}

func (r *SQLiteRepository) Delete(ctx context.Context, key string) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM wishlist WHERE key = ?`, key); err != nil {
		return fmt.Errorf("failed to delete wishlist entry: %w", err)
	}
	return nil
}

func (r *SQLiteRepository) GetAllByUser(ctx context.Context, username string) ([]models.WishlistEntry, error) {
	query := `SELECT key, username, item_id, added_at FROM wishlist WHERE username = ? ORDER BY item_id`
	rows, err := r.db.QueryContext(ctx, query, username)
	if err != nil {
		return nil, fmt.Errorf("failed to select wishlist entries: %w", err)
	}
	defer rows.Close()

	var result []models.WishlistEntry
	for rows.Next() {
		var e models.WishlistEntry
		if err := rows.Scan(&e.Key, &e.Username, &e.ItemID, &e.AddedAt); err != nil {
			return nil, err
		}
		result = append(result, e)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *SQLiteRepository) DeleteAllByUser(ctx context.Context, username string) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM wishlist WHERE username = ?`, username); err != nil {
		return fmt.Errorf("failed to delete wishlist entries: %w", err)
	}
	return nil
}

func (r *SQLiteRepository) DeleteAll(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM wishlist`); err != nil {
		return fmt.Errorf("failed to clear wishlist: %w", err)
	}
	return nil
}
