package collection

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

func (r *SQLiteRepository) Get(ctx context.Context, key string) (*models.CollectionEntry, error) {
	query := `SELECT key, username, item_id, count, added_at FROM collection WHERE key = ?`
	row := r.db.QueryRowContext(ctx, query, key)

	e := &models.CollectionEntry{}
	err := row.Scan(&e.Key, &e.Username, &e.ItemID, &e.Count, &e.AddedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to select collection entry: %w", err)
	}
	return e, nil
}

// Put upserts an entry by key. The UNIQUE(username, item_id) constraint
// guarantees a single entry per (user, item) even if keys ever diverge.
func (r *SQLiteRepository) Put(ctx context.Context, e *models.CollectionEntry) error {
	query := `INSERT INTO collection (key, username, item_id, count, added_at)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT(key) DO UPDATE SET count = excluded.count`
	_, err := r.db.ExecContext(ctx, query, e.Key, e.Username, e.ItemID, e.Count, e.AddedAt)
	if err != nil {
		return fmt.Errorf("failed to upsert collection entry: %w", err)
	}
	return nil
}

func (r *SQLiteRepository) Delete(ctx context.Context, key string) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM collection WHERE key = ?`, key); err != nil {
		return fmt.Errorf("failed to delete collection entry: %w", err)
	}
	return nil
}

func (r *SQLiteRepository) GetAllByUser(ctx context.Context, username string) ([]models.CollectionEntry, error) {
	query := `SELECT key, username, item_id, count, added_at FROM collection WHERE username = ? ORDER BY item_id`
	rows, err := r.db.QueryContext(ctx, query, username)
	if err != nil {
		return nil, fmt.Errorf("failed to select collection entries: %w", err)
	}
	defer rows.Close()

	var result []models.CollectionEntry
	for rows.Next() {
		var e models.CollectionEntry
		if err := rows.Scan(&e.Key, &e.Username, &e.ItemID, &e.Count, &e.AddedAt); err != nil {
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
	if _, err := r.db.ExecContext(ctx, `DELETE FROM collection WHERE username = ?`, username); err != nil {
		return fmt.Errorf("failed to delete collection entries: %w", err)
	}
	return nil
}

func (r *SQLiteRepository) DeleteAll(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM collection`); err != nil {
		return fmt.Errorf("failed to clear collection: %w", err)
	}
	return nil
}
