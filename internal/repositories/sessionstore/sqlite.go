package sessionstore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/cheaguirre/nexuscards/internal/dbx"
)

type SQLiteRepository struct {
	db dbx.DBTX
}

func NewSQLiteRepository(db dbx.DBTX) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

func (r *SQLiteRepository) Get(ctx context.Context) (string, error) {
	var value string
	err := r.db.QueryRowContext(ctx, `SELECT value FROM session WHERE key = ?`, SessionKey).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("failed to get session record: %w", err)
	}
	return value, nil
}

func (r *SQLiteRepository) Set(ctx context.Context, value string) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO session (key, value) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value
	`, SessionKey, value)
	if err != nil {
		return fmt.Errorf("failed to set session record: %w", err)
	}
	return nil
}

func (r *SQLiteRepository) Delete(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM session WHERE key = ?`, SessionKey); err != nil {
		return fmt.Errorf("failed to delete session record: %w", err)
	}
	return nil
}
