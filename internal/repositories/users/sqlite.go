package users

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/cheaguirre/nexuscards/internal/common"
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

func (r *SQLiteRepository) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	query := `SELECT username, password_salt, password_hash, question_code, answer_salt, answer_hash, created_at
		FROM users WHERE username = ?`
	row := r.db.QueryRowContext(ctx, query, username)

	u := &models.User{}
	err := row.Scan(&u.Username, &u.PasswordSalt, &u.PasswordHash,
		&u.SecurityQuestionCode, &u.AnswerSalt, &u.AnswerHash, &u.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, common.ErrUserNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to select user: %w", err)
	}
	return u, nil
}

// Save upserts a user record by username. On conflict every credential
// column is replaced, which is what password reset and import need.
func (r *SQLiteRepository) Save(ctx context.Context, u *models.User) error {
	query := `INSERT INTO users (username, password_salt, password_hash, question_code, answer_salt, answer_hash, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(username) DO UPDATE SET
			password_salt = excluded.password_salt,
			password_hash = excluded.password_hash,
			question_code = excluded.question_code,
			answer_salt = excluded.answer_salt,
			answer_hash = excluded.answer_hash,
			created_at = excluded.created_at`
	_, err := r.db.ExecContext(ctx, query,
		u.Username, u.PasswordSalt, u.PasswordHash,
		u.SecurityQuestionCode, u.AnswerSalt, u.AnswerHash, u.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to upsert user: %w", err)
	}
	return nil
}

func (r *SQLiteRepository) DeleteAll(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM users`); err != nil {
		return fmt.Errorf("failed to clear users: %w", err)
	}
	return nil
}
