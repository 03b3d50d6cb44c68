package services

import (
	"context"
	"database/sql"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/cheaguirre/nexuscards/internal/config"
	"github.com/cheaguirre/nexuscards/internal/cryptox"
	"github.com/cheaguirre/nexuscards/internal/models"
	"github.com/cheaguirre/nexuscards/internal/repositories/sessionstore"
	"github.com/cheaguirre/nexuscards/internal/session"

	_ "modernc.org/sqlite"
)

const schema = `
CREATE TABLE users (
  username      TEXT PRIMARY KEY,
  password_salt TEXT NOT NULL,
  password_hash TEXT NOT NULL,
  question_code TEXT NOT NULL,
  answer_salt   TEXT NOT NULL,
  answer_hash   TEXT NOT NULL,
  created_at    INTEGER NOT NULL
);
CREATE TABLE collection (
  key      TEXT PRIMARY KEY,
  username TEXT NOT NULL,
  item_id  INTEGER NOT NULL,
  count    INTEGER NOT NULL,
  added_at INTEGER NOT NULL,
  UNIQUE (username, item_id)
);
CREATE TABLE wishlist (
  key      TEXT PRIMARY KEY,
  username TEXT NOT NULL,
  item_id  INTEGER NOT NULL,
  added_at INTEGER NOT NULL,
  UNIQUE (username, item_id)
);
CREATE TABLE session (
  key   TEXT PRIMARY KEY,
  value TEXT NOT NULL
);
`

func setupDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = db.Close() })

	_, err = db.Exec(schema)
	require.NoError(t, err)
	return db
}

func setupSessions(t *testing.T, db *sql.DB) *session.Manager {
	t.Helper()
	return session.NewManager(sessionstore.NewSQLiteRepository(db), []byte("test-secret"))
}

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	cfg := &config.Config{}
	cfg.LoadDefaults()

	salt, err := cryptox.GenerateSalt()
	require.NoError(t, err)
	hash, err := cryptox.DeriveSecretHash("Admin.123", salt)
	require.NoError(t, err)

	cfg.AdminUsername = "admin"
	cfg.AdminPasswordSalt = salt
	cfg.AdminPasswordHash = hash
	return cfg
}

// registerCollector registers and logs in a collector in one step, since
// most service tests need an active session.
func registerCollector(t *testing.T, accounts *AccountService, username, password string) {
	t.Helper()
	ctx := context.Background()
	require.NoError(t, accounts.Register(ctx, username, password, "q1", "pikachu"))
	require.NoError(t, accounts.Login(ctx, username, password))
}

func asCollector(t *testing.T, sessions *session.Manager, username string) {
	t.Helper()
	require.NoError(t, sessions.Establish(context.Background(), models.RoleCollector, username))
}

func sampleDocUser(username string) models.User {
	return models.User{
		Username:             username,
		PasswordSalt:         "cHNhbHQ=",
		PasswordHash:         "cGhhc2g=",
		SecurityQuestionCode: "q1",
		AnswerSalt:           "YXNhbHQ=",
		AnswerHash:           "YWhhc2g=",
		CreatedAt:            1700000000000,
	}
}

func docCollectionEntry(key, username string, itemID int64, count int, addedAt int64) models.CollectionEntry {
	return models.CollectionEntry{
		Key:      key,
		Username: username,
		ItemID:   itemID,
		Count:    count,
		AddedAt:  addedAt,
	}
}
