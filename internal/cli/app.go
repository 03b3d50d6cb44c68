// Package cli implements the interactive NexusCards terminal client: a
// small REPL over the account, collection, transfer, and administration
// services, plus catalog browsing.
package cli

import (
	"bufio"
	"context"
	"database/sql"
	"io"
	"log/slog"
	"os"

	"github.com/cheaguirre/nexuscards/internal/catalog"
	"github.com/cheaguirre/nexuscards/internal/config"
	"github.com/cheaguirre/nexuscards/internal/logging"
	"github.com/cheaguirre/nexuscards/internal/repositories/sessionstore"
	"github.com/cheaguirre/nexuscards/internal/services"
	"github.com/cheaguirre/nexuscards/internal/session"
	"github.com/cheaguirre/nexuscards/internal/storage"

	_ "modernc.org/sqlite"
)

// securityQuestions maps question codes to the text shown to the user.
var securityQuestions = map[string]string{
	"q1": "What was the name of your first pet?",
	"q2": "What city were you born in?",
	"q3": "What was your first card?",
}

// securityQuestionCodes fixes the order questions are listed in.
var securityQuestionCodes = []string{"q1", "q2", "q3"}

type App struct {
	config   *config.Config
	log      logging.Logger
	db       *sql.DB
	sessions *session.Manager

	accounts   *services.AccountService
	collection *services.CollectionService
	transfer   *services.TransferService
	admin      *services.AdminService
	catalog    *catalog.Client

	filter catalog.FilterState

	reader *bufio.Reader
	out    io.Writer
}

// NewApp opens the local database, restores any persisted session, and
// wires the services together.
func NewApp(ctx context.Context, cfg *config.Config) (*App, error) {
	log := logging.NewSlogLogger(slog.New(slog.NewTextHandler(os.Stderr, nil)))

	db, err := storage.Open(ctx, cfg.DatabaseDSN)
	if err != nil {
		log.Error(ctx, "error initializing database", "error", err)
		return nil, err
	}

	sessions := session.NewManager(sessionstore.NewSQLiteRepository(db), []byte(cfg.SessionSecret))
	if err := sessions.Restore(ctx); err != nil {
		return nil, err
	}

	return &App{
		config:     cfg,
		log:        log,
		db:         db,
		sessions:   sessions,
		accounts:   services.NewAccountService(db, sessions, cfg),
		collection: services.NewCollectionService(db, sessions),
		transfer:   services.NewTransferService(db, sessions),
		admin:      services.NewAdminService(db, sessions),
		catalog:    catalog.NewClient(cfg.CatalogBaseURL, cfg.CatalogPageSize, log),
		filter:     catalog.DefaultFilter(),
		reader:     bufio.NewReader(os.Stdin),
		out:        os.Stdout,
	}, nil
}

func (a *App) role() string {
	return a.sessions.Role()
}

// Close releases the database handle.
func (a *App) Close() error {
	return a.db.Close()
}
