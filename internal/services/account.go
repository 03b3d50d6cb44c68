// Package services contains the application services of NexusCards:
// accounts, collection/wishlist tracking, cross-device transfer, and
// administrator maintenance. Services construct their repositories from
// the database handle so that individual operations can run either
// directly or inside a transaction.
package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/cheaguirre/nexuscards/internal/common"
	"github.com/cheaguirre/nexuscards/internal/config"
	"github.com/cheaguirre/nexuscards/internal/cryptox"
	"github.com/cheaguirre/nexuscards/internal/models"
	"github.com/cheaguirre/nexuscards/internal/repositories/users"
	"github.com/cheaguirre/nexuscards/internal/session"
)

// AccountService implements registration, login, password reset via
// security question, and administrator login.
//
// Error contract (match with errors.Is):
//   - Register: common.ErrDuplicateUser
//   - Login: common.ErrUserNotFound, common.ErrInvalidCredentials
//   - ResetPassword: common.ErrUserNotFound, common.ErrInvalidSecurityAnswer
//   - LoginAdministrator: common.ErrInvalidCredentials
//
// The service distinguishes "user not found" from "wrong password"
// internally; presenting both as one generic message is the caller's job.
type AccountService struct {
	db       *sql.DB
	sessions *session.Manager

	adminUsername     string
	adminPasswordSalt string
	adminPasswordHash string
}

// NewAccountService constructs an AccountService bound to the given DB and
// session manager. The administrator credential comes pre-hashed from the
// configuration; no plaintext administrator password exists anywhere.
func NewAccountService(db *sql.DB, sessions *session.Manager, cfg *config.Config) *AccountService {
	return &AccountService{
		db:                db,
		sessions:          sessions,
		adminUsername:     cfg.AdminUsername,
		adminPasswordSalt: cfg.AdminPasswordSalt,
		adminPasswordHash: cfg.AdminPasswordHash,
	}
}

func (s *AccountService) getUserRepo() users.Repository {
	return users.NewSQLiteRepository(s.db)
}

// Normalize trims surrounding whitespace and lower-cases. Applied to
// usernames and security answers so lookups and verification are
// case-insensitive.
func Normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// Register creates a new local account. Independent salts are generated for
// the password and the normalized security answer. No session is created.
func (s *AccountService) Register(ctx context.Context, username, password, questionCode, answer string) error {
	repo := s.getUserRepo()

	username = Normalize(username)
	answer = Normalize(answer)

	_, err := repo.GetByUsername(ctx, username)
	if err == nil {
		return common.ErrDuplicateUser
	}
	if !errors.Is(err, common.ErrUserNotFound) {
		return fmt.Errorf("failed to check existing user: %w", err)
	}

	passSalt, err := cryptox.GenerateSalt()
	if err != nil {
		return err
	}
	passHash, err := cryptox.DeriveSecretHash(password, passSalt)
	if err != nil {
		return err
	}

	answerSalt, err := cryptox.GenerateSalt()
	if err != nil {
		return err
	}
	answerHash, err := cryptox.DeriveSecretHash(answer, answerSalt)
	if err != nil {
		return err
	}

	user := &models.User{
		Username:             username,
		PasswordSalt:         passSalt,
		PasswordHash:         passHash,
		SecurityQuestionCode: questionCode,
		AnswerSalt:           answerSalt,
		AnswerHash:           answerHash,
		CreatedAt:            models.NowUnixMilli(),
	}

	return repo.Save(ctx, user)
}

// Login verifies the password and, on success, establishes a collector
// session for the user.
func (s *AccountService) Login(ctx context.Context, username, password string) error {
	user, err := s.getUserRepo().GetByUsername(ctx, Normalize(username))
	if err != nil {
		return err
	}

	ok, err := cryptox.VerifySecret(password, user.PasswordSalt, user.PasswordHash)
	if err != nil {
		return err
	}
	if !ok {
		return common.ErrInvalidCredentials
	}

	return s.sessions.Establish(ctx, models.RoleCollector, user.Username)
}

// SecurityQuestion returns the question code chosen by the user, for the
// caller to display before asking for the answer.
func (s *AccountService) SecurityQuestion(ctx context.Context, username string) (string, error) {
	user, err := s.getUserRepo().GetByUsername(ctx, Normalize(username))
	if err != nil {
		return "", err
	}
	return user.SecurityQuestionCode, nil
}

// ResetPassword verifies the security answer and replaces the password salt
// and hash. The answer salt and hash are left untouched.
func (s *AccountService) ResetPassword(ctx context.Context, username, answer, newPassword string) error {
	repo := s.getUserRepo()

	user, err := repo.GetByUsername(ctx, Normalize(username))
	if err != nil {
		return err
	}

	ok, err := cryptox.VerifySecret(Normalize(answer), user.AnswerSalt, user.AnswerHash)
	if err != nil {
		return err
	}
	if !ok {
		return common.ErrInvalidSecurityAnswer
	}

	passSalt, err := cryptox.GenerateSalt()
	if err != nil {
		return err
	}
	passHash, err := cryptox.DeriveSecretHash(newPassword, passSalt)
	if err != nil {
		return err
	}

	user.PasswordSalt = passSalt
	user.PasswordHash = passHash

	return repo.Save(ctx, user)
}

// LoginAdministrator checks the supplied pair against the injected
// administrator credential and establishes an administrator session. The
// administrator is not a stored user; there is no username enumeration
// concern, so the single ErrInvalidCredentials covers every mismatch.
func (s *AccountService) LoginAdministrator(ctx context.Context, username, password string) error {
	if username != s.adminUsername {
		return common.ErrInvalidCredentials
	}

	ok, err := cryptox.VerifySecret(password, s.adminPasswordSalt, s.adminPasswordHash)
	if err != nil {
		return err
	}
	if !ok {
		return common.ErrInvalidCredentials
	}

	return s.sessions.Establish(ctx, models.RoleAdministrator, "")
}
