// Package session tracks the current identity for the process: Anonymous,
// a collector (with username), or the administrator. The state is an
// explicit object handed to the services that need it, never a package
// global, so tests can run several managers side by side.
//
// The persisted record is a signed JWT holding {username, role, token}.
// The signature gives local tamper-evidence only; there is no server to
// present the token to.
package session

import (
	"context"
	"fmt"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/cheaguirre/nexuscards/internal/models"
	"github.com/cheaguirre/nexuscards/internal/repositories/sessionstore"
)

// Claims is the persisted session record.
type Claims struct {
	jwt.RegisteredClaims
	Username string `json:"username"`
	Role     string `json:"role"`
	Token    string `json:"token"`
}

// Manager holds the current identity and mirrors it into durable storage.
type Manager struct {
	repo   sessionstore.Repository
	secret []byte

	role     string
	username string
	token    string
}

// NewManager returns a Manager in the Anonymous state.
func NewManager(repo sessionstore.Repository, secret []byte) *Manager {
	return &Manager{repo: repo, secret: secret}
}

// Establish switches to the given role (and username, for collectors),
// regenerates the opaque session token, and persists the signed record.
func (m *Manager) Establish(ctx context.Context, role, username string) error {
	if role != models.RoleCollector {
		username = ""
	}

	token := uuid.NewString()

	record := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		Username: username,
		Role:     role,
		Token:    token,
	})
	signed, err := record.SignedString(m.secret)
	if err != nil {
		return fmt.Errorf("failed to sign session record: %w", err)
	}

	if err := m.repo.Set(ctx, signed); err != nil {
		return err
	}

	m.role = role
	m.username = username
	m.token = token
	return nil
}

// Restore loads the persisted session at process start. A missing,
// malformed, or tampered record is treated as "no session": the manager
// stays Anonymous and no error is returned.
func (m *Manager) Restore(ctx context.Context) error {
	raw, err := m.repo.Get(ctx)
	if err != nil {
		return err
	}
	if raw == "" {
		return nil
	}

	claims := &Claims{}
	parsed, err := jwt.ParseWithClaims(raw, claims, func(t *jwt.Token) (any, error) {
		return m.secret, nil
	})
	if err != nil || !parsed.Valid {
		return nil
	}
	if claims.Role != models.RoleCollector && claims.Role != models.RoleAdministrator {
		return nil
	}

	m.role = claims.Role
	m.token = claims.Token
	if claims.Role == models.RoleCollector {
		m.username = claims.Username
	} else {
		m.username = ""
	}
	return nil
}

// Clear logs out: erases the persisted record and returns to Anonymous.
func (m *Manager) Clear(ctx context.Context) error {
	if err := m.repo.Delete(ctx); err != nil {
		return err
	}
	m.role = ""
	m.username = ""
	m.token = ""
	return nil
}

// CurrentUser returns the active collector's username. ok is false when
// Anonymous or when the administrator is signed in.
func (m *Manager) CurrentUser() (username string, ok bool) {
	if m.role != models.RoleCollector || m.username == "" {
		return "", false
	}
	return m.username, true
}

// Role returns the active role, or "" when Anonymous.
func (m *Manager) Role() string {
	return m.role
}

// IsAdministrator reports whether the administrator is signed in.
func (m *Manager) IsAdministrator() bool {
	return m.role == models.RoleAdministrator
}

// Token returns the opaque identifier of the current session, or "" when
// Anonymous.
func (m *Manager) Token() string {
	return m.token
}
