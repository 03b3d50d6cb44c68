// Package models defines the data records persisted by the NexusCards
// local store.
package models

import (
	"fmt"
	"time"
)

// Roles recognized by the session manager.
const (
	RoleCollector     = "collector"
	RoleAdministrator = "administrator"
)

// User is a local account record. Secrets are never stored raw: both the
// password and the (normalized) security answer are kept as salted derived
// hashes, encoded base64.
type User struct {
	// Username is the natural key: unique, trimmed, lower-cased.
	Username string `json:"username"`

	PasswordSalt string `json:"passwordSalt"`
	PasswordHash string `json:"passwordHash"`

	// SecurityQuestionCode identifies which security question the user chose.
	SecurityQuestionCode string `json:"securityQuestionCode"`

	AnswerSalt string `json:"answerSalt"`
	AnswerHash string `json:"answerHash"`

	// CreatedAt is a Unix-millisecond timestamp.
	CreatedAt int64 `json:"createdAt"`
}

// CollectionEntry records that a user owns Count copies of an item.
// An entry is never stored with a non-positive count; absence means zero.
type CollectionEntry struct {
	// Key is the synthetic composite "username#itemId". It is re-derivable
	// and must never be trusted from external input.
	Key      string `json:"key"`
	Username string `json:"username"`
	ItemID   int64  `json:"itemId"`
	Count    int    `json:"count"`
	AddedAt  int64  `json:"addedAt"`
}

// WishlistEntry records that a user wants an item. Presence is binary.
type WishlistEntry struct {
	Key      string `json:"key"`
	Username string `json:"username"`
	ItemID   int64  `json:"itemId"`
	AddedAt  int64  `json:"addedAt"`
}

// EntryKey builds the composite key enforcing one entry per (user, item).
func EntryKey(username string, itemID int64) string {
	return fmt.Sprintf("%s#%d", username, itemID)
}

// NowUnixMilli returns the current time as a Unix-millisecond timestamp,
// the unit used for every persisted timestamp.
func NowUnixMilli() int64 {
	return time.Now().UnixMilli()
}
