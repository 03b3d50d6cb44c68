// Package cryptox implements the salted key derivation used for local
// credentials (passwords and security answers).
//
// Salts and derived hashes travel as base64 text tokens so they can be
// stored in the local database and embedded in transfer documents as-is.
package cryptox

import (
	"crypto/rand"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/base64"
	"fmt"

	"golang.org/x/crypto/pbkdf2"
)

const (
	// SaltLength is the raw salt size in bytes before base64 encoding.
	SaltLength = 16

	// Iterations is the PBKDF2 iteration count. Changing it invalidates
	// every stored hash, so it is a constant rather than configuration.
	Iterations = 100_000

	// KeyLength is the derived key size in bytes (256-bit output).
	KeyLength = 32
)

// GenerateSalt produces a cryptographically random salt encoded as a
// base64 token.
func GenerateSalt() (string, error) {
	salt := make([]byte, SaltLength)
	if _, err := rand.Read(salt); err != nil {
		return "", fmt.Errorf("failed to generate salt: %w", err)
	}
	return base64.StdEncoding.EncodeToString(salt), nil
}

// DeriveSecretHash runs PBKDF2-SHA256 over the secret with the given
// base64-encoded salt and returns the derived key as a base64 token.
// The same (secret, salt) pair always yields the same token.
func DeriveSecretHash(secret, saltB64 string) (string, error) {
	salt, err := base64.StdEncoding.DecodeString(saltB64)
	if err != nil {
		return "", fmt.Errorf("failed to decode salt: %w", err)
	}
	key := pbkdf2.Key([]byte(secret), salt, Iterations, KeyLength, sha256.New)
	return base64.StdEncoding.EncodeToString(key), nil
}

// VerifySecret re-derives the hash for the candidate secret and compares it
// against the stored token in constant time.
func VerifySecret(secret, saltB64, hashB64 string) (bool, error) {
	candidate, err := DeriveSecretHash(secret, saltB64)
	if err != nil {
		return false, err
	}
	return subtle.ConstantTimeCompare([]byte(candidate), []byte(hashB64)) == 1, nil
}
