package cryptox

import (
	"encoding/base64"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateSalt_LengthAndRandomness(t *testing.T) {
	s1, err := GenerateSalt()
	require.NoError(t, err)
	s2, err := GenerateSalt()
	require.NoError(t, err)

	raw, err := base64.StdEncoding.DecodeString(s1)
	require.NoError(t, err)
	assert.Len(t, raw, SaltLength)

	assert.NotEqual(t, s1, s2, "two salts must not collide")
}

func TestDeriveSecretHash_Deterministic(t *testing.T) {
	salt, err := GenerateSalt()
	require.NoError(t, err)

	h1, err := DeriveSecretHash("Secret.1", salt)
	require.NoError(t, err)
	h2, err := DeriveSecretHash("Secret.1", salt)
	require.NoError(t, err)

	assert.Equal(t, h1, h2, "same (secret, salt) must yield the same token")

	raw, err := base64.StdEncoding.DecodeString(h1)
	require.NoError(t, err)
	assert.Len(t, raw, KeyLength)
}

func TestDeriveSecretHash_DifferentSecretsDiffer(t *testing.T) {
	salt, err := GenerateSalt()
	require.NoError(t, err)

	h1, err := DeriveSecretHash("Secret.1", salt)
	require.NoError(t, err)
	h2, err := DeriveSecretHash("Secret.2", salt)
	require.NoError(t, err)

	assert.NotEqual(t, h1, h2)
}

func TestDeriveSecretHash_DifferentSaltsDiffer(t *testing.T) {
	s1, err := GenerateSalt()
	require.NoError(t, err)
	s2, err := GenerateSalt()
	require.NoError(t, err)

	h1, err := DeriveSecretHash("Secret.1", s1)
	require.NoError(t, err)
	h2, err := DeriveSecretHash("Secret.1", s2)
	require.NoError(t, err)

	assert.NotEqual(t, h1, h2)
}

func TestDeriveSecretHash_InvalidSalt(t *testing.T) {
	_, err := DeriveSecretHash("Secret.1", "%%% not base64 %%%")
	assert.Error(t, err)
}

func TestVerifySecret(t *testing.T) {
	salt, err := GenerateSalt()
	require.NoError(t, err)
	hash, err := DeriveSecretHash("Secret.1", salt)
	require.NoError(t, err)

	ok, err := VerifySecret("Secret.1", salt, hash)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = VerifySecret("wrong", salt, hash)
	require.NoError(t, err)
	assert.False(t, ok)
}
