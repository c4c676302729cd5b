package security

import (
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashPassword(t *testing.T) {
	hash, err := HashPassword("secret123")
	require.NoError(t, err)
	assert.NotEqual(t, "secret123", hash)

	assert.NoError(t, CheckPasswordHash("secret123", hash))
	assert.Error(t, CheckPasswordHash("wrong", hash))
}

func TestHashPassword_Empty(t *testing.T) {
	_, err := HashPassword("")
	assert.Error(t, err)
}

func TestNewApiToken(t *testing.T) {
	token, err := NewApiToken()
	require.NoError(t, err)
	assert.Len(t, token, ApiTokenBytes*2)

	_, err = hex.DecodeString(token)
	assert.NoError(t, err)

	other, err := NewApiToken()
	require.NoError(t, err)
	assert.NotEqual(t, token, other)
}

func TestParseBearer(t *testing.T) {
	token, ok := ParseBearer("Bearer abc123")
	assert.True(t, ok)
	assert.Equal(t, "abc123", token)

	_, ok = ParseBearer("")
	assert.False(t, ok)

	_, ok = ParseBearer("Basic abc123")
	assert.False(t, ok)

	_, ok = ParseBearer("bearer abc123")
	assert.False(t, ok)
}
