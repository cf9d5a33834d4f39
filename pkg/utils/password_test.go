package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashPassword(t *testing.T) {
	hash, err := HashPassword("secret123")
	require.NoError(t, err)

	assert.NotEqual(t, "secret123", hash)
	assert.True(t, CheckPasswordHash("secret123", hash))
	assert.False(t, CheckPasswordHash("secret124", hash))
}

func TestCheckPasswordHash_MalformedHash(t *testing.T) {
	assert.False(t, CheckPasswordHash("secret123", "not-a-bcrypt-hash"))
}

func TestParseInt(t *testing.T) {
	assert.Equal(t, 7, ParseInt("7", 0))
	assert.Equal(t, 0, ParseInt("", 0))
	assert.Equal(t, 5, ParseInt("abc", 5))
	assert.Equal(t, 5, ParseInt("-3", 5))
	assert.Equal(t, 5, ParseInt("0", 5))
}
