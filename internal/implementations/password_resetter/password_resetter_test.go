package passwordresetter

import (
	"authd/internal/core/domain/user"
	"encoding/base64"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGeneratedTokensAreUnique(t *testing.T) {
	d := NewKeyedDigest("test-secret")

	seen := make(map[user.PasswordResetToken]struct{})
	for i := 0; i < 100; i++ {
		token, err := d.GenerateToken()
		require.Nil(t, err)

		raw, err := base64.RawURLEncoding.DecodeString(string(token))
		require.Nil(t, err)
		assert.Len(t, raw, tokenEntropyBytes)

		_, ok := seen[token]
		assert.False(t, ok, "token generated twice")
		seen[token] = struct{}{}
	}
}

func TestDigestIsDeterministic(t *testing.T) {
	d := NewKeyedDigest("test-secret")
	token, err := d.GenerateToken()
	require.Nil(t, err)

	assert.Equal(t, d.HashToken(token), d.HashToken(token))
	assert.NotEqual(t, string(token), string(d.HashToken(token)))
}

func TestDigestDependsOnSecretKey(t *testing.T) {
	token := user.PasswordResetToken("test-token")

	first := NewKeyedDigest("secret-1").HashToken(token)
	second := NewKeyedDigest("secret-2").HashToken(token)

	assert.NotEqual(t, first, second)
}

func TestDigestDependsOnToken(t *testing.T) {
	d := NewKeyedDigest("test-secret")

	assert.NotEqual(
		t,
		d.HashToken(user.PasswordResetToken("token-1")),
		d.HashToken(user.PasswordResetToken("token-2")),
	)
}
