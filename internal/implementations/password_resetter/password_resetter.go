package passwordresetter

import (
	"authd/internal/core/domain/user"
	"crypto/hmac"
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
)

// Token length in bytes before encoding.
const tokenEntropyBytes = 32

// KeyedDigest generates random reset tokens and digests them for storage. The
// digest is deterministic, keyed with the service secret, so the record store
// matches a candidate token by direct lookup. Unguessability comes from the
// token's own 256 bits of entropy, not from a per-record salt, and a near-miss
// candidate never compares against stored hashes one by one.
type KeyedDigest struct {
	secretKey []byte
}

func NewKeyedDigest(secretKey string) *KeyedDigest {
	return &KeyedDigest{secretKey: []byte(secretKey)}
}

func (d *KeyedDigest) GenerateToken() (user.PasswordResetToken, error) {
	raw := make([]byte, tokenEntropyBytes)
	if _, err := rand.Read(raw); err != nil {
		return user.PasswordResetToken(""), err
	}
	return user.PasswordResetToken(base64.RawURLEncoding.EncodeToString(raw)), nil
}

func (d *KeyedDigest) HashToken(token user.PasswordResetToken) user.PasswordResetTokenHash {
	mac := hmac.New(sha256.New, d.secretKey)
	mac.Write([]byte(token))
	return user.PasswordResetTokenHash(base64.RawURLEncoding.EncodeToString(mac.Sum(nil)))
}
