package user

import "context"

// PasswordResetToken is transient: it is sent to the user once and never
// persisted, only its keyed digest is.
type PasswordResetToken string

func (t PasswordResetToken) String() string {
	return "***"
}

type PasswordResetTokenHash string

type PasswordResetter interface {
	GenerateToken() (PasswordResetToken, error)
	// HashToken is a deterministic keyed digest, so the record store can match
	// a candidate token by direct lookup instead of scanning.
	HashToken(token PasswordResetToken) PasswordResetTokenHash
}

type PasswordResetTokenSender interface {
	SendPasswordResetToken(ctx context.Context, u User, token PasswordResetToken) error
}
