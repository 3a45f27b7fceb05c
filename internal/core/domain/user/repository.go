package user

import (
	c "authd/internal/core/domain/common"
	"context"
	"time"
)

type CreateUserInput struct {
	Email        c.Email
	PasswordHash PasswordHash
	CreatedAt    time.Time
}

type UserRepository interface {
	// Create enforces email uniqueness at the store boundary and returns
	// ErrEmailAlreadyExists on a duplicate.
	Create(ctx context.Context, input CreateUserInput) (User, error)
	GetByEmail(ctx context.Context, email c.Email) (User, error)
	// GetByResetTokenHash only matches records whose reset token expiry is
	// strictly after now. Absent and expired are both ErrInvalidPasswordResetToken.
	GetByResetTokenHash(ctx context.Context, hash PasswordResetTokenHash, now time.Time) (User, error)
	// SetPasswordResetToken writes the hash and expiry together, overwriting any
	// pending token (at most one live reset token per user).
	SetPasswordResetToken(
		ctx context.Context,
		id ID,
		hash PasswordResetTokenHash,
		expiresAt time.Time,
	) error
	// UpdatePasswordByResetToken sets the new password hash and clears both
	// reset token fields in one atomic update, guarded by the token hash and an
	// unexpired expiry. ErrInvalidPasswordResetToken when no record matches.
	UpdatePasswordByResetToken(
		ctx context.Context,
		hash PasswordResetTokenHash,
		newPassword PasswordHash,
		now time.Time,
	) (User, error)
}
