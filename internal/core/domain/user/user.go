package user

import (
	c "authd/internal/core/domain/common"
	e "authd/internal/core/domain/errors"
	"fmt"
	"time"
)

type ID int64

type PasswordHash string

func (p PasswordHash) String() string {
	return "***"
}

type RawPassword string

func (p RawPassword) String() string {
	return "***"
}

type User struct {
	ID                     ID
	Email                  c.Email
	PasswordHash           PasswordHash
	PasswordResetTokenHash c.Optional[PasswordResetTokenHash]
	PasswordResetExpiresAt c.Optional[time.Time]
	CreatedAt              time.Time
}

func (u *User) Validate() error {
	if u.Email == "" {
		return e.NewInvalidStateError(fmt.Sprintf("email is not set for user %d", u.ID))
	}
	if u.PasswordHash == "" {
		return e.NewInvalidStateError(fmt.Sprintf("password hash is not set for user %d", u.ID))
	}
	if u.PasswordResetTokenHash.IsPresent != u.PasswordResetExpiresAt.IsPresent {
		return e.NewInvalidStateError(
			fmt.Sprintf("password reset token hash and expiry must be set together for user %d", u.ID),
		)
	}
	return nil
}

func (u *User) HasPendingPasswordReset(now time.Time) bool {
	return u.PasswordResetTokenHash.IsPresent && u.PasswordResetExpiresAt.Value.After(now)
}
