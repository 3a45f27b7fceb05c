package user

import (
	c "authd/internal/core/domain/common"
	"context"
	"crypto/md5"
	"fmt"
	"io"
	"sync"
	"time"
)

type FakePasswordHasher struct{}

func NewFakePasswordHasher() *FakePasswordHasher {
	return &FakePasswordHasher{}
}

func (h *FakePasswordHasher) HashPassword(password RawPassword) (PasswordHash, error) {
	hash := md5.New()
	io.WriteString(hash, string(password))
	return PasswordHash(fmt.Sprintf("%x", hash.Sum(nil))), nil
}

func (h *FakePasswordHasher) ValidatePassword(password RawPassword, hash PasswordHash) (bool, error) {
	actualHash, err := h.HashPassword(password)
	if err != nil {
		return false, err
	}
	return actualHash == hash, nil
}

type FakePasswordResetter struct {
	Token       PasswordResetToken
	ReturnError bool
}

func NewFakePasswordResetter(token string) *FakePasswordResetter {
	return &FakePasswordResetter{Token: PasswordResetToken(token)}
}

func (r *FakePasswordResetter) GenerateToken() (PasswordResetToken, error) {
	if r.ReturnError {
		return PasswordResetToken(""), fmt.Errorf("could not generate password reset token")
	}
	return r.Token, nil
}

func (r *FakePasswordResetter) HashToken(token PasswordResetToken) PasswordResetTokenHash {
	return PasswordResetTokenHash("#" + string(token))
}

type FakePasswordResetTokenSender struct {
	Sent        []User
	SentTokens  []PasswordResetToken
	ReturnError bool
	lock        sync.Mutex
}

func NewFakePasswordResetTokenSender() *FakePasswordResetTokenSender {
	return &FakePasswordResetTokenSender{}
}

func (s *FakePasswordResetTokenSender) SendPasswordResetToken(
	ctx context.Context,
	u User,
	token PasswordResetToken,
) error {
	if s.ReturnError {
		return fmt.Errorf("could not send password reset token for user %d", u.ID)
	}
	s.lock.Lock()
	defer s.lock.Unlock()
	s.Sent = append(s.Sent, u)
	s.SentTokens = append(s.SentTokens, token)
	return nil
}

func (s *FakePasswordResetTokenSender) SentCount() int {
	return len(s.Sent)
}

func (s *FakePasswordResetTokenSender) LastSentTo() User {
	l := len(s.Sent)
	if l == 0 {
		panic("Sent count is 0.")
	}
	return s.Sent[l-1]
}

type FakeUserRepository struct {
	Users       []User
	ReturnError bool
	lock        sync.Mutex
}

func NewFakeUserRepository() *FakeUserRepository {
	return &FakeUserRepository{Users: make([]User, 0, 10)}
}

func (r *FakeUserRepository) Create(ctx context.Context, input CreateUserInput) (u User, err error) {
	if r.ReturnError {
		return u, fmt.Errorf("could not create user %v", input)
	}
	r.lock.Lock()
	defer r.lock.Unlock()
	maxID := ID(0)
	for _, u := range r.Users {
		if u.Email == input.Email {
			return u, ErrEmailAlreadyExists
		}
		maxID = u.ID
	}
	u = User{
		ID:           maxID + 1,
		Email:        input.Email,
		PasswordHash: input.PasswordHash,
		CreatedAt:    input.CreatedAt,
	}
	r.Users = append(r.Users, u)
	return u, nil
}

func (r *FakeUserRepository) GetByEmail(ctx context.Context, email c.Email) (u User, err error) {
	if r.ReturnError {
		return u, fmt.Errorf("could not get user by email %v", email)
	}
	r.lock.Lock()
	defer r.lock.Unlock()
	for _, u := range r.Users {
		if u.Email == email {
			return u, nil
		}
	}
	return u, ErrUserDoesNotExist
}

func (r *FakeUserRepository) GetByResetTokenHash(
	ctx context.Context,
	hash PasswordResetTokenHash,
	now time.Time,
) (u User, err error) {
	if r.ReturnError {
		return u, fmt.Errorf("could not get user by reset token hash")
	}
	r.lock.Lock()
	defer r.lock.Unlock()
	for _, u := range r.Users {
		if u.PasswordResetTokenHash.IsPresent &&
			u.PasswordResetTokenHash.Value == hash &&
			u.PasswordResetExpiresAt.Value.After(now) {
			return u, nil
		}
	}
	return u, ErrInvalidPasswordResetToken
}

func (r *FakeUserRepository) SetPasswordResetToken(
	ctx context.Context,
	id ID,
	hash PasswordResetTokenHash,
	expiresAt time.Time,
) error {
	if r.ReturnError {
		return fmt.Errorf("could not set password reset token for user %d", id)
	}
	r.lock.Lock()
	defer r.lock.Unlock()
	for ix, u := range r.Users {
		if u.ID == id {
			r.Users[ix].PasswordResetTokenHash = c.NewOptional(hash, true)
			r.Users[ix].PasswordResetExpiresAt = c.NewOptional(expiresAt, true)
			return nil
		}
	}
	return ErrUserDoesNotExist
}

func (r *FakeUserRepository) UpdatePasswordByResetToken(
	ctx context.Context,
	hash PasswordResetTokenHash,
	newPassword PasswordHash,
	now time.Time,
) (u User, err error) {
	if r.ReturnError {
		return u, fmt.Errorf("could not update password by reset token")
	}
	r.lock.Lock()
	defer r.lock.Unlock()
	for ix, u := range r.Users {
		if u.PasswordResetTokenHash.IsPresent &&
			u.PasswordResetTokenHash.Value == hash &&
			u.PasswordResetExpiresAt.Value.After(now) {
			r.Users[ix].PasswordHash = newPassword
			r.Users[ix].PasswordResetTokenHash = c.NewOptional(PasswordResetTokenHash(""), false)
			r.Users[ix].PasswordResetExpiresAt = c.NewOptional(time.Time{}, false)
			return r.Users[ix], nil
		}
	}
	return u, ErrInvalidPasswordResetToken
}
