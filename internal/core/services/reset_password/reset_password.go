package resetpassword

import (
	e "authd/internal/core/domain/errors"
	"authd/internal/core/domain/logging"
	"authd/internal/core/domain/user"
	"authd/internal/core/services"
	"context"
	"errors"
	"time"
)

type Input struct {
	Token       user.PasswordResetToken
	NewPassword user.RawPassword
}

type Result struct {
	User user.User
}

type service struct {
	log              logging.Logger
	userRepository   user.UserRepository
	passwordResetter user.PasswordResetter
	passwordHasher   user.PasswordHasher
	now              func() time.Time
}

func New(
	log logging.Logger,
	userRepository user.UserRepository,
	passwordResetter user.PasswordResetter,
	passwordHasher user.PasswordHasher,
	now func() time.Time,
) services.Service[Input, Result] {
	if log == nil {
		panic(e.NewNilArgumentError("log"))
	}
	if userRepository == nil {
		panic(e.NewNilArgumentError("userRepository"))
	}
	if passwordResetter == nil {
		panic(e.NewNilArgumentError("passwordResetter"))
	}
	if passwordHasher == nil {
		panic(e.NewNilArgumentError("passwordHasher"))
	}
	if now == nil {
		panic(e.NewNilArgumentError("now"))
	}
	return &service{
		log:              log,
		userRepository:   userRepository,
		passwordResetter: passwordResetter,
		passwordHasher:   passwordHasher,
		now:              now,
	}
}

func (s *service) Run(ctx context.Context, input Input) (result Result, err error) {
	tokenHash := s.passwordResetter.HashToken(input.Token)

	u, err := s.userRepository.GetByResetTokenHash(ctx, tokenHash, s.now())
	if errors.Is(err, context.Canceled) {
		return result, err
	}
	if errors.Is(err, user.ErrInvalidPasswordResetToken) {
		s.log.Info(ctx, "Password reset attempted with an invalid or expired token.")
		return result, err
	}
	if err != nil {
		s.log.Error(
			ctx,
			"Could not look up user by reset token hash.",
			logging.Entry("err", err),
		)
		return result, err
	}

	newPasswordHash, err := s.passwordHasher.HashPassword(input.NewPassword)
	if err != nil {
		s.log.Error(
			ctx,
			"Could not hash new password.",
			logging.Entry("userID", u.ID),
			logging.Entry("err", err),
		)
		return result, err
	}

	// The update is guarded by the token hash, a concurrent consume of the same
	// token makes this report an invalid token instead of applying twice.
	updatedUser, err := s.userRepository.UpdatePasswordByResetToken(ctx, tokenHash, newPasswordHash, s.now())
	if errors.Is(err, context.Canceled) {
		return result, err
	}
	if errors.Is(err, user.ErrInvalidPasswordResetToken) {
		s.log.Info(
			ctx,
			"Password reset token was consumed concurrently.",
			logging.Entry("userID", u.ID),
		)
		return result, err
	}
	if err != nil {
		s.log.Error(
			ctx,
			"Could not update user password.",
			logging.Entry("userID", u.ID),
			logging.Entry("err", err),
		)
		return result, err
	}

	s.log.Info(
		ctx,
		"New password has been successfully set.",
		logging.Entry("userID", updatedUser.ID),
	)
	return Result{User: updatedUser}, nil
}
