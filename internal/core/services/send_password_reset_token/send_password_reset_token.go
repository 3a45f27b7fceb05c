package sendpasswordresettoken

import (
	c "authd/internal/core/domain/common"
	e "authd/internal/core/domain/errors"
	"authd/internal/core/domain/logging"
	"authd/internal/core/domain/user"
	"authd/internal/core/services"
	"context"
	"errors"
	"time"
)

type Input struct {
	Email c.Email
}

type Result struct {
	// Token is only rendered back to the client in test mode.
	Token user.PasswordResetToken
}

type service struct {
	log              logging.Logger
	userRepository   user.UserRepository
	passwordResetter user.PasswordResetter
	tokenSender      user.PasswordResetTokenSender
	validDuration    time.Duration
	now              func() time.Time
}

func New(
	log logging.Logger,
	userRepository user.UserRepository,
	passwordResetter user.PasswordResetter,
	tokenSender user.PasswordResetTokenSender,
	validDuration time.Duration,
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
	if tokenSender == nil {
		panic(e.NewNilArgumentError("tokenSender"))
	}
	if now == nil {
		panic(e.NewNilArgumentError("now"))
	}
	return &service{
		log:              log,
		userRepository:   userRepository,
		passwordResetter: passwordResetter,
		tokenSender:      tokenSender,
		validDuration:    validDuration,
		now:              now,
	}
}

func (s *service) Run(ctx context.Context, input Input) (result Result, err error) {
	u, err := s.userRepository.GetByEmail(ctx, input.Email)
	if errors.Is(err, context.Canceled) {
		return result, err
	}
	if errors.Is(err, user.ErrUserDoesNotExist) {
		s.log.Info(
			ctx,
			"Password reset requested for unknown email.",
			logging.Entry("email", input.Email),
		)
		return result, err
	}
	if err != nil {
		s.log.Error(
			ctx,
			"Could not get user by email.",
			logging.Entry("email", input.Email),
			logging.Entry("err", err),
		)
		return result, err
	}

	token, err := s.passwordResetter.GenerateToken()
	if err != nil {
		s.log.Error(
			ctx,
			"Could not generate password reset token.",
			logging.Entry("userID", u.ID),
			logging.Entry("err", err),
		)
		return result, err
	}

	// Overwrites any pending token, the previous one silently stops matching.
	expiresAt := s.now().Add(s.validDuration)
	err = s.userRepository.SetPasswordResetToken(ctx, u.ID, s.passwordResetter.HashToken(token), expiresAt)
	if errors.Is(err, context.Canceled) {
		return result, err
	}
	if err != nil {
		s.log.Error(
			ctx,
			"Could not store password reset token hash.",
			logging.Entry("userID", u.ID),
			logging.Entry("err", err),
		)
		return result, err
	}

	if err := s.tokenSender.SendPasswordResetToken(ctx, u, token); err != nil {
		s.log.Error(
			ctx,
			"Could not send password reset token.",
			logging.Entry("userID", u.ID),
			logging.Entry("err", err),
		)
		return result, user.ErrPasswordResetTokenNotSent
	}

	s.log.Info(
		ctx,
		"Password reset token has been sent.",
		logging.Entry("userID", u.ID),
		logging.Entry("expiresAt", expiresAt),
	)
	return Result{Token: token}, nil
}
