package loginwithemail

import (
	c "authd/internal/core/domain/common"
	e "authd/internal/core/domain/errors"
	"authd/internal/core/domain/logging"
	"authd/internal/core/domain/user"
	"authd/internal/core/services"
	"context"
	"errors"
)

type Input struct {
	Email    c.Email
	Password user.RawPassword
}

type Result struct {
	User user.User
}

type service struct {
	log            logging.Logger
	userRepository user.UserRepository
	passwordHasher user.PasswordHasher
}

func New(
	log logging.Logger,
	userRepository user.UserRepository,
	passwordHasher user.PasswordHasher,
) services.Service[Input, Result] {
	if log == nil {
		panic(e.NewNilArgumentError("log"))
	}
	if userRepository == nil {
		panic(e.NewNilArgumentError("userRepository"))
	}
	if passwordHasher == nil {
		panic(e.NewNilArgumentError("passwordHasher"))
	}
	return &service{
		log:            log,
		userRepository: userRepository,
		passwordHasher: passwordHasher,
	}
}

func (s *service) Run(ctx context.Context, input Input) (result Result, err error) {
	u, err := s.userRepository.GetByEmail(ctx, input.Email)
	if errors.Is(err, context.Canceled) {
		return result, err
	}
	if errors.Is(err, user.ErrUserDoesNotExist) {
		// Minimize risk for timing attacks
		s.passwordHasher.HashPassword(input.Password)
		return result, user.ErrUserDoesNotExist
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

	ok, err := s.passwordHasher.ValidatePassword(input.Password, u.PasswordHash)
	if err != nil {
		s.log.Error(
			ctx,
			"Stored password hash is malformed.",
			logging.Entry("userID", u.ID),
			logging.Entry("err", err),
		)
		return result, err
	}
	if !ok {
		return result, user.ErrInvalidCredentials
	}

	s.log.Info(ctx, "User successfully authenticated.", logging.Entry("userID", u.ID))
	return Result{User: u}, nil
}
