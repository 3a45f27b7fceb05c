package services

import (
	"authd/internal/app/deps"
	"authd/internal/core/services"
	loginwithemail "authd/internal/core/services/log_in_with_email"
	resetpassword "authd/internal/core/services/reset_password"
	sendpasswordresettoken "authd/internal/core/services/send_password_reset_token"
	signupwithemail "authd/internal/core/services/sign_up_with_email"
)

type Services struct {
	SignUpWithEmail        services.Service[signupwithemail.Input, signupwithemail.Result]
	LogInWithEmail         services.Service[loginwithemail.Input, loginwithemail.Result]
	SendPasswordResetToken services.Service[sendpasswordresettoken.Input, sendpasswordresettoken.Result]
	ResetPassword          services.Service[resetpassword.Input, resetpassword.Result]
}

func InitServices(deps *deps.Deps) *Services {
	s := &Services{}

	s.SignUpWithEmail = signupwithemail.New(
		deps.Logger,
		deps.UserRepository,
		deps.PasswordHasher,
		deps.Now,
	)
	s.LogInWithEmail = loginwithemail.New(
		deps.Logger,
		deps.UserRepository,
		deps.PasswordHasher,
	)
	s.SendPasswordResetToken = sendpasswordresettoken.New(
		deps.Logger,
		deps.UserRepository,
		deps.PasswordResetter,
		deps.PasswordResetTokenSender,
		deps.Config.PasswordResetValidDuration,
		deps.Now,
	)
	s.ResetPassword = resetpassword.New(
		deps.Logger,
		deps.UserRepository,
		deps.PasswordResetter,
		deps.PasswordHasher,
		deps.Now,
	)

	return s
}
