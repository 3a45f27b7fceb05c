package handlers

import (
	c "authd/internal/core/domain/common"
	"authd/internal/core/domain/user"
	"authd/internal/core/services"
	sendpasswordresettoken "authd/internal/core/services/send_password_reset_token"
	"encoding/json"
	"errors"
	"io"
	"net/http"

	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/go-ozzo/ozzo-validation/is"
)

type SendPasswordResetToken struct {
	service    services.Service[sendpasswordresettoken.Input, sendpasswordresettoken.Result]
	isTestMode bool
}

func NewSendPasswordResetToken(
	service services.Service[sendpasswordresettoken.Input, sendpasswordresettoken.Result],
	isTestMode bool,
) *SendPasswordResetToken {
	return &SendPasswordResetToken{service: service, isTestMode: isTestMode}
}

type SendPasswordResetTokenInput struct {
	Email string `json:"email"`
}

func (i *SendPasswordResetTokenInput) FromJSON(r io.Reader) error {
	e := json.NewDecoder(r)
	return e.Decode(i)
}

func (i SendPasswordResetTokenInput) Validate() error {
	return validation.ValidateStruct(&i,
		validation.Field(&i.Email, validation.Required, is.Email, validation.Length(0, 512)),
	)
}

func (s *SendPasswordResetToken) ServeHTTP(rw http.ResponseWriter, r *http.Request) {
	input := SendPasswordResetTokenInput{}
	if err := input.FromJSON(r.Body); err != nil {
		renderErrorResponse(rw, "invalid request data", http.StatusBadRequest)
		return
	}
	if err := input.Validate(); err != nil {
		renderResponse(rw, err, http.StatusBadRequest)
		return
	}

	result, err := s.service.Run(
		r.Context(),
		sendpasswordresettoken.Input{Email: c.NewEmail(input.Email)},
	)
	if errors.Is(err, user.ErrUserDoesNotExist) {
		renderErrorResponse(rw, "user not found", http.StatusNotFound)
		return
	}
	if errors.Is(err, user.ErrPasswordResetTokenNotSent) {
		renderErrorResponse(rw, "could not send password reset email", http.StatusBadGateway)
		return
	}
	if err != nil {
		renderErrorResponse(rw, "internal error", http.StatusInternalServerError)
		return
	}

	if s.isTestMode {
		rw.Header().Set("x-test-password-reset-token", string(result.Token))
	}
	renderResponse(rw, struct{}{}, http.StatusOK)
}
