package handlers

import (
	c "authd/internal/core/domain/common"
	"authd/internal/core/domain/user"
	"authd/internal/core/services"
	loginwithemail "authd/internal/core/services/log_in_with_email"
	"encoding/json"
	"errors"
	"io"
	"net/http"

	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/go-ozzo/ozzo-validation/is"
)

type LogInWithEmail struct {
	service services.Service[loginwithemail.Input, loginwithemail.Result]
}

func NewLogInWithEmail(
	service services.Service[loginwithemail.Input, loginwithemail.Result],
) *LogInWithEmail {
	return &LogInWithEmail{service: service}
}

type LogInWithEmailInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LogInWithEmailResult struct {
	Email string `json:"email"`
}

func (i *LogInWithEmailInput) FromJSON(r io.Reader) error {
	e := json.NewDecoder(r)
	return e.Decode(i)
}

func (i LogInWithEmailInput) Validate() error {
	return validation.ValidateStruct(&i,
		validation.Field(&i.Email, validation.Required, is.Email, validation.Length(0, 512)),
		validation.Field(&i.Password, validation.Required, validation.Length(0, 512)),
	)
}

func (s *LogInWithEmail) ServeHTTP(rw http.ResponseWriter, r *http.Request) {
	input := LogInWithEmailInput{}
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
		loginwithemail.Input{Email: c.NewEmail(input.Email), Password: user.RawPassword(input.Password)},
	)
	// "not found" and "wrong password" are deliberately distinct responses,
	// matching the behavior this service replaces.
	if errors.Is(err, user.ErrUserDoesNotExist) {
		renderErrorResponse(rw, "user not found", http.StatusNotFound)
		return
	}
	if errors.Is(err, user.ErrInvalidCredentials) {
		renderErrorResponse(rw, "incorrect password", http.StatusUnauthorized)
		return
	}
	if err != nil {
		renderErrorResponse(rw, "internal error", http.StatusInternalServerError)
		return
	}

	renderResponse(rw, LogInWithEmailResult{Email: string(result.User.Email)}, http.StatusOK)
}
