package domain

import (
	"errors"

	"github.com/google/uuid"
)

var (
	MessageSuccessRegisterUser = "user registered successfully"
	MessageFailedRegisterUser  = "failed to register user"

	ErrUserAlreadyExists = errors.New("user already exists")
)

type (
	RegisterUserRequest struct {
		Username string `json:"username" validate:"required"`
		Email    string `json:"email" validate:"required,email"`
	}

	RegisterUserResponse struct {
		SessionID  uuid.UUID `json:"-"`
		NewSession bool      `json:"-"`
	}
)
