package dto

import (
	"fmt"

	autherror "github.com/nathangtg/jangular-auth/internal/errors"
	"github.com/nathangtg/jangular-auth/pkg/constant"
)

type RegisterInput struct {
	Username        string `json:"username"`
	FirstName       string `json:"first_name"`
	LastName        string `json:"last_name"`
	Email           string `json:"email"`
	Password        string `json:"password"`
	PasswordConfirm string `json:"password_confirm"`
}

func (in RegisterInput) Validate() error {
	if in.Username == "" || in.Email == "" || in.Password == "" {
		return fmt.Errorf("%w: username, email and password are required", autherror.ErrValidation)
	}
	if len(in.Password) < constant.MinPasswordLength {
		return fmt.Errorf("%w: password must be at least %d characters", autherror.ErrValidation, constant.MinPasswordLength)
	}
	if in.PasswordConfirm != "" && in.Password != in.PasswordConfirm {
		return fmt.Errorf("%w: passwords do not match", autherror.ErrValidation)
	}

	return nil
}
