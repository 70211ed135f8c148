package dto

import (
	"fmt"

	autherror "github.com/nathangtg/jangular-auth/internal/errors"
	"github.com/nathangtg/jangular-auth/pkg/constant"
)

type ChangePasswordInput struct {
	OldPassword string `json:"old_password"`
	NewPassword string `json:"new_password"`
}

func (in ChangePasswordInput) Validate() error {
	if in.OldPassword == "" || in.NewPassword == "" {
		return fmt.Errorf("%w: old and new passwords are required", autherror.ErrValidation)
	}
	if len(in.NewPassword) < constant.MinPasswordLength {
		return fmt.Errorf("%w: password must be at least %d characters", autherror.ErrValidation, constant.MinPasswordLength)
	}

	return nil
}
