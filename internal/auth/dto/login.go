package dto

import autherror "github.com/nathangtg/jangular-auth/internal/errors"

type LoginInput struct {
	Username  string `json:"username"`
	Password  string `json:"password"`
	IPAddress string `json:"-"`
	UserAgent string `json:"-"`
}

func (in LoginInput) Validate() error {
	if in.Username == "" || in.Password == "" {
		return autherror.ErrValidation
	}

	return nil
}

type TokenResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}
