package dto

import (
	"time"

	"github.com/nathangtg/jangular-auth/internal/auth/domain"
)

type AccountOutput struct {
	ID        int64     `json:"id"`
	Username  string    `json:"username"`
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
}

func NewAccountOutput(acc *domain.Account) AccountOutput {
	return AccountOutput{
		ID:        acc.ID,
		Username:  acc.Username,
		FirstName: acc.FirstName,
		LastName:  acc.LastName,
		Email:     acc.Email,
		CreatedAt: acc.CreatedAt,
	}
}

type LoginEventOutput struct {
	ID            string     `json:"id"`
	IPAddress     string     `json:"ip_address"`
	UserAgent     string     `json:"user_agent"`
	LoginAt       time.Time  `json:"login_at"`
	LogoutAt      *time.Time `json:"logout_at,omitempty"`
	Successful    bool       `json:"successful"`
	FailureReason *string    `json:"failure_reason,omitempty"`
}

func NewLoginEventOutput(e domain.LoginEvent) LoginEventOutput {
	return LoginEventOutput{
		ID:            e.ID,
		IPAddress:     e.IPAddress,
		UserAgent:     e.UserAgent,
		LoginAt:       e.LoginAt,
		LogoutAt:      e.LogoutAt,
		Successful:    e.Successful,
		FailureReason: e.FailureReason,
	}
}

func NewLoginEventOutputs(events []domain.LoginEvent) []LoginEventOutput {
	out := make([]LoginEventOutput, 0, len(events))
	for _, e := range events {
		out = append(out, NewLoginEventOutput(e))
	}

	return out
}
