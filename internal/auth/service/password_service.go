package service

//go:generate mockgen -destination=../../mocks/mock_password_hasher.go -package=mocks github.com/nathangtg/jangular-auth/internal/auth/service PasswordHasher

import (
	"golang.org/x/crypto/bcrypt"

	"github.com/nathangtg/jangular-auth/pkg/constant"
)

type PasswordHasher interface {
	Hash(plaintext string) (string, error)
	Verify(plaintext, digest string) bool
}

// PasswordService hashes and verifies credentials with bcrypt. The plaintext
// never leaves this type: it is neither returned nor logged.
type PasswordService struct {
	cost int
}

func NewPasswordService(cost int) *PasswordService {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = constant.DefaultBcryptCost
	}

	return &PasswordService{cost: cost}
}

func (s *PasswordService) Hash(plaintext string) (string, error) {
	digest, err := bcrypt.GenerateFromPassword([]byte(plaintext), s.cost)
	if err != nil {
		return "", err
	}

	return string(digest), nil
}

// Verify reports whether plaintext matches digest. A mismatch is not an
// error; callers decide the consequence.
func (s *PasswordService) Verify(plaintext, digest string) bool {
	return bcrypt.CompareHashAndPassword([]byte(digest), []byte(plaintext)) == nil
}
