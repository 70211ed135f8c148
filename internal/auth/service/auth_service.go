package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/nathangtg/jangular-auth/internal/auth/domain"
	"github.com/nathangtg/jangular-auth/internal/auth/dto"
	autherror "github.com/nathangtg/jangular-auth/internal/errors"
	"github.com/nathangtg/jangular-auth/pkg/constant"
)

// AuthService composes the credential verifier, token service, lockout guard,
// password history guard and login audit recorder into the login, refresh,
// logout and password-change flows. Every state-changing flow runs inside one
// repository transaction.
type AuthService struct {
	repo            domain.Repository
	tokens          TokenGenerator
	passwords       PasswordHasher
	lockout         *LockoutGuard
	passwordHistory *PasswordHistoryGuard
	clock           domain.Clock
	log             *zap.Logger
}

func NewAuthService(
	repo domain.Repository,
	tokens TokenGenerator,
	passwords PasswordHasher,
	lockout *LockoutGuard,
	passwordHistory *PasswordHistoryGuard,
	clock domain.Clock,
	log *zap.Logger,
) *AuthService {
	if clock == nil {
		clock = domain.SystemClock()
	}
	if log == nil {
		log = zap.NewNop()
	}

	return &AuthService{
		repo:            repo,
		tokens:          tokens,
		passwords:       passwords,
		lockout:         lockout,
		passwordHistory: passwordHistory,
		clock:           clock,
		log:             log,
	}
}

// Login runs the per-attempt state machine: load account, evaluate lock
// state (with lazy auto-unlock), verify credentials, then either issue
// tokens or record the failure. Failed-attempt increments and their audit
// entries must survive the failure they describe, so business failures
// commit the transaction and are surfaced afterwards.
func (s *AuthService) Login(ctx context.Context, input dto.LoginInput) (*dto.TokenResponse, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	now := s.clock.Now()

	var (
		resp  *dto.TokenResponse
		opErr error
	)
	err := s.repo.InTx(ctx, func(repo domain.Repository) error {
		history := NewLoginHistoryService(repo)

		acc, err := repo.GetAccountByUsername(ctx, input.Username)
		if err != nil {
			return err
		}
		if acc == nil {
			opErr = autherror.ErrUserNotFound

			return nil
		}
		// A deactivated account authenticates like an unknown one.
		if !acc.Active {
			opErr = autherror.ErrUserNotFound

			return nil
		}

		if acc.Locked {
			if !s.lockout.CanAutoUnlock(acc, now) {
				opErr = &autherror.AccountLockedError{RetryAfter: s.lockout.RemainingLock(acc, now)}

				return nil
			}
			s.lockout.Unlock(acc)
			if err := repo.UpdateAccount(ctx, acc); err != nil {
				return err
			}
		}

		if !s.passwords.Verify(input.Password, acc.PasswordHash) {
			locked := s.lockout.RecordFailure(acc, now)
			if err := repo.UpdateAccount(ctx, acc); err != nil {
				return err
			}

			reason := "invalid credentials"
			if locked {
				reason = fmt.Sprintf("account locked after %d failed attempts", s.lockout.MaxFailedAttempts())
				s.log.Warn("account locked",
					zap.String("username", acc.Username),
					zap.String("ip", input.IPAddress))
			}
			if _, err := history.RecordAttempt(ctx, acc.ID, input.IPAddress, input.UserAgent, false, reason, now); err != nil {
				return err
			}
			opErr = autherror.ErrInvalidCredentials

			return nil
		}

		s.lockout.RecordSuccess(acc)
		if err := repo.UpdateAccount(ctx, acc); err != nil {
			return err
		}

		roles, err := repo.GetRolesByAccountID(ctx, acc.ID)
		if err != nil {
			return err
		}

		accessToken, err := s.tokens.IssueAccess(acc.ID, acc.Username, roleNames(roles), now)
		if err != nil {
			return err
		}
		refreshToken, err := s.tokens.IssueRefresh(acc.Username, now)
		if err != nil {
			return err
		}

		// A stale open session from a login that never logged out is
		// closed here, keeping at most one open event per account.
		if err := history.RecordLogout(ctx, acc.ID, now); err != nil {
			return err
		}
		if _, err := history.RecordAttempt(ctx, acc.ID, input.IPAddress, input.UserAgent, true, "", now); err != nil {
			return err
		}

		resp = &dto.TokenResponse{AccessToken: accessToken, RefreshToken: refreshToken}

		return nil
	})
	if err != nil {
		return nil, err
	}
	if opErr != nil {
		return nil, opErr
	}

	return resp, nil
}

// Refresh validates a refresh token and reissues an access token for the
// subject's current account id and role set. The refresh token itself is
// not rotated or revoked.
func (s *AuthService) Refresh(ctx context.Context, input dto.RefreshInput) (*dto.RefreshResponse, error) {
	now := s.clock.Now()

	claims, err := s.tokens.Validate(input.RefreshToken, TokenTypeRefresh, now)
	if err != nil {
		return nil, err
	}

	acc, err := s.repo.GetAccountByUsername(ctx, claims.Username())
	if err != nil {
		return nil, err
	}
	if acc == nil || !acc.Active {
		return nil, autherror.ErrUserNotFound
	}

	roles, err := s.repo.GetRolesByAccountID(ctx, acc.ID)
	if err != nil {
		return nil, err
	}

	accessToken, err := s.tokens.IssueAccess(acc.ID, acc.Username, roleNames(roles), now)
	if err != nil {
		return nil, err
	}

	return &dto.RefreshResponse{AccessToken: accessToken}, nil
}

// Logout closes the caller's open session. The access token only has to be
// authentic, not unexpired; it is not invalidated server-side.
func (s *AuthService) Logout(ctx context.Context, accessToken string) error {
	now := s.clock.Now()

	claims, err := s.tokens.ParseExpired(accessToken, now)
	if err != nil {
		return err
	}

	return NewLoginHistoryService(s.repo).RecordLogout(ctx, claims.AccountID, now)
}

// ChangePassword verifies the old password, then delegates to the password
// history guard. History append and account update share one transaction;
// a reuse rejection persists nothing.
func (s *AuthService) ChangePassword(ctx context.Context, accountID int64, input dto.ChangePasswordInput) error {
	if err := input.Validate(); err != nil {
		return err
	}

	now := s.clock.Now()

	return s.repo.InTx(ctx, func(repo domain.Repository) error {
		acc, err := repo.GetAccountByID(ctx, accountID)
		if err != nil {
			return err
		}
		if acc == nil {
			return autherror.ErrUserNotFound
		}

		if !s.passwords.Verify(input.OldPassword, acc.PasswordHash) {
			return autherror.ErrInvalidCredentials
		}

		entries, err := repo.RecentPasswordHistory(ctx, acc.ID, constant.PasswordHistoryDepth)
		if err != nil {
			return err
		}

		archived, err := s.passwordHistory.RecordChange(acc, input.NewPassword, entries, now)
		if err != nil {
			return err
		}

		if err := repo.AppendPasswordHistory(ctx, archived); err != nil {
			return err
		}

		return repo.UpdateAccount(ctx, acc)
	})
}

// Register creates an account with the default USER role and seeds the
// initial hash into password history.
func (s *AuthService) Register(ctx context.Context, input dto.RegisterInput) (*domain.Account, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	now := s.clock.Now()

	var created *domain.Account
	err := s.repo.InTx(ctx, func(repo domain.Repository) error {
		existing, err := repo.GetAccountByUsername(ctx, input.Username)
		if err != nil {
			return err
		}
		if existing != nil {
			return autherror.ErrUsernameTaken
		}

		existing, err = repo.GetAccountByEmail(ctx, input.Email)
		if err != nil {
			return err
		}
		if existing != nil {
			return autherror.ErrEmailAlreadyInUse
		}

		hash, err := s.passwords.Hash(input.Password)
		if err != nil {
			return err
		}

		lastChange := now
		acc := &domain.Account{
			Username:             input.Username,
			FirstName:            input.FirstName,
			LastName:             input.LastName,
			Email:                input.Email,
			PasswordHash:         hash,
			Active:               true,
			LastPasswordChangeAt: &lastChange,
			CreatedAt:            now,
			UpdatedAt:            now,
		}
		if err := repo.CreateAccount(ctx, acc); err != nil {
			return err
		}

		role, err := repo.GetRoleByName(ctx, constant.RoleUser)
		if err != nil {
			return err
		}
		if role == nil {
			return fmt.Errorf("default role %s not found", constant.RoleUser)
		}
		if err := repo.AddRoleToAccount(ctx, acc.ID, role.ID); err != nil {
			return err
		}

		seed := &domain.PasswordHistoryEntry{
			ID:           uuid.NewString(),
			AccountID:    acc.ID,
			PasswordHash: hash,
			ChangedAt:    now,
			CreatedAt:    now,
		}
		if err := repo.AppendPasswordHistory(ctx, seed); err != nil {
			return err
		}

		created = acc

		return nil
	})
	if err != nil {
		return nil, err
	}

	return created, nil
}

func roleNames(roles []domain.Role) []string {
	names := make([]string, 0, len(roles))
	for _, r := range roles {
		names = append(names, r.Name)
	}

	return names
}
