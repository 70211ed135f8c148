package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/nathangtg/jangular-auth/internal/auth/domain"
)

// LoginHistoryService is the append-only login/logout audit recorder. The
// orchestrator constructs one over its transaction-scoped repository so that
// audit writes commit or roll back with the account mutation they belong to.
type LoginHistoryService struct {
	repo domain.Repository
}

func NewLoginHistoryService(repo domain.Repository) *LoginHistoryService {
	return &LoginHistoryService{repo: repo}
}

// RecordAttempt appends one login event. failureReason is stored as null
// when empty.
func (s *LoginHistoryService) RecordAttempt(ctx context.Context, accountID int64, ip, userAgent string, successful bool, failureReason string, now time.Time) (*domain.LoginEvent, error) {
	event := &domain.LoginEvent{
		ID:         uuid.NewString(),
		AccountID:  accountID,
		IPAddress:  ip,
		UserAgent:  userAgent,
		LoginAt:    now,
		Successful: successful,
	}
	if failureReason != "" {
		event.FailureReason = &failureReason
	}

	if err := s.repo.AppendLoginEvent(ctx, event); err != nil {
		return nil, err
	}

	return event, nil
}

// RecordLogout closes the most recent open session for the account. No open
// session is a no-op, not an error.
func (s *LoginHistoryService) RecordLogout(ctx context.Context, accountID int64, now time.Time) error {
	open, err := s.repo.LatestOpenLoginEvent(ctx, accountID)
	if err != nil {
		return err
	}
	if open == nil {
		return nil
	}

	return s.repo.CloseLoginEvent(ctx, open.ID, now)
}

func (s *LoginHistoryService) History(ctx context.Context, accountID int64) ([]domain.LoginEvent, error) {
	return s.repo.LoginEventsByAccount(ctx, accountID)
}

func (s *LoginHistoryService) HistoryBySuccess(ctx context.Context, accountID int64, successful bool) ([]domain.LoginEvent, error) {
	return s.repo.LoginEventsBySuccess(ctx, accountID, successful)
}

func (s *LoginHistoryService) ActiveSessions(ctx context.Context, accountID int64) ([]domain.LoginEvent, error) {
	return s.repo.OpenSessionsByAccount(ctx, accountID)
}

func (s *LoginHistoryService) HistoryBetween(ctx context.Context, accountID int64, from, to time.Time) ([]domain.LoginEvent, error) {
	return s.repo.LoginEventsBetween(ctx, accountID, from, to)
}
