package service

import (
	"time"

	"github.com/nathangtg/jangular-auth/internal/auth/domain"
)

// LockoutGuard is the per-account failed-attempt counter and lock state
// machine. It mutates the account in memory only; the orchestrator persists
// the result inside its transaction.
type LockoutGuard struct {
	maxFailedAttempts int
	lockDuration      time.Duration
}

func NewLockoutGuard(maxFailedAttempts int, lockDuration time.Duration) *LockoutGuard {
	if maxFailedAttempts < 1 {
		maxFailedAttempts = 1
	}

	return &LockoutGuard{
		maxFailedAttempts: maxFailedAttempts,
		lockDuration:      lockDuration,
	}
}

func (g *LockoutGuard) MaxFailedAttempts() int { return g.maxFailedAttempts }

// RecordFailure increments the failed-attempt counter and, when the
// increment crosses the threshold, transitions the account to locked in the
// same operation. It reports whether this failure caused the lock.
func (g *LockoutGuard) RecordFailure(acc *domain.Account, now time.Time) bool {
	acc.FailedAttempts++
	if acc.FailedAttempts >= g.maxFailedAttempts && !acc.Locked {
		acc.Locked = true
		lockedAt := now
		acc.LockedAt = &lockedAt

		return true
	}

	return false
}

// RecordSuccess resets the counter. The account must already be unlocked;
// the orchestrator runs the auto-unlock check first.
func (g *LockoutGuard) RecordSuccess(acc *domain.Account) {
	acc.FailedAttempts = 0
}

// Unlock transitions the account to unlocked and resets the counter.
func (g *LockoutGuard) Unlock(acc *domain.Account) {
	acc.Locked = false
	acc.LockedAt = nil
	acc.FailedAttempts = 0
}

// CanAutoUnlock reports whether the lock window has elapsed. There is no
// background sweep; this is evaluated lazily on the next login attempt.
func (g *LockoutGuard) CanAutoUnlock(acc *domain.Account, now time.Time) bool {
	if !acc.Locked || acc.LockedAt == nil {
		return false
	}

	return now.After(acc.LockedAt.Add(g.lockDuration))
}

// RemainingLock returns how long until the account is eligible for
// automatic unlock, zero if it is not locked.
func (g *LockoutGuard) RemainingLock(acc *domain.Account, now time.Time) time.Duration {
	if !acc.Locked || acc.LockedAt == nil {
		return 0
	}

	remaining := acc.LockedAt.Add(g.lockDuration).Sub(now)
	if remaining < 0 {
		return 0
	}

	return remaining
}
