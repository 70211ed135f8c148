package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nathangtg/jangular-auth/internal/auth/domain"
)

func TestLockoutGuard_RecordFailure(t *testing.T) {
	g := NewLockoutGuard(5, 15*time.Minute)
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	acc := &domain.Account{ID: 1, Username: "alice"}

	// Each failure below the threshold increments by exactly one and
	// leaves the account unlocked.
	for i := 1; i < 5; i++ {
		locked := g.RecordFailure(acc, now)
		assert.False(t, locked)
		assert.Equal(t, i, acc.FailedAttempts)
		assert.False(t, acc.Locked)
		assert.Nil(t, acc.LockedAt)
	}

	// The fifth failure crosses the threshold in the same operation.
	locked := g.RecordFailure(acc, now)
	assert.True(t, locked)
	assert.True(t, acc.Locked)
	assert.Equal(t, 5, acc.FailedAttempts)
	require.NotNil(t, acc.LockedAt)
	assert.Equal(t, now, *acc.LockedAt)

	// Further failures on an already-locked account do not re-lock.
	locked = g.RecordFailure(acc, now.Add(time.Minute))
	assert.False(t, locked)
	assert.Equal(t, now, *acc.LockedAt)
}

func TestLockoutGuard_RecordSuccess(t *testing.T) {
	g := NewLockoutGuard(5, 15*time.Minute)
	acc := &domain.Account{FailedAttempts: 3}

	g.RecordSuccess(acc)
	assert.Equal(t, 0, acc.FailedAttempts)
}

func TestLockoutGuard_Unlock(t *testing.T) {
	g := NewLockoutGuard(5, 15*time.Minute)
	lockedAt := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	acc := &domain.Account{Locked: true, LockedAt: &lockedAt, FailedAttempts: 5}

	g.Unlock(acc)
	assert.False(t, acc.Locked)
	assert.Nil(t, acc.LockedAt)
	assert.Equal(t, 0, acc.FailedAttempts)
}

func TestLockoutGuard_CanAutoUnlock(t *testing.T) {
	g := NewLockoutGuard(5, 15*time.Minute)
	lockedAt := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		acc  *domain.Account
		now  time.Time
		want bool
	}{
		{
			name: "not locked",
			acc:  &domain.Account{},
			now:  lockedAt.Add(time.Hour),
			want: false,
		},
		{
			name: "inside lock window",
			acc:  &domain.Account{Locked: true, LockedAt: &lockedAt},
			now:  lockedAt.Add(10 * time.Minute),
			want: false,
		},
		{
			name: "exactly at window end",
			acc:  &domain.Account{Locked: true, LockedAt: &lockedAt},
			now:  lockedAt.Add(15 * time.Minute),
			want: false,
		},
		{
			name: "after window",
			acc:  &domain.Account{Locked: true, LockedAt: &lockedAt},
			now:  lockedAt.Add(16 * time.Minute),
			want: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, g.CanAutoUnlock(tt.acc, tt.now))
		})
	}
}

func TestLockoutGuard_RemainingLock(t *testing.T) {
	g := NewLockoutGuard(5, 15*time.Minute)
	lockedAt := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	acc := &domain.Account{Locked: true, LockedAt: &lockedAt}

	assert.Equal(t, 5*time.Minute, g.RemainingLock(acc, lockedAt.Add(10*time.Minute)))
	assert.Equal(t, time.Duration(0), g.RemainingLock(acc, lockedAt.Add(20*time.Minute)))
	assert.Equal(t, time.Duration(0), g.RemainingLock(&domain.Account{}, lockedAt))
}
