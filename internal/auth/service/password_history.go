package service

import (
	"time"

	"github.com/google/uuid"

	"github.com/nathangtg/jangular-auth/internal/auth/domain"
	autherror "github.com/nathangtg/jangular-auth/internal/errors"
)

// PasswordHistoryGuard prevents reuse of an account's most recent passwords.
type PasswordHistoryGuard struct {
	hasher PasswordHasher
	depth  int
}

func NewPasswordHistoryGuard(hasher PasswordHasher, depth int) *PasswordHistoryGuard {
	return &PasswordHistoryGuard{hasher: hasher, depth: depth}
}

// CheckReuse reports whether candidate matches any of the most recent depth
// entries. Entries must be ordered by ChangedAt descending.
func (g *PasswordHistoryGuard) CheckReuse(candidate string, entries []domain.PasswordHistoryEntry) bool {
	n := len(entries)
	if n > g.depth {
		n = g.depth
	}
	for _, entry := range entries[:n] {
		if g.hasher.Verify(candidate, entry.PasswordHash) {
			return true
		}
	}

	return false
}

// RecordChange rejects a reused password, archives the account's current
// hash as a history entry, then overwrites the account's hash with the new
// one. Archiving happens before the overwrite: after a change the previous
// password is always present, unmodified, in history. The caller appends the
// returned entry and persists the account in the same transaction.
func (g *PasswordHistoryGuard) RecordChange(acc *domain.Account, newPassword string, entries []domain.PasswordHistoryEntry, now time.Time) (*domain.PasswordHistoryEntry, error) {
	if g.CheckReuse(newPassword, entries) {
		return nil, autherror.ErrPasswordReuse
	}

	changedAt := now
	if acc.LastPasswordChangeAt != nil {
		changedAt = *acc.LastPasswordChangeAt
	}
	archived := &domain.PasswordHistoryEntry{
		ID:           uuid.NewString(),
		AccountID:    acc.ID,
		PasswordHash: acc.PasswordHash,
		ChangedAt:    changedAt,
		CreatedAt:    now,
	}

	newHash, err := g.hasher.Hash(newPassword)
	if err != nil {
		return nil, err
	}

	acc.PasswordHash = newHash
	lastChange := now
	acc.LastPasswordChangeAt = &lastChange

	return archived, nil
}
