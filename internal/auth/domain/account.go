package domain

import "time"

type Account struct {
	ID                   int64
	Username             string
	FirstName            string
	LastName             string
	Email                string
	PasswordHash         string
	Active               bool
	Locked               bool
	FailedAttempts       int
	LockedAt             *time.Time
	LastPasswordChangeAt *time.Time
	Deleted              bool
	CreatedAt            time.Time
	UpdatedAt            time.Time
}

type Role struct {
	ID          int64
	Name        string
	Description string
}

// PasswordHistoryEntry is append-only. It always holds a hash that was, at
// some point, the account's current password hash.
type PasswordHistoryEntry struct {
	ID           string
	AccountID    int64
	PasswordHash string
	ChangedAt    time.Time
	CreatedAt    time.Time
}

// LoginEvent is append-only except for the single allowed mutation: setting
// LogoutAt on the most recent open event for an account.
type LoginEvent struct {
	ID            string
	AccountID     int64
	IPAddress     string
	UserAgent     string
	LoginAt       time.Time
	LogoutAt      *time.Time
	Successful    bool
	FailureReason *string
}

// Open reports whether the event represents a session that has not been
// closed by a logout.
func (e *LoginEvent) Open() bool {
	return e.Successful && e.LogoutAt == nil
}
