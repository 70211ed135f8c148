package domain

//go:generate mockgen -destination=../../mocks/mock_repository.go -package=mocks github.com/nathangtg/jangular-auth/internal/auth/domain Repository

import (
	"context"
	"time"
)

// Repository is the persistence collaborator for the authentication core.
// Lookup methods return (nil, nil) when no row matches.
type Repository interface {
	GetAccountByUsername(ctx context.Context, username string) (*Account, error)
	GetAccountByEmail(ctx context.Context, email string) (*Account, error)
	GetAccountByID(ctx context.Context, id int64) (*Account, error)
	CreateAccount(ctx context.Context, account *Account) error
	UpdateAccount(ctx context.Context, account *Account) error

	// Roles are loaded on demand through this accessor, never implicitly
	// with the account row.
	GetRolesByAccountID(ctx context.Context, accountID int64) ([]Role, error)
	GetRoleByName(ctx context.Context, name string) (*Role, error)
	AddRoleToAccount(ctx context.Context, accountID, roleID int64) error

	AppendPasswordHistory(ctx context.Context, entry *PasswordHistoryEntry) error
	RecentPasswordHistory(ctx context.Context, accountID int64, limit int) ([]PasswordHistoryEntry, error)

	AppendLoginEvent(ctx context.Context, event *LoginEvent) error
	LatestOpenLoginEvent(ctx context.Context, accountID int64) (*LoginEvent, error)
	CloseLoginEvent(ctx context.Context, eventID string, logoutAt time.Time) error
	LoginEventsByAccount(ctx context.Context, accountID int64) ([]LoginEvent, error)
	LoginEventsBySuccess(ctx context.Context, accountID int64, successful bool) ([]LoginEvent, error)
	OpenSessionsByAccount(ctx context.Context, accountID int64) ([]LoginEvent, error)
	LoginEventsBetween(ctx context.Context, accountID int64, from, to time.Time) ([]LoginEvent, error)

	// InTx runs fn against a transaction-scoped Repository. fn returning an
	// error rolls the transaction back.
	InTx(ctx context.Context, fn func(Repository) error) error
}
