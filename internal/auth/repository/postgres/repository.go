package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/nathangtg/jangular-auth/internal/auth/domain"
)

// DB is the subset of pgxpool.Pool and pgx.Tx the repository needs. pgxmock
// pools satisfy it too.
type DB interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Begin(ctx context.Context) (pgx.Tx, error)
}

type PostgresRepository struct {
	db DB
}

func NewPostgresRepository(db DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// InTx runs fn against a transaction-scoped repository. The rollback after a
// successful commit is a no-op.
func (r *PostgresRepository) InTx(ctx context.Context, fn func(domain.Repository) error) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer tx.Rollback(ctx) //nolint:errcheck

	if err := fn(NewPostgresRepository(tx)); err != nil {
		return err
	}

	return tx.Commit(ctx)
}

const accountColumns = `id, username, first_name, last_name, email, password_hash,
		is_active, locked, failed_attempts, locked_at, last_password_change_at,
		is_deleted, created_at, updated_at`

func (r *PostgresRepository) GetAccountByUsername(ctx context.Context, username string) (*domain.Account, error) {
	query := `
		SELECT ` + accountColumns + `
		FROM users
		WHERE username = $1 AND is_deleted = FALSE
		LIMIT 1;
	`

	return r.scanAccount(r.db.QueryRow(ctx, query, username))
}

func (r *PostgresRepository) GetAccountByEmail(ctx context.Context, email string) (*domain.Account, error) {
	query := `
		SELECT ` + accountColumns + `
		FROM users
		WHERE email = $1 AND is_deleted = FALSE
		LIMIT 1;
	`

	return r.scanAccount(r.db.QueryRow(ctx, query, email))
}

func (r *PostgresRepository) GetAccountByID(ctx context.Context, id int64) (*domain.Account, error) {
	query := `
		SELECT ` + accountColumns + `
		FROM users
		WHERE id = $1 AND is_deleted = FALSE
		LIMIT 1;
	`

	return r.scanAccount(r.db.QueryRow(ctx, query, id))
}

func (r *PostgresRepository) scanAccount(row pgx.Row) (*domain.Account, error) {
	var acc domain.Account
	err := row.Scan(&acc.ID, &acc.Username, &acc.FirstName, &acc.LastName, &acc.Email,
		&acc.PasswordHash, &acc.Active, &acc.Locked, &acc.FailedAttempts, &acc.LockedAt,
		&acc.LastPasswordChangeAt, &acc.Deleted, &acc.CreatedAt, &acc.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}

		return nil, fmt.Errorf("failed to get account: %w", err)
	}

	return &acc, nil
}

func (r *PostgresRepository) CreateAccount(ctx context.Context, acc *domain.Account) error {
	query := `
		INSERT INTO users (username, first_name, last_name, email, password_hash,
			is_active, locked, failed_attempts, locked_at, last_password_change_at,
			is_deleted, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
		RETURNING id;
	`
	err := r.db.QueryRow(ctx, query,
		acc.Username, acc.FirstName, acc.LastName, acc.Email, acc.PasswordHash,
		acc.Active, acc.Locked, acc.FailedAttempts, acc.LockedAt, acc.LastPasswordChangeAt,
		acc.Deleted, acc.CreatedAt, acc.UpdatedAt).Scan(&acc.ID)
	if err != nil {
		return fmt.Errorf("failed to create account: %w", err)
	}

	return nil
}

func (r *PostgresRepository) UpdateAccount(ctx context.Context, acc *domain.Account) error {
	query := `
		UPDATE users
		SET password_hash = $2, is_active = $3, locked = $4, failed_attempts = $5,
			locked_at = $6, last_password_change_at = $7, is_deleted = $8, updated_at = now()
		WHERE id = $1;
	`
	_, err := r.db.Exec(ctx, query,
		acc.ID, acc.PasswordHash, acc.Active, acc.Locked, acc.FailedAttempts,
		acc.LockedAt, acc.LastPasswordChangeAt, acc.Deleted)
	if err != nil {
		return fmt.Errorf("failed to update account: %w", err)
	}

	return nil
}

func (r *PostgresRepository) GetRolesByAccountID(ctx context.Context, accountID int64) ([]domain.Role, error) {
	query := `
		SELECT r.id, r.name, r.description
		FROM roles r
		JOIN user_roles ur ON ur.role_id = r.id
		WHERE ur.user_id = $1
		ORDER BY r.name;
	`
	rows, err := r.db.Query(ctx, query, accountID)
	if err != nil {
		return nil, fmt.Errorf("failed to get roles: %w", err)
	}
	defer rows.Close()

	var roles []domain.Role
	for rows.Next() {
		var role domain.Role
		if err := rows.Scan(&role.ID, &role.Name, &role.Description); err != nil {
			return nil, fmt.Errorf("failed to scan role: %w", err)
		}
		roles = append(roles, role)
	}

	return roles, rows.Err()
}

func (r *PostgresRepository) GetRoleByName(ctx context.Context, name string) (*domain.Role, error) {
	query := `SELECT id, name, description FROM roles WHERE name = $1 LIMIT 1;`

	var role domain.Role
	err := r.db.QueryRow(ctx, query, name).Scan(&role.ID, &role.Name, &role.Description)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}

		return nil, fmt.Errorf("failed to get role: %w", err)
	}

	return &role, nil
}

func (r *PostgresRepository) AddRoleToAccount(ctx context.Context, accountID, roleID int64) error {
	query := `
		INSERT INTO user_roles (user_id, role_id)
		VALUES ($1, $2)
		ON CONFLICT (user_id, role_id) DO NOTHING;
	`
	_, err := r.db.Exec(ctx, query, accountID, roleID)
	if err != nil {
		return fmt.Errorf("failed to assign role: %w", err)
	}

	return nil
}

// EnsureDefaultRoles seeds the role table at startup. Not part of the
// domain.Repository contract.
func (r *PostgresRepository) EnsureDefaultRoles(ctx context.Context, roles []domain.Role) error {
	query := `
		INSERT INTO roles (name, description)
		VALUES ($1, $2)
		ON CONFLICT (name) DO NOTHING;
	`
	for _, role := range roles {
		if _, err := r.db.Exec(ctx, query, role.Name, role.Description); err != nil {
			return fmt.Errorf("failed to seed role %s: %w", role.Name, err)
		}
	}

	return nil
}

func (r *PostgresRepository) AppendPasswordHistory(ctx context.Context, entry *domain.PasswordHistoryEntry) error {
	query := `
		INSERT INTO password_history (id, user_id, password_hash, changed_at, created_at)
		VALUES ($1, $2, $3, $4, $5);
	`
	_, err := r.db.Exec(ctx, query,
		entry.ID, entry.AccountID, entry.PasswordHash, entry.ChangedAt, entry.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to append password history: %w", err)
	}

	return nil
}

func (r *PostgresRepository) RecentPasswordHistory(ctx context.Context, accountID int64, limit int) ([]domain.PasswordHistoryEntry, error) {
	query := `
		SELECT id, user_id, password_hash, changed_at, created_at
		FROM password_history
		WHERE user_id = $1
		ORDER BY changed_at DESC
		LIMIT $2;
	`
	rows, err := r.db.Query(ctx, query, accountID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query password history: %w", err)
	}
	defer rows.Close()

	var entries []domain.PasswordHistoryEntry
	for rows.Next() {
		var e domain.PasswordHistoryEntry
		if err := rows.Scan(&e.ID, &e.AccountID, &e.PasswordHash, &e.ChangedAt, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan password history: %w", err)
		}
		entries = append(entries, e)
	}

	return entries, rows.Err()
}

const loginEventColumns = `id, user_id, ip_address, user_agent, login_time, logout_time,
		successful, failure_reason`

func (r *PostgresRepository) AppendLoginEvent(ctx context.Context, event *domain.LoginEvent) error {
	query := `
		INSERT INTO user_login_history (id, user_id, ip_address, user_agent,
			login_time, logout_time, successful, failure_reason)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8);
	`
	_, err := r.db.Exec(ctx, query,
		event.ID, event.AccountID, event.IPAddress, event.UserAgent,
		event.LoginAt, event.LogoutAt, event.Successful, event.FailureReason)
	if err != nil {
		return fmt.Errorf("failed to append login event: %w", err)
	}

	return nil
}

func (r *PostgresRepository) LatestOpenLoginEvent(ctx context.Context, accountID int64) (*domain.LoginEvent, error) {
	query := `
		SELECT ` + loginEventColumns + `
		FROM user_login_history
		WHERE user_id = $1 AND successful = TRUE AND logout_time IS NULL
		ORDER BY login_time DESC
		LIMIT 1;
	`

	var e domain.LoginEvent
	err := r.db.QueryRow(ctx, query, accountID).Scan(&e.ID, &e.AccountID, &e.IPAddress,
		&e.UserAgent, &e.LoginAt, &e.LogoutAt, &e.Successful, &e.FailureReason)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}

		return nil, fmt.Errorf("failed to get open login event: %w", err)
	}

	return &e, nil
}

func (r *PostgresRepository) CloseLoginEvent(ctx context.Context, eventID string, logoutAt time.Time) error {
	query := `UPDATE user_login_history SET logout_time = $2 WHERE id = $1;`
	_, err := r.db.Exec(ctx, query, eventID, logoutAt)
	if err != nil {
		return fmt.Errorf("failed to close login event: %w", err)
	}

	return nil
}

func (r *PostgresRepository) LoginEventsByAccount(ctx context.Context, accountID int64) ([]domain.LoginEvent, error) {
	query := `
		SELECT ` + loginEventColumns + `
		FROM user_login_history
		WHERE user_id = $1
		ORDER BY login_time DESC;
	`

	return r.queryLoginEvents(ctx, query, accountID)
}

func (r *PostgresRepository) LoginEventsBySuccess(ctx context.Context, accountID int64, successful bool) ([]domain.LoginEvent, error) {
	query := `
		SELECT ` + loginEventColumns + `
		FROM user_login_history
		WHERE user_id = $1 AND successful = $2
		ORDER BY login_time DESC;
	`

	return r.queryLoginEvents(ctx, query, accountID, successful)
}

func (r *PostgresRepository) OpenSessionsByAccount(ctx context.Context, accountID int64) ([]domain.LoginEvent, error) {
	query := `
		SELECT ` + loginEventColumns + `
		FROM user_login_history
		WHERE user_id = $1 AND successful = TRUE AND logout_time IS NULL
		ORDER BY login_time DESC;
	`

	return r.queryLoginEvents(ctx, query, accountID)
}

func (r *PostgresRepository) LoginEventsBetween(ctx context.Context, accountID int64, from, to time.Time) ([]domain.LoginEvent, error) {
	query := `
		SELECT ` + loginEventColumns + `
		FROM user_login_history
		WHERE user_id = $1 AND login_time BETWEEN $2 AND $3
		ORDER BY login_time DESC;
	`

	return r.queryLoginEvents(ctx, query, accountID, from, to)
}

func (r *PostgresRepository) queryLoginEvents(ctx context.Context, query string, args ...any) ([]domain.LoginEvent, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query login events: %w", err)
	}
	defer rows.Close()

	var events []domain.LoginEvent
	for rows.Next() {
		var e domain.LoginEvent
		if err := rows.Scan(&e.ID, &e.AccountID, &e.IPAddress, &e.UserAgent,
			&e.LoginAt, &e.LogoutAt, &e.Successful, &e.FailureReason); err != nil {
			return nil, fmt.Errorf("failed to scan login event: %w", err)
		}
		events = append(events, e)
	}

	return events, rows.Err()
}
