package repository

import (
	"context"
	"errors"
	"fmt"

	"account-service/internal/domain"
	"account-service/pkg/utils"
	xerrors "account-service/pkg/xerrors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type AccountRepository struct {
	db *pgxpool.Pool
}

func NewAccountRepository(db *pgxpool.Pool) *AccountRepository {
	return &AccountRepository{db: db}
}

const accountColumns = `a.id, c.email, a.first_name, a.last_name, a.security_stamp, a.is_admin, a.created_at, a.updated_at`

func scanAccount(row pgx.Row) (*domain.Account, error) {
	acc := new(domain.Account)
	err := row.Scan(&acc.ID, &acc.Email, &acc.FirstName, &acc.LastName,
		&acc.SecurityStamp, &acc.IsAdmin, &acc.CreatedAt, &acc.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, xerrors.ErrAccountNotFound
		}
		return nil, err
	}
	return acc, nil
}

func (r *AccountRepository) GetByID(ctx context.Context, id string) (*domain.Account, error) {
	row := r.db.QueryRow(ctx, `
		SELECT `+accountColumns+`
		FROM accounts a
		JOIN account_credentials c ON c.account_id = a.id
		WHERE a.id = $1
	`, id)
	return scanAccount(row)
}

func (r *AccountRepository) GetByEmail(ctx context.Context, email string) (*domain.Account, error) {
	row := r.db.QueryRow(ctx, `
		SELECT `+accountColumns+`
		FROM accounts a
		JOIN account_credentials c ON c.account_id = a.id
		WHERE lower(c.email) = $1
	`, utils.NormalizeEmail(email))
	return scanAccount(row)
}

// GetByEmailWithHash is the sign-in lookup; the hash never leaves this layer
// except for verification.
func (r *AccountRepository) GetByEmailWithHash(ctx context.Context, email string) (*domain.Account, string, error) {
	acc := new(domain.Account)
	var hash string
	err := r.db.QueryRow(ctx, `
		SELECT `+accountColumns+`, c.password_hash
		FROM accounts a
		JOIN account_credentials c ON c.account_id = a.id
		WHERE lower(c.email) = $1
	`, utils.NormalizeEmail(email)).Scan(
		&acc.ID, &acc.Email, &acc.FirstName, &acc.LastName,
		&acc.SecurityStamp, &acc.IsAdmin, &acc.CreatedAt, &acc.UpdatedAt, &hash)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, "", xerrors.ErrAccountNotFound
		}
		return nil, "", err
	}
	return acc, hash, nil
}

// Create persists the account and its credential atomically. A unique
// violation on the email index surfaces as ErrEmailTaken so callers can map
// it to the same outcome as the fast-path uniqueness check.
func (r *AccountRepository) Create(ctx context.Context, acc *domain.Account, passwordHash string) (*domain.Account, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback(ctx)

	saved := new(domain.Account)
	saved.Email = acc.Email
	err = tx.QueryRow(ctx, `
		INSERT INTO accounts (id, first_name, last_name, security_stamp, is_admin)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, first_name, last_name, security_stamp, is_admin, created_at, updated_at
	`, acc.ID, acc.FirstName, acc.LastName, acc.SecurityStamp, acc.IsAdmin).Scan(
		&saved.ID, &saved.FirstName, &saved.LastName, &saved.SecurityStamp,
		&saved.IsAdmin, &saved.CreatedAt, &saved.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to insert account: %w", err)
	}

	_, err = tx.Exec(ctx, `
		INSERT INTO account_credentials (account_id, email, password_hash)
		VALUES ($1, $2, $3)
	`, saved.ID, acc.Email, passwordHash)
	if err != nil {
		if xerrors.ParsePGErrorCode(err) == xerrors.PGUniqueViolation {
			return nil, xerrors.ErrEmailTaken
		}
		return nil, fmt.Errorf("failed to insert credentials: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}
	return saved, nil
}

// IsAdmin reports administrator status without loading the whole account.
func (r *AccountRepository) IsAdmin(ctx context.Context, id string) (bool, error) {
	var isAdmin bool
	err := r.db.QueryRow(ctx, `SELECT is_admin FROM accounts WHERE id = $1`, id).Scan(&isAdmin)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return false, xerrors.ErrAccountNotFound
		}
		return false, err
	}
	return isAdmin, nil
}
