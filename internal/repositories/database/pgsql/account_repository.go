package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/SscSPs/cafe_ledger/internal/apperrors"
	"github.com/SscSPs/cafe_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/cafe_ledger/internal/core/ports/repositories"
	"github.com/SscSPs/cafe_ledger/internal/models"
	"github.com/SscSPs/cafe_ledger/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

const accountColumns = `id, code, name, account_type, parent_id, is_active, created_at, created_by, last_updated_at, last_updated_by`

type PgxAccountRepository struct {
	BaseRepository
}

// newPgxAccountRepository creates a new repository for account data.
func newPgxAccountRepository(base BaseRepository) *PgxAccountRepository {
	return &PgxAccountRepository{BaseRepository: base}
}

// Ensure PgxAccountRepository implements portsrepo.AccountRepositoryFacade
var _ portsrepo.AccountRepositoryFacade = (*PgxAccountRepository)(nil)

// SaveAccount inserts a new account.
func (r *PgxAccountRepository) SaveAccount(ctx context.Context, account domain.Account) error {
	pool, err := r.Pool(ctx)
	if err != nil {
		return err
	}
	m := mapping.ToModelAccount(account)

	query := `
		INSERT INTO accounts (` + accountColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10);
	`
	_, err = pool.Exec(ctx, query,
		m.AccountID,
		m.Code,
		m.Name,
		m.AccountType,
		m.ParentAccountID,
		m.IsActive,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		switch pgErrorCode(err) {
		case pgUniqueViolation:
			return fmt.Errorf("%w: account with code %s already exists", apperrors.ErrDuplicate, m.Code)
		case pgForeignKeyViolation:
			return apperrors.NewValidationError("parent account %s does not exist", account.ParentAccountID)
		}
		return apperrors.NewAppError(500, "failed to save account "+m.AccountID, err)
	}
	return nil
}

// FindAccountByID retrieves an account by its ID.
func (r *PgxAccountRepository) FindAccountByID(ctx context.Context, accountID string) (*domain.Account, error) {
	return r.findOne(ctx, `SELECT `+accountColumns+` FROM accounts WHERE id = $1;`, accountID)
}

// FindAccountByCode retrieves an account by its chart code.
func (r *PgxAccountRepository) FindAccountByCode(ctx context.Context, code string) (*domain.Account, error) {
	return r.findOne(ctx, `SELECT `+accountColumns+` FROM accounts WHERE code = $1;`, code)
}

func (r *PgxAccountRepository) findOne(ctx context.Context, query string, arg string) (*domain.Account, error) {
	pool, err := r.Pool(ctx)
	if err != nil {
		return nil, err
	}
	rows, err := pool.Query(ctx, query, arg)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query account", err)
	}
	m, err := pgx.CollectExactlyOneRow(rows, pgx.RowToStructByName[models.Account])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFoundError("account " + arg + " not found")
		}
		return nil, apperrors.NewAppError(500, "failed to scan account", err)
	}
	acc := mapping.ToDomainAccount(m)
	return &acc, nil
}

// FindAccountsByIDs retrieves multiple accounts by their IDs.
func (r *PgxAccountRepository) FindAccountsByIDs(ctx context.Context, accountIDs []string) (map[string]domain.Account, error) {
	if len(accountIDs) == 0 {
		return map[string]domain.Account{}, nil
	}
	pool, err := r.Pool(ctx)
	if err != nil {
		return nil, err
	}

	rows, err := pool.Query(ctx, `SELECT `+accountColumns+` FROM accounts WHERE id = ANY($1);`, accountIDs)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query accounts by IDs", err)
	}
	ms, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.Account])
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to scan accounts", err)
	}

	accounts := make(map[string]domain.Account, len(ms))
	for _, m := range ms {
		accounts[m.AccountID] = mapping.ToDomainAccount(m)
	}
	return accounts, nil
}

// ListAccounts retrieves the whole chart ordered by code, inactive accounts included.
func (r *PgxAccountRepository) ListAccounts(ctx context.Context) ([]domain.Account, error) {
	pool, err := r.Pool(ctx)
	if err != nil {
		return nil, err
	}
	rows, err := pool.Query(ctx, `SELECT `+accountColumns+` FROM accounts ORDER BY code;`)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to list accounts", err)
	}
	ms, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.Account])
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to scan accounts", err)
	}
	return mapping.ToDomainAccountSlice(ms), nil
}

// UpdateAccount updates the name and parent of an account.
func (r *PgxAccountRepository) UpdateAccount(ctx context.Context, account domain.Account) error {
	pool, err := r.Pool(ctx)
	if err != nil {
		return err
	}
	return execAccountUpdate(ctx, pool, account)
}

// ReparentAccount locks the whole chart so concurrent moves serialize and each
// check sees every previously committed parent.
func (r *PgxAccountRepository) ReparentAccount(ctx context.Context, account domain.Account, check func(chart []domain.Account) error) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	rows, err := tx.Query(ctx, `SELECT `+accountColumns+` FROM accounts ORDER BY id FOR UPDATE;`)
	if err != nil {
		return apperrors.NewAppError(500, "failed to lock accounts", err)
	}
	ms, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.Account])
	if err != nil {
		return apperrors.NewAppError(500, "failed to scan accounts", err)
	}
	if err := check(mapping.ToDomainAccountSlice(ms)); err != nil {
		return err
	}

	if err := execAccountUpdate(ctx, tx, account); err != nil {
		return err
	}
	return r.Commit(ctx, tx)
}

type execer interface {
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
}

func execAccountUpdate(ctx context.Context, db execer, account domain.Account) error {
	m := mapping.ToModelAccount(account)

	query := `
		UPDATE accounts
		SET name = $2, parent_id = $3, last_updated_at = $4, last_updated_by = $5
		WHERE id = $1;
	`
	tag, err := db.Exec(ctx, query, m.AccountID, m.Name, m.ParentAccountID, m.LastUpdatedAt, m.LastUpdatedBy)
	if err != nil {
		if pgErrorCode(err) == pgForeignKeyViolation {
			return apperrors.NewValidationError("parent account %s does not exist", account.ParentAccountID)
		}
		return apperrors.NewAppError(500, "failed to update account "+m.AccountID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError("account " + m.AccountID + " not found")
	}
	return nil
}

// DeactivateAccount sets is_active to false.
func (r *PgxAccountRepository) DeactivateAccount(ctx context.Context, accountID string, userID string, now time.Time) error {
	pool, err := r.Pool(ctx)
	if err != nil {
		return err
	}
	query := `
		UPDATE accounts
		SET is_active = FALSE, last_updated_at = $2, last_updated_by = $3
		WHERE id = $1;
	`
	tag, err := pool.Exec(ctx, query, accountID, now, userID)
	if err != nil {
		return apperrors.NewAppError(500, "failed to deactivate account "+accountID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError("account " + accountID + " not found")
	}
	return nil
}
