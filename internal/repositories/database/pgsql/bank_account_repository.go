package pgsql

import (
	"context"
	"errors"

	"github.com/SscSPs/cafe_ledger/internal/apperrors"
	"github.com/SscSPs/cafe_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/cafe_ledger/internal/core/ports/repositories"
	"github.com/SscSPs/cafe_ledger/internal/models"
	"github.com/SscSPs/cafe_ledger/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
)

const bankAccountColumns = `id, title, bank_name, holder, account_number, created_at, created_by`

type PgxBankAccountRepository struct {
	BaseRepository
}

func newPgxBankAccountRepository(base BaseRepository) *PgxBankAccountRepository {
	return &PgxBankAccountRepository{BaseRepository: base}
}

var _ portsrepo.BankAccountRepository = (*PgxBankAccountRepository)(nil)

func (r *PgxBankAccountRepository) SaveBankAccount(ctx context.Context, account domain.BankAccount) error {
	pool, err := r.Pool(ctx)
	if err != nil {
		return err
	}
	m := mapping.ToModelBankAccount(account)
	_, err = pool.Exec(ctx, `
		INSERT INTO bank_accounts (`+bankAccountColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7);
	`, m.BankAccountID, m.Title, m.BankName, m.Holder, m.AccountNumber, m.CreatedAt, m.CreatedBy)
	if err != nil {
		return apperrors.NewAppError(500, "failed to save bank account "+m.BankAccountID, err)
	}
	return nil
}

func (r *PgxBankAccountRepository) FindBankAccountByID(ctx context.Context, bankAccountID string) (*domain.BankAccount, error) {
	pool, err := r.Pool(ctx)
	if err != nil {
		return nil, err
	}
	rows, err := pool.Query(ctx, `SELECT `+bankAccountColumns+` FROM bank_accounts WHERE id = $1;`, bankAccountID)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query bank account", err)
	}
	m, err := pgx.CollectExactlyOneRow(rows, pgx.RowToStructByName[models.BankAccount])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFoundError("bank account " + bankAccountID + " not found")
		}
		return nil, apperrors.NewAppError(500, "failed to scan bank account", err)
	}
	acc := mapping.ToDomainBankAccount(m)
	return &acc, nil
}

func (r *PgxBankAccountRepository) ListBankAccounts(ctx context.Context) ([]domain.BankAccount, error) {
	pool, err := r.Pool(ctx)
	if err != nil {
		return nil, err
	}
	rows, err := pool.Query(ctx, `SELECT `+bankAccountColumns+` FROM bank_accounts ORDER BY title, id;`)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to list bank accounts", err)
	}
	ms, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.BankAccount])
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to scan bank accounts", err)
	}
	out := make([]domain.BankAccount, len(ms))
	for i, m := range ms {
		out[i] = mapping.ToDomainBankAccount(m)
	}
	return out, nil
}
