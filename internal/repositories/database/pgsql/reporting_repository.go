package pgsql

import (
	"context"
	"time"

	"github.com/SscSPs/cafe_ledger/internal/apperrors"
	"github.com/SscSPs/cafe_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/cafe_ledger/internal/core/ports/repositories"
	"github.com/SscSPs/cafe_ledger/internal/utils/accounting"
	"github.com/shopspring/decimal"
)

type PgxReportingRepository struct {
	BaseRepository
}

func newPgxReportingRepository(base BaseRepository) *PgxReportingRepository {
	return &PgxReportingRepository{BaseRepository: base}
}

var _ portsrepo.ReportingRepository = (*PgxReportingRepository)(nil)

// TrialBalanceRows sums every account's lines up to asOf. The cutoff is applied
// inside the outer join so accounts without qualifying lines still appear.
func (r *PgxReportingRepository) TrialBalanceRows(ctx context.Context, asOf *time.Time) ([]domain.TrialBalanceRow, error) {
	pool, err := r.Pool(ctx)
	if err != nil {
		return nil, err
	}

	query := `
		SELECT a.id, a.code, a.name, a.account_type,
		       COALESCE(SUM(t.debit), 0) AS debit,
		       COALESCE(SUM(t.credit), 0) AS credit
		FROM accounts a
		LEFT JOIN (
			SELECT l.account_id, l.debit, l.credit
			FROM journal_lines l
			JOIN journal_entries e ON e.id = l.entry_id
			WHERE $1::date IS NULL OR e.entry_date <= $1::date
		) t ON t.account_id = a.id
		GROUP BY a.id, a.code, a.name, a.account_type
		ORDER BY a.code;
	`
	rows, err := pool.Query(ctx, query, asOf)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query trial balance", err)
	}
	defer rows.Close()

	var result []domain.TrialBalanceRow
	for rows.Next() {
		var row domain.TrialBalanceRow
		var debit, credit decimal.Decimal
		if err := rows.Scan(&row.AccountID, &row.Code, &row.AccountName, &row.AccountType, &debit, &credit); err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan trial balance row", err)
		}
		row.Debit = debit
		row.Credit = credit
		row.Balance = accounting.RawBalance(debit, credit)
		result = append(result, row)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating trial balance rows", err)
	}
	if result == nil {
		result = []domain.TrialBalanceRow{}
	}
	return result, nil
}

// TypeTotals sums lines up to asOf grouped by the account type they were posted to.
func (r *PgxReportingRepository) TypeTotals(ctx context.Context, asOf *time.Time) ([]domain.TypeTotal, error) {
	pool, err := r.Pool(ctx)
	if err != nil {
		return nil, err
	}

	query := `
		SELECT a.account_type, COALESCE(SUM(l.debit), 0), COALESCE(SUM(l.credit), 0)
		FROM journal_lines l
		JOIN journal_entries e ON e.id = l.entry_id
		JOIN accounts a ON a.id = l.account_id
		WHERE $1::date IS NULL OR e.entry_date <= $1::date
		GROUP BY a.account_type;
	`
	rows, err := pool.Query(ctx, query, asOf)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query account type totals", err)
	}
	defer rows.Close()

	var totals []domain.TypeTotal
	for rows.Next() {
		var tt domain.TypeTotal
		if err := rows.Scan(&tt.AccountType, &tt.Debit, &tt.Credit); err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan account type totals", err)
		}
		totals = append(totals, tt)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating account type totals", err)
	}
	return totals, nil
}
