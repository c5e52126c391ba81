package pgsql

import (
	"context"
	"errors"
	"strconv"

	"github.com/SscSPs/cafe_ledger/internal/apperrors"
	"github.com/SscSPs/cafe_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/cafe_ledger/internal/core/ports/repositories"
	"github.com/SscSPs/cafe_ledger/internal/models"
	"github.com/SscSPs/cafe_ledger/internal/utils/mapping"
	"github.com/SscSPs/cafe_ledger/internal/utils/pagination"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

type PgxPaymentRepository struct {
	BaseRepository
}

func newPgxPaymentRepository(base BaseRepository) *PgxPaymentRepository {
	return &PgxPaymentRepository{BaseRepository: base}
}

var _ portsrepo.PaymentRepositoryFacade = (*PgxPaymentRepository)(nil)

// RecordPayment applies a payment in one transaction. Concurrent payments
// against the same invoice serialize on the invoice row lock, so each one
// sees every previously committed amount when it recomputes the total.
func (r *PgxPaymentRepository) RecordPayment(ctx context.Context, payment domain.Payment, entry *domain.JournalEntry) (*domain.InvoiceSettlement, error) {
	tx, err := r.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer r.Rollback(ctx, tx)

	var settlement *domain.InvoiceSettlement
	if payment.InvoiceID != "" {
		var finalAmount decimal.Decimal
		err := tx.QueryRow(ctx, `SELECT final_amount FROM invoices WHERE id = $1 FOR UPDATE;`, payment.InvoiceID).Scan(&finalAmount)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return nil, apperrors.NewNotFoundError("invoice " + payment.InvoiceID + " not found")
			}
			return nil, apperrors.NewAppError(500, "failed to lock invoice "+payment.InvoiceID, err)
		}
		settlement = &domain.InvoiceSettlement{InvoiceID: payment.InvoiceID, FinalAmount: finalAmount}
	}

	if entry != nil {
		if err := insertJournalEntryTx(ctx, tx, *entry); err != nil {
			return nil, err
		}
	}

	m := mapping.ToModelPayment(payment)
	insert := `
		INSERT INTO payments (id, invoice_id, amount, method, bank_account_id, paid_at, notes, journal_entry_id, created_at, created_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10);
	`
	_, err = tx.Exec(ctx, insert,
		m.PaymentID,
		m.InvoiceID,
		m.Amount,
		m.Method,
		m.BankAccountID,
		m.PaidAt,
		m.Notes,
		m.JournalEntryID,
		m.CreatedAt,
		m.CreatedBy,
	)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to insert payment "+m.PaymentID, err)
	}

	if settlement != nil {
		var paid decimal.Decimal
		err := tx.QueryRow(ctx, `SELECT COALESCE(SUM(amount), 0) FROM payments WHERE invoice_id = $1;`, payment.InvoiceID).Scan(&paid)
		if err != nil {
			return nil, apperrors.NewAppError(500, "failed to sum payments of invoice "+payment.InvoiceID, err)
		}
		settlement.Paid = paid
		settlement.Status = domain.DerivePaymentStatus(paid, settlement.FinalAmount)

		if _, err := tx.Exec(ctx, `UPDATE invoices SET payment_status = $2 WHERE id = $1;`, payment.InvoiceID, string(settlement.Status)); err != nil {
			return nil, apperrors.NewAppError(500, "failed to update status of invoice "+payment.InvoiceID, err)
		}
	}

	if err := r.Commit(ctx, tx); err != nil {
		return nil, err
	}
	return settlement, nil
}

// ListPayments returns payments ordered by paid_at DESC, created_at DESC, id DESC.
// The token points to the last item of the previous page.
func (r *PgxPaymentRepository) ListPayments(ctx context.Context, limit int, nextToken *string) ([]domain.Payment, *string, error) {
	if limit <= 0 {
		limit = 20
	}
	// One extra row tells us whether another page exists.
	fetchLimit := limit + 1

	pool, err := r.Pool(ctx)
	if err != nil {
		return nil, nil, err
	}

	baseQuery := `
		SELECT p.id, p.invoice_id, p.amount, p.method, p.bank_account_id, b.title AS bank_account_title,
		       p.paid_at, p.notes, p.journal_entry_id, p.created_at, p.created_by
		FROM payments p
		LEFT JOIN bank_accounts b ON b.id = p.bank_account_id
	`
	orderByClause := `ORDER BY p.paid_at DESC, p.created_at DESC, p.id DESC`

	args := []any{}
	filterClause := ""
	if nextToken != nil && *nextToken != "" {
		cursor, decodeErr := pagination.DecodeCursor(*nextToken)
		if decodeErr != nil {
			return nil, nil, apperrors.NewValidationError("invalid nextToken: %v", decodeErr)
		}
		filterClause = `WHERE (p.paid_at, p.created_at, p.id) < ($1, $2, $3)`
		args = append(args, cursor.At, cursor.CreatedAt, cursor.ID)
	}
	args = append(args, fetchLimit)
	query := baseQuery + " " + filterClause + " " + orderByClause + " LIMIT $" + strconv.Itoa(len(args)) + ";"

	rows, err := pool.Query(ctx, query, args...)
	if err != nil {
		return nil, nil, apperrors.NewAppError(500, "failed to query payments", err)
	}
	ms, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.Payment])
	if err != nil {
		return nil, nil, apperrors.NewAppError(500, "failed to scan payments", err)
	}

	var nextTokenVal *string
	if len(ms) > limit {
		last := ms[limit-1]
		token := pagination.Cursor{At: last.PaidAt, CreatedAt: last.CreatedAt, ID: last.PaymentID}.Encode()
		nextTokenVal = &token
		ms = ms[:limit]
	}
	return mapping.ToDomainPaymentSlice(ms), nextTokenVal, nil
}
