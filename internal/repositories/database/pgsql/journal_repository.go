package pgsql

import (
	"context"
	"errors"
	"iter"

	"github.com/SscSPs/cafe_ledger/internal/apperrors"
	"github.com/SscSPs/cafe_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/cafe_ledger/internal/core/ports/repositories"
	"github.com/SscSPs/cafe_ledger/internal/models"
	"github.com/SscSPs/cafe_ledger/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

type PgxJournalRepository struct {
	BaseRepository
}

// newPgxJournalRepository creates a new repository for journal data.
func newPgxJournalRepository(base BaseRepository) *PgxJournalRepository {
	return &PgxJournalRepository{BaseRepository: base}
}

// Ensure PgxJournalRepository implements portsrepo.JournalRepositoryFacade
var _ portsrepo.JournalRepositoryFacade = (*PgxJournalRepository)(nil)

// SaveJournalEntry saves an entry and its lines within a DB transaction.
func (r *PgxJournalRepository) SaveJournalEntry(ctx context.Context, entry domain.JournalEntry) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	// Will be ignored if transaction is committed successfully
	defer r.Rollback(ctx, tx)

	if err := insertJournalEntryTx(ctx, tx, entry); err != nil {
		return err
	}

	if err := r.Commit(ctx, tx); err != nil {
		return apperrors.NewAppError(500, "failed to commit journal entry "+entry.EntryID, err)
	}
	return nil
}

// insertJournalEntryTx writes the header and then the lines in slice order,
// so line_seq follows the order the caller supplied.
func insertJournalEntryTx(ctx context.Context, tx pgx.Tx, entry domain.JournalEntry) error {
	m := mapping.ToModelJournalEntry(entry)
	entryQuery := `
		INSERT INTO journal_entries (id, entry_date, reference, description, created_at, created_by)
		VALUES ($1, $2, $3, $4, $5, $6);
	`
	if _, err := tx.Exec(ctx, entryQuery, m.EntryID, m.EntryDate, m.Reference, m.Description, m.CreatedAt, m.CreatedBy); err != nil {
		return apperrors.NewAppError(500, "failed to insert journal entry "+m.EntryID, err)
	}

	batch := &pgx.Batch{}
	lineQuery := `
		INSERT INTO journal_lines (id, entry_id, account_id, debit, credit)
		VALUES ($1, $2, $3, $4, $5);
	`
	for _, line := range entry.Lines {
		ml := mapping.ToModelJournalLine(line)
		batch.Queue(lineQuery, ml.LineID, m.EntryID, ml.AccountID, ml.Debit, ml.Credit)
	}

	// Close reports the first failing statement of the batch
	if err := tx.SendBatch(ctx, batch).Close(); err != nil {
		if pgErrorCode(err) == pgForeignKeyViolation {
			return apperrors.NewValidationError("journal line references an unknown account")
		}
		return apperrors.NewAppError(500, "failed to insert lines for journal entry "+m.EntryID, err)
	}
	return nil
}

// FindJournalEntryByID retrieves an entry and its lines.
func (r *PgxJournalRepository) FindJournalEntryByID(ctx context.Context, entryID string) (*domain.JournalEntry, error) {
	pool, err := r.Pool(ctx)
	if err != nil {
		return nil, err
	}

	rows, err := pool.Query(ctx, `
		SELECT id, entry_date, reference, description, created_at, created_by
		FROM journal_entries
		WHERE id = $1;
	`, entryID)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query journal entry "+entryID, err)
	}
	header, err := pgx.CollectExactlyOneRow(rows, pgx.RowToStructByName[models.JournalEntry])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFoundError("journal entry " + entryID + " not found")
		}
		return nil, apperrors.NewAppError(500, "failed to scan journal entry "+entryID, err)
	}

	rows, err = pool.Query(ctx, `
		SELECT id, entry_id, line_seq, account_id, debit, credit
		FROM journal_lines
		WHERE entry_id = $1
		ORDER BY line_seq;
	`, entryID)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query lines of journal entry "+entryID, err)
	}
	lines, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.JournalLine])
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to scan lines of journal entry "+entryID, err)
	}

	entry := mapping.ToDomainJournalEntry(header, lines)
	return &entry, nil
}

// StreamLedger yields the account's lines in (entry_date, line_seq) order with a
// running balance accumulated over the returned window. Each iteration re-queries.
func (r *PgxJournalRepository) StreamLedger(ctx context.Context, q domain.LedgerQuery) iter.Seq2[domain.LedgerLine, error] {
	query := `
		SELECT e.id AS entry_id, e.entry_date, e.reference, e.description, l.debit, l.credit
		FROM journal_lines l
		JOIN journal_entries e ON e.id = l.entry_id
		WHERE l.account_id = $1
		  AND ($2::date IS NULL OR e.entry_date >= $2::date)
		  AND ($3::date IS NULL OR e.entry_date <= $3::date)
		ORDER BY e.entry_date, l.line_seq;
	`
	return func(yield func(domain.LedgerLine, error) bool) {
		pool, err := r.Pool(ctx)
		if err != nil {
			yield(domain.LedgerLine{}, err)
			return
		}
		rows, err := pool.Query(ctx, query, q.AccountID, q.From, q.To)
		if err != nil {
			yield(domain.LedgerLine{}, apperrors.NewAppError(500, "failed to query ledger for account "+q.AccountID, err))
			return
		}
		defer rows.Close()

		running := decimal.Zero
		for rows.Next() {
			m, err := pgx.RowToStructByName[models.LedgerRow](rows)
			if err != nil {
				yield(domain.LedgerLine{}, apperrors.NewAppError(500, "failed to scan ledger row", err))
				return
			}
			line := mapping.ToDomainLedgerLine(m)
			running = running.Add(line.Debit).Sub(line.Credit)
			line.RunningBalance = running
			if !yield(line, nil) {
				return
			}
		}
		if err := rows.Err(); err != nil {
			yield(domain.LedgerLine{}, apperrors.NewAppError(500, "error iterating ledger rows", err))
		}
	}
}
