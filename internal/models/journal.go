package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// JournalEntry is a row of the journal_entries table.
type JournalEntry struct {
	EntryID     string    `db:"id"`
	EntryDate   time.Time `db:"entry_date"`
	Reference   string    `db:"reference"`
	Description string    `db:"description"`
	CreatedAt   time.Time `db:"created_at"`
	CreatedBy   string    `db:"created_by"`
}

// JournalLine is a row of the journal_lines table.
type JournalLine struct {
	LineID    string          `db:"id"`
	EntryID   string          `db:"entry_id"`
	LineSeq   int64           `db:"line_seq"`
	AccountID string          `db:"account_id"`
	Debit     decimal.Decimal `db:"debit"`
	Credit    decimal.Decimal `db:"credit"`
}

// LedgerRow is a journal line joined with its entry header.
type LedgerRow struct {
	EntryID     string          `db:"entry_id"`
	EntryDate   time.Time       `db:"entry_date"`
	Reference   string          `db:"reference"`
	Description string          `db:"description"`
	Debit       decimal.Decimal `db:"debit"`
	Credit      decimal.Decimal `db:"credit"`
}
