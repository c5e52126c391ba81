package repositories

import (
	"context"
	"iter"

	"github.com/SscSPs/cafe_ledger/internal/core/domain"
)

// JournalReader defines read operations for journal data
type JournalReader interface {
	// FindJournalEntryByID retrieves an entry with its lines in line_seq order.
	FindJournalEntryByID(ctx context.Context, entryID string) (*domain.JournalEntry, error)

	// StreamLedger yields the history of one account ordered by (entry_date, line_seq).
	// Each range over the returned sequence runs the query again.
	StreamLedger(ctx context.Context, query domain.LedgerQuery) iter.Seq2[domain.LedgerLine, error]
}

// JournalWriter defines write operations for journal data
type JournalWriter interface {
	// SaveJournalEntry persists the entry and all its lines in one transaction.
	SaveJournalEntry(ctx context.Context, entry domain.JournalEntry) error
}

// JournalRepositoryFacade combines all journal-related repository interfaces
type JournalRepositoryFacade interface {
	JournalReader
	JournalWriter
}
