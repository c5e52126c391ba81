package services

import (
	"context"
	"iter"

	"github.com/SscSPs/cafe_ledger/internal/core/domain"
	"github.com/SscSPs/cafe_ledger/internal/dto"
)

// JournalReaderSvc defines read operations for journal data
type JournalReaderSvc interface {
	// GetJournalEntry retrieves an entry with its lines.
	GetJournalEntry(ctx context.Context, entryID string) (*domain.JournalEntry, error)

	// GetLedger validates the query and returns a restartable sequence of ledger lines.
	GetLedger(ctx context.Context, query domain.LedgerQuery) (iter.Seq2[domain.LedgerLine, error], error)
}

// JournalWriterSvc defines write operations for journal data
type JournalWriterSvc interface {
	// RecordJournalEntry validates and atomically persists a balanced entry.
	RecordJournalEntry(ctx context.Context, req dto.CreateJournalEntryRequest) (*domain.JournalEntry, error)
}

// JournalSvcFacade combines all journal-related service interfaces
type JournalSvcFacade interface {
	JournalReaderSvc
	JournalWriterSvc
}
