package mapping

import (
	"github.com/SscSPs/cafe_ledger/internal/core/domain"
	"github.com/SscSPs/cafe_ledger/internal/models"
)

// ToModelJournalEntry converts a domain JournalEntry header to a model JournalEntry
func ToModelJournalEntry(d domain.JournalEntry) models.JournalEntry {
	return models.JournalEntry{
		EntryID:     d.EntryID,
		EntryDate:   d.EntryDate,
		Reference:   d.Reference,
		Description: d.Description,
		CreatedAt:   d.CreatedAt,
		CreatedBy:   d.CreatedBy,
	}
}

// ToDomainJournalEntry converts a model JournalEntry and its lines to a domain JournalEntry
func ToDomainJournalEntry(m models.JournalEntry, lines []models.JournalLine) domain.JournalEntry {
	entry := domain.JournalEntry{
		EntryID:     m.EntryID,
		EntryDate:   m.EntryDate,
		Reference:   m.Reference,
		Description: m.Description,
		Lines:       make([]domain.JournalLine, len(lines)),
		AuditFields: domain.AuditFields{
			CreatedAt:     m.CreatedAt,
			CreatedBy:     m.CreatedBy,
			LastUpdatedAt: m.CreatedAt,
			LastUpdatedBy: m.CreatedBy,
		},
	}
	for i, l := range lines {
		entry.Lines[i] = ToDomainJournalLine(l)
	}
	return entry
}

// ToModelJournalLine converts a domain JournalLine to a model JournalLine
func ToModelJournalLine(d domain.JournalLine) models.JournalLine {
	return models.JournalLine{
		LineID:    d.LineID,
		EntryID:   d.EntryID,
		LineSeq:   d.LineSeq,
		AccountID: d.AccountID,
		Debit:     d.Debit,
		Credit:    d.Credit,
	}
}

// ToDomainJournalLine converts a model JournalLine to a domain JournalLine
func ToDomainJournalLine(m models.JournalLine) domain.JournalLine {
	return domain.JournalLine{
		LineID:    m.LineID,
		EntryID:   m.EntryID,
		LineSeq:   m.LineSeq,
		AccountID: m.AccountID,
		Debit:     m.Debit,
		Credit:    m.Credit,
	}
}

// ToDomainLedgerLine converts a ledger row, attaching the running balance computed by the caller.
func ToDomainLedgerLine(m models.LedgerRow) domain.LedgerLine {
	return domain.LedgerLine{
		EntryID:     m.EntryID,
		EntryDate:   m.EntryDate,
		Reference:   m.Reference,
		Description: m.Description,
		Debit:       m.Debit,
		Credit:      m.Credit,
	}
}
