package dto

import (
	"github.com/shopspring/decimal"
)

// JournalLineRequest is one debit or credit line of a new entry.
type JournalLineRequest struct {
	AccountID string          `json:"account_id" binding:"required"`
	Debit     decimal.Decimal `json:"debit" binding:"gte=0"`
	Credit    decimal.Decimal `json:"credit" binding:"gte=0"`
}

// CreateJournalEntryRequest defines the data needed to record a journal entry.
type CreateJournalEntryRequest struct {
	EntryDate   string               `json:"entry_date" binding:"required,datetime=2006-01-02"`
	Description string               `json:"description"`
	Reference   string               `json:"reference" binding:"max=64"`
	Lines       []JournalLineRequest `json:"lines" binding:"dive"`
}

// LedgerParams defines the query parameters of the ledger endpoint.
type LedgerParams struct {
	AccountID string `form:"account_id"`
	From      string `form:"from"`
	To        string `form:"to"`
}
