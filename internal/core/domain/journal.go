package domain

import (
	"errors"
	"fmt"
	"time"

	"github.com/SscSPs/cafe_ledger/internal/apperrors"
	"github.com/shopspring/decimal"
)

var (
	ErrJournalNoLines     = fmt.Errorf("%w: journal entry must have at least one line", apperrors.ErrValidation)
	ErrJournalUnbalanced  = fmt.Errorf("%w: journal entry debits and credits do not balance", apperrors.ErrValidation)
	ErrLineBothSides      = fmt.Errorf("%w: journal line cannot carry both a debit and a credit", apperrors.ErrValidation)
	ErrLineNoAmount       = fmt.Errorf("%w: journal line must carry a debit or a credit", apperrors.ErrValidation)
	ErrLineNegative       = fmt.Errorf("%w: journal line amounts must not be negative", apperrors.ErrValidation)
	ErrLineAmountScale    = fmt.Errorf("%w: journal line amounts must not have more than 2 decimal places", apperrors.ErrValidation)
	ErrLineMissingAccount = fmt.Errorf("%w: journal line account is required", apperrors.ErrValidation)
	ErrDescriptionMissing = fmt.Errorf("%w: journal entry description is required", apperrors.ErrValidation)
	ErrEntryDateMissing   = fmt.Errorf("%w: journal entry date is required", apperrors.ErrValidation)
)

// JournalEntry is one atomic accounting event composed of balanced lines.
type JournalEntry struct {
	EntryID     string        `json:"id"`
	EntryDate   time.Time     `json:"entry_date"`
	Reference   string        `json:"reference,omitempty"` // external document id, e.g. invoice number
	Description string        `json:"description"`
	Lines       []JournalLine `json:"lines,omitempty"`
	AuditFields
}

// JournalLine is a single debit or credit movement against one account.
// Exactly one of Debit and Credit is non-zero.
type JournalLine struct {
	LineID    string          `json:"id"`
	EntryID   string          `json:"entry_id"`
	LineSeq   int64           `json:"line_seq"` // assigned by the store, insertion order
	AccountID string          `json:"account_id"`
	Debit     decimal.Decimal `json:"debit"`
	Credit    decimal.Decimal `json:"credit"`
}

// Totals returns the debit and credit sums of the entry's lines.
func (e JournalEntry) Totals() (debit, credit decimal.Decimal) {
	debit, credit = decimal.Zero, decimal.Zero
	for _, l := range e.Lines {
		debit = debit.Add(l.Debit)
		credit = credit.Add(l.Credit)
	}
	return debit, credit
}

// Validate checks the entry header and the double-entry invariant.
// All failures wrap apperrors.ErrValidation.
func (e JournalEntry) Validate() error {
	if e.EntryDate.IsZero() {
		return ErrEntryDateMissing
	}
	if e.Description == "" {
		return ErrDescriptionMissing
	}
	if len(e.Lines) == 0 {
		return ErrJournalNoLines
	}

	var errs []error
	for i, l := range e.Lines {
		if err := l.Validate(); err != nil {
			errs = append(errs, fmt.Errorf("line %d: %w", i+1, err))
		}
	}
	if len(errs) > 0 {
		return errors.Join(errs...)
	}

	debit, credit := e.Totals()
	if !debit.Equal(credit) {
		return fmt.Errorf("%w: debits %s, credits %s", ErrJournalUnbalanced, debit.StringFixed(2), credit.StringFixed(2))
	}
	return nil
}

// Validate checks a single line in isolation.
func (l JournalLine) Validate() error {
	if l.AccountID == "" {
		return ErrLineMissingAccount
	}
	if l.Debit.IsNegative() || l.Credit.IsNegative() {
		return ErrLineNegative
	}
	if !HasAmountScale(l.Debit) || !HasAmountScale(l.Credit) {
		return ErrLineAmountScale
	}
	hasDebit := !l.Debit.IsZero()
	hasCredit := !l.Credit.IsZero()
	if hasDebit && hasCredit {
		return ErrLineBothSides
	}
	if !hasDebit && !hasCredit {
		return ErrLineNoAmount
	}
	return nil
}

// LedgerQuery selects the ledger history of one account. Bounds are inclusive.
type LedgerQuery struct {
	AccountID string
	From      *time.Time
	To        *time.Time
}

// LedgerLine is one row of an account's chronological history.
// RunningBalance is the cumulative debit minus credit within the queried window.
type LedgerLine struct {
	EntryID        string          `json:"entry_id"`
	EntryDate      time.Time       `json:"entry_date"`
	Reference      string          `json:"reference"`
	Description    string          `json:"description"`
	Debit          decimal.Decimal `json:"debit"`
	Credit         decimal.Decimal `json:"credit"`
	RunningBalance decimal.Decimal `json:"running_balance"`
}
