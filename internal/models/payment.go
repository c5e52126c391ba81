package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Payment is a row of the payments table, optionally joined with its bank account title.
type Payment struct {
	PaymentID       string          `db:"id"`
	InvoiceID       *string         `db:"invoice_id"`
	Amount          decimal.Decimal `db:"amount"`
	Method          string          `db:"method"`
	BankAccountID   *string         `db:"bank_account_id"`
	BankAccountName *string         `db:"bank_account_title"`
	PaidAt          time.Time       `db:"paid_at"`
	Notes           string          `db:"notes"`
	JournalEntryID  *string         `db:"journal_entry_id"`
	CreatedAt       time.Time       `db:"created_at"`
	CreatedBy       string          `db:"created_by"`
}

// BankAccount is a row of the bank_accounts table.
type BankAccount struct {
	BankAccountID string    `db:"id"`
	Title         string    `db:"title"`
	BankName      string    `db:"bank_name"`
	Holder        string    `db:"holder"`
	AccountNumber string    `db:"account_number"`
	CreatedAt     time.Time `db:"created_at"`
	CreatedBy     string    `db:"created_by"`
}
