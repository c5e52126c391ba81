package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// PaymentMethod is how a receipt was settled.
type PaymentMethod string

const (
	MethodCash     PaymentMethod = "cash"
	MethodCard     PaymentMethod = "card"
	MethodTransfer PaymentMethod = "transfer"
	MethodCheque   PaymentMethod = "cheque"
	MethodOther    PaymentMethod = "other"
)

// IsValid reports whether m is a known payment method.
func (m PaymentMethod) IsValid() bool {
	switch m {
	case MethodCash, MethodCard, MethodTransfer, MethodCheque, MethodOther:
		return true
	}
	return false
}

// PaymentStatus is the derived settlement state of an invoice.
type PaymentStatus string

const (
	StatusPending PaymentStatus = "pending"
	StatusPartial PaymentStatus = "partial"
	StatusPaid    PaymentStatus = "paid"
)

// DerivePaymentStatus computes an invoice's status from its cumulative payments.
func DerivePaymentStatus(paid, finalAmount decimal.Decimal) PaymentStatus {
	switch {
	case paid.IsPositive() && paid.GreaterThanOrEqual(finalAmount):
		return StatusPaid
	case paid.IsPositive():
		return StatusPartial
	default:
		return StatusPending
	}
}

// Payment is a single cash receipt. Payments are never updated or deleted.
type Payment struct {
	PaymentID       string          `json:"id"`
	InvoiceID       string          `json:"invoice_id,omitempty"`
	Amount          decimal.Decimal `json:"amount"`
	Method          PaymentMethod   `json:"method"`
	BankAccountID   string          `json:"bank_account_id,omitempty"`
	BankAccountName string          `json:"bank_account_name,omitempty"` // populated on reads
	PaidAt          time.Time       `json:"paid_at"`
	Notes           string          `json:"notes,omitempty"`
	JournalEntryID  string          `json:"journal_entry_id,omitempty"`
	CreatedAt       time.Time       `json:"created_at"`
	CreatedBy       string          `json:"created_by"`
}

// InvoiceSettlement is the invoice state after a payment was applied.
type InvoiceSettlement struct {
	InvoiceID   string          `json:"invoice_id"`
	FinalAmount decimal.Decimal `json:"final_amount"`
	Paid        decimal.Decimal `json:"paid"`
	Status      PaymentStatus   `json:"status"`
}

// BankAccount is a bank account payments can be deposited into.
type BankAccount struct {
	BankAccountID string    `json:"id"`
	Title         string    `json:"title"`
	BankName      string    `json:"bank_name"`
	Holder        string    `json:"holder"`
	AccountNumber string    `json:"account_number"` // exactly 16 digits
	CreatedAt     time.Time `json:"created_at"`
	CreatedBy     string    `json:"created_by"`
}
