package dto

import (
	"time"

	"github.com/SscSPs/cafe_ledger/internal/core/domain"
	"github.com/shopspring/decimal"
)

// RecordPaymentRequest defines the data needed to record a payment.
type RecordPaymentRequest struct {
	InvoiceID     *string              `json:"invoice_id"`
	Amount        decimal.Decimal      `json:"amount"`
	Method        domain.PaymentMethod `json:"method"`
	BankAccountID *string              `json:"bank_account_id"`
	PaidAt        *time.Time           `json:"paid_at"` // defaults to now
	Notes         string               `json:"notes" binding:"max=1000"`
}

// RecordPaymentResponse is the stored payment and, for invoice payments, the invoice settlement.
type RecordPaymentResponse struct {
	Payment domain.Payment            `json:"payment"`
	Invoice *domain.InvoiceSettlement `json:"invoice,omitempty"`
}

// ListPaymentsParams defines query parameters for listing payments.
type ListPaymentsParams struct {
	Limit     int     `form:"limit,default=20" binding:"min=1,max=100"`
	NextToken *string `form:"nextToken"`
}

// ListPaymentsResponse is one page of payments.
type ListPaymentsResponse struct {
	Payments  []domain.Payment `json:"payments"`
	NextToken *string          `json:"nextToken,omitempty"`
}

// CreateBankAccountRequest defines the data needed to register a bank account.
type CreateBankAccountRequest struct {
	Title         string `json:"title" binding:"required,max=255"`
	BankName      string `json:"bank_name" binding:"required,max=255"`
	Holder        string `json:"holder" binding:"required,max=255"`
	AccountNumber string `json:"account_number"`
}
