package repositories

import (
	"context"

	"github.com/SscSPs/cafe_ledger/internal/core/domain"
)

// PaymentWriter defines write operations for payments
type PaymentWriter interface {
	// RecordPayment inserts the payment and, when entry is non-nil, the journal entry,
	// in one transaction. When the payment references an invoice, the invoice row is
	// locked and its payment_status recomputed; the resulting settlement is returned.
	RecordPayment(ctx context.Context, payment domain.Payment, entry *domain.JournalEntry) (*domain.InvoiceSettlement, error)
}

// PaymentReader defines read operations for payments
type PaymentReader interface {
	// ListPayments returns payments newest first with cursor pagination.
	ListPayments(ctx context.Context, limit int, nextToken *string) ([]domain.Payment, *string, error)
}

// PaymentRepositoryFacade combines all payment-related repository interfaces
type PaymentRepositoryFacade interface {
	PaymentReader
	PaymentWriter
}

// BankAccountRepository defines persistence for bank accounts
type BankAccountRepository interface {
	SaveBankAccount(ctx context.Context, account domain.BankAccount) error
	FindBankAccountByID(ctx context.Context, bankAccountID string) (*domain.BankAccount, error)
	ListBankAccounts(ctx context.Context) ([]domain.BankAccount, error)
}
