package services

import (
	"context"

	"github.com/SscSPs/cafe_ledger/internal/core/domain"
	"github.com/SscSPs/cafe_ledger/internal/dto"
)

// PaymentSvcFacade defines payment recording and listing.
type PaymentSvcFacade interface {
	RecordPayment(ctx context.Context, req dto.RecordPaymentRequest) (*dto.RecordPaymentResponse, error)
	ListPayments(ctx context.Context, params dto.ListPaymentsParams) (*dto.ListPaymentsResponse, error)
}

// BankAccountSvc defines bank account registration.
type BankAccountSvc interface {
	CreateBankAccount(ctx context.Context, req dto.CreateBankAccountRequest) (*domain.BankAccount, error)
	ListBankAccounts(ctx context.Context) ([]domain.BankAccount, error)
}
