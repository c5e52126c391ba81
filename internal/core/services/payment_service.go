package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/SscSPs/cafe_ledger/internal/apperrors"
	"github.com/SscSPs/cafe_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/cafe_ledger/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/cafe_ledger/internal/core/ports/services"
	"github.com/SscSPs/cafe_ledger/internal/dto"
	"github.com/SscSPs/cafe_ledger/internal/platform/config"
)

// paymentService records receipts and keeps invoice settlement in step.
type paymentService struct {
	BaseService
	paymentRepo     portsrepo.PaymentRepositoryFacade
	bankAccountRepo portsrepo.BankAccountRepository
	accountRepo     portsrepo.AccountReader
	journal         config.PaymentJournalConfig
}

// PaymentServiceOption is a functional option for configuring the payment service
type PaymentServiceOption func(*paymentService)

// WithPaymentJournal makes every recorded payment post a balanced journal entry
// using the accounts named by cfg. Disabled configs are ignored.
func WithPaymentJournal(accountRepo portsrepo.AccountReader, cfg config.PaymentJournalConfig) PaymentServiceOption {
	return func(s *paymentService) {
		if !cfg.Enabled {
			return
		}
		s.accountRepo = accountRepo
		s.journal = cfg
	}
}

// NewPaymentService creates a new payment service with the given options
func NewPaymentService(paymentRepo portsrepo.PaymentRepositoryFacade, bankAccountRepo portsrepo.BankAccountRepository, options ...PaymentServiceOption) portssvc.PaymentSvcFacade {
	svc := &paymentService{
		paymentRepo:     paymentRepo,
		bankAccountRepo: bankAccountRepo,
	}
	for _, option := range options {
		option(svc)
	}
	return svc
}

var _ portssvc.PaymentSvcFacade = (*paymentService)(nil)

// RecordPayment stores one receipt. When it references an invoice the invoice
// status is recomputed from all of its payments in the same transaction.
func (s *paymentService) RecordPayment(ctx context.Context, req dto.RecordPaymentRequest) (*dto.RecordPaymentResponse, error) {
	principal, err := s.AuthorizeUser(ctx)
	if err != nil {
		return nil, err
	}

	if !req.Amount.IsPositive() {
		return nil, apperrors.NewValidationError("amount must be greater than zero")
	}
	if !domain.HasAmountScale(req.Amount) {
		return nil, apperrors.NewValidationError("amount must not have more than %d decimal places", domain.AmountScale)
	}
	if req.Method == "" {
		return nil, apperrors.NewValidationError("method is required")
	}
	if !req.Method.IsValid() {
		return nil, apperrors.NewValidationError("unknown payment method %q", req.Method)
	}

	now := time.Now().UTC()
	payment := domain.Payment{
		PaymentID: uuid.NewString(),
		Amount:    req.Amount,
		Method:    req.Method,
		PaidAt:    now,
		Notes:     strings.TrimSpace(req.Notes),
		CreatedAt: now,
		CreatedBy: principal.UserID,
	}
	if req.PaidAt != nil && !req.PaidAt.IsZero() {
		payment.PaidAt = req.PaidAt.UTC()
	}
	if req.InvoiceID != nil {
		payment.InvoiceID = strings.TrimSpace(*req.InvoiceID)
	}

	if req.BankAccountID != nil && strings.TrimSpace(*req.BankAccountID) != "" {
		bankAccountID := strings.TrimSpace(*req.BankAccountID)
		bank, err := s.bankAccountRepo.FindBankAccountByID(ctx, bankAccountID)
		if err != nil {
			if errors.Is(err, apperrors.ErrNotFound) {
				return nil, apperrors.NewValidationError("bank account %s does not exist", bankAccountID)
			}
			s.LogError(ctx, err, "Failed to look up bank account", slog.String("bank_account_id", bankAccountID))
			return nil, err
		}
		payment.BankAccountID = bank.BankAccountID
		payment.BankAccountName = bank.Title
	}

	var entry *domain.JournalEntry
	if s.journal.Enabled {
		entry, err = s.buildJournalEntry(ctx, payment)
		if err != nil {
			return nil, err
		}
		payment.JournalEntryID = entry.EntryID
	}

	settlement, err := s.paymentRepo.RecordPayment(ctx, payment, entry)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) && !errors.Is(err, apperrors.ErrValidation) {
			s.LogError(ctx, err, "Failed to record payment",
				slog.String("payment_id", payment.PaymentID),
				slog.String("invoice_id", payment.InvoiceID))
		}
		return nil, err
	}

	attrs := []any{
		slog.String("payment_id", payment.PaymentID),
		slog.String("amount", payment.Amount.String()),
		slog.String("method", string(payment.Method)),
	}
	if settlement != nil {
		attrs = append(attrs, slog.String("invoice_id", settlement.InvoiceID), slog.String("status", string(settlement.Status)))
	}
	s.LogInfo(ctx, "Payment recorded", attrs...)

	return &dto.RecordPaymentResponse{Payment: payment, Invoice: settlement}, nil
}

// buildJournalEntry debits cash for cash payments and the bank account for
// any other method, crediting receivables for the full amount.
func (s *paymentService) buildJournalEntry(ctx context.Context, payment domain.Payment) (*domain.JournalEntry, error) {
	debitCode := s.journal.BankAccountCode
	if payment.Method == domain.MethodCash {
		debitCode = s.journal.CashAccountCode
	}
	debit, err := s.postingAccount(ctx, debitCode)
	if err != nil {
		return nil, err
	}
	credit, err := s.postingAccount(ctx, s.journal.ReceivableAccountCode)
	if err != nil {
		return nil, err
	}

	description := "Payment received (" + string(payment.Method) + ")"
	if payment.InvoiceID != "" {
		description = fmt.Sprintf("Payment received for invoice %s (%s)", payment.InvoiceID, payment.Method)
	}
	entryID := uuid.NewString()
	entry := &domain.JournalEntry{
		EntryID:     entryID,
		EntryDate:   payment.PaidAt.Truncate(24 * time.Hour),
		Reference:   payment.InvoiceID,
		Description: description,
		Lines: []domain.JournalLine{
			{LineID: uuid.NewString(), EntryID: entryID, AccountID: debit.AccountID, Debit: payment.Amount},
			{LineID: uuid.NewString(), EntryID: entryID, AccountID: credit.AccountID, Credit: payment.Amount},
		},
		AuditFields: domain.AuditFields{
			CreatedAt:     payment.CreatedAt,
			CreatedBy:     payment.CreatedBy,
			LastUpdatedAt: payment.CreatedAt,
			LastUpdatedBy: payment.CreatedBy,
		},
	}
	if err := entry.Validate(); err != nil {
		return nil, err
	}
	return entry, nil
}

// postingAccount resolves a configured chart code. A missing or inactive
// account is a deployment problem, not a client error.
func (s *paymentService) postingAccount(ctx context.Context, code string) (*domain.Account, error) {
	account, err := s.accountRepo.FindAccountByCode(ctx, code)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			err = apperrors.NewAppError(500, "payment journal account "+code+" is not in the chart of accounts", apperrors.ErrInternal)
		}
		s.LogError(ctx, err, "Payment journal misconfigured", slog.String("code", code))
		return nil, err
	}
	if !account.IsActive {
		err := apperrors.NewAppError(500, "payment journal account "+code+" is inactive", apperrors.ErrInternal)
		s.LogError(ctx, err, "Payment journal misconfigured", slog.String("code", code))
		return nil, err
	}
	return account, nil
}

// ListPayments returns one page of payments, newest first.
func (s *paymentService) ListPayments(ctx context.Context, params dto.ListPaymentsParams) (*dto.ListPaymentsResponse, error) {
	if _, err := s.AuthorizeUser(ctx); err != nil {
		return nil, err
	}
	payments, nextToken, err := s.paymentRepo.ListPayments(ctx, params.Limit, params.NextToken)
	if err != nil {
		if apperrors.StatusCode(err) >= 500 {
			s.LogError(ctx, err, "Failed to list payments")
		}
		return nil, err
	}
	if payments == nil {
		payments = []domain.Payment{}
	}
	return &dto.ListPaymentsResponse{Payments: payments, NextToken: nextToken}, nil
}
