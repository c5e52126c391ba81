package services

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/SscSPs/cafe_ledger/internal/apperrors"
	"github.com/SscSPs/cafe_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/cafe_ledger/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/cafe_ledger/internal/core/ports/services"
	"github.com/SscSPs/cafe_ledger/internal/dto"
)

const bankAccountNumberLength = 16

type bankAccountService struct {
	BaseService
	repo portsrepo.BankAccountRepository
}

// NewBankAccountService creates a new bank account service.
func NewBankAccountService(repo portsrepo.BankAccountRepository) portssvc.BankAccountSvc {
	return &bankAccountService{repo: repo}
}

var _ portssvc.BankAccountSvc = (*bankAccountService)(nil)

func (s *bankAccountService) CreateBankAccount(ctx context.Context, req dto.CreateBankAccountRequest) (*domain.BankAccount, error) {
	principal, err := s.AuthorizeUser(ctx)
	if err != nil {
		return nil, err
	}

	account := domain.BankAccount{
		BankAccountID: uuid.NewString(),
		Title:         strings.TrimSpace(req.Title),
		BankName:      strings.TrimSpace(req.BankName),
		Holder:        strings.TrimSpace(req.Holder),
		AccountNumber: strings.TrimSpace(req.AccountNumber),
		CreatedAt:     time.Now().UTC(),
		CreatedBy:     principal.UserID,
	}
	if account.Title == "" || account.BankName == "" || account.Holder == "" {
		return nil, apperrors.NewValidationError("title, bank_name and holder are required")
	}
	if !isAccountNumber(account.AccountNumber) {
		return nil, apperrors.NewValidationError("account_number must be exactly %d digits", bankAccountNumberLength)
	}

	if err := s.repo.SaveBankAccount(ctx, account); err != nil {
		if !errors.Is(err, apperrors.ErrValidation) {
			s.LogError(ctx, err, "Failed to save bank account", slog.String("title", account.Title))
		}
		return nil, err
	}
	s.LogInfo(ctx, "Bank account registered", slog.String("bank_account_id", account.BankAccountID))
	return &account, nil
}

func (s *bankAccountService) ListBankAccounts(ctx context.Context) ([]domain.BankAccount, error) {
	if _, err := s.AuthorizeUser(ctx); err != nil {
		return nil, err
	}
	accounts, err := s.repo.ListBankAccounts(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list bank accounts")
		return nil, err
	}
	if accounts == nil {
		return []domain.BankAccount{}, nil
	}
	return accounts, nil
}

func isAccountNumber(s string) bool {
	if len(s) != bankAccountNumberLength {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
