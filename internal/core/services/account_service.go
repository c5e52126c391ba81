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
	"github.com/SscSPs/cafe_ledger/internal/utils/accounting"
)

// accountService implements the account registry.
type accountService struct {
	BaseService
	accountRepo portsrepo.AccountRepositoryFacade
}

// NewAccountService creates a new account service.
func NewAccountService(repo portsrepo.AccountRepositoryFacade) portssvc.AccountSvcFacade {
	return &accountService{accountRepo: repo}
}

var _ portssvc.AccountSvcFacade = (*accountService)(nil)

// CreateAccount creates a new active account. The parent, if given, must exist.
func (s *accountService) CreateAccount(ctx context.Context, req dto.CreateAccountRequest) (*domain.Account, error) {
	principal, err := s.AuthorizeUser(ctx)
	if err != nil {
		return nil, err
	}

	code := strings.TrimSpace(req.Code)
	name := strings.TrimSpace(req.Name)
	if code == "" {
		return nil, apperrors.NewValidationError("account code is required")
	}
	if name == "" {
		return nil, apperrors.NewValidationError("account name is required")
	}
	if !req.AccountType.IsValid() {
		return nil, apperrors.NewValidationError("invalid account type %q", req.AccountType)
	}

	parentID := ""
	if req.ParentAccountID != nil {
		parentID = strings.TrimSpace(*req.ParentAccountID)
	}
	if parentID != "" {
		if _, err := s.accountRepo.FindAccountByID(ctx, parentID); err != nil {
			if errors.Is(err, apperrors.ErrNotFound) {
				return nil, apperrors.NewValidationError("parent account %s does not exist", parentID)
			}
			s.LogError(ctx, err, "Failed to look up parent account", slog.String("parent_id", parentID))
			return nil, err
		}
	}

	now := time.Now().UTC()
	account := domain.Account{
		AccountID:       uuid.NewString(),
		Code:            code,
		Name:            name,
		AccountType:     req.AccountType,
		ParentAccountID: parentID,
		IsActive:        true,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     principal.UserID,
			LastUpdatedAt: now,
			LastUpdatedBy: principal.UserID,
		},
	}

	if err := s.accountRepo.SaveAccount(ctx, account); err != nil {
		if !errors.Is(err, apperrors.ErrDuplicate) && !errors.Is(err, apperrors.ErrValidation) {
			s.LogError(ctx, err, "Failed to save account", slog.String("code", code))
		}
		return nil, err
	}

	s.LogInfo(ctx, "Account created", slog.String("account_id", account.AccountID), slog.String("code", code))
	return &account, nil
}

// GetAccountByID retrieves an account by id.
func (s *accountService) GetAccountByID(ctx context.Context, accountID string) (*domain.Account, error) {
	if _, err := s.AuthorizeUser(ctx); err != nil {
		return nil, err
	}
	account, err := s.accountRepo.FindAccountByID(ctx, accountID)
	if err != nil {
		// Not found is an expected outcome
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find account", slog.String("account_id", accountID))
		}
		return nil, err
	}
	return account, nil
}

// ListAccounts returns the whole chart of accounts ordered by code.
func (s *accountService) ListAccounts(ctx context.Context) ([]domain.Account, error) {
	if _, err := s.AuthorizeUser(ctx); err != nil {
		return nil, err
	}
	accounts, err := s.accountRepo.ListAccounts(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list accounts")
		return nil, err
	}
	if accounts == nil {
		return []domain.Account{}, nil
	}
	s.LogDebug(ctx, "Accounts listed", slog.Int("count", len(accounts)))
	return accounts, nil
}

// UpdateAccount renames or re-parents an account. A move that would make the
// account its own ancestor is rejected.
func (s *accountService) UpdateAccount(ctx context.Context, accountID string, req dto.UpdateAccountRequest) (*domain.Account, error) {
	principal, err := s.AuthorizeUser(ctx)
	if err != nil {
		return nil, err
	}

	account, err := s.accountRepo.FindAccountByID(ctx, accountID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		if name == "" {
			return nil, apperrors.NewValidationError("account name cannot be empty")
		}
		account.Name = name
	}

	var check func(chart []domain.Account) error
	if req.ParentAccountID != nil {
		parentID := strings.TrimSpace(*req.ParentAccountID)
		if parentID != "" {
			check = func(chart []domain.Account) error {
				tree := accounting.NewAccountTree(chart)
				if !tree.Contains(parentID) {
					return apperrors.NewValidationError("parent account %s does not exist", parentID)
				}
				if tree.WouldCycle(accountID, parentID) {
					return apperrors.NewValidationError("moving account %s under %s would create a cycle", accountID, parentID)
				}
				return nil
			}
		}
		account.ParentAccountID = parentID
	}

	account.LastUpdatedAt = time.Now().UTC()
	account.LastUpdatedBy = principal.UserID

	if check != nil {
		err = s.accountRepo.ReparentAccount(ctx, *account, check)
	} else {
		err = s.accountRepo.UpdateAccount(ctx, *account)
	}
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) && !errors.Is(err, apperrors.ErrValidation) {
			s.LogError(ctx, err, "Failed to update account", slog.String("account_id", accountID))
		}
		return nil, err
	}

	s.LogInfo(ctx, "Account updated", slog.String("account_id", accountID))
	return account, nil
}

// DeactivateAccount marks an active account as inactive. Posted lines are untouched.
func (s *accountService) DeactivateAccount(ctx context.Context, accountID string) error {
	principal, err := s.AuthorizeUser(ctx)
	if err != nil {
		return err
	}

	account, err := s.accountRepo.FindAccountByID(ctx, accountID)
	if err != nil {
		return err
	}
	if !account.IsActive {
		return apperrors.NewValidationError("account %s is already inactive", accountID)
	}

	if err := s.accountRepo.DeactivateAccount(ctx, accountID, principal.UserID, time.Now().UTC()); err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to deactivate account", slog.String("account_id", accountID))
		}
		return err
	}

	s.LogInfo(ctx, "Account deactivated", slog.String("account_id", accountID))
	return nil
}
