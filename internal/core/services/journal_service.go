package services

import (
	"context"
	"errors"
	"iter"
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

// journalService records balanced entries and serves account ledgers.
type journalService struct {
	BaseService
	journalRepo portsrepo.JournalRepositoryFacade
	accountRepo portsrepo.AccountReader
}

// NewJournalService creates a new JournalService.
func NewJournalService(journalRepo portsrepo.JournalRepositoryFacade, accountRepo portsrepo.AccountReader) portssvc.JournalSvcFacade {
	return &journalService{
		journalRepo: journalRepo,
		accountRepo: accountRepo,
	}
}

// Ensure journalService implements the portssvc.JournalSvcFacade interface
var _ portssvc.JournalSvcFacade = (*journalService)(nil)

// RecordJournalEntry validates the entry, checks that every referenced account
// exists and is active, then persists header and lines atomically.
func (s *journalService) RecordJournalEntry(ctx context.Context, req dto.CreateJournalEntryRequest) (*domain.JournalEntry, error) {
	principal, err := s.AuthorizeUser(ctx)
	if err != nil {
		return nil, err
	}

	entryDate, err := time.Parse(domain.DateLayout, req.EntryDate)
	if err != nil {
		return nil, apperrors.NewValidationError("invalid entry_date %q, expected YYYY-MM-DD", req.EntryDate)
	}

	now := time.Now().UTC()
	entry := domain.JournalEntry{
		EntryID:     uuid.NewString(),
		EntryDate:   entryDate,
		Reference:   strings.TrimSpace(req.Reference),
		Description: strings.TrimSpace(req.Description),
		Lines:       make([]domain.JournalLine, 0, len(req.Lines)),
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     principal.UserID,
			LastUpdatedAt: now,
			LastUpdatedBy: principal.UserID,
		},
	}
	for _, l := range req.Lines {
		entry.Lines = append(entry.Lines, domain.JournalLine{
			LineID:    uuid.NewString(),
			EntryID:   entry.EntryID,
			AccountID: strings.TrimSpace(l.AccountID),
			Debit:     l.Debit,
			Credit:    l.Credit,
		})
	}

	if err := entry.Validate(); err != nil {
		s.LogDebug(ctx, "Journal entry rejected", slog.String("error", err.Error()))
		return nil, err
	}

	if err := s.checkAccounts(ctx, entry.Lines); err != nil {
		return nil, err
	}

	if err := s.journalRepo.SaveJournalEntry(ctx, entry); err != nil {
		if !errors.Is(err, apperrors.ErrValidation) {
			s.LogError(ctx, err, "Failed to save journal entry", slog.String("entry_id", entry.EntryID))
		}
		return nil, err
	}

	s.LogInfo(ctx, "Journal entry recorded",
		slog.String("entry_id", entry.EntryID),
		slog.Int("lines", len(entry.Lines)))
	return &entry, nil
}

// checkAccounts fails with a validation error naming the first line whose
// account is missing or inactive.
func (s *journalService) checkAccounts(ctx context.Context, lines []domain.JournalLine) error {
	ids := make([]string, 0, len(lines))
	for _, l := range lines {
		ids = append(ids, l.AccountID)
	}
	accounts, err := s.accountRepo.FindAccountsByIDs(ctx, uniqueStrings(ids))
	if err != nil {
		s.LogError(ctx, err, "Failed to load journal line accounts")
		return err
	}
	for i, l := range lines {
		account, ok := accounts[l.AccountID]
		if !ok {
			return apperrors.NewValidationError("line %d: account %s does not exist", i+1, l.AccountID)
		}
		if !account.IsActive {
			return apperrors.NewValidationError("line %d: account %s (%s) is inactive", i+1, account.Code, l.AccountID)
		}
	}
	return nil
}

// GetJournalEntry retrieves an entry with its lines.
func (s *journalService) GetJournalEntry(ctx context.Context, entryID string) (*domain.JournalEntry, error) {
	if _, err := s.AuthorizeUser(ctx); err != nil {
		return nil, err
	}
	entry, err := s.journalRepo.FindJournalEntryByID(ctx, entryID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find journal entry", slog.String("entry_id", entryID))
		}
		return nil, err
	}
	return entry, nil
}

// GetLedger validates the query and returns the account's history. The
// sequence is lazy: nothing is read until it is ranged over, and ranging
// again reruns the query from the first line.
func (s *journalService) GetLedger(ctx context.Context, query domain.LedgerQuery) (iter.Seq2[domain.LedgerLine, error], error) {
	if _, err := s.AuthorizeUser(ctx); err != nil {
		return nil, err
	}
	query.AccountID = strings.TrimSpace(query.AccountID)
	if query.AccountID == "" {
		return nil, apperrors.NewValidationError("account_id is required")
	}
	if query.From != nil && query.To != nil && query.From.After(*query.To) {
		return nil, apperrors.NewValidationError("from %s is after to %s",
			query.From.Format(domain.DateLayout), query.To.Format(domain.DateLayout))
	}
	return s.journalRepo.StreamLedger(ctx, query), nil
}

func uniqueStrings(input []string) []string {
	seen := make(map[string]struct{}, len(input))
	out := make([]string, 0, len(input))
	for _, v := range input {
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	return out
}
