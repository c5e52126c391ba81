package services

import (
	"context"
	"log/slog"
	"time"

	"github.com/SscSPs/cafe_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/cafe_ledger/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/cafe_ledger/internal/core/ports/services"
	"github.com/SscSPs/cafe_ledger/internal/utils/accounting"
)

type reportingService struct {
	BaseService
	repo portsrepo.ReportingRepository
}

// NewReportingService creates a new reporting service.
func NewReportingService(repo portsrepo.ReportingRepository) portssvc.ReportingService {
	return &reportingService{repo: repo}
}

var _ portssvc.ReportingService = (*reportingService)(nil)

func (s *reportingService) TrialBalance(ctx context.Context, asOf *time.Time) (*domain.TrialBalance, error) {
	if _, err := s.AuthorizeUser(ctx); err != nil {
		return nil, err
	}

	rows, err := s.repo.TrialBalanceRows(ctx, asOf)
	if err != nil {
		s.LogError(ctx, err, "Failed to compute trial balance")
		return nil, err
	}
	if rows == nil {
		rows = []domain.TrialBalanceRow{}
	}

	totals := accounting.SumTrialBalance(rows)
	if !totals.Balance.IsZero() {
		// Every stored entry balances, so this means the store was written around the engine.
		s.GetLogger(ctx).Warn("Trial balance does not net to zero",
			slog.String("debit", totals.Debit.String()),
			slog.String("credit", totals.Credit.String()))
	}

	return &domain.TrialBalance{AsOf: asOf, Rows: rows, Totals: totals}, nil
}

func (s *reportingService) BalanceSheetTotals(ctx context.Context, asOf *time.Time) ([]domain.TypeBalance, error) {
	totals, err := s.typeTotals(ctx, asOf)
	if err != nil {
		return nil, err
	}
	return accounting.BalanceSheetTotals(totals), nil
}

func (s *reportingService) IncomeStatementTotals(ctx context.Context, asOf *time.Time) (*domain.IncomeStatementTotals, error) {
	totals, err := s.typeTotals(ctx, asOf)
	if err != nil {
		return nil, err
	}
	income := accounting.IncomeStatement(totals)
	return &income, nil
}

// FinancialSummary reads the type totals once and derives both reports from them.
func (s *reportingService) FinancialSummary(ctx context.Context, to *time.Time) (*domain.FinancialSummary, error) {
	totals, err := s.typeTotals(ctx, to)
	if err != nil {
		return nil, err
	}
	return &domain.FinancialSummary{
		Balances: accounting.BalanceSheetTotals(totals),
		Income:   accounting.IncomeStatement(totals),
	}, nil
}

func (s *reportingService) typeTotals(ctx context.Context, asOf *time.Time) ([]domain.TypeTotal, error) {
	if _, err := s.AuthorizeUser(ctx); err != nil {
		return nil, err
	}
	totals, err := s.repo.TypeTotals(ctx, asOf)
	if err != nil {
		s.LogError(ctx, err, "Failed to compute account type totals")
		return nil, err
	}
	return totals, nil
}
