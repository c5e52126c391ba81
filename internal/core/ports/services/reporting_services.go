package services

import (
	"context"
	"time"

	"github.com/SscSPs/cafe_ledger/internal/core/domain"
)

// ReportingService defines the financial report operations.
// A nil cutoff covers every posted line; a non-nil cutoff is inclusive.
type ReportingService interface {
	TrialBalance(ctx context.Context, asOf *time.Time) (*domain.TrialBalance, error)
	BalanceSheetTotals(ctx context.Context, asOf *time.Time) ([]domain.TypeBalance, error)
	IncomeStatementTotals(ctx context.Context, asOf *time.Time) (*domain.IncomeStatementTotals, error)
	FinancialSummary(ctx context.Context, to *time.Time) (*domain.FinancialSummary, error)
}
