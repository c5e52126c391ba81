package repositories

import (
	"context"
	"time"

	"github.com/SscSPs/cafe_ledger/internal/core/domain"
)

// ReportingRepository defines the aggregate queries behind financial reports.
// A nil asOf includes every line; otherwise lines dated after asOf are excluded.
type ReportingRepository interface {
	// TrialBalanceRows returns one row per account, including accounts without lines, ordered by code.
	TrialBalanceRows(ctx context.Context, asOf *time.Time) ([]domain.TrialBalanceRow, error)

	// TypeTotals returns debit and credit sums grouped by account type.
	TypeTotals(ctx context.Context, asOf *time.Time) ([]domain.TypeTotal, error)
}
