package services_test

import (
	"testing"
	"time"

	"github.com/SscSPs/cafe_ledger/internal/apperrors"
	"github.com/SscSPs/cafe_ledger/internal/core/domain"
	"github.com/SscSPs/cafe_ledger/internal/core/services"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReportingService_TrialBalance(t *testing.T) {
	repo := new(MockReportingRepository)
	svc := services.NewReportingService(repo)
	ctx := accountantCtx()
	asOf := time.Date(2024, 1, 31, 0, 0, 0, 0, time.UTC)

	rows := []domain.TrialBalanceRow{
		{AccountID: "cash", Code: "1000", AccountType: domain.Asset, Debit: decimal.NewFromInt(1000), Credit: decimal.Zero, Balance: decimal.NewFromInt(1000)},
		{AccountID: "sales", Code: "4000", AccountType: domain.Revenue, Debit: decimal.Zero, Credit: decimal.NewFromInt(1000), Balance: decimal.NewFromInt(-1000)},
		{AccountID: "rent", Code: "6000", AccountType: domain.Expense, Debit: decimal.Zero, Credit: decimal.Zero, Balance: decimal.Zero},
	}
	repo.On("TrialBalanceRows", ctx, &asOf).Return(rows, nil).Once()

	tb, err := svc.TrialBalance(ctx, &asOf)

	require.NoError(t, err)
	assert.Equal(t, &asOf, tb.AsOf)
	assert.Len(t, tb.Rows, 3)
	assert.True(t, tb.Totals.Debit.Equal(decimal.NewFromInt(1000)))
	assert.True(t, tb.Totals.Credit.Equal(decimal.NewFromInt(1000)))
	assert.True(t, tb.Totals.Balance.IsZero())
	repo.AssertExpectations(t)
}

func TestReportingService_EmptyLedger(t *testing.T) {
	repo := new(MockReportingRepository)
	svc := services.NewReportingService(repo)
	ctx := accountantCtx()

	repo.On("TrialBalanceRows", ctx, (*time.Time)(nil)).Return(nil, nil).Once()
	repo.On("TypeTotals", ctx, (*time.Time)(nil)).Return(nil, nil)

	tb, err := svc.TrialBalance(ctx, nil)
	require.NoError(t, err)
	assert.NotNil(t, tb.Rows)
	assert.Empty(t, tb.Rows)
	assert.True(t, tb.Totals.Balance.IsZero())

	balances, err := svc.BalanceSheetTotals(ctx, nil)
	require.NoError(t, err)
	require.Len(t, balances, 3)
	for _, b := range balances {
		assert.True(t, b.Balance.IsZero(), "type %s", b.AccountType)
	}
}

func TestReportingService_FinancialSummary(t *testing.T) {
	repo := new(MockReportingRepository)
	svc := services.NewReportingService(repo)
	ctx := accountantCtx()

	totals := []domain.TypeTotal{
		{AccountType: domain.Asset, Debit: decimal.NewFromInt(1500), Credit: decimal.NewFromInt(300)},
		{AccountType: domain.Liability, Debit: decimal.Zero, Credit: decimal.NewFromInt(200)},
		{AccountType: domain.Revenue, Debit: decimal.Zero, Credit: decimal.NewFromInt(1000)},
		{AccountType: domain.Expense, Debit: decimal.NewFromInt(300), Credit: decimal.Zero},
	}
	repo.On("TypeTotals", ctx, (*time.Time)(nil)).Return(totals, nil).Once()

	summary, err := svc.FinancialSummary(ctx, nil)

	require.NoError(t, err)
	require.Len(t, summary.Balances, 3)
	assert.Equal(t, domain.Asset, summary.Balances[0].AccountType)
	assert.True(t, summary.Balances[0].Balance.Equal(decimal.NewFromInt(1200)))
	assert.True(t, summary.Balances[1].Balance.Equal(decimal.NewFromInt(-200)), "liability keeps the raw sign")
	assert.True(t, summary.Balances[2].Balance.IsZero())
	assert.True(t, summary.Income.Revenue.Equal(decimal.NewFromInt(1000)))
	assert.True(t, summary.Income.Expense.Equal(decimal.NewFromInt(300)))
	assert.True(t, summary.Income.NetIncome.Equal(decimal.NewFromInt(700)))
	repo.AssertExpectations(t)
}

func TestReportingService_RequiresCapability(t *testing.T) {
	repo := new(MockReportingRepository)
	svc := services.NewReportingService(repo)

	_, err := svc.TrialBalance(waiterCtx(), nil)
	assert.ErrorIs(t, err, apperrors.ErrForbidden)

	_, err = svc.IncomeStatementTotals(waiterCtx(), nil)
	assert.ErrorIs(t, err, apperrors.ErrForbidden)
	repo.AssertNotCalled(t, "TypeTotals")
}
