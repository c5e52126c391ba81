package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// TrialBalanceRow represents a single account in a trial balance report.
// Balance is the raw Debit - Credit difference.
type TrialBalanceRow struct {
	AccountID   string          `json:"account_id"`
	Code        string          `json:"code"`
	AccountName string          `json:"name"`
	AccountType AccountType     `json:"type"`
	Debit       decimal.Decimal `json:"debit"`
	Credit      decimal.Decimal `json:"credit"`
	Balance     decimal.Decimal `json:"balance"`
}

// TrialBalanceTotals sums every row of a trial balance.
type TrialBalanceTotals struct {
	Debit   decimal.Decimal `json:"debit"`
	Credit  decimal.Decimal `json:"credit"`
	Balance decimal.Decimal `json:"balance"`
}

// TrialBalance is the full report: one row per account ordered by code.
// AsOf is nil when the report covers every posted line.
type TrialBalance struct {
	AsOf   *time.Time         `json:"as_of,omitempty"`
	Rows   []TrialBalanceRow  `json:"rows"`
	Totals TrialBalanceTotals `json:"totals"`
}

// TypeTotal is the debit and credit sum of all lines posted to accounts of one type.
type TypeTotal struct {
	AccountType AccountType     `json:"type"`
	Debit       decimal.Decimal `json:"debit"`
	Credit      decimal.Decimal `json:"credit"`
}

// TypeBalance is the raw Debit - Credit balance of one account type.
//
// Liability and equity are credit-normal, so their balances are negative
// under this formula. The sign is reinterpreted, if at all, by the client.
type TypeBalance struct {
	AccountType AccountType     `json:"type"`
	Balance     decimal.Decimal `json:"balance"`
}

// IncomeStatementTotals summarises revenue and expense activity.
type IncomeStatementTotals struct {
	Revenue   decimal.Decimal `json:"revenue"`
	Expense   decimal.Decimal `json:"expense"`
	NetIncome decimal.Decimal `json:"net_income"`
}

// FinancialSummary combines balance-sheet totals and income-statement totals.
type FinancialSummary struct {
	Balances []TypeBalance         `json:"balances"`
	Income   IncomeStatementTotals `json:"income"`
}
