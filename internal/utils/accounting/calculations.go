package accounting

import (
	"github.com/SscSPs/cafe_ledger/internal/core/domain"
	"github.com/shopspring/decimal"
)

// RawBalance is the debit-positive difference used by every report.
func RawBalance(debit, credit decimal.Decimal) decimal.Decimal {
	return debit.Sub(credit)
}

// SumTrialBalance totals the debit, credit and balance columns.
// For a ledger in which every entry balances, Balance is zero.
func SumTrialBalance(rows []domain.TrialBalanceRow) domain.TrialBalanceTotals {
	totals := domain.TrialBalanceTotals{Debit: decimal.Zero, Credit: decimal.Zero, Balance: decimal.Zero}
	for _, row := range rows {
		totals.Debit = totals.Debit.Add(row.Debit)
		totals.Credit = totals.Credit.Add(row.Credit)
		totals.Balance = totals.Balance.Add(row.Balance)
	}
	return totals
}

// BalanceSheetTotals returns the raw balance of asset, liability and equity,
// in that order. Types without activity report zero. Signs are not flipped:
// liability and equity come out negative when they are in credit.
func BalanceSheetTotals(totals []domain.TypeTotal) []domain.TypeBalance {
	byType := indexTypeTotals(totals)
	out := make([]domain.TypeBalance, 0, 3)
	for _, t := range []domain.AccountType{domain.Asset, domain.Liability, domain.Equity} {
		tt := byType[t]
		out = append(out, domain.TypeBalance{AccountType: t, Balance: RawBalance(tt.Debit, tt.Credit)})
	}
	return out
}

// IncomeStatement computes revenue (credit-normal), expense (debit-normal) and net income.
func IncomeStatement(totals []domain.TypeTotal) domain.IncomeStatementTotals {
	byType := indexTypeTotals(totals)
	rev := byType[domain.Revenue]
	exp := byType[domain.Expense]

	revenue := rev.Credit.Sub(rev.Debit)
	expense := exp.Debit.Sub(exp.Credit)
	return domain.IncomeStatementTotals{
		Revenue:   revenue,
		Expense:   expense,
		NetIncome: revenue.Sub(expense),
	}
}

func indexTypeTotals(totals []domain.TypeTotal) map[domain.AccountType]domain.TypeTotal {
	byType := make(map[domain.AccountType]domain.TypeTotal, len(domain.AccountTypes))
	for _, t := range domain.AccountTypes {
		byType[t] = domain.TypeTotal{AccountType: t, Debit: decimal.Zero, Credit: decimal.Zero}
	}
	for _, tt := range totals {
		cur := byType[tt.AccountType]
		cur.Debit = cur.Debit.Add(tt.Debit)
		cur.Credit = cur.Credit.Add(tt.Credit)
		byType[tt.AccountType] = cur
	}
	return byType
}

// AccountTree is an arena of accounts indexed by position, with parent links
// stored as indexes into the same arena (-1 for roots and dangling parents).
type AccountTree struct {
	index   map[string]int
	parents []int
}

// NewAccountTree builds the arena from a flat chart of accounts.
func NewAccountTree(accounts []domain.Account) *AccountTree {
	tree := &AccountTree{
		index:   make(map[string]int, len(accounts)),
		parents: make([]int, len(accounts)),
	}
	for i, acc := range accounts {
		tree.index[acc.AccountID] = i
	}
	for i, acc := range accounts {
		tree.parents[i] = -1
		if p, ok := tree.index[acc.ParentAccountID]; ok && acc.ParentAccountID != "" {
			tree.parents[i] = p
		}
	}
	return tree
}

// Contains reports whether the arena holds accountID.
func (t *AccountTree) Contains(accountID string) bool {
	_, ok := t.index[accountID]
	return ok
}

// WouldCycle reports whether making parentID the parent of accountID
// puts accountID in its own ancestor chain.
func (t *AccountTree) WouldCycle(accountID, parentID string) bool {
	if parentID == "" {
		return false
	}
	if accountID == parentID {
		return true
	}
	target, ok := t.index[accountID]
	if !ok {
		return false
	}
	cur, ok := t.index[parentID]
	if !ok {
		return false
	}
	// bounded by the arena size so a pre-existing loop cannot spin forever
	for steps := 0; cur != -1 && steps <= len(t.parents); steps++ {
		if cur == target {
			return true
		}
		cur = t.parents[cur]
	}
	return cur != -1
}
