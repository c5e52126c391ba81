package domain

// AccountType defines the fundamental accounting type of an account.
type AccountType string

const (
	Asset     AccountType = "asset"
	Liability AccountType = "liability"
	Equity    AccountType = "equity"
	Revenue   AccountType = "revenue"
	Expense   AccountType = "expense"
)

// AccountTypes lists every valid account type in chart order.
var AccountTypes = []AccountType{Asset, Liability, Equity, Revenue, Expense}

// IsValid reports whether t is one of the five account types.
func (t AccountType) IsValid() bool {
	switch t {
	case Asset, Liability, Equity, Revenue, Expense:
		return true
	}
	return false
}

// Account is an entry in the chart of accounts.
// ParentAccountID is empty for root accounts.
type Account struct {
	AccountID       string      `json:"id"`
	Code            string      `json:"code"`
	Name            string      `json:"name"`
	AccountType     AccountType `json:"type"`
	ParentAccountID string      `json:"parent_id,omitempty"`
	IsActive        bool        `json:"is_active"`
	AuditFields
}
