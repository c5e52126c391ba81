package mapping

import (
	"testing"
	"time"

	"github.com/SscSPs/cafe_ledger/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToModelAccount_RootHasNullParent(t *testing.T) {
	m := ToModelAccount(domain.Account{AccountID: "a1", Code: "1000", AccountType: domain.Asset})
	assert.Nil(t, m.ParentAccountID)

	child := ToModelAccount(domain.Account{AccountID: "a2", ParentAccountID: "a1"})
	require.NotNil(t, child.ParentAccountID)
	assert.Equal(t, "a1", *child.ParentAccountID)
	assert.Equal(t, "a1", ToDomainAccount(child).ParentAccountID)
}

func TestToModelPayment_OptionalReferences(t *testing.T) {
	p := domain.Payment{
		PaymentID: "p1",
		Amount:    decimal.NewFromInt(500),
		Method:    domain.MethodCash,
		PaidAt:    time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC),
	}

	m := ToModelPayment(p)

	assert.Nil(t, m.InvoiceID)
	assert.Nil(t, m.BankAccountID)
	assert.Nil(t, m.JournalEntryID)
	assert.Equal(t, "cash", m.Method)

	title := "Main account"
	m.BankAccountName = &title
	back := ToDomainPayment(m)
	assert.Equal(t, "Main account", back.BankAccountName)
	assert.Equal(t, "", back.InvoiceID)
}
