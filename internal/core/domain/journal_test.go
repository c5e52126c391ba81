package domain_test

import (
	"testing"
	"time"

	"github.com/SscSPs/cafe_ledger/internal/apperrors"
	"github.com/SscSPs/cafe_ledger/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestJournalEntry_Validate(t *testing.T) {
	date := time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC)
	d := decimal.RequireFromString

	tests := []struct {
		name    string
		entry   domain.JournalEntry
		wantErr error
	}{
		{
			name: "balanced two line entry",
			entry: domain.JournalEntry{
				EntryDate:   date,
				Description: "Cash sales",
				Lines: []domain.JournalLine{
					{AccountID: "cash", Debit: d("1000")},
					{AccountID: "sales", Credit: d("1000")},
				},
			},
		},
		{
			name: "balanced split entry",
			entry: domain.JournalEntry{
				EntryDate:   date,
				Description: "Supplier invoice",
				Lines: []domain.JournalLine{
					{AccountID: "coffee-beans", Debit: d("120.50")},
					{AccountID: "milk", Debit: d("79.50")},
					{AccountID: "payables", Credit: d("200.00")},
				},
			},
		},
		{
			name:    "no lines",
			entry:   domain.JournalEntry{EntryDate: date, Description: "Empty"},
			wantErr: domain.ErrJournalNoLines,
		},
		{
			name: "missing description",
			entry: domain.JournalEntry{
				EntryDate: date,
				Lines:     []domain.JournalLine{{AccountID: "cash", Debit: d("1")}},
			},
			wantErr: domain.ErrDescriptionMissing,
		},
		{
			name: "missing date",
			entry: domain.JournalEntry{
				Description: "No date",
				Lines:       []domain.JournalLine{{AccountID: "cash", Debit: d("1")}},
			},
			wantErr: domain.ErrEntryDateMissing,
		},
		{
			name: "line with both sides",
			entry: domain.JournalEntry{
				EntryDate:   date,
				Description: "Both",
				Lines: []domain.JournalLine{
					{AccountID: "cash", Debit: d("10"), Credit: d("10")},
				},
			},
			wantErr: domain.ErrLineBothSides,
		},
		{
			name: "negative amount",
			entry: domain.JournalEntry{
				EntryDate:   date,
				Description: "Negative",
				Lines: []domain.JournalLine{
					{AccountID: "cash", Debit: d("-10")},
					{AccountID: "sales", Credit: d("-10")},
				},
			},
			wantErr: domain.ErrLineNegative,
		},
		{
			name: "zero line",
			entry: domain.JournalEntry{
				EntryDate:   date,
				Description: "Zero",
				Lines: []domain.JournalLine{
					{AccountID: "cash"},
				},
			},
			wantErr: domain.ErrLineNoAmount,
		},
		{
			name: "unbalanced",
			entry: domain.JournalEntry{
				EntryDate:   date,
				Description: "Off by one",
				Lines: []domain.JournalLine{
					{AccountID: "cash", Debit: d("1000")},
					{AccountID: "sales", Credit: d("999")},
				},
			},
			wantErr: domain.ErrJournalUnbalanced,
		},
		{
			name: "sub-cent amounts that would round unbalanced",
			entry: domain.JournalEntry{
				EntryDate:   date,
				Description: "Half cents",
				Lines: []domain.JournalLine{
					{AccountID: "cash", Debit: d("0.005")},
					{AccountID: "cash", Debit: d("0.005")},
					{AccountID: "sales", Credit: d("0.01")},
				},
			},
			wantErr: domain.ErrLineAmountScale,
		},
		{
			name: "trailing zeros beyond two places",
			entry: domain.JournalEntry{
				EntryDate:   date,
				Description: "Padded",
				Lines: []domain.JournalLine{
					{AccountID: "cash", Debit: d("12.500")},
					{AccountID: "sales", Credit: d("12.50")},
				},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.entry.Validate()
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
			assert.ErrorIs(t, err, apperrors.ErrValidation)
		})
	}
}

func TestJournalEntry_Totals(t *testing.T) {
	entry := domain.JournalEntry{
		Lines: []domain.JournalLine{
			{Debit: decimal.NewFromInt(70)},
			{Debit: decimal.NewFromInt(30)},
			{Credit: decimal.NewFromInt(100)},
		},
	}

	debit, credit := entry.Totals()
	assert.True(t, debit.Equal(decimal.NewFromInt(100)))
	assert.True(t, credit.Equal(decimal.NewFromInt(100)))
}

func TestHasAmountScale(t *testing.T) {
	assert.True(t, domain.HasAmountScale(decimal.RequireFromString("1000")))
	assert.True(t, domain.HasAmountScale(decimal.RequireFromString("0.01")))
	assert.True(t, domain.HasAmountScale(decimal.RequireFromString("3.100")))
	assert.False(t, domain.HasAmountScale(decimal.RequireFromString("0.001")))
	assert.False(t, domain.HasAmountScale(decimal.RequireFromString("19.999")))
}

func TestDerivePaymentStatus(t *testing.T) {
	final := decimal.NewFromInt(1000)

	assert.Equal(t, domain.StatusPending, domain.DerivePaymentStatus(decimal.Zero, final))
	assert.Equal(t, domain.StatusPartial, domain.DerivePaymentStatus(decimal.NewFromInt(500), final))
	assert.Equal(t, domain.StatusPaid, domain.DerivePaymentStatus(decimal.NewFromInt(1000), final))
	assert.Equal(t, domain.StatusPaid, domain.DerivePaymentStatus(decimal.NewFromInt(1200), final))
}

func TestPrincipal_Can(t *testing.T) {
	accountant := domain.Principal{Permissions: []domain.Permission{domain.PermManageAccounting}}
	admin := domain.Principal{Permissions: []domain.Permission{domain.PermAll}}
	waiter := domain.Principal{Permissions: []domain.Permission{"orders.take"}}

	assert.True(t, accountant.Can(domain.PermManageAccounting))
	assert.True(t, admin.Can(domain.PermManageAccounting))
	assert.False(t, waiter.Can(domain.PermManageAccounting))
	assert.False(t, domain.Principal{}.Can(domain.PermManageAccounting))
}
