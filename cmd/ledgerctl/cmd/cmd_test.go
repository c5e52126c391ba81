package cmd

import (
	"bytes"
	"testing"
	"time"

	"github.com/SscSPs/cafe_ledger/internal/core/domain"
	"github.com/SscSPs/cafe_ledger/internal/platform/config"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteTrialBalance(t *testing.T) {
	tb := &domain.TrialBalance{
		Rows: []domain.TrialBalanceRow{
			{Code: "1000", AccountName: "Cash on Hand", AccountType: domain.Asset, Debit: decimal.NewFromInt(1250), Credit: decimal.Zero, Balance: decimal.NewFromInt(1250)},
			{Code: "4000", AccountName: "Beverage Sales", AccountType: domain.Revenue, Debit: decimal.Zero, Credit: decimal.NewFromInt(1250), Balance: decimal.NewFromInt(-1250)},
		},
		Totals: domain.TrialBalanceTotals{Debit: decimal.NewFromInt(1250), Credit: decimal.NewFromInt(1250), Balance: decimal.Zero},
	}

	var buf bytes.Buffer
	require.NoError(t, writeTrialBalance(&buf, tb, "USD"))

	out := buf.String()
	assert.Contains(t, out, "Cash on Hand")
	assert.Contains(t, out, "$1,250.00")
	assert.Contains(t, out, "TOTAL")
	assert.NotContains(t, out, "out of balance")
}

func TestWriteTrialBalance_Unbalanced(t *testing.T) {
	tb := &domain.TrialBalance{
		Totals: domain.TrialBalanceTotals{Debit: decimal.NewFromInt(10), Credit: decimal.Zero, Balance: decimal.NewFromInt(10)},
	}

	var buf bytes.Buffer
	require.NoError(t, writeTrialBalance(&buf, tb, "USD"))

	assert.Contains(t, buf.String(), "WARNING: ledger is out of balance")
}

func TestTokenClaims(t *testing.T) {
	now := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)

	claims := tokenClaims("cafe-ledger", "alice", "north", "accounting.manage, ,*", 2*time.Hour, now)

	assert.Equal(t, "alice", claims.Subject)
	assert.Equal(t, "north", claims.TenantID)
	assert.Equal(t, []string{"accounting.manage", "*"}, claims.Permissions)
	assert.True(t, now.Add(2*time.Hour).Equal(claims.ExpiresAt.Time))
	assert.True(t, claims.Principal().Can(domain.PermManageAccounting))
}

func TestDatabaseURL(t *testing.T) {
	cfg := &config.Config{
		DatabaseURL:     "postgres://default",
		TenantDatabases: map[string]string{"north": "postgres://north"},
	}

	url, err := databaseURL(cfg, "")
	require.NoError(t, err)
	assert.Equal(t, "postgres://default", url)

	url, err = databaseURL(cfg, "north")
	require.NoError(t, err)
	assert.Equal(t, "postgres://north", url)

	_, err = databaseURL(cfg, "south")
	assert.Error(t, err)
}

func TestRunTrialBalance_ReturnsDateError(t *testing.T) {
	prev := trialBalanceTo
	t.Cleanup(func() { trialBalanceTo = prev })
	trialBalanceTo = "31/01/2024"

	err := runTrialBalance(trialBalanceCmd, nil)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid --to date")
}

func TestRunMigrate_ReturnsUnknownTenant(t *testing.T) {
	prev := tenant
	t.Cleanup(func() { tenant = prev })
	tenant = "no-such-tenant"
	t.Setenv("TENANT_DATABASES", "")

	err := runMigrate(migrateCmd, []string{"up"})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "no-such-tenant")
}
