package validation

import (
	"testing"

	"github.com/SscSPs/cafe_ledger/internal/core/domain"
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sample struct {
	Type   domain.AccountType `validate:"required,accounttype"`
	Amount decimal.Decimal    `validate:"gte=0"`
}

func TestRegisterOn(t *testing.T) {
	v := validator.New()
	require.NoError(t, RegisterOn(v))

	assert.NoError(t, v.Struct(sample{Type: domain.Asset, Amount: decimal.NewFromInt(5)}))
	assert.Error(t, v.Struct(sample{Type: "income", Amount: decimal.NewFromInt(5)}))
	assert.Error(t, v.Struct(sample{Type: domain.Expense, Amount: decimal.NewFromInt(-1)}))
}
