package utils

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestFormatMoney(t *testing.T) {
	assert.Equal(t, "$1,234.50", FormatMoney(decimal.RequireFromString("1234.5"), "usd"))
	assert.Equal(t, "-$1,000.00", FormatMoney(decimal.NewFromInt(-1000), "USD"))
	assert.Equal(t, "12.30 XYZ", FormatMoney(decimal.RequireFromString("12.3"), "XYZ"))
}

func TestFormatWithPrecision(t *testing.T) {
	assert.Equal(t, "12.35", FormatWithPrecision(decimal.RequireFromString("12.3456"), 2))
	assert.Equal(t, "12", FormatWithPrecision(decimal.RequireFromString("12.3456"), 0))
}
