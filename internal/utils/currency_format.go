package utils

import (
	"strings"

	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// FormatMoney renders amount in the display format of currencyCode, e.g.
// 1234.5 with USD returns "$1,234.50". Unknown codes fall back to a plain
// two decimal string suffixed by the code.
func FormatMoney(amount decimal.Decimal, currencyCode string) string {
	code := strings.ToUpper(currencyCode)
	currency := money.GetCurrency(code)
	if currency == nil {
		return amount.StringFixed(2) + " " + code
	}
	minor := amount.Shift(int32(currency.Fraction)).Round(0).IntPart()
	return money.New(minor, code).Display()
}

// FormatWithPrecision formats an amount with the given precision
func FormatWithPrecision(amount decimal.Decimal, precision int) string {
	return amount.Round(int32(precision)).StringFixed(int32(precision))
}
