// Package display formats portfolio figures for the dashboard and the CLI.
// Ratios with a zero denominator are reported as unavailable instead of
// producing NaN or Inf.
package display

import (
	"fmt"
	"strings"

	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// Currency formats amount with the currency's symbol and minor unit digits,
// e.g. "$13,025.00". Unknown codes fall back to "13025.00 ZZZ".
func Currency(amount float64, code string) string {
	code = strings.ToUpper(strings.TrimSpace(code))
	cur := money.GetCurrency(code)
	if cur == nil {
		return fmt.Sprintf("%s %s", decimal.NewFromFloat(amount).StringFixed(2), code)
	}

	minor := decimal.NewFromFloat(amount).Shift(int32(cur.Fraction)).Round(0).IntPart()
	return money.New(minor, cur.Code).Display()
}

// CurrencyWhole formats amount rounded to whole units, e.g. "$245,000".
func CurrencyWhole(amount float64, code string) string {
	code = strings.ToUpper(strings.TrimSpace(code))
	rounded := decimal.NewFromFloat(amount).Round(0).IntPart()

	cur := money.GetCurrency(code)
	if cur == nil {
		return fmt.Sprintf("%d %s", rounded, code)
	}
	return money.NewFormatter(0, cur.Decimal, cur.Thousand, cur.Grapheme, cur.Template).Format(rounded)
}

// SignedCurrency prefixes non-negative amounts with "+".
func SignedCurrency(amount float64, code string) string {
	if amount >= 0 {
		return "+" + Currency(amount, code)
	}
	return Currency(amount, code)
}
