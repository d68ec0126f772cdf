package display

import (
	"fmt"

	"github.com/kelsos/networth/internal/models"
)

// NotAvailable is shown in place of a ratio whose denominator is zero.
const NotAvailable = "N/A"

// ProfitLossPercent is the gain relative to cost. ok is false when the asset
// has no cost basis.
func ProfitLossPercent(a models.Asset) (pct float64, ok bool) {
	cost := a.Cost()
	if cost == 0 {
		return 0, false
	}
	return a.ProfitLoss() / cost * 100, true
}

// PaidPercent is the share of the principal already repaid. ok is false when
// the principal is zero.
func PaidPercent(d models.Debt) (pct float64, ok bool) {
	if d.Principal == 0 {
		return 0, false
	}
	return d.Paid() / d.Principal * 100, true
}

// Allocation is value's share of total in percent, zero when total is not positive.
func Allocation(value, total float64) float64 {
	if total <= 0 {
		return 0
	}
	return value / total * 100
}

// Percent renders pct with two decimals, or NotAvailable.
func Percent(pct float64, ok bool) string {
	if !ok {
		return NotAvailable
	}
	return fmt.Sprintf("%.2f%%", pct)
}

// SignedPercent renders pct with an explicit sign, or NotAvailable.
func SignedPercent(pct float64, ok bool) string {
	if !ok {
		return NotAvailable
	}
	return fmt.Sprintf("%+.2f%%", pct)
}

// Share renders an allocation with one decimal.
func Share(pct float64) string {
	return fmt.Sprintf("%.1f%%", pct)
}

// DebtIcon picks the glyph shown next to a debt of the given type.
func DebtIcon(debtType string) string {
	switch debtType {
	case "mortgage":
		return "🏠"
	case "auto":
		return "🚗"
	case "student":
		return "🎓"
	case "credit":
		return "💳"
	default:
		return "📋"
	}
}

// AssetIcon picks the glyph shown next to an asset category.
func AssetIcon(t models.AssetType) string {
	switch t {
	case models.AssetTypeStock:
		return "📈"
	case models.AssetTypeGold:
		return "🥇"
	case models.AssetTypeCryptocurrency:
		return "₿"
	default:
		return "•"
	}
}
