package portfolio

import "github.com/kelsos/networth/internal/models"

// Summarize derives the portfolio totals. Every declared asset type appears in
// the breakdown, with zero when nothing of that type is held, and any other
// type carried by an asset gets its own entry.
func Summarize(assets []models.Asset, debts []models.Debt) models.PortfolioSummary {
	byType := make(map[models.AssetType]float64, len(models.AssetTypes))
	for _, t := range models.AssetTypes {
		byType[t] = 0
	}

	for _, a := range assets {
		byType[a.Type] += a.Value()
	}

	summary := models.PortfolioSummary{ValueByAssetType: byType}

	// The total is the sum of the breakdown in a fixed order, so the two
	// always agree exactly.
	var totalAssets float64
	for _, t := range summary.Categories() {
		totalAssets += byType[t]
	}

	var totalDebts float64
	for _, d := range debts {
		totalDebts += d.RemainingBalance
	}

	summary.TotalAssetValue = totalAssets
	summary.TotalDebtValue = totalDebts
	summary.NetWorth = totalAssets - totalDebts
	return summary
}
