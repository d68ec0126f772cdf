package models

import "sort"

// PortfolioSummary is derived from the current assets and debts on every read.
type PortfolioSummary struct {
	TotalAssetValue  float64               `json:"totalAssetValue"`
	TotalDebtValue   float64               `json:"totalDebtValue"`
	NetWorth         float64               `json:"netWorth"`
	ValueByAssetType map[AssetType]float64 `json:"valueByAssetType"`
}

// Categories returns the breakdown keys: declared types first, in declaration
// order, then any other type found in the data sorted by name.
func (s PortfolioSummary) Categories() []AssetType {
	categories := make([]AssetType, 0, len(s.ValueByAssetType))
	for _, t := range AssetTypes {
		if _, ok := s.ValueByAssetType[t]; ok {
			categories = append(categories, t)
		}
	}

	var extra []AssetType
	for t := range s.ValueByAssetType {
		if !t.Known() {
			extra = append(extra, t)
		}
	}
	sort.Slice(extra, func(i, j int) bool { return extra[i] < extra[j] })

	return append(categories, extra...)
}
