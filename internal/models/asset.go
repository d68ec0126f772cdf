package models

// AssetType is the category an asset is grouped under in the distribution breakdown.
type AssetType string

const (
	AssetTypeStock          AssetType = "stock"
	AssetTypeGold           AssetType = "gold"
	AssetTypeCryptocurrency AssetType = "cryptocurrency"
)

// AssetTypes lists the declared categories in display order.
var AssetTypes = []AssetType{
	AssetTypeStock,
	AssetTypeGold,
	AssetTypeCryptocurrency,
}

// Known reports whether t is one of the declared categories.
func (t AssetType) Known() bool {
	for _, known := range AssetTypes {
		if t == known {
			return true
		}
	}
	return false
}

// Label returns the plural heading used on cards and charts.
func (t AssetType) Label() string {
	switch t {
	case AssetTypeStock:
		return "Stocks"
	case AssetTypeGold:
		return "Gold"
	case AssetTypeCryptocurrency:
		return "Crypto"
	default:
		return string(t)
	}
}

// Asset is a held position. ID is assigned by the store and never changes.
type Asset struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	Type          AssetType `json:"type"`
	Symbol        string    `json:"symbol"`
	Quantity      float64   `json:"quantity"`
	PurchasePrice float64   `json:"purchasePrice"`
	CurrentPrice  float64   `json:"currentPrice"`
	Currency      string    `json:"currency"`
}

// Value is quantity times current price.
func (a Asset) Value() float64 {
	return a.Quantity * a.CurrentPrice
}

// Cost is quantity times purchase price.
func (a Asset) Cost() float64 {
	return a.Quantity * a.PurchasePrice
}

// ProfitLoss is the unrealized gain (or loss when negative).
func (a Asset) ProfitLoss() float64 {
	return a.Value() - a.Cost()
}

// AssetInput carries every asset field except the ID.
type AssetInput struct {
	Name          string    `json:"name"`
	Type          AssetType `json:"type"`
	Symbol        string    `json:"symbol"`
	Quantity      float64   `json:"quantity"`
	PurchasePrice float64   `json:"purchasePrice"`
	CurrentPrice  float64   `json:"currentPrice"`
	Currency      string    `json:"currency"`
}

// Asset builds the record stored under id.
func (in AssetInput) Asset(id string) Asset {
	return Asset{
		ID:            id,
		Name:          in.Name,
		Type:          in.Type,
		Symbol:        in.Symbol,
		Quantity:      in.Quantity,
		PurchasePrice: in.PurchasePrice,
		CurrentPrice:  in.CurrentPrice,
		Currency:      in.Currency,
	}
}

// Patch returns a patch that replaces every field with the input's values.
func (in AssetInput) Patch() AssetPatch {
	return AssetPatch{
		Name:          &in.Name,
		Type:          &in.Type,
		Symbol:        &in.Symbol,
		Quantity:      &in.Quantity,
		PurchasePrice: &in.PurchasePrice,
		CurrentPrice:  &in.CurrentPrice,
		Currency:      &in.Currency,
	}
}

// AssetPatch is a partial update. Nil fields keep their current value.
type AssetPatch struct {
	Name          *string    `json:"name,omitempty"`
	Type          *AssetType `json:"type,omitempty"`
	Symbol        *string    `json:"symbol,omitempty"`
	Quantity      *float64   `json:"quantity,omitempty"`
	PurchasePrice *float64   `json:"purchasePrice,omitempty"`
	CurrentPrice  *float64   `json:"currentPrice,omitempty"`
	Currency      *string    `json:"currency,omitempty"`
}

// Apply returns a copy of a with the patch merged over it. The ID is kept.
func (p AssetPatch) Apply(a Asset) Asset {
	if p.Name != nil {
		a.Name = *p.Name
	}
	if p.Type != nil {
		a.Type = *p.Type
	}
	if p.Symbol != nil {
		a.Symbol = *p.Symbol
	}
	if p.Quantity != nil {
		a.Quantity = *p.Quantity
	}
	if p.PurchasePrice != nil {
		a.PurchasePrice = *p.PurchasePrice
	}
	if p.CurrentPrice != nil {
		a.CurrentPrice = *p.CurrentPrice
	}
	if p.Currency != nil {
		a.Currency = *p.Currency
	}
	return a
}
