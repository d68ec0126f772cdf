package form

import (
	"strings"

	"github.com/kelsos/networth/internal/models"
)

// AssetForm holds the raw asset fields as typed in the dashboard.
type AssetForm struct {
	Name          string `json:"name" validate:"required,max=100"`
	Type          string `json:"type" validate:"required,asset_type"`
	Symbol        string `json:"symbol" validate:"max=12"`
	Quantity      string `json:"quantity" validate:"required"`
	PurchasePrice string `json:"purchasePrice" validate:"required"`
	CurrentPrice  string `json:"currentPrice" validate:"required"`
	Currency      string `json:"currency" validate:"omitempty,iso4217"`
}

// AssetFormFrom pre-fills a form with an existing asset for editing.
func AssetFormFrom(a models.Asset) AssetForm {
	return AssetForm{
		Name:          a.Name,
		Type:          string(a.Type),
		Symbol:        a.Symbol,
		Quantity:      text(a.Quantity),
		PurchasePrice: text(a.PurchasePrice),
		CurrentPrice:  text(a.CurrentPrice),
		Currency:      a.Currency,
	}
}

// Asset validates f and converts it into a store input. The symbol is
// upper-cased and a blank currency falls back to the parser default.
func (p *Parser) Asset(f AssetForm) (models.AssetInput, error) {
	f.Name = strings.TrimSpace(f.Name)
	f.Type = strings.ToLower(strings.TrimSpace(f.Type))
	f.Symbol = strings.ToUpper(strings.TrimSpace(f.Symbol))
	f.Currency = strings.ToUpper(strings.TrimSpace(f.Currency))

	fields := make(map[string]string)
	p.check(f, fields)

	in := models.AssetInput{
		Name:          f.Name,
		Type:          models.AssetType(f.Type),
		Symbol:        f.Symbol,
		Quantity:      number(fields, "quantity", f.Quantity, true),
		PurchasePrice: number(fields, "purchasePrice", f.PurchasePrice, true),
		CurrentPrice:  number(fields, "currentPrice", f.CurrentPrice, true),
		Currency:      f.Currency,
	}
	if in.Currency == "" {
		in.Currency = p.currency
	}

	if len(fields) > 0 {
		return models.AssetInput{}, &Error{Fields: fields}
	}
	return in, nil
}
