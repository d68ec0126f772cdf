package form

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kelsos/networth/internal/apperrors"
	"github.com/kelsos/networth/internal/models"
)

func validAssetForm() AssetForm {
	return AssetForm{
		Name:          " Bitcoin ",
		Type:          "cryptocurrency",
		Symbol:        "btc",
		Quantity:      "0.5",
		PurchasePrice: "35000",
		CurrentPrice:  "43250.00",
	}
}

func validDebtForm() DebtForm {
	return DebtForm{
		Name:             "Car Loan",
		Type:             "auto",
		Principal:        "25000",
		InterestRate:     "6.0",
		RemainingBalance: "18500",
		MonthlyPayment:   "480",
	}
}

func fieldErrors(t *testing.T, err error) map[string]string {
	t.Helper()
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrInvalidInput)

	var formErr *Error
	require.True(t, errors.As(err, &formErr))
	return formErr.Fields
}

func TestNewParser_RegistersAssetTypeRule(t *testing.T) {
	var p *Parser
	require.NotPanics(t, func() { p = NewParser("USD") })

	f := validAssetForm()
	f.Type = "bond"
	_, err := p.Asset(f)
	assert.Equal(t, "must be one of stock, gold, cryptocurrency", fieldErrors(t, err)["type"])
}

func TestParser_Asset(t *testing.T) {
	p := NewParser("usd")

	in, err := p.Asset(validAssetForm())
	require.NoError(t, err)

	assert.Equal(t, models.AssetInput{
		Name:          "Bitcoin",
		Type:          models.AssetTypeCryptocurrency,
		Symbol:        "BTC",
		Quantity:      0.5,
		PurchasePrice: 35000,
		CurrentPrice:  43250,
		Currency:      "USD",
	}, in)
}

func TestParser_AssetKeepsExplicitCurrency(t *testing.T) {
	f := validAssetForm()
	f.Currency = "eur"

	in, err := NewParser("USD").Asset(f)
	require.NoError(t, err)
	assert.Equal(t, "EUR", in.Currency)
}

func TestParser_AssetRejectsInvalidFields(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(f *AssetForm)
		field  string
		msg    string
	}{
		{"blank name", func(f *AssetForm) { f.Name = "   " }, "name", "is required"},
		{"unknown type", func(f *AssetForm) { f.Type = "bond" }, "type", "must be one of stock, gold, cryptocurrency"},
		{"non numeric quantity", func(f *AssetForm) { f.Quantity = "lots" }, "quantity", "must be a number"},
		{"nan price", func(f *AssetForm) { f.CurrentPrice = "NaN" }, "currentPrice", "must be a number"},
		{"infinite price", func(f *AssetForm) { f.PurchasePrice = "1e400" }, "purchasePrice", "must be a finite number"},
		{"negative quantity", func(f *AssetForm) { f.Quantity = "-1" }, "quantity", "cannot be negative"},
		{"missing price", func(f *AssetForm) { f.CurrentPrice = "" }, "currentPrice", "is required"},
		{"bad currency", func(f *AssetForm) { f.Currency = "XYZ" }, "currency", "must be an ISO 4217 currency code"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := validAssetForm()
			tt.mutate(&f)

			in, err := NewParser("USD").Asset(f)
			fields := fieldErrors(t, err)

			assert.Equal(t, tt.msg, fields[tt.field])
			assert.Len(t, fields, 1)
			assert.Equal(t, models.AssetInput{}, in)
		})
	}
}

func TestParser_AssetCollectsEveryField(t *testing.T) {
	_, err := NewParser("USD").Asset(AssetForm{})
	fields := fieldErrors(t, err)

	assert.Len(t, fields, 5)
	assert.Contains(t, fields, "name")
	assert.Contains(t, fields, "type")
	assert.Contains(t, fields, "quantity")
	assert.Contains(t, fields, "purchasePrice")
	assert.Contains(t, fields, "currentPrice")
	assert.Contains(t, err.Error(), "currentPrice: is required")
}

func TestParser_Debt(t *testing.T) {
	in, err := NewParser("USD").Debt(validDebtForm())
	require.NoError(t, err)

	assert.Equal(t, models.DebtInput{
		Name:             "Car Loan",
		Type:             "auto",
		Principal:        25000,
		InterestRate:     6,
		RemainingBalance: 18500,
		MonthlyPayment:   480,
		Currency:         "USD",
	}, in)
}

func TestParser_DebtTypeIsFreeForm(t *testing.T) {
	f := validDebtForm()
	f.Type = "Family Loan"

	in, err := NewParser("USD").Debt(f)
	require.NoError(t, err)
	assert.Equal(t, "family loan", in.Type)

	f.Type = ""
	in, err = NewParser("USD").Debt(f)
	require.NoError(t, err)
	assert.Equal(t, "other", in.Type)
}

func TestParser_DebtRejectsInvalidFields(t *testing.T) {
	f := validDebtForm()
	f.Principal = "-100"
	f.MonthlyPayment = "abc"
	f.InterestRate = "-0.5"

	_, err := NewParser("USD").Debt(f)
	fields := fieldErrors(t, err)

	assert.Equal(t, map[string]string{
		"principal":      "cannot be negative",
		"monthlyPayment": "must be a number",
	}, fields)
}

func TestAssetFormFrom_RoundTrip(t *testing.T) {
	asset := models.Asset{
		ID:            "id-1",
		Name:          "Ethereum",
		Type:          models.AssetTypeCryptocurrency,
		Symbol:        "ETH",
		Quantity:      5,
		PurchasePrice: 1800,
		CurrentPrice:  2280.5,
		Currency:      "USD",
	}

	f := AssetFormFrom(asset)
	assert.Equal(t, "2280.5", f.CurrentPrice)

	in, err := NewParser("USD").Asset(f)
	require.NoError(t, err)
	assert.Equal(t, asset, in.Asset("id-1"))
}

func TestDebtFormFrom_RoundTrip(t *testing.T) {
	debt := models.Debt{
		ID:               "id-2",
		Name:             "Home Mortgage",
		Type:             "mortgage",
		Principal:        300000,
		InterestRate:     4.5,
		RemainingBalance: 245000,
		MonthlyPayment:   1520,
		Currency:         "USD",
	}

	in, err := NewParser("USD").Debt(DebtFormFrom(debt))
	require.NoError(t, err)
	assert.Equal(t, debt, in.Debt("id-2"))
}
