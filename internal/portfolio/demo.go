package portfolio

import "github.com/kelsos/networth/internal/models"

// DemoAssets returns the sample holdings used by --demo.
func DemoAssets(currency string) []models.AssetInput {
	return []models.AssetInput{
		{Name: "Apple Inc.", Type: models.AssetTypeStock, Symbol: "AAPL", Quantity: 50, PurchasePrice: 150, CurrentPrice: 178.50, Currency: currency},
		{Name: "Tesla Inc.", Type: models.AssetTypeStock, Symbol: "TSLA", Quantity: 20, PurchasePrice: 200, CurrentPrice: 248.30, Currency: currency},
		{Name: "Gold Bar", Type: models.AssetTypeGold, Symbol: "XAU", Quantity: 2, PurchasePrice: 1800, CurrentPrice: 2050, Currency: currency},
		{Name: "Bitcoin", Type: models.AssetTypeCryptocurrency, Symbol: "BTC", Quantity: 0.5, PurchasePrice: 35000, CurrentPrice: 43250, Currency: currency},
		{Name: "Ethereum", Type: models.AssetTypeCryptocurrency, Symbol: "ETH", Quantity: 5, PurchasePrice: 1800, CurrentPrice: 2280, Currency: currency},
	}
}

// DemoDebts returns the sample liabilities used by --demo.
func DemoDebts(currency string) []models.DebtInput {
	return []models.DebtInput{
		{Name: "Home Mortgage", Type: "mortgage", Principal: 300000, InterestRate: 4.5, RemainingBalance: 245000, MonthlyPayment: 1520, Currency: currency},
		{Name: "Car Loan", Type: "auto", Principal: 25000, InterestRate: 6.0, RemainingBalance: 18500, MonthlyPayment: 480, Currency: currency},
	}
}
