package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kelsos/networth/internal/apperrors"
	"github.com/kelsos/networth/internal/config"
	"github.com/kelsos/networth/internal/form"
	"github.com/kelsos/networth/internal/models"
)

func newService(t *testing.T) *PortfolioService {
	t.Helper()
	return NewPortfolioService(config.NewConfig())
}

func TestPortfolioService_SeedDemo(t *testing.T) {
	svc := newService(t)
	require.NoError(t, svc.SeedDemo())

	assert.Len(t, svc.Assets(), 5)
	assert.Len(t, svc.Debts(), 2)
	assert.Equal(t, 263500.0, svc.Summary().TotalDebtValue)
}

func TestPortfolioService_SubmitAssetAddsThenEdits(t *testing.T) {
	svc := newService(t)

	f := form.AssetForm{
		Name:          "Apple Inc.",
		Type:          "stock",
		Symbol:        "aapl",
		Quantity:      "50",
		PurchasePrice: "150",
		CurrentPrice:  "178.50",
	}
	added, err := svc.SubmitAsset("", f)
	require.NoError(t, err)
	assert.Equal(t, "AAPL", added.Symbol)
	assert.Equal(t, "USD", added.Currency)

	f.CurrentPrice = "200"
	edited, err := svc.SubmitAsset(added.ID, f)
	require.NoError(t, err)
	assert.Equal(t, added.ID, edited.ID)
	assert.Equal(t, 200.0, edited.CurrentPrice)

	assert.Len(t, svc.Assets(), 1)
	assert.Equal(t, 10000.0, svc.Summary().TotalAssetValue)
}

func TestPortfolioService_SubmitAssetRejectsInvalidForm(t *testing.T) {
	svc := newService(t)

	_, err := svc.SubmitAsset("", form.AssetForm{Name: "x", Type: "stock", Quantity: "NaN", PurchasePrice: "1", CurrentPrice: "1"})
	assert.ErrorIs(t, err, apperrors.ErrInvalidInput)
	assert.Empty(t, svc.Assets())
}

func TestPortfolioService_EditMissingRecord(t *testing.T) {
	svc := newService(t)

	_, err := svc.SubmitDebt("missing", form.DebtForm{
		Name:             "Loan",
		Principal:        "100",
		InterestRate:     "1",
		RemainingBalance: "50",
		MonthlyPayment:   "5",
	})
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
	assert.Empty(t, svc.Debts())

	assert.ErrorIs(t, svc.DeleteAsset("missing"), apperrors.ErrAssetNotFound)
	assert.ErrorIs(t, svc.DeleteDebt("missing"), apperrors.ErrDebtNotFound)
}

func TestPortfolioService_DebtLifecycle(t *testing.T) {
	svc := newService(t)

	debt, err := svc.SubmitDebt("", form.DebtForm{
		Name:             "Car Loan",
		Type:             "auto",
		Principal:        "25000",
		InterestRate:     "6",
		RemainingBalance: "18500",
		MonthlyPayment:   "480",
	})
	require.NoError(t, err)

	balance := 18020.0
	updated, err := svc.UpdateDebt(debt.ID, models.DebtPatch{RemainingBalance: &balance})
	require.NoError(t, err)
	assert.Equal(t, 18020.0, updated.RemainingBalance)
	assert.Equal(t, "auto", updated.Type)
	assert.Equal(t, -18020.0, svc.Summary().NetWorth)

	require.NoError(t, svc.DeleteDebt(debt.ID))
	assert.Zero(t, svc.Summary().NetWorth)
}
