package services

import (
	"errors"
	"fmt"

	"github.com/kelsos/networth/internal/apperrors"
	"github.com/kelsos/networth/internal/config"
	"github.com/kelsos/networth/internal/form"
	"github.com/kelsos/networth/internal/logger"
	"github.com/kelsos/networth/internal/models"
	"github.com/kelsos/networth/internal/portfolio"
)

// PortfolioService forwards user intent from the dashboard and the CLI into
// the portfolio store
type PortfolioService struct {
	config *config.Config
	store  *portfolio.Store
	parser *form.Parser
}

// NewPortfolioService creates a service around a fresh, empty store
func NewPortfolioService(cfg *config.Config) *PortfolioService {
	return NewPortfolioServiceWithStore(cfg, portfolio.NewStore())
}

// NewPortfolioServiceWithStore creates a service around an existing store
func NewPortfolioServiceWithStore(cfg *config.Config, store *portfolio.Store) *PortfolioService {
	return &PortfolioService{
		config: cfg,
		store:  store,
		parser: form.NewParser(cfg.Currency),
	}
}

// Currency is the currency used for new records and portfolio totals
func (s *PortfolioService) Currency() string {
	return s.config.Currency
}

// SeedDemo fills the store with the sample portfolio
func (s *PortfolioService) SeedDemo() error {
	logger.Info("Seeding demo portfolio")

	for _, in := range portfolio.DemoAssets(s.config.Currency) {
		if _, err := s.store.AddAsset(in); err != nil {
			return fmt.Errorf("failed to seed asset %s: %w", in.Name, err)
		}
	}

	for _, in := range portfolio.DemoDebts(s.config.Currency) {
		if _, err := s.store.AddDebt(in); err != nil {
			return fmt.Errorf("failed to seed debt %s: %w", in.Name, err)
		}
	}

	return nil
}

// SubmitAsset adds a new asset when id is empty and otherwise replaces every
// field of the asset with that id
func (s *PortfolioService) SubmitAsset(id string, f form.AssetForm) (models.Asset, error) {
	in, err := s.parser.Asset(f)
	if err != nil {
		logger.Warn("Rejected asset form: %v", err)
		return models.Asset{}, err
	}

	if id == "" {
		asset, err := s.store.AddAsset(in)
		if err != nil {
			return models.Asset{}, fmt.Errorf("failed to add asset: %w", err)
		}
		logger.Info("Added asset %s (%s) with id %s", asset.Name, asset.Type, asset.ID)
		return asset, nil
	}

	return s.UpdateAsset(id, in.Patch())
}

// UpdateAsset merges patch over the asset with the given id
func (s *PortfolioService) UpdateAsset(id string, patch models.AssetPatch) (models.Asset, error) {
	asset, err := s.store.UpdateAsset(id, patch)
	if err != nil {
		s.logFailure("update asset", id, err)
		return models.Asset{}, err
	}

	logger.Info("Updated asset %s (%s)", asset.Name, asset.ID)
	return asset, nil
}

// DeleteAsset removes the asset with the given id
func (s *PortfolioService) DeleteAsset(id string) error {
	if err := s.store.DeleteAsset(id); err != nil {
		s.logFailure("delete asset", id, err)
		return err
	}

	logger.Info("Deleted asset %s", id)
	return nil
}

// SubmitDebt adds a new debt when id is empty and otherwise replaces every
// field of the debt with that id
func (s *PortfolioService) SubmitDebt(id string, f form.DebtForm) (models.Debt, error) {
	in, err := s.parser.Debt(f)
	if err != nil {
		logger.Warn("Rejected debt form: %v", err)
		return models.Debt{}, err
	}

	if id == "" {
		debt, err := s.store.AddDebt(in)
		if err != nil {
			return models.Debt{}, fmt.Errorf("failed to add debt: %w", err)
		}
		logger.Info("Added debt %s (%s) with id %s", debt.Name, debt.Type, debt.ID)
		return debt, nil
	}

	return s.UpdateDebt(id, in.Patch())
}

// UpdateDebt merges patch over the debt with the given id
func (s *PortfolioService) UpdateDebt(id string, patch models.DebtPatch) (models.Debt, error) {
	debt, err := s.store.UpdateDebt(id, patch)
	if err != nil {
		s.logFailure("update debt", id, err)
		return models.Debt{}, err
	}

	logger.Info("Updated debt %s (%s)", debt.Name, debt.ID)
	return debt, nil
}

// DeleteDebt removes the debt with the given id
func (s *PortfolioService) DeleteDebt(id string) error {
	if err := s.store.DeleteDebt(id); err != nil {
		s.logFailure("delete debt", id, err)
		return err
	}

	logger.Info("Deleted debt %s", id)
	return nil
}

// Assets returns the assets in insertion order
func (s *PortfolioService) Assets() []models.Asset {
	return s.store.Assets()
}

// Debts returns the debts in insertion order
func (s *PortfolioService) Debts() []models.Debt {
	return s.store.Debts()
}

// Summary computes the current portfolio totals
func (s *PortfolioService) Summary() models.PortfolioSummary {
	summary := s.store.Summary()
	logger.Debug("Computed summary: assets=%.2f debts=%.2f net=%.2f",
		summary.TotalAssetValue, summary.TotalDebtValue, summary.NetWorth)
	return summary
}

func (s *PortfolioService) logFailure(action, id string, err error) {
	if errors.Is(err, apperrors.ErrNotFound) {
		logger.Warn("Cannot %s %s: %v", action, id, err)
		return
	}
	logger.Error("Failed to %s %s: %v", action, id, err)
}
