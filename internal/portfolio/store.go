package portfolio

import (
	"fmt"
	"math"
	"sync"

	"github.com/google/uuid"

	"github.com/kelsos/networth/internal/apperrors"
	"github.com/kelsos/networth/internal/models"
)

// Store owns the assets and debts of one portfolio. The zero value is not
// usable; create stores with NewStore.
type Store struct {
	mu     sync.RWMutex
	assets []models.Asset
	debts  []models.Debt
	newID  func() string
}

// NewStore creates an empty portfolio store
func NewStore() *Store {
	return &Store{
		assets: []models.Asset{},
		debts:  []models.Debt{},
		newID:  uuid.NewString,
	}
}

// AddAsset stores a new asset under a fresh ID and returns the stored record
func (s *Store) AddAsset(in models.AssetInput) (models.Asset, error) {
	asset := in.Asset("")
	if err := checkAsset(asset); err != nil {
		return models.Asset{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	asset.ID = s.newID()
	s.assets = append(s.assets, asset)
	return asset, nil
}

// UpdateAsset merges patch over the asset with the given ID. The asset keeps
// its ID and its position.
func (s *Store) UpdateAsset(id string, patch models.AssetPatch) (models.Asset, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.assetIndex(id)
	if i < 0 {
		return models.Asset{}, fmt.Errorf("%w: %s", apperrors.ErrAssetNotFound, id)
	}

	updated := patch.Apply(s.assets[i])
	updated.ID = id
	if err := checkAsset(updated); err != nil {
		return models.Asset{}, err
	}

	s.assets[i] = updated
	return updated, nil
}

// DeleteAsset removes the asset with the given ID
func (s *Store) DeleteAsset(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.assetIndex(id)
	if i < 0 {
		return fmt.Errorf("%w: %s", apperrors.ErrAssetNotFound, id)
	}

	s.assets = append(s.assets[:i:i], s.assets[i+1:]...)
	return nil
}

// Asset returns the asset with the given ID
func (s *Store) Asset(id string) (models.Asset, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	i := s.assetIndex(id)
	if i < 0 {
		return models.Asset{}, false
	}
	return s.assets[i], true
}

// Assets returns a copy of the assets in insertion order
func (s *Store) Assets() []models.Asset {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return append([]models.Asset(nil), s.assets...)
}

// AddDebt stores a new debt under a fresh ID and returns the stored record
func (s *Store) AddDebt(in models.DebtInput) (models.Debt, error) {
	debt := in.Debt("")
	if err := checkDebt(debt); err != nil {
		return models.Debt{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	debt.ID = s.newID()
	s.debts = append(s.debts, debt)
	return debt, nil
}

// UpdateDebt merges patch over the debt with the given ID. The debt keeps its
// ID and its position.
func (s *Store) UpdateDebt(id string, patch models.DebtPatch) (models.Debt, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.debtIndex(id)
	if i < 0 {
		return models.Debt{}, fmt.Errorf("%w: %s", apperrors.ErrDebtNotFound, id)
	}

	updated := patch.Apply(s.debts[i])
	updated.ID = id
	if err := checkDebt(updated); err != nil {
		return models.Debt{}, err
	}

	s.debts[i] = updated
	return updated, nil
}

// DeleteDebt removes the debt with the given ID
func (s *Store) DeleteDebt(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.debtIndex(id)
	if i < 0 {
		return fmt.Errorf("%w: %s", apperrors.ErrDebtNotFound, id)
	}

	s.debts = append(s.debts[:i:i], s.debts[i+1:]...)
	return nil
}

// Debt returns the debt with the given ID
func (s *Store) Debt(id string) (models.Debt, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	i := s.debtIndex(id)
	if i < 0 {
		return models.Debt{}, false
	}
	return s.debts[i], true
}

// Debts returns a copy of the debts in insertion order
func (s *Store) Debts() []models.Debt {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return append([]models.Debt(nil), s.debts...)
}

// Summary computes the totals from the current state
func (s *Store) Summary() models.PortfolioSummary {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return Summarize(s.assets, s.debts)
}

// assetIndex expects s.mu to be held
func (s *Store) assetIndex(id string) int {
	for i := range s.assets {
		if s.assets[i].ID == id {
			return i
		}
	}
	return -1
}

// debtIndex expects s.mu to be held
func (s *Store) debtIndex(id string) int {
	for i := range s.debts {
		if s.debts[i].ID == id {
			return i
		}
	}
	return -1
}

type numericField struct {
	name  string
	value float64
}

func checkAsset(a models.Asset) error {
	return checkFinite([]numericField{
		{"quantity", a.Quantity},
		{"purchasePrice", a.PurchasePrice},
		{"currentPrice", a.CurrentPrice},
	})
}

func checkDebt(d models.Debt) error {
	return checkFinite([]numericField{
		{"principal", d.Principal},
		{"interestRate", d.InterestRate},
		{"remainingBalance", d.RemainingBalance},
		{"monthlyPayment", d.MonthlyPayment},
	})
}

// checkFinite reports the first non-finite field in declaration order
func checkFinite(fields []numericField) error {
	for _, f := range fields {
		if math.IsNaN(f.value) || math.IsInf(f.value, 0) {
			return fmt.Errorf("%w: %s must be a finite number", apperrors.ErrInvalidInput, f.name)
		}
	}
	return nil
}
