package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kelsos/networth/internal/config"
	"github.com/kelsos/networth/internal/services"
)

func newModel(t *testing.T, demo bool) (Model, *services.PortfolioService) {
	t.Helper()
	svc := services.NewPortfolioService(config.NewConfig())
	if demo {
		require.NoError(t, svc.SeedDemo())
	}
	return NewModel(svc), svc
}

func keyMsg(k string) tea.KeyMsg {
	switch k {
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "shift+tab":
		return tea.KeyMsg{Type: tea.KeyShiftTab}
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "left":
		return tea.KeyMsg{Type: tea.KeyLeft}
	case "right":
		return tea.KeyMsg{Type: tea.KeyRight}
	case "ctrl+s":
		return tea.KeyMsg{Type: tea.KeyCtrlS}
	case "ctrl+u":
		return tea.KeyMsg{Type: tea.KeyCtrlU}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
}

func press(m Model, keys ...string) Model {
	for _, k := range keys {
		next, _ := m.Update(keyMsg(k))
		m = next.(Model)
	}
	return m
}

func TestModel_AddAssetThroughForm(t *testing.T) {
	m, svc := newModel(t, false)

	m = press(m, "a")
	require.Equal(t, modeAssetForm, m.mode)
	assert.Equal(t, "stock", m.inputs[1].Value())
	assert.Equal(t, "USD", m.inputs[6].Value())

	m = press(m,
		"Apple Inc.", "tab",
		"tab",
		"aapl", "tab",
		"50", "tab",
		"150", "tab",
		"178.50", "tab",
		"enter")

	assert.Equal(t, modeBrowse, m.mode)
	assert.Equal(t, "Asset added: Apple Inc.", m.status)

	assets := svc.Assets()
	require.Len(t, assets, 1)
	assert.Equal(t, "AAPL", assets[0].Symbol)
	assert.Equal(t, 8925.0, svc.Summary().TotalAssetValue)
}

func TestModel_InvalidFormStaysOpen(t *testing.T) {
	m, svc := newModel(t, false)

	m = press(m, "a", "ctrl+s")

	assert.Equal(t, modeAssetForm, m.mode)
	assert.Contains(t, m.formErr, "name: is required")
	assert.Contains(t, m.formErr, "quantity: is required")
	assert.Empty(t, svc.Assets())
}

func TestModel_EscCancelsForm(t *testing.T) {
	m, svc := newModel(t, false)

	m = press(m, "a", "Gold bar", "esc")

	assert.Equal(t, modeBrowse, m.mode)
	assert.Nil(t, m.inputs)
	assert.Empty(t, svc.Assets())
}

func TestModel_EditKeepsIDAndPosition(t *testing.T) {
	m, svc := newModel(t, true)
	before := svc.Assets()

	m = press(m, "down", "e")
	require.Equal(t, modeAssetForm, m.mode)
	assert.Equal(t, before[1].ID, m.editingID)
	assert.Equal(t, "248.3", m.inputs[5].Value())

	m = press(m, "tab", "tab", "tab", "tab", "tab", "ctrl+u", "250", "ctrl+s")
	assert.Equal(t, modeBrowse, m.mode)
	assert.Equal(t, "Asset updated: Tesla Inc.", m.status)

	after := svc.Assets()
	require.Len(t, after, len(before))
	assert.Equal(t, before[1].ID, after[1].ID)
	assert.Equal(t, 250.0, after[1].CurrentPrice)
	assert.Equal(t, before[1].Quantity, after[1].Quantity)
}

func TestModel_AddDebtOnDebtsTab(t *testing.T) {
	m, svc := newModel(t, false)

	m = press(m, "right", "a")
	require.Equal(t, modeDebtForm, m.mode)
	assert.Equal(t, "mortgage", m.inputs[1].Value())

	m = press(m,
		"Car Loan", "tab",
		"ctrl+u", "auto", "tab",
		"25000", "tab",
		"6", "tab",
		"18500", "tab",
		"480", "ctrl+s")

	assert.Equal(t, modeBrowse, m.mode)
	debts := svc.Debts()
	require.Len(t, debts, 1)
	assert.Equal(t, "auto", debts[0].Type)
	assert.Equal(t, -18500.0, svc.Summary().NetWorth)
}

func TestModel_DeleteConfirmation(t *testing.T) {
	t.Run("confirmed", func(t *testing.T) {
		m, svc := newModel(t, true)

		m = press(m, "right", "d")
		require.Equal(t, modeConfirmDelete, m.mode)

		m = press(m, "y")
		assert.Equal(t, modeBrowse, m.mode)
		assert.Equal(t, "Debt deleted: Home Mortgage", m.status)
		require.Len(t, svc.Debts(), 1)
		assert.Equal(t, "Car Loan", svc.Debts()[0].Name)
	})

	t.Run("cancelled", func(t *testing.T) {
		m, svc := newModel(t, true)

		m = press(m, "d", "n")
		assert.Equal(t, "Delete cancelled", m.status)
		assert.Len(t, svc.Assets(), 5)
	})

	t.Run("cursor clamps to the last row", func(t *testing.T) {
		m, svc := newModel(t, true)

		m = press(m, "down", "down", "down", "down", "down")
		require.Equal(t, 4, m.cursor)

		m = press(m, "d", "y")
		assert.Len(t, svc.Assets(), 4)
		assert.Equal(t, 3, m.cursor)
	})
}

func TestModel_DeleteIgnoredOnEmptyTab(t *testing.T) {
	m, _ := newModel(t, false)

	m = press(m, "d", "e")
	assert.Equal(t, modeBrowse, m.mode)
}

func TestModel_TabNavigation(t *testing.T) {
	m, _ := newModel(t, true)

	m = press(m, "right")
	assert.Equal(t, TabDebts, m.tab)
	m = press(m, "right")
	assert.Equal(t, TabDistribution, m.tab)
	m = press(m, "right")
	assert.Equal(t, TabAssets, m.tab)
	m = press(m, "left")
	assert.Equal(t, TabDistribution, m.tab)
	m = press(m, "2")
	assert.Equal(t, TabDebts, m.tab)

	// no form on the distribution tab
	m = press(m, "3", "a")
	assert.Equal(t, modeBrowse, m.mode)
}

func TestModel_Quit(t *testing.T) {
	m, _ := newModel(t, false)

	next, cmd := m.Update(keyMsg("q"))
	require.NotNil(t, cmd)
	assert.Equal(t, tea.QuitMsg{}, cmd())
	assert.Equal(t, "Shutting down...\n", next.View())
}

func TestModel_View(t *testing.T) {
	t.Run("empty portfolio", func(t *testing.T) {
		m, _ := newModel(t, false)
		view := m.View()

		assert.Contains(t, view, "Net Worth Dashboard")
		assert.Contains(t, view, "No assets yet")
		assert.Contains(t, press(m, "3").View(), "Add assets to see your portfolio distribution.")
	})

	t.Run("demo portfolio", func(t *testing.T) {
		m, _ := newModel(t, true)
		next, _ := m.Update(tea.WindowSizeMsg{Width: 160, Height: 40})
		m = next.(Model)

		view := m.View()
		assert.Contains(t, view, "$51,016")
		assert.Contains(t, view, "Apple Inc.")

		assert.Contains(t, press(m, "2").View(), "Home Mortgage")

		distribution := press(m, "3").View()
		assert.Contains(t, distribution, "Crypto")
		assert.Contains(t, distribution, "64.7%")
	})
}
