package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/kelsos/networth/internal/form"
	"github.com/kelsos/networth/internal/models"
)

type field struct {
	label       string
	placeholder string
}

var assetFields = []field{
	{"Name", "e.g., Apple Inc."},
	{"Type", "stock | gold | cryptocurrency"},
	{"Symbol", "e.g., AAPL"},
	{"Quantity", "0"},
	{"Purchase price", "0.00"},
	{"Current price", "0.00"},
	{"Currency", "USD"},
}

var debtFields = []field{
	{"Name", "e.g., Home Mortgage"},
	{"Type", strings.Join(models.DebtTypes, " | ")},
	{"Principal", "0"},
	{"Interest rate (%)", "0.0"},
	{"Remaining balance", "0"},
	{"Monthly payment", "0"},
	{"Currency", "USD"},
}

func assetValues(f form.AssetForm) []string {
	return []string{f.Name, f.Type, f.Symbol, f.Quantity, f.PurchasePrice, f.CurrentPrice, f.Currency}
}

func assetForm(v []string) form.AssetForm {
	return form.AssetForm{
		Name:          v[0],
		Type:          v[1],
		Symbol:        v[2],
		Quantity:      v[3],
		PurchasePrice: v[4],
		CurrentPrice:  v[5],
		Currency:      v[6],
	}
}

func debtValues(f form.DebtForm) []string {
	return []string{f.Name, f.Type, f.Principal, f.InterestRate, f.RemainingBalance, f.MonthlyPayment, f.Currency}
}

func debtForm(v []string) form.DebtForm {
	return form.DebtForm{
		Name:             v[0],
		Type:             v[1],
		Principal:        v[2],
		InterestRate:     v[3],
		RemainingBalance: v[4],
		MonthlyPayment:   v[5],
		Currency:         v[6],
	}
}

// openForm shows the add form when id is empty and the edit form otherwise.
// Forms are only available on the assets and debts tabs.
func (m Model) openForm(id string) (tea.Model, tea.Cmd) {
	var fields []field
	var values []string

	switch m.tab {
	case TabAssets:
		m.mode = modeAssetForm
		fields = assetFields
		values = assetValues(form.AssetForm{Type: string(models.AssetTypeStock), Currency: m.service.Currency()})
		if id != "" {
			asset := m.service.Assets()[m.cursor]
			values = assetValues(form.AssetFormFrom(asset))
		}
	case TabDebts:
		m.mode = modeDebtForm
		fields = debtFields
		values = debtValues(form.DebtForm{Type: models.DebtTypes[0], Currency: m.service.Currency()})
		if id != "" {
			debt := m.service.Debts()[m.cursor]
			values = debtValues(form.DebtFormFrom(debt))
		}
	default:
		return m, nil
	}

	m.editingID = id
	m.formErr = ""
	m.focus = 0
	m.inputs = make([]textinput.Model, len(fields))
	for i, f := range fields {
		ti := textinput.New()
		ti.Prompt = ""
		ti.Placeholder = f.placeholder
		ti.CharLimit = 100
		ti.Width = 40
		ti.SetValue(values[i])
		m.inputs[i] = ti
	}

	return m, m.inputs[0].Focus()
}

func (m Model) closeForm() Model {
	m.mode = modeBrowse
	m.editingID = ""
	m.inputs = nil
	m.formErr = ""
	return m
}

func (m Model) handleFormKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		return m.closeForm(), nil
	case "ctrl+s":
		return m.submitForm()
	case "enter":
		if m.focus == len(m.inputs)-1 {
			return m.submitForm()
		}
		return m.focusField(m.focus + 1)
	case "tab", "down":
		return m.focusField((m.focus + 1) % len(m.inputs))
	case "shift+tab", "up":
		return m.focusField((m.focus + len(m.inputs) - 1) % len(m.inputs))
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

func (m Model) focusField(i int) (tea.Model, tea.Cmd) {
	m.inputs[m.focus].Blur()
	m.focus = i
	return m, m.inputs[i].Focus()
}

func (m Model) values() []string {
	values := make([]string, len(m.inputs))
	for i, in := range m.inputs {
		values[i] = in.Value()
	}
	return values
}

func (m Model) fields() []field {
	if m.mode == modeDebtForm {
		return debtFields
	}
	return assetFields
}
