package tui

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/kelsos/networth/internal/apperrors"
	"github.com/kelsos/networth/internal/services"
)

type Tab int

const (
	TabAssets Tab = iota
	TabDebts
	TabDistribution
)

var tabNames = []string{"Assets", "Debts", "Distribution"}

func (t Tab) String() string {
	return tabNames[t]
}

type mode int

const (
	modeBrowse mode = iota
	modeAssetForm
	modeDebtForm
	modeConfirmDelete
)

// Model is the dashboard state. Dialog flags and the record being edited
// live here and never reach the store.
type Model struct {
	service   *services.PortfolioService
	tab       Tab
	cursor    int
	mode      mode
	editingID string
	inputs    []textinput.Model
	focus     int
	formErr   string
	status    string
	progress  progress.Model
	width     int
	height    int
	quit      bool
}

func NewModel(service *services.PortfolioService) Model {
	return Model{
		service:  service,
		progress: progress.New(progress.WithDefaultGradient(), progress.WithWidth(30), progress.WithoutPercentage()),
		width:    100,
		height:   30,
	}
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			m.quit = true
			return m, tea.Quit
		}
		switch m.mode {
		case modeAssetForm, modeDebtForm:
			return m.handleFormKey(msg)
		case modeConfirmDelete:
			return m.handleConfirmKey(msg), nil
		default:
			return m.handleBrowseKey(msg)
		}

	case tea.WindowSizeMsg:
		m = m.handleWindowSizeMsg(msg)
	}

	return m, nil
}

func (m Model) handleWindowSizeMsg(msg tea.WindowSizeMsg) Model {
	m.width = msg.Width
	m.height = msg.Height
	m.progress.Width = max(10, msg.Width/4)
	return m
}

func (m Model) handleBrowseKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q":
		m.quit = true
		return m, tea.Quit
	case "tab", "right", "l":
		m.tab = (m.tab + 1) % Tab(len(tabNames))
		m.cursor = 0
	case "shift+tab", "left", "h":
		m.tab = (m.tab + Tab(len(tabNames)) - 1) % Tab(len(tabNames))
		m.cursor = 0
	case "1", "2", "3":
		m.tab = Tab(msg.String()[0] - '1')
		m.cursor = 0
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < m.rows()-1 {
			m.cursor++
		}
	case "a":
		return m.openForm("")
	case "e", "enter":
		if id := m.selectedID(); id != "" {
			return m.openForm(id)
		}
	case "d", "delete":
		if m.selectedID() != "" {
			m.mode = modeConfirmDelete
		}
	}
	return m, nil
}

func (m Model) handleConfirmKey(msg tea.KeyMsg) Model {
	m.mode = modeBrowse
	if msg.String() != "y" {
		m.status = "Delete cancelled"
		return m
	}

	id := m.selectedID()
	var err error
	switch m.tab {
	case TabAssets:
		name := m.service.Assets()[m.cursor].Name
		if err = m.service.DeleteAsset(id); err == nil {
			m.status = fmt.Sprintf("Asset deleted: %s", name)
		}
	case TabDebts:
		name := m.service.Debts()[m.cursor].Name
		if err = m.service.DeleteDebt(id); err == nil {
			m.status = fmt.Sprintf("Debt deleted: %s", name)
		}
	}

	if errors.Is(err, apperrors.ErrNotFound) {
		m.status = "Record no longer exists"
	} else if err != nil {
		m.status = fmt.Sprintf("Delete failed: %v", err)
	}

	m.cursor = min(m.cursor, max(0, m.rows()-1))
	return m
}

// rows is the number of selectable lines on the current tab
func (m Model) rows() int {
	switch m.tab {
	case TabAssets:
		return len(m.service.Assets())
	case TabDebts:
		return len(m.service.Debts())
	default:
		return 0
	}
}

// selectedID returns the id under the cursor, or "" on tabs without records
func (m Model) selectedID() string {
	switch m.tab {
	case TabAssets:
		if assets := m.service.Assets(); m.cursor < len(assets) {
			return assets[m.cursor].ID
		}
	case TabDebts:
		if debts := m.service.Debts(); m.cursor < len(debts) {
			return debts[m.cursor].ID
		}
	}
	return ""
}

func (m Model) submitForm() (tea.Model, tea.Cmd) {
	values := m.values()
	verb := "added"
	if m.editingID != "" {
		verb = "updated"
	}

	var name string
	var err error
	switch m.mode {
	case modeAssetForm:
		asset, submitErr := m.service.SubmitAsset(m.editingID, assetForm(values))
		name, err = asset.Name, submitErr
	case modeDebtForm:
		debt, submitErr := m.service.SubmitDebt(m.editingID, debtForm(values))
		name, err = debt.Name, submitErr
	}

	if err != nil {
		m.formErr = err.Error()
		return m, nil
	}

	kind := "Asset"
	if m.mode == modeDebtForm {
		kind = "Debt"
	}
	m.status = fmt.Sprintf("%s %s: %s", kind, verb, name)
	m = m.closeForm()
	return m, nil
}
