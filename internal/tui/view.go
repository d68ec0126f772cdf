package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/kelsos/networth/internal/display"
	"github.com/kelsos/networth/internal/models"
)

var (
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("39")).
			MarginBottom(1)

	cardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			Padding(0, 1)

	sectionStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("62")).
			Padding(0, 1)

	activeTabStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39")).Underline(true)
	inactiveTabStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("244"))
	selectedStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true)
	mutedStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("244"))
	errorStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	gainStyle        = lipgloss.NewStyle().Foreground(lipgloss.Color("82"))
	footerStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

const (
	colorAssets = "82"
	colorDebts  = "196"
	colorNet    = "39"
)

func (m Model) View() string {
	if m.quit {
		return "Shutting down...\n"
	}

	var s strings.Builder

	s.WriteString(headerStyle.Render("💰 Net Worth Dashboard"))
	s.WriteString("\n")

	summary := m.service.Summary()
	s.WriteString(m.renderCards(summary))
	s.WriteString("\n\n")

	s.WriteString(m.renderTabs())
	s.WriteString("\n")

	var body string
	switch m.tab {
	case TabAssets:
		body = m.renderAssets()
	case TabDebts:
		body = m.renderDebts()
	default:
		body = m.renderDistribution(summary)
	}
	s.WriteString(sectionStyle.Width(max(40, m.width-2)).Render(body))
	s.WriteString("\n")

	switch m.mode {
	case modeAssetForm, modeDebtForm:
		s.WriteString(m.renderForm())
		s.WriteString("\n")
	case modeConfirmDelete:
		s.WriteString(errorStyle.Render("Delete the selected record? (y/n)"))
		s.WriteString("\n")
	}

	if m.status != "" {
		s.WriteString(mutedStyle.Render(m.status))
		s.WriteString("\n")
	}

	s.WriteString(footerStyle.Render(m.footer()))

	return s.String()
}

func (m Model) renderCards(summary models.PortfolioSummary) string {
	currency := m.service.Currency()
	width := max(20, (m.width-6)/3-4)

	netColor := colorNet
	if summary.NetWorth < 0 {
		netColor = colorDebts
	}

	card := func(title, value, color string) string {
		style := cardStyle.Width(width).BorderForeground(lipgloss.Color(color))
		valueStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(color))
		return style.Render(mutedStyle.Render(title) + "\n" + valueStyle.Render(value))
	}

	return lipgloss.JoinHorizontal(lipgloss.Top,
		card("📈 Total Assets", display.CurrencyWhole(summary.TotalAssetValue, currency), colorAssets),
		" ",
		card("📉 Total Debts", display.CurrencyWhole(summary.TotalDebtValue, currency), colorDebts),
		" ",
		card("💰 Net Worth", display.CurrencyWhole(summary.NetWorth, currency), netColor),
	)
}

func (m Model) renderTabs() string {
	tabs := make([]string, len(tabNames))
	for i, name := range tabNames {
		label := fmt.Sprintf("%d %s", i+1, name)
		if Tab(i) == m.tab {
			tabs[i] = activeTabStyle.Render(label)
		} else {
			tabs[i] = inactiveTabStyle.Render(label)
		}
	}
	return strings.Join(tabs, "   ")
}

func (m Model) renderAssets() string {
	assets := m.service.Assets()
	if len(assets) == 0 {
		return mutedStyle.Render("No assets yet. Press 'a' to add one.")
	}

	var s strings.Builder
	for i, a := range assets {
		pct, ok := display.ProfitLossPercent(a)
		line := fmt.Sprintf("%s %-20s %-6s %-15s %12s  %s (%s)",
			display.AssetIcon(a.Type),
			truncate(a.Name, 20),
			truncate(a.Symbol, 6),
			strings.ToUpper(string(a.Type)),
			display.Currency(a.Value(), a.Currency),
			display.SignedCurrency(a.ProfitLoss(), a.Currency),
			display.SignedPercent(pct, ok))

		s.WriteString(m.row(i, line, a.ProfitLoss() >= 0))
		s.WriteString("\n")
	}
	return strings.TrimSuffix(s.String(), "\n")
}

func (m Model) renderDebts() string {
	debts := m.service.Debts()
	if len(debts) == 0 {
		return mutedStyle.Render("No debts recorded. Press 'a' to add one.")
	}

	var s strings.Builder
	for i, d := range debts {
		pct, ok := display.PaidPercent(d)
		line := fmt.Sprintf("%s %-20s %-9s %12s  %s %s paid  %s/mo @ %.2f%%",
			display.DebtIcon(d.Type),
			truncate(d.Name, 20),
			truncate(d.Type, 9),
			display.CurrencyWhole(d.RemainingBalance, d.Currency),
			m.progress.ViewAs(fraction(pct)),
			display.Percent(pct, ok),
			display.CurrencyWhole(d.MonthlyPayment, d.Currency),
			d.InterestRate)

		s.WriteString(m.row(i, line, true))
		s.WriteString("\n")
	}
	return strings.TrimSuffix(s.String(), "\n")
}

func (m Model) renderDistribution(summary models.PortfolioSummary) string {
	if summary.TotalAssetValue <= 0 {
		return mutedStyle.Render("Add assets to see your portfolio distribution.")
	}

	currency := m.service.Currency()
	var s strings.Builder
	s.WriteString("📊 Asset Distribution\n")
	for _, t := range summary.Categories() {
		value := summary.ValueByAssetType[t]
		share := display.Allocation(value, summary.TotalAssetValue)
		s.WriteString(fmt.Sprintf("%s %-10s %14s  %s %s\n",
			display.AssetIcon(t),
			t.Label(),
			display.CurrencyWhole(value, currency),
			m.progress.ViewAs(fraction(share)),
			display.Share(share)))
	}
	return strings.TrimSuffix(s.String(), "\n")
}

func (m Model) renderForm() string {
	title := "Add "
	if m.editingID != "" {
		title = "Edit "
	}
	if m.mode == modeDebtForm {
		title += "Debt"
	} else {
		title += "Asset"
	}

	var s strings.Builder
	s.WriteString(headerStyle.Render(title))
	s.WriteString("\n")
	for i, f := range m.fields() {
		label := fmt.Sprintf("%-18s", f.label)
		if i == m.focus {
			label = selectedStyle.Render(label)
		}
		s.WriteString(label + " " + m.inputs[i].View() + "\n")
	}
	if m.formErr != "" {
		s.WriteString(errorStyle.Render(m.formErr) + "\n")
	}

	return sectionStyle.BorderForeground(lipgloss.Color("205")).Render(strings.TrimSuffix(s.String(), "\n"))
}

func (m Model) row(i int, line string, positive bool) string {
	if i == m.cursor && m.mode == modeBrowse {
		return selectedStyle.Render("▸ " + line)
	}
	if !positive {
		return "  " + errorStyle.Render(line)
	}
	return "  " + gainStyle.Render(line)
}

func (m Model) footer() string {
	switch m.mode {
	case modeAssetForm, modeDebtForm:
		return "tab/↓ next field | shift+tab/↑ previous | enter on last field or ctrl+s save | esc cancel"
	case modeConfirmDelete:
		return "y confirm | any other key cancels"
	}
	if m.tab == TabDistribution {
		return "←/→ switch tab | q quit"
	}
	return "←/→ switch tab | ↑/↓ select | a add | e edit | d delete | q quit"
}

// fraction turns a percentage into the 0..1 range a progress bar expects
func fraction(pct float64) float64 {
	return min(1, max(0, pct/100))
}

// truncate shortens s to width terminal cells without splitting a rune
func truncate(s string, width int) string {
	return runewidth.Truncate(s, width, "...")
}
