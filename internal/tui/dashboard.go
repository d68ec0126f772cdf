package tui

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/kelsos/networth/internal/services"
)

// Dashboard owns the bubbletea program that drives the portfolio service
type Dashboard struct {
	service *services.PortfolioService
	status  string
}

func NewDashboard(service *services.PortfolioService) *Dashboard {
	return &Dashboard{
		service: service,
	}
}

// SetStatus sets the status line shown when the dashboard opens
func (d *Dashboard) SetStatus(status string) {
	d.status = status
}

// Run blocks until the user quits or ctx is cancelled. Cancellation makes
// the program return an error wrapping tea.ErrProgramKilled.
func (d *Dashboard) Run(ctx context.Context) error {
	model := NewModel(d.service)
	model.status = d.status

	program := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("failed to run TUI: %w", err)
	}

	return nil
}
