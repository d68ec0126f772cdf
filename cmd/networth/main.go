package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/kelsos/networth/internal/charts"
	"github.com/kelsos/networth/internal/config"
	"github.com/kelsos/networth/internal/display"
	"github.com/kelsos/networth/internal/logger"
	"github.com/kelsos/networth/internal/services"
	"github.com/kelsos/networth/internal/tui"
	"github.com/kelsos/networth/internal/utils"
)

// loadConfig layers defaults, NETWORTH_* variables and explicitly set flags
func loadConfig(cmd *cobra.Command, demo bool, currency string) *config.Config {
	cfg := config.NewConfig()
	cfg.LoadFromEnvironment()

	if cmd.Flags().Changed("demo") {
		cfg.Demo = demo
	}
	if cmd.Flags().Changed("currency") {
		cfg.Currency = strings.ToUpper(strings.TrimSpace(currency))
	}

	if err := cfg.Validate(); err != nil {
		logger.Fatal("Invalid configuration: %v", err)
	}
	return cfg
}

func newService(cfg *config.Config) *services.PortfolioService {
	svc := services.NewPortfolioService(cfg)
	if cfg.Demo {
		if err := svc.SeedDemo(); err != nil {
			logger.Fatal("Failed to seed demo portfolio: %v", err)
		}
	}
	return svc
}

func printSummary(w io.Writer, svc *services.PortfolioService) {
	currency := svc.Currency()
	summary := svc.Summary()

	fmt.Fprintf(w, "Total assets: %s\n", display.Currency(summary.TotalAssetValue, currency))
	fmt.Fprintf(w, "Total debts:  %s\n", display.Currency(summary.TotalDebtValue, currency))
	fmt.Fprintf(w, "Net worth:    %s\n", display.Currency(summary.NetWorth, currency))

	fmt.Fprintln(w, "\nDistribution:")
	for _, t := range summary.Categories() {
		value := summary.ValueByAssetType[t]
		fmt.Fprintf(w, "  %-10s %16s %7s\n", t.Label(), display.Currency(value, currency),
			display.Share(display.Allocation(value, summary.TotalAssetValue)))
	}

	if assets := svc.Assets(); len(assets) > 0 {
		fmt.Fprintln(w, "\nAssets:")
		for _, a := range assets {
			pct, ok := display.ProfitLossPercent(a)
			fmt.Fprintf(w, "  %-20s %-6s %16s %16s %9s\n", a.Name, a.Symbol,
				display.Currency(a.Value(), a.Currency),
				display.SignedCurrency(a.ProfitLoss(), a.Currency),
				display.SignedPercent(pct, ok))
		}
	}

	if debts := svc.Debts(); len(debts) > 0 {
		fmt.Fprintln(w, "\nDebts:")
		for _, d := range debts {
			pct, ok := display.PaidPercent(d)
			fmt.Fprintf(w, "  %-20s %-9s %16s %9s paid\n", d.Name, d.Type,
				display.Currency(d.RemainingBalance, d.Currency),
				display.Percent(pct, ok))
		}
	}
}

// dashboardRunner is implemented by *tui.Dashboard
type dashboardRunner interface {
	SetStatus(status string)
	Run(ctx context.Context) error
}

// runDashboard switches logging to a file while the dashboard owns the
// terminal and closes that file on every return path. A dashboard stopped by
// cancelling ctx is a clean exit.
func runDashboard(ctx context.Context, cfg *config.Config, newDashboard func() dashboardRunner) error {
	logFile, err := logger.InitFileOnly(cfg.LogDir)
	if err != nil {
		return fmt.Errorf("failed to initialize file logger: %w", err)
	}
	defer logger.Close()

	logger.Info("Starting dashboard with currency %s (demo=%t)", cfg.Currency, cfg.Demo)
	dashboard := newDashboard()
	dashboard.SetStatus(fmt.Sprintf("Logs: %s", logFile))

	err = dashboard.Run(ctx)
	switch {
	case err == nil:
		logger.Info("Dashboard closed")
		return nil
	case errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil:
		logger.Info("Dashboard stopped: %v", context.Cause(ctx))
		return nil
	default:
		logger.Error("Dashboard exited with error: %v", err)
		return err
	}
}

func main() {
	utils.LoadEnvironment()
	logger.Init()

	var (
		demo     bool
		currency string
	)

	rootCmd := &cobra.Command{
		Use:   "networth",
		Short: "A terminal dashboard for tracking net worth",
		Long:  `networth tracks assets and debts in memory and shows totals, net worth and the asset distribution.`,
		Run: func(cmd *cobra.Command, args []string) {
			cfg := loadConfig(cmd, demo, currency)

			ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			err := runDashboard(ctx, cfg, func() dashboardRunner {
				return tui.NewDashboard(newService(cfg))
			})
			if err != nil {
				// The file logger is closed by now
				logger.Init()
				logger.Fatal("Dashboard failed: %v", err)
			}
		},
	}

	summaryCmd := &cobra.Command{
		Use:   "summary",
		Short: "Print portfolio totals and the category breakdown",
		Run: func(cmd *cobra.Command, args []string) {
			cfg := loadConfig(cmd, demo, currency)
			printSummary(os.Stdout, newService(cfg))
		},
	}

	var (
		out    string
		width  int
		height int
	)
	chartCmd := &cobra.Command{
		Use:   "chart",
		Short: "Render the asset distribution pie chart as PNG",
		Run: func(cmd *cobra.Command, args []string) {
			cfg := loadConfig(cmd, demo, currency)
			if cmd.Flags().Changed("out") {
				cfg.ChartPath = out
			}
			if cmd.Flags().Changed("width") {
				cfg.ChartWidth = width
			}
			if cmd.Flags().Changed("height") {
				cfg.ChartHeight = height
			}
			if err := cfg.Validate(); err != nil {
				logger.Fatal("Invalid chart options: %v", err)
			}

			svc := newService(cfg)
			png, err := charts.RenderDistribution(svc.Summary(), charts.Options{
				Width:    cfg.ChartWidth,
				Height:   cfg.ChartHeight,
				Currency: cfg.Currency,
			})
			if err != nil {
				logger.Fatal("Failed to render chart: %v", err)
			}

			if err := os.WriteFile(cfg.ChartPath, png, 0o644); err != nil {
				logger.Fatal("Failed to write chart: %v", err)
			}
			logger.Info("Chart written to %s", cfg.ChartPath)
		},
	}
	chartCmd.Flags().StringVarP(&out, "out", "o", "distribution.png", "File the PNG chart is written to")
	chartCmd.Flags().IntVarP(&width, "width", "", 800, "Chart width in pixels")
	chartCmd.Flags().IntVarP(&height, "height", "", 600, "Chart height in pixels")

	// Shared flags
	rootCmd.PersistentFlags().BoolVarP(&demo, "demo", "", false, "Seed the portfolio with sample assets and debts")
	rootCmd.PersistentFlags().StringVarP(&currency, "currency", "c", "USD", "Base currency for new records and totals")

	rootCmd.AddCommand(summaryCmd)
	rootCmd.AddCommand(chartCmd)

	if err := rootCmd.Execute(); err != nil {
		logger.Fatal("Failed to execute command: %v", err)
	}
}
