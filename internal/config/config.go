package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/Rhymond/go-money"
)

// Config holds all application configuration
type Config struct {
	// Display settings
	Currency string

	// Portfolio settings
	Demo bool

	// Chart settings
	ChartPath   string
	ChartWidth  int
	ChartHeight int

	// Log settings
	LogDir string
}

// NewConfig creates a new configuration with default values
func NewConfig() *Config {
	return &Config{
		Currency:    "USD",
		ChartPath:   "distribution.png",
		ChartWidth:  800,
		ChartHeight: 600,
		LogDir:      "logs",
	}
}

// LoadFromEnvironment loads configuration from NETWORTH_* environment variables
func (c *Config) LoadFromEnvironment() {
	if currency := os.Getenv("NETWORTH_CURRENCY"); currency != "" {
		c.Currency = strings.ToUpper(strings.TrimSpace(currency))
	}

	if demo := os.Getenv("NETWORTH_DEMO"); demo != "" {
		if d, err := strconv.ParseBool(demo); err == nil {
			c.Demo = d
		}
	}

	if path := os.Getenv("NETWORTH_CHART_PATH"); path != "" {
		c.ChartPath = path
	}

	if width := os.Getenv("NETWORTH_CHART_WIDTH"); width != "" {
		if w, err := strconv.Atoi(width); err == nil {
			c.ChartWidth = w
		}
	}

	if height := os.Getenv("NETWORTH_CHART_HEIGHT"); height != "" {
		if h, err := strconv.Atoi(height); err == nil {
			c.ChartHeight = h
		}
	}

	if logDir := os.Getenv("NETWORTH_LOG_DIR"); logDir != "" {
		c.LogDir = logDir
	}
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if money.GetCurrency(c.Currency) == nil {
		return fmt.Errorf("unknown currency code: %q", c.Currency)
	}

	if c.ChartWidth < 100 || c.ChartWidth > 4096 {
		return fmt.Errorf("chart width must be between 100 and 4096, got: %d", c.ChartWidth)
	}

	if c.ChartHeight < 100 || c.ChartHeight > 4096 {
		return fmt.Errorf("chart height must be between 100 and 4096, got: %d", c.ChartHeight)
	}

	if c.ChartPath == "" {
		return fmt.Errorf("chart path cannot be empty")
	}

	if c.LogDir == "" {
		return fmt.Errorf("log directory cannot be empty")
	}

	return nil
}
