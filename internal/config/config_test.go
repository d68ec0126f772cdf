package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConfig_DefaultsAreValid(t *testing.T) {
	cfg := NewConfig()

	require.NoError(t, cfg.Validate())
	assert.Equal(t, "USD", cfg.Currency)
	assert.False(t, cfg.Demo)
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("NETWORTH_CURRENCY", " eur ")
	t.Setenv("NETWORTH_DEMO", "true")
	t.Setenv("NETWORTH_CHART_PATH", "out/pie.png")
	t.Setenv("NETWORTH_CHART_WIDTH", "1024")
	t.Setenv("NETWORTH_CHART_HEIGHT", "not-a-number")
	t.Setenv("NETWORTH_LOG_DIR", "/tmp/networth-logs")

	cfg := NewConfig()
	cfg.LoadFromEnvironment()

	assert.Equal(t, "EUR", cfg.Currency)
	assert.True(t, cfg.Demo)
	assert.Equal(t, "out/pie.png", cfg.ChartPath)
	assert.Equal(t, 1024, cfg.ChartWidth)
	assert.Equal(t, 600, cfg.ChartHeight)
	assert.Equal(t, "/tmp/networth-logs", cfg.LogDir)
	assert.NoError(t, cfg.Validate())
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(c *Config)
	}{
		{"unknown currency", func(c *Config) { c.Currency = "ZZZ" }},
		{"tiny chart", func(c *Config) { c.ChartWidth = 10 }},
		{"huge chart", func(c *Config) { c.ChartHeight = 10000 }},
		{"empty chart path", func(c *Config) { c.ChartPath = "" }},
		{"empty log dir", func(c *Config) { c.LogDir = "" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := NewConfig()
			tt.mutate(cfg)
			assert.Error(t, cfg.Validate())
		})
	}
}
