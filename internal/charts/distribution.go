package charts

import (
	"bytes"
	"fmt"

	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"github.com/kelsos/networth/internal/apperrors"
	"github.com/kelsos/networth/internal/display"
	"github.com/kelsos/networth/internal/models"
)

// Slice colours follow the dashboard: stocks blue, gold yellow, crypto purple.
var categoryColors = map[models.AssetType]drawing.Color{
	models.AssetTypeStock:          drawing.ColorFromHex("5b8def"),
	models.AssetTypeGold:           drawing.ColorFromHex("f5c542"),
	models.AssetTypeCryptocurrency: drawing.ColorFromHex("a35bef"),
}

var fallbackColor = drawing.ColorFromHex("9ca3af")

// Options sizes the rendered image.
type Options struct {
	Width    int
	Height   int
	Currency string
}

// DistributionValues builds one pie slice per category holding a positive
// value. Labels carry the category, the formatted amount and its share.
func DistributionValues(summary models.PortfolioSummary, currency string) []chart.Value {
	var values []chart.Value
	for _, category := range summary.Categories() {
		value := summary.ValueByAssetType[category]
		if value <= 0 {
			continue
		}

		color, ok := categoryColors[category]
		if !ok {
			color = fallbackColor
		}

		values = append(values, chart.Value{
			Value: value,
			Label: fmt.Sprintf("%s %s (%s)",
				category.Label(),
				display.CurrencyWhole(value, currency),
				display.Share(display.Allocation(value, summary.TotalAssetValue))),
			Style: chart.Style{
				FillColor:   color,
				StrokeColor: drawing.ColorWhite,
				StrokeWidth: 2,
			},
		})
	}
	return values
}

// RenderDistribution renders the asset distribution pie chart as PNG bytes.
func RenderDistribution(summary models.PortfolioSummary, opts Options) ([]byte, error) {
	values := DistributionValues(summary, opts.Currency)
	if len(values) == 0 {
		return nil, apperrors.ErrNoChartData
	}

	pie := chart.PieChart{
		Title:  "Asset Distribution",
		Width:  opts.Width,
		Height: opts.Height,
		Background: chart.Style{
			Padding: chart.Box{Top: 40, Left: 20, Right: 20, Bottom: 20},
		},
		Values: values,
	}

	var buf bytes.Buffer
	if err := pie.Render(chart.PNG, &buf); err != nil {
		return nil, fmt.Errorf("chart render failed: %w", err)
	}

	return buf.Bytes(), nil
}
