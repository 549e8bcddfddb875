package charts

import (
	"errors"
	"fmt"
	"io"

	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"github.com/rogerio-castellano/sales-analytics/internal/analytics"
)

var classificationColors = map[analytics.Classification]drawing.Color{
	analytics.Peak:   drawing.ColorFromHex("d62728"),
	analytics.High:   drawing.ColorFromHex("ff7f0e"),
	analytics.Normal: drawing.ColorFromHex("1f77b4"),
	analytics.Low:    drawing.ColorFromHex("9467bd"),
	analytics.Valley: drawing.ColorFromHex("7f7f7f"),
}

const (
	barWidth   = 32
	barSpacing = 10
)

// RenderHourly draws transactions per hour as a PNG bar chart, one bar per
// classified hour, coloured by classification.
func RenderHourly(w io.Writer, report analytics.HourlyReport) error {
	if len(report.Hours) == 0 {
		return errors.New("hourly report has no hours to draw")
	}

	bars := make([]chart.Value, 0, len(report.Hours))
	top := 1.0
	for _, h := range report.Hours {
		top = max(top, float64(h.TransactionCount))
		bars = append(bars, chart.Value{
			Label: h.Label,
			Value: float64(h.TransactionCount),
			Style: chart.Style{
				FillColor:   classificationColors[h.Classification],
				StrokeColor: classificationColors[h.Classification],
				StrokeWidth: 0,
			},
		})
	}

	graph := chart.BarChart{
		Title:      fmt.Sprintf("Transactions per hour (peak %s)", report.Peak.Label),
		Background: chart.Style{Padding: chart.Box{Top: 50, Left: 20, Right: 20, Bottom: 20}},
		Width:      max(640, len(bars)*(barWidth+barSpacing)+160),
		Height:     480,
		BarWidth:   barWidth,
		BarSpacing: barSpacing,
		YAxis: chart.YAxis{
			// Bars start at zero; a single hour would otherwise give an empty range.
			Range: &chart.ContinuousRange{Min: 0, Max: top * 1.1},
			ValueFormatter: func(v interface{}) string {
				return chart.FloatValueFormatterWithFormat(v, "%.0f")
			},
		},
		Bars: bars,
	}

	if err := graph.Render(chart.PNG, w); err != nil {
		return fmt.Errorf("render hourly chart: %w", err)
	}
	return nil
}
