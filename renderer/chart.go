package renderer

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/etnz/holdings"
	chart "github.com/wcharczuk/go-chart/v2"
)

// ChartFormat returns the go-chart renderer for an image path, by extension.
func ChartFormat(path string) (chart.RendererProvider, error) {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".png":
		return chart.PNG, nil
	case ".svg":
		return chart.SVG, nil
	default:
		return nil, fmt.Errorf("%w %q for a chart (use .png or .svg)", holdings.ErrUnsupportedFormat, ext)
	}
}

// HistogramChart draws the distribution of a mapping report: one bar per
// ETF count, as high as the number of assets held by that many ETFs.
func HistogramChart(w io.Writer, format chart.RendererProvider, r *holdings.MappingReport) error {
	if len(r.Histogram) == 0 {
		return fmt.Errorf("no asset to draw")
	}
	top := 0
	bars := make([]chart.Value, 0, len(r.Histogram))
	for _, h := range r.Histogram {
		bars = append(bars, chart.Value{
			Label: fmt.Sprintf("%d ETF(s)", h.FundCount),
			Value: float64(h.Assets),
		})
		top = max(top, h.Assets)
	}

	graph := chart.BarChart{
		Title: fmt.Sprintf("%d assets across %d ETFs", len(r.Rows), r.Funds),
		Background: chart.Style{
			Padding: chart.Box{Top: 40},
		},
		Height:   512,
		BarWidth: 60,
		YAxis: chart.YAxis{
			Range: &chart.ContinuousRange{Min: 0, Max: float64(top)},
		},
		Bars: bars,
	}
	return graph.Render(format, w)
}
