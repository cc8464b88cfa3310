package plot

import (
	"errors"
	"fmt"
	"io"
	"os"
	"sort"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/katalvlaran/shorq/backend"
)

// ErrNoData indicates an empty count mapping; there is nothing to draw.
var ErrNoData = errors.New("plot: count mapping is empty")

// RenderCounts writes an HTML bar chart of the count distribution to w.
// Bars are ordered by ascending bitstring, so phase structure reads
// left to right across the dyadic range.
func RenderCounts(w io.Writer, title string, counts backend.Counts) error {
	if len(counts) == 0 {
		return ErrNoData
	}

	keys := make([]string, 0, len(counts))
	for k := range counts {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	items := make([]opts.BarData, 0, len(keys))
	for _, k := range keys {
		items = append(items, opts.BarData{Value: counts[k]})
	}

	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{
			Title:    title,
			Subtitle: fmt.Sprintf("%d distinct outcomes, %d shots", len(counts), counts.Total()),
		}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
		charts.WithXAxisOpts(opts.XAxis{Name: "outcome"}),
		charts.WithYAxisOpts(opts.YAxis{Name: "shots"}),
		charts.WithDataZoomOpts(opts.DataZoom{Type: "inside"}),
	)
	bar.SetXAxis(keys).AddSeries("shots", items)

	return bar.Render(w)
}

// RenderCountsFile renders the chart into a freshly created file.
func RenderCountsFile(path, title string, counts backend.Counts) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	return RenderCounts(f, title, counts)
}
