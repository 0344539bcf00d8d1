package report

import (
	"fmt"
	"io"
	"math"
	"os"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/banshee-data/cash.report/internal/cash"
)

// WriteScatterHTML renders an interactive scatter chart of the first two
// attribute dimensions, one series per cluster plus a grey noise series.
// Datasets need at least two dimensions to chart.
func WriteScatterHTML(w io.Writer, points []cash.Point, clusters []cash.Cluster, names []string) error {
	if len(points) == 0 || len(points[0].Attrs) < 2 {
		return fmt.Errorf("scatter chart needs at least 2 attribute dimensions")
	}

	xName, yName := axisNames(names)

	byID := make(map[int64]cash.Point, len(points))
	for _, p := range points {
		byID[p.ID] = p
	}

	maxAbs := 0.0
	for _, p := range points {
		if math.Abs(p.Attrs[0]) > maxAbs {
			maxAbs = math.Abs(p.Attrs[0])
		}
		if math.Abs(p.Attrs[1]) > maxAbs {
			maxAbs = math.Abs(p.Attrs[1])
		}
	}

	// Add a small padding so points at the edges are visible
	pad := maxAbs * 1.05
	if pad == 0 {
		pad = 1.0
	}

	scatter := charts.NewScatter()
	scatter.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{PageTitle: "Correlation Clusters", Theme: "dark", Width: "900px", Height: "900px"}),
		charts.WithTitleOpts(opts.Title{Title: "Correlation Clusters", Subtitle: fmt.Sprintf("points=%d clusters=%d", len(points), len(clusters))}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
		charts.WithLegendOpts(opts.Legend{Show: opts.Bool(true)}),
		charts.WithXAxisOpts(opts.XAxis{Min: -pad, Max: pad, Name: xName, NameLocation: "middle", NameGap: 25}),
		charts.WithYAxisOpts(opts.YAxis{Min: -pad, Max: pad, Name: yName, NameLocation: "middle", NameGap: 30}),
	)

	clustered := make(map[int64]bool, len(points))
	for i, c := range clusters {
		data := make([]opts.ScatterData, 0, len(c.Members))
		for _, id := range c.Members {
			p, ok := byID[id]
			if !ok {
				continue
			}
			clustered[id] = true
			data = append(data, opts.ScatterData{Value: []interface{}{p.Attrs[0], p.Attrs[1]}})
		}
		scatter.AddSeries(fmt.Sprintf("cluster %d", i+1), data,
			charts.WithScatterChartOpts(opts.ScatterChart{SymbolSize: 6}))
	}

	noise := make([]opts.ScatterData, 0)
	for _, p := range points {
		if !clustered[p.ID] {
			noise = append(noise, opts.ScatterData{Value: []interface{}{p.Attrs[0], p.Attrs[1]}})
		}
	}
	if len(noise) > 0 {
		scatter.AddSeries("noise", noise,
			charts.WithScatterChartOpts(opts.ScatterChart{SymbolSize: 4}),
			charts.WithItemStyleOpts(opts.ItemStyle{Color: "#9e9e9e"}))
	}

	return scatter.Render(w)
}

// WriteScatterHTMLFile renders the scatter chart into an HTML file at path.
func WriteScatterHTMLFile(path string, points []cash.Point, clusters []cash.Cluster, names []string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create chart file: %w", err)
	}
	if err := WriteScatterHTML(f, points, clusters, names); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func axisNames(names []string) (string, string) {
	x, y := "attr 1", "attr 2"
	if len(names) > 0 && names[0] != "" {
		x = names[0]
	}
	if len(names) > 1 && names[1] != "" {
		y = names[1]
	}
	return x, y
}
