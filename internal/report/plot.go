package report

import (
	"fmt"
	"image/color"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/banshee-data/cash.report/internal/cash"
)

// WriteScatterPNG saves a static scatter plot of the first two attribute
// dimensions to path. Each cluster gets its own color; noise points are grey.
func WriteScatterPNG(path string, points []cash.Point, clusters []cash.Cluster, names []string) error {
	if len(points) == 0 || len(points[0].Attrs) < 2 {
		return fmt.Errorf("scatter plot needs at least 2 attribute dimensions")
	}

	xName, yName := axisNames(names)

	p := plot.New()
	p.Title.Text = "Correlation Clusters"
	p.X.Label.Text = xName
	p.Y.Label.Text = yName
	p.Legend.Top = true
	p.Legend.Left = false
	p.Legend.XOffs = -10
	p.Legend.YOffs = -10

	byID := make(map[int64]cash.Point, len(points))
	for _, pt := range points {
		byID[pt.ID] = pt
	}

	colors := generateColors(len(clusters))
	clustered := make(map[int64]bool, len(points))
	for i, c := range clusters {
		xys := make(plotter.XYs, 0, len(c.Members))
		for _, id := range c.Members {
			pt, ok := byID[id]
			if !ok {
				continue
			}
			clustered[id] = true
			xys = append(xys, plotter.XY{X: pt.Attrs[0], Y: pt.Attrs[1]})
		}
		if len(xys) == 0 {
			continue
		}
		sc, err := plotter.NewScatter(xys)
		if err != nil {
			return err
		}
		sc.GlyphStyle.Color = colors[i]
		sc.GlyphStyle.Radius = vg.Points(2.5)
		p.Add(sc)
		p.Legend.Add(fmt.Sprintf("cluster %d", i+1), sc)
	}

	noise := make(plotter.XYs, 0)
	for _, pt := range points {
		if !clustered[pt.ID] {
			noise = append(noise, plotter.XY{X: pt.Attrs[0], Y: pt.Attrs[1]})
		}
	}
	if len(noise) > 0 {
		sc, err := plotter.NewScatter(noise)
		if err != nil {
			return err
		}
		sc.GlyphStyle.Color = color.RGBA{R: 158, G: 158, B: 158, A: 255}
		sc.GlyphStyle.Radius = vg.Points(1.5)
		p.Add(sc)
		p.Legend.Add("noise", sc)
	}

	if err := p.Save(9*vg.Inch, 9*vg.Inch, path); err != nil {
		return fmt.Errorf("save plot: %w", err)
	}
	return nil
}

// generateColors creates a palette of distinct colors for cluster series
func generateColors(n int) []color.Color {
	if n <= 0 {
		return nil
	}

	colors := make([]color.Color, n)
	for i := 0; i < n; i++ {
		hue := float64(i) / float64(n)
		r, g, b := hslToRGB(hue, 0.7, 0.5)
		colors[i] = color.RGBA{R: r, G: g, B: b, A: 255}
	}
	return colors
}

// hslToRGB converts HSL to RGB (0-255 range)
func hslToRGB(h, s, l float64) (r, g, b uint8) {
	var rf, gf, bf float64

	if s == 0 {
		rf, gf, bf = l, l, l
	} else {
		var q float64
		if l < 0.5 {
			q = l * (1 + s)
		} else {
			q = l + s - l*s
		}
		p := 2*l - q
		rf = hueToRGB(p, q, h+1.0/3.0)
		gf = hueToRGB(p, q, h)
		bf = hueToRGB(p, q, h-1.0/3.0)
	}

	return uint8(rf * 255), uint8(gf * 255), uint8(bf * 255)
}

func hueToRGB(p, q, t float64) float64 {
	if t < 0 {
		t += 1
	}
	if t > 1 {
		t -= 1
	}
	if t < 1.0/6.0 {
		return p + (q-p)*6*t
	}
	if t < 1.0/2.0 {
		return q
	}
	if t < 2.0/3.0 {
		return p + (q-p)*(2.0/3.0-t)*6
	}
	return p
}
