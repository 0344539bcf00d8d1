// Package report summarizes and visualizes clustering results. It produces
// a plain text summary, an interactive HTML scatter chart, and a static PNG
// scatter plot of the first two attribute dimensions.
package report

import (
	"fmt"
	"io"
	"strings"

	"gonum.org/v1/gonum/stat"

	"github.com/banshee-data/cash.report/internal/cash"
)

// ClusterStats describes one extracted cluster. Delta statistics are taken
// over the members' distances to the cluster's own hyperplane, so MaxDelta
// minus MinDelta is bounded by twice the eps used for the run.
type ClusterStats struct {
	Index     int
	Size      int
	AnglesDeg []float64
	MeanDelta float64
	StdDelta  float64
	MinDelta  float64
	MaxDelta  float64
}

// Summary aggregates a full run for reporting.
type Summary struct {
	PointCount     int
	Dims           int
	ClusteredCount int
	NoiseCount     int
	Clusters       []ClusterStats
}

// Summarize computes per-cluster statistics for a result set. Clusters keep
// their extraction order. Points that ended up in no cluster count as noise.
func Summarize(points []cash.Point, clusters []cash.Cluster) *Summary {
	byID := make(map[int64]cash.Point, len(points))
	for _, p := range points {
		byID[p.ID] = p
	}

	dims := 0
	if len(points) > 0 {
		dims = len(points[0].Attrs)
	}

	s := &Summary{PointCount: len(points), Dims: dims}
	for i, c := range clusters {
		deltas := make([]float64, 0, len(c.Members))
		for _, id := range c.Members {
			p, ok := byID[id]
			if !ok {
				continue
			}
			deltas = append(deltas, cash.Project(p.Attrs, c.AnglesDeg))
		}
		cs := ClusterStats{Index: i + 1, Size: len(c.Members), AnglesDeg: c.AnglesDeg}
		if len(deltas) > 0 {
			cs.MeanDelta = stat.Mean(deltas, nil)
			cs.StdDelta = stat.StdDev(deltas, nil)
			cs.MinDelta, cs.MaxDelta = deltas[0], deltas[0]
			for _, d := range deltas[1:] {
				if d < cs.MinDelta {
					cs.MinDelta = d
				}
				if d > cs.MaxDelta {
					cs.MaxDelta = d
				}
			}
		}
		s.ClusteredCount += len(c.Members)
		s.Clusters = append(s.Clusters, cs)
	}
	s.NoiseCount = s.PointCount - s.ClusteredCount
	return s
}

// WriteSummary renders s as plain text.
func (s *Summary) WriteSummary(w io.Writer) error {
	if _, err := fmt.Fprintf(w, "%d points (%d dims): %d clustered, %d noise, %d clusters\n",
		s.PointCount, s.Dims, s.ClusteredCount, s.NoiseCount, len(s.Clusters)); err != nil {
		return err
	}
	for _, c := range s.Clusters {
		angles := make([]string, len(c.AnglesDeg))
		for i, a := range c.AnglesDeg {
			angles[i] = fmt.Sprintf("%g", a)
		}
		_, err := fmt.Fprintf(w, "  cluster %d: size=%d angles=[%s] delta mean=%.4f std=%.4f range=[%.4f, %.4f]\n",
			c.Index, c.Size, strings.Join(angles, " "), c.MeanDelta, c.StdDelta, c.MinDelta, c.MaxDelta)
		if err != nil {
			return err
		}
	}
	return nil
}
