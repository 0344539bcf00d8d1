package report

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/banshee-data/cash.report/internal/cash"
)

func testPoints() []cash.Point {
	return []cash.Point{
		{ID: 1, Attrs: []float64{1, 1}},
		{ID: 2, Attrs: []float64{2, 2}},
		{ID: 3, Attrs: []float64{3, 3}},
		{ID: 4, Attrs: []float64{10, -4}},
	}
}

func TestSummarize(t *testing.T) {
	points := testPoints()
	clusters := []cash.Cluster{
		{Members: []int64{1, 2, 3}, AnglesDeg: []float64{135}},
	}

	s := Summarize(points, clusters)

	assert.Equal(t, 4, s.PointCount)
	assert.Equal(t, 2, s.Dims)
	assert.Equal(t, 3, s.ClusteredCount)
	assert.Equal(t, 1, s.NoiseCount)
	require.Len(t, s.Clusters, 1)

	c := s.Clusters[0]
	assert.Equal(t, 1, c.Index)
	assert.Equal(t, 3, c.Size)
	assert.Equal(t, []float64{135.0}, c.AnglesDeg)
	assert.LessOrEqual(t, c.MinDelta, c.MeanDelta)
	assert.LessOrEqual(t, c.MeanDelta, c.MaxDelta)

	// Points on the line y=x all project to 0 under a 135 degree normal.
	assert.InDelta(t, 0, c.MeanDelta, 1e-9)
	assert.InDelta(t, 0, c.StdDelta, 1e-9)
}

func TestSummarizeNoClusters(t *testing.T) {
	s := Summarize(testPoints(), nil)

	assert.Equal(t, 4, s.NoiseCount)
	assert.Equal(t, 0, s.ClusteredCount)
	assert.Empty(t, s.Clusters)
}

func TestWriteSummary(t *testing.T) {
	s := Summarize(testPoints(), []cash.Cluster{
		{Members: []int64{1, 2, 3}, AnglesDeg: []float64{135}},
	})

	var buf bytes.Buffer
	require.NoError(t, s.WriteSummary(&buf))

	out := buf.String()
	assert.Contains(t, out, "4 points (2 dims)")
	assert.Contains(t, out, "3 clustered, 1 noise, 1 clusters")
	assert.Contains(t, out, "cluster 1: size=3 angles=[135]")
}

func TestWriteScatterHTML(t *testing.T) {
	points := testPoints()
	clusters := []cash.Cluster{{Members: []int64{1, 2, 3}, AnglesDeg: []float64{135}}}

	var buf bytes.Buffer
	require.NoError(t, WriteScatterHTML(&buf, points, clusters, []string{"x", "y"}))

	out := buf.String()
	assert.Contains(t, out, "cluster 1")
	assert.Contains(t, out, "noise")
	assert.Contains(t, strings.ToLower(out), "<html")
}

func TestWriteScatterHTMLOneDimension(t *testing.T) {
	points := []cash.Point{{ID: 1, Attrs: []float64{1}}}

	var buf bytes.Buffer
	err := WriteScatterHTML(&buf, points, nil, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "2 attribute dimensions")
}

func TestWriteScatterHTMLFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "clusters.html")
	require.NoError(t, WriteScatterHTMLFile(path, testPoints(), nil, nil))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.NotEmpty(t, data)
}

func TestWriteScatterPNG(t *testing.T) {
	path := filepath.Join(t.TempDir(), "clusters.png")
	clusters := []cash.Cluster{{Members: []int64{1, 2, 3}, AnglesDeg: []float64{135}}}

	require.NoError(t, WriteScatterPNG(path, testPoints(), clusters, []string{"x", "y"}))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Greater(t, info.Size(), int64(0))
}

func TestWriteScatterPNGOneDimension(t *testing.T) {
	points := []cash.Point{{ID: 1, Attrs: []float64{1}}}
	err := WriteScatterPNG(filepath.Join(t.TempDir(), "bad.png"), points, nil, nil)
	require.Error(t, err)
}
