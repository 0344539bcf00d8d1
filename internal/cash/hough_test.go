package cash

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestProject(t *testing.T) {
	t.Parallel()

	t.Run("one dimension projects to the attribute itself", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, 3.25, Project([]float64{3.25}, nil))
	})

	t.Run("angle 0 selects the first attribute", func(t *testing.T) {
		t.Parallel()
		// cos(0)=1 and sin(0)=0, so the second term vanishes exactly.
		assert.Equal(t, 2.0, Project([]float64{2, 7}, []float64{0}))
	})

	t.Run("angle 90 selects the second attribute", func(t *testing.T) {
		t.Parallel()
		// cos(90°) is not exactly zero in floating point, so compare within
		// a tolerance.
		got := Project([]float64{2, 7}, []float64{90})
		assert.InDelta(t, 7.0, got, 1e-12)
	})

	t.Run("angle 45 mixes both attributes", func(t *testing.T) {
		t.Parallel()
		got := Project([]float64{1, 1}, []float64{45})
		assert.InDelta(t, math.Sqrt2, got, 1e-12)
	})

	t.Run("three dimensions, known value", func(t *testing.T) {
		t.Parallel()
		// delta = a0·cos(α0) + a1·sin(α0)·cos(α1) + a2·sin(α0)·sin(α1)
		attrs := []float64{1, 2, 3}
		angles := []float64{30, 60}
		want := 1*cosd(30) + 2*sind(30)*cosd(60) + 3*sind(30)*sind(60)
		assert.InDelta(t, want, Project(attrs, angles), 1e-12)
	})

	t.Run("pure function, bit-identical on repeat", func(t *testing.T) {
		t.Parallel()
		attrs := []float64{0.1, -2.7, 13.37, 4.2}
		angles := []float64{17.5, 122.4, 88.8}
		first := Project(attrs, angles)
		for i := 0; i < 10; i++ {
			assert.Equal(t, first, Project(attrs, angles))
		}
	})

	t.Run("zero vector projects to zero under every angle", func(t *testing.T) {
		t.Parallel()
		for _, a := range []float64{0, 45, 90, 135, 180} {
			assert.Equal(t, 0.0, Project([]float64{0, 0}, []float64{a}))
		}
	})
}

func sind(deg float64) float64 { return math.Sin(deg * math.Pi / 180) }
func cosd(deg float64) float64 { return math.Cos(deg * math.Pi / 180) }

func TestBuildProjection(t *testing.T) {
	t.Parallel()

	points := make([]Point, 600)
	for i := range points {
		points[i] = Point{ID: int64(i + 1), Attrs: []float64{float64(i) * 0.5, float64(i%7) - 3}}
	}
	angles := []float64{45}

	t.Run("order matches input order", func(t *testing.T) {
		t.Parallel()
		entries := buildProjection(points, angles, 1)
		for i, e := range entries {
			assert.Equal(t, points[i].ID, e.id)
		}
	})

	t.Run("identical results for any worker count", func(t *testing.T) {
		t.Parallel()
		sequential := buildProjection(points, angles, 1)
		for _, workers := range []int{2, 4, 7, 64} {
			parallel := buildProjection(points, angles, workers)
			assert.Equal(t, sequential, parallel, "workers=%d", workers)
		}
	})
}
