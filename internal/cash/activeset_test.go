package cash

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestActiveSet(t *testing.T) {
	t.Parallel()

	points := []Point{
		{ID: 1, Attrs: []float64{1}},
		{ID: 2, Attrs: []float64{2}},
		{ID: 3, Attrs: []float64{3}},
		{ID: 4, Attrs: []float64{4}},
	}

	t.Run("size and contains", func(t *testing.T) {
		t.Parallel()
		s := newActiveSet(points)
		assert.Equal(t, 4, s.size())
		assert.True(t, s.contains(3))
		assert.False(t, s.contains(99))
	})

	t.Run("removeAll is permanent and order-preserving", func(t *testing.T) {
		t.Parallel()
		s := newActiveSet(points)
		s.removeAll([]int64{1, 3})

		assert.Equal(t, 2, s.size())
		assert.False(t, s.contains(1))
		assert.False(t, s.contains(3))

		snap := s.snapshot()
		require.Len(t, snap, 2)
		assert.Equal(t, int64(2), snap[0].ID)
		assert.Equal(t, int64(4), snap[1].ID)
	})

	t.Run("removeAll with no ids is a no-op", func(t *testing.T) {
		t.Parallel()
		s := newActiveSet(points)
		s.removeAll(nil)
		assert.Equal(t, 4, s.size())
	})

	t.Run("construction copies the input slice", func(t *testing.T) {
		t.Parallel()
		input := []Point{{ID: 1, Attrs: []float64{1}}, {ID: 2, Attrs: []float64{2}}}
		s := newActiveSet(input)
		input[0] = Point{ID: 77, Attrs: []float64{0}}
		assert.True(t, s.contains(1))
		assert.False(t, s.contains(77))
	})
}
