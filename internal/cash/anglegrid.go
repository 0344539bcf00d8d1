package cash

import "fmt"

// Angle domain in degrees. Half a rotation is enough: an orientation and its
// mirror parameterize the same family of hyperplanes.
const (
	angleLowDeg  = 0.0
	angleHighDeg = 180.0
)

// AngleGrid is the discretized set of angle values every permutation digit
// ranges over: splits+1 evenly spaced degree values covering [0, 180]
// inclusive. Immutable after construction.
type AngleGrid struct {
	values []float64
}

// NewAngleGrid builds a grid with the given number of splits.
func NewAngleGrid(splits int) (*AngleGrid, error) {
	if splits <= 0 {
		return nil, &ConfigError{Param: "splits", Reason: fmt.Sprintf("must be > 0, got %d", splits)}
	}

	values := make([]float64, splits+1)
	step := (angleHighDeg - angleLowDeg) / float64(splits)
	for k := range values {
		values[k] = angleLowDeg + float64(k)*step
	}

	return &AngleGrid{values: values}, nil
}

// Len returns the number of grid values (splits+1).
func (g *AngleGrid) Len() int { return len(g.values) }

// At returns the grid value at the given 1-based index. Permutation digits
// are 1-based, so the grid is addressed the same way.
func (g *AngleGrid) At(i int) float64 { return g.values[i-1] }

// Values returns a copy of all grid values in ascending order.
func (g *AngleGrid) Values() []float64 {
	out := make([]float64, len(g.values))
	copy(out, g.values)
	return out
}
