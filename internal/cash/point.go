package cash

import "fmt"

// Point is one input observation: a stable id plus a fixed-length attribute
// vector. Points are never mutated after construction; the engine removes a
// point from its working set once the point lands in a kept cluster.
type Point struct {
	ID    int64
	Attrs []float64
}

// validatePoints checks the static-input assumptions the engine relies on:
// at least one point, every attribute vector non-empty and of equal length,
// and unique ids. It returns the shared dimensionality.
func validatePoints(points []Point) (int, error) {
	if len(points) == 0 {
		return 0, &InputError{Reason: "no points"}
	}

	dims := len(points[0].Attrs)
	if dims == 0 {
		return 0, &InputError{Reason: fmt.Sprintf("point %d has no attributes", points[0].ID)}
	}

	seen := make(map[int64]struct{}, len(points))
	for _, p := range points {
		if len(p.Attrs) != dims {
			return 0, &InputError{
				Reason: fmt.Sprintf("point %d has %d attributes, expected %d", p.ID, len(p.Attrs), dims),
			}
		}
		if _, dup := seen[p.ID]; dup {
			return 0, &InputError{Reason: fmt.Sprintf("duplicate point id %d", p.ID)}
		}
		seen[p.ID] = struct{}{}
	}

	return dims, nil
}
