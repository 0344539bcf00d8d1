package cash

import "fmt"

// ConfigError reports an invalid configuration parameter. It is returned
// before any round runs; a failed run never leaves partial results behind.
type ConfigError struct {
	Param  string
	Reason string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("cash: invalid %s: %s", e.Param, e.Reason)
}

// InputError reports an unusable input point set: no points, inconsistent
// dimensionality, or duplicate point ids. Like ConfigError it fails fast.
type InputError struct {
	Reason string
}

func (e *InputError) Error() string {
	return fmt.Sprintf("cash: bad input: %s", e.Reason)
}

// DegenerateRoundError reports an internal invariant violation: a round
// produced a cluster referencing a point that is not in the active set.
// It is always fatal and indicates a bug, never bad input.
type DegenerateRoundError struct {
	Round   int
	PointID int64
}

func (e *DegenerateRoundError) Error() string {
	return fmt.Sprintf("cash: round %d produced cluster member %d not in the active set", e.Round, e.PointID)
}
