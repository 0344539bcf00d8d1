package cash

import (
	"slices"
	"sort"
)

// Cluster is one extracted correlation cluster: the ascending ids of its
// member points plus the angle vector (degrees) whose projection produced it.
// Clusters are immutable once returned.
type Cluster struct {
	Members   []int64
	AnglesDeg []float64
}

// Size returns the number of member points.
func (c Cluster) Size() int { return len(c.Members) }

// extractClusters greedily pulls maximal eps-dense neighborhoods out of a
// round's projection. Each pass selects the largest neighborhood (the anchor
// point plus every entry within eps of it on the projected line), emits it,
// and removes its members from the pool; extraction stops when no two
// remaining entries lie within eps of each other. A removed entry never
// returns to the pool, so no id appears in two clusters from the same call.
func extractClusters(entries []deltaEntry, eps float64, anglesDeg []float64) []Cluster {
	pool := make([]deltaEntry, len(entries))
	copy(pool, entries)

	// Sorted by delta, every eps-neighborhood is a contiguous window, so one
	// two-pointer sweep per pass replaces the full pairwise distance scan.
	// The id tie-break keeps the order stable for equal deltas.
	sort.Slice(pool, func(i, j int) bool {
		if pool[i].delta != pool[j].delta {
			return pool[i].delta < pool[j].delta
		}
		return pool[i].id < pool[j].id
	})

	var clusters []Cluster
	for len(pool) >= 2 {
		lo, hi := bestWindow(pool, eps)
		if hi-lo+1 < 2 {
			break
		}
		clusters = append(clusters, Cluster{
			Members:   sortedIDs(pool[lo : hi+1]),
			AnglesDeg: slices.Clone(anglesDeg),
		})
		pool = append(pool[:lo], pool[hi+1:]...)
	}

	return clusters
}

// bestWindow returns the inclusive bounds of the largest eps-neighborhood in
// the delta-sorted pool. Ties between equal-size neighborhoods are broken
// toward the lexicographically smallest ascending member-id sequence, so the
// selection is a deterministic total order, never slice- or map-order luck.
func bestWindow(pool []deltaEntry, eps float64) (int, int) {
	bestLo, bestHi, bestSize := 0, 0, 0
	var bestIDs []int64

	winLo, winHi := 0, 0
	for i := range pool {
		for pool[i].delta-pool[winLo].delta > eps {
			winLo++
		}
		if winHi < i {
			winHi = i
		}
		for winHi+1 < len(pool) && pool[winHi+1].delta-pool[i].delta <= eps {
			winHi++
		}

		size := winHi - winLo + 1
		if size < bestSize || (winLo == bestLo && winHi == bestHi && bestSize > 0) {
			continue
		}
		if size > bestSize {
			bestLo, bestHi, bestSize = winLo, winHi, size
			bestIDs = nil // computed lazily on the first tie
			continue
		}
		if bestIDs == nil {
			bestIDs = sortedIDs(pool[bestLo : bestHi+1])
		}
		ids := sortedIDs(pool[winLo : winHi+1])
		if slices.Compare(ids, bestIDs) < 0 {
			bestLo, bestHi, bestIDs = winLo, winHi, ids
		}
	}

	return bestLo, bestHi
}

func sortedIDs(entries []deltaEntry) []int64 {
	ids := make([]int64, len(entries))
	for i, e := range entries {
		ids[i] = e.id
	}
	slices.Sort(ids)
	return ids
}
