package cash

import "sync"

// minParallelPoints is the working-set size below which projecting across
// multiple goroutines costs more than it saves.
const minParallelPoints = 256

// deltaEntry is one active point's projected position for the current round.
// Entries are scratch: rebuilt for every angle vector, discarded at round end.
type deltaEntry struct {
	id    int64
	delta float64
}

// buildProjection computes the delta of every point under the given angle
// vector. Output order matches input order and is identical regardless of
// worker count: each worker writes a disjoint contiguous range.
func buildProjection(points []Point, anglesDeg []float64, workers int) []deltaEntry {
	entries := make([]deltaEntry, len(points))

	if workers <= 1 || len(points) < minParallelPoints {
		for i, p := range points {
			entries[i] = deltaEntry{id: p.ID, delta: Project(p.Attrs, anglesDeg)}
		}
		return entries
	}

	var wg sync.WaitGroup
	chunk := (len(points) + workers - 1) / workers
	for w := 0; w < workers; w++ {
		start := w * chunk
		end := min(start+chunk, len(points))
		if start >= end {
			break
		}
		wg.Add(1)
		go func(start, end int) {
			defer wg.Done()
			for i := start; i < end; i++ {
				entries[i] = deltaEntry{id: points[i].ID, delta: Project(points[i].Attrs, anglesDeg)}
			}
		}(start, end)
	}
	wg.Wait()

	return entries
}
