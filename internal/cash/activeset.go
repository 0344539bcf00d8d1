package cash

// activeSet owns the shrinking working set of not-yet-clustered points.
// Removal is permanent: once a point lands in a kept cluster it never
// participates in a later round.
type activeSet struct {
	points []Point
	index  map[int64]int // id -> position in points
}

func newActiveSet(points []Point) *activeSet {
	s := &activeSet{
		points: make([]Point, len(points)),
		index:  make(map[int64]int, len(points)),
	}
	copy(s.points, points)
	for i, p := range s.points {
		s.index[p.ID] = i
	}
	return s
}

func (s *activeSet) size() int { return len(s.points) }

func (s *activeSet) contains(id int64) bool {
	_, ok := s.index[id]
	return ok
}

// snapshot returns the current active points. The returned slice is only
// valid until the next removeAll; callers must not mutate it.
func (s *activeSet) snapshot() []Point { return s.points }

// removeAll deletes the given ids from the set, compacting in input order so
// the surviving points keep their relative order.
func (s *activeSet) removeAll(ids []int64) {
	if len(ids) == 0 {
		return
	}

	drop := make(map[int64]struct{}, len(ids))
	for _, id := range ids {
		drop[id] = struct{}{}
	}

	kept := s.points[:0]
	for _, p := range s.points {
		if _, gone := drop[p.ID]; !gone {
			kept = append(kept, p)
		}
	}
	s.points = kept

	s.index = make(map[int64]int, len(s.points))
	for i, p := range s.points {
		s.index[p.ID] = i
	}
}
