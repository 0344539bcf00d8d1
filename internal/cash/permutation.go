package cash

// permutationCounter enumerates every vector of nDigits digit values in
// 1..max exactly once, as a mixed-radix odometer. Each advance costs one
// probe plus the carry length; carries of depth k occur only every max^k
// steps, so the cost is amortized O(1) across the full enumeration.
//
// The zero-digit case (one-dimensional data has no rotation angles) yields
// exactly one permutation: the empty vector.
type permutationCounter struct {
	digits  []int
	pointer int // index into digits; probe position for the next advance
	max     int
	spent   bool // tracks exhaustion when len(digits) == 0
}

func newPermutationCounter(nDigits, max int) *permutationCounter {
	digits := make([]int, nDigits)
	for i := range digits {
		digits[i] = 1
	}
	return &permutationCounter{digits: digits, pointer: nDigits - 1, max: max}
}

// hasNext reports whether current/advance may be called again. The counter
// marks exhaustion by pushing the leftmost digit past max.
func (c *permutationCounter) hasNext() bool {
	if len(c.digits) == 0 {
		return !c.spent
	}
	return c.digits[0] <= c.max
}

// current maps the digit vector through the grid into an angle vector in
// degrees, leftmost digit first.
func (c *permutationCounter) current(grid *AngleGrid) []float64 {
	angles := make([]float64, len(c.digits))
	for i, d := range c.digits {
		angles[i] = grid.At(d)
	}
	return angles
}

// advance moves to the next digit vector. The left-scan starts at the cached
// pointer rather than the rightmost digit; after the increment the pointer
// returns to the rightmost position, which is where the next carry-free
// increment lands (every digit right of the incremented one was just reset
// to 1). Shifting the pointer only one position right instead would skip
// vectors whenever a carry spans two or more digits.
func (c *permutationCounter) advance() {
	if len(c.digits) == 0 {
		c.spent = true
		return
	}

	val := c.digits[c.pointer]
	for val >= c.max {
		if c.pointer == 0 {
			c.digits[0] = c.max + 1 // exhausted
			return
		}
		c.digits[c.pointer] = 1
		c.pointer--
		val = c.digits[c.pointer]
	}

	c.digits[c.pointer]++
	c.pointer = len(c.digits) - 1
}
