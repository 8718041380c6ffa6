package evaluator

// combinations enumerates k-element index subsets of [0, n) in
// lexicographic order, one subset at a time, without materialising the
// whole enumeration.
type combinations struct {
	n, k    int
	idx     []int
	started bool
}

func newCombinations(n, k int) *combinations {
	return &combinations{n: n, k: k, idx: make([]int, k)}
}

// next advances to the following subset, reporting false once exhausted.
func (c *combinations) next() bool {
	if c.k <= 0 || c.k > c.n {
		return false
	}
	if !c.started {
		for i := range c.idx {
			c.idx[i] = i
		}
		c.started = true
		return true
	}

	// Find the rightmost index that can still move, then reset everything
	// after it to the smallest valid run.
	i := c.k - 1
	for i >= 0 && c.idx[i] == c.n-c.k+i {
		i--
	}
	if i < 0 {
		return false
	}
	c.idx[i]++
	for j := i + 1; j < c.k; j++ {
		c.idx[j] = c.idx[j-1] + 1
	}
	return true
}

// indices returns the current subset. The slice is reused between calls to
// next, so callers must not hold it.
func (c *combinations) indices() []int {
	return c.idx
}
