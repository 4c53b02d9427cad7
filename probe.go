package staticmap

// Probing sequence. A single formula covers both the single-worker
// case (groupSize == 1, equivalent to linear probing: initial = h mod
// capacity, next = i+1 mod capacity) and the group-cooperative case
// (groupSize == W, windows are W-slot aligned: initial = (h mod
// capacity/W) * W, next = i+W mod capacity).

// initialSlot returns the first window's base index for the given
// hash. The returned index is always a multiple of t.groupSize.
func (t *Table[K, V]) initialSlot(hash uint64) int {
	numWindows := t.capacity / t.groupSize
	return int(hash%uint64(numWindows)) * t.groupSize
}

// nextWindow advances a window base index by one window (step =
// groupSize), wrapping around the capacity. Because groupSize divides
// capacity (table.go enforces this at construction), repeated calls
// visit every window exactly once before returning to the start.
func (t *Table[K, V]) nextWindow(base int) int {
	next := base + t.groupSize
	if next >= t.capacity {
		next -= t.capacity
	}
	return next
}

// maxProbes is the number of windows visited before a probe sequence
// has covered the entire table and must be considered exhausted.
func (t *Table[K, V]) maxProbes() int {
	return t.capacity / t.groupSize
}
