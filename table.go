package staticmap

// Table is a fixed-capacity, open-addressing concurrent multimap. A
// Table must not be copied after first use.
//
// A Table's slot array is allocated once, at construction, and never
// resized: the only terminal condition an insert can hit is
// ErrCapacityExceeded, at which point the table should be considered
// saturated for that key's probe sequence.
type Table[K Word, V Word] struct {
	slots      []slot[K, V]
	capacity   int
	groupSize  int
	emptyKey   K
	emptyValue V
}

// Config holds the options accepted by New. It is only exposed so that
// Option values can mutate it; callers should use the With* functions.
type Config struct {
	groupSize int
}

// Option configures a new Table.
type Option func(*Config)

// WithGroupSize sets the cooperative window size W used by the
// group-cooperative probing protocol. W must be >= 1; the default is
// 1, which degenerates to plain single-slot linear probing. The
// requested capacity is rounded up to the next multiple of W.
func WithGroupSize(w int) Option {
	return func(c *Config) {
		if w > 0 {
			c.groupSize = w
		}
	}
}

// New allocates a Table with room for at least capacity entries,
// initializing every slot to (emptyKey, emptyValue).
//
// emptyKey and emptyValue are sentinel bit patterns that must never
// occur as real inserted keys/values; the core cannot detect a
// collision between a sentinel and a real value supplied later by the
// caller, so such a collision is undefined behavior rather than a
// runtime error.
//
// New returns ErrAllocationFailed if capacity is non-positive.
func New[K Word, V Word](capacity int, emptyKey K, emptyValue V, opts ...Option) (*Table[K, V], error) {
	if capacity <= 0 {
		return nil, ErrAllocationFailed
	}

	cfg := Config{groupSize: 1}
	for _, opt := range opts {
		opt(&cfg)
	}

	roundedCapacity := roundUpToMultiple(capacity, cfg.groupSize)

	t := &Table[K, V]{
		slots:      make([]slot[K, V], roundedCapacity),
		capacity:   roundedCapacity,
		groupSize:  cfg.groupSize,
		emptyKey:   emptyKey,
		emptyValue: emptyValue,
	}
	for i := range t.slots {
		t.slots[i].reset(emptyKey, emptyValue)
	}
	return t, nil
}

// Capacity returns the table's actual slot count, i.e. the requested
// capacity rounded up to the next multiple of the group size.
func (t *Table[K, V]) Capacity() int {
	return t.capacity
}

// GroupSize returns the cooperative window size W the table was
// constructed with.
func (t *Table[K, V]) GroupSize() int {
	return t.groupSize
}

func roundUpToMultiple(n, multiple int) int {
	if multiple <= 1 {
		return n
	}
	if rem := n % multiple; rem != 0 {
		n += multiple - rem
	}
	return n
}
