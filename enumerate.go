package staticmap

// Cursor is a stateful enumeration handle produced by FindAll. It is
// explicitly an aggregate of {slot index, key, table/equal handle},
// not a bare slot pointer: advancing requires re-probing from the
// current slot using the original key.
type Cursor[K Word, V Word] struct {
	table *Table[K, V]
	key   K
	equal EqualFunc[K]
	index int
	ok    bool
}

// FindAll returns a cursor over every slot holding a value for k, in
// probe order. If k is absent the returned cursor is immediately
// invalid.
func (t *Table[K, V]) FindAll(k K, hash HashFunc[K], equal EqualFunc[K]) *Cursor[K, V] {
	idx, found := t.findFirst(k, hash, equal)
	return &Cursor[K, V]{table: t, key: k, equal: equal, index: idx, ok: found}
}

// Valid reports whether the cursor currently references a matching
// slot.
func (c *Cursor[K, V]) Valid() bool {
	return c.ok
}

// Value returns the value at the cursor's current slot. It must only
// be called while Valid reports true.
func (c *Cursor[K, V]) Value() V {
	return c.table.slots[c.index].value.Load()
}

// Next advances the cursor to the next matching slot, scanning forward
// from the slot after the current match and skipping non-matching
// non-empty slots, until either another match is found (the new cursor
// position, returning true) or an empty slot is found (the cursor
// becomes invalid, returning false).
//
// Because windows of size W tile the slot array contiguously (the
// window step W divides capacity, and window i covers slots
// [iW, iW+W)), a slot-by-slot scan visits every slot in exactly the
// order the group-cooperative window protocol would, and detects the
// same first empty slot; so one implementation serves both the
// single-worker and group-cooperative flavours of enumeration.
func (c *Cursor[K, V]) Next() bool {
	if !c.ok {
		return false
	}
	t := c.table
	idx := wrapIncrement(c.index, t.capacity)
	for {
		key := t.slots[idx].key.Load()
		if key == t.emptyKey {
			c.ok = false
			return false
		}
		if c.equal(key, c.key) {
			c.index = idx
			return true
		}
		idx = wrapIncrement(idx, t.capacity)
	}
}

func wrapIncrement(idx, capacity int) int {
	idx++
	if idx >= capacity {
		idx = 0
	}
	return idx
}

// Count returns the number of stored pairs whose key equals k: the
// length of the sequence FindAll(k) would produce.
func (t *Table[K, V]) Count(k K, hash HashFunc[K], equal EqualFunc[K]) int {
	c := t.FindAll(k, hash, equal)
	if !c.Valid() {
		return 0
	}
	n := 1
	for c.Next() {
		n++
	}
	return n
}
