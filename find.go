package staticmap

// Find returns one matching value for k (the first one encountered by
// the probe sequence) and true, or the table's empty-value sentinel and
// false if k is not present. A matching slot whose value field still
// holds the empty-value sentinel (its inserter has committed the key
// but not yet the value) is reported as not present. When k was
// inserted multiple times, use FindAll to enumerate every match.
func (t *Table[K, V]) Find(k K, hash HashFunc[K], equal EqualFunc[K]) (V, bool) {
	idx, ok := t.findFirst(k, hash, equal)
	if !ok {
		return t.emptyValue, false
	}
	v := t.slots[idx].value.Load()
	if v == t.emptyValue {
		return t.emptyValue, false
	}
	return v, true
}

// Contains reports whether k is present in the table at least once.
func (t *Table[K, V]) Contains(k K, hash HashFunc[K], equal EqualFunc[K]) bool {
	_, ok := t.findFirst(k, hash, equal)
	return ok
}

// findFirst locates the first slot matching k along its probe
// sequence. Within a window, a match takes priority over an empty
// slot observed in the same window, so that a key colocated with a
// not-yet-visited empty slot in the same window is still found. An
// empty slot anywhere in the window, with no match found first,
// proves absence: since the table never deletes, the probe path to
// any inserted key never crosses an empty slot.
func (t *Table[K, V]) findFirst(k K, hash HashFunc[K], equal EqualFunc[K]) (int, bool) {
	base := t.initialSlot(hash(k))
	for probes := 0; probes < t.maxProbes(); probes++ {
		emptyLane, matchLane := -1, -1
		for lane := 0; lane < t.groupSize; lane++ {
			key := t.slots[base+lane].key.Load()
			if key == t.emptyKey {
				if emptyLane < 0 {
					emptyLane = lane
				}
				continue
			}
			if matchLane < 0 && equal(key, k) {
				matchLane = lane
			}
		}
		if matchLane >= 0 {
			return base + matchLane, true
		}
		if emptyLane >= 0 {
			return 0, false
		}
		base = t.nextWindow(base)
	}
	return 0, false
}
