package staticmap

import (
	"runtime"
	"sync"
	"sync/atomic"
)

// minParallelBatchItems is the minimum batch size before goroutine
// fan-out is worth its own overhead; below this threshold, batches run
// serially on the calling goroutine.
const minParallelBatchItems = 256

// calcParallelism picks a chunk size and chunk count for a batch of
// the given size.
func calcParallelism(items, threshold, cpus int) (chunkSize, chunks int) {
	if items <= threshold {
		return items, 1
	}
	chunks = min(items/threshold, cpus)
	chunkSize = (items + chunks - 1) / chunks
	return chunkSize, chunks
}

// parallelFor is the bulk fan-out driver: given a batch of N items, it
// spawns goroutines (one per chunk) and calls fn once per chunk with
// its [start, end) index range. It blocks until every chunk has
// completed, establishing a happens-before edge between the bulk call
// and whatever observes its effects afterward.
func parallelFor(n int, fn func(start, end int)) {
	if n == 0 {
		return
	}
	chunkSize, chunks := calcParallelism(n, minParallelBatchItems, runtime.GOMAXPROCS(0))
	if chunks <= 1 {
		fn(0, n)
		return
	}

	var wg sync.WaitGroup
	wg.Add(chunks)
	for i := 0; i < chunks; i++ {
		start := i * chunkSize
		end := min((i+1)*chunkSize, n)
		go func(start, end int) {
			defer wg.Done()
			fn(start, end)
		}(start, end)
	}
	wg.Wait()
}

// Pair is a key/value pair as produced by FindAllBatch.
type Pair[K Word, V Word] struct {
	Key   K
	Value V
}

// InsertBatch inserts every (key, value) pair in entries, distributing
// the batch across goroutines. If any insert fails with
// ErrCapacityExceeded, InsertBatch returns that error after the whole
// batch has been attempted; the table should then be considered
// saturated. Output ordering is not applicable since Insert has no
// output.
func (t *Table[K, V]) InsertBatch(entries []Pair[K, V], hash HashFunc[K]) error {
	if len(entries) == 0 {
		return nil
	}
	var failed atomic.Bool
	parallelFor(len(entries), func(start, end int) {
		for i := start; i < end; i++ {
			if err := t.Insert(entries[i].Key, entries[i].Value, hash); err != nil {
				failed.Store(true)
			}
		}
	})
	if failed.Load() {
		return ErrCapacityExceeded
	}
	return nil
}

// FindBatch writes, in input order, either the matching value or the
// table's empty-value sentinel for each key in keys.
func (t *Table[K, V]) FindBatch(keys []K, hash HashFunc[K], equal EqualFunc[K]) []V {
	out := make([]V, len(keys))
	parallelFor(len(keys), func(start, end int) {
		for i := start; i < end; i++ {
			if v, ok := t.Find(keys[i], hash, equal); ok {
				out[i] = v
			} else {
				out[i] = t.emptyValue
			}
		}
	})
	return out
}

// ContainsBatch writes, in input order, whether each key in keys is
// present.
func (t *Table[K, V]) ContainsBatch(keys []K, hash HashFunc[K], equal EqualFunc[K]) []bool {
	out := make([]bool, len(keys))
	parallelFor(len(keys), func(start, end int) {
		for i := start; i < end; i++ {
			out[i] = t.Contains(keys[i], hash, equal)
		}
	})
	return out
}

// counterStripe pads a single counter to its own cache line so that
// goroutines accumulating independent chunks of a batch don't thrash
// each other's cache lines.
type counterStripe struct {
	c atomic.Int64
	//lint:ignore U1000 prevents false sharing
	_ [CacheLineSize - 8]byte
}

// CountBatch returns the total number of stored pairs whose key
// equals any key in keys.
func (t *Table[K, V]) CountBatch(keys []K, hash HashFunc[K], equal EqualFunc[K]) int {
	cpus := runtime.GOMAXPROCS(0)
	if cpus < 1 {
		cpus = 1
	}
	stripes := make([]counterStripe, cpus)

	parallelFor(len(keys), func(start, end int) {
		stripe := &stripes[start%cpus]
		var local int64
		for i := start; i < end; i++ {
			local += int64(t.Count(keys[i], hash, equal))
		}
		stripe.c.Add(local)
	})

	var total int64
	for i := range stripes {
		total += stripes[i].c.Load()
	}
	return int(total)
}

// FindAllBatch writes every matching pair across all keys, in
// unspecified order, returning the slice of emitted pairs.
//
// This is a two-pass design: a counting pass (CountBatch) sizes the
// output slice, then a filling pass has each goroutine claim output
// positions with a single atomic fetch-add counter as it enumerates
// its keys' matches. The table is immutable for the duration of a
// bulk call, so re-enumerating between passes is safe.
func (t *Table[K, V]) FindAllBatch(keys []K, hash HashFunc[K], equal EqualFunc[K]) []Pair[K, V] {
	if len(keys) == 0 {
		return nil
	}

	total := t.CountBatch(keys, hash, equal)
	out := make([]Pair[K, V], total)
	var cursor atomic.Int64

	parallelFor(len(keys), func(start, end int) {
		for i := start; i < end; i++ {
			c := t.FindAll(keys[i], hash, equal)
			for c.Valid() {
				pos := cursor.Add(1) - 1
				out[pos] = Pair[K, V]{Key: keys[i], Value: c.Value()}
				if !c.Next() {
					break
				}
			}
		}
	})

	return out
}
