// Package staticmap implements a fixed-capacity, open-addressing
// concurrent multimap: a hash-indexed associative container in which a
// single key may appear any number of times, and every operation
// (construction, bulk insert, bulk point-query, bulk enumerate-all) is
// safe under heavy goroutine-level concurrency.
//
// A Table never grows, shrinks, or deletes entries. Callers size it
// once, up front, and insert batches of keys that are expected to fit;
// an insert that cannot find an empty slot returns ErrCapacityExceeded
// and the table should be considered saturated.
//
// staticmap is built around a two-word atomic insert protocol: the key
// field of a slot is the commit word (its compare-and-swap linearizes
// contending inserts), and the value field converges afterwards with
// explicit rollback of any orphaned write. A group-cooperative variant
// examines a window of W consecutive slots at a time to amortize probe
// latency; W == 1 degenerates to plain linear probing.
//
// All slot loads and stores use relaxed ordering. Correctness does not
// depend on cross-slot ordering: the monotonic property of keys
// (empty -> non-empty, never reverse) means a stale read of empty is
// acceptable for inserters (they retry) and a stale read of non-empty
// is acceptable for finders (they keep probing). Bulk calls are
// expected to run to completion, synchronizing via their internal
// sync.WaitGroup, before a subsequent bulk call begins; concurrent
// reads during an in-flight insert batch have no defined semantics.
package staticmap
