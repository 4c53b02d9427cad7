package staticmap

import "errors"

var (
	// ErrCapacityExceeded is returned by Insert/InsertBatch when a
	// probe sequence returns to its starting window without finding an
	// empty slot. Since the table never shrinks or grows, this is
	// terminal: the table should be considered saturated.
	ErrCapacityExceeded = errors.New("staticmap: capacity exceeded")

	// ErrAllocationFailed is returned by New when the requested
	// capacity is non-positive, so no slot array can be allocated.
	ErrAllocationFailed = errors.New("staticmap: slot array allocation failed")
)
