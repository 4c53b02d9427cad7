package staticmap

import (
	"unsafe"

	"golang.org/x/sys/cpu"
)

// CacheLineSize is used to size the striped counters in batch.go to
// prevent false sharing between goroutines fanning out over a batch.
const CacheLineSize = unsafe.Sizeof(cpu.CacheLinePad{})
