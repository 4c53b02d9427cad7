package staticmap

import (
	"encoding/binary"

	"golang.org/x/crypto/sha3"
)

// DefaultHash64 is a ready-made HashFunc for any Word-constrained key,
// so callers are not forced to write their own. It applies an
// XOR-shift-then-multiply mix to improve distribution for hash values
// whose entropy is concentrated in the high bits.
func DefaultHash64[K Word](k K) uint64 {
	h := uint64(k)
	h = spreadMix(h)
	return h
}

func spreadMix(h uint64) uint64 {
	h ^= h >> 33
	h *= 0xff51afd7ed558ccd
	h ^= h >> 33
	h *= 0xc4ceb9fe1a85ec53
	h ^= h >> 33
	return h
}

// Sha3Hash64 is a higher-quality (not cryptographically required)
// alternative hash for keys whose distribution defeats DefaultHash64's
// cheap multiplicative mix. It is built on golang.org/x/crypto/sha3.
func Sha3Hash64[K Word](k K) uint64 {
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], uint64(k))

	digest := sha3.Sum256(buf[:])
	return binary.LittleEndian.Uint64(digest[:8])
}

// Equal64 is a ready-made EqualFunc for Word-constrained keys: plain
// value equality. The core never invokes it with a sentinel argument,
// so this is always safe to use as-is.
func Equal64[K Word](a, b K) bool {
	return a == b
}
