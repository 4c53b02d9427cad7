package staticmap

import "github.com/sugawarayuuta/sonnet"

// jsonMarshal/jsonUnmarshal are swappable so callers can plug in a
// faster codec than encoding/json. staticmap defaults to sonnet, a
// drop-in-compatible fast encoder/decoder, since a Table snapshot dump
// is exactly the bulk encode/decode workload sonnet targets.
var (
	jsonMarshal   = sonnet.Marshal
	jsonUnmarshal = sonnet.Unmarshal
)

// SetDefaultJSONMarshal overrides the codec used by DumpJSON/LoadJSON
// for every Table instance. Call it once at program start if a
// different JSON implementation is preferred over the sonnet default.
func SetDefaultJSONMarshal(
	marshal func(v any) ([]byte, error),
	unmarshal func(data []byte, v any) error,
) {
	jsonMarshal = marshal
	jsonUnmarshal = unmarshal
}

// snapshotPair is the wire representation of one stored pair.
type snapshotPair[K Word, V Word] struct {
	Key   K `json:"key"`
	Value V `json:"value"`
}

// Snapshot returns every stored pair in the table, in unspecified
// order. The table must not be concurrently mutated while the
// snapshot is taken; the same happens-before requirement every bulk
// operation places on its caller applies here.
func (t *Table[K, V]) Snapshot() []Pair[K, V] {
	var out []Pair[K, V]
	for i := range t.slots {
		key := t.slots[i].key.Load()
		if key == t.emptyKey {
			continue
		}
		out = append(out, Pair[K, V]{Key: key, Value: t.slots[i].value.Load()})
	}
	return out
}

// DumpJSON encodes a snapshot of the table as a JSON array of
// {"key":..., "value":...} objects, using the codec installed via
// SetDefaultJSONMarshal (sonnet by default).
func (t *Table[K, V]) DumpJSON() ([]byte, error) {
	pairs := t.Snapshot()
	wire := make([]snapshotPair[K, V], len(pairs))
	for i, p := range pairs {
		wire[i] = snapshotPair[K, V]{Key: p.Key, Value: p.Value}
	}
	return jsonMarshal(wire)
}

// LoadJSON decodes data produced by DumpJSON and inserts every pair
// into the table via InsertBatch, using hash to locate each key's
// probe sequence.
func (t *Table[K, V]) LoadJSON(data []byte, hash HashFunc[K]) error {
	var wire []snapshotPair[K, V]
	if err := jsonUnmarshal(data, &wire); err != nil {
		return err
	}
	pairs := make([]Pair[K, V], len(wire))
	for i, p := range wire {
		pairs[i] = Pair[K, V]{Key: p.Key, Value: p.Value}
	}
	return t.InsertBatch(pairs, hash)
}
