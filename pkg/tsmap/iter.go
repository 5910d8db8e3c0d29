// Package tsmap provides a fixed-capacity, coarse-locked integer map.
package tsmap

// Range calls fn for every entry in bucket order, head to tail within
// each chain. The map mutex is held for the whole traversal, so the
// view is consistent; fn must not call back into the map.
//
// The callback returns false to stop iteration.
func (m *Map) Range(fn func(bucket int, key, value int64) bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for i, head := range m.table {
		for e := head; e != nil; e = e.next {
			if !fn(i, e.key, e.value) {
				return
			}
		}
	}
}

// Pair is one key/value element of a bucket dump.
type Pair struct {
	Key   int64 `json:"key"`
	Value int64 `json:"value"`
}

// BucketDump lists one bucket's chain in head-to-tail order.
type BucketDump struct {
	Bucket  int    `json:"bucket"`
	Entries []Pair `json:"entries"`
}

// Dump returns every non-empty bucket with its chain contents, in
// bucket order. Diagnostic use only; the snapshot is consistent because
// Range holds the lock throughout.
func (m *Map) Dump() []BucketDump {
	var out []BucketDump
	last := -1
	m.Range(func(bucket int, key, value int64) bool {
		if bucket != last {
			out = append(out, BucketDump{Bucket: bucket})
			last = bucket
		}
		b := &out[len(out)-1]
		b.Entries = append(b.Entries, Pair{Key: key, Value: value})
		return true
	})
	return out
}

// Keys returns all keys in bucket order.
func (m *Map) Keys() []int64 {
	keys := make([]int64, 0, m.Len())
	m.Range(func(_ int, key, _ int64) bool {
		keys = append(keys, key)
		return true
	})
	return keys
}
