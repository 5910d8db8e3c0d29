// Package tsmap provides a fixed-capacity, coarse-locked integer map.
//
// @req RQ-0201
// @design DS-0201
package tsmap

import (
	"errors"
	"math"
	"sync"
)

// Absent is the legacy "not found" sentinel. Surfaces that must answer a
// miss with a raw integer (the RESP INFO line, the wire-compatible dump
// format) emit this value. The Go API signals absence through its bool
// result instead, because a stored value equal to Absent would otherwise
// be indistinguishable from a miss.
const Absent int64 = math.MaxInt64

// ErrInvalidCapacity is returned by New for a non-positive capacity.
var ErrInvalidCapacity = errors.New("tsmap: capacity must be at least 1")

// entry is a single key/value node in a bucket's collision chain.
// A node is owned by exactly one chain; Delete unlinks it and drops the
// last reference.
type entry struct {
	key   int64
	value int64
	next  *entry
}

// Map is a fixed-capacity concurrent map from int64 keys to int64 values.
//
// One mutex guards the bucket table, the entry count and the operation
// counter. There are no concurrent readers: even two Gets are mutually
// exclusive. Lock hold time is bounded by one chain traversal.
type Map struct {
	mu       sync.Mutex
	table    []*entry
	capacity int
	size     int
	ops      uint64
}

// Stats is a consistent point-in-time snapshot of the map counters,
// taken under a single lock acquisition.
type Stats struct {
	Capacity int    `json:"capacity"`
	Size     int    `json:"size"`
	Ops      uint64 `json:"ops"`
}

// New creates a map with the given bucket count. The capacity is fixed
// for the lifetime of the map; there is no resizing or rehashing.
func New(capacity int) (*Map, error) {
	if capacity < 1 {
		return nil, ErrInvalidCapacity
	}
	return &Map{
		table:    make([]*entry, capacity),
		capacity: capacity,
	}, nil
}

// bucket computes the table index for a key. The unsigned conversion
// keeps the index non-negative for negative keys.
func (m *Map) bucket(key int64) int {
	return int(uint64(key) % uint64(m.capacity))
}

// Get returns the value stored under key. The second result is false on
// a miss, in which case the value is Absent.
//
// Every call counts as one operation, hit or miss.
func (m *Map) Get(key int64) (int64, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.ops++
	for e := m.table[m.bucket(key)]; e != nil; e = e.next {
		if e.key == key {
			return e.value, true
		}
	}
	return Absent, false
}

// Put stores value under key and returns the previous value. The second
// result reports whether the key already existed; for a new key the
// previous value is Absent.
//
// An existing entry is overwritten in place. A new entry is linked at
// the chain head; the scan already proved the key unique, so no tail
// walk is needed.
func (m *Map) Put(key, value int64) (int64, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.ops++
	idx := m.bucket(key)
	for e := m.table[idx]; e != nil; e = e.next {
		if e.key == key {
			prev := e.value
			e.value = value
			return prev, true
		}
	}

	m.table[idx] = &entry{key: key, value: value, next: m.table[idx]}
	m.size++
	return Absent, false
}

// Delete removes key and returns the value it held. The second result
// is false if the key was absent, in which case nothing changed.
//
// The chain is scanned with a previous-link cursor so the matched node
// is unlinked in the same pass.
func (m *Map) Delete(key int64) (int64, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.ops++
	for ptr := &m.table[m.bucket(key)]; *ptr != nil; ptr = &(*ptr).next {
		if (*ptr).key == key {
			value := (*ptr).value
			*ptr = (*ptr).next
			m.size--
			return value, true
		}
	}
	return Absent, false
}

// Len returns the number of live entries.
func (m *Map) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.size
}

// Capacity returns the fixed bucket count.
func (m *Map) Capacity() int {
	return m.capacity
}

// Ops returns the lifetime count of completed Get/Put/Delete calls.
func (m *Map) Ops() uint64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.ops
}

// Stats returns capacity, size and operation count under one lock
// acquisition, so the three values are mutually consistent.
func (m *Map) Stats() Stats {
	m.mu.Lock()
	defer m.mu.Unlock()
	return Stats{
		Capacity: m.capacity,
		Size:     m.size,
		Ops:      m.ops,
	}
}

// Clear unlinks every chain and resets the entry count. The operation
// counter is retained. Safe to call on a nil map.
//
// Clear is the teardown path: after it returns no entry is reachable
// from the table. It is not an operation in the accounting sense and
// does not bump the counter.
func (m *Map) Clear() {
	if m == nil {
		return
	}
	m.mu.Lock()
	defer m.mu.Unlock()

	for i := range m.table {
		m.table[i] = nil
	}
	m.size = 0
}
