// Package tsmap provides a fixed-capacity, thread-safe integer map for LockMap.
//
// This package implements a coarse-locked chained hashmap with the
// following properties:
//
//   - Fixed Capacity: the bucket table is sized once at construction
//     and never rehashed
//   - Coarse Locking: one mutex serializes every operation, including
//     reads, so linearizability is trivial to reason about
//   - Chained Buckets: collisions are held in per-bucket linked chains
//     with head insertion
//   - Operation Accounting: a lifetime counter of completed
//     get/put/delete calls
//
// Usage:
//
//	m, err := tsmap.New(1024)
//	prev, existed := m.Put(42, 7)
//	v, ok := m.Get(42)
//
// Thread Safety:
//
// All operations are safe for concurrent use. Every method acquires the
// single map mutex for its full duration; two operations never overlap.
//
// @adr AD-0201
package tsmap
