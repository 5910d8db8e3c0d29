package tsmap

import (
	"testing"
)

func TestNew(t *testing.T) {
	m, err := New(16)
	if err != nil {
		t.Fatalf("New(16) error: %v", err)
	}
	if m.Capacity() != 16 {
		t.Errorf("Capacity() = %d, want 16", m.Capacity())
	}
	if m.Len() != 0 {
		t.Errorf("Len() = %d, want 0", m.Len())
	}
	if m.Ops() != 0 {
		t.Errorf("Ops() = %d, want 0", m.Ops())
	}
}

func TestNewInvalidCapacity(t *testing.T) {
	for _, capacity := range []int{0, -1, -100} {
		if _, err := New(capacity); err != ErrInvalidCapacity {
			t.Errorf("New(%d) error = %v, want ErrInvalidCapacity", capacity, err)
		}
	}
}

func TestPutThenGet(t *testing.T) {
	m, _ := New(8)

	prev, existed := m.Put(1, 100)
	if existed || prev != Absent {
		t.Errorf("Put(1, 100) = (%d, %v), want (Absent, false)", prev, existed)
	}

	v, ok := m.Get(1)
	if !ok || v != 100 {
		t.Errorf("Get(1) = (%d, %v), want (100, true)", v, ok)
	}
}

func TestGetMiss(t *testing.T) {
	m, _ := New(8)

	v, ok := m.Get(42)
	if ok || v != Absent {
		t.Errorf("Get(42) = (%d, %v), want (Absent, false)", v, ok)
	}
	if m.Len() != 0 {
		t.Errorf("Len() = %d after miss, want 0", m.Len())
	}
}

func TestPutOverwrite(t *testing.T) {
	m, _ := New(8)

	m.Put(7, 1)
	prev, existed := m.Put(7, 2)
	if !existed || prev != 1 {
		t.Errorf("second Put(7) = (%d, %v), want (1, true)", prev, existed)
	}
	if m.Len() != 1 {
		t.Errorf("Len() = %d after overwrite, want 1", m.Len())
	}

	v, ok := m.Get(7)
	if !ok || v != 2 {
		t.Errorf("Get(7) = (%d, %v), want (2, true)", v, ok)
	}
}

func TestDelete(t *testing.T) {
	m, _ := New(8)

	m.Put(3, 30)
	v, ok := m.Delete(3)
	if !ok || v != 30 {
		t.Errorf("Delete(3) = (%d, %v), want (30, true)", v, ok)
	}
	if m.Len() != 0 {
		t.Errorf("Len() = %d after delete, want 0", m.Len())
	}

	if _, ok := m.Get(3); ok {
		t.Error("Get(3) found key after delete")
	}
}

func TestDeleteMiss(t *testing.T) {
	m, _ := New(8)
	m.Put(1, 10)

	v, ok := m.Delete(2)
	if ok || v != Absent {
		t.Errorf("Delete(2) = (%d, %v), want (Absent, false)", v, ok)
	}
	if m.Len() != 1 {
		t.Errorf("Len() = %d, want 1", m.Len())
	}
}

func TestNegativeKeys(t *testing.T) {
	m, _ := New(7)

	// Negative keys must index a valid bucket via unsigned conversion.
	for _, key := range []int64{-1, -7, -1 << 62} {
		if prev, existed := m.Put(key, key*2); existed || prev != Absent {
			t.Fatalf("Put(%d) = (%d, %v), want (Absent, false)", key, prev, existed)
		}
		if v, ok := m.Get(key); !ok || v != key*2 {
			t.Errorf("Get(%d) = (%d, %v), want (%d, true)", key, v, ok, key*2)
		}
	}
	if m.Len() != 3 {
		t.Errorf("Len() = %d, want 3", m.Len())
	}
}

func TestOpsCounting(t *testing.T) {
	m, _ := New(4)

	// Hits and misses all count; Len/Stats/Range do not.
	m.Put(1, 1)   // 1
	m.Put(1, 2)   // 2
	m.Get(1)      // 3
	m.Get(99)     // 4
	m.Delete(1)   // 5
	m.Delete(99)  // 6
	m.Len()
	m.Stats()
	m.Range(func(int, int64, int64) bool { return true })

	if ops := m.Ops(); ops != 6 {
		t.Errorf("Ops() = %d, want 6", ops)
	}
}

// TestCollisionChain exercises the documented collision scenario:
// with capacity 4, keys 1 and 5 share bucket 1.
func TestCollisionChain(t *testing.T) {
	m, _ := New(4)

	m.Put(1, 10)
	m.Put(5, 20)

	if v, _ := m.Get(1); v != 10 {
		t.Errorf("Get(1) = %d, want 10", v)
	}
	if v, _ := m.Get(5); v != 20 {
		t.Errorf("Get(5) = %d, want 20", v)
	}

	if v, ok := m.Delete(1); !ok || v != 10 {
		t.Errorf("Delete(1) = (%d, %v), want (10, true)", v, ok)
	}
	if _, ok := m.Get(1); ok {
		t.Error("Get(1) found key after delete")
	}
	if v, _ := m.Get(5); v != 20 {
		t.Errorf("Get(5) = %d after deleting chain neighbor, want 20", v)
	}

	st := m.Stats()
	if st.Size != 1 {
		t.Errorf("Size = %d, want 1", st.Size)
	}
	if st.Ops != 6 {
		t.Errorf("Ops = %d, want 6", st.Ops)
	}
}

func TestDeleteMiddleOfChain(t *testing.T) {
	m, _ := New(1) // every key collides

	m.Put(1, 10)
	m.Put(2, 20)
	m.Put(3, 30) // chain: 3 -> 2 -> 1

	if v, ok := m.Delete(2); !ok || v != 20 {
		t.Fatalf("Delete(2) = (%d, %v), want (20, true)", v, ok)
	}

	for _, tc := range []struct{ key, want int64 }{{1, 10}, {3, 30}} {
		if v, ok := m.Get(tc.key); !ok || v != tc.want {
			t.Errorf("Get(%d) = (%d, %v), want (%d, true)", tc.key, v, ok, tc.want)
		}
	}
	if m.Len() != 2 {
		t.Errorf("Len() = %d, want 2", m.Len())
	}
}

func TestClear(t *testing.T) {
	m, _ := New(4)
	for i := int64(0); i < 10; i++ {
		m.Put(i, i)
	}
	opsBefore := m.Ops()

	m.Clear()

	if m.Len() != 0 {
		t.Errorf("Len() = %d after Clear, want 0", m.Len())
	}
	if m.Ops() != opsBefore {
		t.Errorf("Ops() = %d after Clear, want %d", m.Ops(), opsBefore)
	}
	if _, ok := m.Get(3); ok {
		t.Error("Get(3) found key after Clear")
	}
}

func TestClearNilMap(t *testing.T) {
	var m *Map
	m.Clear() // must not panic
}

func TestStoredSentinelValue(t *testing.T) {
	m, _ := New(4)

	// A stored value equal to Absent is a legitimate value; the ok flag
	// is what distinguishes it from a miss.
	m.Put(1, Absent)
	v, ok := m.Get(1)
	if !ok || v != Absent {
		t.Errorf("Get(1) = (%d, %v), want (Absent, true)", v, ok)
	}
}
