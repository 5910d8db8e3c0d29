package tsmap

import "testing"

func TestRangeOrder(t *testing.T) {
	m, _ := New(4)
	m.Put(1, 10)
	m.Put(5, 20) // bucket 1, inserted at head before key 1
	m.Put(2, 30) // bucket 2

	var got []Pair
	var buckets []int
	m.Range(func(bucket int, key, value int64) bool {
		got = append(got, Pair{key, value})
		buckets = append(buckets, bucket)
		return true
	})

	want := []Pair{{5, 20}, {1, 10}, {2, 30}}
	if len(got) != len(want) {
		t.Fatalf("Range visited %d entries, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("entry %d = %+v, want %+v", i, got[i], want[i])
		}
	}
	wantBuckets := []int{1, 1, 2}
	for i := range wantBuckets {
		if buckets[i] != wantBuckets[i] {
			t.Errorf("bucket %d = %d, want %d", i, buckets[i], wantBuckets[i])
		}
	}
}

func TestRangeEarlyStop(t *testing.T) {
	m, _ := New(2)
	for i := int64(0); i < 6; i++ {
		m.Put(i, i)
	}

	visited := 0
	m.Range(func(int, int64, int64) bool {
		visited++
		return visited < 3
	})
	if visited != 3 {
		t.Errorf("visited = %d, want 3", visited)
	}
}

func TestDump(t *testing.T) {
	m, _ := New(4)
	m.Put(1, 10)
	m.Put(5, 20)

	dump := m.Dump()
	if len(dump) != 1 {
		t.Fatalf("len(dump) = %d, want 1", len(dump))
	}
	if dump[0].Bucket != 1 {
		t.Errorf("Bucket = %d, want 1", dump[0].Bucket)
	}
	if len(dump[0].Entries) != 2 {
		t.Fatalf("len(Entries) = %d, want 2", len(dump[0].Entries))
	}
	// Head insertion: key 5 precedes key 1.
	if dump[0].Entries[0].Key != 5 || dump[0].Entries[1].Key != 1 {
		t.Errorf("chain order = [%d, %d], want [5, 1]",
			dump[0].Entries[0].Key, dump[0].Entries[1].Key)
	}
}

func TestKeys(t *testing.T) {
	m, _ := New(8)
	for i := int64(0); i < 5; i++ {
		m.Put(i, i*10)
	}

	keys := m.Keys()
	if len(keys) != 5 {
		t.Fatalf("len(Keys()) = %d, want 5", len(keys))
	}
	seen := make(map[int64]bool)
	for _, k := range keys {
		if seen[k] {
			t.Errorf("duplicate key %d", k)
		}
		seen[k] = true
	}
}
