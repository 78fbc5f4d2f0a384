package memo

const (
	// initialCapacity is the bucket count of a fresh table. Power of two so
	// probing can mask instead of mod.
	initialCapacity = 32

	// codeMissing marks the null slot of a table that has not seen a null
	// key yet. It is never returned as a valid code.
	codeMissing = int32(-1)
)

// entry is one bucket of the open-addressing index. slot holds code+1 so
// the zero value marks an empty bucket; the cached hash makes probe
// comparisons and resize migration cheap.
type entry struct {
	hash uint64
	slot int32
}

// Table memoizes fixed-width keys of type K under the hashing and equality
// policy T. Each distinct key receives the next free int32 code at first
// insertion; codes are dense, start at zero, and never change afterwards.
//
// The index uses open addressing with linear probing and doubles once
// occupancy passes two thirds of the buckets. Payloads live in a separate
// dense array ordered by code, so resizing rebuilds only the index.
type Table[K any, T Traits[K]] struct {
	traits  T
	entries []entry
	mask    uint64
	maxFill int

	values   []K
	nullCode int32
}

// NewTable returns an empty table. Most callers want one of the typed
// constructors such as NewScalarTable or NewFloatTable instead.
func NewTable[K any, T Traits[K]]() *Table[K, T] {
	t := &Table[K, T]{nullCode: codeMissing}
	t.rebuild(initialCapacity)
	return t
}

// Len reports how many distinct keys the table holds, counting the null
// key if it was inserted.
func (t *Table[K, T]) Len() int {
	n := len(t.values)
	if t.nullCode != codeMissing {
		n++
	}
	return n
}

// GetOrInsert returns the code assigned to k, inserting it with the next
// free code if it was never seen. found reports whether k was already
// present.
func (t *Table[K, T]) GetOrInsert(k K) (code int32, found bool) {
	h := t.traits.Hash(k)
	idx := h & t.mask
	for {
		e := &t.entries[idx]
		if e.slot == 0 {
			code = int32(t.Len())
			t.values = append(t.values, k)
			e.hash = h
			e.slot = code + 1
			if len(t.values) > t.maxFill {
				t.rebuild(len(t.entries) * 2)
			}
			return code, false
		}
		if e.hash == h {
			code = e.slot - 1
			if t.traits.Equal(k, t.values[t.valuePos(code)]) {
				return code, true
			}
		}
		idx = (idx + 1) & t.mask
	}
}

// Lookup returns the code assigned to k. The code is meaningful only when
// found is true; the table is not modified.
func (t *Table[K, T]) Lookup(k K) (code int32, found bool) {
	h := t.traits.Hash(k)
	idx := h & t.mask
	for {
		e := &t.entries[idx]
		if e.slot == 0 {
			return 0, false
		}
		if e.hash == h {
			code = e.slot - 1
			if t.traits.Equal(k, t.values[t.valuePos(code)]) {
				return code, true
			}
		}
		idx = (idx + 1) & t.mask
	}
}

// GetOrInsertNull returns the code of the null key, reserving the next free
// code on first use. Null never touches the hash index, so no key bit
// pattern can collide with it.
func (t *Table[K, T]) GetOrInsertNull() (code int32, found bool) {
	if t.nullCode != codeMissing {
		return t.nullCode, true
	}
	t.nullCode = int32(t.Len())
	return t.nullCode, false
}

// LookupNull returns the null key's code and whether null was ever
// inserted.
func (t *Table[K, T]) LookupNull() (code int32, found bool) {
	return t.nullCode, t.nullCode != codeMissing
}

// Value returns the key that was assigned code. It panics if code is out of
// range or is the null code, which has no payload.
func (t *Table[K, T]) Value(code int32) K {
	if code == t.nullCode {
		panic("memo: null code has no value")
	}
	return t.values[t.valuePos(code)]
}

// Values returns the distinct non-null keys in code order. The slice
// aliases table internals and must not be modified.
func (t *Table[K, T]) Values() []K {
	return t.values
}

// Reserve grows the index so that n distinct keys fit without further
// resizing. Existing codes are unaffected.
func (t *Table[K, T]) Reserve(n int) {
	if c := capacityFor(n); c > len(t.entries) {
		t.rebuild(c)
	}
	if n > cap(t.values) {
		values := make([]K, len(t.values), n)
		copy(values, t.values)
		t.values = values
	}
}

// valuePos maps a code to its index in the dense payload array, skipping
// over the payload-less null code.
func (t *Table[K, T]) valuePos(code int32) int {
	if t.nullCode != codeMissing && code > t.nullCode {
		return int(code - 1)
	}
	return int(code)
}

// rebuild swaps in an index of capacity buckets and re-seats the occupied
// entries using their cached hashes. Payloads and codes do not move.
func (t *Table[K, T]) rebuild(capacity int) {
	old := t.entries
	t.entries = make([]entry, capacity)
	t.mask = uint64(capacity - 1)
	t.maxFill = capacity * 2 / 3
	for _, e := range old {
		if e.slot == 0 {
			continue
		}
		idx := e.hash & t.mask
		for t.entries[idx].slot != 0 {
			idx = (idx + 1) & t.mask
		}
		t.entries[idx] = e
	}
}

// capacityFor returns the smallest power-of-two bucket count whose fill
// threshold admits n keys.
func capacityFor(n int) int {
	c := initialCapacity
	for c*2/3 < n {
		c <<= 1
	}
	return c
}
