package memo

import (
	"bytes"

	"github.com/ajitpratap0/arrowhash/internal/hashing"
)

// BinaryTable memoizes variable-length byte keys, including the empty key.
// It shares the Table design, with payload bytes packed into one contiguous
// arena addressed by an offsets array, so n distinct keys cost two slices
// rather than n allocations.
//
// String and byte views of the same payload share one code: inserting "foo"
// and then []byte("foo") yields the same code either way.
type BinaryTable struct {
	entries []entry
	mask    uint64
	maxFill int

	data     []byte
	offsets  []int32
	nullCode int32
}

// NewBinaryTable returns an empty table for byte and string keys.
func NewBinaryTable() *BinaryTable {
	t := &BinaryTable{
		offsets:  make([]int32, 1, initialCapacity+1),
		nullCode: codeMissing,
	}
	t.rebuild(initialCapacity)
	return t
}

// Len reports how many distinct keys the table holds, counting the null
// key if it was inserted.
func (t *BinaryTable) Len() int {
	n := len(t.offsets) - 1
	if t.nullCode != codeMissing {
		n++
	}
	return n
}

// GetOrInsert returns the code assigned to key v, inserting it with the
// next free code if it was never seen.
func (t *BinaryTable) GetOrInsert(v []byte) (code int32, found bool) {
	h := hashing.Bytes(v)
	idx := h & t.mask
	for {
		e := &t.entries[idx]
		if e.slot == 0 {
			code = int32(t.Len())
			t.data = append(t.data, v...)
			t.offsets = append(t.offsets, int32(len(t.data)))
			e.hash = h
			e.slot = code + 1
			if len(t.offsets)-1 > t.maxFill {
				t.rebuild(len(t.entries) * 2)
			}
			return code, false
		}
		if e.hash == h {
			code = e.slot - 1
			if bytes.Equal(v, t.payload(code)) {
				return code, true
			}
		}
		idx = (idx + 1) & t.mask
	}
}

// GetOrInsertString is GetOrInsert for a string key. The probe allocates
// nothing; the key bytes are copied only on first insertion.
func (t *BinaryTable) GetOrInsertString(s string) (code int32, found bool) {
	h := hashing.String(s)
	idx := h & t.mask
	for {
		e := &t.entries[idx]
		if e.slot == 0 {
			code = int32(t.Len())
			t.data = append(t.data, s...)
			t.offsets = append(t.offsets, int32(len(t.data)))
			e.hash = h
			e.slot = code + 1
			if len(t.offsets)-1 > t.maxFill {
				t.rebuild(len(t.entries) * 2)
			}
			return code, false
		}
		if e.hash == h {
			code = e.slot - 1
			if string(t.payload(code)) == s {
				return code, true
			}
		}
		idx = (idx + 1) & t.mask
	}
}

// Lookup returns the code assigned to key v. The code is meaningful only
// when found is true; the table is not modified.
func (t *BinaryTable) Lookup(v []byte) (code int32, found bool) {
	h := hashing.Bytes(v)
	idx := h & t.mask
	for {
		e := &t.entries[idx]
		if e.slot == 0 {
			return 0, false
		}
		if e.hash == h {
			code = e.slot - 1
			if bytes.Equal(v, t.payload(code)) {
				return code, true
			}
		}
		idx = (idx + 1) & t.mask
	}
}

// LookupString is Lookup for a string key.
func (t *BinaryTable) LookupString(s string) (code int32, found bool) {
	h := hashing.String(s)
	idx := h & t.mask
	for {
		e := &t.entries[idx]
		if e.slot == 0 {
			return 0, false
		}
		if e.hash == h {
			code = e.slot - 1
			if string(t.payload(code)) == s {
				return code, true
			}
		}
		idx = (idx + 1) & t.mask
	}
}

// GetOrInsertNull returns the code of the null key, reserving the next free
// code on first use.
func (t *BinaryTable) GetOrInsertNull() (code int32, found bool) {
	if t.nullCode != codeMissing {
		return t.nullCode, true
	}
	t.nullCode = int32(t.Len())
	return t.nullCode, false
}

// LookupNull returns the null key's code and whether null was ever
// inserted.
func (t *BinaryTable) LookupNull() (code int32, found bool) {
	return t.nullCode, t.nullCode != codeMissing
}

// Value returns the key bytes assigned code. The slice aliases the arena
// and must not be modified; it panics for the null code, which has no
// payload.
func (t *BinaryTable) Value(code int32) []byte {
	if code == t.nullCode {
		panic("memo: null code has no value")
	}
	return t.payload(code)
}

// ValueString returns the key assigned code as a freshly allocated string.
func (t *BinaryTable) ValueString(code int32) string {
	return string(t.Value(code))
}

// Reserve grows the index for n distinct keys and the arena for dataBytes
// payload bytes so that a build of known size inserts without resizing.
func (t *BinaryTable) Reserve(n int, dataBytes int) {
	if c := capacityFor(n); c > len(t.entries) {
		t.rebuild(c)
	}
	if n+1 > cap(t.offsets) {
		offsets := make([]int32, len(t.offsets), n+1)
		copy(offsets, t.offsets)
		t.offsets = offsets
	}
	if dataBytes > cap(t.data) {
		data := make([]byte, len(t.data), dataBytes)
		copy(data, t.data)
		t.data = data
	}
}

// payload returns the arena bytes of a non-null code.
func (t *BinaryTable) payload(code int32) []byte {
	pos := int(code)
	if t.nullCode != codeMissing && code > t.nullCode {
		pos--
	}
	return t.data[t.offsets[pos]:t.offsets[pos+1]]
}

// rebuild swaps in an index of capacity buckets and re-seats the occupied
// entries using their cached hashes. The arena and codes do not move.
func (t *BinaryTable) rebuild(capacity int) {
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
