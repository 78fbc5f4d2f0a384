// Package memo provides memo tables: hash tables that assign dense,
// zero-based int32 codes to distinct keys in order of first insertion and
// recall those codes on later inserts and lookups.
//
// A memo table is the building block behind membership probing, dictionary
// encoding, and deduplication over columnar data. Two layouts are provided:
//
//   - Table[K, T] for keys that fit a fixed-width Go value (integers,
//     floats, booleans, 128-bit decimals), parameterized by a Traits policy
//     supplying hashing and equality per key family.
//   - BinaryTable for variable-length byte and string keys, which stores
//     payloads contiguously in an arena.
//
// Null is a single key class tracked out of band: a flag plus one reserved
// code, never hashed, so no sentinel byte pattern can collide with real
// payloads. The null code is drawn from the same sequence as other codes:
// inserting 2, null, 6 assigns them codes 0, 1, 2.
//
// Codes are stable across index growth: payloads live in a dense array keyed
// by insertion order while the bucket index is rebuilt freely on resize.
//
// Tables are not safe for concurrent mutation. A fully built table may be
// read from multiple goroutines.
package memo
