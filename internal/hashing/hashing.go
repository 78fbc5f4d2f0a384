// Package hashing provides the hash primitives backing the memo tables.
// Scalar keys use a wyhash-style multiply mixer; byte keys use xxh3.
// All functions are deterministic across processes so that code assignment
// is reproducible for identical inputs.
package hashing

import (
	"math"
	"math/bits"

	"github.com/zeebo/xxh3"
)

// wyhash mixing constants.
const (
	m1 = 0xa0761d6478bd642f
	m2 = 0xe7037ed1a0b428db
	m3 = 0x8ebc6af09c88c6e3
	m5 = 0x1d8e4e27c47d124f
)

func mix(a, b uint64) uint64 {
	hi, lo := bits.Mul64(a, b)
	return hi ^ lo
}

// Uint64 hashes a 64-bit scalar. Narrower scalars are widened by the caller;
// the widening convention does not matter as long as it is applied
// consistently for equal keys.
func Uint64(x uint64) uint64 {
	return mix(m5^8, mix(x^m2, x^m1))
}

// Uint128 hashes a 128-bit scalar given as two 64-bit halves.
func Uint128(hi, lo uint64) uint64 {
	return mix(m5^16, mix(lo^m2, hi^m3^mix(lo^m2, lo^m1)))
}

// Bytes hashes an arbitrary byte span.
func Bytes(b []byte) uint64 {
	return xxh3.Hash(b)
}

// String hashes the bytes of s without copying them.
func String(s string) uint64 {
	return xxh3.HashString(s)
}

var nan64 = math.Float64bits(math.NaN())

// Float64Bits returns a canonical bit pattern for f: negative zero folds to
// positive zero and every NaN folds to one NaN, so that hashing and equality
// cannot disagree about float keys. float32 keys are widened to float64
// before canonicalization, which is exact.
func Float64Bits(f float64) uint64 {
	if f == 0 {
		return 0
	}
	if f != f {
		return nan64
	}
	return math.Float64bits(f)
}
