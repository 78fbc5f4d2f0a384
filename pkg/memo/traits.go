package memo

import (
	"github.com/apache/arrow-go/v18/arrow/decimal128"

	"github.com/ajitpratap0/arrowhash/internal/hashing"
)

// Scalar enumerates the integer-like key types handled by ScalarTraits.
// Signed values hash through their two's-complement bit pattern.
type Scalar interface {
	~int8 | ~int16 | ~int32 | ~int64 | ~uint8 | ~uint16 | ~uint32 | ~uint64
}

// Float enumerates the floating-point key types handled by FloatTraits.
type Float interface {
	~float32 | ~float64
}

// Traits supplies the hashing and equality policy for a Table key family.
// Implementations must be zero-size structs; the table instantiates them by
// value, once per table type.
//
// Hash must be consistent with Equal: keys that compare equal must hash
// equal.
type Traits[K any] interface {
	Hash(K) uint64
	Equal(a, b K) bool
}

// ScalarTraits hashes integer-like keys through their widened bit pattern.
type ScalarTraits[V Scalar] struct{}

func (ScalarTraits[V]) Hash(v V) uint64   { return hashing.Uint64(uint64(v)) }
func (ScalarTraits[V]) Equal(a, b V) bool { return a == b }

// FloatTraits hashes floating-point keys by value class rather than by raw
// bit pattern: +0 and -0 hash and compare equal, and every NaN payload
// belongs to one NaN class. The table therefore memoizes a single code per
// class, keyed by the first representative inserted.
type FloatTraits[V Float] struct{}

func (FloatTraits[V]) Hash(v V) uint64 {
	return hashing.Uint64(hashing.Float64Bits(float64(v)))
}

func (FloatTraits[V]) Equal(a, b V) bool {
	return a == b || (a != a && b != b)
}

// BoolTraits hashes boolean keys. A boolean table holds at most two codes
// plus the null code, but it reuses the general layout so callers get one
// code vocabulary regardless of key type.
type BoolTraits struct{}

func (BoolTraits) Hash(v bool) uint64 {
	if v {
		return hashing.Uint64(1)
	}
	return hashing.Uint64(0)
}

func (BoolTraits) Equal(a, b bool) bool { return a == b }

// Decimal128Traits hashes 128-bit decimal keys over both halves of the
// value. Scale and precision are a property of the column type, not the key,
// so two Nums with equal bits are equal keys.
type Decimal128Traits struct{}

func (Decimal128Traits) Hash(v decimal128.Num) uint64 {
	return hashing.Uint128(uint64(v.HighBits()), v.LowBits())
}

func (Decimal128Traits) Equal(a, b decimal128.Num) bool { return a == b }

// NewScalarTable returns an empty table for integer-like keys.
func NewScalarTable[V Scalar]() *Table[V, ScalarTraits[V]] {
	return NewTable[V, ScalarTraits[V]]()
}

// NewFloatTable returns an empty table for floating-point keys.
func NewFloatTable[V Float]() *Table[V, FloatTraits[V]] {
	return NewTable[V, FloatTraits[V]]()
}

// NewBoolTable returns an empty table for boolean keys.
func NewBoolTable() *Table[bool, BoolTraits] {
	return NewTable[bool, BoolTraits]()
}

// NewDecimal128Table returns an empty table for 128-bit decimal keys.
func NewDecimal128Table() *Table[decimal128.Num, Decimal128Traits] {
	return NewTable[decimal128.Num, Decimal128Traits]()
}
