package compute

import (
	"github.com/apache/arrow-go/v18/arrow"
	"github.com/apache/arrow-go/v18/arrow/array"
	"github.com/apache/arrow-go/v18/arrow/decimal128"

	"github.com/ajitpratap0/arrowhash/pkg/errors"
	"github.com/ajitpratap0/arrowhash/pkg/memo"
)

// hashKernel binds one Arrow logical type to a memo table. insert memoizes
// array values during the build phase; probe is read-only and may run
// concurrently once the build is done.
//
// emit receives one (code, ok) pair per array element. During insert, ok is
// false only for nulls when memoNulls is off; during probe, ok is false for
// elements absent from the table.
type hashKernel interface {
	insert(arr arrow.Array, memoNulls bool, emit func(code int32, ok bool))
	probe(arr arrow.Array, emit func(code int32, ok bool))
	appendValue(bld array.Builder, code int32)
	size() int
	nullCode() (int32, bool)
}

// valueArray is the read surface a kernel needs from the typed Arrow array
// it binds to.
type valueArray[V any] interface {
	arrow.Array
	Value(i int) V
}

// stringBuilder matches the string and large string builders.
type stringBuilder interface {
	Append(v string)
}

// bytesBuilder matches the binary, large binary, and fixed-size binary
// builders.
type bytesBuilder interface {
	Append(v []byte)
}

// tableKernel serves every fixed-width type through a typed memo table.
// appendFn re-emits a memoized value into the matching typed builder when a
// dictionary is materialized.
type tableKernel[K any, T memo.Traits[K]] struct {
	table    *memo.Table[K, T]
	appendFn func(bld array.Builder, v K)
}

func (k *tableKernel[K, T]) insert(arr arrow.Array, memoNulls bool, emit func(int32, bool)) {
	src := arr.(valueArray[K])
	for i := 0; i < src.Len(); i++ {
		if src.IsNull(i) {
			emitNull(k.table.GetOrInsertNull, memoNulls, emit)
			continue
		}
		code, _ := k.table.GetOrInsert(src.Value(i))
		if emit != nil {
			emit(code, true)
		}
	}
}

func (k *tableKernel[K, T]) probe(arr arrow.Array, emit func(int32, bool)) {
	src := arr.(valueArray[K])
	for i := 0; i < src.Len(); i++ {
		if src.IsNull(i) {
			emit(k.table.LookupNull())
			continue
		}
		emit(k.table.Lookup(src.Value(i)))
	}
}

func (k *tableKernel[K, T]) appendValue(bld array.Builder, code int32) {
	k.appendFn(bld, k.table.Value(code))
}

func (k *tableKernel[K, T]) size() int               { return k.table.Len() }
func (k *tableKernel[K, T]) nullCode() (int32, bool) { return k.table.LookupNull() }

// stringKernel serves the string and large string types. Probing hands the
// array's string views straight to the binary table, which compares them
// without copying.
type stringKernel struct {
	table *memo.BinaryTable
}

func (k *stringKernel) insert(arr arrow.Array, memoNulls bool, emit func(int32, bool)) {
	src := arr.(valueArray[string])
	for i := 0; i < src.Len(); i++ {
		if src.IsNull(i) {
			emitNull(k.table.GetOrInsertNull, memoNulls, emit)
			continue
		}
		code, _ := k.table.GetOrInsertString(src.Value(i))
		if emit != nil {
			emit(code, true)
		}
	}
}

func (k *stringKernel) probe(arr arrow.Array, emit func(int32, bool)) {
	src := arr.(valueArray[string])
	for i := 0; i < src.Len(); i++ {
		if src.IsNull(i) {
			emit(k.table.LookupNull())
			continue
		}
		emit(k.table.LookupString(src.Value(i)))
	}
}

func (k *stringKernel) appendValue(bld array.Builder, code int32) {
	bld.(stringBuilder).Append(k.table.ValueString(code))
}

func (k *stringKernel) size() int               { return k.table.Len() }
func (k *stringKernel) nullCode() (int32, bool) { return k.table.LookupNull() }

// bytesKernel serves the binary, large binary, and fixed-size binary types.
type bytesKernel struct {
	table *memo.BinaryTable
}

func (k *bytesKernel) insert(arr arrow.Array, memoNulls bool, emit func(int32, bool)) {
	src := arr.(valueArray[[]byte])
	for i := 0; i < src.Len(); i++ {
		if src.IsNull(i) {
			emitNull(k.table.GetOrInsertNull, memoNulls, emit)
			continue
		}
		code, _ := k.table.GetOrInsert(src.Value(i))
		if emit != nil {
			emit(code, true)
		}
	}
}

func (k *bytesKernel) probe(arr arrow.Array, emit func(int32, bool)) {
	src := arr.(valueArray[[]byte])
	for i := 0; i < src.Len(); i++ {
		if src.IsNull(i) {
			emit(k.table.LookupNull())
			continue
		}
		emit(k.table.Lookup(src.Value(i)))
	}
}

func (k *bytesKernel) appendValue(bld array.Builder, code int32) {
	bld.(bytesBuilder).Append(k.table.Value(code))
}

func (k *bytesKernel) size() int               { return k.table.Len() }
func (k *bytesKernel) nullCode() (int32, bool) { return k.table.LookupNull() }

// nullKernel serves the null type, whose arrays carry no payload at all.
// The table degenerates to a single bit: has the null class been seen.
type nullKernel struct {
	seen bool
}

func (k *nullKernel) insert(arr arrow.Array, memoNulls bool, emit func(int32, bool)) {
	for i := 0; i < arr.Len(); i++ {
		if memoNulls {
			k.seen = true
			if emit != nil {
				emit(0, true)
			}
		} else if emit != nil {
			emit(0, false)
		}
	}
}

func (k *nullKernel) probe(arr arrow.Array, emit func(int32, bool)) {
	for i := 0; i < arr.Len(); i++ {
		emit(0, k.seen)
	}
}

func (k *nullKernel) appendValue(bld array.Builder, code int32) {
	bld.AppendNull()
}

func (k *nullKernel) size() int {
	if k.seen {
		return 1
	}
	return 0
}

func (k *nullKernel) nullCode() (int32, bool) { return 0, k.seen }

// emitNull routes one null element through the build phase.
func emitNull(getOrInsert func() (int32, bool), memoNulls bool, emit func(int32, bool)) {
	if memoNulls {
		code, _ := getOrInsert()
		if emit != nil {
			emit(code, true)
		}
	} else if emit != nil {
		emit(0, false)
	}
}

func newScalarKernel[V memo.Scalar](appendFn func(array.Builder, V)) hashKernel {
	return &tableKernel[V, memo.ScalarTraits[V]]{table: memo.NewScalarTable[V](), appendFn: appendFn}
}

func newFloatKernel[V memo.Float](appendFn func(array.Builder, V)) hashKernel {
	return &tableKernel[V, memo.FloatTraits[V]]{table: memo.NewFloatTable[V](), appendFn: appendFn}
}

// newHashKernel picks the kernel for one Arrow type. Types with no
// hashable fixed representation report ErrorTypeUnsupported.
func newHashKernel(dt arrow.DataType) (hashKernel, error) {
	switch dt.ID() {
	case arrow.NULL:
		return &nullKernel{}, nil
	case arrow.BOOL:
		return &tableKernel[bool, memo.BoolTraits]{
			table:    memo.NewBoolTable(),
			appendFn: func(b array.Builder, v bool) { b.(*array.BooleanBuilder).Append(v) },
		}, nil
	case arrow.INT8:
		return newScalarKernel(func(b array.Builder, v int8) { b.(*array.Int8Builder).Append(v) }), nil
	case arrow.INT16:
		return newScalarKernel(func(b array.Builder, v int16) { b.(*array.Int16Builder).Append(v) }), nil
	case arrow.INT32:
		return newScalarKernel(func(b array.Builder, v int32) { b.(*array.Int32Builder).Append(v) }), nil
	case arrow.INT64:
		return newScalarKernel(func(b array.Builder, v int64) { b.(*array.Int64Builder).Append(v) }), nil
	case arrow.UINT8:
		return newScalarKernel(func(b array.Builder, v uint8) { b.(*array.Uint8Builder).Append(v) }), nil
	case arrow.UINT16:
		return newScalarKernel(func(b array.Builder, v uint16) { b.(*array.Uint16Builder).Append(v) }), nil
	case arrow.UINT32:
		return newScalarKernel(func(b array.Builder, v uint32) { b.(*array.Uint32Builder).Append(v) }), nil
	case arrow.UINT64:
		return newScalarKernel(func(b array.Builder, v uint64) { b.(*array.Uint64Builder).Append(v) }), nil
	case arrow.FLOAT32:
		return newFloatKernel(func(b array.Builder, v float32) { b.(*array.Float32Builder).Append(v) }), nil
	case arrow.FLOAT64:
		return newFloatKernel(func(b array.Builder, v float64) { b.(*array.Float64Builder).Append(v) }), nil
	case arrow.DATE32:
		return newScalarKernel(func(b array.Builder, v arrow.Date32) { b.(*array.Date32Builder).Append(v) }), nil
	case arrow.DATE64:
		return newScalarKernel(func(b array.Builder, v arrow.Date64) { b.(*array.Date64Builder).Append(v) }), nil
	case arrow.TIME32:
		return newScalarKernel(func(b array.Builder, v arrow.Time32) { b.(*array.Time32Builder).Append(v) }), nil
	case arrow.TIME64:
		return newScalarKernel(func(b array.Builder, v arrow.Time64) { b.(*array.Time64Builder).Append(v) }), nil
	case arrow.TIMESTAMP:
		return newScalarKernel(func(b array.Builder, v arrow.Timestamp) { b.(*array.TimestampBuilder).Append(v) }), nil
	case arrow.DURATION:
		return newScalarKernel(func(b array.Builder, v arrow.Duration) { b.(*array.DurationBuilder).Append(v) }), nil
	case arrow.DECIMAL128:
		return &tableKernel[decimal128.Num, memo.Decimal128Traits]{
			table:    memo.NewDecimal128Table(),
			appendFn: func(b array.Builder, v decimal128.Num) { b.(*array.Decimal128Builder).Append(v) },
		}, nil
	case arrow.STRING, arrow.LARGE_STRING:
		return &stringKernel{table: memo.NewBinaryTable()}, nil
	case arrow.BINARY, arrow.LARGE_BINARY, arrow.FIXED_SIZE_BINARY:
		return &bytesKernel{table: memo.NewBinaryTable()}, nil
	default:
		return nil, errors.Newf(errors.ErrorTypeUnsupported, "no hash kernel for type %s", dt).
			WithDetail("type", dt.String())
	}
}

// checkTypes validates an operation's inputs and returns its kernel.
func checkTypes(haystack, needles arrow.DataType) (hashKernel, error) {
	if haystack == nil || needles == nil {
		return nil, errors.New(errors.ErrorTypeInvalid, "nil input array")
	}
	if !arrow.TypeEqual(haystack, needles) {
		return nil, errors.Newf(errors.ErrorTypeTypeMismatch,
			"haystack type %s does not match needles type %s", haystack, needles).
			WithDetail("haystack_type", haystack.String()).
			WithDetail("needles_type", needles.String())
	}
	return newHashKernel(haystack)
}
