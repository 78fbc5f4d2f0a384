package compute

import (
	"github.com/apache/arrow-go/v18/arrow"
	"github.com/apache/arrow-go/v18/arrow/array"
	"github.com/apache/arrow-go/v18/arrow/memory"

	"github.com/ajitpratap0/arrowhash/pkg/errors"
)

// Unique returns the distinct values of arr in order of first appearance.
// Null counts as one distinct value and keeps its first-appearance
// position, so Unique of [2, null, 2, 6] is [2, null, 6]. The result has
// the same type as arr; the caller owns it.
func Unique(arr arrow.Array, opts ...Option) (arrow.Array, error) {
	if arr == nil {
		return nil, errors.New(errors.ErrorTypeInvalid, "nil input array")
	}
	cfg := newConfig(opts)
	k, err := newHashKernel(arr.DataType())
	if err != nil {
		return nil, err
	}

	k.insert(arr, true, nil)
	return materializeValues(k, arr.DataType(), cfg.mem), nil
}

// UniqueChunked is Unique over a chunked array, deduplicating across all
// chunks as one logical sequence. It returns a single flat array.
func UniqueChunked(arr *arrow.Chunked, opts ...Option) (arrow.Array, error) {
	if arr == nil {
		return nil, errors.New(errors.ErrorTypeInvalid, "nil input chunked array")
	}
	cfg := newConfig(opts)
	k, err := newHashKernel(arr.DataType())
	if err != nil {
		return nil, err
	}

	for _, chunk := range arr.Chunks() {
		k.insert(chunk, true, nil)
	}
	return materializeValues(k, arr.DataType(), cfg.mem), nil
}

// materializeValues replays a built table into a typed array, one element
// per code in code order. The null code, if present, becomes a null
// element at its position.
func materializeValues(k hashKernel, dt arrow.DataType, mem memory.Allocator) arrow.Array {
	bld := array.NewBuilder(mem, dt)
	defer bld.Release()

	n := k.size()
	bld.Reserve(n)
	nullCode, hasNull := k.nullCode()
	for code := int32(0); code < int32(n); code++ {
		if hasNull && code == nullCode {
			bld.AppendNull()
			continue
		}
		k.appendValue(bld, code)
	}
	return bld.NewArray()
}
