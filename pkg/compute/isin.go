package compute

import (
	"github.com/apache/arrow-go/v18/arrow"
	"github.com/apache/arrow-go/v18/arrow/array"
	"github.com/apache/arrow-go/v18/arrow/memory"
	"go.uber.org/zap"

	"github.com/ajitpratap0/arrowhash/pkg/errors"
)

// IsIn reports, for each haystack element, whether its value appears among
// the needles. A null haystack element is in the set exactly when the
// needles contain a null. The result is a boolean array with no nulls and
// haystack.Len() elements; the caller owns it.
func IsIn(haystack, needles arrow.Array, opts ...Option) (*array.Boolean, error) {
	if haystack == nil || needles == nil {
		return nil, errors.New(errors.ErrorTypeInvalid, "nil input array")
	}
	cfg := newConfig(opts)
	k, err := checkTypes(haystack.DataType(), needles.DataType())
	if err != nil {
		return nil, err
	}

	k.insert(needles, true, nil)
	cfg.logger.Debug("needle table built",
		zap.String("type", haystack.DataType().String()),
		zap.Int("needles", needles.Len()),
		zap.Int("distinct", k.size()))

	return probeMembership(k, haystack, cfg.mem), nil
}

// IsInChunked is IsIn over chunked arrays, with the same one-logical-array
// build and haystack-mirroring output as MatchChunked.
func IsInChunked(haystack, needles *arrow.Chunked, opts ...Option) (*arrow.Chunked, error) {
	if haystack == nil || needles == nil {
		return nil, errors.New(errors.ErrorTypeInvalid, "nil input chunked array")
	}
	cfg := newConfig(opts)
	k, err := checkTypes(haystack.DataType(), needles.DataType())
	if err != nil {
		return nil, err
	}

	for _, chunk := range needles.Chunks() {
		k.insert(chunk, true, nil)
	}

	chunks := haystack.Chunks()
	out := make([]arrow.Array, len(chunks))
	forEachChunk(cfg, len(chunks), func(i int) {
		out[i] = probeMembership(k, chunks[i], cfg.mem)
	})

	result := arrow.NewChunked(arrow.FixedWidthTypes.Boolean, out)
	for _, arr := range out {
		arr.Release()
	}
	return result, nil
}

func probeMembership(k hashKernel, haystack arrow.Array, mem memory.Allocator) *array.Boolean {
	bld := array.NewBooleanBuilder(mem)
	defer bld.Release()
	bld.Reserve(haystack.Len())

	k.probe(haystack, func(_ int32, ok bool) {
		bld.Append(ok)
	})
	return bld.NewBooleanArray()
}
