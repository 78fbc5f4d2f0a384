package compute

import (
	"github.com/apache/arrow-go/v18/arrow"
	"github.com/apache/arrow-go/v18/arrow/array"
	"github.com/apache/arrow-go/v18/arrow/memory"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/ajitpratap0/arrowhash/pkg/errors"
)

// Match reports, for each haystack element, the code its value received
// while scanning needles left to right: the first distinct needle gets code
// 0, the next new one code 1, and so on, with null as its own code-bearing
// value class. Haystack elements whose value never appears among the
// needles come back as null.
//
// The result always has haystack.Len() elements of type int32. Haystack and
// needles must share one Arrow type; the caller owns the returned array and
// must Release it.
func Match(haystack, needles arrow.Array, opts ...Option) (*array.Int32, error) {
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

	return probeCodes(k, haystack, cfg.mem), nil
}

// MatchChunked is Match over chunked arrays. The needle chunks build one
// shared table in chunk order, so codes run through chunk boundaries as if
// the needles were a single array; the output mirrors the haystack's
// chunking exactly.
//
// With WithProbeParallelism, haystack chunks are probed concurrently after
// the build completes.
func MatchChunked(haystack, needles *arrow.Chunked, opts ...Option) (*arrow.Chunked, error) {
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
	cfg.logger.Debug("needle table built",
		zap.String("type", haystack.DataType().String()),
		zap.Int("needle_chunks", len(needles.Chunks())),
		zap.Int("needles", needles.Len()),
		zap.Int("distinct", k.size()))

	chunks := haystack.Chunks()
	out := make([]arrow.Array, len(chunks))
	forEachChunk(cfg, len(chunks), func(i int) {
		out[i] = probeCodes(k, chunks[i], cfg.mem)
	})

	result := arrow.NewChunked(arrow.PrimitiveTypes.Int32, out)
	for _, arr := range out {
		arr.Release()
	}
	return result, nil
}

// probeCodes probes one haystack array against a built table and
// materializes the per-element codes, null on miss.
func probeCodes(k hashKernel, haystack arrow.Array, mem memory.Allocator) *array.Int32 {
	bld := array.NewInt32Builder(mem)
	defer bld.Release()
	bld.Reserve(haystack.Len())

	k.probe(haystack, func(code int32, ok bool) {
		if ok {
			bld.Append(code)
		} else {
			bld.AppendNull()
		}
	})
	return bld.NewInt32Array()
}

// forEachChunk runs fn for every chunk index, spreading the calls over a
// bounded goroutine group when the configuration asks for parallelism.
func forEachChunk(cfg *config, n int, fn func(i int)) {
	if cfg.parallelism < 2 || n < 2 {
		for i := 0; i < n; i++ {
			fn(i)
		}
		return
	}
	var g errgroup.Group
	g.SetLimit(cfg.parallelism)
	for i := 0; i < n; i++ {
		g.Go(func() error {
			fn(i)
			return nil
		})
	}
	_ = g.Wait()
}
