// Package testutil provides test fixtures for building Arrow arrays and
// tracking their allocations.
package testutil

import (
	"strings"
	"testing"

	"github.com/apache/arrow-go/v18/arrow"
	"github.com/apache/arrow-go/v18/arrow/array"
	"github.com/apache/arrow-go/v18/arrow/memory"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest"
)

// Logger creates a test logger that writes to the test output.
// The logger is automatically cleaned up when the test completes.
func Logger(t *testing.T) *zap.Logger {
	return zaptest.NewLogger(t)
}

// Allocator returns a checked allocator that fails the test on leaked
// buffers when the test completes. Every array a test builds or receives
// must be released before then.
func Allocator(t *testing.T) *memory.CheckedAllocator {
	t.Helper()
	mem := memory.NewCheckedAllocator(memory.NewGoAllocator())
	t.Cleanup(func() { mem.AssertSize(t, 0) })
	return mem
}

// MustArray parses a JSON array literal such as "[2, null, 6]" into an
// Arrow array of the given type and registers its release. Use it for
// numeric, boolean, string, and null types; types with ambiguous JSON
// forms (binary, decimal, temporal) are built with typed builders instead.
func MustArray(t *testing.T, mem memory.Allocator, dt arrow.DataType, data string) arrow.Array {
	t.Helper()
	arr, _, err := array.FromJSON(mem, dt, strings.NewReader(data))
	require.NoError(t, err, "bad fixture %s", data)
	t.Cleanup(arr.Release)
	return arr
}

// MustChunked assembles a chunked array from per-chunk JSON literals and
// registers its release. Zero literals produce a zero-chunk array.
func MustChunked(t *testing.T, mem memory.Allocator, dt arrow.DataType, chunks ...string) *arrow.Chunked {
	t.Helper()
	arrs := make([]arrow.Array, len(chunks))
	for i, data := range chunks {
		arr, _, err := array.FromJSON(mem, dt, strings.NewReader(data))
		require.NoError(t, err, "bad fixture %s", data)
		arrs[i] = arr
	}
	chunked := arrow.NewChunked(dt, arrs)
	for _, arr := range arrs {
		arr.Release()
	}
	t.Cleanup(chunked.Release)
	return chunked
}

// ChunkedOf wraps already-built arrays into a chunked array, retaining
// them, and registers the release of the chunked wrapper only.
func ChunkedOf(t *testing.T, dt arrow.DataType, chunks ...arrow.Array) *arrow.Chunked {
	t.Helper()
	chunked := arrow.NewChunked(dt, chunks)
	t.Cleanup(chunked.Release)
	return chunked
}
