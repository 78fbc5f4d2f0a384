package compute

import (
	"testing"

	"github.com/apache/arrow-go/v18/arrow"
	"github.com/apache/arrow-go/v18/arrow/array"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ajitpratap0/arrowhash/pkg/testutil"
)

func TestUnique(t *testing.T) {
	mem := testutil.Allocator(t)
	dt := arrow.PrimitiveTypes.Int32

	arr := testutil.MustArray(t, mem, dt, `[2, null, 2, null, 6, 2]`)
	got, err := Unique(arr, WithAllocator(mem))
	require.NoError(t, err)
	defer got.Release()

	// Null keeps its first-appearance position among the distinct values.
	want := testutil.MustArray(t, mem, dt, `[2, null, 6]`)
	assert.True(t, array.Equal(want, got), "got %v, want %v", got, want)
}

func TestUniqueString(t *testing.T) {
	mem := testutil.Allocator(t)
	dt := arrow.BinaryTypes.String

	arr := testutil.MustArray(t, mem, dt, `["foo", "bar", "foo", "", "bar"]`)
	got, err := Unique(arr, WithAllocator(mem))
	require.NoError(t, err)
	defer got.Release()

	want := testutil.MustArray(t, mem, dt, `["foo", "bar", ""]`)
	assert.True(t, array.Equal(want, got), "got %v, want %v", got, want)
}

func TestUniqueEmpty(t *testing.T) {
	mem := testutil.Allocator(t)
	dt := arrow.BinaryTypes.String

	arr := testutil.MustArray(t, mem, dt, `[]`)
	got, err := Unique(arr, WithAllocator(mem))
	require.NoError(t, err)
	defer got.Release()

	assert.Equal(t, 0, got.Len())
	assert.True(t, arrow.TypeEqual(dt, got.DataType()))
}

func TestUniqueNullType(t *testing.T) {
	mem := testutil.Allocator(t)

	arr := array.NewNull(3)
	defer arr.Release()

	got, err := Unique(arr, WithAllocator(mem))
	require.NoError(t, err)
	defer got.Release()

	assert.Equal(t, 1, got.Len())
	assert.Equal(t, 1, got.NullN())
}

func TestUniqueChunked(t *testing.T) {
	mem := testutil.Allocator(t)
	dt := arrow.PrimitiveTypes.Int64

	chunked := testutil.MustChunked(t, mem, dt, `[5, 5, null]`, `[]`, `[7, 5, null, 2]`)
	got, err := UniqueChunked(chunked, WithAllocator(mem))
	require.NoError(t, err)
	defer got.Release()

	// One logical sequence across chunks: distinct values dedupe globally.
	want := testutil.MustArray(t, mem, dt, `[5, null, 7, 2]`)
	assert.True(t, array.Equal(want, got), "got %v, want %v", got, want)
}
