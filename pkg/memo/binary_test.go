package memo

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBinaryTableStringAndBytesShareCodes(t *testing.T) {
	tbl := NewBinaryTable()

	code, found := tbl.GetOrInsertString("foo")
	require.Equal(t, int32(0), code)
	require.False(t, found)

	code, found = tbl.GetOrInsert([]byte("foo"))
	assert.Equal(t, int32(0), code, "byte view of an inserted string must hit")
	assert.True(t, found)

	code, found = tbl.GetOrInsert([]byte("bar"))
	require.Equal(t, int32(1), code)
	require.False(t, found)

	code, found = tbl.GetOrInsertString("bar")
	assert.Equal(t, int32(1), code)
	assert.True(t, found)

	code, found = tbl.Lookup([]byte("foo"))
	assert.True(t, found)
	assert.Equal(t, int32(0), code)

	code, found = tbl.LookupString("bar")
	assert.True(t, found)
	assert.Equal(t, int32(1), code)

	assert.Equal(t, 2, tbl.Len())
}

func TestBinaryTableEmptyKeyIsNotNull(t *testing.T) {
	tbl := NewBinaryTable()

	code, found := tbl.GetOrInsertString("")
	require.Equal(t, int32(0), code)
	require.False(t, found)

	nullCode, found := tbl.GetOrInsertNull()
	require.Equal(t, int32(1), nullCode)
	require.False(t, found)

	code, found = tbl.GetOrInsert([]byte{})
	assert.Equal(t, int32(0), code)
	assert.True(t, found)

	code, found = tbl.GetOrInsert(nil)
	assert.Equal(t, int32(0), code, "nil and empty are the same key")
	assert.True(t, found)

	assert.Len(t, tbl.Value(0), 0)
	assert.Equal(t, 2, tbl.Len())
}

func TestBinaryTableInterleavedNull(t *testing.T) {
	tbl := NewBinaryTable()

	keys := []string{"a", "", "a", "", "b"}
	null := []bool{false, true, false, true, false}
	wantCode := []int32{0, 1, 0, 1, 2}
	wantFound := []bool{false, false, true, true, false}

	for i := range keys {
		var code int32
		var found bool
		if null[i] {
			code, found = tbl.GetOrInsertNull()
		} else {
			code, found = tbl.GetOrInsertString(keys[i])
		}
		assert.Equal(t, wantCode[i], code, "position %d", i)
		assert.Equal(t, wantFound[i], found, "position %d", i)
	}

	assert.Equal(t, 3, tbl.Len())
	assert.Equal(t, "a", tbl.ValueString(0))
	assert.Equal(t, "b", tbl.ValueString(2))
}

// Growing past the fill threshold must not disturb codes handed out before
// the resize, including the null code sitting in the middle of the range.
func TestBinaryTableResizeKeepsCodes(t *testing.T) {
	const n = 10000
	tbl := NewBinaryTable()

	tbl.GetOrInsertNull()
	for i := 0; i < n; i++ {
		code, found := tbl.GetOrInsertString(fmt.Sprintf("test%d", i))
		require.False(t, found, "key %d seen twice", i)
		require.Equal(t, int32(i+1), code, "key %d", i)
	}
	require.Equal(t, n+1, tbl.Len())

	for i := 0; i < n; i++ {
		key := fmt.Sprintf("test%d", i)
		code, found := tbl.LookupString(key)
		require.True(t, found, "key %q lost after resizes", key)
		require.Equal(t, int32(i+1), code, "key %q", key)
		require.Equal(t, key, tbl.ValueString(code), "key %q", key)
	}

	code, found := tbl.LookupNull()
	assert.True(t, found)
	assert.Equal(t, int32(0), code)
}

func TestBinaryTableFixedWidthKeys(t *testing.T) {
	tbl := NewBinaryTable()

	keys := [][]byte{
		[]byte("aaaaa"),
		[]byte("bbbbb"),
		[]byte("aaaaa"),
		[]byte("ddddd"),
	}
	wantCode := []int32{0, 1, 0, 2}
	for i, k := range keys {
		code, _ := tbl.GetOrInsert(k)
		assert.Equal(t, wantCode[i], code, "key %q", k)
	}

	assert.Equal(t, []byte("bbbbb"), tbl.Value(1))
}

func TestBinaryTableReserve(t *testing.T) {
	tbl := NewBinaryTable()
	tbl.GetOrInsertString("keep")

	tbl.Reserve(1000, 1<<16)

	code, found := tbl.LookupString("keep")
	require.True(t, found, "reserve must keep existing keys")
	require.Equal(t, int32(0), code)

	for i := 0; i < 1000; i++ {
		tbl.GetOrInsertString(fmt.Sprintf("k%04d", i))
	}
	assert.Equal(t, 1001, tbl.Len())
	assert.Equal(t, "k0007", tbl.ValueString(8))
}

func TestBinaryTableValueStableAcrossInserts(t *testing.T) {
	tbl := NewBinaryTable()

	tbl.GetOrInsertString("anchor")
	v := tbl.Value(0)

	for i := 0; i < 500; i++ {
		tbl.GetOrInsertString(fmt.Sprintf("filler-%d", i))
	}

	assert.Equal(t, "anchor", string(v), "arena growth must not corrupt handed-out values")
}
