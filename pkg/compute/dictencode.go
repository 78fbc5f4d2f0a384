package compute

import (
	"github.com/apache/arrow-go/v18/arrow"
	"github.com/apache/arrow-go/v18/arrow/array"

	"github.com/ajitpratap0/arrowhash/pkg/errors"
)

// DictionaryEncode rewrites arr as a dictionary array: int32 indices into a
// dictionary holding the distinct non-null values of arr in
// first-appearance order. Null elements stay null in the indices and never
// enter the dictionary. The caller owns the result.
func DictionaryEncode(arr arrow.Array, opts ...Option) (*array.Dictionary, error) {
	if arr == nil {
		return nil, errors.New(errors.ErrorTypeInvalid, "nil input array")
	}
	cfg := newConfig(opts)
	k, err := newHashKernel(arr.DataType())
	if err != nil {
		return nil, err
	}

	idx := array.NewInt32Builder(cfg.mem)
	defer idx.Release()
	idx.Reserve(arr.Len())
	k.insert(arr, false, func(code int32, ok bool) {
		if ok {
			idx.Append(code)
		} else {
			idx.AppendNull()
		}
	})
	indices := idx.NewInt32Array()
	defer indices.Release()

	dict := materializeValues(k, arr.DataType(), cfg.mem)
	defer dict.Release()

	dt := &arrow.DictionaryType{IndexType: arrow.PrimitiveTypes.Int32, ValueType: arr.DataType()}
	return array.NewDictionaryArray(dt, indices, dict), nil
}

// DictionaryEncodeChunked encodes every chunk of arr against one shared
// dictionary built across all chunks, so equal values carry equal indices
// no matter which chunk they sit in. The output mirrors arr's chunking.
func DictionaryEncodeChunked(arr *arrow.Chunked, opts ...Option) (*arrow.Chunked, error) {
	if arr == nil {
		return nil, errors.New(errors.ErrorTypeInvalid, "nil input chunked array")
	}
	cfg := newConfig(opts)
	k, err := newHashKernel(arr.DataType())
	if err != nil {
		return nil, err
	}

	chunkIndices := make([]*array.Int32, len(arr.Chunks()))
	for i, chunk := range arr.Chunks() {
		idx := array.NewInt32Builder(cfg.mem)
		idx.Reserve(chunk.Len())
		k.insert(chunk, false, func(code int32, ok bool) {
			if ok {
				idx.Append(code)
			} else {
				idx.AppendNull()
			}
		})
		chunkIndices[i] = idx.NewInt32Array()
		idx.Release()
	}

	dict := materializeValues(k, arr.DataType(), cfg.mem)
	defer dict.Release()

	dt := &arrow.DictionaryType{IndexType: arrow.PrimitiveTypes.Int32, ValueType: arr.DataType()}
	out := make([]arrow.Array, len(chunkIndices))
	for i, indices := range chunkIndices {
		out[i] = array.NewDictionaryArray(dt, indices, dict)
		indices.Release()
	}

	result := arrow.NewChunked(dt, out)
	for _, chunk := range out {
		chunk.Release()
	}
	return result, nil
}
