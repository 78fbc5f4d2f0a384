// Package compute implements hash-based value matching over Arrow arrays.
//
// Every operation follows the same two-phase shape: a build phase scans a
// needles array once, memoizing each distinct value under a dense int32
// code in order of first appearance, and a probe phase replays a haystack
// against the finished table. Null is one value class of its own: it is
// memoized and probed like any other value but never hashed.
//
//	codes, err := compute.Match(haystack, needles)
//
// Match emits the needle code of every haystack element (null where the
// element never appears among the needles), IsIn emits membership booleans,
// Unique returns the distinct values of one array in first-appearance
// order, and DictionaryEncode rewrites an array as dictionary indices plus
// a dictionary of its distinct non-null values.
//
// Chunked variants treat a chunked needles argument as one logical sequence
// and mirror the haystack chunking in their output, so slicing an input
// into segments never changes the values produced.
//
// Operations validate argument types up front and return an error from
// package errors before any work happens; haystack and needles must share
// one Arrow type. Supported types are the fixed-width primitives (integers,
// floats, booleans, dates, times, timestamps, durations), decimal128, the
// binary and string families including fixed-size binary, and the null
// type.
package compute
