// Package arrowhash provides hash-based value indexing for Apache Arrow
// columnar data: memo tables that assign dense int32 codes to distinct
// values in first-appearance order, and the matching, membership,
// deduplication, and dictionary-encoding operations built on them.
//
// # Quick Start
//
// Match a column against a set of needle values:
//
//	import (
//	    "github.com/apache/arrow-go/v18/arrow/memory"
//	    "github.com/ajitpratap0/arrowhash/pkg/compute"
//	)
//
//	codes, err := compute.Match(haystack, needles,
//	    compute.WithAllocator(memory.DefaultAllocator))
//	if err != nil {
//	    return err
//	}
//	defer codes.Release()
//
// Each element of codes is the position at which the corresponding
// haystack value first appeared among the distinct needles, or null if it
// never appeared. Null is an ordinary value class with a code of its own.
//
// # Key Packages
//
//	pkg/compute   - Match, IsIn, Unique, DictionaryEncode over Arrow arrays
//	pkg/memo      - code-assigning hash tables behind the operations
//	pkg/errors    - structured error handling
//	pkg/logger    - zap logger construction for embedding programs
//	pkg/testutil  - Arrow fixtures and leak-checked allocators for tests
//
// # Design
//
// Every operation builds a memo table over its needle input once, then
// probes haystack elements against the finished table. Codes are assigned
// at first insertion and survive table growth, so the vocabulary of an
// operation is reproducible: it depends only on the logical needle
// sequence, never on chunk boundaries or table resizes. Chunked inputs are
// treated as one logical array on the build side while outputs mirror the
// haystack's chunking.
//
// Supported key types cover the Arrow fixed-width primitives (integers,
// floats, booleans, dates, times, timestamps, durations), decimal128, the
// string and binary families including fixed-size binary, and the null
// type. Floats hash by value class: both signed zeros collapse to one key,
// as do all NaN payloads.
package arrowhash
