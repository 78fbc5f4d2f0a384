package compute

import (
	"github.com/apache/arrow-go/v18/arrow/memory"
	"go.uber.org/zap"
)

// config carries the knobs shared by all operations. The zero configuration
// allocates from the default allocator, logs nowhere, and probes serially.
type config struct {
	mem         memory.Allocator
	logger      *zap.Logger
	parallelism int
}

// Option customizes a single operation call.
type Option func(*config)

// WithAllocator routes every output buffer through mem. Tests pass a
// checked allocator here to catch leaked buffers.
func WithAllocator(mem memory.Allocator) Option {
	return func(c *config) {
		if mem != nil {
			c.mem = mem
		}
	}
}

// WithLogger attaches a logger for per-call diagnostics such as build
// cardinality. The default is a no-op logger.
func WithLogger(logger *zap.Logger) Option {
	return func(c *config) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// WithProbeParallelism lets chunked probes run on up to n goroutines, one
// chunk per task. The build phase always completes first, so probes read an
// immutable table. Values below 2 keep the probe sequential.
func WithProbeParallelism(n int) Option {
	return func(c *config) {
		c.parallelism = n
	}
}

func newConfig(opts []Option) *config {
	cfg := &config{
		mem:         memory.DefaultAllocator,
		logger:      zap.NewNop(),
		parallelism: 1,
	}
	for _, opt := range opts {
		opt(cfg)
	}
	return cfg
}
