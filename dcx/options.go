package dcx

import (
	"math"

	"github.com/thanhnguyen2187/souls-savior/dcx/dcodec"
)

type (
	config struct {
		registry            *dcodec.Registry
		maxUncompressedSize int64
	}
	Option func(*config)
)

// DefaultMaxUncompressedSize is far above any retail asset; it only stops a forged
// header from asking for a 4 GiB allocation.
const DefaultMaxUncompressedSize = 1 << 30

func WithRegistry(registry *dcodec.Registry) Option {
	return func(c *config) { c.registry = registry }
}

func WithMaxUncompressedSize(n int64) Option {
	return func(c *config) { c.maxUncompressedSize = n }
}

func newConfig(opts []Option) config {
	cfg := config{}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.registry == nil {
		cfg.registry = dcodec.NewRegistry()
	}
	if cfg.maxUncompressedSize <= 0 {
		cfg.maxUncompressedSize = DefaultMaxUncompressedSize
	}
	if cfg.maxUncompressedSize > math.MaxInt {
		cfg.maxUncompressedSize = math.MaxInt
	}
	return cfg
}
