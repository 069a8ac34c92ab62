package dcodec

import (
	"github.com/samber/lo"
	"github.com/thanhnguyen2187/souls-savior/dcx/derror"
)

// Registry maps every known codec to the routine that inflates it.
// It is never modified after construction, so one Registry can serve any number of goroutines.
type Registry struct {
	funcs map[Codec]Func
}

func IsKnown(codec Codec) bool {
	return lo.Contains(KnownCodecs, codec)
}

func NewRegistry() *Registry {
	return &Registry{
		funcs: map[Codec]Func{
			CodecDeflate: InflateZlib,
			CodecEdge:    InflateRaw,
			CodecKraken:  missingDecoder,
			CodecZstd:    DecodeZstd,
		},
	}
}

// With returns a copy of the registry with codec bound to f.
func (r *Registry) With(codec Codec, f Func) (*Registry, error) {
	if !IsKnown(codec) {
		return nil, derror.ErrUnsupportedCodec{Tag: string(codec)}
	}
	funcs := make(map[Codec]Func, len(r.funcs))
	for key, value := range r.funcs {
		funcs[key] = value
	}
	funcs[codec] = f
	return &Registry{funcs: funcs}, nil
}

// Decompress runs the routine bound to codec and checks that it produced exactly expectedLength bytes.
func (r *Registry) Decompress(codec Codec, compressed []byte, expectedLength int) ([]byte, error) {
	f, ok := r.funcs[codec]
	if !IsKnown(codec) || !ok {
		return nil, derror.ErrUnsupportedCodec{Tag: string(codec)}
	}
	return run(codec, f, compressed, expectedLength)
}

// Store copies a chunk that was kept uncompressed, holding it to the same length check.
func (r *Registry) Store(stored []byte, expectedLength int) ([]byte, error) {
	return run("store", Copy, stored, expectedLength)
}

func run(codec Codec, f Func, compressed []byte, expectedLength int) ([]byte, error) {
	if expectedLength < 0 {
		return nil, derror.ErrSizeMismatch{
			Which:    derror.SizeUncompressed,
			Expected: int64(expectedLength),
			Actual:   0,
		}
	}
	out, err := f(compressed, expectedLength)
	if err != nil {
		return nil, derror.ErrCodec{
			Codec:   string(codec),
			Details: err.Error(),
			Err:     err,
		}
	}
	if len(out) != expectedLength {
		return nil, derror.ErrSizeMismatch{
			Which:    derror.SizeUncompressed,
			Expected: int64(expectedLength),
			Actual:   int64(len(out)),
		}
	}
	return out, nil
}
