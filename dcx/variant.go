package dcx

import (
	"fmt"

	"github.com/samber/lo"
	"github.com/thanhnguyen2187/souls-savior/dcx/dcodec"
)

// Type is the container variant name modding tools use, e.g. DCX_DFLT_11000_44_9 means
// a DFLT container with version 0x11000, 0x44 at offset 0x10, and compression level 9.
type Type string

const (
	TypeUnknown        = Type("unknown")
	TypeEdge           = Type("DCX_EDGE")
	TypeDflt10000_24_9 = Type("DCX_DFLT_10000_24_9")
	TypeDflt10000_44_9 = Type("DCX_DFLT_10000_44_9")
	TypeDflt11000_44_8 = Type("DCX_DFLT_11000_44_8")
	TypeDflt11000_44_9 = Type("DCX_DFLT_11000_44_9")
	TypeKrak           = Type("DCX_KRAK")
	TypeZstd           = Type("DCX_ZSTD")
)

var deflateTypes = []Type{
	TypeDflt10000_24_9,
	TypeDflt10000_44_9,
	TypeDflt11000_44_8,
	TypeDflt11000_44_9,
}

// Type only describes the header; an unknown variant still decodes when its codec is known.
func (r Header) Type() Type {
	switch r.Codec() {
	case dcodec.CodecEdge:
		return TypeEdge
	case dcodec.CodecKraken:
		return TypeKrak
	case dcodec.CodecZstd:
		return TypeZstd
	case dcodec.CodecDeflate:
		t := Type(
			fmt.Sprintf(
				"DCX_DFLT_%X_%X_%d",
				r.Container.Version, r.Container.Unknown10, r.DCP.Level(),
			),
		)
		if lo.Contains(deflateTypes, t) {
			return t
		}
	}
	return TypeUnknown
}
