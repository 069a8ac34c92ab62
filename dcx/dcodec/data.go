// Package dcodec turns a DCX payload back into the bytes it was made from,
// picking the decompression routine from the container's format tag.
package dcodec

type (
	// Codec is the 4-byte format tag stored in the DCP block.
	Codec string
	// Func inflates compressed into exactly expectedLength bytes.
	// expectedLength is only a hint for sizing; the length check belongs to the Registry.
	Func func(compressed []byte, expectedLength int) ([]byte, error)
)

const (
	// CodecDeflate is a zlib-wrapped DEFLATE stream.
	CodecDeflate = Codec("DFLT")
	// CodecEdge is raw DEFLATE split into 64 KiB chunks. The Registry function for it
	// inflates a single chunk; the chunk table lives in the DCA block.
	CodecEdge = Codec("EDGE")
	// CodecKraken is Oodle Kraken, which has no Go implementation to ship with.
	CodecKraken = Codec("KRAK")
	CodecZstd   = Codec("ZSTD")
)

var KnownCodecs = []Codec{
	CodecDeflate,
	CodecEdge,
	CodecKraken,
	CodecZstd,
}
