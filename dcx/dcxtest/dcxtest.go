// Package dcxtest builds well-formed DCX files for tests.
// Nothing outside of tests should depend on it.
package dcxtest

import (
	"bytes"
	"encoding/binary"

	"github.com/klauspost/compress/flate"
	"github.com/klauspost/compress/zlib"
	"github.com/klauspost/compress/zstd"
	"github.com/samber/lo"
)

type (
	File struct {
		Version          int32
		Unknown10        int32
		Unknown14        int32
		Format           string
		Level            byte
		DCPExtra         [4]int32
		Framing          []byte
		UncompressedSize uint32
		Payload          []byte
	}
	EdgeChunk struct {
		Plain  []byte
		Stored bool
	}
)

const (
	DCSOffset     = 0x18
	DCPOffset     = 0x24
	DCPBlockSize  = 0x20
	DCAOffset     = DCPOffset + DCPBlockSize
	PayloadOffset = DCAOffset + 8

	EdgeChunkSize = 0x10000
)

func appendInts(bs []byte, values ...int32) []byte {
	for _, value := range values {
		bs = binary.BigEndian.AppendUint32(bs, uint32(value))
	}
	return bs
}

// Bytes lays the file out the way retail DCX_DFLT files are: DCS at 0x18, DCP at 0x24, DCA at 0x44.
// Framing only moves the payload start when it is non-empty.
func (f File) Bytes() []byte {
	bs := make([]byte, 0, PayloadOffset+len(f.Framing)+len(f.Payload))
	bs = append(bs, "DCX\x00"...)
	bs = appendInts(bs, f.Version, DCSOffset, DCPOffset, f.Unknown10, f.Unknown14)

	bs = append(bs, "DCS\x00"...)
	bs = appendInts(bs, int32(f.UncompressedSize), int32(len(f.Payload)))

	bs = append(bs, "DCP\x00"...)
	bs = append(bs, f.Format...)
	bs = appendInts(bs, DCPBlockSize)
	bs = append(bs, f.Level, 0, 0, 0)
	bs = appendInts(bs, f.DCPExtra[:]...)

	bs = append(bs, "DCA\x00"...)
	bs = appendInts(bs, int32(8+len(f.Framing)))
	bs = append(bs, f.Framing...)

	bs = append(bs, f.Payload...)
	return bs
}

func NewDeflate(plain []byte) File {
	return File{
		Version:          0x11000,
		Unknown10:        0x44,
		Unknown14:        0x4C,
		Format:           "DFLT",
		Level:            9,
		DCPExtra:         [4]int32{0, 0, 0, 0x00010100},
		UncompressedSize: uint32(len(plain)),
		Payload:          Zlib(plain),
	}
}

func NewZstd(plain []byte) File {
	return File{
		Version:          0x11000,
		Unknown10:        0x44,
		Unknown14:        0x4C,
		Format:           "ZSTD",
		Level:            21,
		DCPExtra:         [4]int32{0, 0, 0, 0x00010100},
		UncompressedSize: uint32(len(plain)),
		Payload:          Zstd(plain),
	}
}

// NewRaw wraps an already-compressed payload under any format tag.
func NewRaw(format string, payload []byte, uncompressedSize uint32) File {
	return File{
		Version:          0x11000,
		Unknown10:        0x44,
		Unknown14:        0x4C,
		Format:           format,
		Level:            6,
		DCPExtra:         [4]int32{0, 0, 0, 0x00010100},
		UncompressedSize: uncompressedSize,
		Payload:          payload,
	}
}

// SplitEdge cuts plain into EDGE-sized chunks, storing the ones whose index is listed.
func SplitEdge(plain []byte, stored ...int) []EdgeChunk {
	chunks := lo.Chunk(plain, EdgeChunkSize)
	return lo.Map(
		chunks,
		func(chunk []byte, i int) EdgeChunk {
			return EdgeChunk{
				Plain:  chunk,
				Stored: lo.Contains(stored, i),
			}
		},
	)
}

func NewEdge(chunks []EdgeChunk) File {
	payload := make([]byte, 0)
	table := make([]byte, 0)
	uncompressedSize := 0
	for _, chunk := range chunks {
		data := chunk.Plain
		compressed := int32(0)
		if !chunk.Stored {
			data = RawDeflate(chunk.Plain)
			compressed = 1
		}
		table = appendInts(table, 0, int32(len(payload)), int32(len(data)), compressed)
		payload = append(payload, data...)
		uncompressedSize += len(chunk.Plain)
	}
	trailing := EdgeChunkSize
	if len(chunks) > 0 {
		trailing = len(chunks[len(chunks)-1].Plain)
	}

	framing := append([]byte{}, "EgdT"...)
	framing = appendInts(
		framing,
		0x00010100,
		0x24,
		0x10,
		EdgeChunkSize,
		int32(trailing),
		int32(0x24+len(chunks)*0x10),
		int32(len(chunks)),
		0x100000,
	)
	framing = append(framing, table...)

	return File{
		Version:          0x10000,
		Unknown10:        0x24,
		Unknown14:        int32(0x50 + len(chunks)*0x10),
		Format:           "EDGE",
		Level:            9,
		DCPExtra:         [4]int32{0x10000, 0, 0, 0x00100100},
		Framing:          framing,
		UncompressedSize: uint32(uncompressedSize),
		Payload:          payload,
	}
}

func Zlib(plain []byte) []byte {
	buf := bytes.Buffer{}
	writer := lo.Must(zlib.NewWriterLevel(&buf, zlib.BestCompression))
	lo.Must(writer.Write(plain))
	lo.Must0(writer.Close())
	return buf.Bytes()
}

func RawDeflate(plain []byte) []byte {
	buf := bytes.Buffer{}
	writer := lo.Must(flate.NewWriter(&buf, flate.BestCompression))
	lo.Must(writer.Write(plain))
	lo.Must0(writer.Close())
	return buf.Bytes()
}

func Zstd(plain []byte) []byte {
	encoder := lo.Must(zstd.NewWriter(nil))
	defer encoder.Close()
	return encoder.EncodeAll(plain, nil)
}
