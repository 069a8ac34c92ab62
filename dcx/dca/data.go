package dca

type (
	Block struct {
		MagicNumber []byte `json:"magic_number"`
		// Size covers the whole block, its own 8 bytes included, so the payload starts at offset + Size.
		Size int32 `json:"size"`
		// Body is the codec framing between the block header and the payload.
		Body []byte `json:"-"`
	}
	EdgeTable struct {
		MagicNumber              []byte      `json:"magic_number"`
		Version                  int32       `json:"version"`
		TableHeaderSize          int32       `json:"table_header_size"`
		EntrySize                int32       `json:"entry_size"`
		ChunkSize                int32       `json:"chunk_size"`
		TrailingUncompressedSize int32       `json:"trailing_uncompressed_size"`
		TableSize                int32       `json:"table_size"`
		NumChunks                int32       `json:"num_chunks"`
		Unknown20                int32       `json:"unknown_20"`
		Chunks                   []EdgeChunk `json:"chunks"`
	}
	EdgeChunk struct {
		Zeroes     []byte `json:"zeroes"`
		Offset     int32  `json:"offset"`
		Size       int32  `json:"size"`
		Compressed int32  `json:"compressed"`
	}
)

const (
	DefaultHeaderSize = 8

	DefaultEdgeTableHeaderSize = 0x24
	DefaultEdgeEntrySize       = 0x10
)

var (
	MagicNumberBytes     = []byte("DCA\x00")
	EdgeMagicNumberBytes = []byte("EgdT")
)

func (r EdgeChunk) IsCompressed() bool {
	return r.Compressed != 0
}
