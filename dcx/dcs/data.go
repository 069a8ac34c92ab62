package dcs

type (
	Block struct {
		MagicNumber      []byte `json:"magic_number"`
		UncompressedSize uint32 `json:"uncompressed_size"`
		CompressedSize   uint32 `json:"compressed_size"`
	}
)

const (
	DefaultBlockSize = 12
)

var MagicNumberBytes = []byte("DCS\x00")
