package dcp

type (
	Block struct {
		MagicNumber []byte `json:"magic_number"`
		Format      []byte `json:"format"`
		// BlockSize is the distance from the start of this block to the DCA block, 0x20 in every known variant.
		BlockSize int32 `json:"block_size"`
		// Settings carries the compression level in its first byte.
		Settings []byte `json:"settings"`
	}
)

const (
	MinBlockSize = 16
)

var MagicNumberBytes = []byte("DCP\x00")

func (r Block) Level() byte {
	if len(r.Settings) == 0 {
		return 0
	}
	return r.Settings[0]
}
