package dheader

type (
	Header struct {
		MagicNumber []byte `json:"magic_number"`
		Version     int32  `json:"version"`
		DCSOffset   int32  `json:"dcs_offset"`
		DCPOffset   int32  `json:"dcp_offset"`
		// Unknown10 and Unknown14 are 0x24/0x44 and 0x2C/0x4C in retail files.
		// They are kept to tell container variants apart and never used as offsets.
		Unknown10 int32 `json:"unknown_10"`
		Unknown14 int32 `json:"unknown_14"`
	}
)

const (
	DefaultHeaderSize = 0x18

	Version10000 = 0x10000
	Version11000 = 0x11000
)

var MagicNumberBytes = []byte("DCX\x00")

func IsValidMagicNumber(bs []byte) bool {
	return len(bs) >= len(MagicNumberBytes) &&
		string(bs[:len(MagicNumberBytes)]) == string(MagicNumberBytes)
}
