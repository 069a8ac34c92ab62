package dheader

import (
	"github.com/pkg/errors"
	"github.com/thanhnguyen2187/souls-savior/dcx/bbytes"
	"github.com/thanhnguyen2187/souls-savior/dcx/derror"
)

// Decode reads the fixed leading block from the start of the reader.
// The reader must cover the whole file, since its size is what offsets get checked against.
func Decode(reader *bbytes.Reader) (*Header, error) {
	if reader.Size() < DefaultHeaderSize {
		return nil, derror.ErrTruncatedHeader{
			Length:   int(reader.Size()),
			Required: DefaultHeaderSize,
		}
	}
	if err := reader.SeekTo("dcx", 0, DefaultHeaderSize); err != nil {
		return nil, errors.Wrap(err, "dheader.Decode error")
	}

	readMagicNumber := bbytes.CreateMagicReadFunction(reader, "DCX", MagicNumberBytes)
	readInt := bbytes.CreateIntReadFunction(reader)

	headerInstructions := []bbytes.Instruction{
		{Key: "magic_number", ReadFunction: readMagicNumber},
		{Key: "version", ReadFunction: readInt},
		{Key: "dcs_offset", ReadFunction: readInt},
		{Key: "dcp_offset", ReadFunction: readInt},
		{Key: "unknown_10", ReadFunction: readInt},
		{Key: "unknown_14", ReadFunction: readInt},
	}

	header, err := bbytes.ExecuteInstructions[Header](headerInstructions)
	if err != nil {
		err := errors.Wrap(err, "dheader.Decode error")
		return nil, err
	}

	return header, nil
}
