package dcs

import (
	"github.com/pkg/errors"
	"github.com/thanhnguyen2187/souls-savior/dcx/bbytes"
)

func Decode(reader *bbytes.Reader, offset int64) (*Block, error) {
	if err := reader.SeekTo("dcs_offset", offset, DefaultBlockSize); err != nil {
		return nil, errors.Wrap(err, "dcs.Decode error")
	}

	readUInt := bbytes.CreateUIntReadFunction(reader)
	instructions := []bbytes.Instruction{
		{Key: "magic_number", ReadFunction: bbytes.CreateMagicReadFunction(reader, "DCS", MagicNumberBytes)},
		{Key: "uncompressed_size", ReadFunction: readUInt},
		{Key: "compressed_size", ReadFunction: readUInt},
	}
	block, err := bbytes.ExecuteInstructions[Block](instructions)
	if err != nil {
		err := errors.Wrap(err, "dcs.Decode error")
		return nil, err
	}

	return block, nil
}
