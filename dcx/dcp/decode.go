package dcp

import (
	"github.com/pkg/errors"
	"github.com/thanhnguyen2187/souls-savior/dcx/bbytes"
	"github.com/thanhnguyen2187/souls-savior/dcx/derror"
)

func Decode(reader *bbytes.Reader, offset int64) (*Block, error) {
	if err := reader.SeekTo("dcp_offset", offset, MinBlockSize); err != nil {
		return nil, errors.Wrap(err, "dcp.Decode error")
	}

	read4Bytes := bbytes.CreateNBytesReadFunction(reader, 4)
	instructions := []bbytes.Instruction{
		{Key: "magic_number", ReadFunction: bbytes.CreateMagicReadFunction(reader, "DCP", MagicNumberBytes)},
		{Key: "format", ReadFunction: read4Bytes},
		{Key: "block_size", ReadFunction: bbytes.CreateIntReadFunction(reader)},
		{Key: "settings", ReadFunction: read4Bytes},
	}
	block, err := bbytes.ExecuteInstructions[Block](instructions)
	if err != nil {
		err := errors.Wrap(err, "dcp.Decode error")
		return nil, err
	}
	if block.BlockSize < MinBlockSize {
		err := derror.ErrOffsetOutOfBounds{
			Field:  "dca",
			Offset: offset + int64(block.BlockSize),
			Length: int(reader.Size()),
		}
		return nil, errors.Wrapf(err, "dcp.Decode error: block size %d", block.BlockSize)
	}

	return block, nil
}
