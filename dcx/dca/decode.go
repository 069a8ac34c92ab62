package dca

import (
	"github.com/pkg/errors"
	"github.com/thanhnguyen2187/souls-savior/dcx/bbytes"
	"github.com/thanhnguyen2187/souls-savior/dcx/derror"
)

func Decode(reader *bbytes.Reader, offset int64) (*Block, error) {
	if err := reader.SeekTo("dca", offset, DefaultHeaderSize); err != nil {
		return nil, errors.Wrap(err, "dca.Decode error")
	}

	instructions := []bbytes.Instruction{
		{Key: "magic_number", ReadFunction: bbytes.CreateMagicReadFunction(reader, "DCA", MagicNumberBytes)},
		{Key: "size", ReadFunction: bbytes.CreateIntReadFunction(reader)},
	}
	block, err := bbytes.ExecuteInstructions[Block](instructions)
	if err != nil {
		err := errors.Wrap(err, "dca.Decode error")
		return nil, err
	}

	payloadOffset := offset + int64(block.Size)
	if block.Size < DefaultHeaderSize || payloadOffset > reader.Size() {
		err := derror.ErrOffsetOutOfBounds{
			Field:  "payload",
			Offset: payloadOffset,
			Length: int(reader.Size()),
		}
		return nil, errors.Wrapf(err, "dca.Decode error: block size %d", block.Size)
	}
	block.Body, err = reader.ReadBytes(int(block.Size) - DefaultHeaderSize)
	if err != nil {
		return nil, errors.Wrap(err, "dca.Decode error: read block.Body")
	}

	return block, nil
}

func DecodeEdgeChunk(reader *bbytes.Reader) (*EdgeChunk, error) {
	readInt := bbytes.CreateIntReadFunction(reader)
	instructions := []bbytes.Instruction{
		{Key: "zeroes", ReadFunction: bbytes.CreateNBytesReadFunction(reader, 4)},
		{Key: "offset", ReadFunction: readInt},
		{Key: "size", ReadFunction: readInt},
		{Key: "compressed", ReadFunction: readInt},
	}
	chunk, err := bbytes.ExecuteInstructions[EdgeChunk](instructions)
	if err != nil {
		err := errors.Wrap(err, "DecodeEdgeChunk error")
		return nil, err
	}

	return chunk, nil
}

// DecodeEdgeTable reads the EgdT chunk table EDGE containers keep inside the DCA body.
func DecodeEdgeTable(body []byte) (*EdgeTable, error) {
	reader := bbytes.NewBytesReader(body)
	if err := reader.SeekTo("edge_table", 0, DefaultEdgeTableHeaderSize); err != nil {
		return nil, errors.Wrap(err, "DecodeEdgeTable error")
	}

	readInt := bbytes.CreateIntReadFunction(reader)
	instructions := []bbytes.Instruction{
		{Key: "magic_number", ReadFunction: bbytes.CreateMagicReadFunction(reader, "EgdT", EdgeMagicNumberBytes)},
		{Key: "version", ReadFunction: readInt},
		{Key: "table_header_size", ReadFunction: readInt},
		{Key: "entry_size", ReadFunction: readInt},
		{Key: "chunk_size", ReadFunction: readInt},
		{Key: "trailing_uncompressed_size", ReadFunction: readInt},
		{Key: "table_size", ReadFunction: readInt},
		{Key: "num_chunks", ReadFunction: readInt},
		{Key: "unknown_20", ReadFunction: readInt},
	}
	table, err := bbytes.ExecuteInstructions[EdgeTable](instructions)
	if err != nil {
		err := errors.Wrap(err, "DecodeEdgeTable error")
		return nil, err
	}

	if table.TableHeaderSize != DefaultEdgeTableHeaderSize || table.EntrySize != DefaultEdgeEntrySize {
		err := derror.ErrSizeMismatch{
			Which:    "edge_table_header",
			Expected: DefaultEdgeTableHeaderSize,
			Actual:   int64(table.TableHeaderSize),
		}
		return nil, errors.Wrapf(err, "DecodeEdgeTable error: entry size %d", table.EntrySize)
	}
	tableSize := int64(DefaultEdgeTableHeaderSize) + int64(table.NumChunks)*DefaultEdgeEntrySize
	if table.NumChunks < 0 || tableSize > int64(len(body)) {
		err := derror.ErrOffsetOutOfBounds{
			Field:  "edge_table",
			Offset: tableSize,
			Length: len(body),
		}
		return nil, errors.Wrapf(err, "DecodeEdgeTable error: %d chunks", table.NumChunks)
	}
	if int64(table.TableSize) != tableSize {
		err := derror.ErrSizeMismatch{
			Which:    "edge_table",
			Expected: tableSize,
			Actual:   int64(table.TableSize),
		}
		return nil, errors.Wrap(err, "DecodeEdgeTable error")
	}

	table.Chunks = make([]EdgeChunk, 0, table.NumChunks)
	for i := 0; i < int(table.NumChunks); i++ {
		chunk, err := DecodeEdgeChunk(reader)
		if err != nil {
			err := errors.Wrapf(err, "DecodeEdgeTable error: chunk %d", i)
			return nil, err
		}
		table.Chunks = append(table.Chunks, *chunk)
	}

	return table, nil
}
