package dcx

import (
	"github.com/pkg/errors"
	"github.com/samber/lo"
	"github.com/thanhnguyen2187/souls-savior/dcx/dca"
	"github.com/thanhnguyen2187/souls-savior/dcx/dcodec"
	"github.com/thanhnguyen2187/souls-savior/dcx/derror"
)

// decompressEdge inflates the chunks listed in the EgdT table one at a time.
// Every chunk but the last expands to the table's chunk size.
func decompressEdge(registry *dcodec.Registry, header Header, payload []byte) ([]byte, error) {
	table, err := dca.DecodeEdgeTable(header.DCA.Body)
	if err != nil {
		return nil, errors.Wrap(err, "decompressEdge error")
	}

	numChunks := int64(len(table.Chunks))
	chunkSize := int64(table.ChunkSize)
	trailingSize := int64(table.TrailingUncompressedSize)
	if numChunks > 0 && (chunkSize <= 0 || trailingSize <= 0 || trailingSize > chunkSize) {
		err := derror.ErrSizeMismatch{
			Which:    "edge_chunk",
			Expected: chunkSize,
			Actual:   trailingSize,
		}
		return nil, errors.Wrap(err, "decompressEdge error")
	}
	tableTotal := int64(0)
	if numChunks > 0 {
		tableTotal = chunkSize*(numChunks-1) + trailingSize
	}
	if tableTotal != int64(header.UncompressedSize()) {
		err := derror.ErrSizeMismatch{
			Which:    derror.SizeUncompressed,
			Expected: int64(header.UncompressedSize()),
			Actual:   tableTotal,
		}
		return nil, errors.Wrap(err, "decompressEdge error")
	}

	outOfBounds, found := lo.Find(
		table.Chunks,
		func(chunk dca.EdgeChunk) bool {
			return chunk.Offset < 0 ||
				chunk.Size < 0 ||
				int64(chunk.Offset)+int64(chunk.Size) > int64(len(payload))
		},
	)
	if found {
		err := derror.ErrOffsetOutOfBounds{
			Field:  "edge_chunk",
			Offset: int64(outOfBounds.Offset),
			Length: len(payload),
		}
		return nil, errors.Wrapf(err, "decompressEdge error: chunk size %d", outOfBounds.Size)
	}

	out := make([]byte, 0, tableTotal)
	for i, chunk := range table.Chunks {
		expected := chunkSize
		if int64(i) == numChunks-1 {
			expected = trailingSize
		}
		src := payload[int64(chunk.Offset) : int64(chunk.Offset)+int64(chunk.Size)]

		var data []byte
		if chunk.IsCompressed() {
			data, err = registry.Decompress(dcodec.CodecEdge, src, int(expected))
		} else {
			data, err = registry.Store(src, int(expected))
		}
		if err != nil {
			return nil, errors.Wrapf(err, "decompressEdge error: chunk %d", i)
		}
		out = append(out, data...)
	}

	return out, nil
}
