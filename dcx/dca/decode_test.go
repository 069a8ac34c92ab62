package dca

import (
	"encoding/binary"
	"testing"

	"github.com/samber/lo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thanhnguyen2187/souls-savior/dcx/bbytes"
	"github.com/thanhnguyen2187/souls-savior/dcx/derror"
)

func appendInts(bs []byte, values ...int32) []byte {
	for _, value := range values {
		bs = binary.BigEndian.AppendUint32(bs, uint32(value))
	}
	return bs
}

func createEdgeTableBytes(chunks []EdgeChunk) []byte {
	bs := append([]byte{}, EdgeMagicNumberBytes...)
	bs = appendInts(
		bs,
		0x00010100,
		DefaultEdgeTableHeaderSize,
		DefaultEdgeEntrySize,
		0x10000,
		0x123,
		DefaultEdgeTableHeaderSize+int32(len(chunks))*DefaultEdgeEntrySize,
		int32(len(chunks)),
		0x100000,
	)
	for _, chunk := range chunks {
		bs = appendInts(bs, 0, chunk.Offset, chunk.Size, chunk.Compressed)
	}
	return bs
}

func TestDecode(t *testing.T) {
	bs := []byte("xxDCA\x00\x00\x00\x00\x0Cbodypayload")

	block, err := Decode(bbytes.NewBytesReader(bs), 2)
	require.NoError(t, err)
	assert.Equal(t, MagicNumberBytes, block.MagicNumber)
	assert.Equal(t, int32(12), block.Size)
	assert.Equal(t, []byte("body"), block.Body)
}

func TestDecode_PayloadOutOfBounds(t *testing.T) {
	tests := map[string][]byte{
		"size smaller than header": []byte("DCA\x00\x00\x00\x00\x04rest"),
		"negative size":            []byte("DCA\x00\xFF\xFF\xFF\xF8rest"),
		"size past the end":        []byte("DCA\x00\x00\x00\x00\x0Drest"),
	}
	for name, bs := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := Decode(bbytes.NewBytesReader(bs), 0)
			var target derror.ErrOffsetOutOfBounds
			require.ErrorAs(t, err, &target)
			assert.Equal(t, "payload", target.Field)
		})
	}
}

func TestDecode_HeaderOutOfBounds(t *testing.T) {
	_, err := Decode(bbytes.NewBytesReader([]byte("DCA\x00\x00\x00")), 0)
	var target derror.ErrOffsetOutOfBounds
	require.ErrorAs(t, err, &target)
	assert.Equal(t, "dca", target.Field)
}

func TestDecodeEdgeTable(t *testing.T) {
	chunks := []EdgeChunk{
		{Offset: 0, Size: 100, Compressed: 1},
		{Offset: 100, Size: 0x123, Compressed: 0},
	}

	table, err := DecodeEdgeTable(createEdgeTableBytes(chunks))
	require.NoError(t, err)

	assert.Equal(t, EdgeMagicNumberBytes, table.MagicNumber)
	assert.Equal(t, int32(0x10000), table.ChunkSize)
	assert.Equal(t, int32(0x123), table.TrailingUncompressedSize)
	assert.Equal(t, int32(2), table.NumChunks)
	assert.Equal(
		t,
		[]bool{true, false},
		lo.Map(table.Chunks, func(chunk EdgeChunk, _ int) bool { return chunk.IsCompressed() }),
	)
	assert.Equal(
		t,
		[]int32{100, 0x123},
		lo.Map(table.Chunks, func(chunk EdgeChunk, _ int) int32 { return chunk.Size }),
	)
}

func TestDecodeEdgeTable_Errors(t *testing.T) {
	valid := createEdgeTableBytes([]EdgeChunk{{Offset: 0, Size: 1, Compressed: 1}})

	t.Run("bad magic", func(t *testing.T) {
		bs := append([]byte{}, valid...)
		bs[0] = 'X'
		_, err := DecodeEdgeTable(bs)
		var target derror.ErrBadMagic
		require.ErrorAs(t, err, &target)
		assert.Equal(t, "EgdT", target.Field)
	})
	t.Run("truncated entries", func(t *testing.T) {
		_, err := DecodeEdgeTable(valid[:len(valid)-1])
		var target derror.ErrOffsetOutOfBounds
		require.ErrorAs(t, err, &target)
		assert.Equal(t, "edge_table", target.Field)
	})
	t.Run("too many chunks", func(t *testing.T) {
		bs := append([]byte{}, valid...)
		binary.BigEndian.PutUint32(bs[0x1C:], 0x7FFFFFFF)
		_, err := DecodeEdgeTable(bs)
		var target derror.ErrOffsetOutOfBounds
		require.ErrorAs(t, err, &target)
	})
	t.Run("table size disagrees", func(t *testing.T) {
		bs := append([]byte{}, valid...)
		binary.BigEndian.PutUint32(bs[0x18:], 0x40)
		_, err := DecodeEdgeTable(bs)
		var target derror.ErrSizeMismatch
		require.ErrorAs(t, err, &target)
		assert.Equal(t, "edge_table", target.Which)
	})
	t.Run("too short for header", func(t *testing.T) {
		_, err := DecodeEdgeTable(valid[:8])
		var target derror.ErrOffsetOutOfBounds
		require.ErrorAs(t, err, &target)
	})
}
