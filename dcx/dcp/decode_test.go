package dcp

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thanhnguyen2187/souls-savior/dcx/bbytes"
	"github.com/thanhnguyen2187/souls-savior/dcx/derror"
)

func createBlockBytes(format string, blockSize byte) []byte {
	bs := []byte("DCP\x00")
	bs = append(bs, format...)
	bs = append(bs, 0, 0, 0, blockSize)
	bs = append(bs, 9, 0, 0, 0)
	return bs
}

func TestDecode(t *testing.T) {
	block, err := Decode(bbytes.NewBytesReader(createBlockBytes("DFLT", 0x20)), 0)
	require.NoError(t, err)

	assert.Equal(t, MagicNumberBytes, block.MagicNumber)
	assert.Equal(t, []byte("DFLT"), block.Format)
	assert.Equal(t, int32(0x20), block.BlockSize)
	assert.Equal(t, byte(9), block.Level())
}

func TestDecode_SmallBlockSize(t *testing.T) {
	_, err := Decode(bbytes.NewBytesReader(createBlockBytes("DFLT", 4)), 0)
	var target derror.ErrOffsetOutOfBounds
	require.ErrorAs(t, err, &target)
	assert.Equal(t, "dca", target.Field)
	assert.Equal(t, int64(4), target.Offset)
}

func TestDecode_OutOfBounds(t *testing.T) {
	_, err := Decode(bbytes.NewBytesReader(createBlockBytes("DFLT", 0x20)), 1)
	var target derror.ErrOffsetOutOfBounds
	require.ErrorAs(t, err, &target)
	assert.Equal(t, "dcp_offset", target.Field)
}

func TestDecode_BadMagic(t *testing.T) {
	bs := createBlockBytes("DFLT", 0x20)
	bs[0] = 'X'

	_, err := Decode(bbytes.NewBytesReader(bs), 0)
	var target derror.ErrBadMagic
	require.ErrorAs(t, err, &target)
	assert.Equal(t, "DCP", target.Field)
}

func TestBlock_Level(t *testing.T) {
	assert.Equal(t, byte(0), Block{}.Level())
}
