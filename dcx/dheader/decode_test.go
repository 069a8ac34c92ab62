package dheader

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thanhnguyen2187/souls-savior/dcx/bbytes"
	"github.com/thanhnguyen2187/souls-savior/dcx/derror"
)

var sampleHeader = []byte{
	'D', 'C', 'X', 0,
	0x00, 0x01, 0x00, 0x00,
	0x00, 0x00, 0x00, 0x18,
	0x00, 0x00, 0x00, 0x24,
	0x00, 0x00, 0x00, 0x44,
	0x00, 0x00, 0x00, 0x4C,
}

func TestDecode(t *testing.T) {
	header, err := Decode(bbytes.NewBytesReader(sampleHeader))
	require.NoError(t, err)

	assert.Equal(
		t,
		Header{
			MagicNumber: []byte("DCX\x00"),
			Version:     Version10000,
			DCSOffset:   0x18,
			DCPOffset:   0x24,
			Unknown10:   0x44,
			Unknown14:   0x4C,
		},
		*header,
	)
}

func TestDecode_Truncated(t *testing.T) {
	for n := 0; n < DefaultHeaderSize; n++ {
		_, err := Decode(bbytes.NewBytesReader(sampleHeader[:n]))
		var target derror.ErrTruncatedHeader
		require.ErrorAs(t, err, &target)
		assert.Equal(t, n, target.Length)
		assert.Equal(t, DefaultHeaderSize, target.Required)
	}
}

func TestDecode_BadMagic(t *testing.T) {
	bs := append([]byte{}, sampleHeader...)
	bs[2] = 'Y'

	_, err := Decode(bbytes.NewBytesReader(bs))
	var target derror.ErrBadMagic
	require.ErrorAs(t, err, &target)
	assert.Equal(t, "DCX", target.Field)
}

func TestIsValidMagicNumber(t *testing.T) {
	assert.True(t, IsValidMagicNumber(sampleHeader))
	assert.False(t, IsValidMagicNumber([]byte("DCX")))
	assert.False(t, IsValidMagicNumber([]byte("DCP\x00DFLT")))
	assert.False(t, IsValidMagicNumber(nil))
}
