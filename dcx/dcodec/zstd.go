package dcodec

import (
	"bytes"

	"github.com/klauspost/compress/zstd"
	"github.com/pkg/errors"
)

// DecodeZstd streams the frame through readLimited like the DEFLATE codecs,
// so a frame that lies about its size cannot allocate past expectedLength.
func DecodeZstd(compressed []byte, expectedLength int) ([]byte, error) {
	decoder, err := zstd.NewReader(
		bytes.NewReader(compressed),
		zstd.WithDecoderConcurrency(1),
	)
	if err != nil {
		return nil, errors.Wrap(err, "DecodeZstd error creating decoder")
	}
	defer decoder.Close()

	return readLimited(decoder, expectedLength)
}
