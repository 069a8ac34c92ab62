package dcodec

import (
	"bytes"
	"io"

	"github.com/klauspost/compress/flate"
	"github.com/klauspost/compress/zlib"
	"github.com/pkg/errors"
)

// InflateZlib decodes a zlib stream, reading at most one byte past expectedLength
// so that an oversized stream shows up as a length mismatch instead of a huge allocation.
func InflateZlib(compressed []byte, expectedLength int) ([]byte, error) {
	reader, err := zlib.NewReader(bytes.NewReader(compressed))
	if err != nil {
		return nil, errors.Wrap(err, "InflateZlib error creating reader")
	}
	defer reader.Close()

	return readLimited(reader, expectedLength)
}

// InflateRaw decodes a DEFLATE stream without zlib framing.
func InflateRaw(compressed []byte, expectedLength int) ([]byte, error) {
	reader := flate.NewReader(bytes.NewReader(compressed))
	defer reader.Close()

	return readLimited(reader, expectedLength)
}

func readLimited(reader io.Reader, expectedLength int) ([]byte, error) {
	buf := bytes.NewBuffer(make([]byte, 0, expectedLength))
	if _, err := io.Copy(buf, io.LimitReader(reader, int64(expectedLength)+1)); err != nil {
		return nil, errors.Wrap(err, "readLimited error")
	}
	return buf.Bytes(), nil
}
