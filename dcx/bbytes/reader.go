package bbytes

import (
	"bytes"
	"encoding/binary"
	"io"

	"github.com/thanhnguyen2187/souls-savior/dcx/derror"
)

func NewBytesReader(bs []byte) *Reader {
	return &Reader{
		Reader: *bytes.NewReader(bs),
	}
}

// SeekTo moves to an absolute offset, but only when n bytes can be read from there.
func (b *Reader) SeekTo(field string, offset int64, n int) error {
	size := b.Size()
	if offset < 0 || n < 0 || offset+int64(n) > size {
		return derror.ErrOffsetOutOfBounds{
			Field:  field,
			Offset: offset,
			Length: int(size),
		}
	}
	_, err := b.Seek(offset, io.SeekStart)
	return err
}

func (b *Reader) Offset() int64 {
	return b.Size() - int64(b.Len())
}

func (b *Reader) ReadInt() (int32, error) {
	result, err := b.ReadUInt()
	if err != nil {
		return 0, err
	}
	return int32(result), nil
}

func (b *Reader) ReadUInt() (uint32, error) {
	bs, err := b.ReadBytes(IntSize)
	if err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint32(bs), nil
}

func (b *Reader) ReadBytes(n int) ([]byte, error) {
	bs := make([]byte, n)
	// nothing to read, and a reader sitting at the end would report EOF
	if n == 0 {
		return bs, nil
	}
	// io.ReadFull turns a short read into io.ErrUnexpectedEOF
	if _, err := io.ReadFull(b, bs); err != nil {
		return nil, err
	}
	return bs, nil
}

func (b *Reader) ReadMagic(field string, expected []byte) ([]byte, error) {
	magic, err := b.ReadBytes(len(expected))
	if err != nil {
		return nil, err
	}
	if !bytes.Equal(magic, expected) {
		return nil, derror.ErrBadMagic{
			Field:    field,
			Expected: expected,
			Actual:   magic,
		}
	}
	return magic, nil
}
