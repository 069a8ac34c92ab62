// Package derror holds the error kinds a DCX decode can end with.
// Every kind is terminal for the call that produced it.
package derror

import (
	"fmt"
)

type (
	ErrTruncatedHeader struct {
		Length   int
		Required int
	}
	ErrBadMagic struct {
		Field    string
		Expected []byte
		Actual   []byte
	}
	ErrOffsetOutOfBounds struct {
		Field  string
		Offset int64
		Length int
	}
	ErrSizeMismatch struct {
		Which    string
		Expected int64
		Actual   int64
	}
	ErrUnsupportedCodec struct {
		Tag string
	}
	ErrCodec struct {
		Codec   string
		Details string
		Err     error
	}
	ErrIO struct {
		Path string
		Err  error
	}
	ErrLimitExceeded struct {
		Which string
		Value int64
		Limit int64
	}
)

const (
	SizeCompressed   = "compressed"
	SizeUncompressed = "uncompressed"
)

func (r ErrTruncatedHeader) Error() string {
	return fmt.Sprintf("truncated header: got %d bytes, need at least %d", r.Length, r.Required)
}

func (r ErrBadMagic) Error() string {
	return fmt.Sprintf("bad %s magic: expected %q, got %q", r.Field, r.Expected, r.Actual)
}

func (r ErrOffsetOutOfBounds) Error() string {
	return fmt.Sprintf("%s offset %d out of bounds for buffer of %d bytes", r.Field, r.Offset, r.Length)
}

func (r ErrSizeMismatch) Error() string {
	return fmt.Sprintf("%s size mismatch: expected %d, got %d", r.Which, r.Expected, r.Actual)
}

func (r ErrUnsupportedCodec) Error() string {
	return fmt.Sprintf(`unsupported codec "%s"`, r.Tag)
}

func (r ErrCodec) Error() string {
	return fmt.Sprintf("codec %s error: %s", r.Codec, r.Details)
}

func (r ErrCodec) Unwrap() error {
	return r.Err
}

func (r ErrIO) Error() string {
	return fmt.Sprintf(`io error reading "%s": %v`, r.Path, r.Err)
}

func (r ErrIO) Unwrap() error {
	return r.Err
}

func (r ErrLimitExceeded) Error() string {
	return fmt.Sprintf("%s size %d exceeds limit %d", r.Which, r.Value, r.Limit)
}
