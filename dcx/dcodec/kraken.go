package dcodec

import (
	"github.com/pkg/errors"
)

var ErrNoDecoder = errors.New("no decoder registered")

// missingDecoder stands in for Kraken until a caller binds one with Registry.With.
func missingDecoder(_ []byte, _ int) ([]byte, error) {
	return nil, ErrNoDecoder
}
