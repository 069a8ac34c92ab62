package dcx

import (
	"os"

	"github.com/pkg/errors"
	"github.com/thanhnguyen2187/souls-savior/dcx/bbytes"
	"github.com/thanhnguyen2187/souls-savior/dcx/dca"
	"github.com/thanhnguyen2187/souls-savior/dcx/dcodec"
	"github.com/thanhnguyen2187/souls-savior/dcx/dcp"
	"github.com/thanhnguyen2187/souls-savior/dcx/dcs"
	"github.com/thanhnguyen2187/souls-savior/dcx/derror"
	"github.com/thanhnguyen2187/souls-savior/dcx/dheader"
)

// DecodeHeader validates every block of the container and returns the compressed payload
// as a sub-slice of bs. The payload shares memory with bs; nothing else is retained.
func DecodeHeader(bs []byte) (*Header, []byte, error) {
	reader := bbytes.NewBytesReader(bs)
	header := Header{}

	container, err := dheader.Decode(reader)
	if err != nil {
		return nil, nil, errors.Wrap(err, "DecodeHeader error")
	}
	header.Container = *container

	// both offsets are checked before either block is read
	blockOffsets := []struct {
		field string
		value int32
		size  int
	}{
		{"dcs_offset", container.DCSOffset, dcs.DefaultBlockSize},
		{"dcp_offset", container.DCPOffset, dcp.MinBlockSize},
	}
	for _, offset := range blockOffsets {
		if int64(offset.value) < 0 || int64(offset.value)+int64(offset.size) > int64(len(bs)) {
			err := derror.ErrOffsetOutOfBounds{
				Field:  offset.field,
				Offset: int64(offset.value),
				Length: len(bs),
			}
			return nil, nil, errors.Wrap(err, "DecodeHeader error")
		}
	}

	dcsBlock, err := dcs.Decode(reader, int64(container.DCSOffset))
	if err != nil {
		return nil, nil, errors.Wrap(err, "DecodeHeader error")
	}
	header.DCS = *dcsBlock

	dcpBlock, err := dcp.Decode(reader, int64(container.DCPOffset))
	if err != nil {
		return nil, nil, errors.Wrap(err, "DecodeHeader error")
	}
	header.DCP = *dcpBlock
	if !dcodec.IsKnown(header.Codec()) {
		err := derror.ErrUnsupportedCodec{Tag: string(dcpBlock.Format)}
		return nil, nil, errors.Wrap(err, "DecodeHeader error")
	}

	dcaOffset := int64(container.DCPOffset) + int64(dcpBlock.BlockSize)
	dcaBlock, err := dca.Decode(reader, dcaOffset)
	if err != nil {
		return nil, nil, errors.Wrap(err, "DecodeHeader error")
	}
	header.DCA = *dcaBlock

	payloadOffset := dcaOffset + int64(dcaBlock.Size)
	remaining := int64(len(bs)) - payloadOffset
	if int64(dcsBlock.CompressedSize) > remaining {
		err := derror.ErrSizeMismatch{
			Which:    derror.SizeCompressed,
			Expected: int64(dcsBlock.CompressedSize),
			Actual:   remaining,
		}
		return nil, nil, errors.Wrap(err, "DecodeHeader error")
	}
	header.PayloadOffset = int(payloadOffset)

	payloadEnd := payloadOffset + int64(dcsBlock.CompressedSize)
	return &header, bs[payloadOffset:payloadEnd:payloadEnd], nil
}

// Decompress inflates a payload obtained from DecodeHeader into a new buffer of exactly
// header.UncompressedSize() bytes.
func Decompress(header Header, payload []byte, opts ...Option) ([]byte, error) {
	cfg := newConfig(opts)

	uncompressedSize := int64(header.UncompressedSize())
	if uncompressedSize > cfg.maxUncompressedSize {
		err := derror.ErrLimitExceeded{
			Which: derror.SizeUncompressed,
			Value: uncompressedSize,
			Limit: cfg.maxUncompressedSize,
		}
		return nil, errors.Wrap(err, "Decompress error")
	}
	if int64(len(payload)) != int64(header.CompressedSize()) {
		err := derror.ErrSizeMismatch{
			Which:    derror.SizeCompressed,
			Expected: int64(header.CompressedSize()),
			Actual:   int64(len(payload)),
		}
		return nil, errors.Wrap(err, "Decompress error")
	}

	if header.Codec() == dcodec.CodecEdge {
		out, err := decompressEdge(cfg.registry, header, payload)
		if err != nil {
			return nil, errors.Wrap(err, "Decompress error")
		}
		return out, nil
	}

	out, err := cfg.registry.Decompress(header.Codec(), payload, int(uncompressedSize))
	if err != nil {
		return nil, errors.Wrap(err, "Decompress error")
	}
	return out, nil
}

func ParseDCX(bs []byte, opts ...Option) (*Header, []byte, error) {
	header, payload, err := DecodeHeader(bs)
	if err != nil {
		return nil, nil, err
	}
	out, err := Decompress(*header, payload, opts...)
	if err != nil {
		return nil, nil, err
	}
	return header, out, nil
}

func ReadFile(path string, opts ...Option) (*Header, []byte, error) {
	bs, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, derror.ErrIO{Path: path, Err: err}
	}
	header, out, err := ParseDCX(bs, opts...)
	if err != nil {
		return nil, nil, errors.Wrapf(err, `ReadFile error decoding "%s"`, path)
	}
	return header, out, nil
}
