package dcx

import (
	"fmt"
	"os"

	"github.com/iancoleman/orderedmap"
	"github.com/pkg/errors"
	"github.com/thanhnguyen2187/souls-savior/dcx/derror"
)

// ToLinkedHashMap lays out the fields people look at first, in file order.
func ToLinkedHashMap(header Header) *orderedmap.OrderedMap {
	lhm := orderedmap.New()
	lhm.Set("type", header.Type())
	lhm.Set("format", string(header.DCP.Format))
	lhm.Set("version", fmt.Sprintf("0x%X", header.Container.Version))
	lhm.Set("dcs_offset", header.Container.DCSOffset)
	lhm.Set("dcp_offset", header.Container.DCPOffset)
	lhm.Set("uncompressed_size", header.DCS.UncompressedSize)
	lhm.Set("compressed_size", header.DCS.CompressedSize)
	lhm.Set("compression_level", header.DCP.Level())
	lhm.Set("dca_size", header.DCA.Size)
	lhm.Set("payload_offset", header.PayloadOffset)
	return lhm
}

// SummarizeFile decodes the file at path and returns its header summary.
// Unless headerOnly is set the payload is decompressed too.
func SummarizeFile(path string, headerOnly bool, opts ...Option) (*orderedmap.OrderedMap, error) {
	if headerOnly {
		bs, err := os.ReadFile(path)
		if err != nil {
			return nil, derror.ErrIO{Path: path, Err: err}
		}
		header, _, err := DecodeHeader(bs)
		if err != nil {
			return nil, errors.Wrapf(err, `SummarizeFile error decoding "%s"`, path)
		}
		return ToLinkedHashMap(*header), nil
	}

	header, out, err := ReadFile(path, opts...)
	if err != nil {
		return nil, err
	}
	lhm := ToLinkedHashMap(*header)
	lhm.Set("decompressed_size", len(out))
	return lhm, nil
}
