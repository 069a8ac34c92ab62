// Package dcx decodes DCX containers, the compressed wrapper FromSoftware games
// put around single asset files such as message bundles and params.
//
// Decoding is split in two stages. DecodeHeader validates the container blocks and
// hands back the payload as a sub-slice of the input; Decompress inflates that payload
// into a newly allocated buffer. ParseDCX runs both.
package dcx

import (
	"github.com/thanhnguyen2187/souls-savior/dcx/dca"
	"github.com/thanhnguyen2187/souls-savior/dcx/dcodec"
	"github.com/thanhnguyen2187/souls-savior/dcx/dcp"
	"github.com/thanhnguyen2187/souls-savior/dcx/dcs"
	"github.com/thanhnguyen2187/souls-savior/dcx/dheader"
)

type (
	Header struct {
		Container     dheader.Header `json:"header"`
		DCS           dcs.Block      `json:"dcs"`
		DCP           dcp.Block      `json:"dcp"`
		DCA           dca.Block      `json:"dca"`
		PayloadOffset int            `json:"payload_offset"`
	}
)

func (r Header) Codec() dcodec.Codec {
	return dcodec.Codec(r.DCP.Format)
}

func (r Header) UncompressedSize() uint32 {
	return r.DCS.UncompressedSize
}

func (r Header) CompressedSize() uint32 {
	return r.DCS.CompressedSize
}

func IsDCXFile(bs []byte) bool {
	return dheader.IsValidMagicNumber(bs)
}
