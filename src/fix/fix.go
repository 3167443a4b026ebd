// Package fix implements the "fix" façade spec.md names: decode a
// possibly damaged QR Code image and re-encode its recovered payload
// into a clean symbol at the same version and error-correction level.
// It is a thin pipe between src/decode and src/encode, not a
// subsystem in its own right.
package fix

import (
	"errors"

	"github.com/ironsmile/qrforge/src/decode"
	"github.com/ironsmile/qrforge/src/diag"
	"github.com/ironsmile/qrforge/src/encode"
)

// ErrNothingDecoded is returned when the source image yielded no
// successful decoding to re-encode.
var ErrNothingDecoded = errors.New("fix: no symbol could be decoded from the source image")

// Result pairs the recovered payload with the clean symbol re-encoded
// from it.
type Result struct {
	Payload []byte
	Symbol  *encode.Symbol
}

// Fix decodes src and re-encodes the first successful decoding it
// finds into a fresh Symbol at the same version and error-correction
// level the source used, picking a mask automatically rather than
// reusing the source's mask (the source mask is a property of the
// damaged symbol, not something worth preserving).
func Fix(src decode.PixelSource, charset string, sink diag.Sink) (*Result, error) {
	d := decode.NewDecoder(charset, sink)
	results := d.ImageDecoder(src)
	if len(results) == 0 {
		return nil, ErrNothingDecoded
	}

	payload := results[0]
	sym, err := encode.Encode(encode.Params{
		Data:    payload,
		Charset: charset,
		Level:   d.ErrorCorrection,
		Mask:    -1,
		Version: d.QRCodeVersion,
	}, sink)
	if err != nil {
		return nil, err
	}

	return &Result{Payload: payload, Symbol: sym}, nil
}
