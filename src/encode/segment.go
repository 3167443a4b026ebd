// Package encode turns a byte payload into a finished QR Code symbol:
// mode classification, charset transcoding, bit-stream assembly,
// Reed-Solomon block encoding and interleaving, mask selection, and
// stamping the result into a layout.Matrix.
package encode

import (
	"golang.org/x/text/encoding/charmap"

	"github.com/ironsmile/qrforge/src/tables"
)

// Mode indicator values, matching the wire encoding exactly (4-bit
// mode indicator, Kanji deliberately unsupported).
const (
	ModeTerminator   = 0
	ModeNumeric      = 1
	ModeAlphanumeric = 2
	ModeByte         = 4
	ModeECI          = 7
)

// classifyMode picks the narrowest mode that can represent data
// losslessly: Numeric, then Alphanumeric, falling back to Byte. This
// module encodes a whole payload as a single segment rather than
// optimally splitting it across segments of mixed modes.
func classifyMode(data []byte) int {
	if len(data) == 0 {
		return ModeByte
	}

	allNumeric := true
	allAlnum := true
	for _, c := range data {
		if !tables.IsNumeric(c) {
			allNumeric = false
		}
		if _, ok := tables.AlphanumericValue(c); !ok {
			allAlnum = false
		}
	}
	switch {
	case allNumeric:
		return ModeNumeric
	case allAlnum:
		return ModeAlphanumeric
	default:
		return ModeByte
	}
}

// modeSupports reports whether data can be represented losslessly in
// mode, used to validate a caller-forced Params.Mode. ModeByte accepts
// any bytes; Numeric and Alphanumeric reject anything outside their
// character sets rather than silently widening the mode.
func modeSupports(mode int, data []byte) bool {
	switch mode {
	case ModeNumeric:
		for _, c := range data {
			if !tables.IsNumeric(c) {
				return false
			}
		}
		return true
	case ModeAlphanumeric:
		for _, c := range data {
			if _, ok := tables.AlphanumericValue(c); !ok {
				return false
			}
		}
		return true
	case ModeByte:
		return true
	default:
		return false
	}
}

// transcodeForCharset converts Byte-mode payload bytes according to
// the requested charset. "", "UTF-8" and "ISO-8859-1"/"Latin1" are
// understood; anything else is ErrInvalidInputFormat. ECI segment
// markers are not emitted: per this module's Open Question decision,
// charset switching is not driven through ECI.
func transcodeForCharset(data []byte, charset string) ([]byte, error) {
	switch charset {
	case "", "UTF-8", "utf-8":
		return data, nil
	case "ISO-8859-1", "Latin1", "latin1":
		encoded, err := charmap.ISO8859_1.NewEncoder().Bytes(data)
		if err != nil {
			return nil, ErrInvalidInputFormat
		}
		return encoded, nil
	default:
		return nil, ErrInvalidInputFormat
	}
}
