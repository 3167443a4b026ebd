package decode

import (
	"golang.org/x/text/encoding/charmap"

	"github.com/ironsmile/qrforge/src/diag"
	"github.com/ironsmile/qrforge/src/tables"
)

// Decoder owns one image-decode invocation's working state. Every call
// to ImageDecoder resets it, so a single Decoder value can safely be
// reused across images without leaking state between them.
type Decoder struct {
	// Charset names the character set Byte-mode segments are
	// interpreted with. ECI assignment values are parsed but never
	// override it -- see spec's Open Question on ECI.
	Charset string
	Sink    diag.Sink

	// QRCodeVersion, QRCodeDimension, ErrorCorrection, MaskCode and
	// ECIAssignValue reflect the first successful decoding found by
	// the most recent ImageDecoder call. When ImageDecoder returns no
	// results these are left at their zero value.
	QRCodeVersion   int
	QRCodeDimension int
	ErrorCorrection tables.ECLevel
	MaskCode        int
	ECIAssignValue  int
}

// NewDecoder returns a Decoder that reports diagnostics to sink (nil
// is accepted and discards them) and interprets Byte-mode payloads
// with charset ("" defaults to UTF-8).
func NewDecoder(charset string, sink diag.Sink) *Decoder {
	return &Decoder{Charset: charset, Sink: diag.Coalesce(sink)}
}

// ImageDecoder locates, verifies and decodes every QR Code symbol it
// can recover from src, trying finder triples in lexicographic order
// over candidate indices and, for each consistent corner, the 3-point
// affine transform before any alignment-refined projective one. It
// returns one byte slice per successful decoding -- possibly more than
// one for the same physical symbol, since the outer loop keeps going
// after a success -- or nil if nothing could be decoded.
func (d *Decoder) ImageDecoder(src PixelSource) [][]byte {
	sink := diag.Coalesce(d.Sink)
	d.reset()

	bmp, err := Binarize(src)
	if err != nil {
		sink.Printf("decode: %v", err)
		return nil
	}

	finders := LocateFinders(bmp)
	if len(finders) < 3 {
		sink.Printf("decode: %v", ErrNoFinders)
		return nil
	}

	var results [][]byte
	recorded := false
	n := len(finders)

	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if j == i {
				continue
			}
			for k := 0; k < n; k++ {
				if k == i || k == j {
					continue
				}
				corner, ok := tryCorner(finders[i], finders[j], finders[k])
				if !ok {
					continue
				}

				payload, level, mask, eci, version, err := decodeCorner(bmp, corner)
				if err != nil {
					sink.Printf("decode: corner (%d,%d,%d): %v", i, j, k, err)
					continue
				}

				payload, err = transcodeFromCharset(payload, d.Charset)
				if err != nil {
					sink.Printf("decode: corner (%d,%d,%d): %v", i, j, k, err)
					continue
				}

				results = append(results, payload)
				if !recorded {
					d.QRCodeVersion = version
					d.QRCodeDimension = tables.Dimension(version)
					d.ErrorCorrection = level
					d.MaskCode = mask
					d.ECIAssignValue = eci
					recorded = true
				}
			}
		}
	}

	if len(results) == 0 {
		sink.Printf("decode: %v", ErrNoCorner)
		return nil
	}
	return results
}

// transcodeFromCharset converts a decoded payload from charset into
// the caller's expected byte representation. "", "UTF-8" and
// "ISO-8859-1"/"Latin1" are understood, mirroring src/encode's own
// charset handling; anything else is ErrInvalidInputFormat.
func transcodeFromCharset(payload []byte, charset string) ([]byte, error) {
	switch charset {
	case "", "UTF-8", "utf-8":
		return payload, nil
	case "ISO-8859-1", "Latin1", "latin1":
		decoded, err := charmap.ISO8859_1.NewDecoder().Bytes(payload)
		if err != nil {
			return nil, ErrInvalidInputFormat
		}
		return decoded, nil
	default:
		return nil, ErrInvalidInputFormat
	}
}

func (d *Decoder) reset() {
	d.QRCodeVersion = 0
	d.QRCodeDimension = 0
	d.ErrorCorrection = 0
	d.MaskCode = 0
	d.ECIAssignValue = 0
}

// decodeCorner tries every transform candidate for one finder corner
// -- the 3-point affine first, then an alignment-refined projective if
// one was found -- and returns the first successful decoding. For
// v>=7 estimates, the geometric version guess is cross-checked (and
// corrected, if needed) against the symbol's own version-info BCH
// block before the transform is finalized, per spec.md's "Version BCH
// recovery" step -- a noisy module-size measurement alone must not be
// allowed to silently lock the decoder onto the wrong dimension.
func decodeCorner(bmp *Bitmap, corner Corner) (payload []byte, level tables.ECLevel, mask, eci, version int, err error) {
	version, ok := EstimateVersion(corner)
	if !ok {
		return nil, 0, 0, 0, 0, ErrNoCorner
	}

	imagePts := [3]Point{
		{X: corner.TL.X, Y: corner.TL.Y},
		{X: corner.TR.X, Y: corner.TR.Y},
		{X: corner.BL.X, Y: corner.BL.Y},
	}
	affine, err := buildCornerAffine(version, imagePts)
	if err != nil {
		return nil, 0, 0, 0, 0, err
	}

	if version >= 7 {
		if corrected, ok := recoverVersion(bmp, affine, version); ok && corrected != version {
			if refined, aerr := buildCornerAffine(corrected, imagePts); aerr == nil {
				version, affine = corrected, refined
			}
		}
	}

	transforms := []Transform{affine}
	if version > 1 {
		if refined := LocateAlignment(bmp, version, corner, affine); refined != Transform(affine) {
			transforms = append(transforms, refined)
		}
	}

	for _, t := range transforms {
		payload, level, mask, eci, err = attemptDecode(bmp, version, t)
		if err == nil {
			return payload, level, mask, eci, version, nil
		}
	}
	return nil, 0, 0, 0, 0, err
}

// buildCornerAffine solves the 3-point affine transform that maps the
// standard module-space finder-center coordinates for version to the
// pixel-space finder centers already located in imagePts.
func buildCornerAffine(version int, imagePts [3]Point) (*AffineTransform, error) {
	dim := float64(tables.Dimension(version))
	modulePts := [3]Point{
		{X: 3.5, Y: 3.5},
		{X: dim - 3.5, Y: 3.5},
		{X: 3.5, Y: dim - 3.5},
	}
	return NewAffineTransform(modulePts, imagePts)
}

// recoverVersion reads both 3x6 version-info blocks through transform
// (sized for the geometric estimate version) and returns the version
// of the nearest valid BCH(18,6) codeword, trying the top-right block
// before falling back to the bottom-left replica -- the same
// primary/secondary fallback shape readFormatPrimary/readFormatSecondary
// use for format info.
func recoverVersion(bmp *Bitmap, transform Transform, version int) (int, bool) {
	dim := tables.Dimension(version)
	if v, ok := tables.DecodeVersionInfo(sampleVersionInfo(bmp, transform, dim, true)); ok {
		return v, true
	}
	if v, ok := tables.DecodeVersionInfo(sampleVersionInfo(bmp, transform, dim, false)); ok {
		return v, true
	}
	return 0, false
}

func attemptDecode(bmp *Bitmap, version int, t Transform) (payload []byte, level tables.ECLevel, mask, eci int, err error) {
	sym, err := ExtractMatrix(bmp, version, t)
	if err != nil {
		return nil, 0, 0, 0, err
	}

	codewords := UnloadCodewords(sym)
	data, err := RestoreBlocks(codewords, version, sym.Level)
	if err != nil {
		return nil, 0, 0, 0, err
	}

	payload, eciValue, err := DecodeData(data, version)
	if err != nil {
		return nil, 0, 0, 0, err
	}
	return payload, sym.Level, sym.Mask, eciValue, nil
}
