package decode_test

import (
	"bytes"
	"image"
	"image/color"
	"testing"

	"github.com/ironsmile/qrforge/src/decode"
	"github.com/ironsmile/qrforge/src/encode"
	"github.com/ironsmile/qrforge/src/render"
	"github.com/ironsmile/qrforge/src/tables"
)

// imageSource adapts an image.Image to decode.PixelSource for tests
// that drive the decoder end to end against this module's own
// renderer output.
type imageSource struct {
	img   image.Image
	bound image.Rectangle
}

func newImageSource(img image.Image) *imageSource {
	return &imageSource{img: img, bound: img.Bounds()}
}

func (s *imageSource) Width() int  { return s.bound.Dx() }
func (s *imageSource) Height() int { return s.bound.Dy() }

func (s *imageSource) At(x, y int) (b, g, r byte) {
	c := s.img.At(s.bound.Min.X+x, s.bound.Min.Y+y)
	rr, gg, bb, _ := c.RGBA()
	return byte(bb >> 8), byte(gg >> 8), byte(rr >> 8)
}

func renderSymbol(t *testing.T, sym *encode.Symbol) decode.PixelSource {
	t.Helper()
	img := render.ToImage(sym.Matrix, render.Options{ModulePixelSize: 4, QuietZone: 4})
	return newImageSource(img)
}

func TestImageDecoderRoundTripAlphanumeric(t *testing.T) {
	sym, err := encode.Encode(encode.Params{
		Data: []byte("HELLO WORLD"), Level: tables.M, Mask: 5, Version: 1,
	}, nil)
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}

	src := renderSymbol(t, sym)
	d := decode.NewDecoder("", nil)
	results := d.ImageDecoder(src)
	if len(results) == 0 {
		t.Fatalf("ImageDecoder found nothing")
	}

	found := false
	for _, r := range results {
		if bytes.Equal(r, []byte("HELLO WORLD")) {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected one decoding to equal HELLO WORLD, got %q", results)
	}
	if d.QRCodeVersion != 1 {
		t.Fatalf("expected version 1, got %d", d.QRCodeVersion)
	}
	if d.QRCodeDimension != 21 {
		t.Fatalf("expected dimension 21, got %d", d.QRCodeDimension)
	}
}

func TestImageDecoderRoundTripVersion9(t *testing.T) {
	payload := []byte("https://github.com/mohsen2hasani/QRCode")
	sym, err := encode.Encode(encode.Params{
		Data: payload, Charset: "ISO-8859-1", Level: tables.M, Mask: 2, Version: 9,
	}, nil)
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}

	src := renderSymbol(t, sym)
	d := decode.NewDecoder("ISO-8859-1", nil)
	results := d.ImageDecoder(src)
	if len(results) == 0 {
		t.Fatalf("ImageDecoder found nothing")
	}

	found := false
	for _, r := range results {
		if bytes.Equal(r, payload) {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected one decoding to equal %q, got %q", payload, results)
	}
	if d.QRCodeVersion != 9 {
		t.Fatalf("expected version 9, got %d", d.QRCodeVersion)
	}
	if d.QRCodeDimension != 53 {
		t.Fatalf("expected dimension 53, got %d", d.QRCodeDimension)
	}
	if d.ErrorCorrection != tables.M {
		t.Fatalf("expected level M, got %v", d.ErrorCorrection)
	}
	if d.MaskCode != 2 {
		t.Fatalf("expected mask 2, got %d", d.MaskCode)
	}
}

func TestImageDecoderUniformImage(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 50, 50))
	for y := 0; y < 50; y++ {
		for x := 0; x < 50; x++ {
			img.Set(x, y, color.White)
		}
	}
	d := decode.NewDecoder("", nil)
	if got := d.ImageDecoder(newImageSource(img)); got != nil {
		t.Fatalf("expected nil for a uniform image, got %v", got)
	}
}
