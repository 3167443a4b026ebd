package encode

import (
	"testing"

	"github.com/makiuchi-d/gozxing"
	"github.com/makiuchi-d/gozxing/qrcode"

	"github.com/ironsmile/qrforge/src/render"
	"github.com/ironsmile/qrforge/src/tables"
)

// TestEncodeReadableByIndependentDecoder cross-checks that a symbol
// this package emits is readable by gozxing, an independently written
// QR decoder, as a sanity check over and above this module's own
// decode package round trip.
func TestEncodeReadableByIndependentDecoder(t *testing.T) {
	want := "https://github.com/mohsen2hasani/QRCode"
	sym, err := Encode(Params{Data: []byte(want), Level: tables.M, Mask: -1}, nil)
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}

	img := render.ToImage(sym.Matrix, render.Options{ModulePixelSize: 4, QuietZone: 4})

	source := gozxing.NewLuminanceSourceFromImage(img)
	bitmap, err := gozxing.NewBinaryBitmap(gozxing.NewHybridBinarizer(source))
	if err != nil {
		t.Fatalf("NewBinaryBitmap: %v", err)
	}

	result, err := qrcode.NewQRCodeReader().DecodeWithoutHints(bitmap)
	if err != nil {
		t.Fatalf("gozxing decode failed: %v", err)
	}
	if result.GetText() != want {
		t.Fatalf("gozxing decoded %q, want %q", result.GetText(), want)
	}
}
