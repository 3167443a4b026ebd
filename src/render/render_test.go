package render

import (
	"strings"
	"testing"

	"github.com/spf13/afero"

	"github.com/ironsmile/qrforge/src/layout"
)

func sampleMatrix() *layout.Matrix {
	m := layout.BuildBaseMatrix(1)
	points := layout.DataPath(m)
	layout.ApplyMask(m, points, 0)
	return m
}

func TestToImageDimensions(t *testing.T) {
	m := sampleMatrix()
	img := ToImage(m, Options{ModulePixelSize: 3, QuietZone: 2})

	wantSide := (m.Dim + 2*2) * 3
	b := img.Bounds()
	if b.Dx() != wantSide || b.Dy() != wantSide {
		t.Fatalf("got %dx%d, want %dx%d", b.Dx(), b.Dy(), wantSide, wantSide)
	}
}

func TestToImageDefaultsWhenZero(t *testing.T) {
	m := sampleMatrix()
	img := ToImage(m, Options{})

	// A zero ModulePixelSize falls back to the default; a zero
	// QuietZone is an explicit request for no border.
	wantSide := m.Dim * DefaultModulePixelSize
	b := img.Bounds()
	if b.Dx() != wantSide {
		t.Fatalf("got width %d, want %d", b.Dx(), wantSide)
	}
}

func TestToPNGProducesValidHeader(t *testing.T) {
	m := sampleMatrix()
	data, err := ToPNG(m, Options{ModulePixelSize: 2, QuietZone: 1})
	if err != nil {
		t.Fatalf("ToPNG: %v", err)
	}
	pngMagic := []byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1a, '\n'}
	if len(data) < len(pngMagic) || string(data[:len(pngMagic)]) != string(pngMagic) {
		t.Fatalf("output does not start with the PNG signature")
	}
}

func TestSaveQRCodeToPngFile(t *testing.T) {
	fs := afero.NewMemMapFs()
	m := sampleMatrix()
	if err := SaveQRCodeToPngFile(fs, "out/code.png", m, Options{ModulePixelSize: 2, QuietZone: 1}); err != nil {
		t.Fatalf("SaveQRCodeToPngFile: %v", err)
	}
	exists, err := afero.Exists(fs, "out/code.png")
	if err != nil || !exists {
		t.Fatalf("expected out/code.png to exist: exists=%v err=%v", exists, err)
	}
}

func TestToASCIIHasQuietZoneBorder(t *testing.T) {
	m := sampleMatrix()
	art := ToASCII(m, 2)
	lines := strings.Split(strings.TrimRight(art, "\n"), "\n")

	wantLines := m.Dim + 2*2
	if len(lines) != wantLines {
		t.Fatalf("got %d lines, want %d", len(lines), wantLines)
	}
	for _, r := range lines[0] {
		if r != ' ' {
			t.Fatalf("expected first row to be all quiet zone, got %q", lines[0])
		}
	}
}
