// Package render turns a finished layout.Matrix into pixels: a
// monochrome image.Image, a PNG file written through an afero
// filesystem, an ASCII-art terminal preview, and an optional
// decorative center-logo overlay. It never touches the symbol's own
// Fixed/NonData bookkeeping -- by the time a Matrix reaches this
// package it is purely a grid of module colors.
package render

import (
	"bytes"
	"image"
	"image/color"
	"image/png"

	"github.com/disintegration/imaging"
	"github.com/spf13/afero"

	"github.com/ironsmile/qrforge/src/layout"
)

// DefaultModulePixelSize is the side length, in pixels, of one module
// when no explicit size is requested.
const DefaultModulePixelSize = 8

// DefaultQuietZone is the width, in modules, of the light border
// ISO/IEC 18004 requires around every symbol.
const DefaultQuietZone = 4

// Options configures rasterization.
type Options struct {
	// ModulePixelSize is the side length of one module in pixels. Zero
	// selects DefaultModulePixelSize.
	ModulePixelSize int

	// QuietZone is the light border width in modules. Negative selects
	// DefaultQuietZone; zero is a valid (no border) request.
	QuietZone int

	// Foreground and Background default to black-on-white when nil.
	Foreground, Background color.Color
}

func (o Options) normalized() Options {
	if o.ModulePixelSize <= 0 {
		o.ModulePixelSize = DefaultModulePixelSize
	}
	if o.QuietZone < 0 {
		o.QuietZone = DefaultQuietZone
	}
	if o.Foreground == nil {
		o.Foreground = color.Black
	}
	if o.Background == nil {
		o.Background = color.White
	}
	return o
}

// ToImage rasterizes m into a monochrome image.Image, including the
// quiet zone.
func ToImage(m *layout.Matrix, opts Options) image.Image {
	opts = opts.normalized()
	modules := m.Dim + 2*opts.QuietZone
	side := modules * opts.ModulePixelSize

	img := image.NewRGBA(image.Rect(0, 0, side, side))
	for y := 0; y < side; y++ {
		for x := 0; x < side; x++ {
			img.Set(x, y, opts.Background)
		}
	}

	for row := 0; row < m.Dim; row++ {
		for col := 0; col < m.Dim; col++ {
			if !m.IsDark(row, col) {
				continue
			}
			px0 := (col + opts.QuietZone) * opts.ModulePixelSize
			py0 := (row + opts.QuietZone) * opts.ModulePixelSize
			for dy := 0; dy < opts.ModulePixelSize; dy++ {
				for dx := 0; dx < opts.ModulePixelSize; dx++ {
					img.Set(px0+dx, py0+dy, opts.Foreground)
				}
			}
		}
	}
	return img
}

// ToPNG rasterizes m and encodes it as a PNG.
func ToPNG(m *layout.Matrix, opts Options) ([]byte, error) {
	img := ToImage(m, opts)
	var buf bytes.Buffer
	enc := png.Encoder{CompressionLevel: png.BestCompression}
	if err := enc.Encode(&buf, img); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// SaveQRCodeToPngFile writes m, rasterized with opts, to path on fs.
// Passing afero.NewMemMapFs() lets callers exercise this without
// touching a real disk.
func SaveQRCodeToPngFile(fs afero.Fs, path string, m *layout.Matrix, opts Options) error {
	data, err := ToPNG(m, opts)
	if err != nil {
		return err
	}
	return afero.WriteFile(fs, path, data, 0o644)
}

// ToASCII renders m as a multi-line string of double-width block
// characters, one line per module row, suitable for a terminal
// preview when no PNG output path was given.
func ToASCII(m *layout.Matrix, quietZone int) string {
	if quietZone < 0 {
		quietZone = DefaultQuietZone
	}
	var buf bytes.Buffer
	total := m.Dim + 2*quietZone
	for y := 0; y < total; y++ {
		for x := 0; x < total; x++ {
			row, col := y-quietZone, x-quietZone
			dark := m.InBounds(row, col) && m.IsDark(row, col)
			if dark {
				buf.WriteString("██")
			} else {
				buf.WriteString("  ")
			}
		}
		buf.WriteString("\n")
	}
	return buf.String()
}

// Beautify composites logo at the center of img, scaled to fit within
// fraction (e.g. 0.2 for 20% of img's width) using Lanczos resampling.
// It is strictly decorative: callers are responsible for choosing a
// high enough error-correction level that the covered modules remain
// recoverable.
func Beautify(img image.Image, logo image.Image, fraction float64) image.Image {
	bounds := img.Bounds()
	logoSide := int(float64(bounds.Dx()) * fraction)
	if logoSide < 1 {
		return img
	}

	fitted := imaging.Fit(logo, logoSide, logoSide, imaging.Lanczos)
	base := imaging.Clone(img)
	offsetX := (bounds.Dx() - fitted.Bounds().Dx()) / 2
	offsetY := (bounds.Dy() - fitted.Bounds().Dy()) / 2
	return imaging.Paste(base, fitted, image.Pt(offsetX, offsetY))
}
