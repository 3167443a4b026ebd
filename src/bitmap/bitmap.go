// Package bitmap adapts raster image files to the decode.PixelSource
// interface the core decoder consumes, keeping file-format sniffing
// out of that package per spec.md's PixelSource redesign note.
package bitmap

import (
	"fmt"
	"image"

	// Additional raster formats beyond the stdlib's png/gif/jpeg,
	// registered purely for image.Decode's format sniffing.
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/vp8"
	_ "golang.org/x/image/webp"

	"github.com/spf13/afero"
)

// Source wraps a decoded image.Image as a decode.PixelSource, exposing
// it as 24bpp-BGR as spec.md's bitmap wire format requires.
type Source struct {
	img   image.Image
	bound image.Rectangle
}

// Width implements decode.PixelSource.
func (s *Source) Width() int { return s.bound.Dx() }

// Height implements decode.PixelSource.
func (s *Source) Height() int { return s.bound.Dy() }

// At implements decode.PixelSource, returning the pixel at (x,y) as
// (blue, green, red) 8-bit channels.
func (s *Source) At(x, y int) (b, g, r byte) {
	c := s.img.At(s.bound.Min.X+x, s.bound.Min.Y+y)
	rr, gg, bb, _ := c.RGBA()
	return byte(bb >> 8), byte(gg >> 8), byte(rr >> 8)
}

// Load decodes the raster file at path on fs and returns it as a
// Source. Any format registered with the stdlib image package or
// golang.org/x/image (PNG, GIF, JPEG, BMP, TIFF, WebP) is accepted;
// grayscale and paletted images are promoted to color transparently by
// image.Image.At itself.
func Load(fs afero.Fs, path string) (*Source, error) {
	f, err := fs.Open(path)
	if err != nil {
		return nil, fmt.Errorf("bitmap: opening %s: %w", path, err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("bitmap: decoding %s: %w", path, err)
	}
	return &Source{img: img, bound: img.Bounds()}, nil
}
