// Package decode implements the symbol recognition pipeline: turning
// a raw pixel source into zero or more decoded payloads. It never
// touches an image file or an OS bitmap handle directly -- callers
// adapt their own pixel data to the PixelSource interface, keeping
// format concerns (see src/bitmap) out of the recognition core.
package decode

// PixelSource exposes a 24bpp-BGR bitmap one pixel at a time. It is
// the only way this package reads pixel data.
type PixelSource interface {
	Width() int
	Height() int
	// At returns the blue, green and red channel values of the pixel
	// at (x,y).
	At(x, y int) (b, g, r byte)
}

// Point is a coordinate in either image-pixel space or continuous
// module space, depending on context.
type Point struct {
	X, Y float64
}
