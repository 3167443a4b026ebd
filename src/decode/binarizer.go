package decode

// Bitmap is a binarized image: true means a dark module/pixel.
type Bitmap struct {
	Width, Height int
	dark          []bool
}

// At reports whether the pixel at (x,y) was classified dark. Out of
// range coordinates read as light.
func (b *Bitmap) At(x, y int) bool {
	if x < 0 || y < 0 || x >= b.Width || y >= b.Height {
		return false
	}
	return b.dark[y*b.Width+x]
}

// Binarize converts src to a Bitmap using a single global threshold
// at the midpoint between the darkest and brightest luminance found
// in the image, luminance computed as Y=(30B+59G+11R)/100.
func Binarize(src PixelSource) (*Bitmap, error) {
	w, h := src.Width(), src.Height()
	lum := make([]int, w*h)

	minV, maxV := 255, 0
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			b, g, r := src.At(x, y)
			y8 := (30*int(b) + 59*int(g) + 11*int(r)) / 100
			lum[y*w+x] = y8
			if y8 < minV {
				minV = y8
			}
			if y8 > maxV {
				maxV = y8
			}
		}
	}
	if minV == maxV {
		return nil, ErrUniformImage
	}

	threshold := (minV + maxV) / 2
	dark := make([]bool, w*h)
	for i, l := range lum {
		dark[i] = l < threshold
	}
	return &Bitmap{Width: w, Height: h, dark: dark}, nil
}
