package decode

import (
	"math"

	"github.com/ironsmile/qrforge/src/tables"
)

// LocateAlignment refines the affine estimate into a projective one
// for versions that carry an alignment pattern (2+): it predicts the
// image location of the bottom-right-most alignment pattern from the
// affine transform, searches a small window around that prediction
// for the pattern's actual center, and if found returns a transform
// built from all three finder centers plus this fourth point. If no
// alignment pattern can be confirmed, affine is returned unchanged --
// this refinement is optional, not required to produce a result.
func LocateAlignment(bmp *Bitmap, version int, corner Corner, affine *AffineTransform) Transform {
	centers := tables.AlignmentCenters(version)
	if len(centers) == 0 {
		return affine
	}
	last := centers[len(centers)-1]
	dim := tables.Dimension(version)
	moduleSize := (corner.TL.ModuleSize + corner.TR.ModuleSize + corner.BL.ModuleSize) / 3

	predX, predY := affine.Apply(float64(last[1])+0.5, float64(last[0])+0.5)
	found, ok := searchAlignmentPattern(bmp, predX, predY, moduleSize)
	if !ok {
		return affine
	}

	modulePts := [4]Point{
		{X: 3.5, Y: 3.5},
		{X: float64(dim) - 3.5, Y: 3.5},
		{X: 3.5, Y: float64(dim) - 3.5},
		{X: float64(last[1]) + 0.5, Y: float64(last[0]) + 0.5},
	}
	imagePts := [4]Point{
		{X: corner.TL.X, Y: corner.TL.Y},
		{X: corner.TR.X, Y: corner.TR.Y},
		{X: corner.BL.X, Y: corner.BL.Y},
		{X: found.X, Y: found.Y},
	}
	proj, err := NewProjectiveTransform(modulePts, imagePts)
	if err != nil {
		return affine
	}
	return proj
}

// searchAlignmentPattern looks for a dark center surrounded by a light
// ring surrounded by a dark ring (the alignment pattern's own
// signature) within a window of radius 2.5 modules around (predX,
// predY).
func searchAlignmentPattern(bmp *Bitmap, predX, predY, moduleSize float64) (Point, bool) {
	if moduleSize <= 0 {
		return Point{}, false
	}
	radius := int(math.Ceil(2.5 * moduleSize))
	cx, cy := int(math.Round(predX)), int(math.Round(predY))

	bestDist := math.Inf(1)
	best := Point{}
	found := false

	for dy := -radius; dy <= radius; dy++ {
		for dx := -radius; dx <= radius; dx++ {
			x, y := cx+dx, cy+dy
			if !bmp.At(x, y) {
				continue
			}
			if !looksLikeAlignmentCenter(bmp, x, y, moduleSize) {
				continue
			}
			d := math.Hypot(float64(dx), float64(dy))
			if d < bestDist {
				bestDist = d
				best = Point{X: float64(x), Y: float64(y)}
				found = true
			}
		}
	}
	return best, found
}

// looksLikeAlignmentCenter checks that (x,y) is dark, the ring one
// module out is light, and the ring two modules out is dark, which is
// the alignment pattern's defining signature regardless of rotation.
func looksLikeAlignmentCenter(bmp *Bitmap, x, y int, moduleSize float64) bool {
	step := int(math.Round(moduleSize))
	if step < 1 {
		step = 1
	}
	if !bmp.At(x, y) {
		return false
	}
	ringLight := 0
	ringDark := 0
	for _, d := range [...][2]int{{1, 0}, {-1, 0}, {0, 1}, {0, -1}} {
		if !bmp.At(x+d[0]*step, y+d[1]*step) {
			ringLight++
		}
		if bmp.At(x+d[0]*2*step, y+d[1]*2*step) {
			ringDark++
		}
	}
	return ringLight >= 3 && ringDark >= 3
}
