package decode

import "math"

// Corner is an assignment of three located Finders to the roles the
// symbol's three finder patterns always occupy.
type Corner struct {
	TL, TR, BL Finder
}

// Tolerances for CreateCorner's right-isoceles-triangle test: how far
// the two legs from the right-angle vertex may differ in length
// (relative), and how far their angle may deviate from 90 degrees.
const (
	CornerSideLengthDev  = 0.35
	CornerRightAngleDev  = 0.25 // radians
)

// CreateCorner tries every assignment of three Finders to the
// top-left/top-right/bottom-left roles and accepts the first one
// whose two legs from the top-left vertex are of comparable length and
// meet at close to a right angle, matching the physical layout of a
// QR Code's three finder patterns.
func CreateCorner(finders []Finder) (Corner, bool) {
	if len(finders) < 3 {
		return Corner{}, false
	}
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
				if c, ok := tryCorner(finders[i], finders[j], finders[k]); ok {
					return c, true
				}
			}
		}
	}
	return Corner{}, false
}

// tryCorner tests apex as the right-angle (top-left) vertex, with a
// and b as its two neighbours, then decides which of a/b is top-right
// (to the "right" of apex) and which is bottom-left using the sign of
// the cross product -- image Y grows downward, so a clockwise turn
// from apex->a to apex->b (positive cross product) means a is
// top-right and b is bottom-left.
func tryCorner(apex, a, b Finder) (Corner, bool) {
	v1x, v1y := a.X-apex.X, a.Y-apex.Y
	v2x, v2y := b.X-apex.X, b.Y-apex.Y

	len1 := math.Hypot(v1x, v1y)
	len2 := math.Hypot(v2x, v2y)
	if len1 == 0 || len2 == 0 {
		return Corner{}, false
	}

	if math.Abs(len1-len2)/math.Max(len1, len2) > CornerSideLengthDev {
		return Corner{}, false
	}

	cosTheta := (v1x*v2x + v1y*v2y) / (len1 * len2)
	cosTheta = math.Max(-1, math.Min(1, cosTheta))
	angle := math.Acos(cosTheta)
	if math.Abs(angle-math.Pi/2) > CornerRightAngleDev {
		return Corner{}, false
	}

	cross := v1x*v2y - v1y*v2x
	if cross > 0 {
		return Corner{TL: apex, TR: a, BL: b}, true
	}
	return Corner{TL: apex, TR: b, BL: a}, true
}

// EstimateVersion derives a symbol version from a Corner's geometry:
// the module distance between the top-left and top-right finder
// centers is exactly dim-7 modules.
func EstimateVersion(c Corner) (int, bool) {
	moduleSize := (c.TL.ModuleSize + c.TR.ModuleSize + c.BL.ModuleSize) / 3
	if moduleSize <= 0 {
		return 0, false
	}
	distTop := math.Hypot(c.TR.X-c.TL.X, c.TR.Y-c.TL.Y)
	distLeft := math.Hypot(c.BL.X-c.TL.X, c.BL.Y-c.TL.Y)
	dim := int(math.Round((distTop+distLeft)/(2*moduleSize))) + 7
	version := (dim - 17) / 4
	if version < 1 || version > 40 || (dim-17)%4 != 0 {
		// Fall back to nearest-matching version for a noisy estimate.
		version = int(math.Round(float64(dim-17) / 4))
	}
	if version < 1 || version > 40 {
		return 0, false
	}
	return version, true
}

// Transform maps continuous module-space coordinates (x=col+0.5,
// y=row+0.5) to image pixel coordinates.
type Transform interface {
	Apply(x, y float64) (float64, float64)
}

// AffineTransform is the 3-point solution used as the baseline
// geometry model.
type AffineTransform struct {
	a, b, c float64
	d, e, f float64
}

// Apply implements Transform.
func (t *AffineTransform) Apply(x, y float64) (float64, float64) {
	return t.a*x + t.b*y + t.c, t.d*x + t.e*y + t.f
}

// NewAffineTransform solves for the affine map taking modulePts[i] to
// imagePts[i] for i in 0,1,2, via Gaussian elimination.
func NewAffineTransform(modulePts, imagePts [3]Point) (*AffineTransform, error) {
	a := [3][3]float64{}
	for i, p := range modulePts {
		a[i] = [3]float64{p.X, p.Y, 1}
	}
	bx := [3]float64{imagePts[0].X, imagePts[1].X, imagePts[2].X}
	by := [3]float64{imagePts[0].Y, imagePts[1].Y, imagePts[2].Y}

	coefX, err := solveLinear3(a, bx)
	if err != nil {
		return nil, err
	}
	coefY, err := solveLinear3(a, by)
	if err != nil {
		return nil, err
	}
	return &AffineTransform{
		a: coefX[0], b: coefX[1], c: coefX[2],
		d: coefY[0], e: coefY[1], f: coefY[2],
	}, nil
}

// ProjectiveTransform is the optional 8-parameter refinement used
// when a fourth point (an alignment pattern center) is available.
type ProjectiveTransform struct {
	a, b, c, d, e, f, g, h float64
}

// Apply implements Transform.
func (t *ProjectiveTransform) Apply(x, y float64) (float64, float64) {
	denom := t.g*x + t.h*y + 1
	if denom == 0 {
		denom = 1e-9
	}
	return (t.a*x + t.b*y + t.c) / denom, (t.d*x + t.e*y + t.f) / denom
}

// NewProjectiveTransform solves the 8-parameter homography taking
// modulePts[i] to imagePts[i] for i in 0..3.
func NewProjectiveTransform(modulePts, imagePts [4]Point) (*ProjectiveTransform, error) {
	a := make([][]float64, 8)
	b := make([]float64, 8)
	for i := 0; i < 4; i++ {
		mx, my := modulePts[i].X, modulePts[i].Y
		ix, iy := imagePts[i].X, imagePts[i].Y

		a[2*i] = []float64{mx, my, 1, 0, 0, 0, -mx * ix, -my * ix}
		b[2*i] = ix

		a[2*i+1] = []float64{0, 0, 0, mx, my, 1, -mx * iy, -my * iy}
		b[2*i+1] = iy
	}
	sol, err := solveLinear(a, b)
	if err != nil {
		return nil, err
	}
	return &ProjectiveTransform{
		a: sol[0], b: sol[1], c: sol[2],
		d: sol[3], e: sol[4], f: sol[5],
		g: sol[6], h: sol[7],
	}, nil
}

func solveLinear3(a [3][3]float64, b [3]float64) ([3]float64, error) {
	rows := make([][]float64, 3)
	for i := range a {
		rows[i] = append([]float64{}, a[i][:]...)
	}
	sol, err := solveLinear(rows, append([]float64{}, b[:]...))
	if err != nil {
		return [3]float64{}, err
	}
	return [3]float64{sol[0], sol[1], sol[2]}, nil
}

// solveLinear solves Ax=b via Gaussian elimination with partial
// pivoting, returning ErrLinearSolveFailure when the system is
// singular (no pivot above a small tolerance can be found for some
// column).
func solveLinear(a [][]float64, b []float64) ([]float64, error) {
	n := len(a)
	m := make([][]float64, n)
	for i := range a {
		row := make([]float64, n+1)
		copy(row, a[i])
		row[n] = b[i]
		m[i] = row
	}

	const eps = 1e-9
	for col := 0; col < n; col++ {
		pivot := col
		best := math.Abs(m[col][col])
		for r := col + 1; r < n; r++ {
			if v := math.Abs(m[r][col]); v > best {
				best = v
				pivot = r
			}
		}
		if best < eps {
			return nil, ErrLinearSolveFailure
		}
		m[col], m[pivot] = m[pivot], m[col]

		for r := 0; r < n; r++ {
			if r == col {
				continue
			}
			factor := m[r][col] / m[col][col]
			if factor == 0 {
				continue
			}
			for c := col; c <= n; c++ {
				m[r][c] -= factor * m[col][c]
			}
		}
	}

	out := make([]float64, n)
	for i := 0; i < n; i++ {
		out[i] = m[i][n] / m[i][i]
	}
	return out, nil
}
