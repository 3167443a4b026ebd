package layout

// MaskPredicate reports whether the module at (row,col) should be
// inverted for a given mask pattern. Each of the eight ISO/IEC 18004
// patterns gets its own function rather than a single parameterised
// expression, even where 5, 6 and 7 could be folded together: that
// would trade a direct reading of the standard's table for a cleverer
// one-liner, and the standard itself lists them as eight distinct
// rules.
type MaskPredicate func(row, col int) bool

func mask0(row, col int) bool { return (row+col)%2 == 0 }
func mask1(row, col int) bool { return row%2 == 0 }
func mask2(row, col int) bool { return col%3 == 0 }
func mask3(row, col int) bool { return (row+col)%3 == 0 }
func mask4(row, col int) bool { return (row/2+col/3)%2 == 0 }
func mask5(row, col int) bool { return (row*col)%2+(row*col)%3 == 0 }
func mask6(row, col int) bool { return ((row*col)%2+(row*col)%3)%2 == 0 }
func mask7(row, col int) bool { return ((row+col)%2+(row*col)%3)%2 == 0 }

// MaskPredicates indexes the eight mask functions by pattern number.
var MaskPredicates = [8]MaskPredicate{
	mask0, mask1, mask2, mask3, mask4, mask5, mask6, mask7,
}

// ApplyMask XORs the dark bit of every data-eligible module in points
// against the given mask pattern's predicate. Calling it twice with
// the same mask on the same points is its own inverse.
func ApplyMask(m *Matrix, points []Point, mask int) {
	pred := MaskPredicates[mask]
	for _, p := range points {
		if pred(p.Row, p.Col) {
			m.SetDark(p.Row, p.Col, !m.IsDark(p.Row, p.Col))
		}
	}
}
