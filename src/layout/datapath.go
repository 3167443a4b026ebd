package layout

// Point is a module coordinate in symbol-proper (0..Dim-1) space.
type Point struct {
	Row, Col int
}

// DataPath returns every data-eligible module of m in the standard
// zig-zag order: starting bottom-right, climbing two columns at a
// time, reversing direction at the top/bottom edges, skipping column
// 6 (the vertical timing pattern) entirely, and skipping any module
// already claimed by a structural or format-info pattern.
func DataPath(m *Matrix) []Point {
	var out []Point
	row, col := m.Dim-1, m.Dim-1
	dir := -1

	visit := func(r, c int) {
		if !m.IsNonData(r, c) {
			out = append(out, Point{r, c})
		}
	}

	for col > 0 {
		if col == 6 {
			col--
		}
		visit(row, col)
		visit(row, col-1)
		row += dir
		if row < 0 || row >= m.Dim {
			dir = -dir
			col -= 2
			row += dir
		}
	}
	return out
}
