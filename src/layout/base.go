package layout

import "github.com/ironsmile/qrforge/src/tables"

var finderPattern = [7][7]bool{
	{true, true, true, true, true, true, true},
	{true, false, false, false, false, false, true},
	{true, false, true, true, true, false, true},
	{true, false, true, true, true, false, true},
	{true, false, true, true, true, false, true},
	{true, false, false, false, false, false, true},
	{true, true, true, true, true, true, true},
}

// BuildBaseMatrix stamps every structural pattern that depends only
// on the version: finder patterns with their separators, timing
// patterns, alignment patterns, the dark module, the version-info
// block (versions 7+), and reserves (without yet assigning values)
// the two format-info strips.
func BuildBaseMatrix(version int) *Matrix {
	dim := tables.Dimension(version)
	m := NewMatrix(dim)

	stampFinder(m, 0, 0)
	stampFinder(m, 0, dim-7)
	stampFinder(m, dim-7, 0)

	stampTiming(m, dim)

	for _, c := range tables.AlignmentCenters(version) {
		stampAlignment(m, c[0], c[1])
	}

	m.SetFixed(dim-8, 8, true) // the dark module

	reserveFormatInfo(m, dim)

	if version >= 7 {
		stampVersionInfo(m, version, dim)
	}

	return m
}

func stampFinder(m *Matrix, topRow, topCol int) {
	// Mark the full 8x8 footprint (7x7 finder + separator ring) fixed
	// and light, then stamp the actual dark finder-pattern cells.
	for dr := -1; dr <= 7; dr++ {
		for dc := -1; dc <= 7; dc++ {
			r, c := topRow+dr, topCol+dc
			if !m.InBounds(r, c) {
				continue
			}
			m.SetFixed(r, c, false)
		}
	}
	for dr := 0; dr < 7; dr++ {
		for dc := 0; dc < 7; dc++ {
			m.SetFixed(topRow+dr, topCol+dc, finderPattern[dr][dc])
		}
	}
}

func stampTiming(m *Matrix, dim int) {
	for i := 8; i < dim-8; i++ {
		dark := i%2 == 0
		m.SetFixed(6, i, dark)
		m.SetFixed(i, 6, dark)
	}
}

func stampAlignment(m *Matrix, row, col int) {
	for dr := -2; dr <= 2; dr++ {
		for dc := -2; dc <= 2; dc++ {
			dark := dr == -2 || dr == 2 || dc == -2 || dc == 2 || (dr == 0 && dc == 0)
			m.SetFixed(row+dr, col+dc, dark)
		}
	}
}

func reserveFormatInfo(m *Matrix, dim int) {
	for _, row := range []int{0, 1, 2, 3, 4, 5, 7, 8} {
		m.SetFormatInfo(row, 8)
	}
	for _, col := range []int{0, 1, 2, 3, 4, 5, 7, 8} {
		m.SetFormatInfo(8, col)
	}
	for i := 0; i < 8; i++ {
		m.SetFormatInfo(8, dim-1-i)
	}
	for i := 0; i < 7; i++ {
		m.SetFormatInfo(dim-1-i, 8)
	}
}

func stampVersionInfo(m *Matrix, version, dim int) {
	bits := tables.EncodeVersionInfo(version)
	// 18 bits laid out as 6 rows x 3 columns (top-right block, left of
	// the top-right finder) / 3 rows x 6 columns (bottom-left block,
	// above the bottom-left finder), least-significant bit first, three
	// bits per row (top-right) or per column (bottom-left).
	for i := 0; i < 18; i++ {
		bit := (bits>>uint(i))&1 != 0
		major := i / 3
		minor := i % 3
		m.SetFixed(major, dim-11+minor, bit)
		m.SetFixed(dim-11+minor, major, bit)
	}
}
