package tables

// alignmentCenters[version-1] lists the row/column coordinates (shared
// between rows and columns) at which alignment pattern centers may
// fall, per the ISO/IEC 18004 Annex E table. Version 1 has no
// alignment patterns.
var alignmentCenters = [40][]int{
	{},
	{6, 18},
	{6, 22},
	{6, 26},
	{6, 30},
	{6, 34},
	{6, 22, 38},
	{6, 24, 42},
	{6, 26, 46},
	{6, 28, 50},
	{6, 30, 54},
	{6, 32, 58},
	{6, 34, 62},
	{6, 26, 46, 66},
	{6, 26, 48, 70},
	{6, 26, 50, 74},
	{6, 30, 54, 78},
	{6, 30, 56, 82},
	{6, 30, 58, 86},
	{6, 34, 62, 90},
	{6, 28, 50, 72, 94},
	{6, 26, 50, 74, 98},
	{6, 30, 54, 78, 102},
	{6, 28, 54, 80, 106},
	{6, 32, 58, 84, 110},
	{6, 30, 58, 86, 114},
	{6, 34, 62, 90, 118},
	{6, 26, 50, 74, 98, 122},
	{6, 30, 54, 78, 102, 126},
	{6, 26, 52, 78, 104, 130},
	{6, 30, 56, 82, 108, 134},
	{6, 34, 60, 86, 112, 138},
	{6, 30, 58, 86, 114, 142},
	{6, 34, 62, 90, 118, 146},
	{6, 30, 54, 78, 102, 126, 150},
	{6, 24, 50, 76, 102, 128, 154},
	{6, 28, 54, 80, 106, 132, 158},
	{6, 32, 58, 84, 110, 136, 162},
	{6, 26, 54, 82, 110, 138, 166},
	{6, 30, 58, 86, 114, 142, 170},
}

// AlignmentCenters returns every (row,col) pair at which an alignment
// pattern's center module falls for the given version. The three
// combinations of the first and last coordinates that coincide with a
// finder pattern's footprint (top-left, top-right, bottom-left) are
// skipped.
func AlignmentCenters(version int) [][2]int {
	if version < 1 || version > 40 {
		return nil
	}
	coords := alignmentCenters[version-1]
	if len(coords) == 0 {
		return nil
	}

	var out [][2]int
	for i, r := range coords {
		for j, c := range coords {
			if i == 0 && j == 0 {
				// Coincides with the top-left finder pattern.
				continue
			}
			if i == 0 && j == len(coords)-1 {
				// Coincides with the top-right finder pattern.
				continue
			}
			if i == len(coords)-1 && j == 0 {
				// Coincides with the bottom-left finder pattern.
				continue
			}
			out = append(out, [2]int{r, c})
		}
	}
	return out
}
