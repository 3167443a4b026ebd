// Package layout builds and walks the module grid that both the
// encoder stamps and the decoder extracts: the base patterns (finder,
// timing, alignment, format/version reservations), the zig-zag data
// path, and the eight mask predicates.
package layout

// Flag bits stored alongside each module's data value.
const (
	FlagFixed      = 1 << 0 // part of a structural pattern, never data
	FlagNonData    = 1 << 1 // reserved but not yet assigned a structural value (format/version placeholder)
	FlagFormatInfo = 1 << 2 // belongs to one of the two format-info strips
	FlagDark       = 1 << 3 // module value is set (black)
)

// guardBorder is the quiet-zone width stamped around the symbol proper.
const guardBorder = 2

// Matrix is a D+5 square grid: the D x D symbol proper surrounded by a
// guardBorder-wide quiet zone on the top/left and the remaining margin
// on the bottom/right, plus per-cell flag bookkeeping.
type Matrix struct {
	Dim    int // D, the symbol's own width/height
	Size   int // D+5, the full grid's width/height
	Offset int // guardBorder: row/col of the symbol proper's (0,0)

	cells []byte // Size*Size flag bytes
}

// NewMatrix allocates a cleared matrix for a symbol of dimension dim.
func NewMatrix(dim int) *Matrix {
	size := dim + 5
	return &Matrix{
		Dim:    dim,
		Size:   size,
		Offset: guardBorder,
		cells:  make([]byte, size*size),
	}
}

func (m *Matrix) idx(row, col int) int {
	return (row+m.Offset)*m.Size + (col + m.Offset)
}

// InBounds reports whether (row,col), in symbol-proper coordinates,
// addresses a real module.
func (m *Matrix) InBounds(row, col int) bool {
	return row >= 0 && row < m.Dim && col >= 0 && col < m.Dim
}

// Get returns the full flag byte at (row,col).
func (m *Matrix) Get(row, col int) byte {
	return m.cells[m.idx(row, col)]
}

// Set overwrites the full flag byte at (row,col).
func (m *Matrix) Set(row, col int, flags byte) {
	m.cells[m.idx(row, col)] = flags
}

// SetDark sets or clears the dark bit at (row,col), leaving other
// flags untouched.
func (m *Matrix) SetDark(row, col int, dark bool) {
	i := m.idx(row, col)
	if dark {
		m.cells[i] |= FlagDark
	} else {
		m.cells[i] &^= FlagDark
	}
}

// IsDark reports the dark bit at (row,col).
func (m *Matrix) IsDark(row, col int) bool {
	return m.cells[m.idx(row, col)]&FlagDark != 0
}

// SetFixed marks (row,col) as a structural module with the given dark
// value, used by BuildBaseMatrix for finder/timing/alignment patterns.
func (m *Matrix) SetFixed(row, col int, dark bool) {
	i := m.idx(row, col)
	m.cells[i] |= FlagFixed
	if dark {
		m.cells[i] |= FlagDark
	} else {
		m.cells[i] &^= FlagDark
	}
}

// IsFixed reports whether (row,col) belongs to a structural pattern.
func (m *Matrix) IsFixed(row, col int) bool {
	return m.cells[m.idx(row, col)]&FlagFixed != 0
}

// SetFormatInfo marks (row,col) as belonging to a format-info strip
// without yet assigning its value.
func (m *Matrix) SetFormatInfo(row, col int) {
	i := m.idx(row, col)
	m.cells[i] |= FlagFormatInfo | FlagNonData
}

// IsFormatInfo reports whether (row,col) belongs to a format-info strip.
func (m *Matrix) IsFormatInfo(row, col int) bool {
	return m.cells[m.idx(row, col)]&FlagFormatInfo != 0
}

// IsNonData reports whether (row,col) is reserved (format/version
// placeholder or structural) and therefore skipped by DataPath.
func (m *Matrix) IsNonData(row, col int) bool {
	f := m.cells[m.idx(row, col)]
	return f&(FlagFixed|FlagNonData) != 0
}
