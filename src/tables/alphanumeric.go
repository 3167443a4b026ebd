package tables

// AlphanumericChars is the ordered 45-character set usable in
// Alphanumeric mode; a character's index here is its 6-bit value.
const AlphanumericChars = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ $%*+-./:"

// alphaIndex maps a byte to its alphanumeric value, -1 when not part
// of the set.
var alphaIndex = buildAlphaIndex()

func buildAlphaIndex() [256]int {
	var idx [256]int
	for i := range idx {
		idx[i] = -1
	}
	for i := 0; i < len(AlphanumericChars); i++ {
		idx[AlphanumericChars[i]] = i
	}
	return idx
}

// AlphanumericValue returns the 6-bit value of c and whether c belongs
// to the alphanumeric character set.
func AlphanumericValue(c byte) (int, bool) {
	v := alphaIndex[c]
	if v < 0 {
		return 0, false
	}
	return v, true
}

// IsNumeric reports whether c is an ASCII digit.
func IsNumeric(c byte) bool {
	return c >= '0' && c <= '9'
}

// CharCountBits returns the width, in bits, of the character-count
// indicator for the given mode bit and version. Mode values follow
// spec's {Numeric=1, Alphanumeric=2, Byte=4, ECI=7} convention; ECI
// carries no character count and returns 0.
func CharCountBits(mode int, version int) int {
	var bucket int
	switch {
	case version <= 9:
		bucket = 0
	case version <= 26:
		bucket = 1
	default:
		bucket = 2
	}

	switch mode {
	case 1: // Numeric
		return [3]int{10, 12, 14}[bucket]
	case 2: // Alphanumeric
		return [3]int{9, 11, 13}[bucket]
	case 4: // Byte
		return [3]int{8, 16, 16}[bucket]
	default:
		return 0
	}
}
