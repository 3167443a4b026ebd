package decode

import (
	"github.com/ironsmile/qrforge/src/gf256"
	"github.com/ironsmile/qrforge/src/layout"
	"github.com/ironsmile/qrforge/src/tables"
)

// ExtractedSymbol is the fully sampled, validated and unmasked module
// grid ready for bit-segment decoding, plus the level/mask it was
// found to be stamped with.
type ExtractedSymbol struct {
	Matrix  *layout.Matrix
	Version int
	Level   tables.ECLevel
	Mask    int
}

// formatXs/formatYs mirror encode's primary format-info location.
var formatXs = [15]int{8, 8, 8, 8, 8, 8, 8, 8, 7, 5, 4, 3, 2, 1, 0}
var formatYs = [15]int{0, 1, 2, 3, 4, 5, 7, 8, 8, 8, 8, 8, 8, 8, 8}

func readFormatPrimary(raw [][]bool) uint32 {
	var code uint32
	for i := 0; i < 15; i++ {
		if raw[formatYs[i]][formatXs[i]] {
			code |= 1 << uint(i)
		}
	}
	return code
}

func readFormatSecondary(raw [][]bool, dim int) uint32 {
	var code uint32
	for k := 8; k <= 14; k++ {
		row := dim - 15 + k
		if raw[row][8] {
			code |= 1 << uint(k)
		}
	}
	for k := 0; k <= 7; k++ {
		col := dim - 1 - k
		if raw[8][col] {
			code |= 1 << uint(k)
		}
	}
	return code
}

// sampleVersionInfo reads one of the two 3x6 version-info blocks
// directly through transform rather than from an already-sampled
// grid, mirroring layout.stampVersionInfo's bit layout (18 bits,
// least-significant bit first, three bits per row of the 6x3
// top-right block or per column of the 3x6 bottom-left block). It runs before
// ExtractMatrix, since the symbol's true dimension -- and therefore
// what to sample -- is exactly what version recovery is meant to
// confirm or correct.
func sampleVersionInfo(bmp *Bitmap, transform Transform, dim int, topRight bool) uint32 {
	var code uint32
	for i := 0; i < 18; i++ {
		major, minor := i/3, i%3
		var mrow, mcol int
		if topRight {
			mrow, mcol = major, dim-11+minor
		} else {
			mrow, mcol = dim-11+minor, major
		}
		x, y := transform.Apply(float64(mcol)+0.5, float64(mrow)+0.5)
		if bmp.At(roundInt(x), roundInt(y)) {
			code |= 1 << uint(i)
		}
	}
	return code
}

// ExtractMatrix samples every module of a dim x dim symbol through
// transform, validates the sampled fixed modules against their known
// values (FixedModuleMismatch), recovers the format info, unmasks the
// data region, and returns the resulting matrix.
func ExtractMatrix(bmp *Bitmap, version int, transform Transform) (*ExtractedSymbol, error) {
	dim := tables.Dimension(version)
	raw := make([][]bool, dim)
	for row := 0; row < dim; row++ {
		raw[row] = make([]bool, dim)
		for col := 0; col < dim; col++ {
			x, y := transform.Apply(float64(col)+0.5, float64(row)+0.5)
			raw[row][col] = bmp.At(roundInt(x), roundInt(y))
		}
	}

	base := layout.BuildBaseMatrix(version)

	primary := readFormatPrimary(raw)
	level, mask, ok := tables.DecodeFormatInfo(primary)
	if !ok {
		secondary := readFormatSecondary(raw, dim)
		level, mask, ok = tables.DecodeFormatInfo(secondary)
	}
	if !ok {
		return nil, ErrFixedModuleMismatch
	}

	fixedCount, mismatches := 0, 0
	for row := 0; row < dim; row++ {
		for col := 0; col < dim; col++ {
			if !base.IsFixed(row, col) {
				continue
			}
			fixedCount++
			if base.IsDark(row, col) != raw[row][col] {
				mismatches++
			}
		}
	}
	allowedPercent := tables.ErrCorrPercent[level]
	if fixedCount > 0 && mismatches*100 > fixedCount*allowedPercent {
		return nil, ErrFixedModuleMismatch
	}

	for row := 0; row < dim; row++ {
		for col := 0; col < dim; col++ {
			if !base.IsNonData(row, col) {
				base.SetDark(row, col, raw[row][col])
			}
		}
	}

	points := layout.DataPath(base)
	layout.ApplyMask(base, points, mask)

	return &ExtractedSymbol{Matrix: base, Version: version, Level: level, Mask: mask}, nil
}

func roundInt(v float64) int {
	if v < 0 {
		return int(v - 0.5)
	}
	return int(v + 0.5)
}

// UnloadCodewords walks the data path and assembles the unmasked
// module bits into bytes, MSB first.
func UnloadCodewords(sym *ExtractedSymbol) []byte {
	points := layout.DataPath(sym.Matrix)
	totalBytes := len(points) / 8
	out := make([]byte, totalBytes)
	for i := 0; i < totalBytes*8; i++ {
		if sym.Matrix.IsDark(points[i].Row, points[i].Col) {
			out[i/8] |= 1 << uint(7-i%8)
		}
	}
	return out
}

// RestoreBlocks de-interleaves codewords (as produced by
// UnloadCodewords) back into Reed-Solomon blocks, corrects each block,
// and returns the concatenated, corrected data codewords in original
// block order.
func RestoreBlocks(codewords []byte, version int, level tables.ECLevel) ([]byte, error) {
	plan, ok := tables.Plan(version, level)
	if !ok {
		return nil, ErrUnsupportedMode
	}

	type blockSpec struct {
		dataLen int
	}
	var specs []blockSpec
	for i := 0; i < plan.Group1.Blocks; i++ {
		specs = append(specs, blockSpec{plan.Group1.DataCodewords})
	}
	for i := 0; i < plan.Group2.Blocks; i++ {
		specs = append(specs, blockSpec{plan.Group2.DataCodewords})
	}

	ecLen := plan.ECCodewordsPerBlock
	blocks := make([][]byte, len(specs))
	for i, s := range specs {
		blocks[i] = make([]byte, 0, s.dataLen+ecLen)
	}

	maxData := 0
	for _, s := range specs {
		if s.dataLen > maxData {
			maxData = s.dataLen
		}
	}

	pos := 0
	for col := 0; col < maxData; col++ {
		for i, s := range specs {
			if col < s.dataLen {
				blocks[i] = append(blocks[i], codewords[pos])
				pos++
			}
		}
	}
	for col := 0; col < ecLen; col++ {
		for i := range specs {
			blocks[i] = append(blocks[i], codewords[pos])
			pos++
		}
	}

	var data []byte
	for _, block := range blocks {
		corrected, err := gf256.CorrectData(block, ecLen)
		if err != nil {
			return nil, ErrUncorrectableBlock
		}
		data = append(data, corrected[:len(corrected)-ecLen]...)
	}
	return data, nil
}
