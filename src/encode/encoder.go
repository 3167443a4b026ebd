package encode

import (
	"github.com/ironsmile/qrforge/src/bitstream"
	"github.com/ironsmile/qrforge/src/diag"
	"github.com/ironsmile/qrforge/src/gf256"
	"github.com/ironsmile/qrforge/src/layout"
	"github.com/ironsmile/qrforge/src/tables"
)

// Params configures a single Encode call.
type Params struct {
	// Data is the payload to encode. Interpreted as text for mode
	// classification (numeric/alphanumeric/byte); Byte mode data is
	// further transcoded according to Charset.
	Data []byte

	// Charset names the encoding used for Byte-mode payloads: "",
	// "UTF-8" or "ISO-8859-1"/"Latin1".
	Charset string

	// Level is the error-correction level to encode at.
	Level tables.ECLevel

	// Mask selects a fixed mask pattern (0..7); a negative value
	// requests automatic selection by penalty score.
	Mask int

	// Version pins the symbol version (1..40); 0 requests the
	// smallest version that fits the payload.
	Version int

	// Mode forces segmentation into ModeNumeric, ModeAlphanumeric or
	// ModeByte instead of picking the narrowest mode automatically;
	// zero (the default) means automatic. Forcing a mode Data cannot be
	// represented in losslessly (e.g. ModeNumeric for non-digit bytes)
	// returns ErrInvalidCharForMode.
	Mode int
}

// Symbol is a finished, masked and stamped QR Code ready for
// rendering.
type Symbol struct {
	Matrix  *layout.Matrix
	Version int
	Level   tables.ECLevel
	Mask    int
}

// Encode builds a complete Symbol from p.
func Encode(p Params, sink diag.Sink) (*Symbol, error) {
	sink = diag.Coalesce(sink)

	mode := p.Mode
	if mode == 0 {
		mode = classifyMode(p.Data)
	} else if !modeSupports(mode, p.Data) {
		return nil, ErrInvalidCharForMode
	}
	payload := p.Data
	if mode == ModeByte {
		transcoded, err := transcodeForCharset(p.Data, p.Charset)
		if err != nil {
			return nil, err
		}
		payload = transcoded
	}

	version := p.Version
	if version == 0 {
		v, err := chooseVersion(mode, len(payload), p.Level)
		if err != nil {
			return nil, err
		}
		version = v
		sink.Printf("encode: selected version %d for %d-byte payload", version, len(payload))
	} else if err := validateFits(mode, len(payload), version, p.Level); err != nil {
		return nil, err
	}

	plan, ok := tables.Plan(version, p.Level)
	if !ok {
		return nil, ErrInvalidVersion
	}

	dataBytes, err := buildDataCodewords(mode, payload, version, plan)
	if err != nil {
		return nil, err
	}

	blocks := splitBlocks(dataBytes, plan)
	interleaved := interleaveBlocks(blocks, plan.ECCodewordsPerBlock)

	m := layout.BuildBaseMatrix(version)
	points := layout.DataPath(m)
	writeCodewords(m, points, interleaved)

	mask := p.Mask
	if mask < 0 {
		mask = chooseBestMask(m, points)
		sink.Printf("encode: selected mask %d by penalty score", mask)
	} else {
		layout.ApplyMask(m, points, mask)
	}

	stampFormatInfo(m, version, p.Level, mask)

	return &Symbol{Matrix: m, Version: version, Level: p.Level, Mask: mask}, nil
}

func buildDataCodewords(mode int, payload []byte, version int, plan tables.BlockPlan) ([]byte, error) {
	bw := bitstream.NewWriter()
	bw.Write(uint32(mode), 4)
	bw.Write(uint32(len(payload)), tables.CharCountBits(mode, version))

	switch mode {
	case ModeNumeric:
		encodeNumeric(bw, payload)
	case ModeAlphanumeric:
		encodeAlphanumeric(bw, payload)
	case ModeByte:
		encodeByte(bw, payload)
	default:
		return nil, ErrUnsupportedMode
	}

	totalBits := plan.TotalDataCodewords() * 8
	if bw.Len() > totalBits {
		return nil, ErrCapacityExceeded
	}

	termBits := 4
	if bw.Len()+termBits > totalBits {
		termBits = totalBits - bw.Len()
	}
	if termBits > 0 {
		bw.Write(0, termBits)
	}
	bw.PadToByte()

	data := bw.Bytes()
	pad := byte(0xEC)
	for len(data) < plan.TotalDataCodewords() {
		data = append(data, pad)
		if pad == 0xEC {
			pad = 0x11
		} else {
			pad = 0xEC
		}
	}
	return data, nil
}

func encodeNumeric(w *bitstream.Writer, data []byte) {
	for i := 0; i < len(data); i += 3 {
		end := i + 3
		if end > len(data) {
			end = len(data)
		}
		chunk := data[i:end]
		val := 0
		for _, c := range chunk {
			val = val*10 + int(c-'0')
		}
		bits := [4]int{0, 4, 7, 10}[len(chunk)]
		w.Write(uint32(val), bits)
	}
}

func encodeAlphanumeric(w *bitstream.Writer, data []byte) {
	for i := 0; i < len(data); i += 2 {
		v1, _ := tables.AlphanumericValue(data[i])
		if i+1 < len(data) {
			v2, _ := tables.AlphanumericValue(data[i+1])
			w.Write(uint32(v1*45+v2), 11)
		} else {
			w.Write(uint32(v1), 6)
		}
	}
}

func encodeByte(w *bitstream.Writer, data []byte) {
	for _, b := range data {
		w.Write(uint32(b), 8)
	}
}

func splitBlocks(data []byte, plan tables.BlockPlan) [][]byte {
	var blocks [][]byte
	pos := 0
	for i := 0; i < plan.Group1.Blocks; i++ {
		blocks = append(blocks, data[pos:pos+plan.Group1.DataCodewords])
		pos += plan.Group1.DataCodewords
	}
	for i := 0; i < plan.Group2.Blocks; i++ {
		blocks = append(blocks, data[pos:pos+plan.Group2.DataCodewords])
		pos += plan.Group2.DataCodewords
	}
	return blocks
}

func interleaveBlocks(blocks [][]byte, ecLen int) []byte {
	ecBlocks := make([][]byte, len(blocks))
	maxData := 0
	for i, b := range blocks {
		ecBlocks[i] = gf256.EncodeECC(b, ecLen)
		if len(b) > maxData {
			maxData = len(b)
		}
	}

	var out []byte
	for col := 0; col < maxData; col++ {
		for _, b := range blocks {
			if col < len(b) {
				out = append(out, b[col])
			}
		}
	}
	for col := 0; col < ecLen; col++ {
		for _, b := range ecBlocks {
			out = append(out, b[col])
		}
	}
	return out
}

func writeCodewords(m *layout.Matrix, points []layout.Point, data []byte) {
	bitIdx := 0
	totalBits := len(data) * 8
	for _, p := range points {
		if bitIdx >= totalBits {
			break
		}
		byteVal := data[bitIdx/8]
		bit := (byteVal >> uint(7-bitIdx%8)) & 1
		m.SetDark(p.Row, p.Col, bit != 0)
		bitIdx++
	}
}

func chooseBestMask(m *layout.Matrix, points []layout.Point) int {
	best := 0
	bestScore := -1
	for mask := 0; mask < 8; mask++ {
		layout.ApplyMask(m, points, mask)
		score := layout.Penalty(m)
		if bestScore < 0 || score < bestScore {
			bestScore = score
			best = mask
		}
		layout.ApplyMask(m, points, mask)
	}
	layout.ApplyMask(m, points, best)
	return best
}

// stampFormatInfo writes the chosen level/mask into both format-info
// strips, in the ISO/IEC 18004 Figure 25 bit order.
func stampFormatInfo(m *layout.Matrix, version int, level tables.ECLevel, mask int) {
	code := tables.EncodeFormatInfo(level, mask)
	dim := tables.Dimension(version)

	xs := [15]int{8, 8, 8, 8, 8, 8, 8, 8, 7, 5, 4, 3, 2, 1, 0}
	ys := [15]int{0, 1, 2, 3, 4, 5, 7, 8, 8, 8, 8, 8, 8, 8, 8}
	for i := 0; i < 15; i++ {
		bit := (code>>uint(i))&1 != 0
		m.SetFixed(ys[i], xs[i], bit)
	}

	for k := 8; k <= 14; k++ {
		bit := (code>>uint(k))&1 != 0
		row := dim - 15 + k
		m.SetFixed(row, 8, bit)
	}
	for k := 0; k <= 7; k++ {
		bit := (code>>uint(k))&1 != 0
		col := dim - 1 - k
		m.SetFixed(8, col, bit)
	}
}

func fitsCapacity(mode, payloadLen, version int, level tables.ECLevel) bool {
	plan, ok := tables.Plan(version, level)
	if !ok {
		return false
	}
	countBits := tables.CharCountBits(mode, version)

	var dataBits int
	switch mode {
	case ModeNumeric:
		full := payloadLen / 3
		rem := payloadLen % 3
		dataBits = full * 10
		dataBits += [3]int{0, 4, 7}[rem]
	case ModeAlphanumeric:
		dataBits = (payloadLen / 2) * 11
		if payloadLen%2 == 1 {
			dataBits += 6
		}
	case ModeByte:
		dataBits = payloadLen * 8
	default:
		return false
	}

	total := 4 + countBits + dataBits
	return total <= plan.TotalDataCodewords()*8
}

func chooseVersion(mode, payloadLen int, level tables.ECLevel) (int, error) {
	for v := 1; v <= 40; v++ {
		if fitsCapacity(mode, payloadLen, v, level) {
			return v, nil
		}
	}
	return 0, ErrCapacityExceeded
}

func validateFits(mode, payloadLen, version int, level tables.ECLevel) error {
	if version < 1 || version > 40 {
		return ErrInvalidVersion
	}
	if !fitsCapacity(mode, payloadLen, version, level) {
		return ErrCapacityExceeded
	}
	return nil
}
