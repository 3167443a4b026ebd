package decode

import (
	"github.com/ironsmile/qrforge/src/bitstream"
	"github.com/ironsmile/qrforge/src/tables"
)

// Mode indicator values, matching src/encode's wire encoding exactly.
const (
	modeTerminator   = 0
	modeNumeric      = 1
	modeAlphanumeric = 2
	modeByte         = 4
	modeECI          = 7
)

// DecodeData walks the corrected data codewords as a sequence of mode
// segments and returns the concatenated byte payload. ECI segments are
// parsed (their assign value is returned) but never change how
// subsequent Byte-mode segments are decoded -- see spec's Open
// Question on ECI.
func DecodeData(data []byte, version int) (payload []byte, eciAssignValue int, err error) {
	r := bitstream.NewReader(data)
	eciAssignValue = -1

	for {
		if r.Remaining() < 4 {
			return payload, eciAssignValue, nil
		}
		mode, err := r.Read(4)
		if err != nil {
			return nil, 0, ErrPrematureEndOfData
		}

		switch int(mode) {
		case modeTerminator:
			return payload, eciAssignValue, nil
		case modeNumeric:
			payload, err = decodeNumericSegment(r, version, payload)
		case modeAlphanumeric:
			payload, err = decodeAlphanumericSegment(r, version, payload)
		case modeByte:
			payload, err = decodeByteSegment(r, version, payload)
		case modeECI:
			eciAssignValue, err = decodeECIValue(r)
		default:
			return nil, 0, ErrUnsupportedMode
		}
		if err != nil {
			return nil, 0, err
		}
	}
}

func decodeNumericSegment(r *bitstream.Reader, version int, payload []byte) ([]byte, error) {
	count, err := r.Read(tables.CharCountBits(modeNumeric, version))
	if err != nil {
		return nil, ErrPrematureEndOfData
	}
	remaining := int(count)
	for remaining > 0 {
		switch {
		case remaining >= 3:
			v, err := r.Read(10)
			if err != nil {
				return nil, ErrPrematureEndOfData
			}
			payload = append(payload, digitsOf(int(v), 3)...)
			remaining -= 3
		case remaining == 2:
			v, err := r.Read(7)
			if err != nil {
				return nil, ErrPrematureEndOfData
			}
			payload = append(payload, digitsOf(int(v), 2)...)
			remaining = 0
		default:
			v, err := r.Read(4)
			if err != nil {
				return nil, ErrPrematureEndOfData
			}
			payload = append(payload, digitsOf(int(v), 1)...)
			remaining = 0
		}
	}
	return payload, nil
}

// digitsOf renders v as exactly n decimal digit bytes, matching the
// fixed-width groups Numeric mode packs them in.
func digitsOf(v, n int) []byte {
	out := make([]byte, n)
	for i := n - 1; i >= 0; i-- {
		out[i] = byte('0' + v%10)
		v /= 10
	}
	return out
}

func decodeAlphanumericSegment(r *bitstream.Reader, version int, payload []byte) ([]byte, error) {
	count, err := r.Read(tables.CharCountBits(modeAlphanumeric, version))
	if err != nil {
		return nil, ErrPrematureEndOfData
	}
	remaining := int(count)
	for remaining >= 2 {
		v, err := r.Read(11)
		if err != nil {
			return nil, ErrPrematureEndOfData
		}
		payload = append(payload, tables.AlphanumericChars[int(v)/45], tables.AlphanumericChars[int(v)%45])
		remaining -= 2
	}
	if remaining == 1 {
		v, err := r.Read(6)
		if err != nil {
			return nil, ErrPrematureEndOfData
		}
		payload = append(payload, tables.AlphanumericChars[int(v)])
	}
	return payload, nil
}

func decodeByteSegment(r *bitstream.Reader, version int, payload []byte) ([]byte, error) {
	count, err := r.Read(tables.CharCountBits(modeByte, version))
	if err != nil {
		return nil, ErrPrematureEndOfData
	}
	for i := 0; i < int(count); i++ {
		v, err := r.Read(8)
		if err != nil {
			return nil, ErrPrematureEndOfData
		}
		payload = append(payload, byte(v))
	}
	return payload, nil
}

// decodeECIValue reads the 1/2/3-byte ECI assignment value, whose
// length is signalled by the number of leading 1-bits of its first
// byte, per ISO/IEC 18004 Annex C.
func decodeECIValue(r *bitstream.Reader) (int, error) {
	first, err := r.Read(8)
	if err != nil {
		return 0, ErrPrematureEndOfData
	}
	switch {
	case first&0x80 == 0:
		return int(first), nil
	case first&0xC0 == 0x80:
		second, err := r.Read(8)
		if err != nil {
			return 0, ErrPrematureEndOfData
		}
		return int(first&0x3F)<<8 | int(second), nil
	case first&0xE0 == 0xC0:
		rest, err := r.Read(16)
		if err != nil {
			return 0, ErrPrematureEndOfData
		}
		return int(first&0x1F)<<16 | int(rest), nil
	default:
		return 0, ErrUnsupportedMode
	}
}
