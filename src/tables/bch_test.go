package tables

import (
	"testing"

	"github.com/ironsmile/qrforge/src/assert"
)

func TestFormatInfoZeroMatchesMask(t *testing.T) {
	// EC level M (0) with mask 0 is the canonical all-zero data value;
	// its wire codeword should equal the mask constant itself.
	assert.Equal(t, uint32(FormatInfoMask), EncodeFormatInfo(M, 0))
}

func TestFormatInfoRoundTrip(t *testing.T) {
	for _, lvl := range []ECLevel{L, M, Q, H} {
		for mask := 0; mask < 8; mask++ {
			code := EncodeFormatInfo(lvl, mask)
			gotLvl, gotMask, ok := DecodeFormatInfo(code)
			if !ok || gotLvl != lvl || gotMask != mask {
				t.Fatalf("round trip failed for level=%v mask=%d: got level=%v mask=%d ok=%v",
					lvl, mask, gotLvl, gotMask, ok)
			}
		}
	}
}

func TestFormatInfoCorrectsErrors(t *testing.T) {
	code := EncodeFormatInfo(Q, 5)
	corrupted := code ^ 0x4004 // flip two bits
	gotLvl, gotMask, ok := DecodeFormatInfo(corrupted)
	if !ok || gotLvl != Q || gotMask != 5 {
		t.Fatalf("expected correction to recover Q/5, got level=%v mask=%d ok=%v", gotLvl, gotMask, ok)
	}
}

func TestVersionInfoRoundTrip(t *testing.T) {
	for v := 7; v <= 40; v++ {
		code := EncodeVersionInfo(v)
		got, ok := DecodeVersionInfo(code)
		if !ok {
			t.Fatalf("round trip failed for version %d: decode rejected", v)
		}
		assert.Equal(t, v, got, "DecodeVersionInfo round trip")
	}
}
