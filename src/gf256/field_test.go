package gf256

import (
	"testing"

	"github.com/ironsmile/qrforge/src/assert"
)

func TestExpLogInverse(t *testing.T) {
	for v := 1; v < 256; v++ {
		assert.Equal(t, byte(v), Exp(Log(byte(v))), "Exp(Log(%d))", v)
	}
}

func TestMulDivRoundTrip(t *testing.T) {
	for a := 1; a < 256; a++ {
		for b := 1; b < 256; b++ {
			prod := Mul(byte(a), byte(b))
			if got := Div(prod, byte(b)); got != byte(a) {
				t.Fatalf("Div(Mul(%d,%d),%d) = %d, want %d", a, b, b, got, a)
			}
		}
	}
}

func TestMulByZero(t *testing.T) {
	for a := 0; a < 256; a++ {
		assert.Equal(t, byte(0), Mul(byte(a), 0), "Mul(%d,0)", a)
		assert.Equal(t, byte(0), Mul(0, byte(a)), "Mul(0,%d)", a)
	}
}

func TestGeneratorDegree(t *testing.T) {
	for _, ecLen := range []int{7, 10, 13, 15, 16, 17, 18, 20, 22, 24, 26, 28, 30} {
		g := Generator(ecLen)
		assert.Equal(t, ecLen+1, len(g), "Generator(%d) coefficient count", ecLen)
		assert.Equal(t, byte(1), g[0], "Generator(%d) leading coefficient", ecLen)
	}
}
