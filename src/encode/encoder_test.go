package encode

import (
	"bytes"
	"testing"

	"github.com/ironsmile/qrforge/src/assert"
	"github.com/ironsmile/qrforge/src/decode"
	"github.com/ironsmile/qrforge/src/layout"
	"github.com/ironsmile/qrforge/src/tables"
)

func unloadAndDecode(t *testing.T, sym *Symbol) []byte {
	t.Helper()
	points := layout.DataPath(sym.Matrix)
	layout.ApplyMask(sym.Matrix, points, sym.Mask)

	codewords := make([]byte, len(points)/8)
	for i := 0; i < len(codewords)*8; i++ {
		if sym.Matrix.IsDark(points[i].Row, points[i].Col) {
			codewords[i/8] |= 1 << uint(7-i%8)
		}
	}

	data, err := decode.RestoreBlocks(codewords, sym.Version, sym.Level)
	assert.NilErr(t, err, "RestoreBlocks")
	payload, _, err := decode.DecodeData(data, sym.Version)
	assert.NilErr(t, err, "DecodeData")
	return payload
}

func TestEncodeNumericRoundTrip(t *testing.T) {
	sym, err := Encode(Params{Data: []byte("0123456789"), Level: tables.L, Mask: 0, Version: 1}, nil)
	assert.NilErr(t, err, "Encode")
	got := unloadAndDecode(t, sym)
	if !bytes.Equal(got, []byte("0123456789")) {
		t.Fatalf("round trip mismatch: got %q", got)
	}
}

func TestEncodeAlphanumericRoundTrip(t *testing.T) {
	sym, err := Encode(Params{Data: []byte("HELLO WORLD"), Level: tables.M, Mask: 5, Version: 1}, nil)
	assert.NilErr(t, err, "Encode")
	got := unloadAndDecode(t, sym)
	if !bytes.Equal(got, []byte("HELLO WORLD")) {
		t.Fatalf("round trip mismatch: got %q", got)
	}
}

func TestEncodeByteRoundTrip(t *testing.T) {
	payload := []byte("https://github.com/mohsen2hasani/QRCode")
	sym, err := Encode(Params{Data: payload, Charset: "ISO-8859-1", Level: tables.M, Mask: 2, Version: 9}, nil)
	assert.NilErr(t, err, "Encode")
	if sym.Version != 9 {
		t.Fatalf("expected version 9, got %d", sym.Version)
	}
	if tables.Dimension(sym.Version) != 53 {
		t.Fatalf("expected dimension 53, got %d", tables.Dimension(sym.Version))
	}
	got := unloadAndDecode(t, sym)
	if !bytes.Equal(got, payload) {
		t.Fatalf("round trip mismatch: got %q want %q", got, payload)
	}
}

func TestEncodeAutoVersionSelectsSmallest(t *testing.T) {
	sym, err := Encode(Params{Data: []byte("123"), Level: tables.M, Mask: -1}, nil)
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	if sym.Version != 1 {
		t.Fatalf("expected smallest version 1, got %d", sym.Version)
	}
}

func TestEncodeCapacityExceeded(t *testing.T) {
	big := bytes.Repeat([]byte{'A'}, 1000)
	_, err := Encode(Params{Data: big, Level: tables.H, Version: 1}, nil)
	assert.NotNilErr(t, err, "expected ErrCapacityExceeded")
	assert.Equal(t, ErrCapacityExceeded, err)
}

func TestEncodeInvalidVersion(t *testing.T) {
	_, err := Encode(Params{Data: []byte("1"), Level: tables.M, Version: 41}, nil)
	assert.NotNilErr(t, err, "expected ErrInvalidVersion")
	assert.Equal(t, ErrInvalidVersion, err)
}

func TestEncodeForcedModeRejectsIncompatibleChars(t *testing.T) {
	_, err := Encode(Params{Data: []byte("12A3"), Level: tables.M, Version: 1, Mode: ModeNumeric}, nil)
	assert.NotNilErr(t, err, "expected ErrInvalidCharForMode")
	assert.Equal(t, ErrInvalidCharForMode, err)
}

func TestEncodeForcedModeAcceptsCompatibleChars(t *testing.T) {
	sym, err := Encode(Params{Data: []byte("HELLO WORLD"), Level: tables.M, Mask: 5, Version: 1, Mode: ModeAlphanumeric}, nil)
	assert.NilErr(t, err, "Encode")
	got := unloadAndDecode(t, sym)
	if !bytes.Equal(got, []byte("HELLO WORLD")) {
		t.Fatalf("round trip mismatch: got %q", got)
	}
}
