package gf256

import (
	"bytes"
	"testing"
)

func TestEncodeCorrectRoundTripNoErrors(t *testing.T) {
	data := []byte("HELLO WORLD ITEM")
	const ecLen = 10
	ecc := EncodeECC(data, ecLen)
	block := append(append([]byte{}, data...), ecc...)

	corrected, err := CorrectData(block, ecLen)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !bytes.Equal(corrected, block) {
		t.Fatalf("clean block should be returned unchanged")
	}
}

func TestCorrectDataFixesErrors(t *testing.T) {
	data := []byte{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13}
	const ecLen = 13
	ecc := EncodeECC(data, ecLen)
	block := append(append([]byte{}, data...), ecc...)

	corrupted := append([]byte{}, block...)
	corrupted[2] ^= 0xFF
	corrupted[9] ^= 0x11
	corrupted[15] ^= 0x7A

	corrected, err := CorrectData(corrupted, ecLen)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !bytes.Equal(corrected, block) {
		t.Fatalf("correction mismatch:\ngot  %v\nwant %v", corrected, block)
	}
}

func TestCorrectDataUncorrectable(t *testing.T) {
	data := []byte{9, 9, 9, 9, 9}
	const ecLen = 7
	ecc := EncodeECC(data, ecLen)
	block := append(append([]byte{}, data...), ecc...)

	corrupted := append([]byte{}, block...)
	for i := range corrupted {
		corrupted[i] ^= 0xFF
	}

	if _, err := CorrectData(corrupted, ecLen); err == nil {
		t.Fatalf("expected an uncorrectable error")
	}
}
