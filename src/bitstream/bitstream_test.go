package bitstream

import "testing"

func TestWriteReadRoundTrip(t *testing.T) {
	w := NewWriter()
	w.Write(0b101, 3)
	w.Write(0xFF, 8)
	w.Write(0b1, 1)
	w.PadToByte()

	r := NewReader(w.Bytes())
	if v, err := r.Read(3); err != nil || v != 0b101 {
		t.Fatalf("first read: v=%d err=%v", v, err)
	}
	if v, err := r.Read(8); err != nil || v != 0xFF {
		t.Fatalf("second read: v=%d err=%v", v, err)
	}
	if v, err := r.Read(1); err != nil || v != 1 {
		t.Fatalf("third read: v=%d err=%v", v, err)
	}
}

func TestReadPastEndErrors(t *testing.T) {
	r := NewReader([]byte{0xFF})
	if _, err := r.Read(9); err != ErrPrematureEnd {
		t.Fatalf("expected ErrPrematureEnd, got %v", err)
	}
}
