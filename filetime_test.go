package lnk

import (
	"bytes"
	"testing"
)

func TestFileTimeRoundTrip(t *testing.T) {
	tests := []uint64{0, 1, 116444736000000000, 0xFFFFFFFFFFFFFFFF}

	for _, raw := range tests {
		var buf [8]byte
		for i := range buf {
			buf[i] = byte(raw >> (8 * i))
		}

		rd, err := newReader(bytes.NewReader(buf[:]))
		if err != nil {
			t.Fatalf("newReader: %v", err)
		}
		ft, err := rd.readFileTime()
		if err != nil {
			t.Fatalf("readFileTime: %v", err)
		}
		if ft.Raw != raw {
			t.Fatalf("readFileTime: Raw = %d, want %d", ft.Raw, raw)
		}

		civilBefore := ft.Time()

		w := &writer{}
		w.writeFileTime(ft)
		if !bytes.Equal(w.bytes(), buf[:]) {
			t.Fatalf("writeFileTime round-trip = %x, want %x", w.bytes(), buf[:])
		}

		if !ft.Time().Equal(civilBefore) {
			t.Fatalf("Time() is not stable across calls")
		}
	}
}

func TestFileTimeIsZero(t *testing.T) {
	if !(FileTime{}).IsZero() {
		t.Fatal("zero-value FileTime should report IsZero")
	}
	if (FileTime{Raw: 1}).IsZero() {
		t.Fatal("non-zero FileTime should not report IsZero")
	}
}

func TestFileTimeFromTimeRoundTrip(t *testing.T) {
	ft := FileTimeFromTime(FileTime{Raw: 116444736000000000}.Time())
	if ft.Raw != 116444736000000000 {
		t.Fatalf("FileTimeFromTime round-trip = %d, want %d", ft.Raw, 116444736000000000)
	}
}
