package lnk

import (
	"bytes"
	"testing"
)

// minimalHeaderBytes is the 76-byte header-only buffer: header_size,
// link_clsid, zeroed link_flags/file_attributes/three FILETIMEs/file_size/
// icon_index, show_command=ShowNormal, zeroed hotkey and three reserved
// fields.
func minimalHeaderBytes() []byte {
	b := make([]byte, 0, 76)
	b = append(b, 0x4C, 0x00, 0x00, 0x00)
	b = append(b, 0x01, 0x14, 0x02, 0x00, 0x00, 0x00, 0x00, 0x00, 0xC0, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x46)
	b = append(b, 0x00, 0x00, 0x00, 0x00) // link_flags
	b = append(b, 0x00, 0x00, 0x00, 0x00) // file_attributes
	b = append(b, make([]byte, 24)...)    // 3 FILETIMEs
	b = append(b, 0x00, 0x00, 0x00, 0x00) // file_size
	b = append(b, 0x00, 0x00, 0x00, 0x00) // icon_index
	b = append(b, 0x01, 0x00, 0x00, 0x00) // show_command = ShowNormal
	b = append(b, 0x00, 0x00)             // hotkey
	b = append(b, 0x00, 0x00)             // reserved1
	b = append(b, 0x00, 0x00, 0x00, 0x00) // reserved2
	b = append(b, 0x00, 0x00, 0x00, 0x00) // reserved3
	return b
}

func TestReadHeaderMinimal(t *testing.T) {
	raw := minimalHeaderBytes()
	if len(raw) != 76 {
		t.Fatalf("test fixture is %d bytes, want 76", len(raw))
	}

	rd, err := newReader(bytes.NewReader(raw))
	if err != nil {
		t.Fatalf("newReader: %v", err)
	}
	h, err := rd.readHeader()
	if err != nil {
		t.Fatalf("readHeader: %v", err)
	}
	if h.ShowCommand != ShowNormal {
		t.Fatalf("ShowCommand = %d, want ShowNormal", h.ShowCommand)
	}

	w := &writer{}
	w.writeHeader(h)
	if !bytes.Equal(w.bytes(), raw) {
		t.Fatalf("writeHeader round-trip = %x, want %x", w.bytes(), raw)
	}
}

func TestReadHeaderBadMagicIsNotAShellLink(t *testing.T) {
	raw := minimalHeaderBytes()
	raw[0] = 0x4D // header_size now 0x4D, not 0x4C

	rd, err := newReader(bytes.NewReader(raw))
	if err != nil {
		t.Fatalf("newReader: %v", err)
	}
	_, err = rd.readHeader()
	if err == nil {
		t.Fatal("expected an error for a bad header_size")
	}
	lnkErr, ok := err.(*Error)
	if !ok {
		t.Fatalf("error is %T, want *Error", err)
	}
	if lnkErr.Kind != ErrNotAShellLink {
		t.Fatalf("Kind = %v, want ErrNotAShellLink", lnkErr.Kind)
	}
}

func TestReadHeaderBadCLSIDIsNotAShellLink(t *testing.T) {
	raw := minimalHeaderBytes()
	raw[4] = 0xFF // corrupt the first byte of link_clsid

	rd, err := newReader(bytes.NewReader(raw))
	if err != nil {
		t.Fatalf("newReader: %v", err)
	}
	_, err = rd.readHeader()
	lnkErr, ok := err.(*Error)
	if !ok || lnkErr.Kind != ErrNotAShellLink {
		t.Fatalf("error = %v, want an ErrNotAShellLink *Error", err)
	}
}

func TestReadHeaderReservedMustBeZero(t *testing.T) {
	raw := minimalHeaderBytes()
	// reserved1 sits right after the hotkey's 2 bytes, at offset 66.
	raw[66] = 0x01

	rd, err := newReader(bytes.NewReader(raw))
	if err != nil {
		t.Fatalf("newReader: %v", err)
	}
	_, err = rd.readHeader()
	lnkErr, ok := err.(*Error)
	if !ok {
		t.Fatalf("error is %T, want *Error", err)
	}
	if lnkErr.Kind != ErrParse {
		t.Fatalf("Kind = %v, want ErrParse", lnkErr.Kind)
	}
	if lnkErr.Offset != 66 {
		t.Fatalf("Offset = %d, want 66", lnkErr.Offset)
	}
}

func TestReadHeaderInvalidShowCommand(t *testing.T) {
	raw := minimalHeaderBytes()
	raw[60] = 0x02 // show_command = 2, not in {1,3,7}

	rd, err := newReader(bytes.NewReader(raw))
	if err != nil {
		t.Fatalf("newReader: %v", err)
	}
	_, err = rd.readHeader()
	lnkErr, ok := err.(*Error)
	if !ok || lnkErr.Kind != ErrParse {
		t.Fatalf("error = %v, want an ErrParse *Error", err)
	}
}

func TestDefaultHeader(t *testing.T) {
	h := DefaultHeader()
	if !h.LinkFlags.Has(LinkFlagIsUnicode) {
		t.Fatal("DefaultHeader should set IS_UNICODE")
	}
	if h.FileAttributes != FileAttributeNormal {
		t.Fatalf("FileAttributes = %v, want FileAttributeNormal", h.FileAttributes)
	}
	if h.ShowCommand != ShowNormal {
		t.Fatalf("ShowCommand = %v, want ShowNormal", h.ShowCommand)
	}
}

func TestHeaderSetFlag(t *testing.T) {
	h := DefaultHeader()
	h.SetFlag(LinkFlagHasName, true)
	if !h.LinkFlags.Has(LinkFlagHasName) {
		t.Fatal("SetFlag(..., true) should set the bit")
	}
	h.SetFlag(LinkFlagHasName, false)
	if h.LinkFlags.Has(LinkFlagHasName) {
		t.Fatal("SetFlag(..., false) should clear the bit")
	}
}
