package lnk

import (
	"bytes"
	"reflect"
	"testing"
)

func TestExtraDataTerminalBlockOnly(t *testing.T) {
	raw := []byte{0x00, 0x00, 0x00, 0x00}

	rd, err := newReader(bytes.NewReader(raw))
	if err != nil {
		t.Fatalf("newReader: %v", err)
	}
	ed, err := rd.readExtraData(-1)
	if err != nil {
		t.Fatalf("readExtraData: %v", err)
	}
	if len(ed.Blocks) != 0 {
		t.Fatalf("got %d blocks, want 0", len(ed.Blocks))
	}

	w := &writer{}
	if err := w.writeExtraData(ed); err != nil {
		t.Fatalf("writeExtraData: %v", err)
	}
	if !bytes.Equal(w.bytes(), raw) {
		t.Fatalf("writeExtraData round-trip = %x, want %x", w.bytes(), raw)
	}
}

func TestExtraDataUnknownSignatureScenario(t *testing.T) {
	raw := []byte{
		0x0C, 0x00, 0x00, 0x00,
		0xFF, 0xFF, 0xFF, 0xFF,
		0x00, 0x00, 0x00, 0x00,
		0x00, 0x00, 0x00, 0x00,
		0x00, 0x00, 0x00, 0x00,
	}

	rd, err := newReader(bytes.NewReader(raw))
	if err != nil {
		t.Fatalf("newReader: %v", err)
	}
	_, err = rd.readExtraData(-1)
	if err == nil {
		t.Fatal("expected an error for an unknown ExtraData signature")
	}
	lnkErr, ok := err.(*Error)
	if !ok || lnkErr.Kind != ErrParse {
		t.Fatalf("error = %v, want an ErrParse *Error", err)
	}
	if lnkErr.Offset != 4 {
		t.Fatalf("Offset = %d, want 4 (the signature field)", lnkErr.Offset)
	}
}

func TestExtraDataMaxBlocksBound(t *testing.T) {
	// Three valid, back-to-back ConsoleFEDataBlocks (size 0x0C, signature
	// 0xA0000004), each CodePage zeroed.
	raw := bytes.Repeat([]byte{0x0C, 0x00, 0x00, 0x00, 0x04, 0x00, 0x00, 0xA0, 0, 0, 0, 0}, 3)
	rd, err := newReader(bytes.NewReader(raw))
	if err != nil {
		t.Fatalf("newReader: %v", err)
	}
	if _, err := rd.readExtraData(2); err == nil {
		t.Fatal("expected an error once maxBlocks is exceeded")
	}
}

func roundTripBlock(t *testing.T, block ExtraBlock) (ExtraBlock, []byte) {
	t.Helper()
	w := &writer{}
	if err := block.encode(w); err != nil {
		t.Fatalf("encode: %v", err)
	}
	encoded := append([]byte(nil), w.bytes()...)
	w.writeUint32(0) // terminal block

	rd, err := newReader(bytes.NewReader(w.bytes()))
	if err != nil {
		t.Fatalf("newReader: %v", err)
	}
	ed, err := rd.readExtraData(-1)
	if err != nil {
		t.Fatalf("readExtraData: %v", err)
	}
	if len(ed.Blocks) != 1 {
		t.Fatalf("got %d blocks, want 1", len(ed.Blocks))
	}
	return ed.Blocks[0], encoded
}

func TestExtraDataBlockRoundTrips(t *testing.T) {
	cases := []ExtraBlock{
		EnvironmentVariableDataBlock{TargetAnsi: "C:\\env", TargetUnicode: "C:\\env"},
		DarwinDataBlock{DarwinDataAnsi: "id", DarwinDataUnicode: "id"},
		IconEnvironmentDataBlock{TargetAnsi: "C:\\icon.ico", TargetUnicode: "C:\\icon.ico"},
		ConsoleDataBlock{FillAttributes: 0x07, FaceName: "Consolas", ColorTable: [16]uint32{1, 2, 3}},
		ConsoleFEDataBlock{CodePage: 932},
		SpecialFolderDataBlock{SpecialFolderID: 5, OffsetIntoIDList: 20},
		KnownFolderDataBlock{KnownFolderID: linkCLSID, OffsetIntoIDList: 8},
		TrackerDataBlock{MachineID: "MACHINE", FileDroid: linkCLSID, VolumeDroid: linkCLSID, FileDroidBirth: linkCLSID, VolumeDroidBirth: linkCLSID},
		ShimDataBlock{LayerName: "WINXPSP3"},
		PropertyStoreDataBlock{Data: []byte{0xAA, 0xBB, 0xCC, 0xDD}},
		VistaAndAboveIDListDataBlock{IDList: IdList{Items: []ItemID{{Data: []byte{1, 2, 3}}}}},
	}

	for _, want := range cases {
		got, encoded := roundTripBlock(t, want)
		if !reflect.DeepEqual(got, want) {
			t.Fatalf("round trip = %#v, want %#v", got, want)
		}

		w2 := &writer{}
		if err := got.encode(w2); err != nil {
			t.Fatalf("re-encode: %v", err)
		}
		if !bytes.Equal(w2.bytes(), encoded) {
			t.Fatalf("re-encoded bytes = %x, want %x", w2.bytes(), encoded)
		}
	}
}

func TestConsoleDataBlockRejectsWrongSize(t *testing.T) {
	raw := []byte{0x08, 0x00, 0x00, 0x00, 0x02, 0x00, 0x00, 0xA0}
	rd, err := newReader(bytes.NewReader(raw))
	if err != nil {
		t.Fatalf("newReader: %v", err)
	}
	if _, err := rd.readExtraData(-1); err == nil {
		t.Fatal("expected an error for a too-small ConsoleData block")
	}
}
