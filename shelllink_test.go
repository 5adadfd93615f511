package lnk

import (
	"bytes"
	"testing"
)

func TestDecodeMinimalShellLink(t *testing.T) {
	raw := append([]byte{}, minimalHeaderBytes()...)
	raw = append(raw, 0x00, 0x00, 0x00, 0x00) // ExtraData terminal block only

	sl, err := Decode(bytes.NewReader(raw), nil)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if sl.LinkTargetIDList != nil {
		t.Fatal("LinkTargetIDList should be absent")
	}
	if sl.LinkInfo != nil {
		t.Fatal("LinkInfo should be absent")
	}
	if sl.StringData.Name != nil {
		t.Fatal("StringData should be empty")
	}
	if len(sl.ExtraData.Blocks) != 0 {
		t.Fatal("ExtraData should have no blocks")
	}
	if sl.LinkTarget() != "" {
		t.Fatalf("LinkTarget() = %q, want empty", sl.LinkTarget())
	}
}

func TestEncodeRecomputesLinkFlags(t *testing.T) {
	sl := NewShellLink()
	name := "My Shortcut"
	sl.SetName(&name)
	sl.LinkInfo = &LinkInfo{LocalBasePath: "C:\\target.exe"}

	var buf bytes.Buffer
	if err := sl.Encode(&buf); err != nil {
		t.Fatalf("Encode: %v", err)
	}

	decoded, err := Decode(bytes.NewReader(buf.Bytes()), nil)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if !decoded.Header.LinkFlags.Has(LinkFlagHasName) {
		t.Fatal("LinkFlagHasName should be set after encoding a ShellLink with a Name")
	}
	if !decoded.Header.LinkFlags.Has(LinkFlagHasLinkInfo) {
		t.Fatal("LinkFlagHasLinkInfo should be set after encoding a ShellLink with LinkInfo")
	}
	if decoded.Header.LinkFlags.Has(LinkFlagHasLinkTargetIDList) {
		t.Fatal("LinkFlagHasLinkTargetIDList should not be set when LinkTargetIDList is nil")
	}
	if decoded.StringData.Name == nil || *decoded.StringData.Name != name {
		t.Fatalf("Name = %v, want %q", decoded.StringData.Name, name)
	}
	if decoded.LinkInfo == nil || decoded.LinkInfo.LocalBasePath != "C:\\target.exe" {
		t.Fatalf("LinkInfo = %+v, want LocalBasePath set", decoded.LinkInfo)
	}
	if got := decoded.LinkTarget(); got != "C:\\target.exe" {
		t.Fatalf("LinkTarget() = %q, want %q", got, "C:\\target.exe")
	}
}

func TestEncodeClearsStaleFlagsOnSetters(t *testing.T) {
	sl := NewShellLink()
	name := "temp"
	sl.SetName(&name)
	sl.SetArguments(&name)
	sl.SetName(nil)

	var buf bytes.Buffer
	if err := sl.Encode(&buf); err != nil {
		t.Fatalf("Encode: %v", err)
	}
	decoded, err := Decode(bytes.NewReader(buf.Bytes()), nil)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if decoded.Header.LinkFlags.Has(LinkFlagHasName) {
		t.Fatal("LinkFlagHasName should be cleared after SetName(nil)")
	}
	if !decoded.Header.LinkFlags.Has(LinkFlagHasArguments) {
		t.Fatal("LinkFlagHasArguments should remain set")
	}
}

func TestDecodeWithLinkTargetIDList(t *testing.T) {
	raw := append([]byte{}, minimalHeaderBytes()...)
	raw[20] |= byte(LinkFlagHasLinkTargetIDList)
	raw = append(raw, 0x06, 0x00, 0x04, 0x00, 0xAA, 0xBB, 0x00, 0x00) // outer size, one item, sentinel
	raw = append(raw, 0x00, 0x00, 0x00, 0x00)                        // ExtraData terminal block

	sl, err := Decode(bytes.NewReader(raw), nil)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if sl.LinkTargetIDList == nil || len(sl.LinkTargetIDList.IdList.Items) != 1 {
		t.Fatalf("LinkTargetIDList = %+v, want 1 item", sl.LinkTargetIDList)
	}

	var buf bytes.Buffer
	if err := sl.Encode(&buf); err != nil {
		t.Fatalf("Encode: %v", err)
	}
	if !bytes.Equal(buf.Bytes(), raw) {
		t.Fatalf("round-trip = %x, want %x", buf.Bytes(), raw)
	}
}

func TestDecodeRejectsTruncatedHeader(t *testing.T) {
	raw := minimalHeaderBytes()[:40]
	if _, err := Decode(bytes.NewReader(raw), nil); err == nil {
		t.Fatal("expected an error decoding a truncated header")
	}
}
