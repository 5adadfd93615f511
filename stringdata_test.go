package lnk

import (
	"bytes"
	"testing"
)

func TestStringDataUnicodeNameScenario(t *testing.T) {
	// u16 count=2, "H","i" as UTF-16LE.
	raw := []byte{0x02, 0x00, 0x48, 0x00, 0x69, 0x00}
	flags := LinkFlagIsUnicode | LinkFlagHasName

	rd, err := newReader(bytes.NewReader(raw))
	if err != nil {
		t.Fatalf("newReader: %v", err)
	}
	sd, err := rd.readStringData(flags, nil)
	if err != nil {
		t.Fatalf("readStringData: %v", err)
	}
	if sd.Name == nil || *sd.Name != "Hi" {
		t.Fatalf("Name = %v, want \"Hi\"", sd.Name)
	}
	if sd.RelativePath != nil || sd.WorkingDir != nil || sd.Arguments != nil || sd.IconLocation != nil {
		t.Fatal("only Name should be present")
	}

	w := &writer{}
	if err := w.writeStringData(sd, flags, nil); err != nil {
		t.Fatalf("writeStringData: %v", err)
	}
	if !bytes.Equal(w.bytes(), raw) {
		t.Fatalf("writeStringData round-trip = %x, want %x", w.bytes(), raw)
	}
}

func TestStringDataPresencePermutations(t *testing.T) {
	slotFlags := []LinkFlags{LinkFlagHasName, LinkFlagHasRelativePath, LinkFlagHasWorkingDir, LinkFlagHasArguments, LinkFlagHasIconLocation}

	for mask := 0; mask < 1<<len(slotFlags); mask++ {
		var flags LinkFlags
		for i, f := range slotFlags {
			if mask&(1<<i) != 0 {
				flags |= f
			}
		}

		sd := StringData{}
		for i, f := range slotFlags {
			if mask&(1<<i) == 0 {
				continue
			}
			v := "value"
			switch f {
			case LinkFlagHasName:
				sd.Name = &v
			case LinkFlagHasRelativePath:
				sd.RelativePath = &v
			case LinkFlagHasWorkingDir:
				sd.WorkingDir = &v
			case LinkFlagHasArguments:
				sd.Arguments = &v
			case LinkFlagHasIconLocation:
				sd.IconLocation = &v
			}
			_ = i
		}

		w := &writer{}
		if err := w.writeStringData(sd, flags, nil); err != nil {
			t.Fatalf("writeStringData(mask=%d): %v", mask, err)
		}

		rd, err := newReader(bytes.NewReader(w.bytes()))
		if err != nil {
			t.Fatalf("newReader: %v", err)
		}
		got, err := rd.readStringData(flags, nil)
		if err != nil {
			t.Fatalf("readStringData(mask=%d): %v", mask, err)
		}

		gotFlags := got.flagsForPresence(0)
		wantFlags := sd.flagsForPresence(0)
		if gotFlags != wantFlags {
			t.Fatalf("mask=%d: presence flags = %v, want %v", mask, gotFlags, wantFlags)
		}
	}
}

func TestStringDataEncodingSwitch(t *testing.T) {
	v := "value"
	sd := StringData{Name: &v}

	unicodeWriter := &writer{}
	if err := unicodeWriter.writeStringData(sd, LinkFlagIsUnicode, nil); err != nil {
		t.Fatalf("writeStringData (unicode): %v", err)
	}

	ansiWriter := &writer{}
	if err := ansiWriter.writeStringData(sd, 0, nil); err != nil {
		t.Fatalf("writeStringData (ansi): %v", err)
	}

	if len(unicodeWriter.bytes()) == len(ansiWriter.bytes()) {
		t.Fatal("UTF-16LE and ANSI encodings of the same string should differ in length")
	}
}

func TestFlagsForPresence(t *testing.T) {
	v := "x"
	sd := StringData{Name: &v, Arguments: &v}
	flags := sd.flagsForPresence(LinkFlagIsUnicode)
	if !flags.Has(LinkFlagHasName) || !flags.Has(LinkFlagHasArguments) {
		t.Fatal("flagsForPresence should set bits for present slots")
	}
	if flags.Has(LinkFlagHasRelativePath) || flags.Has(LinkFlagHasWorkingDir) || flags.Has(LinkFlagHasIconLocation) {
		t.Fatal("flagsForPresence should not set bits for absent slots")
	}
	if !flags.Has(LinkFlagIsUnicode) {
		t.Fatal("flagsForPresence should leave unrelated bits untouched")
	}
}
