package lnk

import "strconv"

// knownBits validates that raw only sets bits present in known, the shared
// core of every bitflag codec in this file. Reading rejects unknown bits
// outright rather than masking them off: an unknown bit could not be
// faithfully re-emitted, so silently dropping it would break round-trip
// fidelity and mask a non-conformant or corrupt producer.
func knownBits[T ~uint32](raw, known T) bool {
	return raw&^known == 0
}

// LinkFlags is the 32-bit bitset in the header that gates which optional
// substructures follow and selects the StringData string encoding.
// Bit layout per MS-SHLLINK §2.1.1.
type LinkFlags uint32

const (
	LinkFlagHasLinkTargetIDList LinkFlags = 1 << 0
	LinkFlagHasLinkInfo         LinkFlags = 1 << 1
	LinkFlagHasName             LinkFlags = 1 << 2
	LinkFlagHasRelativePath     LinkFlags = 1 << 3
	LinkFlagHasWorkingDir       LinkFlags = 1 << 4
	LinkFlagHasArguments        LinkFlags = 1 << 5
	LinkFlagHasIconLocation     LinkFlags = 1 << 6
	LinkFlagIsUnicode           LinkFlags = 1 << 7
	LinkFlagForceNoLinkInfo     LinkFlags = 1 << 8
	LinkFlagHasExpString        LinkFlags = 1 << 9
	LinkFlagRunInSeparateProcess LinkFlags = 1 << 10
	linkFlagUnused1             LinkFlags = 1 << 11
	LinkFlagHasDarwinID         LinkFlags = 1 << 12
	LinkFlagRunAsUser           LinkFlags = 1 << 13
	LinkFlagHasExpIcon          LinkFlags = 1 << 14
	LinkFlagNoPidlAlias         LinkFlags = 1 << 15
	linkFlagUnused2             LinkFlags = 1 << 16
	LinkFlagRunWithShimLayer    LinkFlags = 1 << 17
	LinkFlagForceNoLinkTrack    LinkFlags = 1 << 18
	LinkFlagEnableTargetMetadata LinkFlags = 1 << 19
	LinkFlagDisableLinkPathTracking    LinkFlags = 1 << 20
	LinkFlagDisableKnownFolderTracking LinkFlags = 1 << 21
	LinkFlagDisableKnownFolderAlias    LinkFlags = 1 << 22
	LinkFlagAllowLinkToLink            LinkFlags = 1 << 23
	LinkFlagUnaliasOnSave              LinkFlags = 1 << 24
	LinkFlagPreferEnvironmentPath      LinkFlags = 1 << 25
	LinkFlagKeepLocalIDListForUNCTarget LinkFlags = 1 << 26

	// knownLinkFlags is every named bit, plus the two reserved bits that
	// MUST be ignored (0x800 and 0x10000) which still count as "known"
	// since they must be tolerated, not rejected.
	knownLinkFlags = LinkFlagHasLinkTargetIDList | LinkFlagHasLinkInfo | LinkFlagHasName |
		LinkFlagHasRelativePath | LinkFlagHasWorkingDir | LinkFlagHasArguments |
		LinkFlagHasIconLocation | LinkFlagIsUnicode | LinkFlagForceNoLinkInfo |
		LinkFlagHasExpString | LinkFlagRunInSeparateProcess | linkFlagUnused1 |
		LinkFlagHasDarwinID | LinkFlagRunAsUser | LinkFlagHasExpIcon | LinkFlagNoPidlAlias |
		linkFlagUnused2 | LinkFlagRunWithShimLayer | LinkFlagForceNoLinkTrack |
		LinkFlagEnableTargetMetadata | LinkFlagDisableLinkPathTracking |
		LinkFlagDisableKnownFolderTracking | LinkFlagDisableKnownFolderAlias |
		LinkFlagAllowLinkToLink | LinkFlagUnaliasOnSave | LinkFlagPreferEnvironmentPath |
		LinkFlagKeepLocalIDListForUNCTarget
)

// Has reports whether every bit in bits is set.
func (f LinkFlags) Has(bits LinkFlags) bool {
	return f&bits == bits
}

// set returns f with bits set to present.
func (f LinkFlags) set(bits LinkFlags, present bool) LinkFlags {
	if present {
		return f | bits
	}
	return f &^ bits
}

// FileAttributeFlags mirrors the Windows FILE_ATTRIBUTE_* bitset. Two bits
// (0x8 and 0x40) are reserved and MUST be zero.
type FileAttributeFlags uint32

const (
	FileAttributeReadOnly     FileAttributeFlags = 1 << 0
	FileAttributeHidden       FileAttributeFlags = 1 << 1
	FileAttributeSystem       FileAttributeFlags = 1 << 2
	FileAttributeDirectory    FileAttributeFlags = 1 << 4
	FileAttributeArchive      FileAttributeFlags = 1 << 5
	FileAttributeNormal       FileAttributeFlags = 1 << 7
	FileAttributeTemporary    FileAttributeFlags = 1 << 8
	FileAttributeSparseFile   FileAttributeFlags = 1 << 9
	FileAttributeReparsePoint FileAttributeFlags = 1 << 10
	FileAttributeCompressed   FileAttributeFlags = 1 << 11
	FileAttributeOffline      FileAttributeFlags = 1 << 12
	FileAttributeNotContentIndexed FileAttributeFlags = 1 << 13
	FileAttributeEncrypted    FileAttributeFlags = 1 << 14

	knownFileAttributeFlags = FileAttributeReadOnly | FileAttributeHidden | FileAttributeSystem |
		FileAttributeDirectory | FileAttributeArchive | FileAttributeNormal |
		FileAttributeTemporary | FileAttributeSparseFile | FileAttributeReparsePoint |
		FileAttributeCompressed | FileAttributeOffline | FileAttributeNotContentIndexed |
		FileAttributeEncrypted

	// fileAttributeReserved are the two MUST-be-zero bits.
	fileAttributeReserved = FileAttributeFlags(0x8 | 0x40)
)

func (f FileAttributeFlags) Has(bits FileAttributeFlags) bool {
	return f&bits == bits
}

// ShowCommand is the closed enum controlling initial window presentation.
type ShowCommand uint32

const (
	ShowNormal      ShowCommand = 1
	ShowMaximized   ShowCommand = 3
	ShowMinNoActive ShowCommand = 7
)

func (s ShowCommand) valid() bool {
	switch s {
	case ShowNormal, ShowMaximized, ShowMinNoActive:
		return true
	default:
		return false
	}
}

// HotKey decomposes the header's 16-bit hotkey field into a virtual-key
// name and modifier bits. Raw is preserved verbatim for re-encoding;
// KeyName/Shift/Ctrl/Alt are derived, display-only accessors.
type HotKey struct {
	Raw uint16 `json:"raw"`
}

// LowByte is the virtual-key code: 0x30-0x39 and 0x41-0x5A are '0'-'9' and
// 'A'-'Z', 0x70-0x87 are F1-F24, 0x90 is NUM LOCK, 0x91 is SCROLL LOCK.
func (h HotKey) LowByte() byte { return byte(h.Raw & 0xFF) }

// HighByte carries the Shift/Ctrl/Alt modifier bits.
func (h HotKey) HighByte() byte { return byte(h.Raw >> 8) }

func (h HotKey) Shift() bool { return h.HighByte()&0x01 != 0 }
func (h HotKey) Ctrl() bool  { return h.HighByte()&0x02 != 0 }
func (h HotKey) Alt() bool   { return h.HighByte()&0x04 != 0 }

// KeyName renders the low byte as a human-readable key name, e.g. "F5",
// "NumLock", "ScrollLock", or the literal ASCII character for alphanumeric
// keys. Returns "" when the hotkey is unset (Raw == 0) or the low byte does
// not map to a known key.
func (h HotKey) KeyName() string {
	lb := h.LowByte()
	switch {
	case h.Raw == 0:
		return ""
	case lb >= 0x30 && lb <= 0x39, lb >= 0x41 && lb <= 0x5A:
		return string(lb)
	case lb >= 0x70 && lb <= 0x87:
		return "F" + strconv.Itoa(int(lb-0x6F))
	case lb == 0x90:
		return "NumLock"
	case lb == 0x91:
		return "ScrollLock"
	default:
		return ""
	}
}

func (rd *reader) readLinkFlags() (LinkFlags, error) {
	off := rd.offset()
	v, err := rd.readUint32()
	if err != nil {
		return 0, err
	}
	f := LinkFlags(v)
	if !knownBits(f, knownLinkFlags) {
		return 0, parseErr(rd.offset(), "LinkFlags: unknown bits set: 0x%X (read starting at 0x%X)", f&^knownLinkFlags, off)
	}
	return f, nil
}

func (w *writer) writeLinkFlags(f LinkFlags) {
	w.writeUint32(uint32(f))
}

func (rd *reader) readFileAttributeFlags() (FileAttributeFlags, error) {
	off := rd.offset()
	v, err := rd.readUint32()
	if err != nil {
		return 0, err
	}
	f := FileAttributeFlags(v)
	if !knownBits(f, knownFileAttributeFlags|fileAttributeReserved) {
		return 0, parseErr(rd.offset(), "FileAttributeFlags: unknown bits set: 0x%X (read starting at 0x%X)", f&^(knownFileAttributeFlags|fileAttributeReserved), off)
	}
	if f&fileAttributeReserved != 0 {
		return 0, parseErr(off, "FileAttributeFlags: reserved bits set: 0x%X", f&fileAttributeReserved)
	}
	return f, nil
}

func (w *writer) writeFileAttributeFlags(f FileAttributeFlags) {
	w.writeUint32(uint32(f))
}
