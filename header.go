package lnk

// headerSize is the fixed, mandatory value of the header's leading
// header_size field. Any other value means the input is not a shell link at
// all.
const headerSize = 0x0000004C

// Header is the fixed 76-byte ShellLinkHeader prologue (MS-SHLLINK §2.1).
type Header struct {
	LinkFlags      LinkFlags          `json:"link_flags"`
	FileAttributes FileAttributeFlags `json:"file_attributes"`
	CreationTime   FileTime           `json:"creation_time"`
	AccessTime     FileTime           `json:"access_time"`
	WriteTime      FileTime           `json:"write_time"`
	FileSize       uint32             `json:"file_size"`
	IconIndex      int32              `json:"icon_index"`
	ShowCommand    ShowCommand        `json:"show_command"`
	HotKey         HotKey             `json:"hot_key"`
}

// DefaultHeader returns the header a freshly constructed ShellLink starts
// from: IS_UNICODE set, FILE_ATTRIBUTE_NORMAL, every timestamp unset,
// ShowNormal, no hotkey.
func DefaultHeader() Header {
	return Header{
		LinkFlags:      LinkFlagIsUnicode,
		FileAttributes: FileAttributeNormal,
		ShowCommand:    ShowNormal,
	}
}

// SetFlag sets (present) or clears (!present) the given LinkFlags bit,
// leaving the rest untouched.
func (h *Header) SetFlag(bit LinkFlags, present bool) {
	h.LinkFlags = h.LinkFlags.set(bit, present)
}

func (rd *reader) readHeader() (Header, error) {
	var h Header

	sizeOffset := rd.offset()
	size, err := rd.readUint32()
	if err != nil {
		return Header{}, err
	}
	if size != headerSize {
		return Header{}, notAShellLink(sizeOffset, "header size is 0x%X, want 0x%X", size, headerSize)
	}

	clsidOffset := rd.offset()
	clsid, err := rd.readGUID()
	if err != nil {
		return Header{}, err
	}
	if clsid != linkCLSID {
		return Header{}, notAShellLink(clsidOffset, "link_clsid is %s, want %s", clsid, linkCLSID)
	}

	if h.LinkFlags, err = rd.readLinkFlags(); err != nil {
		return Header{}, err
	}
	if h.FileAttributes, err = rd.readFileAttributeFlags(); err != nil {
		return Header{}, err
	}
	if h.CreationTime, err = rd.readFileTime(); err != nil {
		return Header{}, err
	}
	if h.AccessTime, err = rd.readFileTime(); err != nil {
		return Header{}, err
	}
	if h.WriteTime, err = rd.readFileTime(); err != nil {
		return Header{}, err
	}
	if h.FileSize, err = rd.readUint32(); err != nil {
		return Header{}, err
	}
	if h.IconIndex, err = rd.readInt32(); err != nil {
		return Header{}, err
	}

	showOffset := rd.offset()
	showRaw, err := rd.readUint32()
	if err != nil {
		return Header{}, err
	}
	h.ShowCommand = ShowCommand(showRaw)
	if !h.ShowCommand.valid() {
		return Header{}, parseErr(showOffset, "show_command is %d, want one of {1,3,7}", showRaw)
	}

	hotKeyRaw, err := rd.readUint16()
	if err != nil {
		return Header{}, err
	}
	h.HotKey = HotKey{Raw: hotKeyRaw}

	reserved1Offset := rd.offset()
	reserved1, err := rd.readUint16()
	if err != nil {
		return Header{}, err
	}
	if reserved1 != 0 {
		return Header{}, parseErr(reserved1Offset, "reserved1 is 0x%X, must be 0", reserved1)
	}

	reserved2Offset := rd.offset()
	reserved2, err := rd.readUint32()
	if err != nil {
		return Header{}, err
	}
	if reserved2 != 0 {
		return Header{}, parseErr(reserved2Offset, "reserved2 is 0x%X, must be 0", reserved2)
	}

	reserved3Offset := rd.offset()
	reserved3, err := rd.readUint32()
	if err != nil {
		return Header{}, err
	}
	if reserved3 != 0 {
		return Header{}, parseErr(reserved3Offset, "reserved3 is 0x%X, must be 0", reserved3)
	}

	return h, nil
}

func (w *writer) writeHeader(h Header) {
	w.writeUint32(headerSize)
	w.writeGUID(linkCLSID)
	w.writeLinkFlags(h.LinkFlags)
	w.writeFileAttributeFlags(h.FileAttributes)
	w.writeFileTime(h.CreationTime)
	w.writeFileTime(h.AccessTime)
	w.writeFileTime(h.WriteTime)
	w.writeUint32(h.FileSize)
	w.writeInt32(h.IconIndex)
	w.writeUint32(uint32(h.ShowCommand))
	w.writeUint16(h.HotKey.Raw)
	w.writeUint16(0) // reserved1
	w.writeUint32(0) // reserved2
	w.writeUint32(0) // reserved3
}
