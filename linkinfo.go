package lnk

// linkInfoFlags gates which of the two target descriptions LinkInfo carries.
// The two are not mutually exclusive.
type linkInfoFlags uint32

const (
	linkInfoVolumeIDAndLocalBasePath               linkInfoFlags = 1 << 0
	linkInfoCommonNetworkRelativeLinkAndPathSuffix linkInfoFlags = 1 << 1
)

// unicodeMirrorHeaderSize is the minimum link_info_header_size at and above
// which the two extra UTF-16LE mirror offsets are present.
const unicodeMirrorHeaderSize = 0x24

// VolumeID describes the volume the link target was stored on.
type VolumeID struct {
	DriveType         uint32 `json:"drive_type"`
	DriveSerialNumber uint32 `json:"drive_serial_number"`
	VolumeLabel       string `json:"volume_label"`
}

// CommonNetworkRelativeLink describes a UNC-reachable target when the link
// was created while the target lived on a network share.
type CommonNetworkRelativeLink struct {
	Flags               uint32 `json:"flags"`
	NetName             string `json:"net_name"`
	DeviceName          string `json:"device_name"`
	NetworkProviderType uint32 `json:"network_provider_type"`
}

// LinkInfo specifies how to resolve the link target if it isn't found in
// its original location (MS-SHLLINK §2.3).
type LinkInfo struct {
	HeaderSize int `json:"header_size"`

	VolumeID      *VolumeID `json:"volume_id,omitempty"`
	LocalBasePath string    `json:"local_base_path,omitempty"`

	CommonNetworkRelativeLink *CommonNetworkRelativeLink `json:"common_network_relative_link,omitempty"`
	CommonPathSuffix          string                     `json:"common_path_suffix"`

	// LocalBasePathUnicode and CommonPathSuffixUnicode are the UTF-16LE
	// mirrors present when HeaderSize >= unicodeMirrorHeaderSize. Empty
	// means absent, not "mirror of an empty string" — absence is
	// distinguished by HeaderSize, the same way presence is tracked
	// elsewhere by flags rather than by a zero value.
	LocalBasePathUnicode    string `json:"local_base_path_unicode,omitempty"`
	CommonPathSuffixUnicode string `json:"common_path_suffix_unicode,omitempty"`
}

// flags reconstructs linkInfoFlags from field presence, the way the whole
// codec computes presence bits from content rather than trusting a stored
// flag at encode time.
func (li LinkInfo) flags() linkInfoFlags {
	var f linkInfoFlags
	if li.VolumeID != nil {
		f |= linkInfoVolumeIDAndLocalBasePath
	}
	if li.CommonNetworkRelativeLink != nil {
		f |= linkInfoCommonNetworkRelativeLinkAndPathSuffix
	}
	return f
}

// TargetPath composes the full target path: base path plus an optional
// separator plus the common path suffix, preferring the UTF-16 mirror over
// the code-page strings when present.
func (li LinkInfo) TargetPath() string {
	base := li.LocalBasePath
	if li.LocalBasePathUnicode != "" {
		base = li.LocalBasePathUnicode
	}
	suffix := li.CommonPathSuffix
	if li.CommonPathSuffixUnicode != "" {
		suffix = li.CommonPathSuffixUnicode
	}
	if base == "" {
		return suffix
	}
	if suffix == "" {
		return base
	}
	if base[len(base)-1] == '\\' {
		return base + suffix
	}
	return base + "\\" + suffix
}

// readLinkInfo reads a LinkInfo anchored at the reader's current position:
// every offset inside it is relative to that origin, so the reader seeks
// back to origin+offset for each referenced payload.
func (rd *reader) readLinkInfo(codePage encodingT) (LinkInfo, error) {
	origin := rd.offset()

	linkInfoSize, err := rd.readUint32()
	if err != nil {
		return LinkInfo{}, err
	}
	end := origin + int64(linkInfoSize)

	headerSizeOffset := rd.offset()
	headerSizeRaw, err := rd.readUint32()
	if err != nil {
		return LinkInfo{}, err
	}
	if headerSizeRaw < 0x1C {
		return LinkInfo{}, parseErr(headerSizeOffset, "link_info_header_size is 0x%X, want >= 0x1C", headerSizeRaw)
	}

	flagsRaw, err := rd.readUint32()
	if err != nil {
		return LinkInfo{}, err
	}
	flags := linkInfoFlags(flagsRaw)

	volumeIDOffset, err := rd.readUint32()
	if err != nil {
		return LinkInfo{}, err
	}
	localBasePathOffset, err := rd.readUint32()
	if err != nil {
		return LinkInfo{}, err
	}
	commonNetworkRelativeLinkOffset, err := rd.readUint32()
	if err != nil {
		return LinkInfo{}, err
	}
	commonPathSuffixOffset, err := rd.readUint32()
	if err != nil {
		return LinkInfo{}, err
	}

	var localBasePathUnicodeOffset, commonPathSuffixUnicodeOffset uint32
	hasUnicodeMirrors := headerSizeRaw >= unicodeMirrorHeaderSize
	if hasUnicodeMirrors {
		if localBasePathUnicodeOffset, err = rd.readUint32(); err != nil {
			return LinkInfo{}, err
		}
		if commonPathSuffixUnicodeOffset, err = rd.readUint32(); err != nil {
			return LinkInfo{}, err
		}
	}

	li := LinkInfo{HeaderSize: int(headerSizeRaw)}

	if flags&linkInfoVolumeIDAndLocalBasePath != 0 {
		if volumeIDOffset == 0 || localBasePathOffset == 0 {
			return LinkInfo{}, parseErr(headerSizeOffset, "LinkInfo: VolumeIDAndLocalBasePath set but an offset is zero")
		}
		if err := rd.seekAbs(origin + int64(volumeIDOffset)); err != nil {
			return LinkInfo{}, err
		}
		vol, err := rd.readVolumeID(codePage)
		if err != nil {
			return LinkInfo{}, err
		}
		li.VolumeID = &vol

		if err := rd.seekAbs(origin + int64(localBasePathOffset)); err != nil {
			return LinkInfo{}, err
		}
		path, err := rd.readNullTerminatedString(ansiEncoding(codePage))
		if err != nil {
			return LinkInfo{}, err
		}
		li.LocalBasePath = path

		if hasUnicodeMirrors && localBasePathUnicodeOffset != 0 {
			if err := rd.seekAbs(origin + int64(localBasePathUnicodeOffset)); err != nil {
				return LinkInfo{}, err
			}
			path, err := rd.readNullTerminatedString(unicodeEncoding())
			if err != nil {
				return LinkInfo{}, err
			}
			li.LocalBasePathUnicode = path
		}
	}

	if flags&linkInfoCommonNetworkRelativeLinkAndPathSuffix != 0 {
		if commonNetworkRelativeLinkOffset == 0 {
			return LinkInfo{}, parseErr(headerSizeOffset, "LinkInfo: CommonNetworkRelativeLinkAndPathSuffix set but its offset is zero")
		}
		if err := rd.seekAbs(origin + int64(commonNetworkRelativeLinkOffset)); err != nil {
			return LinkInfo{}, err
		}
		cnrl, err := rd.readCommonNetworkRelativeLink(codePage)
		if err != nil {
			return LinkInfo{}, err
		}
		li.CommonNetworkRelativeLink = &cnrl
	}

	if commonPathSuffixOffset != 0 {
		if err := rd.seekAbs(origin + int64(commonPathSuffixOffset)); err != nil {
			return LinkInfo{}, err
		}
		suffix, err := rd.readNullTerminatedString(ansiEncoding(codePage))
		if err != nil {
			return LinkInfo{}, err
		}
		li.CommonPathSuffix = suffix
	}
	if hasUnicodeMirrors && commonPathSuffixUnicodeOffset != 0 {
		if err := rd.seekAbs(origin + int64(commonPathSuffixUnicodeOffset)); err != nil {
			return LinkInfo{}, err
		}
		suffix, err := rd.readNullTerminatedString(unicodeEncoding())
		if err != nil {
			return LinkInfo{}, err
		}
		li.CommonPathSuffixUnicode = suffix
	}

	return li, rd.seekAbs(end)
}

func (rd *reader) readVolumeID(codePage encodingT) (VolumeID, error) {
	origin := rd.offset()
	volumeIDSize, err := rd.readUint32()
	if err != nil {
		return VolumeID{}, err
	}
	end := origin + int64(volumeIDSize)

	var v VolumeID
	if v.DriveType, err = rd.readUint32(); err != nil {
		return VolumeID{}, err
	}
	if v.DriveSerialNumber, err = rd.readUint32(); err != nil {
		return VolumeID{}, err
	}
	volumeLabelOffset, err := rd.readUint32()
	if err != nil {
		return VolumeID{}, err
	}

	if volumeLabelOffset == 0x14 {
		// Unicode volume label: a u32 offset to a UTF-16LE NUL-terminated
		// string follows instead of the label being inline.
		unicodeOffset, err := rd.readUint32()
		if err != nil {
			return VolumeID{}, err
		}
		if err := rd.seekAbs(origin + int64(unicodeOffset)); err != nil {
			return VolumeID{}, err
		}
		label, err := rd.readNullTerminatedString(unicodeEncoding())
		if err != nil {
			return VolumeID{}, err
		}
		v.VolumeLabel = label
	} else {
		if err := rd.seekAbs(origin + int64(volumeLabelOffset)); err != nil {
			return VolumeID{}, err
		}
		label, err := rd.readNullTerminatedString(ansiEncoding(codePage))
		if err != nil {
			return VolumeID{}, err
		}
		v.VolumeLabel = label
	}

	return v, rd.seekAbs(end)
}

func (rd *reader) readCommonNetworkRelativeLink(codePage encodingT) (CommonNetworkRelativeLink, error) {
	origin := rd.offset()
	size, err := rd.readUint32()
	if err != nil {
		return CommonNetworkRelativeLink{}, err
	}
	end := origin + int64(size)

	var c CommonNetworkRelativeLink
	if c.Flags, err = rd.readUint32(); err != nil {
		return CommonNetworkRelativeLink{}, err
	}
	netNameOffset, err := rd.readUint32()
	if err != nil {
		return CommonNetworkRelativeLink{}, err
	}
	deviceNameOffset, err := rd.readUint32()
	if err != nil {
		return CommonNetworkRelativeLink{}, err
	}
	if c.NetworkProviderType, err = rd.readUint32(); err != nil {
		return CommonNetworkRelativeLink{}, err
	}

	if netNameOffset != 0 {
		if err := rd.seekAbs(origin + int64(netNameOffset)); err != nil {
			return CommonNetworkRelativeLink{}, err
		}
		name, err := rd.readNullTerminatedString(ansiEncoding(codePage))
		if err != nil {
			return CommonNetworkRelativeLink{}, err
		}
		c.NetName = name
	}
	if deviceNameOffset != 0 {
		if err := rd.seekAbs(origin + int64(deviceNameOffset)); err != nil {
			return CommonNetworkRelativeLink{}, err
		}
		name, err := rd.readNullTerminatedString(ansiEncoding(codePage))
		if err != nil {
			return CommonNetworkRelativeLink{}, err
		}
		c.DeviceName = name
	}

	return c, rd.seekAbs(end)
}

// writeLinkInfo lays out the fixed prologue with placeholder offsets, writes
// every payload in volume-id / local-base-path / common-network-link /
// common-path-suffix / unicode-mirrors order, then back-patches the offset
// table.
func (w *writer) writeLinkInfo(li LinkInfo, codePage encodingT) error {
	// The format stores a local base path only together with a VolumeID, so
	// a base path without one is written alongside an empty VolumeID.
	if li.VolumeID == nil && li.LocalBasePath != "" {
		li.VolumeID = &VolumeID{}
	}

	origin := w.offset()

	sizeOffset := w.offset()
	w.writeUint32(0) // link_info_size, patched below

	headerSize := 0x1C
	if li.LocalBasePathUnicode != "" || li.CommonPathSuffixUnicode != "" {
		headerSize = unicodeMirrorHeaderSize
	}
	w.writeUint32(uint32(headerSize))
	w.writeUint32(uint32(li.flags()))

	volumeIDOffsetField := w.offset()
	w.writeUint32(0)
	localBasePathOffsetField := w.offset()
	w.writeUint32(0)
	commonNetworkRelativeLinkOffsetField := w.offset()
	w.writeUint32(0)
	commonPathSuffixOffsetField := w.offset()
	w.writeUint32(0)

	var localBasePathUnicodeOffsetField, commonPathSuffixUnicodeOffsetField int64
	if headerSize >= unicodeMirrorHeaderSize {
		localBasePathUnicodeOffsetField = w.offset()
		w.writeUint32(0)
		commonPathSuffixUnicodeOffsetField = w.offset()
		w.writeUint32(0)
	}

	patch := func(fieldOffset int64) {
		w.patchUint32(fieldOffset, uint32(w.offset()-origin))
	}

	if li.VolumeID != nil {
		patch(volumeIDOffsetField)
		if err := w.writeVolumeID(*li.VolumeID); err != nil {
			return err
		}

		patch(localBasePathOffsetField)
		if err := w.writeNullTerminatedString(li.LocalBasePath, ansiEncoding(codePage)); err != nil {
			return err
		}
	}

	if li.CommonNetworkRelativeLink != nil {
		patch(commonNetworkRelativeLinkOffsetField)
		if err := w.writeCommonNetworkRelativeLink(*li.CommonNetworkRelativeLink, codePage); err != nil {
			return err
		}
	}

	patch(commonPathSuffixOffsetField)
	if err := w.writeNullTerminatedString(li.CommonPathSuffix, ansiEncoding(codePage)); err != nil {
		return err
	}

	if headerSize >= unicodeMirrorHeaderSize {
		if li.LocalBasePathUnicode != "" {
			patch(localBasePathUnicodeOffsetField)
			if err := w.writeNullTerminatedString(li.LocalBasePathUnicode, unicodeEncoding()); err != nil {
				return err
			}
		}
		patch(commonPathSuffixUnicodeOffsetField)
		if err := w.writeNullTerminatedString(li.CommonPathSuffixUnicode, unicodeEncoding()); err != nil {
			return err
		}
	}

	w.patchUint32(sizeOffset, uint32(w.offset()-origin))
	return nil
}

func (w *writer) writeVolumeID(v VolumeID) error {
	origin := w.offset()
	sizeOffset := w.offset()
	w.writeUint32(0)
	w.writeUint32(v.DriveType)
	w.writeUint32(v.DriveSerialNumber)
	labelOffsetField := w.offset()
	w.writeUint32(0)
	w.patchUint32(labelOffsetField, uint32(w.offset()-origin))
	if err := w.writeNullTerminatedString(v.VolumeLabel, ansiEncoding(nil)); err != nil {
		return err
	}
	w.patchUint32(sizeOffset, uint32(w.offset()-origin))
	return nil
}

func (w *writer) writeCommonNetworkRelativeLink(c CommonNetworkRelativeLink, codePage encodingT) error {
	origin := w.offset()
	sizeOffset := w.offset()
	w.writeUint32(0)
	w.writeUint32(c.Flags)
	netNameOffsetField := w.offset()
	w.writeUint32(0)
	deviceNameOffsetField := w.offset()
	w.writeUint32(0)
	w.writeUint32(c.NetworkProviderType)

	w.patchUint32(netNameOffsetField, uint32(w.offset()-origin))
	if err := w.writeNullTerminatedString(c.NetName, ansiEncoding(codePage)); err != nil {
		return err
	}

	if c.DeviceName != "" {
		w.patchUint32(deviceNameOffsetField, uint32(w.offset()-origin))
		if err := w.writeNullTerminatedString(c.DeviceName, ansiEncoding(codePage)); err != nil {
			return err
		}
	}

	w.patchUint32(sizeOffset, uint32(w.offset()-origin))
	return nil
}
