package lnk

// trackerDataBlockSize is the fixed total size of a TrackerDataBlock
// (MS-SHLLINK §2.5.10).
const trackerDataBlockSize = 0x60

// trackerDataLength is the value of the block's own internal Length field,
// which equals blockSize minus the 8-byte size+signature prefix.
const trackerDataLength = trackerDataBlockSize - 8

// TrackerDataBlock carries the distributed link tracking identifiers used
// by the NTFS object identifier tracking service (MS-SHLLINK §2.5.10).
type TrackerDataBlock struct {
	MachineID        string `json:"machine_id"`
	FileDroid        GUID   `json:"file_droid"`
	VolumeDroid      GUID   `json:"volume_droid"`
	FileDroidBirth   GUID   `json:"file_droid_birth"`
	VolumeDroidBirth GUID   `json:"volume_droid_birth"`
}

func (TrackerDataBlock) Signature() uint32 { return sigTracker }

func (rd *reader) readTrackerDataBlock(blockSize uint32) (ExtraBlock, error) {
	if blockSize != trackerDataBlockSize {
		return nil, parseErr(rd.offset(), "TrackerDataBlock: size 0x%X, want 0x%X", blockSize, trackerDataBlockSize)
	}
	length, err := rd.readUint32()
	if err != nil {
		return nil, err
	}
	if length != trackerDataLength {
		return nil, parseErr(rd.offset(), "TrackerDataBlock: length 0x%X, want 0x%X", length, trackerDataLength)
	}
	if _, err := rd.readUint32(); err != nil { // Version, must be 0 but not enforced
		return nil, err
	}
	machineIDRaw, err := rd.readFixedString(16, ansiEncoding(nil))
	if err != nil {
		return nil, err
	}
	var b TrackerDataBlock
	b.MachineID = machineIDRaw
	if b.FileDroid, err = rd.readGUID(); err != nil {
		return nil, err
	}
	if b.VolumeDroid, err = rd.readGUID(); err != nil {
		return nil, err
	}
	if b.FileDroidBirth, err = rd.readGUID(); err != nil {
		return nil, err
	}
	if b.VolumeDroidBirth, err = rd.readGUID(); err != nil {
		return nil, err
	}
	return b, nil
}

func (b TrackerDataBlock) encode(w *writer) error {
	w.writeBlockHeader(trackerDataBlockSize, sigTracker)
	w.writeUint32(trackerDataLength)
	w.writeUint32(0) // Version
	if err := w.writeFixedString(b.MachineID, 16, ansiEncoding(nil)); err != nil {
		return err
	}
	w.writeGUID(b.FileDroid)
	w.writeGUID(b.VolumeDroid)
	w.writeGUID(b.FileDroidBirth)
	w.writeGUID(b.VolumeDroidBirth)
	return nil
}
