package lnk

// specialFolderDataBlockSize is the fixed total size of a
// SpecialFolderDataBlock (MS-SHLLINK §2.5.6).
const specialFolderDataBlockSize = 0x10

// SpecialFolderDataBlock specifies the target is a special folder, named by
// its CSIDL, plus the offset of the corresponding item ID within the
// LinkTargetIDList (MS-SHLLINK §2.5.6).
type SpecialFolderDataBlock struct {
	SpecialFolderID  uint32 `json:"special_folder_id"`
	OffsetIntoIDList uint32 `json:"offset_into_id_list"`
}

func (SpecialFolderDataBlock) Signature() uint32 { return sigSpecialFolder }

func (rd *reader) readSpecialFolderDataBlock(blockSize uint32) (ExtraBlock, error) {
	if blockSize != specialFolderDataBlockSize {
		return nil, parseErr(rd.offset(), "SpecialFolderDataBlock: size 0x%X, want 0x%X", blockSize, specialFolderDataBlockSize)
	}
	var b SpecialFolderDataBlock
	var err error
	if b.SpecialFolderID, err = rd.readUint32(); err != nil {
		return nil, err
	}
	if b.OffsetIntoIDList, err = rd.readUint32(); err != nil {
		return nil, err
	}
	return b, nil
}

func (b SpecialFolderDataBlock) encode(w *writer) error {
	w.writeBlockHeader(specialFolderDataBlockSize, sigSpecialFolder)
	w.writeUint32(b.SpecialFolderID)
	w.writeUint32(b.OffsetIntoIDList)
	return nil
}
