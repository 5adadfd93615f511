package lnk

// knownFolderDataBlockSize is the fixed total size of a
// KnownFolderDataBlock (MS-SHLLINK §2.5.7).
const knownFolderDataBlockSize = 0x1C

// KnownFolderDataBlock specifies the target is a known folder, named by its
// KNOWNFOLDERID, plus the offset of the corresponding item ID within the
// LinkTargetIDList (MS-SHLLINK §2.5.7).
type KnownFolderDataBlock struct {
	KnownFolderID    GUID   `json:"known_folder_id"`
	OffsetIntoIDList uint32 `json:"offset_into_id_list"`
}

func (KnownFolderDataBlock) Signature() uint32 { return sigKnownFolder }

func (rd *reader) readKnownFolderDataBlock(blockSize uint32) (ExtraBlock, error) {
	if blockSize != knownFolderDataBlockSize {
		return nil, parseErr(rd.offset(), "KnownFolderDataBlock: size 0x%X, want 0x%X", blockSize, knownFolderDataBlockSize)
	}
	var b KnownFolderDataBlock
	var err error
	if b.KnownFolderID, err = rd.readGUID(); err != nil {
		return nil, err
	}
	if b.OffsetIntoIDList, err = rd.readUint32(); err != nil {
		return nil, err
	}
	return b, nil
}

func (b KnownFolderDataBlock) encode(w *writer) error {
	w.writeBlockHeader(knownFolderDataBlockSize, sigKnownFolder)
	w.writeGUID(b.KnownFolderID)
	w.writeUint32(b.OffsetIntoIDList)
	return nil
}
