package lnk

// VistaAndAboveIDListDataBlock carries an alternate IDList for target
// resolution on Windows Vista and later, stored as a complete embedded
// IDList rather than a single ItemID (MS-SHLLINK §2.5.11).
type VistaAndAboveIDListDataBlock struct {
	IDList IdList `json:"id_list"`
}

func (VistaAndAboveIDListDataBlock) Signature() uint32 { return sigVistaAndAboveIDList }

func (rd *reader) readVistaAndAboveIDListDataBlock(blockSize uint32, remaining int64) (ExtraBlock, error) {
	if blockSize < 0x0A {
		return nil, parseErr(rd.offset(), "VistaAndAboveIDListDataBlock: size 0x%X smaller than minimum 0x0A", blockSize)
	}
	list, err := rd.readIdList(remaining)
	if err != nil {
		return nil, err
	}
	return VistaAndAboveIDListDataBlock{IDList: list}, nil
}

func (b VistaAndAboveIDListDataBlock) encode(w *writer) error {
	sizeOffset := w.offset()
	w.writeUint32(0) // patched below
	w.writeUint32(sigVistaAndAboveIDList)
	w.writeIdList(b.IDList)
	blockSize := uint32(w.offset() - sizeOffset)
	w.patchUint32(sizeOffset, blockSize)
	return nil
}
