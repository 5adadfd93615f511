package lnk

// consoleFEDataBlockSize is the fixed total size of a ConsoleFEDataBlock
// (MS-SHLLINK §2.5.2).
const consoleFEDataBlockSize = 0x0C

// ConsoleFEDataBlock specifies the code page used to display far-east
// characters in a console window (MS-SHLLINK §2.5.2).
type ConsoleFEDataBlock struct {
	CodePage uint32 `json:"code_page"`
}

func (ConsoleFEDataBlock) Signature() uint32 { return sigConsoleFEData }

func (rd *reader) readConsoleFEDataBlock(blockSize uint32) (ExtraBlock, error) {
	if blockSize != consoleFEDataBlockSize {
		return nil, parseErr(rd.offset(), "ConsoleFEDataBlock: size 0x%X, want 0x%X", blockSize, consoleFEDataBlockSize)
	}
	codePage, err := rd.readUint32()
	if err != nil {
		return nil, err
	}
	return ConsoleFEDataBlock{CodePage: codePage}, nil
}

func (b ConsoleFEDataBlock) encode(w *writer) error {
	w.writeBlockHeader(consoleFEDataBlockSize, sigConsoleFEData)
	w.writeUint32(b.CodePage)
	return nil
}
