package lnk

// Extension block signatures (MS-SHLLINK §2.5), dispatched on after peeking
// the block_size/signature pair.
const (
	sigEnvironmentVariable    uint32 = 0xA0000001
	sigConsoleData            uint32 = 0xA0000002
	sigTracker                uint32 = 0xA0000003
	sigConsoleFEData          uint32 = 0xA0000004
	sigSpecialFolder          uint32 = 0xA0000005
	sigDarwin                 uint32 = 0xA0000006
	sigIconEnvironment        uint32 = 0xA0000007
	sigShim                   uint32 = 0xA0000008
	sigPropertyStore          uint32 = 0xA0000009
	sigKnownFolder            uint32 = 0xA000000B
	sigVistaAndAboveIDList    uint32 = 0xA000000C
)

// ExtraBlock is any of the eleven MS-SHLLINK extension block types. Every
// implementation knows its own signature and how to size and encode itself;
// writeExtraData never needs a type switch to lay out the wire bytes.
type ExtraBlock interface {
	Signature() uint32
	encode(w *writer) error
}

// ExtraData is the tagged-union chain of extension blocks, terminated by a
// block whose size is < 4 (MS-SHLLINK §2.5). Duplicate signatures within one
// chain are permitted and order-preserved; the format itself does not
// filter them, so neither does this reader.
type ExtraData struct {
	Blocks []ExtraBlock `json:"blocks"`
}

// readExtraData peeks the size, stops on the terminal block, otherwise
// peeks the signature and dispatches, and requires every block parser to
// consume exactly its declared block_size.
func (rd *reader) readExtraData(maxBlocks int) (ExtraData, error) {
	var ed ExtraData
	for {
		blockStart := rd.offset()
		blockSize, err := rd.readUint32()
		if err != nil {
			return ExtraData{}, err
		}
		if blockSize < 4 {
			// Terminal block: the 4 bytes just consumed are its entirety.
			return ed, nil
		}
		if maxBlocks >= 0 && len(ed.Blocks) >= maxBlocks {
			return ExtraData{}, parseErr(blockStart, "ExtraData: exceeded the maximum of %d blocks", maxBlocks)
		}

		sigOffset := rd.offset()
		signature, err := rd.readUint32()
		if err != nil {
			return ExtraData{}, err
		}

		remaining := int64(blockSize) - 8
		if remaining < 0 {
			return ExtraData{}, parseErr(sigOffset, "extension block size 0x%X is smaller than its own size+signature prefix", blockSize)
		}

		block, err := rd.readExtraBlockPayload(signature, blockSize, remaining)
		if err != nil {
			return ExtraData{}, err
		}
		if block == nil {
			return ExtraData{}, parseErr(sigOffset, "unknown extension block signature 0x%08X", signature)
		}

		consumed := rd.offset() - blockStart
		if consumed != int64(blockSize) {
			return ExtraData{}, parseErr(blockStart, "extension block 0x%08X declared size 0x%X but consumed 0x%X bytes", signature, blockSize, consumed)
		}

		ed.Blocks = append(ed.Blocks, block)
	}
}

// readExtraBlockPayload dispatches on signature and hands the concrete
// parser exactly remaining bytes of payload to consume (blockSize minus the
// already-read 8-byte size+signature prefix). Returns a nil block with a
// nil error for an unrecognized signature; the caller turns that into the
// "unknown signature" Parse error.
func (rd *reader) readExtraBlockPayload(signature, blockSize uint32, remaining int64) (ExtraBlock, error) {
	switch signature {
	case sigEnvironmentVariable:
		return rd.readEnvironmentVariableDataBlock(blockSize)
	case sigConsoleData:
		return rd.readConsoleDataBlock(blockSize)
	case sigTracker:
		return rd.readTrackerDataBlock(blockSize)
	case sigConsoleFEData:
		return rd.readConsoleFEDataBlock(blockSize)
	case sigSpecialFolder:
		return rd.readSpecialFolderDataBlock(blockSize)
	case sigDarwin:
		return rd.readDarwinDataBlock(blockSize)
	case sigIconEnvironment:
		return rd.readIconEnvironmentDataBlock(blockSize)
	case sigShim:
		return rd.readShimDataBlock(blockSize, remaining)
	case sigPropertyStore:
		return rd.readPropertyStoreDataBlock(blockSize, remaining)
	case sigKnownFolder:
		return rd.readKnownFolderDataBlock(blockSize)
	case sigVistaAndAboveIDList:
		return rd.readVistaAndAboveIDListDataBlock(blockSize, remaining)
	default:
		return nil, nil
	}
}

// writeExtraData emits every block in order followed by the 4-byte terminal
// block.
func (w *writer) writeExtraData(ed ExtraData) error {
	for _, block := range ed.Blocks {
		if err := block.encode(w); err != nil {
			return err
		}
	}
	w.writeUint32(0) // terminal block
	return nil
}

// writeBlockHeader writes the size+signature prefix that most block encoders
// start with; VistaAndAboveIDListDataBlock writes its own, since its size is
// only known after its IdList is written.
func (w *writer) writeBlockHeader(blockSize, signature uint32) {
	w.writeUint32(blockSize)
	w.writeUint32(signature)
}
