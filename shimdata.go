package lnk

// shimDataBlockMinSize is the smallest legal total size of a ShimDataBlock
// (MS-SHLLINK §2.5.8).
const shimDataBlockMinSize = 0x88

// ShimDataBlock names a shim layer to apply when the target is run under
// the Application Compatibility Database (MS-SHLLINK §2.5.8). Unlike the
// other string-bearing blocks, LayerName fills the entire remainder of the
// block rather than occupying a fixed, spec-mandated byte count.
type ShimDataBlock struct {
	LayerName string `json:"layer_name"`
}

func (ShimDataBlock) Signature() uint32 { return sigShim }

func (rd *reader) readShimDataBlock(blockSize uint32, remaining int64) (ExtraBlock, error) {
	if blockSize < shimDataBlockMinSize {
		return nil, parseErr(rd.offset(), "ShimDataBlock: size 0x%X smaller than minimum 0x%X", blockSize, shimDataBlockMinSize)
	}
	name, err := rd.readFixedString(int(remaining), unicodeEncoding())
	if err != nil {
		return nil, err
	}
	return ShimDataBlock{LayerName: name}, nil
}

func (b ShimDataBlock) encode(w *writer) error {
	raw, err := unicodeEncoding().encode(b.LayerName)
	if err != nil {
		return err
	}
	if pad := (shimDataBlockMinSize - 8) - len(raw); pad > 0 {
		raw = append(raw, make([]byte, pad)...)
	}
	w.writeBlockHeader(uint32(8+len(raw)), sigShim)
	w.writeBytes(raw)
	return nil
}
