package lnk

// propertyStoreDataBlockMinSize is the smallest legal total size of a
// PropertyStoreDataBlock: the 8-byte size+signature prefix plus a single
// empty serialized property storage (MS-SHLLINK §2.5.9).
const propertyStoreDataBlockMinSize = 0x0C

// PropertyStoreDataBlock carries a serialized property storage (as defined
// by [MS-PROPSTORE]). Interpreting its contents is out of scope; the raw
// bytes are preserved verbatim for round-tripping.
type PropertyStoreDataBlock struct {
	Data []byte `json:"data"`
}

func (PropertyStoreDataBlock) Signature() uint32 { return sigPropertyStore }

func (rd *reader) readPropertyStoreDataBlock(blockSize uint32, remaining int64) (ExtraBlock, error) {
	if blockSize < propertyStoreDataBlockMinSize {
		return nil, parseErr(rd.offset(), "PropertyStoreDataBlock: size 0x%X smaller than minimum 0x%X", blockSize, propertyStoreDataBlockMinSize)
	}
	data, err := rd.readBytes(int(remaining))
	if err != nil {
		return nil, err
	}
	return PropertyStoreDataBlock{Data: data}, nil
}

func (b PropertyStoreDataBlock) encode(w *writer) error {
	w.writeBlockHeader(uint32(8+len(b.Data)), sigPropertyStore)
	w.writeBytes(b.Data)
	return nil
}
