package lnk

import (
	"encoding/binary"
	"fmt"
)

// GUID is a 128-bit identifier decomposed into its four canonical fields.
// Microsoft's "little-endian" wire serialization (the default everywhere in
// this format: header CLSID, Tracker/KnownFolder GUIDs) byte-swaps Data1,
// Data2, and Data3 relative to how a GUID literal is written; Data4 is
// always eight raw bytes either way. The "big-endian" serialization writes
// all four fields as-is, with no swap.
type GUID struct {
	Data1 uint32  `json:"data1"`
	Data2 uint16  `json:"data2"`
	Data3 uint16  `json:"data3"`
	Data4 [8]byte `json:"data4"`
}

// String renders the GUID in canonical 8-4-4-4-12 hex form.
func (g GUID) String() string {
	return fmt.Sprintf("%08x-%04x-%04x-%02x%02x-%02x%02x%02x%02x%02x%02x",
		g.Data1, g.Data2, g.Data3,
		g.Data4[0], g.Data4[1], g.Data4[2], g.Data4[3],
		g.Data4[4], g.Data4[5], g.Data4[6], g.Data4[7])
}

// linkCLSID is the fixed class identifier every well-formed ShellLinkHeader
// carries (MS-SHLLINK §2.1): 00021401-0000-0000-C000-000000000046.
var linkCLSID = GUID{
	Data1: 0x00021401,
	Data2: 0x0000,
	Data3: 0x0000,
	Data4: [8]byte{0xC0, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x46},
}

func decodeGUIDLE(b []byte) GUID {
	var g GUID
	g.Data1 = binary.LittleEndian.Uint32(b[0:4])
	g.Data2 = binary.LittleEndian.Uint16(b[4:6])
	g.Data3 = binary.LittleEndian.Uint16(b[6:8])
	copy(g.Data4[:], b[8:16])
	return g
}

func encodeGUIDLE(g GUID) [16]byte {
	var b [16]byte
	binary.LittleEndian.PutUint32(b[0:4], g.Data1)
	binary.LittleEndian.PutUint16(b[4:6], g.Data2)
	binary.LittleEndian.PutUint16(b[6:8], g.Data3)
	copy(b[8:16], g.Data4[:])
	return b
}

func decodeGUIDBE(b []byte) GUID {
	var g GUID
	g.Data1 = binary.BigEndian.Uint32(b[0:4])
	g.Data2 = binary.BigEndian.Uint16(b[4:6])
	g.Data3 = binary.BigEndian.Uint16(b[6:8])
	copy(g.Data4[:], b[8:16])
	return g
}

func encodeGUIDBE(g GUID) [16]byte {
	var b [16]byte
	binary.BigEndian.PutUint32(b[0:4], g.Data1)
	binary.BigEndian.PutUint16(b[4:6], g.Data2)
	binary.BigEndian.PutUint16(b[6:8], g.Data3)
	copy(b[8:16], g.Data4[:])
	return b
}

// readGUID reads 16 raw bytes and decodes them as a little-endian GUID, the
// default and only mode this codec's substructures use on the wire.
func (rd *reader) readGUID() (GUID, error) {
	b, err := rd.readBytes(16)
	if err != nil {
		return GUID{}, err
	}
	return decodeGUIDLE(b), nil
}

func (w *writer) writeGUID(g GUID) {
	b := encodeGUIDLE(g)
	w.writeBytes(b[:])
}
