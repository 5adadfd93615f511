package lnk

import (
	"encoding/binary"
	"io"
)

// reader wraps an io.ReadSeeker with the little-endian primitive reads every
// substructure in this codec needs, and tracks the stream's current
// absolute position. Every read advances pos. A stream failure is returned
// as an ErrIo *Error wrapping the cause; it does not carry an offset.
type reader struct {
	r   io.ReadSeeker
	pos int64
}

func newReader(r io.ReadSeeker) (*reader, error) {
	pos, err := r.Seek(0, io.SeekCurrent)
	if err != nil {
		return nil, ioErr(err)
	}
	return &reader{r: r, pos: pos}, nil
}

// offset returns the current absolute stream position: a zero-width read
// used by LinkInfo to anchor its internal offsets against its own origin.
func (rd *reader) offset() int64 {
	return rd.pos
}

func (rd *reader) seekAbs(offset int64) error {
	n, err := rd.r.Seek(offset, io.SeekStart)
	if err != nil {
		return ioErr(err)
	}
	rd.pos = n
	return nil
}

func (rd *reader) readFull(buf []byte) error {
	n, err := io.ReadFull(rd.r, buf)
	rd.pos += int64(n)
	if err != nil {
		return ioErr(err)
	}
	return nil
}

func (rd *reader) readBytes(n int) ([]byte, error) {
	buf := make([]byte, n)
	if err := rd.readFull(buf); err != nil {
		return nil, err
	}
	return buf, nil
}

func (rd *reader) readUint8() (uint8, error) {
	var buf [1]byte
	if err := rd.readFull(buf[:]); err != nil {
		return 0, err
	}
	return buf[0], nil
}

func (rd *reader) readUint16() (uint16, error) {
	var buf [2]byte
	if err := rd.readFull(buf[:]); err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint16(buf[:]), nil
}

func (rd *reader) readUint32() (uint32, error) {
	var buf [4]byte
	if err := rd.readFull(buf[:]); err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint32(buf[:]), nil
}

func (rd *reader) readInt32() (int32, error) {
	v, err := rd.readUint32()
	return int32(v), err
}

func (rd *reader) readUint64() (uint64, error) {
	var buf [8]byte
	if err := rd.readFull(buf[:]); err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint64(buf[:]), nil
}

// writer accumulates encoded bytes in memory so offset-anchored
// substructures (LinkInfo's offset table) can be back-patched before a
// single sequential write reaches the caller's sink, without requiring the
// final sink itself to be seekable.
type writer struct {
	buf []byte
}

func (w *writer) offset() int64 {
	return int64(len(w.buf))
}

func (w *writer) writeBytes(b []byte) {
	w.buf = append(w.buf, b...)
}

func (w *writer) writeUint8(v uint8) {
	w.buf = append(w.buf, v)
}

func (w *writer) writeUint16(v uint16) {
	var buf [2]byte
	binary.LittleEndian.PutUint16(buf[:], v)
	w.writeBytes(buf[:])
}

func (w *writer) writeUint32(v uint32) {
	var buf [4]byte
	binary.LittleEndian.PutUint32(buf[:], v)
	w.writeBytes(buf[:])
}

func (w *writer) writeInt32(v int32) {
	w.writeUint32(uint32(v))
}

func (w *writer) writeUint64(v uint64) {
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], v)
	w.writeBytes(buf[:])
}

// patchUint32 overwrites the 4 bytes at offset with v. Used to back-patch a
// size or offset field that was reserved with a placeholder write before its
// true value was known.
func (w *writer) patchUint32(offset int64, v uint32) {
	binary.LittleEndian.PutUint32(w.buf[offset:offset+4], v)
}

// patchUint16 overwrites the 2 bytes at offset with v.
func (w *writer) patchUint16(offset int64, v uint16) {
	binary.LittleEndian.PutUint16(w.buf[offset:offset+2], v)
}

func (w *writer) bytes() []byte {
	return w.buf
}
