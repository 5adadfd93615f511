package lnk

import (
	"bytes"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"
)

// encodingT is a short alias for golang.org/x/text's Encoding interface,
// used throughout this package's unexported signatures to keep line lengths
// in check.
type encodingT = encoding.Encoding

// DefaultCodePage is the single-byte encoding used for ANSI strings when a
// caller does not supply one explicitly. Windows-1252 is what the Windows
// shell itself defaults to on US/Western-European systems.
var DefaultCodePage encoding.Encoding = charmap.Windows1252

var utf16LE = unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM)

// stringEncoding is the single capability every string codec in this file
// routes through, with its two operational modes. Selecting UTF-16LE vs a
// code page happens once, at the call site (IS_UNICODE for StringData, a
// fixed choice per extension block), never inside the low-level codecs
// themselves.
type stringEncoding struct {
	unicode  bool
	codePage encoding.Encoding
}

func ansiEncoding(codePage encoding.Encoding) stringEncoding {
	if codePage == nil {
		codePage = DefaultCodePage
	}
	return stringEncoding{unicode: false, codePage: codePage}
}

func unicodeEncoding() stringEncoding {
	return stringEncoding{unicode: true}
}

func encodingFor(isUnicode bool, codePage encoding.Encoding) stringEncoding {
	if isUnicode {
		return unicodeEncoding()
	}
	return ansiEncoding(codePage)
}

func (e stringEncoding) decode(b []byte) (string, error) {
	if e.unicode {
		s, err := utf16LE.NewDecoder().Bytes(b)
		if err != nil {
			return "", err
		}
		return string(s), nil
	}
	s, err := e.codePage.NewDecoder().Bytes(b)
	if err != nil {
		return "", err
	}
	return string(s), nil
}

func (e stringEncoding) encode(s string) ([]byte, error) {
	if e.unicode {
		return utf16LE.NewEncoder().Bytes([]byte(s))
	}
	return e.codePage.NewEncoder().Bytes([]byte(s))
}

// unitSize is the width of one character unit: 1 byte for a code page, 2
// bytes (one UTF-16 code unit) for Unicode. SizedString's count field and
// NullTerminatedString's terminator are both expressed in these units.
func (e stringEncoding) unitSize() int {
	if e.unicode {
		return 2
	}
	return 1
}

// readFixedString reads exactly byteLen bytes (byteLen/2 units for UTF-16LE)
// and trims at the first NUL unit. An empty result is returned as "", distinct from a fixed-string
// field that was never read at all (absent is represented at a higher
// layer by simply not calling this).
func (rd *reader) readFixedString(byteLen int, enc stringEncoding) (string, error) {
	raw, err := rd.readBytes(byteLen)
	if err != nil {
		return "", err
	}
	trimmed := trimAtNUL(raw, enc)
	return enc.decode(trimmed)
}

func trimAtNUL(raw []byte, enc stringEncoding) []byte {
	unit := enc.unitSize()
	for i := 0; i+unit <= len(raw); i += unit {
		isZero := true
		for j := 0; j < unit; j++ {
			if raw[i+j] != 0 {
				isZero = false
				break
			}
		}
		if isZero {
			return raw[:i]
		}
	}
	return raw
}

// writeFixedString encodes s, NUL-pads (or truncates, which would be a
// caller error since it drops data) to exactly byteLen bytes.
func (w *writer) writeFixedString(s string, byteLen int, enc stringEncoding) error {
	b, err := enc.encode(s)
	if err != nil {
		return err
	}
	if len(b) > byteLen {
		b = b[:byteLen]
	}
	w.writeBytes(b)
	if pad := byteLen - len(b); pad > 0 {
		w.writeBytes(make([]byte, pad))
	}
	return nil
}

// readSizedString reads a u16 character count, then that many character
// units, with no terminator.
func (rd *reader) readSizedString(enc stringEncoding) (string, error) {
	count, err := rd.readUint16()
	if err != nil {
		return "", err
	}
	byteLen := int(count) * enc.unitSize()
	raw, err := rd.readBytes(byteLen)
	if err != nil {
		return "", err
	}
	s, err := enc.decode(raw)
	if err != nil {
		return "", parseErr(rd.offset(), "SizedString: %v", err)
	}
	return s, nil
}

func (w *writer) writeSizedString(s string, enc stringEncoding) error {
	b, err := enc.encode(s)
	if err != nil {
		return err
	}
	count := len(b) / enc.unitSize()
	w.writeUint16(uint16(count))
	w.writeBytes(b)
	return nil
}

// readNullTerminatedString reads character units until a NUL unit. Reaching
// the end of the stream before a NUL unit is returned as an ErrIo error.
func (rd *reader) readNullTerminatedString(enc stringEncoding) (string, error) {
	unit := enc.unitSize()
	var raw []byte
	for {
		u, err := rd.readBytes(unit)
		if err != nil {
			return "", err
		}
		if bytes.Equal(u, make([]byte, unit)) {
			break
		}
		raw = append(raw, u...)
	}
	s, err := enc.decode(raw)
	if err != nil {
		return "", parseErr(rd.offset(), "NullTerminatedString: %v", err)
	}
	return s, nil
}

func (w *writer) writeNullTerminatedString(s string, enc stringEncoding) error {
	b, err := enc.encode(s)
	if err != nil {
		return err
	}
	w.writeBytes(b)
	w.writeBytes(make([]byte, enc.unitSize()))
	return nil
}
