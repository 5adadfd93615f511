package lnk

import (
	"bytes"
	"os"

	mmap "github.com/edsrzf/mmap-go"
)

// Open reads the file at path and decodes it as a shell link, memory-mapping
// the underlying file: no whole-file copy up front, and the OS handles
// paging. opts may be nil to use DefaultDecodeOptions.
func Open(path string, opts *DecodeOptions) (*ShellLink, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, ioErr(err)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return nil, ioErr(err)
	}

	// mmap.Map refuses to map a zero-length file; fall back to an empty
	// in-memory reader, which Decode will immediately fail on with a
	// well-formed io/parse error instead of panicking.
	if info.Size() == 0 {
		return Decode(bytes.NewReader(nil), opts)
	}

	m, err := mmap.Map(f, mmap.RDONLY, 0)
	if err != nil {
		return nil, ioErr(err)
	}
	defer m.Unmap()

	return Decode(bytes.NewReader(m), opts)
}
