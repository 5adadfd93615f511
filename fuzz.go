//go:build gofuzz

package lnk

import "bytes"

// Fuzz is the go-fuzz entry point: decode, re-encode, and decode again,
// checking that the two decodes agree on LinkFlags. Any crash, a failure to
// re-encode or re-decode, or differing LinkFlags is a finding.
func Fuzz(data []byte) int {
	sl, err := Decode(bytes.NewReader(data), nil)
	if err != nil {
		if _, ok := err.(*Error); ok {
			return 0
		}
		return -1
	}

	var buf bytes.Buffer
	if err := sl.Encode(&buf); err != nil {
		return -1
	}

	again, err := Decode(bytes.NewReader(buf.Bytes()), nil)
	if err != nil {
		return -1
	}
	if again.Header.LinkFlags != sl.Header.LinkFlags {
		return -1
	}

	return 1
}
