package lnk

import "time"

// windowsToUnixOffsetHundredNanos is the number of 100-ns intervals between
// the FILETIME epoch (1601-01-01 UTC) and the Unix epoch (1970-01-01 UTC).
const windowsToUnixOffsetHundredNanos = 116444736000000000

// FileTime is a 64-bit count of 100-ns intervals since 1601-01-01 UTC. The
// raw value is preserved verbatim across a round-trip; Time is a derived
// accessor that must never be used for re-encoding — Write always re-emits
// Raw, never a value reconstructed from Time. Zero means unset.
type FileTime struct {
	Raw uint64 `json:"raw"`
}

// IsZero reports whether this FILETIME is unset.
func (f FileTime) IsZero() bool {
	return f.Raw == 0
}

// Time returns the derived civil UTC time. Do not feed this back into
// FileTimeFromTime and expect an identical Raw value for all inputs;
// Raw is the only field Write consults.
func (f FileTime) Time() time.Time {
	if f.Raw == 0 {
		return time.Time{}
	}
	unixHundredNanos := int64(f.Raw) - windowsToUnixOffsetHundredNanos
	return time.Unix(0, unixHundredNanos*100).UTC()
}

// FileTimeFromTime constructs a FileTime from a civil time. Useful for
// building a ShellLink from scratch; decoded FileTimes should never be
// rebuilt this way, since it is a distinct (though here lossless) path from
// the preserved Raw value.
func FileTimeFromTime(t time.Time) FileTime {
	if t.IsZero() {
		return FileTime{}
	}
	hundredNanos := t.UTC().UnixNano() / 100
	return FileTime{Raw: uint64(hundredNanos + windowsToUnixOffsetHundredNanos)}
}

func (rd *reader) readFileTime() (FileTime, error) {
	v, err := rd.readUint64()
	if err != nil {
		return FileTime{}, err
	}
	return FileTime{Raw: v}, nil
}

func (w *writer) writeFileTime(f FileTime) {
	w.writeUint64(f.Raw)
}
