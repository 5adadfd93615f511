//go:build windows

package lnk

import (
	"os"

	"golang.org/x/sys/windows"
)

// fileAttributesFor stats path and translates the result into
// FileAttributeFlags, preferring the real Win32 attributes
// golang.org/x/sys/windows exposes over the os.FileInfo-derived guess.
func fileAttributesFor(path string) (FileAttributeFlags, error) {
	p, err := windows.UTF16PtrFromString(path)
	if err != nil {
		return 0, err
	}
	raw, err := windows.GetFileAttributes(p)
	if err != nil {
		info, statErr := os.Stat(path)
		if statErr != nil {
			return 0, statErr
		}
		return statAttributes(info), nil
	}
	return FileAttributeFlags(raw) & (knownFileAttributeFlags), nil
}
