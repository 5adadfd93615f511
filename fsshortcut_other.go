//go:build !windows

package lnk

import "os"

// fileAttributesFor stats path and derives FileAttributeFlags from the
// portable os.FileInfo bits available outside Windows; there is no Win32
// attribute byte to read from, so this is necessarily an approximation.
func fileAttributesFor(path string) (FileAttributeFlags, error) {
	info, err := os.Stat(path)
	if err != nil {
		return 0, err
	}
	return statAttributes(info), nil
}
