package lnk

import (
	"os"
	"path/filepath"
)

// NewSimple builds a minimal ShellLink pointing at target: a LinkInfo with
// just a local base path (no volume or network info) and, when target is
// not a directory, RelativePath and WorkingDir string slots, enough for
// Explorer to resolve the link even without an IDList. The filesystem-specific pieces (existence check, directory
// attribute) are split into platform files since they need OS facilities
// the core codec does not.
func NewSimple(target string) (*ShellLink, error) {
	abs, err := filepath.Abs(target)
	if err != nil {
		return nil, err
	}

	attrs, err := fileAttributesFor(abs)
	if err != nil {
		return nil, err
	}

	info, err := os.Stat(abs)
	if err != nil {
		return nil, err
	}

	sl := NewShellLink()
	sl.Header.FileAttributes = attrs
	sl.LinkInfo = &LinkInfo{
		HeaderSize:    0x1C,
		LocalBasePath: abs,
	}

	if !info.IsDir() {
		rel := `.\` + filepath.Base(abs)
		sl.SetRelativePath(&rel)
		workingDir := filepath.Dir(abs)
		sl.SetWorkingDir(&workingDir)
	}

	return sl, nil
}

// statAttributes derives the subset of FileAttributeFlags this package
// understands directly from an os.FileInfo. fileAttributesFor uses it
// outside Windows, and on Windows when GetFileAttributes fails.
func statAttributes(info os.FileInfo) FileAttributeFlags {
	attrs := FileAttributeNormal
	if info.IsDir() {
		attrs = FileAttributeDirectory
	}
	if name := info.Name(); len(name) > 0 && name[0] == '.' {
		attrs |= FileAttributeHidden
	}
	return attrs
}
