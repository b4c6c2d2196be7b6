package rename

import (
	"os"
	"path/filepath"
	"strings"
)

// NewName replaces every occurrence of find in base with replace. The
// second return value reports whether find occurred at all. An empty find
// occurs everywhere, so replace is inserted at every character boundary.
func NewName(base, find, replace string) (string, bool) {
	if !strings.Contains(base, find) {
		return base, false
	}
	return strings.ReplaceAll(base, find, replace), true
}

// Basename returns the final component of path, or "" when path has none
// ("", ".", "..", or a filesystem root).
func Basename(path string) string {
	_, file := filepath.Split(trimSeparators(path))
	if file == "." || file == ".." {
		return ""
	}
	return file
}

// TargetPath returns path with its final component replaced by newBase.
// The directory part is kept byte for byte.
func TargetPath(path, newBase string) string {
	dir, _ := filepath.Split(trimSeparators(path))
	return dir + newBase
}

func trimSeparators(path string) string {
	return strings.TrimRightFunc(path, func(r rune) bool {
		return r < 0x80 && os.IsPathSeparator(uint8(r))
	})
}
