package filesystem

import (
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/spf13/afero"
)

// ErrBadPattern is returned for syntactically invalid glob patterns
var ErrBadPattern = doublestar.ErrBadPattern

// HasMeta reports whether s contains a wildcard that makes it a glob
// pattern rather than a literal path. Only '*' and '?' count.
func HasMeta(s string) bool {
	return strings.ContainsAny(s, "*?")
}

// ValidatePattern returns ErrBadPattern if pattern cannot be parsed
func ValidatePattern(pattern string) error {
	if !doublestar.ValidatePattern(filepath.ToSlash(pattern)) {
		return ErrBadPattern
	}
	return nil
}

// Glob expands pattern against fsys. Supported syntax is '*', '?', '[...]',
// '{a,b}' and '**' for any number of directories. Matches keep the literal
// directory prefix of the pattern as written. Directories that cannot be
// read are skipped.
func Glob(fsys afero.Fs, pattern string) ([]string, error) {
	if err := ValidatePattern(pattern); err != nil {
		return nil, err
	}

	slashed := filepath.ToSlash(pattern)
	base, rest := doublestar.SplitPattern(slashed)
	root := filepath.FromSlash(base)
	// prefix is the directory part exactly as written, "" for a bare pattern
	prefix := slashed[:len(slashed)-len(rest)]

	// BasePathFs needs an absolute root to resolve names under it.
	absRoot, err := filepath.Abs(root)
	if err != nil {
		return nil, err
	}

	iofs := afero.NewIOFS(afero.NewBasePathFs(fsys, absRoot))
	matches, err := doublestar.Glob(iofs, rest)
	if err != nil {
		return nil, err
	}

	paths := make([]string, 0, len(matches))
	for _, match := range matches {
		paths = append(paths, filepath.FromSlash(prefix+match))
	}
	return paths, nil
}
