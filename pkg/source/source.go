// Package source turns command line file arguments into candidate paths.
//
// A Source is either an explicit list of paths, as produced by a shell that
// already expanded wildcards, or a single glob pattern expanded against the
// filesystem. Both feed the same rename pipeline.
package source

import (
	stderrors "errors"
	"fmt"
	"strings"

	"github.com/arthur-debert/frep/pkg/errors"
	"github.com/arthur-debert/frep/pkg/filesystem"
	"github.com/spf13/afero"
)

// Source produces the candidate paths considered for renaming
type Source interface {
	Candidates(fs afero.Fs) ([]string, error)
	String() string
}

// Explicit is a list of literal paths
type Explicit []string

// Candidates returns the paths unchanged
func (e Explicit) Candidates(afero.Fs) ([]string, error) {
	return []string(e), nil
}

func (e Explicit) String() string {
	return strings.Join(e, " ")
}

// Glob is a pattern expanded against the filesystem
type Glob struct {
	Pattern string
}

// Candidates expands the pattern
func (g Glob) Candidates(fs afero.Fs) ([]string, error) {
	paths, err := filesystem.Glob(fs, g.Pattern)
	if stderrors.Is(err, filesystem.ErrBadPattern) {
		return nil, invalidPattern(g.Pattern, err)
	}
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrFileAccess, "cannot expand %s", g.Pattern).
			WithDetail("pattern", g.Pattern)
	}
	return paths, nil
}

func (g Glob) String() string {
	return g.Pattern
}

// Resolve picks the Source for the trailing file arguments. A single
// argument containing '*' or '?' is a glob; anything else is taken
// literally. Glob patterns are validated here so a malformed one fails
// before any file is touched.
func Resolve(args []string) (Source, error) {
	if len(args) == 0 {
		return nil, errors.New(errors.ErrInvalidInput, "no file pattern given")
	}

	if len(args) == 1 && filesystem.HasMeta(args[0]) {
		if err := filesystem.ValidatePattern(args[0]); err != nil {
			return nil, invalidPattern(args[0], err)
		}
		return Glob{Pattern: args[0]}, nil
	}

	paths := make(Explicit, len(args))
	copy(paths, args)
	return paths, nil
}

func invalidPattern(pattern string, err error) error {
	return errors.Wrap(err, errors.ErrInvalidPattern, fmt.Sprintf("invalid pattern %s", pattern)).
		WithDetail("pattern", pattern)
}
