package rename

import (
	"fmt"
	"io"
	"os"

	"github.com/arthur-debert/frep/pkg/errors"
	"github.com/arthur-debert/frep/pkg/filesystem"
	"github.com/arthur-debert/frep/pkg/logging"
	"github.com/arthur-debert/frep/pkg/source"
	"github.com/spf13/afero"
)

// MsgRenamed is written to Output for every successful rename
const MsgRenamed = "Renamed: %s -> %s\n"

// Options contains the inputs of a pipeline run
type Options struct {
	Find    string
	Replace string
	// FileSystem defaults to the OS filesystem
	FileSystem afero.Fs
	// Output receives one line per rename. Defaults to os.Stdout.
	Output io.Writer
}

// Operation is a single rename, computed right before it is performed
type Operation struct {
	From string
	To   string
}

// Result summarizes a pipeline run
type Result struct {
	Renamed   []Operation
	Missing   int
	Unmatched int
}

// Execute runs the rename pipeline over the candidates of src. It returns
// at the first rename that fails, with a Result covering the work done so
// far and an ErrRename error.
func Execute(src source.Source, opts Options) (*Result, error) {
	logger := logging.GetLogger("rename")
	done := logging.LogOperationStart(logger, "rename")
	defer done()

	fs := opts.FileSystem
	if fs == nil {
		fs = filesystem.NewOS()
	}
	out := opts.Output
	if out == nil {
		out = os.Stdout
	}

	candidates, err := src.Candidates(fs)
	if err != nil {
		return nil, err
	}

	logger.Debug().
		Str("source", src.String()).
		Int("candidates", len(candidates)).
		Str("find", opts.Find).
		Str("replace", opts.Replace).
		Msg("Resolved candidate paths")

	result := &Result{}
	for _, path := range candidates {
		exists, err := afero.Exists(fs, path)
		if err != nil {
			statErr := errors.Wrapf(err, errors.ErrFileAccess, "cannot stat %s", path).WithDetail("path", path)
			logger.Debug().Err(statErr).Msg("Cannot stat path, treating it as missing")
		}
		if !exists {
			logger.Trace().Str("path", path).Msg("Skipping missing path")
			result.Missing++
			continue
		}

		base := Basename(path)
		if base == "" {
			logger.Trace().Str("path", path).Msg("Skipping path without a file name")
			result.Unmatched++
			continue
		}
		newBase, ok := NewName(base, opts.Find, opts.Replace)
		if !ok {
			logger.Trace().Str("path", path).Msg("Skipping path, no match in file name")
			result.Unmatched++
			continue
		}

		op := Operation{From: path, To: TargetPath(path, newBase)}
		if err := fs.Rename(op.From, op.To); err != nil {
			logger.Debug().Err(err).Str("from", op.From).Str("to", op.To).Msg("Rename failed")
			return result, errors.Wrapf(err, errors.ErrRename, "failed to rename %s", op.From).
				WithDetail("from", op.From).
				WithDetail("to", op.To)
		}

		result.Renamed = append(result.Renamed, op)
		fmt.Fprintf(out, MsgRenamed, op.From, op.To)
	}

	logger.Info().
		Int("renamed", len(result.Renamed)).
		Int("missing", result.Missing).
		Int("unmatched", result.Unmatched).
		Msg("Rename pipeline completed")

	return result, nil
}
