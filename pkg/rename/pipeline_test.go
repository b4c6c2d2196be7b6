package rename

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/arthur-debert/frep/pkg/errors"
	"github.com/arthur-debert/frep/pkg/filesystem"
	"github.com/arthur-debert/frep/pkg/logging"
	"github.com/arthur-debert/frep/pkg/source"
	"github.com/arthur-debert/frep/pkg/testutil"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestExecute_SingleFile(t *testing.T) {
	dir := t.TempDir()
	testFile := testutil.CreateFile(t, dir, "test-bar.txt", "")

	var out bytes.Buffer
	result, err := Execute(source.Explicit{testFile}, Options{
		Find:       "bar",
		Replace:    "foo",
		FileSystem: filesystem.NewOS(),
		Output:     &out,
	})
	require.NoError(t, err)

	expected := filepath.Join(dir, "test-foo.txt")
	assert.True(t, testutil.PathExists(t, expected))
	assert.False(t, testutil.PathExists(t, testFile))
	assert.Equal(t, []Operation{{From: testFile, To: expected}}, result.Renamed)
	assert.Equal(t, "Renamed: "+testFile+" -> "+expected+"\n", out.String())
}

func TestExecute_MultipleFiles(t *testing.T) {
	dir := t.TempDir()
	files := testutil.CreateFiles(t, dir, "test-bar.txt", "other-bar.txt", "no-match.txt")

	var out bytes.Buffer
	result, err := Execute(source.Explicit(files), Options{
		Find:       "bar",
		Replace:    "foo",
		FileSystem: filesystem.NewOS(),
		Output:     &out,
	})
	require.NoError(t, err)

	assert.True(t, testutil.PathExists(t, filepath.Join(dir, "test-foo.txt")))
	assert.True(t, testutil.PathExists(t, filepath.Join(dir, "other-foo.txt")))
	assert.True(t, testutil.PathExists(t, filepath.Join(dir, "no-match.txt")))
	assert.False(t, testutil.PathExists(t, filepath.Join(dir, "test-bar.txt")))
	assert.False(t, testutil.PathExists(t, filepath.Join(dir, "other-bar.txt")))

	assert.Len(t, result.Renamed, 2)
	assert.Equal(t, 1, result.Unmatched)

	// Messages follow iteration order
	lines := bytes.Split(bytes.TrimSpace(out.Bytes()), []byte("\n"))
	require.Len(t, lines, 2)
	assert.Contains(t, string(lines[0]), "test-bar.txt")
	assert.Contains(t, string(lines[1]), "other-bar.txt")
}

func TestExecute_NoMatches(t *testing.T) {
	fs := testutil.NewMockFS(testutil.NewMemoryFS())
	testutil.WriteMemoryFiles(t, fs, "/dir/test.txt")

	var out bytes.Buffer
	result, err := Execute(source.Explicit{"/dir/test.txt"}, Options{
		Find:       "bar",
		Replace:    "foo",
		FileSystem: fs,
		Output:     &out,
	})
	require.NoError(t, err)

	assert.True(t, testutil.MemoryExists(t, fs, "/dir/test.txt"))
	assert.Empty(t, result.Renamed)
	assert.Equal(t, 1, result.Unmatched)
	assert.Empty(t, out.String())
	fs.AssertNotCalled(t, "Rename", mock.Anything, mock.Anything)
}

func TestExecute_MissingPathsAreSkipped(t *testing.T) {
	fs := testutil.NewMockFS(testutil.NewMemoryFS())
	testutil.WriteMemoryFiles(t, fs, "/dir/real-bar.txt")
	fs.On("Rename", "/dir/real-bar.txt", "/dir/real-foo.txt").Return(nil)

	result, err := Execute(source.Explicit{"/dir/ghost-bar.txt", "/dir/real-bar.txt"}, Options{
		Find:       "bar",
		Replace:    "foo",
		FileSystem: fs,
		Output:     &bytes.Buffer{},
	})
	require.NoError(t, err)

	assert.Equal(t, 1, result.Missing)
	assert.Len(t, result.Renamed, 1)
	fs.AssertNotCalled(t, "Rename", "/dir/ghost-bar.txt", mock.Anything)
	fs.AssertExpectations(t)
}

func TestExecute_BasenameOnly(t *testing.T) {
	fs := testutil.NewMemoryFS()
	testutil.WriteMemoryFiles(t, fs, "/bar/test.txt", "/bar/x-bar.txt")

	result, err := Execute(source.Explicit{"/bar/test.txt", "/bar/x-bar.txt"}, Options{
		Find:       "bar",
		Replace:    "foo",
		FileSystem: fs,
		Output:     &bytes.Buffer{},
	})
	require.NoError(t, err)

	assert.Equal(t, []Operation{{From: "/bar/x-bar.txt", To: "/bar/x-foo.txt"}}, result.Renamed)
	assert.True(t, testutil.MemoryExists(t, fs, "/bar/test.txt"))
	assert.True(t, testutil.MemoryExists(t, fs, "/bar/x-foo.txt"))
}

func TestExecute_Idempotent(t *testing.T) {
	fs := testutil.NewMemoryFS()
	testutil.WriteMemoryFiles(t, fs, "/dir/test-bar.txt")
	opts := Options{Find: "bar", Replace: "foo", FileSystem: fs, Output: &bytes.Buffer{}}

	first, err := Execute(source.Glob{Pattern: "/dir/*.txt"}, opts)
	require.NoError(t, err)
	require.Len(t, first.Renamed, 1)

	var out bytes.Buffer
	opts.Output = &out
	second, err := Execute(source.Glob{Pattern: "/dir/*.txt"}, opts)
	require.NoError(t, err)
	assert.Empty(t, second.Renamed)
	assert.Empty(t, out.String())
	assert.True(t, testutil.MemoryExists(t, fs, "/dir/test-foo.txt"))
}

func TestExecute_GlobExpandsBeforeFiltering(t *testing.T) {
	fs := testutil.NewMemoryFS()
	testutil.WriteMemoryFiles(t, fs,
		"/dir/test-bar.txt",
		"/dir/other-bar.txt",
		"/dir/no-match.txt",
		"/dir/skip-bar.md",
	)

	result, err := Execute(source.Glob{Pattern: "/dir/*.txt"}, Options{
		Find:       "bar",
		Replace:    "foo",
		FileSystem: fs,
		Output:     &bytes.Buffer{},
	})
	require.NoError(t, err)

	assert.ElementsMatch(t, []Operation{
		{From: "/dir/test-bar.txt", To: "/dir/test-foo.txt"},
		{From: "/dir/other-bar.txt", To: "/dir/other-foo.txt"},
	}, result.Renamed)
	assert.True(t, testutil.MemoryExists(t, fs, "/dir/skip-bar.md"))
	assert.True(t, testutil.MemoryExists(t, fs, "/dir/no-match.txt"))
}

func TestExecute_EmptyFind(t *testing.T) {
	fs := testutil.NewMemoryFS()
	testutil.WriteMemoryFiles(t, fs, "/dir/ab")

	result, err := Execute(source.Explicit{"/dir/ab"}, Options{
		Find:       "",
		Replace:    "_",
		FileSystem: fs,
		Output:     &bytes.Buffer{},
	})
	require.NoError(t, err)

	assert.Equal(t, []Operation{{From: "/dir/ab", To: "/dir/_a_b_"}}, result.Renamed)
}

func TestExecute_RenamesDirectories(t *testing.T) {
	fs := testutil.NewMemoryFS()
	require.NoError(t, fs.MkdirAll("/dir/old-bar", 0755))

	result, err := Execute(source.Explicit{"/dir/old-bar/"}, Options{
		Find:       "bar",
		Replace:    "foo",
		FileSystem: fs,
		Output:     &bytes.Buffer{},
	})
	require.NoError(t, err)

	assert.Equal(t, []Operation{{From: "/dir/old-bar/", To: "/dir/old-foo"}}, result.Renamed)
	assert.True(t, testutil.MemoryExists(t, fs, "/dir/old-foo"))
}

func TestExecute_StopsAtFirstFailure(t *testing.T) {
	fs := testutil.NewMockFS(testutil.NewMemoryFS())
	testutil.WriteMemoryFiles(t, fs, "/dir/a-bar.txt", "/dir/b-bar.txt", "/dir/c-bar.txt")

	failure := &os.LinkError{Op: "rename", Old: "/dir/b-bar.txt", New: "/dir/b-foo.txt", Err: os.ErrPermission}
	fs.On("Rename", "/dir/a-bar.txt", "/dir/a-foo.txt").Return(nil)
	fs.On("Rename", "/dir/b-bar.txt", "/dir/b-foo.txt").Return(failure)

	var out bytes.Buffer
	result, err := Execute(source.Explicit{"/dir/a-bar.txt", "/dir/b-bar.txt", "/dir/c-bar.txt"}, Options{
		Find:       "bar",
		Replace:    "foo",
		FileSystem: fs,
		Output:     &out,
	})
	require.Error(t, err)

	assert.True(t, errors.IsErrorCode(err, errors.ErrRename))
	assert.ErrorIs(t, err, os.ErrPermission)
	assert.Equal(t, "/dir/b-bar.txt", errors.GetErrorDetails(err)["from"])
	assert.Equal(t, "/dir/b-foo.txt", errors.GetErrorDetails(err)["to"])

	// The first rename is kept, the third is never attempted
	require.NotNil(t, result)
	assert.Equal(t, []Operation{{From: "/dir/a-bar.txt", To: "/dir/a-foo.txt"}}, result.Renamed)
	assert.True(t, testutil.MemoryExists(t, fs, "/dir/a-foo.txt"))
	assert.True(t, testutil.MemoryExists(t, fs, "/dir/c-bar.txt"))
	assert.Equal(t, "Renamed: /dir/a-bar.txt -> /dir/a-foo.txt\n", out.String())
	fs.AssertNotCalled(t, "Rename", "/dir/c-bar.txt", mock.Anything)
}

// statErrorFS fails Stat for one path with a permission error
type statErrorFS struct {
	afero.Fs
	path string
}

func (s statErrorFS) Stat(name string) (os.FileInfo, error) {
	if name == s.path {
		return nil, &os.PathError{Op: "stat", Path: name, Err: os.ErrPermission}
	}
	return s.Fs.Stat(name)
}

func TestExecute_StatErrorIsTreatedAsMissing(t *testing.T) {
	t.Setenv("XDG_STATE_HOME", t.TempDir())
	var logs bytes.Buffer
	logging.Setup(logging.Options{Verbosity: 2, Console: &logs, NoColor: true})

	mem := testutil.NewMemoryFS()
	testutil.WriteMemoryFiles(t, mem, "/dir/a-bar.txt", "/dir/b-bar.txt")
	fs := statErrorFS{Fs: mem, path: "/dir/b-bar.txt"}

	var out bytes.Buffer
	result, err := Execute(source.Explicit{"/dir/a-bar.txt", "/dir/b-bar.txt"}, Options{
		Find:       "bar",
		Replace:    "foo",
		FileSystem: fs,
		Output:     &out,
	})
	require.NoError(t, err)

	assert.Equal(t, 1, result.Missing)
	assert.Equal(t, "Renamed: /dir/a-bar.txt -> /dir/a-foo.txt\n", out.String())
	assert.True(t, testutil.MemoryExists(t, mem, "/dir/b-bar.txt"))
	assert.Contains(t, logs.String(), "[FILE_ACCESS] cannot stat /dir/b-bar.txt")
}

func TestExecute_InvalidGlob(t *testing.T) {
	_, err := Execute(source.Glob{Pattern: "/dir/[*.txt"}, Options{
		Find:       "bar",
		Replace:    "foo",
		FileSystem: testutil.NewMemoryFS(),
		Output:     &bytes.Buffer{},
	})
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidPattern))
}
