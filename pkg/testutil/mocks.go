package testutil

import (
	"github.com/spf13/afero"
	"github.com/stretchr/testify/mock"
)

// MockFS wraps a real afero.Fs and routes Rename through testify/mock so
// tests can inject failures. Every other call goes to the wrapped Fs.
type MockFS struct {
	afero.Fs
	mock.Mock
}

// NewMockFS wraps fs
func NewMockFS(fs afero.Fs) *MockFS {
	return &MockFS{Fs: fs}
}

// Rename records the call and returns the configured error. When the
// configured error is nil the rename is applied to the wrapped Fs.
func (m *MockFS) Rename(oldname, newname string) error {
	args := m.Called(oldname, newname)
	if err := args.Error(0); err != nil {
		return err
	}
	return m.Fs.Rename(oldname, newname)
}
