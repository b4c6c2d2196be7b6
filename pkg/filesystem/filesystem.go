package filesystem

import (
	"github.com/spf13/afero"
)

// NewOS creates a filesystem backed by the operating system
func NewOS() afero.Fs {
	return afero.NewOsFs()
}

// NewMemory creates an empty in-memory filesystem
func NewMemory() afero.Fs {
	return afero.NewMemMapFs()
}
