package repository

import "github.com/spf13/afero"

// FileSystemRepository is the filesystem the static export writes through.

type FileSystemRepository interface {
	afero.Fs
}
