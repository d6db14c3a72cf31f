package filesystem

import (
	"io/fs"
)

// FileInfo is an alias for fs.FileInfo from the standard library.
// This provides compatibility with the fs.FS ecosystem while maintaining
// a stable local type for our abstraction layer.
type FileInfo = fs.FileInfo

// FileSystemProvider is the strict filesystem contract: every failure is
// returned to the caller. The lenient policy lives in Accessor.
type FileSystemProvider interface {
	// ReadDir returns the full paths of the immediate children of path,
	// in the order the underlying filesystem yields them.
	// Entries that fail individually while listing are skipped.
	ReadDir(path string) ([]string, error)

	// Stat returns file information for the given path
	Stat(path string) (FileInfo, error)

	// Mkdir creates a single directory. If anything already exists at
	// path the returned error satisfies errors.Is(err, fs.ErrExist).
	Mkdir(path string) error

	// Rename moves src to dst, replacing dst where the platform allows it.
	Rename(src, dst string) error

	// TempPath reserves a fresh name inside dir that no entry currently uses.
	// The placeholder created to reserve it is removed again so the path can
	// be used directly as a rename destination.
	TempPath(dir string) (string, error)
}
