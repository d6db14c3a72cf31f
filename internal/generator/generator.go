// Package generator creates directory fixtures for trying out reversals.
package generator

import (
	"path/filepath"
)

// DirectoryCreator creates a single directory. An existing entry at the
// path counts as success.
type DirectoryCreator interface {
	EnsureDirectory(path string) error
}

// Generate creates path and, below it, a binary tree of "left" and "right"
// directories so the result is depth levels deep. A branch whose directory
// cannot be created is abandoned without creating descendants; the other
// branches still proceed. The first such error is returned.
func Generate(creator DirectoryCreator, path string, depth int) error {
	if depth <= 0 {
		return nil
	}

	if err := creator.EnsureDirectory(path); err != nil {
		return err
	}

	leftErr := Generate(creator, filepath.Join(path, "left"), depth-1)
	rightErr := Generate(creator, filepath.Join(path, "right"), depth-1)
	if leftErr != nil {
		return leftErr
	}
	return rightErr
}
