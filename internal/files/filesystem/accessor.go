package filesystem

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"

	"github.com/vvka-141/revtree/pkg/revtree"
)

// RenameResult records one attempted rename.
type RenameResult struct {
	Source      string
	Destination string
	Err         error
}

// OK reports whether the rename succeeded.
func (r RenameResult) OK() bool { return r.Err == nil }

// Accessor applies revtree's lenient I/O policy on top of a FileSystemProvider.
// Lookups return usable zero values (empty listing, not a directory) together
// with the error, so callers decide whether a failure matters. Renames are
// logged and reported, never raised.
type Accessor struct {
	provider FileSystemProvider
	logger   revtree.Logger
	dryRun   bool
	dryTemps int
}

// NewAccessor creates an Accessor over provider.
// Panics if provider or logger is nil.
func NewAccessor(provider FileSystemProvider, logger revtree.Logger) *Accessor {
	if provider == nil {
		panic("provider cannot be nil")
	}
	if logger == nil {
		panic("logger cannot be nil")
	}
	return &Accessor{provider: provider, logger: logger}
}

// SetDryRun makes Rename and FreshTempPath log what they would do without
// touching the filesystem.
func (a *Accessor) SetDryRun(dryRun bool) {
	a.dryRun = dryRun
}

// DryRun reports whether the accessor is in dry-run mode.
func (a *Accessor) DryRun() bool { return a.dryRun }

// ListEntries returns the full paths of the immediate children of path.
// On failure the listing is empty (never nil) and the cause is returned.
func (a *Accessor) ListEntries(path string) ([]string, error) {
	entries, err := a.provider.ReadDir(path)
	if err != nil {
		return []string{}, err
	}
	return entries, nil
}

// IsDirectory reports whether path currently resolves to a directory.
// Any lookup failure yields false together with the cause.
func (a *Accessor) IsDirectory(path string) (bool, error) {
	info, err := a.provider.Stat(path)
	if err != nil {
		return false, err
	}
	return info.IsDir(), nil
}

// Rename moves src to dst and reports the outcome on the info stream.
func (a *Accessor) Rename(src, dst string) RenameResult {
	result := RenameResult{Source: src, Destination: dst}

	if a.dryRun {
		a.logger.Info("Would rename %s to %s", src, dst)
		return result
	}

	if err := a.provider.Rename(src, dst); err != nil {
		result.Err = err
		a.logger.Info("Couldn't rename file %s to %s", src, dst)
		a.logger.Verbose("rename %s -> %s: %v", src, dst, err)
		return result
	}

	a.logger.Info("Renamed file %s to %s", src, dst)
	return result
}

// FreshTempPath reserves an unused name inside dir for a rotation swap.
func (a *Accessor) FreshTempPath(dir string) (string, error) {
	if a.dryRun {
		a.dryTemps++
		return filepath.Join(dir, fmt.Sprintf("%sdry-run-%d", revtree.TempNamePrefix, a.dryTemps)), nil
	}

	tempPath, err := a.provider.TempPath(dir)
	if err != nil {
		if errors.Is(err, revtree.ErrTempPath) {
			return "", err
		}
		return "", fmt.Errorf("%w: %v", revtree.ErrTempPath, err)
	}
	return tempPath, nil
}

// EnsureDirectory creates path. An existing entry counts as success;
// any other failure is logged and returned.
func (a *Accessor) EnsureDirectory(path string) error {
	err := a.provider.Mkdir(path)
	if err == nil || errors.Is(err, fs.ErrExist) {
		return nil
	}
	a.logger.Error("Failed to create directory %s: %v", path, err)
	return err
}
