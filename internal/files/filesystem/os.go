package filesystem

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/vvka-141/revtree/pkg/revtree"
)

// tempPathAttempts bounds how many fresh names TempPath tries before giving up.
const tempPathAttempts = 16

// OSFileSystem implements FileSystemProvider for the OS filesystem
type OSFileSystem struct {
	dirPerm os.FileMode
}

// NewOSFileSystem creates a new OS filesystem provider
func NewOSFileSystem() *OSFileSystem {
	return &OSFileSystem{dirPerm: revtree.DefaultDirPerm}
}

// ReadDir lists entries in directory order, not sorted by name.
// A listing that fails part-way returns what was read before the failure.
func (p *OSFileSystem) ReadDir(path string) ([]string, error) {
	dir, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read directory: %w", err)
	}
	defer dir.Close()

	entries, err := dir.ReadDir(-1)
	if err != nil && len(entries) == 0 {
		return nil, fmt.Errorf("failed to read directory: %w", err)
	}

	result := make([]string, 0, len(entries))
	for _, entry := range entries {
		result = append(result, filepath.Join(path, entry.Name()))
	}
	return result, nil
}

func (p *OSFileSystem) Stat(path string) (FileInfo, error) {
	// os.Stat returns os.FileInfo which implements fs.FileInfo
	return os.Stat(path)
}

func (p *OSFileSystem) Mkdir(path string) error {
	return os.Mkdir(path, p.dirPerm)
}

func (p *OSFileSystem) Rename(src, dst string) error {
	return os.Rename(src, dst)
}

func (p *OSFileSystem) TempPath(dir string) (string, error) {
	for attempt := 0; attempt < tempPathAttempts; attempt++ {
		candidate := filepath.Join(dir, revtree.TempNamePrefix+uuid.NewString())

		placeholder, err := os.OpenFile(candidate, os.O_RDWR|os.O_CREATE|os.O_EXCL, 0o600)
		if errors.Is(err, fs.ErrExist) {
			continue
		}
		if err != nil {
			return "", fmt.Errorf("failed to reserve temporary path in %s: %w", dir, err)
		}
		placeholder.Close()

		// A directory cannot be renamed over a file, so free the name again.
		if err := os.Remove(candidate); err != nil {
			return "", fmt.Errorf("failed to release placeholder %s: %w", candidate, err)
		}
		return candidate, nil
	}
	return "", fmt.Errorf("no free temporary name in %s after %d attempts: %w", dir, tempPathAttempts, revtree.ErrTempPath)
}

var _ FileSystemProvider = (*OSFileSystem)(nil)
