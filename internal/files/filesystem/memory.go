package filesystem

import (
	"fmt"
	"io/fs"
	"path"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/vvka-141/revtree/pkg/revtree"
)

// memoryFileInfo implements fs.FileInfo for in-memory entries
type memoryFileInfo struct {
	name    string
	size    int64
	mode    fs.FileMode
	modTime time.Time
	isDir   bool
}

func (f *memoryFileInfo) Name() string       { return f.name }
func (f *memoryFileInfo) Size() int64        { return f.size }
func (f *memoryFileInfo) Mode() fs.FileMode  { return f.mode }
func (f *memoryFileInfo) ModTime() time.Time { return f.modTime }
func (f *memoryFileInfo) IsDir() bool        { return f.isDir }
func (f *memoryFileInfo) Sys() interface{}   { return nil }

// memoryEntry is one file or directory. Directory children keep insertion
// order so tests can build listings that are deliberately unsorted.
type memoryEntry struct {
	name     string
	isDir    bool
	content  []byte
	modTime  time.Time
	children []*memoryEntry
}

func (e *memoryEntry) info() *memoryFileInfo {
	mode := fs.FileMode(0644)
	if e.isDir {
		mode = 0755 | fs.ModeDir
	}
	return &memoryFileInfo{
		name:    e.name,
		size:    int64(len(e.content)),
		mode:    mode,
		modTime: e.modTime,
		isDir:   e.isDir,
	}
}

func (e *memoryEntry) child(name string) (int, *memoryEntry) {
	for i, c := range e.children {
		if c.name == name {
			return i, c
		}
	}
	return -1, nil
}

func (e *memoryEntry) removeAt(i int) {
	e.children = append(e.children[:i], e.children[i+1:]...)
}

// MemoryFileSystem implements FileSystemProvider for in-memory testing.
// Rename moves whole subtrees, and FailRename injects failures.
// Not safe for concurrent use.
type MemoryFileSystem struct {
	root       string
	top        *memoryEntry
	failRename func(src, dst string) error
}

// NewMemoryFileSystem creates a new in-memory filesystem.
// The root path is normalized to use forward slashes for virtual filesystem consistency.
func NewMemoryFileSystem(root string) *MemoryFileSystem {
	root = path.Clean(filepath.ToSlash(root))

	return &MemoryFileSystem{
		root: root,
		top: &memoryEntry{
			name:    path.Base(root),
			isDir:   true,
			modTime: time.Now(),
		},
	}
}

// Root returns the normalized root path.
func (mfs *MemoryFileSystem) Root() string { return mfs.root }

// FailRename installs a hook consulted before every rename. A non-nil
// return value fails that rename without changing anything.
// Passing nil removes the hook.
func (mfs *MemoryFileSystem) FailRename(fn func(src, dst string) error) {
	mfs.failRename = fn
}

// AddFile adds a file, creating parent directories as needed.
func (mfs *MemoryFileSystem) AddFile(filePath string, content string) {
	parent, name := mfs.mustParent(filePath)
	entry := &memoryEntry{name: name, content: []byte(content), modTime: time.Now()}
	if i, _ := parent.child(name); i >= 0 {
		parent.children[i] = entry
		return
	}
	parent.children = append(parent.children, entry)
}

// AddDir adds an empty directory, creating parent directories as needed.
func (mfs *MemoryFileSystem) AddDir(dirPath string) {
	parent, name := mfs.mustParent(dirPath)
	if name == "" {
		return
	}
	if _, existing := parent.child(name); existing != nil {
		return
	}
	parent.children = append(parent.children, &memoryEntry{name: name, isDir: true, modTime: time.Now()})
}

// ReadFile returns the content of a file.
func (mfs *MemoryFileSystem) ReadFile(filePath string) ([]byte, error) {
	entry, err := mfs.lookup(filePath)
	if err != nil {
		return nil, err
	}
	if entry.isDir {
		return nil, fmt.Errorf("path is a directory, not a file: %s", filePath)
	}
	return entry.content, nil
}

// ReadDir implements FileSystemProvider.ReadDir
func (mfs *MemoryFileSystem) ReadDir(dirPath string) ([]string, error) {
	entry, err := mfs.lookup(dirPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read directory: %w", err)
	}
	if !entry.isDir {
		return nil, fmt.Errorf("failed to read directory: %s: not a directory", dirPath)
	}

	base := mfs.abs(dirPath)
	result := make([]string, 0, len(entry.children))
	for _, c := range entry.children {
		result = append(result, path.Join(base, c.name))
	}
	return result, nil
}

// Stat implements FileSystemProvider.Stat
func (mfs *MemoryFileSystem) Stat(statPath string) (FileInfo, error) {
	entry, err := mfs.lookup(statPath)
	if err != nil {
		return nil, err
	}
	return entry.info(), nil
}

// Mkdir implements FileSystemProvider.Mkdir
func (mfs *MemoryFileSystem) Mkdir(dirPath string) error {
	parent, name, err := mfs.parentOf(dirPath)
	if err != nil {
		return &fs.PathError{Op: "mkdir", Path: dirPath, Err: err}
	}
	if _, existing := parent.child(name); existing != nil {
		return &fs.PathError{Op: "mkdir", Path: dirPath, Err: fs.ErrExist}
	}
	parent.children = append(parent.children, &memoryEntry{name: name, isDir: true, modTime: time.Now()})
	return nil
}

// Rename implements FileSystemProvider.Rename with POSIX-like rules:
// a file may replace a file, a directory may replace an empty directory.
// A replaced entry's slot in the listing is taken over by the moved entry;
// a rename within one directory to a free name keeps its slot.
func (mfs *MemoryFileSystem) Rename(src, dst string) error {
	if mfs.failRename != nil {
		if err := mfs.failRename(src, dst); err != nil {
			return &fs.PathError{Op: "rename", Path: src, Err: err}
		}
	}

	srcAbs, dstAbs := mfs.abs(src), mfs.abs(dst)
	if srcAbs == dstAbs {
		if _, err := mfs.lookup(src); err != nil {
			return &fs.PathError{Op: "rename", Path: src, Err: err}
		}
		return nil
	}
	if strings.HasPrefix(dstAbs, srcAbs+"/") {
		return &fs.PathError{Op: "rename", Path: src, Err: fmt.Errorf("cannot move %s into itself", src)}
	}

	srcParent, srcName, err := mfs.parentOf(src)
	if err != nil {
		return &fs.PathError{Op: "rename", Path: src, Err: err}
	}
	srcIndex, moving := srcParent.child(srcName)
	if moving == nil {
		return &fs.PathError{Op: "rename", Path: src, Err: fs.ErrNotExist}
	}

	dstParent, dstName, err := mfs.parentOf(dst)
	if err != nil {
		return &fs.PathError{Op: "rename", Path: dst, Err: err}
	}
	_, replaced := dstParent.child(dstName)
	if replaced != nil {
		switch {
		case moving.isDir && !replaced.isDir:
			return &fs.PathError{Op: "rename", Path: dst, Err: fmt.Errorf("not a directory")}
		case !moving.isDir && replaced.isDir:
			return &fs.PathError{Op: "rename", Path: dst, Err: fmt.Errorf("is a directory")}
		case replaced.isDir && len(replaced.children) > 0:
			return &fs.PathError{Op: "rename", Path: dst, Err: fmt.Errorf("directory not empty")}
		}
	}

	moving.name = dstName
	switch {
	case replaced != nil:
		srcParent.removeAt(srcIndex)
		for i, c := range dstParent.children {
			if c == replaced {
				dstParent.children[i] = moving
				break
			}
		}
	case dstParent == srcParent:
		// renamed in place
	default:
		srcParent.removeAt(srcIndex)
		dstParent.children = append(dstParent.children, moving)
	}
	return nil
}

// TempPath implements FileSystemProvider.TempPath
func (mfs *MemoryFileSystem) TempPath(dir string) (string, error) {
	entry, err := mfs.lookup(dir)
	if err != nil {
		return "", fmt.Errorf("failed to reserve temporary path in %s: %w", dir, err)
	}
	if !entry.isDir {
		return "", fmt.Errorf("failed to reserve temporary path in %s: not a directory", dir)
	}
	for attempt := 0; attempt < tempPathAttempts; attempt++ {
		name := revtree.TempNamePrefix + uuid.NewString()
		if _, existing := entry.child(name); existing == nil {
			return path.Join(mfs.abs(dir), name), nil
		}
	}
	return "", fmt.Errorf("no free temporary name in %s: %w", dir, revtree.ErrTempPath)
}

// abs normalizes p to a forward-slash absolute path inside the virtual filesystem.
func (mfs *MemoryFileSystem) abs(p string) string {
	p = filepath.ToSlash(p)
	if p == "" || p == "." {
		return mfs.root
	}
	if !path.IsAbs(p) && !strings.HasPrefix(p, mfs.root) {
		p = path.Join(mfs.root, p)
	}
	return path.Clean(p)
}

// segments returns the path components below the root, or false if p is
// outside the virtual filesystem.
func (mfs *MemoryFileSystem) segments(p string) ([]string, bool) {
	absPath := mfs.abs(p)
	if absPath == mfs.root {
		return nil, true
	}
	prefix := mfs.root + "/"
	if mfs.root == "/" {
		prefix = "/"
	}
	if !strings.HasPrefix(absPath, prefix) {
		return nil, false
	}
	return strings.Split(strings.TrimPrefix(absPath, prefix), "/"), true
}

func (mfs *MemoryFileSystem) lookup(p string) (*memoryEntry, error) {
	parts, ok := mfs.segments(p)
	if !ok {
		return nil, fmt.Errorf("path not found: %s: %w", p, fs.ErrNotExist)
	}
	current := mfs.top
	for _, part := range parts {
		if !current.isDir {
			return nil, fmt.Errorf("path not found: %s: %w", p, fs.ErrNotExist)
		}
		_, next := current.child(part)
		if next == nil {
			return nil, fmt.Errorf("path not found: %s: %w", p, fs.ErrNotExist)
		}
		current = next
	}
	return current, nil
}

// parentOf resolves the directory that holds p and the final name of p.
func (mfs *MemoryFileSystem) parentOf(p string) (*memoryEntry, string, error) {
	parts, ok := mfs.segments(p)
	if !ok || len(parts) == 0 {
		return nil, "", fmt.Errorf("path has no parent inside the filesystem: %s", p)
	}
	parentPath := path.Join(append([]string{mfs.root}, parts[:len(parts)-1]...)...)
	parent, err := mfs.lookup(parentPath)
	if err != nil {
		return nil, "", err
	}
	if !parent.isDir {
		return nil, "", fmt.Errorf("parent is not a directory: %s", parentPath)
	}
	return parent, parts[len(parts)-1], nil
}

// mustParent returns the parent directory of p, creating missing directories.
func (mfs *MemoryFileSystem) mustParent(p string) (*memoryEntry, string) {
	parts, ok := mfs.segments(p)
	if !ok {
		panic(fmt.Sprintf("path %s is outside memory filesystem root %s", p, mfs.root))
	}
	if len(parts) == 0 {
		return mfs.top, ""
	}
	current := mfs.top
	for _, part := range parts[:len(parts)-1] {
		_, next := current.child(part)
		if next == nil {
			next = &memoryEntry{name: part, isDir: true, modTime: time.Now()}
			current.children = append(current.children, next)
		}
		current = next
	}
	return current, parts[len(parts)-1]
}

var _ FileSystemProvider = (*MemoryFileSystem)(nil)
