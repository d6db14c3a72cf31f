package tree

import (
	"github.com/vvka-141/revtree/pkg/revtree"
)

// Lister lists the immediate children of a directory as full paths.
// On failure it returns an empty listing together with the error.
type Lister interface {
	ListEntries(path string) ([]string, error)
}

// Builder scans a filesystem into a Node tree.
type Builder struct {
	lister Lister
	logger revtree.Logger
}

// NewBuilder creates a Builder.
// Panics if lister or logger is nil.
func NewBuilder(lister Lister, logger revtree.Logger) *Builder {
	if lister == nil {
		panic("lister cannot be nil")
	}
	if logger == nil {
		panic("logger cannot be nil")
	}
	return &Builder{lister: lister, logger: logger}
}

// Build returns the tree rooted at rootPath. Every listed entry becomes a
// child and is scanned with its own path, so recursion ends at files, empty
// directories and directories that cannot be read. Unreadable paths are
// treated as leaves.
func (b *Builder) Build(rootPath string) *Node {
	root := New(rootPath)
	b.populate(root)
	return root
}

func (b *Builder) populate(node *Node) {
	entries, err := b.lister.ListEntries(node.Path)
	if err != nil {
		b.logger.Verbose("no entries under %s: %v", node.Path, err)
	}

	for _, entry := range entries {
		child := New(entry)
		node.Add(child)
		b.populate(child)
	}
}
