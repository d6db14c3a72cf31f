package reversal

import (
	"path/filepath"

	"github.com/vvka-141/revtree/internal/files/filesystem"
	"github.com/vvka-141/revtree/internal/tree"
	"github.com/vvka-141/revtree/pkg/revtree"
)

// Accessor is the filesystem surface the engine needs.
// filesystem.Accessor satisfies it.
type Accessor interface {
	IsDirectory(path string) (bool, error)
	Rename(src, dst string) filesystem.RenameResult
	FreshTempPath(dir string) (string, error)
}

// Engine reverses sibling order on disk.
type Engine struct {
	accessor Accessor
	logger   revtree.Logger
}

// NewEngine creates an Engine.
// Panics if accessor or logger is nil.
func NewEngine(accessor Accessor, logger revtree.Logger) *Engine {
	if accessor == nil {
		panic("accessor cannot be nil")
	}
	if logger == nil {
		panic("logger cannot be nil")
	}
	return &Engine{accessor: accessor, logger: logger}
}

// Reverse reverses every level of the tree rooted at node and reports the
// renames it attempted. Node paths are left as scanned; only the order of
// each Children slice changes (it ends up sorted).
func (e *Engine) Reverse(node *tree.Node) *Report {
	report := &Report{}
	e.reverse(node, report)
	return report
}

func (e *Engine) reverse(node *tree.Node, report *Report) {
	// The guard looks at the parent, so it is the same for every child.
	isDir, err := e.accessor.IsDirectory(node.Path)
	if err != nil {
		e.logger.Verbose("not descending into %s: %v", node.Path, err)
	}
	if isDir {
		for _, branch := range node.Children {
			e.reverse(branch, report)
		}
	}

	node.SortChildren()

	swaps := Plan(node.ChildPaths())
	if len(swaps) > 0 {
		report.Levels++
	}
	for _, s := range swaps {
		e.swap(s, report)
	}
}

// swap rotates Path1 and Path2 through a temporary name in their directory.
func (e *Engine) swap(s Swap, report *Report) {
	report.Swaps++

	tempPath, err := e.accessor.FreshTempPath(filepath.Dir(s.Path1))
	if err != nil {
		e.logger.Error("Skipping swap of %s and %s: %v", s.Path1, s.Path2, err)
		report.Renames = append(report.Renames, filesystem.RenameResult{Source: s.Path1, Err: err})
		return
	}

	// Each step runs even if an earlier one failed.
	report.Renames = append(report.Renames, e.accessor.Rename(s.Path1, tempPath))
	report.Renames = append(report.Renames, e.accessor.Rename(s.Path2, s.Path1))
	report.Renames = append(report.Renames, e.accessor.Rename(tempPath, s.Path2))
}
