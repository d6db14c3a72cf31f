package reversal

import (
	"fmt"

	"github.com/vvka-141/revtree/internal/files/filesystem"
	"github.com/vvka-141/revtree/pkg/revtree"
)

// Report collects what a reversal did.
type Report struct {
	// Levels counts the nodes whose children were sorted and swapped.
	Levels int
	// Swaps counts the swaps that were attempted.
	Swaps int
	// Renames lists every rename in the order it was attempted. A swap whose
	// temporary name could not be reserved appears once with an empty
	// Destination.
	Renames []filesystem.RenameResult
}

// Failed returns the renames that did not succeed.
func (r *Report) Failed() []filesystem.RenameResult {
	var failed []filesystem.RenameResult
	for _, rr := range r.Renames {
		if !rr.OK() {
			failed = append(failed, rr)
		}
	}
	return failed
}

// Err returns nil when every rename succeeded, otherwise an error wrapping
// revtree.ErrRenameFailed that names the first failure.
func (r *Report) Err() error {
	failed := r.Failed()
	if len(failed) == 0 {
		return nil
	}
	first := failed[0]
	return fmt.Errorf("%d of %d renames failed, first %s -> %s (%v): %w",
		len(failed), len(r.Renames), first.Source, first.Destination, first.Err, revtree.ErrRenameFailed)
}
