// Package reversal reverses the sibling order of a scanned tree on disk.
//
// Each directory level is handled in two steps. Plan computes, without any
// I/O, the pairwise end-swaps that reverse a sorted list of paths. Engine then
// replays every swap as a rotation through a fresh temporary name:
//
//	p1 -> tmp, p2 -> p1, tmp -> p2
//
// so no rename ever lands on an occupied name. Subtrees are reversed before
// their parent level (post-order) and only when the parent is a directory.
// Failed renames are logged and collected in a Report; nothing is retried or
// rolled back.
package reversal
