package tree

import (
	"cmp"
	"slices"
)

// Node is one filesystem entry and the entries discovered beneath it.
// Paths are not updated when the entries are renamed on disk.
type Node struct {
	Path     string
	Children []*Node
}

// New creates a node without children.
func New(path string) *Node {
	return &Node{Path: path}
}

// Add appends child to the node's children.
func (n *Node) Add(child *Node) {
	n.Children = append(n.Children, child)
}

// Equal reports whether both nodes have the same path. Children are ignored.
func (n *Node) Equal(other *Node) bool {
	return n.Path == other.Path
}

// Compare orders nodes by path: -1, 0 or +1.
func (n *Node) Compare(other *Node) int {
	return cmp.Compare(n.Path, other.Path)
}

// Less reports whether n sorts before other.
func (n *Node) Less(other *Node) bool {
	return n.Compare(other) < 0
}

// SortChildren sorts the children in place by path.
func (n *Node) SortChildren() {
	slices.SortFunc(n.Children, func(a, b *Node) int { return a.Compare(b) })
}

// ChildPaths returns the paths of the children in their current order.
func (n *Node) ChildPaths() []string {
	paths := make([]string, len(n.Children))
	for i, c := range n.Children {
		paths[i] = c.Path
	}
	return paths
}

// Count returns the number of nodes in the tree rooted at n.
func (n *Node) Count() int {
	total := 1
	for _, c := range n.Children {
		total += c.Count()
	}
	return total
}
