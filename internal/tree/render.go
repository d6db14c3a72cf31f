package tree

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"

	asciitree "github.com/thediveo/go-asciitree"
)

// Render writes the tree depth-first, one path per line, indented by two
// spaces per level.
func (n *Node) Render(w io.Writer) error {
	return n.render(w, 0)
}

func (n *Node) render(w io.Writer, depth int) error {
	if _, err := fmt.Fprintf(w, "%s%s\n", strings.Repeat(" ", depth*2), n.Path); err != nil {
		return err
	}
	for _, c := range n.Children {
		if err := c.render(w, depth+1); err != nil {
			return err
		}
	}
	return nil
}

type asciiNode struct {
	Label    string      `asciitree:"label"`
	Children []asciiNode `asciitree:"children"`
}

func toASCII(n *Node, label string) asciiNode {
	var children []asciiNode
	for _, c := range n.Children {
		children = append(children, toASCII(c, filepath.Base(c.Path)))
	}
	return asciiNode{Label: label, Children: children}
}

// RenderFancy writes the tree with box-drawing branches. The root is labeled
// with its full path, every other node with its base name. Siblings are
// listed by name.
func (n *Node) RenderFancy(w io.Writer) error {
	_, err := fmt.Fprint(w, asciitree.RenderFancy(toASCII(n, n.Path)))
	return err
}
