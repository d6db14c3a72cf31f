// Package tree models a scanned directory tree.
//
// A Node is identified and ordered solely by its path string; children keep
// the order in which the directory listing returned them. Build populates a
// tree from a live filesystem through a Lister, and Render / RenderFancy
// print it depth-first.
package tree
