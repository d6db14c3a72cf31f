// Package files groups the file-related sub-packages.
//
//   - filesystem: filesystem abstraction (OS and in-memory) and the lenient
//     Accessor the tree builder and the reversal engine work through
//
// # Usage
//
//	import "github.com/vvka-141/revtree/internal/files/filesystem"
//
//	accessor := filesystem.NewAccessor(filesystem.NewOSFileSystem(), logger)
//	entries, err := accessor.ListEntries("./photos")
package files
