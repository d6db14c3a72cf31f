// Package filesystem provides the filesystem access layer used to scan and
// rearrange directory trees.
//
// Two layers:
//   - FileSystemProvider: strict operations that return every error
//     (ReadDir, Stat, Mkdir, Rename, TempPath)
//   - Accessor: the lenient policy on top of a provider. Failed lookups
//     become empty listings or "not a directory" alongside the error, and
//     renames are logged and reported as RenameResult values
//
// Implementations:
//   - OSFileSystem: Production implementation using OS filesystem
//   - MemoryFileSystem: In-memory implementation for testing, with
//     insertion-ordered listings and rename failure injection
package filesystem
