// Package logging provides concrete implementations of the revtree.Logger interface.
//
// Available implementations:
//   - ConsoleLogger: progress to stdout, diagnostics to stderr, thread-safe
//   - NullLogger: Discards all messages (useful for testing)
//
// All logger implementations are safe for concurrent use by multiple goroutines.
package logging
