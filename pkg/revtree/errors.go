package revtree

import (
	"errors"
	"strings"
)

// Sentinel errors for common failure scenarios.
// These enable callers to distinguish error types using errors.Is().
//
// Example usage:
//
//	report := engine.Reverse(root)
//	if errors.Is(report.Err(), revtree.ErrRenameFailed) {
//	    // At least one swap left the tree partially reversed
//	}
var (
	// ErrInvalidConfig indicates the provided configuration is invalid.
	ErrInvalidConfig = errors.New("invalid configuration")

	// ErrRootNotFound indicates the root path does not exist.
	ErrRootNotFound = errors.New("root path not found")

	// ErrRenameFailed indicates at least one rename of a swap failed.
	ErrRenameFailed = errors.New("rename failed")

	// ErrInputCancelled indicates the user cancelled the root path prompt.
	ErrInputCancelled = errors.New("input cancelled")

	// ErrTempPath indicates a temporary rotation name could not be reserved.
	ErrTempPath = errors.New("temporary path unavailable")
)

// ExitCodeForError returns the appropriate exit code for an error.
// Returns ExitSuccess (0) for nil errors, semantic codes for known errors,
// and ExitGeneralError (1) for unclassified errors.
func ExitCodeForError(err error) int {
	if err == nil {
		return ExitSuccess
	}

	switch {
	case errors.Is(err, ErrInvalidConfig), errors.Is(err, ErrRootNotFound):
		return ExitConfigError
	case errors.Is(err, ErrRenameFailed), errors.Is(err, ErrTempPath):
		return ExitRenameFailed
	case errors.Is(err, ErrInputCancelled):
		return ExitInputCancelled
	}

	// cobra reports argument and flag problems as plain errors
	errStr := err.Error()
	if strings.HasPrefix(errStr, "unknown flag") ||
		strings.HasPrefix(errStr, "unknown shorthand flag") ||
		strings.HasPrefix(errStr, "unknown command") ||
		strings.HasPrefix(errStr, "accepts ") ||
		strings.HasPrefix(errStr, "requires at least") ||
		strings.HasPrefix(errStr, "invalid argument") ||
		strings.HasPrefix(errStr, "required flag") {
		return ExitUsageError
	}

	return ExitGeneralError
}
