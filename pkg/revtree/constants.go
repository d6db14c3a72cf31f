package revtree

import "os"

// Exit codes for semantic error classification.
// These follow Unix/GNU conventions:
//   - 0: Success
//   - 1: General error
//   - 2: CLI usage error (misuse of command line)
//   - 3+: Application-specific errors
const (
	ExitSuccess        = 0  // Run completed (rename failures only count in strict mode)
	ExitGeneralError   = 1  // Unknown or unclassified error
	ExitUsageError     = 2  // CLI usage error (missing args, invalid flags)
	ExitPanic          = 3  // Internal panic (unexpected crash)
	ExitConfigError    = 10 // Invalid configuration or missing root path
	ExitRenameFailed   = 12 // Strict mode: at least one rename failed
	ExitInputCancelled = 13 // User cancelled the root path prompt
)

const (
	// RootPrompt is shown when the root directory is read from the console.
	RootPrompt = "Enter a root directory."

	// TempNamePrefix prefixes the placeholder names used while rotating a swap.
	TempNamePrefix = ".revtree-"

	// DefaultDirPerm is the permission used for generated directories.
	DefaultDirPerm os.FileMode = 0o755

	// DefaultGenerateDepth is the depth used by `revtree generate` when
	// --depth is not provided.
	DefaultGenerateDepth = 3

	// ConfigFileName is loaded from the working directory when --config is absent.
	ConfigFileName = "revtree.yaml"

	// EnvPrefix prefixes every environment variable revtree reads.
	EnvPrefix = "REVTREE_"
)
