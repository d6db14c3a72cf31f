package tui

import (
	"os"

	"golang.org/x/term"
)

// Mode represents the interaction mode for revtree.
type Mode int

const (
	// ModeNonInteractive is used for scripts, CI and piped input.
	ModeNonInteractive Mode = iota
	// ModeInteractive is used when a human is at the terminal.
	ModeInteractive
)

// NonInteractiveEnv forces plain line prompts when set to "1".
const NonInteractiveEnv = "REVTREE_NON_INTERACTIVE"

// DetectMode decides whether the root path prompt may use the full-screen
// editor.
//
// Returns ModeNonInteractive if:
//   - REVTREE_NON_INTERACTIVE=1 is set
//   - CI is set
//   - NO_COLOR is set
//   - stdin or stdout is not a terminal
func DetectMode() Mode {
	if os.Getenv(NonInteractiveEnv) == "1" {
		return ModeNonInteractive
	}
	if os.Getenv("CI") != "" || os.Getenv("NO_COLOR") != "" {
		return ModeNonInteractive
	}

	if !term.IsTerminal(int(os.Stdin.Fd())) || !term.IsTerminal(int(os.Stdout.Fd())) {
		return ModeNonInteractive
	}

	return ModeInteractive
}

// IsInteractive reports whether DetectMode returns ModeInteractive.
func IsInteractive() bool {
	return DetectMode() == ModeInteractive
}
