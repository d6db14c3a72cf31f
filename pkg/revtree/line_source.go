package revtree

import "context"

// LineSource supplies one line of user input, such as the root directory
// to reverse when it was not given on the command line.
//
// Implementations:
//   - ui.ConsolePrompt: prints the prompt and reads a line from a reader
//   - tui.PathPrompt: interactive text input with directory completion
type LineSource interface {
	// ReadLine shows prompt and returns the entered line without
	// surrounding whitespace or the trailing newline.
	ReadLine(ctx context.Context, prompt string) (string, error)
}
