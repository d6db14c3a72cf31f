package ui

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/vvka-141/revtree/pkg/revtree"
)

// ConsolePrompt implements revtree.LineSource by printing the prompt and
// reading one line from the console.
type ConsolePrompt struct {
	input  io.Reader
	output io.Writer
}

// NewConsolePrompt creates a ConsolePrompt on stdin and stdout.
func NewConsolePrompt() revtree.LineSource {
	return NewConsolePromptWithIO(os.Stdin, os.Stdout)
}

// NewConsolePromptWithIO creates a ConsolePrompt on the given reader and writer.
func NewConsolePromptWithIO(input io.Reader, output io.Writer) *ConsolePrompt {
	return &ConsolePrompt{input: input, output: output}
}

// ReadLine prints prompt on its own line and returns the next input line
// with surrounding whitespace removed. A final line without a newline is
// accepted, and end of input with nothing typed is an empty answer.
func (p *ConsolePrompt) ReadLine(ctx context.Context, prompt string) (string, error) {
	fmt.Fprintln(p.output, prompt)

	// Read user input with context cancellation support
	inputChan := make(chan string, 1)
	errChan := make(chan error, 1)

	go func() {
		reader := bufio.NewReader(p.input)
		input, err := reader.ReadString('\n')
		if err != nil && err != io.EOF {
			errChan <- err
			return
		}
		inputChan <- strings.TrimSpace(input)
	}()

	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case err := <-errChan:
		return "", fmt.Errorf("failed to read input: %w", err)
	case input := <-inputChan:
		return input, nil
	}
}

// Verify ConsolePrompt implements the LineSource interface at compile time
var _ revtree.LineSource = (*ConsolePrompt)(nil)
