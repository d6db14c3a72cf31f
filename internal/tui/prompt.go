package tui

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vvka-141/revtree/internal/files/filesystem"
	"github.com/vvka-141/revtree/internal/tui/components"
	"github.com/vvka-141/revtree/pkg/revtree"
)

// PathPrompt asks for the root directory with an editable input line and
// Tab completion of directory names. It implements revtree.LineSource.
type PathPrompt struct {
	provider filesystem.FileSystemProvider
	input    io.Reader
	output   io.Writer
}

// NewPathPrompt creates a prompt on stdin/stdout that completes against the
// real filesystem.
func NewPathPrompt() *PathPrompt {
	return NewPathPromptWithIO(filesystem.NewOSFileSystem(), os.Stdin, os.Stdout)
}

// NewPathPromptWithIO creates a prompt with custom streams and provider.
func NewPathPromptWithIO(provider filesystem.FileSystemProvider, input io.Reader, output io.Writer) *PathPrompt {
	return &PathPrompt{provider: provider, input: input, output: output}
}

// ReadLine runs the prompt until the user accepts or cancels.
// Cancelling returns revtree.ErrInputCancelled.
func (p *PathPrompt) ReadLine(ctx context.Context, prompt string) (string, error) {
	program := tea.NewProgram(
		newPathPromptModel(prompt, components.NewPathCompleter(p.provider)),
		tea.WithContext(ctx),
		tea.WithInput(p.input),
		tea.WithOutput(p.output),
	)

	final, err := program.Run()
	if ctxErr := ctx.Err(); ctxErr != nil {
		return "", ctxErr
	}
	if err != nil {
		return "", fmt.Errorf("path prompt failed: %w", err)
	}

	m := final.(pathPromptModel)
	if m.cancelled {
		return "", revtree.ErrInputCancelled
	}
	return m.value, nil
}

type pathPromptModel struct {
	title     string
	input     textinput.Model
	completer *components.PathCompleter
	keys      KeyMap

	value     string
	cancelled bool
	err       string
}

func newPathPromptModel(title string, completer *components.PathCompleter) pathPromptModel {
	ti := textinput.New()
	ti.Placeholder = "./path/to/directory"
	ti.CharLimit = 4096
	ti.Width = 60
	ti.Focus()

	return pathPromptModel{
		title:     title,
		input:     ti,
		completer: completer,
		keys:      DefaultKeyMap(),
	}
}

func (m pathPromptModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m pathPromptModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(msg, m.keys.Cancel):
			m.cancelled = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Accept):
			value := strings.TrimSpace(m.input.Value())
			if value == "" {
				m.err = "a root directory is required"
				return m, nil
			}
			m.value = value
			return m, tea.Quit

		case key.Matches(msg, m.keys.Complete):
			m.input.SetValue(m.completer.Next(m.input.Value()))
			m.input.CursorEnd()
			m.err = ""
			return m, nil
		}

		m.completer.Reset()
		m.err = ""
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m pathPromptModel) View() string {
	var b strings.Builder

	b.WriteString(TitleStyle.Render(m.title))
	b.WriteString("\n")
	b.WriteString(InputStyle.Render(m.input.View()))
	b.WriteString("\n")
	if m.err != "" {
		b.WriteString(ErrorStyle.Render(SymbolError + " " + m.err))
		b.WriteString("\n")
	}
	b.WriteString(HelpStyle.Render(m.keys.HelpText()))
	b.WriteString("\n")

	return b.String()
}

var _ revtree.LineSource = (*PathPrompt)(nil)
