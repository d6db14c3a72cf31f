package cli

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/require"

	"github.com/vvka-141/revtree/internal/files/filesystem"
	"github.com/vvka-141/revtree/pkg/revtree"
)

// resetCommandFlags restores every flag of cmd and its subcommands to its
// default so rootCmd can be executed more than once per test binary.
func resetCommandFlags(cmd *cobra.Command) {
	reset := func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	}
	cmd.Flags().VisitAll(reset)
	cmd.PersistentFlags().VisitAll(reset)
	for _, c := range cmd.Commands() {
		resetCommandFlags(c)
	}
}

// clearRevtreeEnv keeps the caller's environment out of the test.
func clearRevtreeEnv(t *testing.T) {
	t.Helper()
	for _, name := range []string{"VERBOSE", "STRICT", "DRY_RUN", "PRINT_TREE"} {
		t.Setenv(revtree.EnvPrefix+name, "")
	}
}

func executeCommand(t *testing.T, args ...string) (stdout, stderr string, err error) {
	t.Helper()
	clearRevtreeEnv(t)
	resetCommandFlags(rootCmd)
	t.Cleanup(func() { resetCommandFlags(rootCmd) })

	var out, errOut bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&errOut)
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
		rootCmd.SetArgs(nil)
	})

	err = rootCmd.ExecuteContext(context.Background())
	return out.String(), errOut.String(), err
}

// writeFiles creates one file per name in dir, each holding its own name.
func writeFiles(t *testing.T, dir string, names ...string) {
	t.Helper()
	for _, name := range names {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(name), 0644))
	}
}

func readFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	return string(data)
}

type stubLineSource struct {
	line    string
	err     error
	prompts []string
}

func (s *stubLineSource) ReadLine(_ context.Context, prompt string) (string, error) {
	s.prompts = append(s.prompts, prompt)
	return s.line, s.err
}

func useLineSource(t *testing.T, source revtree.LineSource) {
	t.Helper()
	original := newLineSource
	newLineSource = func() revtree.LineSource { return source }
	t.Cleanup(func() { newLineSource = original })
}

func useProvider(t *testing.T, provider filesystem.FileSystemProvider) {
	t.Helper()
	original := newProvider
	newProvider = func() filesystem.FileSystemProvider { return provider }
	t.Cleanup(func() { newProvider = original })
}
