package cli

import (
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vvka-141/revtree/internal/files/filesystem"
	"github.com/vvka-141/revtree/internal/ui"
	"github.com/vvka-141/revtree/pkg/revtree"
)

func TestReverse_SwapsFirstAndLast(t *testing.T) {
	dir := t.TempDir()
	writeFiles(t, dir, "b", "a", "c")

	stdout, _, err := executeCommand(t, dir)
	require.NoError(t, err)

	assert.Equal(t, "c", readFile(t, filepath.Join(dir, "a")))
	assert.Equal(t, "b", readFile(t, filepath.Join(dir, "b")))
	assert.Equal(t, "a", readFile(t, filepath.Join(dir, "c")))
	assert.Equal(t, 3, strings.Count(stdout, "Renamed file "))
}

func TestReverse_RecursesIntoSubdirectories(t *testing.T) {
	dir := t.TempDir()
	sub := filepath.Join(dir, "sub")
	require.NoError(t, os.Mkdir(sub, 0755))
	writeFiles(t, sub, "x", "y")

	_, _, err := executeCommand(t, dir)
	require.NoError(t, err)

	assert.Equal(t, "y", readFile(t, filepath.Join(sub, "x")))
	assert.Equal(t, "x", readFile(t, filepath.Join(sub, "y")))
}

func TestReverse_DryRunLeavesTreeAlone(t *testing.T) {
	dir := t.TempDir()
	writeFiles(t, dir, "a", "b")

	stdout, _, err := executeCommand(t, dir, "--dry-run")
	require.NoError(t, err)

	assert.Equal(t, "a", readFile(t, filepath.Join(dir, "a")))
	assert.Equal(t, "b", readFile(t, filepath.Join(dir, "b")))
	assert.Contains(t, stdout, "Would rename "+filepath.Join(dir, "a"))
	assert.NotContains(t, stdout, "Renamed file")
}

func TestReverse_EnvDryRunAndFlagOverride(t *testing.T) {
	dir := t.TempDir()
	writeFiles(t, dir, "a", "b")

	clearRevtreeEnv(t)
	t.Setenv("REVTREE_DRY_RUN", "true")

	// executeCommand clears the variables, so set them through a wrapper
	run := func(args ...string) error {
		resetCommandFlags(rootCmd)
		rootCmd.SetArgs(args)
		rootCmd.SetOut(new(strings.Builder))
		rootCmd.SetErr(new(strings.Builder))
		t.Cleanup(func() {
			resetCommandFlags(rootCmd)
			rootCmd.SetArgs(nil)
			rootCmd.SetOut(nil)
			rootCmd.SetErr(nil)
		})
		return rootCmd.Execute()
	}

	require.NoError(t, run(dir))
	assert.Equal(t, "a", readFile(t, filepath.Join(dir, "a")), "environment enables dry run")

	require.NoError(t, run(dir, "--dry-run=false"))
	assert.Equal(t, "b", readFile(t, filepath.Join(dir, "a")), "flag beats environment")
}

func TestReverse_ConfigFile(t *testing.T) {
	dir := t.TempDir()
	writeFiles(t, dir, "a", "b")

	cfgPath := filepath.Join(t.TempDir(), "settings.ini")
	require.NoError(t, os.WriteFile(cfgPath, []byte("dry_run = true\nprint_tree = plain\n"), 0644))

	stdout, _, err := executeCommand(t, dir, "--config", cfgPath)
	require.NoError(t, err)

	assert.Equal(t, "a", readFile(t, filepath.Join(dir, "a")))
	assert.True(t, strings.HasPrefix(stdout, dir+"\n"), "tree printed first, got %q", stdout)
}

func TestReverse_MissingConfigFile(t *testing.T) {
	_, _, err := executeCommand(t, t.TempDir(), "--config", filepath.Join(t.TempDir(), "absent.yaml"))

	require.Error(t, err)
	assert.ErrorIs(t, err, revtree.ErrInvalidConfig)
	assert.Equal(t, revtree.ExitConfigError, revtree.ExitCodeForError(err))
}

func TestReverse_InvalidPrintTree(t *testing.T) {
	_, _, err := executeCommand(t, t.TempDir(), "--print-tree", "sideways")

	assert.ErrorIs(t, err, revtree.ErrInvalidConfig)
}

func TestReverse_PrintTreePlain(t *testing.T) {
	dir := t.TempDir()
	writeFiles(t, dir, "only")

	stdout, _, err := executeCommand(t, dir, "--print-tree", "plain")
	require.NoError(t, err)

	assert.Equal(t, dir+"\n  "+filepath.Join(dir, "only")+"\n", stdout)
}

func TestReverse_RootNotFound(t *testing.T) {
	_, _, err := executeCommand(t, filepath.Join(t.TempDir(), "missing"))

	require.Error(t, err)
	assert.ErrorIs(t, err, revtree.ErrRootNotFound)
	assert.Equal(t, revtree.ExitConfigError, revtree.ExitCodeForError(err))
}

func TestReverse_FileRootIsNoOp(t *testing.T) {
	dir := t.TempDir()
	writeFiles(t, dir, "file")

	stdout, _, err := executeCommand(t, filepath.Join(dir, "file"))
	require.NoError(t, err)
	assert.Empty(t, stdout)
}

func TestReverse_TooManyArgs(t *testing.T) {
	_, _, err := executeCommand(t, "a", "b")

	require.Error(t, err)
	assert.Equal(t, revtree.ExitUsageError, revtree.ExitCodeForError(err))
}

func TestReverse_StrictWithoutFailures(t *testing.T) {
	dir := t.TempDir()
	writeFiles(t, dir, "a", "b")

	_, _, err := executeCommand(t, dir, "--strict")
	assert.NoError(t, err)
}

func TestReverse_PromptsForRoot(t *testing.T) {
	dir := t.TempDir()
	writeFiles(t, dir, "a", "b")
	source := &stubLineSource{line: dir}
	useLineSource(t, source)

	_, _, err := executeCommand(t)
	require.NoError(t, err)

	assert.Equal(t, []string{revtree.RootPrompt}, source.prompts)
	assert.Equal(t, "b", readFile(t, filepath.Join(dir, "a")))
}

func TestReverse_PromptCancelled(t *testing.T) {
	useLineSource(t, &stubLineSource{err: revtree.ErrInputCancelled})

	_, _, err := executeCommand(t)

	assert.ErrorIs(t, err, revtree.ErrInputCancelled)
	assert.Equal(t, revtree.ExitInputCancelled, revtree.ExitCodeForError(err))
}

func TestReverse_EmptyPromptAnswer(t *testing.T) {
	useLineSource(t, &stubLineSource{line: ""})

	_, _, err := executeCommand(t)

	assert.ErrorIs(t, err, revtree.ErrRootNotFound)
}

func TestReverse_InterruptedPromptIsCancellation(t *testing.T) {
	useLineSource(t, &stubLineSource{err: context.Canceled})

	_, _, err := executeCommand(t)

	assert.ErrorIs(t, err, revtree.ErrInputCancelled)
}

func TestReverse_StrictWithFailedRenames(t *testing.T) {
	mfs := filesystem.NewMemoryFileSystem("/data")
	mfs.AddFile("a", "A")
	mfs.AddFile("b", "B")
	mfs.FailRename(func(src, dst string) error { return errors.New("device busy") })
	useProvider(t, mfs)

	stdout, _, err := executeCommand(t, "/data", "--strict")

	require.Error(t, err)
	assert.ErrorIs(t, err, revtree.ErrRenameFailed)
	assert.Equal(t, revtree.ExitRenameFailed, revtree.ExitCodeForError(err))
	assert.Contains(t, stdout, "Couldn't rename file /data/a to ")
	content, readErr := mfs.ReadFile("/data/a")
	require.NoError(t, readErr)
	assert.Equal(t, "A", string(content))
}

func TestReverse_FailedRenamesWithoutStrictExitZero(t *testing.T) {
	mfs := filesystem.NewMemoryFileSystem("/data")
	mfs.AddFile("a", "A")
	mfs.AddFile("b", "B")
	mfs.FailRename(func(src, dst string) error { return errors.New("device busy") })
	useProvider(t, mfs)

	stdout, _, err := executeCommand(t, "/data")

	require.NoError(t, err)
	assert.Equal(t, 3, strings.Count(stdout, "Couldn't rename file "))
}

func TestReverse_StrictOnReadOnlyDirectory(t *testing.T) {
	if os.Geteuid() == 0 {
		t.Skip("root ignores directory permissions")
	}

	dir := t.TempDir()
	writeFiles(t, dir, "a", "b")
	require.NoError(t, os.Chmod(dir, 0555))
	t.Cleanup(func() { _ = os.Chmod(dir, 0755) })

	_, _, err := executeCommand(t, dir, "--strict")

	require.Error(t, err)
	assert.Equal(t, revtree.ExitRenameFailed, revtree.ExitCodeForError(err))
	assert.Equal(t, "a", readFile(t, filepath.Join(dir, "a")))
}

func TestReverse_VerboseDryRunAnnouncesItself(t *testing.T) {
	dir := t.TempDir()
	writeFiles(t, dir, "a", "b")

	_, stderr, err := executeCommand(t, dir, "--dry-run", "-v")
	require.NoError(t, err)

	assert.Contains(t, stderr, "[VERBOSE] Dry run: nothing under "+dir+" will be renamed")
}

func TestReverse_EndOfInputAtPromptIsRootNotFound(t *testing.T) {
	useLineSource(t, ui.NewConsolePromptWithIO(strings.NewReader(""), io.Discard))

	_, _, err := executeCommand(t)

	assert.ErrorIs(t, err, revtree.ErrRootNotFound)
	assert.Equal(t, revtree.ExitConfigError, revtree.ExitCodeForError(err))
}
