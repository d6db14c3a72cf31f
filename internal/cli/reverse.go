package cli

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/vvka-141/revtree/internal/config"
	"github.com/vvka-141/revtree/internal/files/filesystem"
	"github.com/vvka-141/revtree/internal/logging"
	"github.com/vvka-141/revtree/internal/reversal"
	"github.com/vvka-141/revtree/internal/tree"
	"github.com/vvka-141/revtree/internal/tui"
	"github.com/vvka-141/revtree/internal/ui"
	"github.com/vvka-141/revtree/pkg/revtree"
)

type reverseFlagValues struct {
	dryRun, strict        bool
	printTree, configPath string
}

var reverseFlags reverseFlagValues

// newProvider returns the filesystem the commands work on.
var newProvider = func() filesystem.FileSystemProvider {
	return filesystem.NewOSFileSystem()
}

// newLineSource picks the prompt used when root_path is omitted.
var newLineSource = func() revtree.LineSource {
	if tui.IsInteractive() {
		return tui.NewPathPrompt()
	}
	return ui.NewConsolePrompt()
}

func init() {
	rootCmd.Flags().BoolVar(&reverseFlags.dryRun, "dry-run", false,
		"Log the renames without touching the filesystem")
	rootCmd.Flags().BoolVar(&reverseFlags.strict, "strict", false,
		"Exit with code 12 when any rename failed")
	rootCmd.Flags().StringVar(&reverseFlags.printTree, "print-tree", config.PrintTreeNone,
		"Print the scanned tree before reversing: none|plain|fancy")
	rootCmd.Flags().StringVar(&reverseFlags.configPath, "config", "",
		"Config file (.yaml, .yml or .ini). Default: ./revtree.yaml if present")

	_ = rootCmd.RegisterFlagCompletionFunc("print-tree", completePrintTreeModes)
}

func runReverse(cmd *cobra.Command, args []string) error {
	cfg, err := resolveRunConfig(cmd, reverseFlags)
	if err != nil {
		return err
	}

	logger := logging.NewConsoleLoggerWithWriters(cfg.Verbose, cmd.OutOrStdout(), cmd.ErrOrStderr())

	rootPath, err := resolveRootPath(cmd, args)
	if err != nil {
		return err
	}

	provider := newProvider()
	if err := checkRootExists(provider, rootPath); err != nil {
		return err
	}

	accessor := filesystem.NewAccessor(provider, logger)
	accessor.SetDryRun(cfg.DryRun)
	if accessor.DryRun() {
		logger.Verbose("Dry run: nothing under %s will be renamed", rootPath)
	}

	root := tree.NewBuilder(accessor, logger).Build(rootPath)
	logger.Verbose("Scanned %d entries under %s", root.Count()-1, rootPath)

	if err := printTree(cmd.OutOrStdout(), root, cfg.PrintTree); err != nil {
		return err
	}

	report := reversal.NewEngine(accessor, logger).Reverse(root)
	logger.Verbose("Reversed %d directories with %d swaps, %d of %d renames failed",
		report.Levels, report.Swaps, len(report.Failed()), len(report.Renames))

	if cfg.Strict {
		return report.Err()
	}
	return nil
}

// resolveRootPath returns the root_path argument or asks for it.
func resolveRootPath(cmd *cobra.Command, args []string) (string, error) {
	if len(args) == 1 {
		return args[0], nil
	}
	line, err := newLineSource().ReadLine(commandContext(cmd), revtree.RootPrompt)
	if errors.Is(err, context.Canceled) {
		return "", fmt.Errorf("%w: %v", revtree.ErrInputCancelled, err)
	}
	if err != nil {
		return "", err
	}
	return line, nil
}

func printTree(w io.Writer, root *tree.Node, mode string) error {
	var err error
	switch mode {
	case config.PrintTreePlain:
		err = root.Render(w)
	case config.PrintTreeFancy:
		err = root.RenderFancy(w)
	}
	if err != nil {
		return fmt.Errorf("failed to print tree: %w", err)
	}
	return nil
}
