package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vvka-141/revtree/internal/files/filesystem"
	"github.com/vvka-141/revtree/internal/generator"
	"github.com/vvka-141/revtree/internal/logging"
	"github.com/vvka-141/revtree/pkg/revtree"
)

var generateCmd = &cobra.Command{
	Use:   "generate <path>",
	Short: "Create a binary tree of left/right directories",
	Long: `Generate creates path and, below it, a "left" and a "right" directory at
every level until the requested depth is reached. Existing directories are
kept. The result is a convenient fixture for trying out a reversal.

Examples:
  revtree generate ./fixture
  revtree generate ./fixture --depth 5`,
	Args: RequirePathArg,
	RunE: runGenerate,
}

var generateDepth int

func init() {
	rootCmd.AddCommand(generateCmd)
	generateCmd.Flags().IntVar(&generateDepth, "depth", revtree.DefaultGenerateDepth,
		"Number of directory levels to create, including path itself")
}

func runGenerate(cmd *cobra.Command, args []string) error {
	if generateDepth < 0 {
		return fmt.Errorf("%w: --depth must not be negative, got %d", revtree.ErrInvalidConfig, generateDepth)
	}

	logger := logging.NewConsoleLoggerWithWriters(getVerboseFlag(cmd), cmd.OutOrStdout(), cmd.ErrOrStderr())
	accessor := filesystem.NewAccessor(newProvider(), logger)

	if err := generator.Generate(accessor, args[0], generateDepth); err != nil {
		return fmt.Errorf("failed to generate tree under %s: %w", args[0], err)
	}
	logger.Verbose("Generated %d levels under %s", generateDepth, args[0])
	return nil
}
