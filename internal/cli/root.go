package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "revtree [root_path]",
	Short: "Reverse the order of entries in every directory of a tree",
	Long: `revtree walks a directory tree and reverses the order of the entries in
every directory by swapping their names: the first entry in sorted order takes
the name of the last one, the second takes the name of the second to last, and
so on. Subdirectories are reversed before their parent.

Every swap goes through a temporary name in the same directory. A failed
rename is reported and the remaining swaps continue; use --strict to turn any
failure into a non-zero exit.

When root_path is omitted, revtree asks for it.

Exit Codes:
  0  - Success (also when renames failed, unless --strict)
  1  - General error
  2  - CLI usage error (invalid arguments or flags)
  3  - Panic or unexpected system error
  10 - Invalid configuration or root path not found
  12 - Renames failed (with --strict)
  13 - Input cancelled`,
	Args:              cobra.MaximumNArgs(1),
	ValidArgsFunction: completeRootPath,
	SilenceUsage:      true,
	RunE:              runReverse,
}

// Execute runs the root command. SIGINT and SIGTERM cancel the command context.
func Execute() error {
	if len(os.Args) > 1 && os.Args[1] == "--version" {
		printVersionInfo(os.Stdout)
		return nil
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return rootCmd.ExecuteContext(ctx)
}

func init() {
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose output for all commands")
}

// getVerboseFlag safely retrieves the verbose flag value
func getVerboseFlag(cmd *cobra.Command) bool {
	verbose, err := cmd.Flags().GetBool("verbose")
	if err != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "Warning: Failed to get verbose flag: %v\n", err)
		return false
	}
	return verbose
}

func commandContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}
