package cli

import (
	"github.com/spf13/cobra"

	"github.com/vvka-141/revtree/internal/config"
	"github.com/vvka-141/revtree/internal/files/filesystem"
	"github.com/vvka-141/revtree/internal/logging"
	"github.com/vvka-141/revtree/internal/tree"
)

var treeCmd = &cobra.Command{
	Use:   "tree <root_path>",
	Short: "Print the directory tree as revtree scans it",
	Long: `Tree scans root_path the same way a reversal does and prints every entry,
indented by depth, in the order the directory listing returned it.

Examples:
  revtree tree ./photos
  revtree tree ./photos --fancy`,
	Args:              RequirePathArg,
	ValidArgsFunction: completeRootPath,
	RunE:              runTree,
}

var treeFancy bool

func init() {
	rootCmd.AddCommand(treeCmd)
	treeCmd.Flags().BoolVar(&treeFancy, "fancy", false, "Draw the tree with box-drawing characters")
}

func runTree(cmd *cobra.Command, args []string) error {
	rootPath := args[0]
	logger := logging.NewConsoleLoggerWithWriters(getVerboseFlag(cmd), cmd.OutOrStdout(), cmd.ErrOrStderr())

	provider := newProvider()
	if err := checkRootExists(provider, rootPath); err != nil {
		return err
	}

	root := tree.NewBuilder(filesystem.NewAccessor(provider, logger), logger).Build(rootPath)

	mode := config.PrintTreePlain
	if treeFancy {
		mode = config.PrintTreeFancy
	}
	return printTree(cmd.OutOrStdout(), root, mode)
}
