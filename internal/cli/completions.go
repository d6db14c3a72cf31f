package cli

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/vvka-141/revtree/internal/config"
)

// printTreeModes contains the values accepted by --print-tree.
var printTreeModes = []string{config.PrintTreeNone, config.PrintTreePlain, config.PrintTreeFancy}

// completeRootPath limits shell completion of root_path to directories.
func completeRootPath(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	if len(args) > 0 {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	return nil, cobra.ShellCompDirectiveFilterDirs
}

// completePrintTreeModes provides shell completion for --print-tree values.
func completePrintTreeModes(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	var matches []string
	for _, mode := range printTreeModes {
		if strings.HasPrefix(mode, toComplete) {
			matches = append(matches, mode)
		}
	}
	return matches, cobra.ShellCompDirectiveNoFileComp
}
