package cli

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vvka-141/revtree/internal/files/filesystem"
	"github.com/vvka-141/revtree/pkg/revtree"
)

// RequirePathArg validates that exactly one path argument is provided.
// The error for a missing argument names it as the command's Use line does
// and shows usage with an example.
func RequirePathArg(cmd *cobra.Command, args []string) error {
	if len(args) < 1 {
		return fmt.Errorf(`requires at least 1 arg(s), only received 0: missing %s

Usage: %s

Example:
  %s ./photos`, argName(cmd), cmd.UseLine(), cmd.CommandPath())
	}
	if len(args) > 1 {
		return fmt.Errorf("accepts 1 arg(s), received %d", len(args))
	}
	return nil
}

// argName returns the first argument placeholder of cmd.Use, e.g. "<path>"
// for "generate <path>".
func argName(cmd *cobra.Command) string {
	fields := strings.Fields(cmd.Use)
	if len(fields) < 2 {
		return "<path>"
	}
	return fields[1]
}

// checkRootExists turns a missing root into revtree.ErrRootNotFound.
// A root that is a regular file is accepted.
func checkRootExists(provider filesystem.FileSystemProvider, rootPath string) error {
	if _, err := provider.Stat(rootPath); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("%w: %q", revtree.ErrRootNotFound, rootPath)
		}
		return fmt.Errorf("failed to access root path %q: %w", rootPath, err)
	}
	return nil
}
