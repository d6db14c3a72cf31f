package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/vvka-141/revtree/internal/config"
	"github.com/vvka-141/revtree/pkg/revtree"
)

// resolveRunConfig merges the config file, the environment and the flags.
// Priority (highest to lowest): flags > environment > config file > defaults
func resolveRunConfig(cmd *cobra.Command, flags reverseFlagValues) (*config.Config, error) {
	_ = godotenv.Load()

	cfg, err := loadRunConfig(flags.configPath)
	if err != nil {
		return nil, err
	}

	if err := cfg.ApplyEnv(os.Getenv); err != nil {
		return nil, err
	}

	if cmd.Flags().Changed("verbose") {
		cfg.Verbose = getVerboseFlag(cmd)
	}
	if cmd.Flags().Changed("dry-run") {
		cfg.DryRun = flags.dryRun
	}
	if cmd.Flags().Changed("strict") {
		cfg.Strict = flags.strict
	}
	if cmd.Flags().Changed("print-tree") {
		cfg.PrintTree = flags.printTree
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// loadRunConfig loads an explicit --config file, or revtree.yaml from the
// working directory when it exists.
func loadRunConfig(configPath string) (*config.Config, error) {
	if configPath == "" {
		cfg, err := config.LoadOptional(".")
		if err != nil {
			return nil, fmt.Errorf("failed to load %s: %w", revtree.ConfigFileName, err)
		}
		return cfg, nil
	}

	cfg, err := config.Load(configPath)
	if errors.Is(err, config.ErrConfigNotFound) {
		return nil, fmt.Errorf("%w: %v", revtree.ErrInvalidConfig, err)
	}
	return cfg, err
}
