package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gopkg.in/ini.v1"
	"gopkg.in/yaml.v3"

	"github.com/vvka-141/revtree/pkg/revtree"
)

// ErrConfigNotFound is returned when the config file does not exist.
// Callers can check for this with errors.Is(err, config.ErrConfigNotFound).
var ErrConfigNotFound = errors.New("config file not found")

// Tree printing modes accepted by print_tree and --print-tree.
const (
	PrintTreeNone  = "none"
	PrintTreePlain = "plain"
	PrintTreeFancy = "fancy"
)

// Config holds the settings a run can take from a file or the environment.
type Config struct {
	Verbose   bool   `yaml:"verbose" ini:"verbose"`
	Strict    bool   `yaml:"strict" ini:"strict"`
	DryRun    bool   `yaml:"dry_run" ini:"dry_run"`
	PrintTree string `yaml:"print_tree" ini:"print_tree"`
}

// Default returns the settings used when nothing overrides them.
func Default() *Config {
	return &Config{PrintTree: PrintTreeNone}
}

// Load reads a config file. Files ending in .ini are parsed as INI with the
// keys in the default section, everything else as YAML.
func Load(configPath string) (*Config, error) {
	data, err := os.ReadFile(configPath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%s: %w", configPath, ErrConfigNotFound)
		}
		return nil, fmt.Errorf("failed to read config %s: %w", configPath, err)
	}

	cfg := Default()
	switch strings.ToLower(filepath.Ext(configPath)) {
	case ".ini":
		file, err := ini.Load(data)
		if err != nil {
			return nil, fmt.Errorf("%w: %s: %v", revtree.ErrInvalidConfig, configPath, err)
		}
		if err := file.MapTo(cfg); err != nil {
			return nil, fmt.Errorf("%w: %s: %v", revtree.ErrInvalidConfig, configPath, err)
		}
	default:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("%w: %s: %v", revtree.ErrInvalidConfig, configPath, err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", configPath, err)
	}
	return cfg, nil
}

// LoadOptional loads revtree.yaml from dir, falling back to Default when
// the file does not exist.
func LoadOptional(dir string) (*Config, error) {
	cfg, err := Load(filepath.Join(dir, revtree.ConfigFileName))
	if errors.Is(err, ErrConfigNotFound) {
		return Default(), nil
	}
	return cfg, err
}

// ApplyEnv overrides settings from REVTREE_* variables looked up through
// getenv. Empty variables are ignored.
func (c *Config) ApplyEnv(getenv func(string) string) error {
	bools := []struct {
		name   string
		target *bool
	}{
		{revtree.EnvPrefix + "VERBOSE", &c.Verbose},
		{revtree.EnvPrefix + "STRICT", &c.Strict},
		{revtree.EnvPrefix + "DRY_RUN", &c.DryRun},
	}
	for _, b := range bools {
		raw := getenv(b.name)
		if raw == "" {
			continue
		}
		v, err := strconv.ParseBool(raw)
		if err != nil {
			return fmt.Errorf("%w: %s=%q is not a boolean", revtree.ErrInvalidConfig, b.name, raw)
		}
		*b.target = v
	}

	if raw := getenv(revtree.EnvPrefix + "PRINT_TREE"); raw != "" {
		c.PrintTree = raw
	}
	return c.Validate()
}

// Validate checks print_tree, treating an empty value as none.
func (c *Config) Validate() error {
	switch c.PrintTree {
	case "":
		c.PrintTree = PrintTreeNone
	case PrintTreeNone, PrintTreePlain, PrintTreeFancy:
	default:
		return fmt.Errorf("%w: print_tree must be one of none, plain, fancy (got %q)", revtree.ErrInvalidConfig, c.PrintTree)
	}
	return nil
}
