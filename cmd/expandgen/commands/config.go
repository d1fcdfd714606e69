package commands

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/teranos/expandgen/config"
	"github.com/teranos/expandgen/errors"
)

// ConfigCmd groups configuration subcommands
var ConfigCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage expandgen configuration",
	Long: `Display and manage expandgen configuration.

Configuration sources (later overrides earlier):
  1. Built-in defaults
  2. User config (~/.expandgen/config.toml)
  3. Project config (expandgen.toml, searched up from the working directory)
  4. EXPANDGEN_* environment variables (EXPANDGEN_GENERATE_ASSERT=std)

Examples:
  expandgen config show                 # Show effective configuration
  expandgen config show --format json   # Show configuration as JSON
  expandgen config init                 # Write expandgen.toml with defaults
  expandgen config validate             # Check config file for mistakes`,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show effective configuration",
	RunE:  runConfigShow,
}

var configInitCmd = &cobra.Command{
	Use:   "init [path]",
	Short: "Write a project config file with default values",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runConfigInit,
}

var configValidateCmd = &cobra.Command{
	Use:   "validate [path]",
	Short: "Validate a config file",
	Long: `Validate loads a config file, checks every value, and reports keys
that expandgen does not recognise. Without a path the project config is used.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runConfigValidate,
}

var (
	configFormat    string
	configInitForce bool
)

func init() {
	configShowCmd.Flags().StringVar(&configFormat, "format", "toml", "Output format: toml, json, yaml")
	configInitCmd.Flags().BoolVar(&configInitForce, "force", false, "Overwrite an existing file (a backup is kept)")

	ConfigCmd.AddCommand(configShowCmd)
	ConfigCmd.AddCommand(configInitCmd)
	ConfigCmd.AddCommand(configValidateCmd)
}

func runConfigShow(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	switch configFormat {
	case "json":
		data, err := json.MarshalIndent(cfg, "", "  ")
		if err != nil {
			return errors.Wrap(err, "failed to marshal config to JSON")
		}
		fmt.Fprintln(out, string(data))

	case "yaml":
		data, err := yaml.Marshal(cfg)
		if err != nil {
			return errors.Wrap(err, "failed to marshal config to YAML")
		}
		fmt.Fprintf(out, "# expandgen configuration\n%s", data)

	case "toml":
		data, err := config.Marshal(cfg)
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "# expandgen configuration\n%s", data)

	default:
		return errors.Newf("unsupported format: %s (supported: toml, json, yaml)", configFormat)
	}

	for _, src := range config.Sources() {
		pterm.Debug.Printfln("loaded %s", src)
	}
	return nil
}

func runConfigInit(cmd *cobra.Command, args []string) error {
	path := config.ProjectFileName
	if len(args) == 1 {
		path = args[0]
	}
	if _, err := os.Stat(path); err == nil && !configInitForce {
		return errors.WithHint(errors.Newf("%s already exists", path), "pass --force to overwrite it")
	}

	if err := config.Save(config.Default(), path); err != nil {
		return err
	}
	abs, _ := filepath.Abs(path)
	pterm.Success.Printfln("Wrote %s", abs)
	return nil
}

func runConfigValidate(cmd *cobra.Command, args []string) error {
	var path string
	if len(args) == 1 {
		path = args[0]
	} else {
		wd, err := os.Getwd()
		if err != nil {
			return errors.Wrap(err, "failed to get working directory")
		}
		path = config.FindProjectConfig(wd)
	}
	if path == "" {
		return errors.WithHint(errors.Newf("no %s found", config.ProjectFileName), "create one with expandgen config init")
	}

	cfg, err := config.LoadFromFile(path)
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return errors.Wrapf(err, "%s", path)
	}

	unknown, err := config.UnknownKeys(path)
	if err != nil {
		return err
	}
	if len(unknown) > 0 {
		for _, k := range unknown {
			pterm.Warning.Printfln("%s: unknown key %s", path, k)
		}
		return errors.Newf("%s has %d unknown keys", path, len(unknown))
	}

	pterm.Success.Printfln("%s is valid", path)
	return nil
}
