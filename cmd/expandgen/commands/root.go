// Package commands implements the expandgen command line.
package commands

import (
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/teranos/expandgen/config"
	"github.com/teranos/expandgen/errors"
	"github.com/teranos/expandgen/logger"
	"github.com/teranos/expandgen/pipeline"
	"github.com/teranos/expandgen/version"
)

// RootCmd is the expandgen command.
var RootCmd = &cobra.Command{
	Use:   "expandgen",
	Short: "expandgen - compile annotated variant schemas into argument renderers",
	Long: `expandgen reads .expand schema files describing tagged unions and
generates, for every variant, a function that renders it as command line
tokens, plus tests synthesized from the @expand(test ...) examples.

Available commands:
  generate - Write generated code next to each schema
  check    - Fail when generated files are out of date
  fmt      - Print schemas in canonical form
  inspect  - Show how every variant resolved
  render   - Render one instance expression
  verify   - Run schema examples without generating code
  watch    - Regenerate when schemas change
  config   - Show, create or validate configuration

Examples:
  expandgen generate                 # all *.expand files in the current directory
  expandgen check ./tor              # CI freshness check
  expandgen render tor/flags.expand 'BandwidthRate(256, MBits)'`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if noColor, _ := cmd.Flags().GetBool("no-color"); noColor {
			pterm.DisableColor()
		}

		cfg, err := loadConfig(cmd)
		if err != nil {
			// config validate reports problems itself
			if cmd.Name() == "validate" {
				return nil
			}
			return err
		}

		verbosity, _ := cmd.Flags().GetCount("verbose")
		if verbosity >= logger.VerbosityDebug {
			pterm.EnableDebugMessages()
		}
		if err := logger.Initialize(cfg.Log.JSON, verbosity); err != nil {
			return errors.Wrap(err, "failed to initialize logger")
		}
		if logger.ShouldOutput(verbosity, logger.OutputConfig) {
			g := cfg.Generate
			pterm.Debug.Printfln("config: assert=%s jobs=%d check_custom=%t suffixes=%s,%s",
				g.Assert, g.Jobs, g.CheckCustom, g.OutputSuffix, g.TestSuffix)
		}
		return nil
	},
}

func init() {
	RootCmd.PersistentFlags().CountP("verbose", "v", "Increase output verbosity (repeat for more detail: -v, -vv, -vvv)")
	RootCmd.PersistentFlags().String("config", "", "Use this config file instead of searching for expandgen.toml")
	RootCmd.PersistentFlags().Bool("no-color", false, "Disable colored output")

	RootCmd.AddCommand(GenerateCmd)
	RootCmd.AddCommand(CheckCmd)
	RootCmd.AddCommand(FmtCmd)
	RootCmd.AddCommand(InspectCmd)
	RootCmd.AddCommand(RenderCmd)
	RootCmd.AddCommand(VerifyCmd)
	RootCmd.AddCommand(WatchCmd)
	RootCmd.AddCommand(ConfigCmd)
	RootCmd.AddCommand(VersionCmd)
}

// loadConfig honours --config, otherwise searches the usual locations.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	if path, _ := cmd.Flags().GetString("config"); path != "" {
		cfg, err := config.LoadFromFile(path)
		if err != nil {
			return nil, err
		}
		return cfg, cfg.Validate()
	}
	return config.Load()
}

// shouldOutput reports whether category is shown at the command's -v count.
func shouldOutput(cmd *cobra.Command, category logger.OutputCategory) bool {
	verbosity, _ := cmd.Flags().GetCount("verbose")
	return logger.ShouldOutput(verbosity, category)
}

func newPipeline(cfg *config.Config) *pipeline.Pipeline {
	return pipeline.New(cfg,
		pipeline.WithVersion(version.Version),
		pipeline.WithLogger(logger.ComponentLogger("pipeline")))
}

// printDiagnostics writes every result's diagnostics to stderr.
func printDiagnostics(cmd *cobra.Command, results []*pipeline.Result) {
	if !shouldOutput(cmd, logger.OutputDiagnostics) {
		return
	}
	color := pterm.PrintColor
	for _, r := range results {
		if r == nil || len(r.Diagnostics) == 0 {
			continue
		}
		cmd.PrintErrln(r.Diagnostics.Format(color))
	}
}

// build discovers schemas from args and processes them, printing diagnostics.
func build(cmd *cobra.Command, args []string) (*config.Config, *pipeline.Pipeline, []*pipeline.Result, error) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return nil, nil, nil, err
	}
	paths, err := pipeline.Discover(args)
	if err != nil {
		return nil, nil, nil, err
	}

	p := newPipeline(cfg)
	results, err := p.Build(cmd.Context(), paths)
	printDiagnostics(cmd, results)
	return cfg, p, results, err
}
