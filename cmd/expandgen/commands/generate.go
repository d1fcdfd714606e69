package commands

import (
	"fmt"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/teranos/expandgen/logger"
	"github.com/teranos/expandgen/pipeline"
)

// GenerateCmd writes generated code for each schema file
var GenerateCmd = &cobra.Command{
	Use:   "generate [files or dirs...]",
	Short: "Generate render code and tests from .expand schemas",
	Long: `Generate reads each schema and writes <name>_expand.go and
<name>_expand_test.go next to it. Files whose content did not change are
left untouched. With no arguments every *.expand file in the current
directory is processed.

-v lists the files written, -vv adds per-variant resolution and timing, and
-vvvv prints the generated source.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		_, p, results, err := build(cmd, args)
		if err != nil {
			return err
		}

		for _, r := range results {
			describeResult(cmd, r)
		}

		written, err := p.Write(results)
		if err != nil {
			return err
		}
		if shouldOutput(cmd, logger.OutputProgress) {
			for _, path := range written {
				pterm.Info.Println("wrote " + path)
			}
		}

		total := 0
		for _, r := range results {
			total += len(r.Artifacts)
		}
		if shouldOutput(cmd, logger.OutputUserStatus) {
			pterm.Success.Printfln("Generated %d files from %d schemas (%d unchanged)",
				len(written), len(results), total-len(written))
		}
		return nil
	},
}

// describeResult prints the detail of one processed schema that the -v count asks for.
func describeResult(cmd *cobra.Command, r *pipeline.Result) {
	if shouldOutput(cmd, logger.OutputTiming) {
		pterm.Debug.Printfln("%s processed in %s", r.Path, r.Duration)
	}
	if shouldOutput(cmd, logger.OutputResolution) && r.Schema != nil {
		for _, res := range r.Schema.All() {
			pterm.Debug.Printfln("%s.%s: %s", res.Enum, res.Variant.Name, res.State)
		}
	}
	if shouldOutput(cmd, logger.OutputSource) {
		for _, a := range r.Artifacts {
			fmt.Fprintf(cmd.OutOrStdout(), "// %s\n%s\n", a.Path, a.Content)
		}
	}
}
