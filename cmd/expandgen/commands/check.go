package commands

import (
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/teranos/expandgen/pipeline"
)

// CheckCmd verifies generated files are current
var CheckCmd = &cobra.Command{
	Use:   "check [files or dirs...]",
	Short: "Check that generated files match their schemas",
	Long: `Check regenerates every schema in memory and compares the result with
the files on disk. The generator version header is ignored. Exits non-zero
when any file is stale or missing.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		_, _, results, err := build(cmd, args)
		if err != nil {
			return err
		}

		res := pipeline.Check(results)
		for _, path := range res.Stale {
			pterm.Warning.Printfln("stale: %s", path)
		}
		for _, path := range res.Missing {
			pterm.Warning.Printfln("missing: %s", path)
		}
		if err := res.Err(); err != nil {
			return err
		}

		pterm.Success.Printfln("All generated files are up to date (%d schemas)", len(results))
		return nil
	},
}
