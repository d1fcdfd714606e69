package commands

import (
	"fmt"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/teranos/expandgen/errors"
	"github.com/teranos/expandgen/logger"
	"github.com/teranos/expandgen/render"
	"github.com/teranos/expandgen/testgen"
)

var verifyBareSymbols bool

// VerifyCmd runs schema examples against the runtime renderer
var VerifyCmd = &cobra.Command{
	Use:   "verify [files or dirs...]",
	Short: "Check @expand(test ...) examples without generating code",
	Long: `Verify renders every example whose arguments are literals and
compares the result with the expected string. Examples that need Go values,
or variants with custom functions, are skipped. Use -v to list each example
and -vvv to also print what each passing example rendered.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		_, _, results, err := build(cmd, args)
		if err != nil {
			return err
		}

		ev := testgen.Evaluator{BareSymbols: verifyBareSymbols}

		var combined error
		for _, res := range results {
			table, err := render.Compile(res.Schema, render.SkipUnregisteredCustom())
			if err != nil {
				return err
			}
			cases, err := testgen.Cases(res.Schema)
			if err != nil {
				return err
			}

			report := testgen.Verify(table, cases, testgen.WithEvaluator(ev))
			for _, r := range report.Results {
				switch r.Outcome {
				case testgen.Failed:
					pterm.Error.Printfln("%s: %s", r.Case.Name, r.Message())
				case testgen.Passed:
					if shouldOutput(cmd, logger.OutputTokens) {
						fmt.Fprintf(cmd.OutOrStdout(), "%s: %s\n", r.Case.Name, r.Got)
					} else if shouldOutput(cmd, logger.OutputSkippedCases) {
						pterm.Success.Println(r.Case.Name)
					}
				case testgen.Skipped:
					if shouldOutput(cmd, logger.OutputSkippedCases) {
						pterm.Warning.Printfln("%s: %s", r.Case.Name, r.Message())
					}
				}
			}
			if shouldOutput(cmd, logger.OutputUserStatus) {
				pterm.Info.Printfln("%s: %d passed, %d failed, %d skipped", res.Path,
					report.Count(testgen.Passed), report.Count(testgen.Failed), report.Count(testgen.Skipped))
			}

			if err := report.Err(); err != nil {
				combined = errors.CombineErrors(combined, errors.Wrapf(err, "%s", res.Path))
			}
		}
		return combined
	},
}

func init() {
	VerifyCmd.Flags().BoolVar(&verifyBareSymbols, "bare-symbols", true, "Render unknown identifiers as their own name")
}
