package commands

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/teranos/expandgen/errors"
	"github.com/teranos/expandgen/render"
	"github.com/teranos/expandgen/resolve"
	"github.com/teranos/expandgen/testgen"
)

var (
	renderShell  bool
	renderTokens bool
)

// RenderCmd renders one instance expression
var RenderCmd = &cobra.Command{
	Use:   "render <schema> <expr>",
	Short: "Render one variant instance",
	Long: `Render evaluates an instance expression such as
'BandwidthRate(256, MBits)' or 'HashPassword{password: "pw"}' against a
schema and prints the rendered argument. Identifiers that are not true, false
or nil are taken as symbols and render as their own name.

Variants rendered by a custom function cannot be rendered here because the
function lives in Go code.`,
	Example: `  expandgen render tor/flags.expand 'BandwidthRate(256, MBits)'
  expandgen render tor/flags.expand 'HashPassword{password: "pw"}'
  expandgen render --tokens tor/flags.expand 'ConfigFile("my torrc")'
  expandgen render --shell tor/flags.expand 'ConfigFile("my torrc")'`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := resolveOne(cmd, args[0])
		if err != nil {
			return err
		}
		table, err := render.Compile(s, render.SkipUnregisteredCustom())
		if err != nil {
			return err
		}

		ev := testgen.Evaluator{BareSymbols: true}
		inst, err := ev.ParseInstance(args[1])
		if err != nil {
			return err
		}

		tokens, err := table.Render(inst)
		if err != nil {
			if errors.Is(err, errors.ErrCustomFunc) {
				return errors.WithHint(err, "custom functions can only be called from generated code")
			}
			return err
		}

		switch {
		case renderTokens:
			out, err := json.Marshal(tokens)
			if err != nil {
				return errors.Wrap(err, "failed to encode tokens")
			}
			fmt.Fprintln(cmd.OutOrStdout(), string(out))
		case renderShell:
			fmt.Fprintln(cmd.OutOrStdout(), render.ShellJoin(tokens))
		default:
			fmt.Fprintln(cmd.OutOrStdout(), render.Join(tokens))
		}
		return nil
	},
}

func init() {
	RenderCmd.Flags().BoolVar(&renderShell, "shell", false, "Quote tokens for a shell command line")
	RenderCmd.Flags().BoolVar(&renderTokens, "tokens", false, "Print the token list as JSON")
	RenderCmd.MarkFlagsMutuallyExclusive("shell", "tokens")
}

// resolveOne parses and resolves a single schema, failing on any error.
func resolveOne(cmd *cobra.Command, path string) (*resolve.Schema, error) {
	_, _, results, err := build(cmd, []string{path})
	if err != nil {
		return nil, err
	}
	return results[0].Schema, nil
}
