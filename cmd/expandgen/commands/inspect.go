package commands

import (
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/teranos/expandgen/errors"
	"github.com/teranos/expandgen/pipeline"
	"github.com/teranos/expandgen/resolve"
)

var inspectFormat string

// variantRow is one line of inspect output.
type variantRow struct {
	File     string `json:"file" yaml:"file"`
	Enum     string `json:"enum" yaml:"enum"`
	Variant  string `json:"variant" yaml:"variant"`
	Shape    string `json:"shape" yaml:"shape"`
	State    string `json:"state" yaml:"state"`
	Name     string `json:"name" yaml:"name"`
	Detail   string `json:"detail,omitempty" yaml:"detail,omitempty"`
	Examples int    `json:"examples" yaml:"examples"`
	Problems int    `json:"problems,omitempty" yaml:"problems,omitempty"`
}

// InspectCmd shows the resolution of every variant
var InspectCmd = &cobra.Command{
	Use:   "inspect [files or dirs...]",
	Short: "Show how each variant renders",
	Long: `Inspect resolves each schema and lists every variant with its
resolution state: custom, template, default or error. Schemas with errors are
still listed, with their diagnostics on stderr.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		paths, err := pipeline.Discover(args)
		if err != nil {
			return err
		}

		p := newPipeline(cfg)
		var rows []variantRow
		var results []*pipeline.Result
		for _, path := range paths {
			res := p.Process(cmd.Context(), path)
			results = append(results, res)
			if res.Schema == nil {
				printDiagnostics(cmd, results)
				return res.Err
			}
			rows = append(rows, inspectRows(path, res.Schema)...)
		}
		printDiagnostics(cmd, results)

		switch inspectFormat {
		case "table":
			return renderTable(rows)
		case "json":
			out, err := json.MarshalIndent(rows, "", "  ")
			if err != nil {
				return errors.Wrap(err, "failed to encode JSON")
			}
			fmt.Fprintln(cmd.OutOrStdout(), string(out))
		case "yaml":
			out, err := yaml.Marshal(rows)
			if err != nil {
				return errors.Wrap(err, "failed to encode YAML")
			}
			fmt.Fprint(cmd.OutOrStdout(), string(out))
		default:
			return errors.Newf("unknown format %q (use table, json or yaml)", inspectFormat)
		}
		return nil
	},
}

func init() {
	InspectCmd.Flags().StringVarP(&inspectFormat, "format", "f", "table", "Output format: table, json or yaml")
}

func inspectRows(path string, s *resolve.Schema) []variantRow {
	var rows []variantRow
	for _, e := range s.Enums {
		for _, r := range e.Variants {
			row := variantRow{
				File:     path,
				Enum:     e.Name,
				Variant:  r.VariantName(),
				Shape:    r.Variant.Shape.String(),
				State:    r.State.String(),
				Name:     r.Name,
				Examples: len(r.Tests),
				Problems: len(r.Diagnostics),
			}
			switch r.State {
			case resolve.TemplateResolved:
				row.Detail = strconv.Quote(r.Template.Pattern)
			case resolve.CustomResolved:
				row.Detail = r.Custom + "(v)"
			case resolve.Error:
				row.Detail = r.Diagnostics.Errors()[0].Message
			}
			rows = append(rows, row)
		}
	}
	return rows
}

func renderTable(rows []variantRow) error {
	data := pterm.TableData{{"Enum", "Variant", "Shape", "State", "Name", "Detail", "Examples"}}
	for _, r := range rows {
		data = append(data, []string{r.Enum, r.Variant, r.Shape, stateStyle(r.State), r.Name, r.Detail, fmt.Sprint(r.Examples)})
	}
	return pterm.DefaultTable.WithHasHeader().WithData(data).Render()
}

func stateStyle(state string) string {
	switch state {
	case resolve.Error.String():
		return pterm.Red(state)
	case resolve.CustomResolved.String():
		return pterm.Magenta(state)
	case resolve.TemplateResolved.String():
		return pterm.Cyan(state)
	}
	return state
}
