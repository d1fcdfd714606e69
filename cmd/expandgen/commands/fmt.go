package commands

import (
	"bytes"
	"fmt"
	"os"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/teranos/expandgen/errors"
	"github.com/teranos/expandgen/logger"
	"github.com/teranos/expandgen/pipeline"
	"github.com/teranos/expandgen/schema"
	"github.com/teranos/expandgen/schema/parser"
)

var fmtWrite bool

// FmtCmd prints or rewrites schemas in canonical form
var FmtCmd = &cobra.Command{
	Use:   "fmt [files or dirs...]",
	Short: "Format .expand schemas",
	Long: `Fmt prints each schema in canonical form. With -w the files are
rewritten in place instead, and only changed files are listed.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		paths, err := pipeline.Discover(args)
		if err != nil {
			return err
		}

		for _, path := range paths {
			src, err := os.ReadFile(path)
			if err != nil {
				return errors.Wrapf(err, "failed to read %s", path)
			}
			f, err := parser.Parse(path, src)
			if err != nil {
				return err
			}

			out := schema.Format(f)
			if !fmtWrite {
				fmt.Fprint(cmd.OutOrStdout(), string(out))
				continue
			}
			if bytes.Equal(src, out) {
				continue
			}
			if err := os.WriteFile(path, out, 0o644); err != nil {
				return errors.Wrapf(err, "failed to write %s", path)
			}
			if shouldOutput(cmd, logger.OutputResults) {
				pterm.Info.Println(path)
			}
		}
		return nil
	},
}

func init() {
	FmtCmd.Flags().BoolVarP(&fmtWrite, "write", "w", false, "Write result to the source file instead of stdout")
}
