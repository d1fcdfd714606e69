package commands

import (
	"context"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/teranos/expandgen/pipeline"
	"github.com/teranos/expandgen/watch"
)

// WatchCmd regenerates schemas as they change
var WatchCmd = &cobra.Command{
	Use:   "watch [files or dirs...]",
	Short: "Regenerate code whenever a schema changes",
	Long: `Watch generates once, then regenerates each schema when it is saved.
Changes are batched (watch.debounce_ms) and regeneration is rate limited
(watch.max_per_minute). Stop with Ctrl+C.`,
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
		regenerate := func(ctx context.Context, changed []string) error {
			results, err := p.Build(ctx, changed)
			printDiagnostics(cmd, results)
			written, werr := p.Write(results)
			for _, path := range written {
				pterm.Success.Printfln("updated %s", path)
			}
			if err != nil {
				pterm.Error.Println(err.Error())
				return err
			}
			return werr
		}

		// Initial failures are reported; the watch starts regardless.
		_ = regenerate(cmd.Context(), paths)

		w, err := watch.New(paths, cfg.Watch, regenerate)
		if err != nil {
			return err
		}
		pterm.Info.Printfln("Watching %d schemas, press Ctrl+C to stop", len(paths))
		return w.Run(cmd.Context())
	},
}
