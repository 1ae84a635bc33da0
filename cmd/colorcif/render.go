package main

import (
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/philipparndt/colorcif/internal/app"
	"github.com/philipparndt/colorcif/pkg/watcher"
)

var renderCmdFlags renderFlags

var renderCmd = &cobra.Command{
	Use:   "render <file.cif>",
	Short: "Render a CIF file with colored symmetry sites",
	Long:  "Render a CIF file to PNG (built-in renderer) or to a POV-Ray scene. This is the default command.",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runRender(cmd, args, &renderCmdFlags)
	},
}

func init() {
	rootCmd.AddCommand(renderCmd)
	addRenderFlags(renderCmd, &renderCmdFlags)
}

func runRender(cmd *cobra.Command, args []string, f *renderFlags) error {
	cfg, err := f.load(cmd)
	if err != nil {
		return err
	}

	p, err := app.NewPipeline(cfg, app.WithLog(cmd.ErrOrStderr(), f.verbose))
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	report := func(r *app.Result) {
		fmt.Fprintf(out, "Wrote %s (%d atoms, %d distinct sites, %s colored with %s)\n",
			r.Output, r.Atoms, r.Sites, r.Mode, r.Mapper)
	}

	if !f.watch {
		result, err := p.Run(cmd.Context(), args[0], f.output)
		if err != nil {
			return err
		}
		report(result)
		return nil
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
	defer stop()

	return p.Watch(ctx, args[0], f.output, watcher.DefaultDebounce, report, func(err error) {
		fmt.Fprintf(cmd.ErrOrStderr(), "Error: %v\n", err)
	})
}
