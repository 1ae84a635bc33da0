package main

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/philipparndt/colorcif/internal/app"
	"github.com/philipparndt/colorcif/internal/config"
	"github.com/philipparndt/colorcif/internal/preview"
	"github.com/philipparndt/colorcif/pkg/watcher"
)

var previewFlags renderFlags

var previewCmd = &cobra.Command{
	Use:   "preview <file.cif>",
	Short: "Render a CIF file and show the image in a window",
	Long: `Render a CIF file with the built-in renderer, write the PNG and show it in a
window. With --watch the window is updated whenever the file changes.`,
	Args: cobra.ExactArgs(1),
	RunE: runPreview,
}

func init() {
	rootCmd.AddCommand(previewCmd)
	addRenderFlags(previewCmd, &previewFlags)
}

func status(r *app.Result) string {
	return fmt.Sprintf("%s: %d atoms, %d distinct sites, %s colored with %s",
		filepath.Base(r.Output), r.Atoms, r.Sites, r.Mode, r.Mapper)
}

func runPreview(cmd *cobra.Command, args []string) error {
	cfg, err := previewFlags.load(cmd)
	if err != nil {
		return err
	}
	if cfg.Render.Backend != config.BackendPNG {
		return fmt.Errorf("preview needs the %s backend, got %s", config.BackendPNG, cfg.Render.Backend)
	}

	p, err := app.NewPipeline(cfg, app.WithLog(cmd.ErrOrStderr(), previewFlags.verbose))
	if err != nil {
		return err
	}

	input := args[0]
	result, err := p.Run(cmd.Context(), input, previewFlags.output)
	if err != nil {
		return err
	}

	window := preview.New("colorcif - "+filepath.Base(input), result.Image, status(result))

	if previewFlags.watch {
		ctx, cancel := context.WithCancel(cmd.Context())
		defer cancel()
		window.OnClosed(cancel)

		go func() {
			err := p.WatchChanges(ctx, input, previewFlags.output, watcher.DefaultDebounce,
				func(r *app.Result) {
					window.SetImage(r.Image, status(r))
				},
				func(err error) {
					window.SetStatus("Error: " + err.Error())
				})
			if err != nil {
				window.SetStatus("Error: " + err.Error())
			}
		}()
	}

	window.ShowAndRun()
	return nil
}
