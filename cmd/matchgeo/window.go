package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/grindlemire/matchgeo"
	"github.com/grindlemire/matchgeo/backend/raylib"
	"github.com/grindlemire/matchgeo/examples/selector"
)

func newWindowCmd() *cobra.Command {
	var flags demoFlags
	cfg := raylib.DefaultConfig()
	cmd := &cobra.Command{
		Use:   "window",
		Short: "Run the demo in a native window",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg.FPS = flags.fps
			// Passes still render into a cell buffer; the window replays
			// each pass's display list instead of reading the terminal.
			app, err := matchgeo.NewApp(
				matchgeo.WithTerminal(matchgeo.NewMockTerminal(cfg.Cols, cfg.Rows)),
				matchgeo.WithAnimation(flags.animator()),
			)
			if err != nil {
				return fmt.Errorf("create app: %w", err)
			}
			defer app.Close()
			app.SetRootComponent(selector.NewDemo(app, flags.interval))

			w := raylib.Open(cfg)
			defer w.Close()
			return w.Run(cmd.Context(), app)
		},
	}
	flags.register(cmd)
	cmd.Flags().IntVar(&cfg.Cols, "cols", cfg.Cols, "columns")
	cmd.Flags().IntVar(&cfg.Rows, "rows", cfg.Rows, "rows")
	return cmd
}
