package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/grindlemire/matchgeo"
	"github.com/grindlemire/matchgeo/examples/selector"
	"github.com/grindlemire/matchgeo/snapshot"
)

func newSnapshotCmd() *cobra.Command {
	var (
		steps    int
		out      string
		scale    int
		geometry bool
		cols     int
		rows     int
	)
	cmd := &cobra.Command{
		Use:   "snapshot",
		Short: "Render demo passes to PNG files",
		Long: `Steps the demo by hand and writes one PNG per render pass.

Each step advances the selection and renders until the geometry settles,
so the files show a publisher moving and its mirrors following one pass
later.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var reports []matchgeo.PassReport
			app, err := matchgeo.NewApp(
				matchgeo.WithTerminal(matchgeo.NewMockTerminal(cols, rows)),
				matchgeo.WithPassObserver(func(r matchgeo.PassReport) {
					reports = append(reports, r)
				}),
			)
			if err != nil {
				return fmt.Errorf("create app: %w", err)
			}
			defer app.Close()

			demo := selector.NewDemo(app, 0)
			app.SetRootComponent(demo)
			app.Settle(8)
			for range steps {
				demo.Step()
				app.Settle(8)
			}

			files, err := snapshot.WriteAll(cmd.Context(), out, reports, snapshot.Options{
				Scale:    scale,
				Geometry: geometry,
			})
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "wrote %d passes to %s\n", len(files), out)
			return nil
		},
	}
	cmd.Flags().IntVar(&steps, "steps", len(selector.Options), "selection changes to render")
	cmd.Flags().StringVarP(&out, "out", "o", "snapshots", "output directory")
	cmd.Flags().IntVar(&scale, "scale", 1, "pixel scale")
	cmd.Flags().BoolVar(&geometry, "geometry", false, "outline published and mirrored frames")
	cmd.Flags().IntVar(&cols, "cols", 60, "columns")
	cmd.Flags().IntVar(&rows, "rows", 24, "rows")
	return cmd
}
