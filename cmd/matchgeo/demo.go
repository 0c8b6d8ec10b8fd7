package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/grindlemire/matchgeo"
	"github.com/grindlemire/matchgeo/examples/selector"
)

type demoFlags struct {
	interval time.Duration
	animate  time.Duration
	fps      int
}

func (f *demoFlags) register(cmd *cobra.Command) {
	cmd.Flags().DurationVar(&f.interval, "interval", time.Second, "time between selection changes")
	cmd.Flags().DurationVar(&f.animate, "animate", 250*time.Millisecond, "mirror transition length, 0 to snap")
	cmd.Flags().IntVar(&f.fps, "fps", 60, "frame rate")
}

func (f *demoFlags) animator() matchgeo.Animator {
	if f.animate <= 0 {
		return matchgeo.Snap()
	}
	return matchgeo.EaseInOut(f.animate)
}

func newDemoCmd() *cobra.Command {
	var flags demoFlags
	cmd := &cobra.Command{
		Use:   "demo",
		Short: "Run the demo in the terminal (Ctrl+C to quit)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := matchgeo.NewApp(
				matchgeo.WithFrameRate(flags.fps),
				matchgeo.WithAnimation(flags.animator()),
			)
			if err != nil {
				return fmt.Errorf("create app: %w", err)
			}
			defer app.Close()

			app.SetRootComponent(selector.NewDemo(app, flags.interval))
			return app.Run(cmd.Context())
		},
	}
	flags.register(cmd)
	return cmd
}
