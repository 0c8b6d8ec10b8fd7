// Command matchgeo runs the matched geometry demo.
//
// Usage:
//
//	matchgeo demo                 Run the demo in the terminal
//	matchgeo snapshot --out dir   Render demo passes to PNG files
//	matchgeo window               Run the demo in a native window
//	matchgeo version              Print version information
//
// Set MATCHGEO_DEBUG to a file path to write a debug log.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/grindlemire/matchgeo"
	"github.com/grindlemire/matchgeo/internal/debug"
)

const version = "0.1.0"

func main() {
	if err := newRootCmd().ExecuteContext(context.Background()); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var closer func()
	root := &cobra.Command{
		Use:           "matchgeo",
		Short:         "Matched geometry demo",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			logger, f, err := debug.FromEnv()
			if err != nil {
				return err
			}
			if logger != nil {
				matchgeo.SetLogger(logger)
				closer = func() {
					matchgeo.SetLogger(nil)
					f.Close()
				}
			}
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if closer != nil {
				closer()
			}
		},
	}
	root.AddCommand(
		newDemoCmd(),
		newSnapshotCmd(),
		newWindowCmd(),
		newVersionCmd(),
	)
	return root
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "matchgeo version %s\n", version)
		},
	}
}
