package main

import (
	"github.com/spf13/cobra"
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:          "pulsesim",
		Short:        "pulsesim simulates pulse propagation circuits",
		Long:         `pulsesim reads a circuit of flip-flops and conjunctions, presses its button and counts the pulses.`,
		SilenceUsage: true,
	}

	// Persistent flags (available to all commands)
	pf := root.PersistentFlags()
	pf.StringP("config", "c", "", "YAML or JSON run configuration file")
	pf.String("log-level", "info", "log level (debug, info, warn, error)")
	pf.Bool("log-json", false, "log in JSON format")
	pf.Bool("metrics", false, "dump prometheus metrics to stderr when done")
	pf.String("entry", "", "module the button is wired to (default \"broadcaster\")")

	root.AddCommand(
		newRunCmd(),
		newCountCmd(),
		newCycleCmd(),
		newGraphCmd(),
		newGenCmd(),
		newVersionCmd(),
	)
	return root
}

func addCountFlags(cmd *cobra.Command) {
	cmd.Flags().IntP("presses", "n", 0, "number of button presses (default 1000)")
}

func addCycleFlags(cmd *cobra.Command) {
	cmd.Flags().String("sink", "", "module whose low pulse ends the search (default \"rx\")")
	cmd.Flags().StringSlice("watch", nil, "modules to watch instead of deriving them from the sink")
	cmd.Flags().Int("max-presses", 0, "give up after this many presses (default 100000)")
}
