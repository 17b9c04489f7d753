package main

import (
	"fmt"

	"github.com/db47h/pulsesim"
	"github.com/db47h/pulsesim/netlib"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

func newGenCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "gen",
		Short: "Generate a circuit of binary counters",
		Long: `Gen prints a circuit where the broadcaster drives one counter per period.
The counters feed a conjunction wired to the sink, which receives its first
low pulse after the least common multiple of the periods. Periods must be odd.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			periods, _ := cmd.Flags().GetIntSlice("period")
			sink, _ := cmd.Flags().GetString("sink")
			if len(periods) == 0 {
				return errors.New("at least one --period is required")
			}
			text, err := netlib.Circuit(sink, periods...)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), text)
			return nil
		},
	}
	cmd.Flags().IntSliceP("period", "p", nil, "counter periods (repeatable or comma separated)")
	cmd.Flags().String("sink", pulsesim.DefaultSink, "name of the sink module")
	return cmd
}
