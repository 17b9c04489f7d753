package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newRunCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run [file]",
		Short: "Print the pulse product and the first low pulse on the sink",
		Long: `Run presses the button a fixed number of times and prints the product of
the low and high pulse counts, then searches a fresh copy of the circuit for
the first press at which every watched module sends a high pulse and prints
the least common multiple of those presses.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := newSession(cmd, args)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, s.count())
			presses, _, err := s.cycle(cmd)
			if err != nil {
				return err
			}
			fmt.Fprintln(out, presses)
			return s.close(cmd)
		},
	}
	addCountFlags(cmd)
	addCycleFlags(cmd)
	return cmd
}

func newCountCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "count [file]",
		Short: "Print the product of low and high pulses after a number of presses",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := newSession(cmd, args)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), s.count())
			return s.close(cmd)
		},
	}
	addCountFlags(cmd)
	return cmd
}

func newCycleCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cycle [file]",
		Short: "Print the number of presses until the sink receives a low pulse",
		Long: `Cycle presses the button until each watched module has sent a high pulse
and prints the least common multiple of the presses at which they first did.
Unless --watch is given, the watched modules are the inputs of the single
conjunction feeding the sink.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := newSession(cmd, args)
			if err != nil {
				return err
			}
			presses, found, err := s.cycle(cmd)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if v, _ := cmd.Flags().GetBool("periods"); v {
				for _, name := range sortedKeys(found) {
					fmt.Fprintf(out, "%s\t%d\n", name, found[name])
				}
			}
			fmt.Fprintln(out, presses)
			return s.close(cmd)
		},
	}
	addCycleFlags(cmd)
	cmd.Flags().Bool("periods", false, "also print the first high press of each watched module")
	return cmd
}
