package main

import (
	"fmt"

	"github.com/db47h/pulsesim/internal/graph"
	"github.com/spf13/cobra"
)

func newGraphCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "graph [file]",
		Short: "Print the circuit as a Mermaid flowchart",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := newSession(cmd, args)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), graph.Mermaid(s.net))
			return nil
		},
	}
}
