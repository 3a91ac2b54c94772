package main

import (
	"github.com/spf13/cobra"

	"github.com/IvanLB1405/records-api/internal/demo"
)

func newDemoCmd() *cobra.Command {
	return &cobra.Command{
		Use:       "demo [scenario...]",
		Short:     "Replay the record walkthroughs and print each outcome",
		ValidArgs: []string{"account", "car", "student", "employee"},
		Args:      cobra.OnlyValidArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return demo.Run(cmd.OutOrStdout(), args...)
		},
	}
}
