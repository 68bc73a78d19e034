package main

import (
	"github.com/spf13/cobra"

	"github.com/dmitrymomot/zenkit/pkg/stringify"
)

func showCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "show [values...]",
		Short: "Render the arguments through the stringifier",
		RunE: func(cmd *cobra.Command, args []string) error {
			values := make([]any, len(args))
			for i, a := range args {
				values[i] = parseArg(a)
			}
			stringify.Flog(cmd.OutOrStdout(), values...)
			return nil
		},
	}
}
