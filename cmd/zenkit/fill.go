package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/zenkit/pkg/random"
	"github.com/dmitrymomot/zenkit/pkg/stringify"
)

func fillCommand() *cobra.Command {
	var size int

	cmd := &cobra.Command{
		Use:   "fill",
		Short: "Fill a fresh slice with random two-digit values",
		RunE: func(cmd *cobra.Command, args []string) error {
			if size < 0 {
				return fmt.Errorf("fill: negative size %d", size)
			}

			var values []int
			random.Generate(&values, size)
			stringify.Flog(cmd.OutOrStdout(), values)
			return nil
		},
	}

	cmd.Flags().IntVar(&size, "size", 10, "number of elements")

	return cmd
}
