package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/zenkit/pkg/array"
	"github.com/dmitrymomot/zenkit/pkg/random"
	"github.com/dmitrymomot/zenkit/pkg/stringify"
)

func rollCommand() *cobra.Command {
	var min, max, count int

	cmd := &cobra.Command{
		Use:   "roll",
		Short: "Draw random integers and render them as a list",
		RunE: func(cmd *cobra.Command, args []string) error {
			if min > max {
				return fmt.Errorf("roll: min %d exceeds max %d", min, max)
			}
			if count < 0 {
				return fmt.Errorf("roll: negative count %d", count)
			}

			draws := make([]int, count)
			for i := range draws {
				draws[i] = random.Int(min, max)
			}
			stringify.Flog(cmd.OutOrStdout(), array.Of(draws...))
			return nil
		},
	}

	cmd.Flags().IntVar(&min, "min", 0, "lower bound, inclusive")
	cmd.Flags().IntVar(&max, "max", 10, "upper bound, inclusive")
	cmd.Flags().IntVar(&count, "count", 1, "number of draws")

	return cmd
}
