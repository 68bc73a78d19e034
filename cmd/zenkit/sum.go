package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/zenkit/pkg/container"
	"github.com/dmitrymomot/zenkit/pkg/stringify"
)

func sumCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "sum [numbers...]",
		Short: "Add the arguments together",
		RunE: func(cmd *cobra.Command, args []string) error {
			ns := make([]int, len(args))
			for i, a := range args {
				n, err := strconv.Atoi(a)
				if err != nil {
					return fmt.Errorf("sum: %q is not an integer", a)
				}
				ns[i] = n
			}
			stringify.Flog(cmd.OutOrStdout(), container.Sum(ns))
			return nil
		},
	}
}
