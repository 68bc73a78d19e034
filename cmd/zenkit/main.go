package main

import (
	"os"
	"strconv"

	"github.com/spf13/cobra"
)

func main() {
	root := &cobra.Command{
		Use:          "zenkit",
		Short:        "Playground for the zenkit helpers",
		SilenceUsage: true,
	}

	root.AddCommand(showCommand(), rollCommand(), fillCommand(), sumCommand())

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

// parseArg keeps integer-looking arguments as integers so the stringifier
// renders them as numbers rather than text.
func parseArg(s string) any {
	if n, err := strconv.Atoi(s); err == nil {
		return n
	}
	return s
}
