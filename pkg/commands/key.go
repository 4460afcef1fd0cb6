package commands

import (
	"github.com/spf13/cobra"

	"coursedeck/pkg/printers"
)

func addKey(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "key",
		Short: "Show the symbol legend",
		Run: func(_ *cobra.Command, _ []string) {
			printers.Legend()
		},
	}

	topLevel.AddCommand(cmd)
}
