package commands

import (
	"context"
	"errors"
	"strings"

	"github.com/spf13/cobra"

	"coursedeck/pkg/commands/options"
	"coursedeck/pkg/runner/toggle"
	"coursedeck/pkg/store"
)

func addComplete(topLevel *cobra.Command) {
	io := &options.IDOptions{}

	cmd := &cobra.Command{
		Use:     "complete",
		Aliases: []string{"check", "done", "toggle"},
		Short:   "Toggle a session or task checkbox",
		Example: `
coursedeck complete <session or task id>
`,
		Args: func(_ *cobra.Command, args []string) error {
			if len(args) < 1 {
				return errors.New("requires a session or task id")
			}
			io.ID = strings.Join(args, " ")
			return nil
		},

		RunE: func(_ *cobra.Command, _ []string) error {
			p, err := store.Load(nil)
			if err != nil {
				return err
			}
			t := toggle.Toggle{
				ID:          io.ID,
				Persistence: p,
			}
			return output.HandleError(t.Do(context.Background()))
		},
	}

	topLevel.AddCommand(cmd)
}
