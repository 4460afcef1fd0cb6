package commands

import (
	"context"
	"errors"

	"github.com/spf13/cobra"

	"coursedeck/pkg/commands/options"
	"coursedeck/pkg/note"
	"coursedeck/pkg/runner/get"
	"coursedeck/pkg/store"
)

func addGet(topLevel *cobra.Command) {
	so := &options.StatusOptions{}
	io := &options.IDOptions{}

	cmd := &cobra.Command{
		Use:     "get",
		Aliases: []string{"list", "ls"},
		Short:   "Show course cards",
		Example: `
coursedeck get
coursedeck get --status trashed
coursedeck get --all --show-id
`,
		RunE: func(_ *cobra.Command, _ []string) error {
			status := note.Status(so.Status)
			if so.All {
				status = ""
			} else {
				switch status {
				case note.StatusActive, note.StatusArchived, note.StatusTrashed:
				default:
					return errors.New("unknown status: " + so.Status)
				}
			}

			p, err := store.Load(nil)
			if err != nil {
				return err
			}
			g := get.Get{
				ShowID:      io.ShowID,
				Status:      status,
				Persistence: p,
			}
			return output.HandleError(g.Do(context.Background()))
		},
	}
	options.AddStatusArgs(cmd, so)
	options.AddShowIDArgs(cmd, io)

	topLevel.AddCommand(cmd)
}
