package commands

import (
	"context"
	"errors"
	"strings"

	"github.com/spf13/cobra"

	"coursedeck/pkg/runner/lifecycle"
	"coursedeck/pkg/store"
)

func addArchive(topLevel *cobra.Command) {
	topLevel.AddCommand(lifecycleCommand(
		"archive <note id>",
		"Archive a course card",
		nil,
		lifecycle.Archive,
	))
}

func addTrash(topLevel *cobra.Command) {
	topLevel.AddCommand(lifecycleCommand(
		"trash <note id>",
		"Move a course card to the trash",
		nil,
		lifecycle.Trash,
	))
}

func addRestore(topLevel *cobra.Command) {
	topLevel.AddCommand(lifecycleCommand(
		"restore <note id>",
		"Restore an archived or trashed course card",
		nil,
		lifecycle.Restore,
	))
}

func addDelete(topLevel *cobra.Command) {
	topLevel.AddCommand(lifecycleCommand(
		"delete <note id>",
		"Trash a course card, or purge it if already trashed",
		[]string{"rm"},
		lifecycle.Delete,
	))
}

func lifecycleCommand(use, short string, aliases []string, op lifecycle.Op) *cobra.Command {
	return &cobra.Command{
		Use:     use,
		Short:   short,
		Aliases: aliases,
		Args: func(_ *cobra.Command, args []string) error {
			if len(args) < 1 {
				return errors.New("requires a note id")
			}
			return nil
		},
		RunE: func(_ *cobra.Command, args []string) error {
			p, err := store.Load(nil)
			if err != nil {
				return err
			}
			s := lifecycle.Set{
				ID:          strings.Join(args, " "),
				Op:          op,
				Persistence: p,
			}
			return output.HandleError(s.Do(context.Background()))
		},
	}
}
