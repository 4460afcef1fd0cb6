package commands

import (
	"github.com/spf13/cobra"

	base "github.com/n3wscott/cli-base/pkg/commands/options"

	"coursedeck/pkg/commands/options"
)

var (
	output = &options.OutputOptions{}
)

func New() *cobra.Command {

	cmd := &cobra.Command{
		Use:   "coursedeck",
		Short: base.Wrap80("Course notes with recurring sessions and deadlines, on the command line."),
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	AddCommands(cmd)
	return cmd
}

func AddCommands(topLevel *cobra.Command) {
	addAdd(topLevel)
	addGet(topLevel)
	addComplete(topLevel)
	addEdit(topLevel)
	addArchive(topLevel)
	addTrash(topLevel)
	addRestore(topLevel)
	addDelete(topLevel)
	addSweep(topLevel)
	addKey(topLevel)
	addVersion(topLevel)
}
