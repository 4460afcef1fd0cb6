package commands

import (
	"context"
	"errors"

	"github.com/spf13/cobra"

	"coursedeck/pkg/commands/options"
	"coursedeck/pkg/note"
	"coursedeck/pkg/runner/edit"
	"coursedeck/pkg/store"
)

func addEdit(topLevel *cobra.Command) {
	so := &options.ScheduleOptions{}
	do := &options.DueOptions{}
	var text string

	cmd := &cobra.Command{
		Use:   "edit <session or task id>",
		Short: "Edit a session or task in place",
		Example: `
coursedeck edit <session id> --day Thu --time 10:00
coursedeck edit <session id> --repeat weekly
coursedeck edit <task id> --due-day 20 --due-month 4
coursedeck edit <task id> --text "read chapter 7"
`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			e := edit.Edit{ID: args[0]}

			if cmd.Flags().Changed("day") || cmd.Flags().Changed("time") {
				e.Schedule = true
				e.Day = so.Day
				e.Time = so.Time
			}
			if cmd.Flags().Changed("repeat") {
				r, ok := note.ParseRepeat(so.Repeat)
				if !ok {
					return errors.New("unknown repeat: " + so.Repeat)
				}
				e.SetRepeat = true
				e.Repeat = r
			}
			if cmd.Flags().Changed("text") {
				e.SetText = true
				e.Text = text
			}
			if cmd.Flags().Changed("due-day") || cmd.Flags().Changed("due-month") {
				e.SetDue = true
				e.DueDay = do.DayPtr()
				e.DueMonth = do.MonthPtr()
			}

			p, err := store.Load(nil)
			if err != nil {
				return err
			}
			e.Persistence = p
			return output.HandleError(e.Do(context.Background()))
		},
	}
	cmd.Flags().StringVarP(&so.Day, "day", "d", "", "Day of week (Mon..Sun).")
	cmd.Flags().StringVarP(&so.Time, "time", "t", "", "Time of day (HH:MM).")
	cmd.Flags().StringVarP(&so.Repeat, "repeat", "r", "", "Repeat frequency.")
	cmd.Flags().StringVar(&text, "text", "", "Free text.")
	cmd.Flags().IntVar(&do.Day, "due-day", -1, "Due day of month (1-31).")
	cmd.Flags().IntVar(&do.Month, "due-month", -1, "Due month index (0-11).")

	topLevel.AddCommand(cmd)
}
