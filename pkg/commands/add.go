package commands

import (
	"context"
	"errors"
	"strings"

	"github.com/spf13/cobra"

	"coursedeck/pkg/commands/options"
	"coursedeck/pkg/note"
	"coursedeck/pkg/runner/add"
	"coursedeck/pkg/store"
)

func addAdd(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a course, session, or task",
		Example: `
coursedeck add course "Linear Algebra" --sections lectures,tutorials
coursedeck add session <note id> --section lectures --day Wed --time 14:00 --repeat weekly
coursedeck add task <note id> --day 15 --month 5 --repeat monthly problem set
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	addCourse(cmd)
	addSession(cmd)
	addTask(cmd)

	topLevel.AddCommand(cmd)
}

func addCourse(parent *cobra.Command) {
	var sections []string

	cmd := &cobra.Command{
		Use:   "course <name>",
		Short: "Create a course card",
		Args: func(_ *cobra.Command, args []string) error {
			if len(args) < 1 {
				return errors.New("requires a course name")
			}
			return nil
		},
		RunE: func(_ *cobra.Command, args []string) error {
			secs := make([]note.Section, 0, len(sections))
			for _, raw := range sections {
				s, ok := note.ParseSection(strings.TrimSpace(raw))
				if !ok {
					return errors.New("unknown section: " + raw)
				}
				secs = append(secs, s)
			}

			p, err := store.Load(nil)
			if err != nil {
				return err
			}
			c := add.Course{
				Name:        strings.Join(args, " "),
				Sections:    secs,
				Persistence: p,
			}
			return output.HandleError(c.Do(context.Background()))
		},
	}
	cmd.Flags().StringSliceVar(&sections, "sections", nil,
		"Sections to track (lectures, tutorials, seminars). Defaults to lectures and tutorials.")

	parent.AddCommand(cmd)
}

func addSession(parent *cobra.Command) {
	so := &options.ScheduleOptions{}
	var section string

	cmd := &cobra.Command{
		Use:   "session <note id>",
		Short: "Add a session row to a section",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			sec, ok := note.ParseSection(section)
			if !ok {
				return errors.New("unknown section: " + section)
			}
			repeat, ok := note.ParseRepeat(so.Repeat)
			if !ok {
				return errors.New("unknown repeat: " + so.Repeat)
			}

			p, err := store.Load(nil)
			if err != nil {
				return err
			}
			s := add.Session{
				NoteID:      args[0],
				Section:     sec,
				Day:         so.Day,
				Time:        so.Time,
				Repeat:      repeat,
				Persistence: p,
			}
			return output.HandleError(s.Do(context.Background()))
		},
	}
	cmd.Flags().StringVar(&section, "section", string(note.Lectures),
		"Section to add the session to.")
	options.AddScheduleArgs(cmd, so)

	parent.AddCommand(cmd)
}

func addTask(parent *cobra.Command) {
	do := &options.DueOptions{}
	var repeat string

	cmd := &cobra.Command{
		Use:   "task <note id> [text...]",
		Short: "Add a task to a course",
		Args: func(_ *cobra.Command, args []string) error {
			if len(args) < 1 {
				return errors.New("requires a note id")
			}
			return nil
		},
		RunE: func(_ *cobra.Command, args []string) error {
			r, ok := note.ParseRepeat(repeat)
			if !ok {
				return errors.New("unknown repeat: " + repeat)
			}

			p, err := store.Load(nil)
			if err != nil {
				return err
			}
			t := add.Task{
				NoteID:      args[0],
				Text:        strings.Join(args[1:], " "),
				Day:         do.DayPtr(),
				Month:       do.MonthPtr(),
				Repeat:      r,
				Persistence: p,
			}
			return output.HandleError(t.Do(context.Background()))
		},
	}
	options.AddDueArgs(cmd, do)
	cmd.Flags().StringVarP(&repeat, "repeat", "r", "none",
		"Repeat frequency (none, daily, weekly, monthly, yearly).")

	parent.AddCommand(cmd)
}
